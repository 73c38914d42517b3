package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/desertthunder/gigs/internal/formatter"
	"github.com/desertthunder/gigs/internal/models"
)

func concertColumns() []table.Column {
	return []table.Column{
		{Title: "Band", Width: 28},
		{Title: "Data", Width: 12},
		{Title: "Città", Width: 14},
		{Title: "Evento", Width: 20},
		{Title: "Artisti", Width: 7},
		{Title: "Costo", Width: 9},
	}
}

// concertRow renders c as a [table.Row]. Dates that do not parse are shown as stored.
func concertRow(c models.Concert) table.Row {
	return table.Row{
		c.Band,
		c.Date,
		c.City,
		c.Event,
		strconv.Itoa(c.Artists),
		formatter.FormatCost(c.Cost),
	}
}

func concertRows(cs []models.Concert) []table.Row {
	rows := make([]table.Row, len(cs))
	for i, c := range cs {
		rows[i] = concertRow(c)
	}
	return rows
}
