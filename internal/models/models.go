package models

import "strings"

// All is the selector value that disables filtering on a field.
const All = "all"

// Concert is a single attended event.
//
// Artists and Year are derived from Band and Date when the record is saved and are stored alongside them.
type Concert struct {
	ID      string  `json:"id" yaml:"id"`
	Band    string  `json:"band" yaml:"band"`
	Date    string  `json:"date" yaml:"date"`
	City    string  `json:"city" yaml:"city"`
	Event   string  `json:"event" yaml:"event"`
	Artists int     `json:"artists" yaml:"artists"`
	Cost    float64 `json:"cost" yaml:"cost"`
	Year    int     `json:"year" yaml:"year"`
}

// SplitBand returns the trimmed comma-separated tokens of band, including empty ones.
func SplitBand(band string) []string {
	parts := strings.Split(band, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// BandTokens returns the non-empty trimmed artist names in band, in order.
func BandTokens(band string) []string {
	var tokens []string
	for _, p := range SplitBand(band) {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// CountArtists returns the number of non-empty artist names in band.
func CountArtists(band string) int {
	return len(BandTokens(band))
}

// Filter selects and orders the records shown in a view.
//
// Year, City, Event and Artist hold either [All] or a concrete selection.
// An empty string is a selection like any other: "" as City or Event picks
// records with that field blank, and "" as Year selects nothing. Start from
// [DefaultFilter] rather than the zero value. An empty Search matches everything.
type Filter struct {
	Year   string   `json:"year"`
	City   string   `json:"city"`
	Event  string   `json:"event"`
	Artist string   `json:"artist"`
	Search string   `json:"search"`
	Sort   SortMode `json:"sort"`
}

// DefaultFilter returns a filter that keeps every record, newest first.
func DefaultFilter() Filter {
	return Filter{
		Year:   All,
		City:   All,
		Event:  All,
		Artist: All,
		Sort:   SortDateDesc,
	}
}

// IsDefault reports whether f selects every record.
func (f Filter) IsDefault() bool {
	return f.Year == All && f.City == All && f.Event == All && f.Artist == All && f.Search == ""
}

// BandCount is an artist name with the number of times it appears in a view.
type BandCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats summarizes a view.
type Stats struct {
	TotalConcerts int         `json:"totalConcerts"`
	TotalSpent    float64     `json:"totalSpent"`
	TotalArtists  int         `json:"totalArtists"`
	UniqueArtists int         `json:"uniqueArtistsCount"`
	AvgCost       float64     `json:"avgCost"`
	TopBands      []BandCount `json:"topBands"`
}

// Options lists the distinct values each filter selector can take.
type Options struct {
	Years   []string   `json:"years"`
	Cities  []string   `json:"cities"`
	Events  []string   `json:"events"`
	Artists []string   `json:"artists"`
	Sorts   []SortMode `json:"sorts"`
}
