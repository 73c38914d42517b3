package view

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/desertthunder/gigs/internal/models"
)

// Options collects the distinct selector values present in records.
//
// Years are newest first; cities, events and artists are in byte order.
func Options(records []models.Concert) models.Options {
	years := make(map[int]struct{})
	cities := make(map[string]struct{})
	events := make(map[string]struct{})
	artists := make(map[string]struct{})

	for _, c := range records {
		years[c.Year] = struct{}{}
		cities[c.City] = struct{}{}
		events[c.Event] = struct{}{}
		for _, tok := range models.BandTokens(c.Band) {
			artists[tok] = struct{}{}
		}
	}

	yearList := make([]int, 0, len(years))
	for y := range years {
		yearList = append(yearList, y)
	}
	slices.SortFunc(yearList, func(a, b int) int { return cmp.Compare(b, a) })

	opts := models.Options{
		Years:   make([]string, len(yearList)),
		Cities:  sortedKeys(cities),
		Events:  sortedKeys(events),
		Artists: sortedKeys(artists),
		Sorts:   slices.Clone(models.SortModes),
	}
	for i, y := range yearList {
		opts.Years[i] = strconv.Itoa(y)
	}
	return opts
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
