package models

import (
	"fmt"
	"strings"
)

// SortMode names one of the orderings a view can use.
type SortMode string

const (
	SortDateDesc SortMode = "date-desc"
	SortDateAsc  SortMode = "date-asc"
	SortCostDesc SortMode = "cost-desc"
	SortCostAsc  SortMode = "cost-asc"
	SortBandAsc  SortMode = "band-asc"
	SortBandDesc SortMode = "band-desc"
)

// SortModes lists every [SortMode] in display order.
var SortModes = []SortMode{SortDateDesc, SortDateAsc, SortCostDesc, SortCostAsc, SortBandAsc, SortBandDesc}

var sortLabels = map[SortMode]string{
	SortDateDesc: "Data (recente)",
	SortDateAsc:  "Data (vecchia)",
	SortCostDesc: "Costo (alto)",
	SortCostAsc:  "Costo (basso)",
	SortBandAsc:  "Band (A-Z)",
	SortBandDesc: "Band (Z-A)",
}

// Label returns the display label of the mode, or the raw value when unknown.
func (m SortMode) Label() string {
	if l, ok := sortLabels[m]; ok {
		return l
	}
	return string(m)
}

// Valid reports whether m is one of [SortModes].
func (m SortMode) Valid() bool {
	_, ok := sortLabels[m]
	return ok
}

// Next returns the mode following m in [SortModes], wrapping around.
func (m SortMode) Next() SortMode {
	for i, s := range SortModes {
		if s == m {
			return SortModes[(i+1)%len(SortModes)]
		}
	}
	return SortModes[0]
}

// ParseSortMode accepts a mode name ("cost-asc") or its display label ("Costo (basso)"), case-insensitively.
func ParseSortMode(s string) (SortMode, error) {
	s = strings.TrimSpace(s)
	for _, m := range SortModes {
		if strings.EqualFold(s, string(m)) || strings.EqualFold(s, sortLabels[m]) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown sort mode %q", s)
}
