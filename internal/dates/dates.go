// Package dates converts human-entered concert dates into the canonical
// "D-mon-YYYY" form stored on every record, using Italian month names.
//
// [Parse] is the lenient entry-time parser. [ToSortableInstant] is the strict
// sort-time path that only understands the canonical form.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/gigs/internal/shared"
)

// abbrevs maps month numbers (index+1) to their canonical abbreviation.
var abbrevs = [12]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"}

var fullNames = [12]string{
	"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
	"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
}

// monthNames resolves both full names and abbreviations to a month number.
var monthNames = func() map[string]int {
	m := make(map[string]int, 24)
	for i := range abbrevs {
		m[abbrevs[i]] = i + 1
		m[fullNames[i]] = i + 1
	}
	return m
}()

// MinInstant is returned by [ToSortableInstant] for values it cannot read.
// Parsed years start at 1, so it sorts strictly before every parsed date.
var MinInstant = time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC)

// Parsed is a successfully parsed date.
type Parsed struct {
	Canonical string
	Year      int
}

// ParseError reports a date string that matches no accepted shape.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid date %q: %s (try \"25 feb 2025\", \"25/02/2025\" or \"25 febbraio 2025\")", e.Input, e.Reason)
}

// Unwrap lets callers match [shared.ErrInvalidDate].
func (e *ParseError) Unwrap() error { return shared.ErrInvalidDate }

// matcher tries one input shape. ok is false when the shape does not apply,
// in which case the next matcher is tried.
type matcher func(s string) (day, month int, dayText, yearText string, ok bool)

var (
	namedRe     = regexp.MustCompile(`^(\d{1,2})\s+(\p{L}+)\s+(\d{4})$`)
	numericRe   = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)
	canonicalRe = regexp.MustCompile(`^(\d{1,2})-([a-z]{3})-(\d{4})$`)
)

// matchers are tried in order; the first one that applies wins.
var matchers = []matcher{
	// "25 febbraio 2025", "25 feb 2025"
	func(s string) (int, int, string, string, bool) {
		m := namedRe.FindStringSubmatch(s)
		if m == nil {
			return 0, 0, "", "", false
		}
		month, ok := monthNames[m[2]]
		if !ok {
			return 0, 0, "", "", false
		}
		day, _ := strconv.Atoi(m[1])
		return day, month, m[1], m[3], true
	},
	// "25/02/2025", "25-2-2025"
	func(s string) (int, int, string, string, bool) {
		m := numericRe.FindStringSubmatch(s)
		if m == nil {
			return 0, 0, "", "", false
		}
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return 0, 0, "", "", false
		}
		day, _ := strconv.Atoi(m[1])
		return day, month, m[1], m[3], true
	},
	// "25-feb-2025"
	func(s string) (int, int, string, string, bool) {
		m := canonicalRe.FindStringSubmatch(s)
		if m == nil {
			return 0, 0, "", "", false
		}
		month := abbrevMonth(m[2])
		if month == 0 {
			return 0, 0, "", "", false
		}
		day, _ := strconv.Atoi(m[1])
		return day, month, m[1], m[3], true
	},
}

// Parse reads raw in any accepted shape and returns its canonical form and year.
//
// The day is kept as typed, so "05 feb 2025" becomes "05-feb-2025".
func Parse(raw string) (Parsed, error) {
	s := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), ".", "")
	if s == "" {
		return Parsed{}, &ParseError{Input: raw, Reason: "empty"}
	}

	for _, match := range matchers {
		day, month, dayText, yearText, ok := match(s)
		if !ok {
			continue
		}
		if day < 1 || day > 31 {
			return Parsed{}, &ParseError{Input: raw, Reason: "day out of range"}
		}
		year, _ := strconv.Atoi(yearText)
		if year < 1 {
			return Parsed{}, &ParseError{Input: raw, Reason: "year out of range"}
		}
		return Parsed{
			Canonical: fmt.Sprintf("%s-%s-%s", dayText, abbrevs[month-1], yearText),
			Year:      year,
		}, nil
	}

	return Parsed{}, &ParseError{Input: raw, Reason: "unrecognized format"}
}

// ToSortableInstant converts a canonical date into a comparable instant.
//
// Only the canonical shape is read, with the same day and year ranges [Parse]
// enforces. Anything else yields [MinInstant].
func ToSortableInstant(canonical string) time.Time {
	m := canonicalRe.FindStringSubmatch(canonical)
	if m == nil {
		return MinInstant
	}

	month := abbrevMonth(m[2])
	day, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[3])
	if month == 0 || day < 1 || day > 31 || year < 1 {
		return MinInstant
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func abbrevMonth(abbr string) int {
	for i, a := range abbrevs {
		if a == abbr {
			return i + 1
		}
	}
	return 0
}
