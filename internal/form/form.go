// Package form validates user-entered concert fields and builds complete records.
//
// [Derive] is the single routine that computes the stored derived fields (canonical
// date, year and artist count); every write path goes through it.
package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/desertthunder/gigs/internal/dates"
	"github.com/desertthunder/gigs/internal/models"
	"github.com/desertthunder/gigs/internal/shared"
)

// Validation rules reported by [ValidationError].
const (
	RuleRequired    = "required"
	RuleFormat      = "format"
	RuleNumeric     = "numeric"
	RuleNonNegative = "non-negative"
)

// Input holds the raw text of each form field.
type Input struct {
	Band  string
	Date  string
	City  string
	Event string
	Cost  string
}

// FromConcert pre-fills an Input with the stored values of c, as the edit form does.
func FromConcert(c models.Concert) Input {
	return Input{
		Band:  c.Band,
		Date:  c.Date,
		City:  c.City,
		Event: c.Event,
		Cost:  strconv.FormatFloat(c.Cost, 'f', -1, 64),
	}
}

// ValidationError names the field and rule that rejected an input.
type ValidationError struct {
	Field string
	Rule  string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Field, e.Rule, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Rule)
}

// Unwrap exposes the cause when there is one (a [dates.ParseError] for dates),
// otherwise [shared.ErrInvalidInput].
func (e *ValidationError) Unwrap() []error {
	if e.Err != nil {
		return []error{shared.ErrInvalidInput, e.Err}
	}
	return []error{shared.ErrInvalidInput}
}

// ValidateAndBuild checks in and returns a complete record.
//
// existingID is kept when editing; an empty existingID gets a fresh id.
func ValidateAndBuild(in Input, existingID string) (models.Concert, error) {
	for _, f := range []struct{ name, value string }{
		{"band", in.Band},
		{"date", in.Date},
		{"city", in.City},
	} {
		if strings.TrimSpace(f.value) == "" {
			return models.Concert{}, &ValidationError{Field: f.name, Rule: RuleRequired}
		}
	}

	parsed, err := dates.Parse(in.Date)
	if err != nil {
		return models.Concert{}, &ValidationError{Field: "date", Rule: RuleFormat, Err: err}
	}

	cost, err := ParseCost(in.Cost)
	if err != nil {
		return models.Concert{}, err
	}

	id := existingID
	if id == "" {
		id = shared.GenerateID()
	}

	return models.Concert{
		ID:      id,
		Band:    strings.TrimSpace(in.Band),
		Date:    parsed.Canonical,
		City:    strings.TrimSpace(in.City),
		Event:   strings.TrimSpace(in.Event),
		Cost:    cost,
		Year:    parsed.Year,
		Artists: models.CountArtists(in.Band),
	}, nil
}

// ParseCost reads a cost typed with either a decimal point or a decimal comma.
// An empty value is 0.
func ParseCost(raw string) (float64, error) {
	s := strings.Replace(strings.TrimSpace(raw), ",", ".", 1)
	if s == "" {
		return 0, nil
	}

	cost, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return 0, &ValidationError{Field: "cost", Rule: RuleNumeric, Err: fmt.Errorf("%q is not a number", raw)}
	}
	if cost < 0 {
		return 0, &ValidationError{Field: "cost", Rule: RuleNonNegative}
	}
	return cost, nil
}

// Derive recomputes the stored derived fields of c from its band and date.
//
// The date may be in any shape [dates.Parse] accepts; it is rewritten in canonical form.
func Derive(c models.Concert) (models.Concert, error) {
	parsed, err := dates.Parse(c.Date)
	if err != nil {
		return c, &ValidationError{Field: "date", Rule: RuleFormat, Err: err}
	}
	if c.Cost < 0 || math.IsNaN(c.Cost) || math.IsInf(c.Cost, 0) {
		return c, &ValidationError{Field: "cost", Rule: RuleNonNegative}
	}

	c.Date = parsed.Canonical
	c.Year = parsed.Year
	c.Artists = models.CountArtists(c.Band)
	return c, nil
}
