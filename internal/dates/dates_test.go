package dates

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/gigs/internal/shared"
)

func TestParse(t *testing.T) {
	tc := []struct {
		name      string
		input     string
		canonical string
		year      int
	}{
		{name: "abbreviated month", input: "25 feb 2025", canonical: "25-feb-2025", year: 2025},
		{name: "full month name", input: "25 febbraio 2025", canonical: "25-feb-2025", year: 2025},
		{name: "abbrev with trailing dot", input: "3 set. 2019", canonical: "3-set-2019", year: 2019},
		{name: "upper case full name", input: "1 DICEMBRE 1999", canonical: "1-dic-1999", year: 1999},
		{name: "slashes", input: "25/02/2025", canonical: "25-feb-2025", year: 2025},
		{name: "dashes single digit month", input: "7-3-2024", canonical: "7-mar-2024", year: 2024},
		{name: "mixed separators", input: "07/3-2024", canonical: "07-mar-2024", year: 2024},
		{name: "canonical", input: "25-feb-2025", canonical: "25-feb-2025", year: 2025},
		{name: "canonical upper case", input: "25-FEB-2025", canonical: "25-feb-2025", year: 2025},
		{name: "day kept as typed", input: "05 giu 2023", canonical: "05-giu-2023", year: 2023},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if got.Canonical != tt.canonical {
				t.Errorf("Parse(%q).Canonical = %q, want %q", tt.input, got.Canonical, tt.canonical)
			}
			if got.Year != tt.year {
				t.Errorf("Parse(%q).Year = %d, want %d", tt.input, got.Year, tt.year)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tc := []struct {
		name  string
		input string
	}{
		{name: "month 13", input: "31/13/2025"},
		{name: "month 0", input: "1/0/2025"},
		{name: "free text", input: "not a date"},
		{name: "empty", input: ""},
		{name: "blank", input: "   "},
		{name: "english month", input: "25 february 2025"},
		{name: "unknown abbreviation", input: "25-foo-2025"},
		{name: "english abbreviation canonical", input: "25-may-2025"},
		{name: "two digit year", input: "25/02/25"},
		{name: "day zero", input: "0 feb 2025"},
		{name: "day 32", input: "32/01/2025"},
		{name: "year zero", input: "1 gen 0000"},
		{name: "iso format", input: "2025-02-25"},
		{name: "four letter abbreviation", input: "  3 Sett. 2019 "},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if !errors.Is(err, shared.ErrInvalidDate) {
				t.Error("ParseError should match shared.ErrInvalidDate")
			}
			if pe.Input != tt.input {
				t.Errorf("expected input %q recorded, got %q", tt.input, pe.Input)
			}
		})
	}
}

func TestToSortableInstant(t *testing.T) {
	t.Run("canonical values", func(t *testing.T) {
		got := ToSortableInstant("25-feb-2025")
		want := time.Date(2025, time.February, 25, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}

		if !ToSortableInstant("05-giu-2023").Equal(time.Date(2023, time.June, 5, 0, 0, 0, 0, time.UTC)) {
			t.Error("zero-padded day should be read")
		}
	})

	t.Run("malformed values sort oldest", func(t *testing.T) {
		malformed := []string{
			"", "25 feb 2025", "25/02/2025", "25-xyz-2025", "aa-feb-2025", "25-feb-20x5", "a-b", "1-feb-0",
			"99-feb-2025", "0-feb-2025", "32-gen-2025", "+5-feb-2025", "5-feb-02025", "1-gen-0000",
			"1-GEN-2024", " 1-gen-2024", "1-gen-2024-x",
		}
		for _, in := range malformed {
			if got := ToSortableInstant(in); !got.Equal(MinInstant) {
				t.Errorf("ToSortableInstant(%q) = %v, want MinInstant", in, got)
			}
		}
	})

	t.Run("ordering", func(t *testing.T) {
		a := ToSortableInstant("31-dic-2023")
		b := ToSortableInstant("1-gen-2024")
		if !a.Before(b) {
			t.Errorf("expected %v before %v", a, b)
		}
		if !MinInstant.Before(ToSortableInstant("1-gen-0001")) {
			t.Error("MinInstant must precede the earliest parseable date")
		}
	})

	t.Run("round trip never yields MinInstant", func(t *testing.T) {
		inputs := []string{"25 feb 2025", "25/02/2025", "25-feb-2025", "31 febbraio 2024", "1-1-0001", "9 ago 1987", "31/12/9999"}
		for _, in := range inputs {
			p, err := Parse(in)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", in, err)
			}
			if ToSortableInstant(p.Canonical).Equal(MinInstant) {
				t.Errorf("round trip of %q produced MinInstant", in)
			}
			if ToSortableInstant(p.Canonical).Year() != p.Year && !strings.Contains(in, "31 febbraio") {
				t.Errorf("instant year mismatch for %q", in)
			}
		}
	})

	t.Run("every month round trips", func(t *testing.T) {
		for m := time.January; m <= time.December; m++ {
			p, err := Parse("15 " + abbrevs[m-1] + " 2020")
			if err != nil {
				t.Fatalf("Parse month %d failed: %v", m, err)
			}
			if got := ToSortableInstant(p.Canonical).Month(); got != m {
				t.Errorf("month %d round tripped to %d", m, got)
			}
		}
	})
}

func TestDescribe(t *testing.T) {
	got := Describe("25-feb-2025")
	if !strings.Contains(got, "25") || !strings.Contains(got, "2025") {
		t.Errorf("expected long date to carry day and year, got %q", got)
	}
	if got == "25-feb-2025" {
		t.Error("expected canonical date to be rendered in long form")
	}

	if got := Describe("someday"); got != "someday" {
		t.Errorf("expected verbatim fallback, got %q", got)
	}
}
