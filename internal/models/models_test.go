package models

import (
	"slices"
	"testing"
)

func TestBandTokens(t *testing.T) {
	tc := []struct {
		name   string
		band   string
		tokens []string
		split  []string
	}{
		{name: "single", band: "Foo", tokens: []string{"Foo"}, split: []string{"Foo"}},
		{name: "list with spaces", band: "Foo,  Bar ,Baz", tokens: []string{"Foo", "Bar", "Baz"}, split: []string{"Foo", "Bar", "Baz"}},
		{name: "trailing comma", band: "Foo, ", tokens: []string{"Foo"}, split: []string{"Foo", ""}},
		{name: "empty", band: "", tokens: nil, split: []string{""}},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := BandTokens(tt.band); !slices.Equal(got, tt.tokens) {
				t.Errorf("BandTokens(%q) = %q, want %q", tt.band, got, tt.tokens)
			}
			if got := SplitBand(tt.band); !slices.Equal(got, tt.split) {
				t.Errorf("SplitBand(%q) = %q, want %q", tt.band, got, tt.split)
			}
			if got := CountArtists(tt.band); got != len(tt.tokens) {
				t.Errorf("CountArtists(%q) = %d, want %d", tt.band, got, len(tt.tokens))
			}
		})
	}
}

func TestFilter(t *testing.T) {
	f := DefaultFilter()
	if !f.IsDefault() {
		t.Error("default filter should select everything")
	}
	if f.Sort != SortDateDesc {
		t.Errorf("expected default sort %s, got %s", SortDateDesc, f.Sort)
	}

	f.Search = "foo"
	if f.IsDefault() {
		t.Error("filter with a search term is not the default")
	}
}

func TestSortMode(t *testing.T) {
	t.Run("ParseSortMode", func(t *testing.T) {
		tc := []struct {
			in   string
			want SortMode
			ok   bool
		}{
			{in: "cost-asc", want: SortCostAsc, ok: true},
			{in: "DATE-DESC", want: SortDateDesc, ok: true},
			{in: "Band (Z-A)", want: SortBandDesc, ok: true},
			{in: " costo (alto) ", want: SortCostDesc, ok: true},
			{in: "random", ok: false},
		}

		for _, tt := range tc {
			t.Run(tt.in, func(t *testing.T) {
				got, err := ParseSortMode(tt.in)
				if (err == nil) != tt.ok {
					t.Fatalf("ParseSortMode(%q) error = %v", tt.in, err)
				}
				if got != tt.want {
					t.Errorf("ParseSortMode(%q) = %s, want %s", tt.in, got, tt.want)
				}
			})
		}
	})

	t.Run("Next wraps", func(t *testing.T) {
		if got := SortBandDesc.Next(); got != SortDateDesc {
			t.Errorf("expected wrap to %s, got %s", SortDateDesc, got)
		}
		if got := SortMode("bogus").Next(); got != SortDateDesc {
			t.Errorf("unknown mode should restart the cycle, got %s", got)
		}
	})

	t.Run("Label", func(t *testing.T) {
		if SortCostAsc.Label() != "Costo (basso)" {
			t.Errorf("unexpected label %q", SortCostAsc.Label())
		}
		if SortMode("x").Label() != "x" || SortMode("x").Valid() {
			t.Error("unknown mode should render raw and be invalid")
		}
	})
}
