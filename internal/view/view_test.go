package view

import (
	"math"
	"slices"
	"testing"

	"github.com/desertthunder/gigs/internal/models"
)

func concert(id, band, date, city, event string, cost float64, year int) models.Concert {
	return models.Concert{
		ID:      id,
		Band:    band,
		Date:    date,
		City:    city,
		Event:   event,
		Cost:    cost,
		Year:    year,
		Artists: models.CountArtists(band),
	}
}

func ids(cs []models.Concert) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func fixtures() []models.Concert {
	return []models.Concert{
		concert("1", "Foo Fighters, Bar", "25-feb-2025", "Milano", "Tour 2025", 80, 2025),
		concert("2", "Bar", "3-lug-2024", "Roma", "Rock in Roma", 45.5, 2024),
		concert("3", "Iron Maiden", "12-giu-2024", "milano", "I-Days", 95, 2024),
		concert("4", "Ghost", "not a date", "Bologna", "", 0, 0),
		concert("5", "bar, Foo Fighters", "1-gen-2025", "Torino", "Tour 2025", 60, 2025),
	}
}

func TestCompute(t *testing.T) {
	t.Run("default filter keeps every record", func(t *testing.T) {
		records := fixtures()
		v := Compute(records, models.DefaultFilter())

		if len(v.Concerts) != len(records) {
			t.Fatalf("expected %d records, got %d", len(records), len(v.Concerts))
		}
		want := []string{"1", "5", "2", "3", "4"}
		if got := ids(v.Concerts); !slices.Equal(got, want) {
			t.Errorf("expected date-desc order %v, got %v", want, got)
		}
	})

	t.Run("does not modify input", func(t *testing.T) {
		records := fixtures()
		before := ids(records)
		f := models.DefaultFilter()
		f.Sort = models.SortCostAsc
		Compute(records, f)

		if got := ids(records); !slices.Equal(got, before) {
			t.Errorf("input reordered: %v", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		v := Compute(nil, models.DefaultFilter())

		if len(v.Concerts) != 0 {
			t.Errorf("expected empty view, got %d", len(v.Concerts))
		}
		if v.Stats.TotalConcerts != 0 || v.Stats.TotalSpent != 0 || v.Stats.TotalArtists != 0 || v.Stats.UniqueArtists != 0 {
			t.Errorf("expected zero stats, got %+v", v.Stats)
		}
		if v.Stats.AvgCost != 0 || math.IsNaN(v.Stats.AvgCost) {
			t.Errorf("expected avgCost exactly 0, got %v", v.Stats.AvgCost)
		}
		if v.Stats.TopBands == nil || len(v.Stats.TopBands) != 0 {
			t.Errorf("expected empty, non-nil top bands, got %#v", v.Stats.TopBands)
		}
	})

	t.Run("stats follow the filtered view", func(t *testing.T) {
		f := models.DefaultFilter()
		f.Year = "2024"
		v := Compute(fixtures(), f)

		if v.Stats.TotalConcerts != 2 {
			t.Fatalf("expected 2 concerts, got %d", v.Stats.TotalConcerts)
		}
		if v.Stats.TotalSpent != 140.5 {
			t.Errorf("expected total 140.5, got %v", v.Stats.TotalSpent)
		}
		if v.Stats.AvgCost != 70.25 {
			t.Errorf("expected average 70.25, got %v", v.Stats.AvgCost)
		}
	})
}

func TestApply(t *testing.T) {
	tc := []struct {
		name   string
		modify func(*models.Filter)
		want   []string
	}{
		{name: "year", modify: func(f *models.Filter) { f.Year = "2025" }, want: []string{"1", "5"}},
		{name: "non numeric year selects nothing", modify: func(f *models.Filter) { f.Year = "last year" }, want: []string{}},
		{name: "city ignores case", modify: func(f *models.Filter) { f.City = "MILANO" }, want: []string{"1", "3"}},
		{name: "city is exact", modify: func(f *models.Filter) { f.City = "Mil" }, want: []string{}},
		{name: "event", modify: func(f *models.Filter) { f.Event = "tour 2025" }, want: []string{"1", "5"}},
		{name: "empty event is a concrete selection", modify: func(f *models.Filter) { f.Event = "" }, want: []string{"4"}},
		{name: "artist token ignores case", modify: func(f *models.Filter) { f.Artist = "bar" }, want: []string{"1", "2", "5"}},
		{name: "artist must be a whole token", modify: func(f *models.Filter) { f.Artist = "Foo" }, want: []string{}},
		{name: "search substring ignores case", modify: func(f *models.Filter) { f.Search = "FIGHTERS" }, want: []string{"1", "5"}},
		{name: "search spans separators", modify: func(f *models.Filter) { f.Search = "fighters, bar" }, want: []string{"1"}},
		{name: "zero value filter selects nothing", modify: func(f *models.Filter) { *f = models.Filter{} }, want: []string{}},
		{name: "combined", modify: func(f *models.Filter) { f.Year = "2025"; f.City = "torino"; f.Artist = "Foo Fighters" }, want: []string{"5"}},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			f := models.DefaultFilter()
			tt.modify(&f)

			got := ids(Apply(fixtures(), f))
			if !slices.Equal(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSort(t *testing.T) {
	t.Run("cost ascending is stable", func(t *testing.T) {
		records := []models.Concert{
			{ID: "a", Cost: 30},
			{ID: "b", Cost: 10},
			{ID: "c", Cost: 20},
			{ID: "d", Cost: 10},
			{ID: "e"},
		}

		got := ids(Sort(records, models.SortCostAsc))
		want := []string{"e", "b", "d", "c", "a"}
		if !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("cost descending is stable", func(t *testing.T) {
		records := []models.Concert{{ID: "a", Cost: 10}, {ID: "b", Cost: 30}, {ID: "c", Cost: 10}}

		got := ids(Sort(records, models.SortCostDesc))
		want := []string{"b", "a", "c"}
		if !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("cost values", func(t *testing.T) {
		records := []models.Concert{{ID: "30", Cost: 30}, {ID: "10", Cost: 10}, {ID: "20", Cost: 20}}

		got := ids(Sort(records, models.SortCostAsc))
		if want := []string{"10", "20", "30"}; !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("date ascending puts malformed first", func(t *testing.T) {
		got := ids(Sort(fixtures(), models.SortDateAsc))
		want := []string{"4", "3", "2", "5", "1"}
		if !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("equal dates keep input order", func(t *testing.T) {
		records := []models.Concert{
			{ID: "a", Date: "1-mag-2024"},
			{ID: "b", Date: "01-mag-2024"},
			{ID: "c", Date: "bad"},
			{ID: "d", Date: ""},
		}

		got := ids(Sort(records, models.SortDateDesc))
		want := []string{"a", "b", "c", "d"}
		if !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("band uses collation", func(t *testing.T) {
		records := []models.Concert{
			{ID: "z", Band: "zucchero"},
			{ID: "E", Band: "Elisa"},
			{ID: "a", Band: "afterhours"},
			{ID: "e", Band: "Èlodie"},
		}

		got := ids(Sort(records, models.SortBandAsc))
		want := []string{"a", "E", "e", "z"}
		if !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}

		got = ids(Sort(records, models.SortBandDesc))
		slices.Reverse(want)
		if !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("unknown mode keeps order", func(t *testing.T) {
		records := fixtures()
		got := ids(Sort(records, models.SortMode("shuffle")))
		if want := ids(records); !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})
}

func TestSummarize(t *testing.T) {
	t.Run("unique artists and top bands", func(t *testing.T) {
		records := []models.Concert{
			concert("1", "Foo, Bar", "", "", "", 10, 0),
			concert("2", "Foo, Bar", "", "", "", 20, 0),
			concert("3", "Bar", "", "", "", 0, 0),
		}

		stats := Summarize(records)

		if stats.UniqueArtists != 2 {
			t.Errorf("expected 2 unique artists, got %d", stats.UniqueArtists)
		}
		want := []models.BandCount{{Name: "Bar", Count: 3}, {Name: "Foo", Count: 2}}
		if !slices.Equal(stats.TopBands, want) {
			t.Errorf("expected %v, got %v", want, stats.TopBands)
		}
		if stats.TotalArtists != 5 {
			t.Errorf("expected 5 total artists, got %d", stats.TotalArtists)
		}
		if stats.TotalSpent != 30 || stats.AvgCost != 10 {
			t.Errorf("unexpected spend totals %+v", stats)
		}
	})

	t.Run("ties keep first occurrence and cap at three", func(t *testing.T) {
		records := []models.Concert{
			concert("1", "D", "", "", "", 0, 0),
			concert("2", "C, B", "", "", "", 0, 0),
			concert("3", "A, B", "", "", "", 0, 0),
			concert("4", "E", "", "", "", 0, 0),
		}

		stats := Summarize(records)
		want := []models.BandCount{{Name: "B", Count: 2}, {Name: "D", Count: 1}, {Name: "C", Count: 1}}
		if !slices.Equal(stats.TopBands, want) {
			t.Errorf("expected %v, got %v", want, stats.TopBands)
		}
	})

	t.Run("unique count is case sensitive", func(t *testing.T) {
		records := []models.Concert{
			concert("1", "Bar", "", "", "", 0, 0),
			concert("2", "bar", "", "", "", 0, 0),
		}

		if got := Summarize(records).UniqueArtists; got != 2 {
			t.Errorf("expected case-sensitive unique count 2, got %d", got)
		}

		f := models.DefaultFilter()
		f.Artist = "BAR"
		if got := len(Apply(records, f)); got != 2 {
			t.Errorf("expected case-insensitive artist filter to keep both, got %d", got)
		}
	})

	t.Run("total artists uses stored count", func(t *testing.T) {
		records := []models.Concert{{Band: "A, B, C", Artists: 1}}
		if got := Summarize(records).TotalArtists; got != 1 {
			t.Errorf("expected stored artists count 1, got %d", got)
		}
	})

	t.Run("empty tokens are ignored", func(t *testing.T) {
		records := []models.Concert{concert("1", "A, , B,", "", "", "", 0, 0)}
		if got := Summarize(records).UniqueArtists; got != 2 {
			t.Errorf("expected 2 unique artists, got %d", got)
		}
	})
}

func TestOptions(t *testing.T) {
	opts := Options(fixtures())

	if want := []string{"2025", "2024", "0"}; !slices.Equal(opts.Years, want) {
		t.Errorf("expected years %v, got %v", want, opts.Years)
	}
	if want := []string{"Bologna", "Milano", "Roma", "Torino", "milano"}; !slices.Equal(opts.Cities, want) {
		t.Errorf("expected cities %v, got %v", want, opts.Cities)
	}
	if want := []string{"", "I-Days", "Rock in Roma", "Tour 2025"}; !slices.Equal(opts.Events, want) {
		t.Errorf("expected events %v, got %v", want, opts.Events)
	}
	if want := []string{"Bar", "Foo Fighters", "Ghost", "Iron Maiden", "bar"}; !slices.Equal(opts.Artists, want) {
		t.Errorf("expected artists %v, got %v", want, opts.Artists)
	}
	if !slices.Equal(opts.Sorts, models.SortModes) {
		t.Errorf("expected every sort mode, got %v", opts.Sorts)
	}
}
