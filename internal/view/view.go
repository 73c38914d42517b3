package view

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/desertthunder/gigs/internal/dates"
	"github.com/desertthunder/gigs/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// topBandsLimit is the number of entries in [models.Stats.TopBands].
const topBandsLimit = 3

// View is the filtered and sorted subsequence of records plus its statistics.
type View struct {
	Concerts []models.Concert `json:"concerts"`
	Stats    models.Stats     `json:"stats"`
}

// Compute filters, sorts and summarizes records. The input slice is not modified.
func Compute(records []models.Concert, f models.Filter) View {
	concerts := Sort(Apply(records, f), f.Sort)
	return View{Concerts: concerts, Stats: Summarize(concerts)}
}

// Apply returns the records selected by f, in input order, as a new slice.
func Apply(records []models.Concert, f models.Filter) []models.Concert {
	preds := predicates(f)

	out := make([]models.Concert, 0, len(records))
	for _, c := range records {
		if matchesAll(c, preds) {
			out = append(out, c)
		}
	}
	return out
}

type predicate func(models.Concert) bool

func predicates(f models.Filter) []predicate {
	var preds []predicate

	if f.Year != models.All {
		year, err := strconv.Atoi(strings.TrimSpace(f.Year))
		if err != nil {
			return []predicate{func(models.Concert) bool { return false }}
		}
		preds = append(preds, func(c models.Concert) bool { return c.Year == year })
	}

	if f.City != models.All {
		city := strings.ToLower(f.City)
		preds = append(preds, func(c models.Concert) bool { return strings.ToLower(c.City) == city })
	}

	if f.Event != models.All {
		event := strings.ToLower(f.Event)
		preds = append(preds, func(c models.Concert) bool { return strings.ToLower(c.Event) == event })
	}

	if f.Artist != models.All {
		artist := strings.ToLower(f.Artist)
		preds = append(preds, func(c models.Concert) bool {
			return slices.ContainsFunc(models.SplitBand(c.Band), func(tok string) bool {
				return strings.ToLower(tok) == artist
			})
		})
	}

	if f.Search != "" {
		term := strings.ToLower(f.Search)
		preds = append(preds, func(c models.Concert) bool { return strings.Contains(strings.ToLower(c.Band), term) })
	}

	return preds
}

func matchesAll(c models.Concert, preds []predicate) bool {
	for _, p := range preds {
		if !p(c) {
			return false
		}
	}
	return true
}

// Sort returns a stably sorted copy of records. An unknown mode keeps input order.
func Sort(records []models.Concert, mode models.SortMode) []models.Concert {
	out := slices.Clone(records)
	if !mode.Valid() {
		return out
	}
	slices.SortStableFunc(out, comparator(mode))
	return out
}

func comparator(mode models.SortMode) func(a, b models.Concert) int {
	byDate := func(a, b models.Concert) int {
		return dates.ToSortableInstant(a.Date).Compare(dates.ToSortableInstant(b.Date))
	}
	byCost := func(a, b models.Concert) int { return cmp.Compare(a.Cost, b.Cost) }

	switch mode {
	case models.SortDateDesc:
		return reverse(byDate)
	case models.SortDateAsc:
		return byDate
	case models.SortCostDesc:
		return reverse(byCost)
	case models.SortCostAsc:
		return byCost
	case models.SortBandAsc, models.SortBandDesc:
		coll := collate.New(language.Italian)
		byBand := func(a, b models.Concert) int { return coll.CompareString(a.Band, b.Band) }
		if mode == models.SortBandDesc {
			return reverse(byBand)
		}
		return byBand
	default:
		return nil
	}
}

func reverse(fn func(a, b models.Concert) int) func(a, b models.Concert) int {
	return func(a, b models.Concert) int { return fn(b, a) }
}

// Summarize aggregates records, which are normally the output of [Apply] and [Sort].
func Summarize(records []models.Concert) models.Stats {
	stats := models.Stats{TopBands: []models.BandCount{}}

	var order []string
	counts := make(map[string]int)

	for _, c := range records {
		stats.TotalConcerts++
		stats.TotalSpent += c.Cost
		stats.TotalArtists += c.Artists

		for _, tok := range models.BandTokens(c.Band) {
			if _, seen := counts[tok]; !seen {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	stats.UniqueArtists = len(counts)
	if stats.TotalConcerts > 0 {
		stats.AvgCost = stats.TotalSpent / float64(stats.TotalConcerts)
	}

	ranked := make([]models.BandCount, len(order))
	for i, name := range order {
		ranked[i] = models.BandCount{Name: name, Count: counts[name]}
	}
	slices.SortStableFunc(ranked, func(a, b models.BandCount) int { return cmp.Compare(b.Count, a.Count) })
	if len(ranked) > topBandsLimit {
		ranked = ranked[:topBandsLimit]
	}
	stats.TopBands = append(stats.TopBands, ranked...)

	return stats
}
