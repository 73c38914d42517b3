package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/desertthunder/gigs/internal/form"
	"github.com/desertthunder/gigs/internal/formatter"
	"github.com/desertthunder/gigs/internal/models"
	"github.com/desertthunder/gigs/internal/shared"
	"github.com/desertthunder/gigs/internal/view"
	"github.com/urfave/cli/v3"
)

// filterFromFlags reads [filterFlags] into a [models.Filter].
func filterFromFlags(cmd *cli.Command) (models.Filter, error) {
	mode, err := models.ParseSortMode(cmd.String("sort"))
	if err != nil {
		return models.Filter{}, fmt.Errorf("%w: --sort: %v", shared.ErrInvalidFlag, err)
	}

	return models.Filter{
		Year:   cmd.String("year"),
		City:   cmd.String("city"),
		Event:  cmd.String("event"),
		Artist: cmd.String("artist"),
		Search: cmd.String("search"),
		Sort:   mode,
	}, nil
}

func (r *Runner) computeView(cmd *cli.Command) (view.View, error) {
	f, err := filterFromFlags(cmd)
	if err != nil {
		return view.View{}, err
	}

	st, err := r.openStore()
	if err != nil {
		return view.View{}, err
	}

	r.logger.Debug("computing view", "filter", f)
	return view.Compute(st.All(), f), nil
}

// List prints the concerts matching the filter flags as a table.
func (r *Runner) List(ctx context.Context, cmd *cli.Command) error {
	v, err := r.computeView(cmd)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(v.Concerts, cmd.Bool("pretty"))
	}

	if len(v.Concerts) == 0 {
		return r.writePlain("No concerts found\n")
	}

	rows := make([][]string, len(v.Concerts))
	for i, c := range v.Concerts {
		rows[i] = []string{c.ID, c.Band, c.Date, c.City, c.Event, strconv.Itoa(c.Artists), formatter.FormatCost(c.Cost)}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Band", "Date", "City", "Event", "Artists", "Cost").
		Rows(rows...)

	if err := r.writePlain("%s\n", t.Render()); err != nil {
		return err
	}
	return r.writePlain("%d concerts, %s total\n", v.Stats.TotalConcerts, formatter.FormatCost(v.Stats.TotalSpent))
}

// Stats prints the statistics of the concerts matching the filter flags.
func (r *Runner) Stats(ctx context.Context, cmd *cli.Command) error {
	v, err := r.computeView(cmd)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(v.Stats, cmd.Bool("pretty"))
	}

	s := v.Stats
	r.writePlainHeader("Concert statistics")
	r.writePlain("Concerts:       %d\n", s.TotalConcerts)
	r.writePlain("Total spent:    %s\n", formatter.FormatCost(s.TotalSpent))
	r.writePlain("Average cost:   %s\n", formatter.FormatCost(s.AvgCost))
	r.writePlain("Artists seen:   %d\n", s.TotalArtists)
	r.writePlain("Unique artists: %d\n", s.UniqueArtists)

	if len(s.TopBands) > 0 {
		r.writePlainln("Most seen:")
		for i, b := range s.TopBands {
			r.writePlain("%d. %s (%d)\n", i+1, b.Name, b.Count)
		}
	}
	return nil
}

// Filters prints the values each filter can take over the whole collection.
func (r *Runner) Filters(ctx context.Context, cmd *cli.Command) error {
	st, err := r.openStore()
	if err != nil {
		return err
	}

	opts := view.Options(st.All())
	if cmd.Bool("json") {
		return r.writeJSON(opts, cmd.Bool("pretty"))
	}

	quoted := func(vals []string) string {
		out := make([]string, len(vals))
		for i, v := range vals {
			out[i] = strconv.Quote(v)
		}
		return strings.Join(out, ", ")
	}

	r.writePlain("Years:   %s\n", strings.Join(opts.Years, ", "))
	r.writePlain("Cities:  %s\n", quoted(opts.Cities))
	r.writePlain("Events:  %s\n", quoted(opts.Events))
	r.writePlain("Artists: %s\n", quoted(opts.Artists))
	r.writePlain("Sorts:   %s\n", sortNames())
	return nil
}

func inputFromFlags(cmd *cli.Command, base form.Input) form.Input {
	for name, dst := range map[string]*string{
		"band":  &base.Band,
		"date":  &base.Date,
		"city":  &base.City,
		"event": &base.Event,
		"cost":  &base.Cost,
	} {
		if cmd.IsSet(name) {
			*dst = cmd.String(name)
		}
	}
	return base
}

// Add validates the concert flags and stores a new concert.
func (r *Runner) Add(ctx context.Context, cmd *cli.Command) error {
	c, err := form.ValidateAndBuild(inputFromFlags(cmd, form.Input{}), "")
	if err != nil {
		return fmt.Errorf("invalid concert: %w", err)
	}

	st, err := r.openStore()
	if err != nil {
		return err
	}

	if c, err = st.Add(c); err != nil {
		return fmt.Errorf("failed to add concert: %w", err)
	}

	r.logger.Info("concert added", "id", c.ID, "band", c.Band)
	return r.writePlain("✓ Added %s on %s (%s)\n", c.Band, c.Date, c.ID)
}

// Edit rebuilds the concert with the given id from its stored values overridden by any flags set.
func (r *Runner) Edit(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: concert id is required", shared.ErrMissingArgument)
	}

	st, err := r.openStore()
	if err != nil {
		return err
	}

	existing, ok := st.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrConcertNotFound, id)
	}

	c, err := form.ValidateAndBuild(inputFromFlags(cmd, form.FromConcert(existing)), id)
	if err != nil {
		return fmt.Errorf("invalid concert: %w", err)
	}

	if c, err = st.Update(c); err != nil {
		return fmt.Errorf("failed to update concert: %w", err)
	}

	r.logger.Info("concert updated", "id", c.ID)
	return r.writePlain("✓ Updated %s on %s\n", c.Band, c.Date)
}

// Delete removes the concert with the given id.
func (r *Runner) Delete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: concert id is required", shared.ErrMissingArgument)
	}

	st, err := r.openStore()
	if err != nil {
		return err
	}

	if err := st.Delete(id); err != nil {
		return fmt.Errorf("failed to delete concert: %w", err)
	}

	r.logger.Info("concert deleted", "id", id)
	return r.writePlain("✓ Deleted %s\n", id)
}
