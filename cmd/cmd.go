// submodule cmd contains command definitions
package main

import (
	"strings"

	"github.com/desertthunder/gigs/internal/formatter"
	"github.com/desertthunder/gigs/internal/models"
	"github.com/urfave/cli/v3"
)

// filterFlags are shared by every command that computes a view.
func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "year",
			Usage: "Only concerts from this year",
			Value: models.All,
		},
		&cli.StringFlag{
			Name:  "city",
			Usage: "Only concerts in this city",
			Value: models.All,
		},
		&cli.StringFlag{
			Name:  "event",
			Usage: "Only concerts at this event (an empty value selects concerts without one)",
			Value: models.All,
		},
		&cli.StringFlag{
			Name:  "artist",
			Usage: "Only concerts where this artist played",
			Value: models.All,
		},
		&cli.StringFlag{
			Name:    "search",
			Aliases: []string{"s"},
			Usage:   "Case-insensitive text to look for in the band",
		},
		&cli.StringFlag{
			Name:  "sort",
			Usage: "Sort order: " + sortNames(),
			Value: string(models.SortDateDesc),
		},
	}
}

// concertFlags are the editable fields of a concert.
func concertFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "band",
			Aliases: []string{"b"},
			Usage:   "Band or comma-separated list of artists",
		},
		&cli.StringFlag{
			Name:    "date",
			Aliases: []string{"d"},
			Usage:   `Date, e.g. "25-feb-2025", "25/02/2025" or "25 febbraio 2025"`,
		},
		&cli.StringFlag{
			Name:  "city",
			Usage: "City",
		},
		&cli.StringFlag{
			Name:  "event",
			Usage: "Festival or event name",
		},
		&cli.StringFlag{
			Name:  "cost",
			Usage: "Ticket cost in euros (decimal point or comma)",
		},
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
		},
	}
}

func sortNames() string {
	names := make([]string, len(models.SortModes))
	for i, m := range models.SortModes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

func formatNames() string {
	names := make([]string, len(formatter.Formats))
	for i, f := range formatter.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// setupCommand initializes the config file and database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create the config file, initialize the database and seed it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   defaultConfigPath,
			},
			&cli.BoolFlag{
				Name:  "reset",
				Usage: "Discard the stored concerts and theme and reseed the built-in dataset",
			},
		},
		Action: r.Setup,
	}
}

func listCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List concerts matching the filters",
		Flags:   append(filterFlags(), outputFlags()...),
		Action:  r.List,
	}
}

func statsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "stats",
		Usage:  "Show totals, average cost and most seen artists for the filtered concerts",
		Flags:  append(filterFlags(), outputFlags()...),
		Action: r.Stats,
	}
}

func filtersCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "filters",
		Usage:  "Show the values available to each filter",
		Flags:  outputFlags(),
		Action: r.Filters,
	}
}

func addCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "add",
		Usage:  "Add a concert",
		Flags:  concertFlags(),
		Action: r.Add,
	}
}

// editCommand rebuilds a concert from its stored values and any flags given.
func editCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "edit",
		Usage: "Edit a concert; omitted flags keep their current value",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id"},
		},
		Flags:  concertFlags(),
		Action: r.Edit,
	}
}

func deleteCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "delete",
		Aliases: []string{"rm"},
		Usage:   "Delete a concert",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id"},
		},
		Action: r.Delete,
	}
}

func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the filtered concerts",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Export format: " + formatNames(),
				Value:   string(formatter.FormatMarkdown),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   `Output file path, "-" for stdout (default: concerts.{format}); a directory with --all`,
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Write every format plus a manifest into the output directory",
			},
		}, filterFlags()...),
		Action: r.Export,
	}
}

func importCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Import concerts from a JSON, YAML or CSV file",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "path"},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Input format (default: inferred from the file extension)",
			},
			&cli.BoolFlag{
				Name:  "replace",
				Usage: "Replace the whole collection instead of appending",
			},
		},
		Action: r.Import,
	}
}

// tuiCommand returns the top-level TUI command for interactive concert management.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive concert log",
		Action:  r.TUI,
	}
}
