package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/gigs/internal/shared"
	"github.com/desertthunder/gigs/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive concert log.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(r.config.Log.File, r.config.Log.MaxSizeMB, r.config.Log.MaxBackups)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	shared.SetLogLevel(fileLogger, shared.ParseLogLevel(r.config.Log.Level))
	r.SetLogger(fileLogger)

	st, err := r.openStore()
	if err != nil {
		return err
	}

	opts := ui.Options{Logger: fileLogger, Theme: r.config.UI.Theme}
	if path := r.config.Database.Path; path != ":memory:" {
		w, err := ui.NewWatcher(path, ui.DefaultDebounce)
		if err != nil {
			fileLogger.Warn("live reload disabled", "error", err)
		} else {
			defer w.Close()
			opts.Watcher = w
		}
	}

	p := tea.NewProgram(ui.NewModel(st, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
