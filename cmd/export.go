package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/gigs/internal/formatter"
	"github.com/desertthunder/gigs/internal/shared"
	"github.com/desertthunder/gigs/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Export writes the concerts matching the filter flags in the requested format.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("all") {
		return r.exportAll(ctx, cmd)
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return fmt.Errorf("%w: --format: %v", shared.ErrInvalidFlag, err)
	}

	v, err := r.computeView(cmd)
	if err != nil {
		return err
	}

	path, err := formatter.WriteExport(v, format, cmd.String("output"), r.output)
	if err != nil {
		return fmt.Errorf("failed to export concerts: %w", err)
	}

	r.logger.Info("exported concerts", "format", format, "count", len(v.Concerts), "path", path)
	if path == "-" {
		return nil
	}
	return r.writePlain("✓ Exported %d concerts to %s\n", len(v.Concerts), path)
}

// Import reads concerts from a file and appends them to the collection, or replaces it with --replace.
//
// Imported records are re-derived on the way in; an invalid record or a duplicate id aborts the whole import.
func (r *Runner) Import(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		return fmt.Errorf("%w: file path is required", shared.ErrMissingArgument)
	}

	var (
		format formatter.Format
		err    error
	)
	if name := cmd.String("format"); name != "" {
		format, err = formatter.ParseFormat(name)
	} else {
		format, err = formatter.FormatFromPath(path)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	imported, err := formatter.ParseConcerts(data, format)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	st, err := r.openStore()
	if err != nil {
		return err
	}

	if cmd.Bool("replace") {
		err = st.Replace(imported)
	} else {
		err = st.Append(imported)
	}
	if err != nil {
		return fmt.Errorf("failed to import concerts: %w", err)
	}

	r.logger.Info("imported concerts", "path", path, "count", len(imported), "replace", cmd.Bool("replace"))
	return r.writePlain("✓ Imported %d concerts (%d total)\n", len(imported), st.Len())
}

// exportAll writes every format into one directory through [tasks.BulkExport].
func (r *Runner) exportAll(ctx context.Context, cmd *cli.Command) error {
	v, err := r.computeView(cmd)
	if err != nil {
		return err
	}

	progress := make(chan tasks.ProgressUpdate, len(formatter.Formats)+1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.logger.Debug(update.Message, "phase", update.Phase, "step", update.Step, "total", update.Total)
		}
	}()

	result, err := tasks.BulkExport(ctx, v, progress, tasks.BulkExportOpts{OutputDir: cmd.String("output")})
	close(progress)
	<-done
	if err != nil {
		return fmt.Errorf("bulk export failed: %w", err)
	}

	r.writePlainHeader(fmt.Sprintf("Exported %d concerts to %s", result.Concerts, result.OutputDirectory))
	for _, res := range result.Results {
		if res.Success {
			r.writePlain("✓ %-5s %s\n", res.Format, res.Path)
		} else {
			r.writePlain("✗ %-5s %s\n", res.Format, res.Error)
		}
	}
	r.writePlain("Manifest: %s\n", result.ManifestPath)

	if result.FailedExports > 0 {
		return fmt.Errorf("%d of %d formats failed", result.FailedExports, result.TotalFormats)
	}
	return nil
}
