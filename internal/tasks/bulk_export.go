package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/desertthunder/gigs/internal/formatter"
	"github.com/desertthunder/gigs/internal/shared"
	"github.com/desertthunder/gigs/internal/view"
)

// ManifestName is the file written next to the exports by [BulkExport].
const ManifestName = "export_manifest.json"

// BulkExportOpts contains configuration for bulk exports.
type BulkExportOpts struct {
	Formats    []formatter.Format // Formats to write (default: all of [formatter.Formats])
	OutputDir  string             // Output directory (default: gigs_export_{epoch})
	BaseName   string             // File name without extension (default: concerts)
	NumWorkers int                // Concurrent workers (default: 3)
}

// FormatExportResult describes the outcome for a single format.
type FormatExportResult struct {
	Format  formatter.Format `json:"format"`
	Path    string           `json:"path,omitempty"`
	Success bool             `json:"success"`
	Error   string           `json:"error,omitempty"`
}

// BulkExportResult summarizes a [BulkExport] run. Results follow the order of the requested formats.
type BulkExportResult struct {
	ExportedAt        time.Time            `json:"exported_at"`
	Concerts          int                  `json:"concerts"`
	TotalFormats      int                  `json:"total_formats"`
	SuccessfulExports int                  `json:"successful_exports"`
	FailedExports     int                  `json:"failed_exports"`
	OutputDirectory   string               `json:"output_directory"`
	ManifestPath      string               `json:"-"`
	Results           []FormatExportResult `json:"results"`
}

// BulkExport writes v once per format using a pool of workers.
//
// A failed format does not stop the others; it is recorded in the result and the manifest.
func BulkExport(ctx context.Context, v view.View, prog chan<- ProgressUpdate, opts BulkExportOpts) (*BulkExportResult, error) {
	if len(opts.Formats) == 0 {
		opts.Formats = formatter.Formats
	}
	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("gigs_export_%d", time.Now().Unix())
	}
	if opts.BaseName == "" {
		opts.BaseName = "concerts"
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 3
	}
	if opts.NumWorkers > len(opts.Formats) {
		opts.NumWorkers = len(opts.Formats)
	}

	for _, f := range opts.Formats {
		if !slices.Contains(formatter.Formats, f) {
			return nil, fmt.Errorf("%w: %q", shared.ErrUnknownFormat, f)
		}
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &BulkExportResult{
		ExportedAt:      time.Now().UTC(),
		Concerts:        len(v.Concerts),
		TotalFormats:    len(opts.Formats),
		OutputDirectory: opts.OutputDir,
		Results:         make([]FormatExportResult, 0, len(opts.Formats)),
	}

	jobs := make(chan formatter.Format, len(opts.Formats))
	results := make(chan FormatExportResult, len(opts.Formats))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go exportWorker(ctx, &wg, v, jobs, results, opts)
	}

	for _, f := range opts.Formats {
		jobs <- f
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Success {
			result.SuccessfulExports++
			sendProgress(prog, exportCompletedUpdate(completed, len(opts.Formats), res.Format, res.Path))
		} else {
			result.FailedExports++
			sendProgress(prog, exportFailedUpdate(completed, len(opts.Formats), res.Format, fmt.Errorf("%s", res.Error)))
		}
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	slices.SortFunc(result.Results, func(a, b FormatExportResult) int {
		return slices.Index(opts.Formats, a.Format) - slices.Index(opts.Formats, b.Format)
	})

	manifestPath := filepath.Join(opts.OutputDir, ManifestName)
	sendProgress(prog, manifestUpdate(manifestPath))
	if err := writeManifest(result, manifestPath); err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	return result, nil
}

// exportWorker is a worker goroutine that writes formats from the jobs channel.
func exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	v view.View,
	jobs <-chan formatter.Format,
	results chan<- FormatExportResult,
	opts BulkExportOpts,
) {
	defer wg.Done()

	for f := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		results <- exportSingleFormat(v, f, opts)
	}
}

func exportSingleFormat(v view.View, f formatter.Format, opts BulkExportOpts) FormatExportResult {
	path := filepath.Join(opts.OutputDir, fmt.Sprintf("%s.%s", opts.BaseName, f))

	written, err := formatter.WriteExport(v, f, path, nil)
	if err != nil {
		return FormatExportResult{Format: f, Error: err.Error()}
	}
	return FormatExportResult{Format: f, Path: written, Success: true}
}

func writeManifest(result *BulkExportResult, path string) error {
	data, err := shared.MarshalJSON(result, true)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
