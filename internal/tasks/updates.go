package tasks

import (
	"fmt"

	"github.com/desertthunder/gigs/internal/formatter"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	ExportFormat Phase = iota
	WriteManifest
)

func (p Phase) String() string {
	switch p {
	case ExportFormat:
		return "export_format"
	case WriteManifest:
		return "write_manifest"
	default:
		return ""
	}
}

// sendProgress delivers update without blocking when nobody is reading.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

func exportCompletedUpdate(step, total int, format formatter.Format, path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportFormat,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Exported %s to %s", format, path),
		Data:    path,
	}
}

func exportFailedUpdate(step, total int, format formatter.Format, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportFormat,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Failed to export %s: %v", format, err),
		Data:    err,
	}
}

func manifestUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteManifest,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Writing manifest to %s", path),
		Data:    path,
	}
}
