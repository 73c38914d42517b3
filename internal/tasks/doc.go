// Package tasks runs long-running concert operations with real-time progress reporting.
//
// # Bulk Export
//
// [BulkExport] writes one filtered view in several formats at once. A fixed pool of
// workers renders and writes each format; a manifest summarizing the files written
// (and any failures) is saved next to them as export_manifest.json.
//
// # Progress Reporting
//
// Operations send [ProgressUpdate] values on an optional channel.
// Updates use select with default so a slow or absent reader never blocks the work.
package tasks
