// Package view derives what the concert log displays from the stored collection.
//
// [Compute] is the whole pipeline: [Apply] narrows the records with a [models.Filter],
// [Sort] orders them stably by the filter's [models.SortMode], and [Summarize]
// aggregates the result. Every step is pure and recomputed from scratch; nothing
// here returns an error, and records with unreadable dates sort as the oldest.
//
// Matching rules differ between steps: the artist selector ignores case while
// unique-artist counting does not, and the free-text search looks at the raw band
// string rather than its artist tokens.
package view
