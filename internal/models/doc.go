// Package models defines the domain types of the concert log.
//
//   - [Concert] : one attended event, persisted as part of a single JSON collection
//   - [Filter] : the selection and sort specification consumed by the view pipeline
//   - [SortMode] : the fixed set of orderings a view can use
//   - [Stats] : aggregates computed over a view
//   - [Options] : distinct values available to each filter selector
//
// Band names are free text holding one or more comma-separated artists; [SplitBand] and [CountArtists]
// are the only places that tokenization rule lives.
package models
