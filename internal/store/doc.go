// Package store owns the concert collection.
//
// A [Store] keeps the canonical, insertion-ordered slice of records in memory and
// mirrors it to a single keyed blob after every mutation. The presentation layers
// never hold their own copy; they read with [Store.All] and recompute their view.
//
// Persistence failures are logged and never fail a mutation: the in-memory
// collection stays authoritative for the session. On first run, or when the stored
// blob cannot be read, the collection is seeded from an embedded dataset.
package store
