// Package repositories implements SQLite persistence for the concert log.
//
// The log is stored the way a browser's local storage would hold it: a handful of
// keyed blobs, one of which is the whole concert collection serialized as JSON.
//
// Key Implementations:
//   - [BlobRepository] : keyed blob reads, upserts and deletes over the blobs table
package repositories
