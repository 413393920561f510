// Package store persists reconciled records.
//
// Reconcilers read through Reader and describe every write in a Batch. Commit
// applies a whole Batch in one database transaction, so a request either changes
// everything it planned or nothing. Batches never span more than one event.
package store
