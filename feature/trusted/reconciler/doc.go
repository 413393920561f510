// Package reconciler converts submitted snapshots into store batches.
//
// Each Func reads the current state of one event, decides what to create,
// update or delete, and returns an Outcome holding the planned Batch, the
// per-item errors and the confirmation fields for the response. Funcs never
// write; the caller commits the Batch.
//
// Item level problems (a bad comp_level, an unknown match) are recorded in
// Outcome.Errors and the rest of the submission proceeds. Problems with the
// submission as a whole are returned as errors.
package reconciler
