// Package trusted serves the signed write API under /api/trusted/v1.
//
// Every route in the table returned by Routes is guarded by the credentials
// middleware, then runs one reconciler against the named event and commits
// the resulting batch in one transaction. Successful commits are announced to
// a notify.Notifier and, when enabled, the raw body is archived to object
// storage.
//
// Subpackages:
//
//	keys/        identifier derivation, no storage access
//	models/      gorm models for events, matches, awards and event teams
//	store/       Reader and transactional Batch commits
//	reconciler/  per-kind reconciliation
package trusted
