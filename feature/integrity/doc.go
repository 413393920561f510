// Package integrity reports whether the service's dependencies are in the shape it expects.
//
// # Checks Provided
//
//   - Schema: every persisted model's columns exist in the connected database.
//   - Archive: the submission archive bucket is reachable, when archiving is enabled.
//
// # HTTP Endpoints
//
// All endpoints require the admin API key when one is configured.
//
//   - GET /integrity : Runs all checks; 503 when any fails.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/archive : Runs the archive check.
package integrity
