// Package metrics exposes Prometheus instruments for the trusted write path.
//
// Every Metrics value owns its own registry so tests can build isolated instances.
// A nil *Metrics is valid and records nothing.
package metrics
