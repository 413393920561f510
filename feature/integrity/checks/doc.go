// Package checks implements the individual integrity checks.
package checks
