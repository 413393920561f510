package checks

import (
	"context"

	"trusted-api/core/storage"
)

// ArchiveReport describes the submission archive bucket.
type ArchiveReport struct {
	Enabled bool   `json:"enabled"`
	Bucket  string `json:"bucket,omitempty"`
	Exists  bool   `json:"exists"`
	Error   string `json:"error,omitempty"`
}

// CheckArchive reports whether the archive bucket is reachable. A nil client
// means archiving is disabled, which is not an error.
func CheckArchive(ctx context.Context, client storage.Client, bucket string) ArchiveReport {
	if client == nil {
		return ArchiveReport{}
	}
	report := ArchiveReport{Enabled: true, Bucket: bucket}
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.Exists = exists
	if !exists {
		report.Error = "bucket does not exist"
	}
	return report
}

// Healthy reports whether archiving is disabled or its bucket exists.
func (r ArchiveReport) Healthy() bool {
	return !r.Enabled || r.Exists
}
