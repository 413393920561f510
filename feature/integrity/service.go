package integrity

import (
	"context"

	"trusted-api/core/storage"
	"trusted-api/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	db     *gorm.DB
	models []any
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new integrity service. client may be nil when archiving is disabled.
func NewService(db *gorm.DB, models []any, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		models: models,
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// CheckSchema compares the persisted models with the live tables.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, s.models...)
}

// CheckArchive reports on the archive bucket.
func (s *Service) CheckArchive(ctx context.Context) checks.ArchiveReport {
	return checks.CheckArchive(ctx, s.client, s.bucket)
}

// Report is the combined result served at /integrity.
type Report struct {
	Healthy bool                 `json:"healthy"`
	Schema  any                  `json:"schema"`
	Archive checks.ArchiveReport `json:"archive"`
}

// Report runs every check. A schema check that cannot run is reported inline as an error.
func (s *Service) Report(ctx context.Context) Report {
	report := Report{Healthy: true}

	if schema, err := s.CheckSchema(); err != nil {
		report.Healthy = false
		report.Schema = map[string]string{"status": "error", "error": err.Error()}
	} else {
		report.Healthy = schema.Matched
		report.Schema = schema
	}

	report.Archive = s.CheckArchive(ctx)
	report.Healthy = report.Healthy && report.Archive.Healthy()
	return report
}
