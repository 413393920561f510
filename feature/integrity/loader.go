package integrity

import (
	"trusted-api/core/middleware/auth"
	"trusted-api/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	guard   fiber.Handler
}

// NewFeature creates the integrity feature. The routes sit behind the admin API key.
func NewFeature(db *gorm.DB, models []any, client storage.Client, bucket string, apiKey string, logger *zap.Logger) *Feature {
	svc := NewService(db, models, client, bucket, logger)
	return &Feature{
		service: svc,
		handler: NewHandler(svc),
		guard:   auth.New(auth.Config{ApiKey: apiKey}),
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "integrity"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app, f.guard)
	return nil
}
