package trusted

import (
	"trusted-api/core/metrics"
	"trusted-api/core/notify"
	"trusted-api/feature/credentials"
	"trusted-api/feature/trusted/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the trusted write feature.
func NewFeature(st store.Store, guard *credentials.Guard, notifier notify.Notifier, archive *Archive, m *metrics.Metrics, logger *zap.Logger) *Feature {
	svc := NewService(st, notifier, archive, m, logger)
	return &Feature{service: svc, handler: NewHandler(svc, guard, m, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "trusted"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
