package importer

import (
	"seed-manager/core/ingest"
	"seed-manager/core/metrics"
	"seed-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the import feature.
func NewFeature(l *ingest.Loader, client storage.Client, bucket string, m *metrics.Ingest, logger *zap.Logger) *Feature {
	svc := NewService(l, client, bucket, m, logger)
	return &Feature{service: svc, handler: NewHandler(svc, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "importer"
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
