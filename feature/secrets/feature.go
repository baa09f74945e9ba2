package secrets

import (
	"github.com/gofiber/fiber/v2"
)

// Feature exposes secret bundles on the status server.
type Feature struct {
	service *Service
}

// NewFeature creates the secrets feature. It is disabled when service is nil.
func NewFeature(service *Service) *Feature {
	return &Feature{service: service}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "secrets"
}

// IsEnabled reports whether secret storage is configured.
func (f *Feature) IsEnabled() bool {
	return f.service != nil
}

// Load registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
