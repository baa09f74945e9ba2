package status

import "github.com/gofiber/fiber/v2"

// Feature exposes the launch status on the status server.
type Feature struct {
	service *Service
}

// NewFeature creates the status feature.
func NewFeature(service *Service) *Feature {
	return &Feature{service: service}
}

// Name returns the feature name.
func (f *Feature) Name() string { return "status" }

// IsEnabled is always true.
func (f *Feature) IsEnabled() bool { return true }

// Load registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
