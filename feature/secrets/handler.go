package secrets

import (
	"errors"

	"server-launcher/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for secret bundles.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the secrets routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/secrets")
	group.Get("/", h.HandleList)
	group.Get("/:name", h.HandleKeys)
}

// HandleList lists secret bundles.
// @Summary List Secret Bundles
// @Description Lists the names of the secret bundles in the storage bucket.
// @Tags secrets
// @Produce json
// @Success 200 {object} map[string]interface{} "Bundle names"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /secrets [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	names, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Listing secret bundles failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"bundles": names})
}

// HandleKeys lists the keys of one bundle.
// @Summary Secret Bundle Keys
// @Description Lists the keys of a secret bundle. Values are never returned.
// @Tags secrets
// @Produce json
// @Param name path string true "Bundle name"
// @Success 200 {object} map[string]interface{} "Bundle keys"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /secrets/{name} [get]
func (h *Handler) HandleKeys(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("name")

	keys, err := h.service.Keys(c.Context(), name)
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrInvalidName):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Reading secret bundle failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"name": name, "keys": keys})
}
