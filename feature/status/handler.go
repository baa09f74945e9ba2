package status

import (
	"server-launcher/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the launch status.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the status routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/status")
	group.Get("/", h.HandleStatus)
	group.Get("/ready", h.HandleReady)
}

// HandleStatus reports the launched server.
// @Summary Launch Status
// @Description Returns the function declaration and the state of the launched server process.
// @Tags status
// @Produce json
// @Success 200 {object} status.Report "Status Report"
// @Router /status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Report())
}

// HandleReady checks the backend web port.
// @Summary Readiness
// @Description Returns 200 when the backend web port accepts connections.
// @Tags status
// @Produce json
// @Success 200 {object} map[string]string "Ready"
// @Failure 503 {object} map[string]string "Not Ready"
// @Router /status/ready [get]
func (h *Handler) HandleReady(c *fiber.Ctx) error {
	if err := h.service.Ready(c.Context()); err != nil {
		logger.WithRayID(h.service.logger, c).Debug("Backend not ready", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}
