package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rachellcoder/weather-app/internal/domain"
	"github.com/rachellcoder/weather-app/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	lookupSvc *service.LookupService
}

// NewHandler creates a new handler
func NewHandler(lookupSvc *service.LookupService) *Handler {
	return &Handler{lookupSvc: lookupSvc}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "weather-app",
		"version": "1.0.0",
	})
}

// Index renders the empty search form
func (h *Handler) Index(c *fiber.Ctx) error {
	return c.Render("index", domain.Report{})
}

// Search looks up the submitted city and renders weather, forecast or error
func (h *Handler) Search(c *fiber.Ctx) error {
	report := h.lookupSvc.Lookup(c.UserContext(), c.FormValue("city"))

	return c.Status(report.Code).Render("index", report)
}

// GetWeather returns the same report as the page, as JSON
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	report := h.lookupSvc.Lookup(c.UserContext(), c.Query("city"))
	if !report.OK() {
		return fiber.NewError(report.Code, report.Error)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    report,
	})
}
