package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rachellcoder/weather-app/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, lookupSvc *service.LookupService) {
	handler := NewHandler(lookupSvc)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// HTML front end
	app.Get("/", handler.Index)
	app.Post("/", handler.Search)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		api.Get("/weather", handler.GetWeather)
	}
}
