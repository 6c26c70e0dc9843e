package handlers

import (
	"github.com/gofiber/fiber/v2"

	"phonestore/internal/config"
)

type HealthHandler struct{}

// Root handles GET /.
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": config.ServiceName,
		"version": config.APIVersion,
	})
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":      "healthy",
		"api_version": config.APIVersion,
		"endpoints": fiber.Map{
			"phones": "/phones",
			"health": "/health",
		},
	})
}
