package handlers

import "github.com/gofiber/fiber/v2"

// jsonError writes the uniform error payload.
func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}
