package middlewares

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// AdminKeyMiddleware guards the admin CRUD surface with a shared header key.
// An empty configured key rejects everything rather than opening the surface.
func AdminKeyMiddleware(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		got := c.Get("X-Admin-Key")
		if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    fiber.StatusUnauthorized,
				"status":  "error",
				"message": "Invalid or missing admin key",
			})
		}
		return c.Next()
	}
}
