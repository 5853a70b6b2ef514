package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"disco_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the app-wide middlewares in order.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
}
