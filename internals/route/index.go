package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"disco_backend/internals/configs"
	middlewares "disco_backend/internals/middlewares"
	routeDetails "disco_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api",
		middlewares.GlobalRateLimiter(),
	)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (key + limiter)...")
	admin := app.Group("/api/a",
		middlewares.AdminRateLimiter(),
		middlewares.AdminKeyMiddleware(cfg.AdminAPIKey),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Repertoire routes...")
	routeDetails.RepertoirePublicRoutes(public, db)
	routeDetails.RepertoireAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Reports routes...")
	routeDetails.ReportsRoutes(public, db)
}
