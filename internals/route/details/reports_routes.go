package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportRoute "disco_backend/internals/features/reports/route"
)

// ReportsRoutes mounts the statistics/analysis/search dashboard endpoints.
func ReportsRoutes(public fiber.Router, db *gorm.DB) {
	reportRoute.ReportPublicRoutes(public, db)
}
