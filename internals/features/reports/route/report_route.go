package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "disco_backend/internals/features/reports/controller"
)

// Reports are read-only; everything mounts on the public group.
func ReportPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := reportController.NewReportController(db)

	router.Get("/statistics", ctrl.Statistics)
	router.Get("/analysis/daily", ctrl.DailyAnalysis)
	router.Get("/stats/tracks_by_genre", ctrl.TracksByGenre)
	router.Get("/search", ctrl.SearchTracks)
}
