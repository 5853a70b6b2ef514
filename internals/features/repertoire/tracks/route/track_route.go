package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	trackController "disco_backend/internals/features/repertoire/tracks/controller"
)

func TrackAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := trackController.NewTrackController(db)

	r := router.Group("/tracks")
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}

func TrackPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := trackController.NewTrackController(db)

	r := router.Group("/tracks")
	r.Get("/", ctrl.List)
	r.Get("/:id", ctrl.GetByID)
}
