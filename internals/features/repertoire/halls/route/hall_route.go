package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	hallController "disco_backend/internals/features/repertoire/halls/controller"
)

func HallAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := hallController.NewHallController(db)

	r := router.Group("/halls")
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}

func HallPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := hallController.NewHallController(db)

	r := router.Group("/halls")
	r.Get("/", ctrl.List)
	r.Get("/:id", ctrl.GetByID)
}
