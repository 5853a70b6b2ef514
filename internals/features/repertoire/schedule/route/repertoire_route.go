package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleController "disco_backend/internals/features/repertoire/schedule/controller"
)

func ScheduleAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := scheduleController.NewRepertoireController(db)

	r := router.Group("/schedule")
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}

func SchedulePublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := scheduleController.NewRepertoireController(db)

	r := router.Group("/schedule")
	// static segments before the :id wildcard
	r.Get("/upcoming", ctrl.Upcoming)
	r.Get("/today", ctrl.Today)
	r.Get("/", ctrl.List)
	r.Get("/:id", ctrl.GetByID)
}
