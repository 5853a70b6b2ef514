package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	weekdayController "disco_backend/internals/features/repertoire/weekdays/controller"
)

func WeekDayAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := weekdayController.NewWeekDayController(db)

	r := router.Group("/weekdays")
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}

func WeekDayPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := weekdayController.NewWeekDayController(db)

	r := router.Group("/weekdays")
	r.Get("/", ctrl.List)
	r.Get("/:id", ctrl.GetByID)
}
