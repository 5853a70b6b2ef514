package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	hostController "disco_backend/internals/features/repertoire/hosts/controller"
)

func HostAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := hostController.NewHostController(db)

	r := router.Group("/hosts")
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}

func HostPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := hostController.NewHostController(db)

	r := router.Group("/hosts")
	r.Get("/", ctrl.List)
	r.Get("/:id", ctrl.GetByID)
}
