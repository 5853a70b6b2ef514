package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	genreController "disco_backend/internals/features/repertoire/genres/controller"
)

func GenreAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := genreController.NewGenreController(db)

	r := router.Group("/genres")
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}

func GenrePublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := genreController.NewGenreController(db)

	r := router.Group("/genres")
	r.Get("/", ctrl.List)
	r.Get("/:id", ctrl.GetByID)
}
