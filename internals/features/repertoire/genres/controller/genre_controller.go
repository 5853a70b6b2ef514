package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	genreDTO "disco_backend/internals/features/repertoire/genres/dto"
	genreModel "disco_backend/internals/features/repertoire/genres/model"
	helper "disco_backend/internals/helpers"
)

type GenreController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGenreController(db *gorm.DB) *GenreController {
	return &GenreController{DB: db, Validate: validator.New()}
}

// POST /api/a/genres
func (ctl *GenreController) Create(c *fiber.Ctx) error {
	var req genreDTO.CreateGenreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mm := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&mm).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Genre not found"))
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Genre created", genreDTO.FromGenreModel(mm))
}

// GET /api/genres
func (ctl *GenreController) List(c *fiber.Ctx) error {
	var ms []genreModel.Genre
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("name ASC").
		Find(&ms).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Genre not found"))
	}
	return helper.Success(c, "OK", genreDTO.FromGenreModels(ms))
}

// GET /api/genres/:id
func (ctl *GenreController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var mm genreModel.Genre
	if err := ctl.DB.WithContext(c.UserContext()).First(&mm, id).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Genre not found"))
	}
	return helper.Success(c, "OK", genreDTO.FromGenreModel(mm))
}

// PUT /api/a/genres/:id
func (ctl *GenreController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req genreDTO.UpdateGenreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mm genreModel.Genre
	if err := ctl.DB.WithContext(c.UserContext()).First(&mm, id).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Genre not found"))
	}
	req.Apply(&mm)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&mm).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Genre not found"))
	}

	return helper.Success(c, "Genre updated", genreDTO.FromGenreModel(mm))
}

// DELETE /api/a/genres/:id
// Cascades in the database: the genre's tracks and their repertoire
// entries go with it.
func (ctl *GenreController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&genreModel.Genre{}, id)
	if res.Error != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(res.Error, "Genre not found"))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Genre not found")
	}

	return helper.Success(c, "Genre deleted", nil)
}
