package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	hallDTO "disco_backend/internals/features/repertoire/halls/dto"
	hallModel "disco_backend/internals/features/repertoire/halls/model"
	helper "disco_backend/internals/helpers"
)

type HallController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewHallController(db *gorm.DB) *HallController {
	return &HallController{DB: db, Validate: validator.New()}
}

// POST /api/a/halls
func (ctl *HallController) Create(c *fiber.Ctx) error {
	var req hallDTO.CreateHallRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mm := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&mm).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Hall not found"))
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Hall created", hallDTO.FromHallModel(mm))
}

// GET /api/halls
func (ctl *HallController) List(c *fiber.Ctx) error {
	var ms []hallModel.Hall
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("name ASC").
		Find(&ms).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Hall not found"))
	}
	return helper.Success(c, "OK", hallDTO.FromHallModels(ms))
}

// GET /api/halls/:id
func (ctl *HallController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var mm hallModel.Hall
	if err := ctl.DB.WithContext(c.UserContext()).First(&mm, id).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Hall not found"))
	}
	return helper.Success(c, "OK", hallDTO.FromHallModel(mm))
}

// PUT /api/a/halls/:id
func (ctl *HallController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req hallDTO.UpdateHallRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mm hallModel.Hall
	if err := ctl.DB.WithContext(c.UserContext()).First(&mm, id).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Hall not found"))
	}
	req.Apply(&mm)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&mm).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Hall not found"))
	}

	return helper.Success(c, "Hall updated", hallDTO.FromHallModel(mm))
}

// DELETE /api/a/halls/:id — repertoire entries in this hall cascade away.
func (ctl *HallController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&hallModel.Hall{}, id)
	if res.Error != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(res.Error, "Hall not found"))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Hall not found")
	}

	return helper.Success(c, "Hall deleted", nil)
}
