package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	hostDTO "disco_backend/internals/features/repertoire/hosts/dto"
	hostModel "disco_backend/internals/features/repertoire/hosts/model"
	helper "disco_backend/internals/helpers"
)

type HostController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewHostController(db *gorm.DB) *HostController {
	return &HostController{DB: db, Validate: validator.New()}
}

// POST /api/a/hosts
func (ctl *HostController) Create(c *fiber.Ctx) error {
	var req hostDTO.CreateHostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mm := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&mm).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Host not found"))
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Host created", hostDTO.FromHostModel(mm))
}

// GET /api/hosts
func (ctl *HostController) List(c *fiber.Ctx) error {
	var ms []hostModel.Host
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("name ASC").
		Find(&ms).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Host not found"))
	}
	return helper.Success(c, "OK", hostDTO.FromHostModels(ms))
}

// GET /api/hosts/:id
func (ctl *HostController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var mm hostModel.Host
	if err := ctl.DB.WithContext(c.UserContext()).First(&mm, id).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Host not found"))
	}
	return helper.Success(c, "OK", hostDTO.FromHostModel(mm))
}

// PUT /api/a/hosts/:id
func (ctl *HostController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req hostDTO.UpdateHostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mm hostModel.Host
	if err := ctl.DB.WithContext(c.UserContext()).First(&mm, id).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Host not found"))
	}
	req.Apply(&mm)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&mm).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Host not found"))
	}

	return helper.Success(c, "Host updated", hostDTO.FromHostModel(mm))
}

// DELETE /api/a/hosts/:id — the host's repertoire entries cascade away.
func (ctl *HostController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&hostModel.Host{}, id)
	if res.Error != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(res.Error, "Host not found"))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Host not found")
	}

	return helper.Success(c, "Host deleted", nil)
}
