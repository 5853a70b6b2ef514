package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	weekdayDTO "disco_backend/internals/features/repertoire/weekdays/dto"
	weekdayModel "disco_backend/internals/features/repertoire/weekdays/model"
	helper "disco_backend/internals/helpers"
)

type WeekDayController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewWeekDayController(db *gorm.DB) *WeekDayController {
	return &WeekDayController{DB: db, Validate: validator.New()}
}

// POST /api/a/weekdays
func (ctl *WeekDayController) Create(c *fiber.Ctx) error {
	var req weekdayDTO.CreateWeekDayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mm := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&mm).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Weekday not found"))
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Weekday created", weekdayDTO.FromWeekDayModel(mm))
}

// GET /api/weekdays — always in position order, never alphabetical.
func (ctl *WeekDayController) List(c *fiber.Ctx) error {
	var ms []weekdayModel.WeekDay
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("ord ASC").
		Find(&ms).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Weekday not found"))
	}
	return helper.Success(c, "OK", weekdayDTO.FromWeekDayModels(ms))
}

// GET /api/weekdays/:id
func (ctl *WeekDayController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var mm weekdayModel.WeekDay
	if err := ctl.DB.WithContext(c.UserContext()).First(&mm, id).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Weekday not found"))
	}
	return helper.Success(c, "OK", weekdayDTO.FromWeekDayModel(mm))
}

// PUT /api/a/weekdays/:id
func (ctl *WeekDayController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req weekdayDTO.UpdateWeekDayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mm weekdayModel.WeekDay
	if err := ctl.DB.WithContext(c.UserContext()).First(&mm, id).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Weekday not found"))
	}
	req.Apply(&mm)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&mm).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Weekday not found"))
	}

	return helper.Success(c, "Weekday updated", weekdayDTO.FromWeekDayModel(mm))
}

// DELETE /api/a/weekdays/:id — repertoire entries on this day cascade away.
func (ctl *WeekDayController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&weekdayModel.WeekDay{}, id)
	if res.Error != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(res.Error, "Weekday not found"))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Weekday not found")
	}

	return helper.Success(c, "Weekday deleted", nil)
}
