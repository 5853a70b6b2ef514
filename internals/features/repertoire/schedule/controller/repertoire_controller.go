package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleDTO "disco_backend/internals/features/repertoire/schedule/dto"
	scheduleModel "disco_backend/internals/features/repertoire/schedule/model"
	trackModel "disco_backend/internals/features/repertoire/tracks/model"
	helper "disco_backend/internals/helpers"
)

type RepertoireController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRepertoireController(db *gorm.DB) *RepertoireController {
	return &RepertoireController{DB: db, Validate: validator.New()}
}

func (ctl *RepertoireController) preloadAll(q *gorm.DB) *gorm.DB {
	return q.
		Preload("MusicTrack").
		Preload("MusicTrack.Genre").
		Preload("Hall").
		Preload("Host").
		Preload("Day")
}

// POST /api/a/schedule
// Single-row insert; all four references must exist (FK). No overlap check.
func (ctl *RepertoireController) Create(c *fiber.Ctx) error {
	var req scheduleDTO.CreateRepertoireRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mm, err := req.ToModel()
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&mm).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Schedule entry not found"))
	}

	_ = ctl.preloadAll(ctl.DB.WithContext(c.UserContext())).First(&mm, mm.ID).Error

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Schedule entry created", scheduleDTO.FromRepertoireModel(mm))
}

// GET /api/schedule?genre=&date=&hall=&page=&per_page=
// Full schedule with every joined detail; filters AND together; always
// ordered by (date, start_time).
func (ctl *RepertoireController) List(c *fiber.Ctx) error {
	filters, err := ParseScheduleFilters(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ParsePage(c, helper.ListOpts)

	// fresh builder per statement; reusing one across finishers leaks state
	filtered := func() *gorm.DB {
		return filters.Apply(ctl.DB.WithContext(c.UserContext()).Model(&scheduleModel.Repertoire{}))
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Schedule entry not found"))
	}

	var ms []scheduleModel.Repertoire
	if err := ctl.preloadAll(filtered()).
		Order("repertoire.date ASC, repertoire.start_time ASC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&ms).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Schedule entry not found"))
	}

	return c.JSON(fiber.Map{
		"code":       fiber.StatusOK,
		"status":     "success",
		"message":    "OK",
		"data":       scheduleDTO.FromRepertoireModels(ms),
		"pagination": p.BuildMeta(total),
	})
}

// GET /api/schedule/upcoming?days=N — entries in [today, today+N], default 7.
func (ctl *RepertoireController) Upcoming(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	if days < 0 {
		return helper.Error(c, fiber.StatusBadRequest, "days must be >= 0")
	}

	today := time.Now().Format("2006-01-02")
	until := time.Now().AddDate(0, 0, days).Format("2006-01-02")

	var ms []scheduleModel.Repertoire
	if err := ctl.preloadAll(ctl.DB.WithContext(c.UserContext())).
		Where("date >= ? AND date <= ?", today, until).
		Order("date ASC, start_time ASC").
		Find(&ms).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Schedule entry not found"))
	}

	return helper.Success(c, "OK", scheduleDTO.FromRepertoireModels(ms))
}

// GET /api/schedule/today — dashboard: today's entries, the next five
// upcoming ones, and the library size.
func (ctl *RepertoireController) Today(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")

	var todays []scheduleModel.Repertoire
	if err := ctl.preloadAll(ctl.DB.WithContext(c.UserContext())).
		Where("date = ?", today).
		Order("start_time ASC").
		Find(&todays).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Schedule entry not found"))
	}

	var upcoming []scheduleModel.Repertoire
	if err := ctl.preloadAll(ctl.DB.WithContext(c.UserContext())).
		Where("date > ?", today).
		Order("date ASC, start_time ASC").
		Limit(5).
		Find(&upcoming).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Schedule entry not found"))
	}

	var totalTracks int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&trackModel.MusicTrack{}).
		Count(&totalTracks).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Track not found"))
	}

	return helper.Success(c, "OK", fiber.Map{
		"today":           scheduleDTO.FromRepertoireModels(todays),
		"upcoming_events": scheduleDTO.FromRepertoireModels(upcoming),
		"total_tracks":    totalTracks,
	})
}

// GET /api/schedule/:id
func (ctl *RepertoireController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var mm scheduleModel.Repertoire
	if err := ctl.preloadAll(ctl.DB.WithContext(c.UserContext())).First(&mm, id).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Schedule entry not found"))
	}
	return helper.Success(c, "OK", scheduleDTO.FromRepertoireModel(mm))
}

// PUT /api/a/schedule/:id
func (ctl *RepertoireController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req scheduleDTO.UpdateRepertoireRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mm scheduleModel.Repertoire
	if err := ctl.DB.WithContext(c.UserContext()).First(&mm, id).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Schedule entry not found"))
	}
	if err := req.Apply(&mm); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&mm).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Schedule entry not found"))
	}

	_ = ctl.preloadAll(ctl.DB.WithContext(c.UserContext())).First(&mm, mm.ID).Error

	return helper.Success(c, "Schedule entry updated", scheduleDTO.FromRepertoireModel(mm))
}

// DELETE /api/a/schedule/:id
func (ctl *RepertoireController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&scheduleModel.Repertoire{}, id)
	if res.Error != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(res.Error, "Schedule entry not found"))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Schedule entry not found")
	}

	return helper.Success(c, "Schedule entry deleted", nil)
}
