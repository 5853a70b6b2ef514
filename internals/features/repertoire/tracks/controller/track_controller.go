package controller

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	trackDTO "disco_backend/internals/features/repertoire/tracks/dto"
	trackModel "disco_backend/internals/features/repertoire/tracks/model"
	helper "disco_backend/internals/helpers"
)

type TrackController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTrackController(db *gorm.DB) *TrackController {
	return &TrackController{DB: db, Validate: validator.New()}
}

// POST /api/a/tracks
func (ctl *TrackController) Create(c *fiber.Ctx) error {
	var req trackDTO.CreateTrackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mm, err := req.ToModel()
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&mm).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Track not found"))
	}

	// reload with genre for the response
	_ = ctl.DB.WithContext(c.UserContext()).Preload("Genre").First(&mm, mm.ID).Error

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Track created", trackDTO.FromTrackModel(mm))
}

// GET /api/tracks?genre=<id>&page=&per_page=
// All tracks with their genre name, title order; optional genre filter.
func (ctl *TrackController) List(c *fiber.Ctx) error {
	p := helper.ParsePage(c, helper.ListOpts)

	var genreID int
	if raw := strings.TrimSpace(c.Query("genre")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			return helper.Error(c, fiber.StatusBadRequest, "genre must be a positive id")
		}
		genreID = id
	}

	// fresh builder per statement; reusing one across finishers leaks state
	filtered := func() *gorm.DB {
		q := ctl.DB.WithContext(c.UserContext()).Model(&trackModel.MusicTrack{})
		if genreID > 0 {
			q = q.Where("genre_id = ?", genreID)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Track not found"))
	}

	var ms []trackModel.MusicTrack
	if err := filtered().Preload("Genre").
		Order("title ASC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&ms).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Track not found"))
	}

	return c.JSON(fiber.Map{
		"code":       fiber.StatusOK,
		"status":     "success",
		"message":    "OK",
		"data":       trackDTO.FromTrackModels(ms),
		"pagination": p.BuildMeta(total),
	})
}

// GET /api/tracks/:id
func (ctl *TrackController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var mm trackModel.MusicTrack
	if err := ctl.DB.WithContext(c.UserContext()).Preload("Genre").First(&mm, id).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Track not found"))
	}
	return helper.Success(c, "OK", trackDTO.FromTrackModel(mm))
}

// PUT /api/a/tracks/:id
func (ctl *TrackController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req trackDTO.UpdateTrackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mm trackModel.MusicTrack
	if err := ctl.DB.WithContext(c.UserContext()).First(&mm, id).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Track not found"))
	}
	if err := req.Apply(&mm); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&mm).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Track not found"))
	}

	_ = ctl.DB.WithContext(c.UserContext()).Preload("Genre").First(&mm, mm.ID).Error

	return helper.Success(c, "Track updated", trackDTO.FromTrackModel(mm))
}

// DELETE /api/a/tracks/:id — the track's repertoire entries cascade away.
func (ctl *TrackController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&trackModel.MusicTrack{}, id)
	if res.Error != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(res.Error, "Track not found"))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Track not found")
	}

	return helper.Success(c, "Track deleted", nil)
}
