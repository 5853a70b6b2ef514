package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ScheduleFilters are the optional equality filters of the schedule list.
// Empty values are no-ops; present values AND together.
type ScheduleFilters struct {
	GenreID *int
	Date    *time.Time
	HallID  *int
}

// ParseScheduleFilters reads genre/date/hall off the query string.
func ParseScheduleFilters(c *fiber.Ctx) (ScheduleFilters, error) {
	var f ScheduleFilters

	if raw := strings.TrimSpace(c.Query("genre")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			return f, fiber.NewError(fiber.StatusBadRequest, "genre must be a positive id")
		}
		f.GenreID = &id
	}
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		f.Date = &d
	}
	if raw := strings.TrimSpace(c.Query("hall")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			return f, fiber.NewError(fiber.StatusBadRequest, "hall must be a positive id")
		}
		f.HallID = &id
	}

	return f, nil
}

// Apply composes the present filters onto the schedule query. Pure: no state
// beyond the builder it returns. The caller owns the final ordering.
func (f ScheduleFilters) Apply(q *gorm.DB) *gorm.DB {
	if f.GenreID != nil {
		q = q.Joins("JOIN music_tracks ON music_tracks.id = repertoire.music_track_id").
			Where("music_tracks.genre_id = ?", *f.GenreID)
	}
	if f.Date != nil {
		q = q.Where("repertoire.date = ?", f.Date.Format("2006-01-02"))
	}
	if f.HallID != nil {
		q = q.Where("repertoire.hall_id = ?", *f.HallID)
	}
	return q
}
