package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportDTO "disco_backend/internals/features/reports/dto"
	"disco_backend/internals/features/reports/queries"
	helper "disco_backend/internals/helpers"
)

type ReportController struct {
	Queries *queries.Queries
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{Queries: queries.New(db)}
}

// GET /api/statistics — the full dashboard bundle.
func (ctl *ReportController) Statistics(c *fiber.Ctx) error {
	bundle, err := ctl.Queries.Statistics(c.UserContext())
	if err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Statistics unavailable"))
	}
	return helper.Success(c, "OK", bundle)
}

// GET /api/analysis/daily — avg bpm + session count per start hour.
func (ctl *ReportController) DailyAnalysis(c *fiber.Ctx) error {
	rows, err := ctl.Queries.DailyBPMAnalysis(c.UserContext())
	if err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Analysis unavailable"))
	}
	return helper.Success(c, "OK", rows)
}

// GET /api/stats/tracks_by_genre — standalone view of the shared query.
func (ctl *ReportController) TracksByGenre(c *fiber.Ctx) error {
	rows, err := ctl.Queries.TracksByGenre(c.UserContext())
	if err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Statistics unavailable"))
	}
	return helper.Success(c, "OK", rows)
}

// GET /api/search?q=term
// Empty q means "no search performed": short-circuit without touching the
// database, like the dashboard page does.
func (ctl *ReportController) SearchTracks(c *fiber.Ctx) error {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		return helper.Success(c, "OK", []reportDTO.TrackSearchRow{})
	}

	rows, err := ctl.Queries.SearchTracks(c.UserContext(), term)
	if err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Search unavailable"))
	}
	return helper.Success(c, "OK", rows)
}
