package dto

import (
	"time"

	"github.com/gofiber/fiber/v2"

	m "disco_backend/internals/features/repertoire/schedule/model"
	"disco_backend/internals/helpers/dbtime"
)

const dateLayout = "2006-01-02"

/* =========================================================
   CREATE / UPDATE
   ========================================================= */

type CreateRepertoireRequest struct {
	MusicTrackID uint `json:"music_track_id" validate:"required,gt=0"`
	HallID       uint `json:"hall_id" validate:"required,gt=0"`
	HostID       uint `json:"host_id" validate:"required,gt=0"`
	DayID        uint `json:"day_id" validate:"required,gt=0"`

	StartTime string `json:"start_time" validate:"required"` // "HH:MM[:SS]"
	EndTime   string `json:"end_time" validate:"required"`   // "HH:MM[:SS]"
	Date      string `json:"date" validate:"required"`       // "YYYY-MM-DD"
}

// ToModel parses the time fields. start<end and hall overlap are deliberately
// not checked here (known gaps carried from the source system).
func (r CreateRepertoireRequest) ToModel() (m.Repertoire, error) {
	var mm m.Repertoire

	start, err := dbtime.Parse(r.StartTime)
	if err != nil {
		return mm, fiber.NewError(fiber.StatusBadRequest, "start_time must be HH:MM[:SS]")
	}
	end, err := dbtime.Parse(r.EndTime)
	if err != nil {
		return mm, fiber.NewError(fiber.StatusBadRequest, "end_time must be HH:MM[:SS]")
	}
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return mm, fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	mm = m.Repertoire{
		MusicTrackID: r.MusicTrackID,
		HallID:       r.HallID,
		HostID:       r.HostID,
		DayID:        r.DayID,
		StartTime:    start,
		EndTime:      end,
		Date:         date,
	}
	return mm, nil
}

type UpdateRepertoireRequest struct {
	MusicTrackID uint `json:"music_track_id" validate:"required,gt=0"`
	HallID       uint `json:"hall_id" validate:"required,gt=0"`
	HostID       uint `json:"host_id" validate:"required,gt=0"`
	DayID        uint `json:"day_id" validate:"required,gt=0"`

	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Date      string `json:"date" validate:"required"`
}

func (r UpdateRepertoireRequest) Apply(mm *m.Repertoire) error {
	parsed, err := CreateRepertoireRequest(r).ToModel()
	if err != nil {
		return err
	}
	parsed.ID = mm.ID
	*mm = parsed
	return nil
}

/* =========================================================
   RESPONSE — flattened join row, same columns as the
   schedule views render
   ========================================================= */

type ScheduleRow struct {
	ID        uint   `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	TrackTitle string  `json:"track_title"`
	Artist     string  `json:"artist"`
	Duration   *string `json:"duration,omitempty"`
	BPM        *int    `json:"bpm,omitempty"`
	Genre      *string `json:"genre,omitempty"`

	HallName string `json:"hall_name"`
	Capacity *int   `json:"capacity,omitempty"`

	Weekday string `json:"weekday"`

	HostName   string `json:"host_name"`
	Experience *int   `json:"experience,omitempty"`
}

func FromRepertoireModel(mm m.Repertoire) ScheduleRow {
	row := ScheduleRow{
		ID:        mm.ID,
		Date:      mm.Date.Format(dateLayout),
		StartTime: mm.StartTime.Format("15:04:05"),
		EndTime:   mm.EndTime.Format("15:04:05"),
	}
	if mm.MusicTrack != nil {
		row.TrackTitle = mm.MusicTrack.Title
		row.Artist = mm.MusicTrack.Artist
		row.BPM = mm.MusicTrack.BPM
		if mm.MusicTrack.Duration != nil {
			d := mm.MusicTrack.Duration.String()
			row.Duration = &d
		}
		if mm.MusicTrack.Genre != nil {
			row.Genre = &mm.MusicTrack.Genre.Name
		}
	}
	if mm.Hall != nil {
		row.HallName = mm.Hall.Name
		row.Capacity = mm.Hall.Capacity
	}
	if mm.Day != nil {
		row.Weekday = mm.Day.Name
	}
	if mm.Host != nil {
		row.HostName = mm.Host.Name
		row.Experience = mm.Host.Experience
	}
	return row
}

func FromRepertoireModels(ms []m.Repertoire) []ScheduleRow {
	out := make([]ScheduleRow, 0, len(ms))
	for _, mm := range ms {
		out = append(out, FromRepertoireModel(mm))
	}
	return out
}
