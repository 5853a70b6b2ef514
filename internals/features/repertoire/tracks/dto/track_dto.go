package dto

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	m "disco_backend/internals/features/repertoire/tracks/model"
	"disco_backend/internals/helpers/dbtime"
)

/* =========================================================
   CREATE / UPDATE
   ========================================================= */

type CreateTrackRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=100"`
	Artist  string `json:"artist" validate:"required,min=1,max=100"`
	GenreID uint   `json:"genre_id" validate:"required,gt=0"`

	// "HH:MM:SS", optional
	Duration *string `json:"duration" validate:"omitempty"`
	BPM      *int    `json:"bpm" validate:"omitempty,gt=0"`
}

func (r *CreateTrackRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Artist = strings.TrimSpace(r.Artist)
	if r.Duration != nil {
		d := strings.TrimSpace(*r.Duration)
		if d == "" {
			r.Duration = nil
		} else {
			r.Duration = &d
		}
	}
}

func (r CreateTrackRequest) ToModel() (m.MusicTrack, error) {
	mm := m.MusicTrack{
		Title:   r.Title,
		Artist:  r.Artist,
		GenreID: r.GenreID,
		BPM:     r.BPM,
	}
	if r.Duration != nil {
		sp, err := dbtime.ParseSpan(*r.Duration)
		if err != nil {
			return mm, fiber.NewError(fiber.StatusBadRequest, "duration must be HH:MM:SS")
		}
		mm.Duration = &sp
	}
	return mm, nil
}

type UpdateTrackRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=100"`
	Artist  string `json:"artist" validate:"required,min=1,max=100"`
	GenreID uint   `json:"genre_id" validate:"required,gt=0"`

	Duration *string `json:"duration" validate:"omitempty"`
	BPM      *int    `json:"bpm" validate:"omitempty,gt=0"`
}

func (r *UpdateTrackRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Artist = strings.TrimSpace(r.Artist)
	if r.Duration != nil {
		d := strings.TrimSpace(*r.Duration)
		if d == "" {
			r.Duration = nil
		} else {
			r.Duration = &d
		}
	}
}

func (r UpdateTrackRequest) Apply(mm *m.MusicTrack) error {
	mm.Title = r.Title
	mm.Artist = r.Artist
	mm.GenreID = r.GenreID
	mm.BPM = r.BPM
	mm.Duration = nil
	if r.Duration != nil {
		sp, err := dbtime.ParseSpan(*r.Duration)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "duration must be HH:MM:SS")
		}
		mm.Duration = &sp
	}
	return nil
}

/* =========================================================
   RESPONSE
   ========================================================= */

type TrackResponse struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	GenreID  uint    `json:"genre_id"`
	Genre    *string `json:"genre,omitempty"`
	Duration *string `json:"duration,omitempty"`
	BPM      *int    `json:"bpm,omitempty"`
}

func FromTrackModel(mm m.MusicTrack) TrackResponse {
	resp := TrackResponse{
		ID:      mm.ID,
		Title:   mm.Title,
		Artist:  mm.Artist,
		GenreID: mm.GenreID,
		BPM:     mm.BPM,
	}
	if mm.Genre != nil {
		resp.Genre = &mm.Genre.Name
	}
	if mm.Duration != nil {
		d := mm.Duration.String()
		resp.Duration = &d
	}
	return resp
}

func FromTrackModels(ms []m.MusicTrack) []TrackResponse {
	out := make([]TrackResponse, 0, len(ms))
	for _, mm := range ms {
		out = append(out, FromTrackModel(mm))
	}
	return out
}
