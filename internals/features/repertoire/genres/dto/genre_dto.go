package dto

import (
	"strings"

	m "disco_backend/internals/features/repertoire/genres/model"
)

/* =========================================================
   CREATE / UPDATE
   ========================================================= */

type CreateGenreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

func (r *CreateGenreRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateGenreRequest) ToModel() m.Genre {
	return m.Genre{Name: r.Name}
}

type UpdateGenreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

func (r *UpdateGenreRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r UpdateGenreRequest) Apply(mm *m.Genre) {
	mm.Name = r.Name
}

/* =========================================================
   RESPONSE
   ========================================================= */

type GenreResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func FromGenreModel(mm m.Genre) GenreResponse {
	return GenreResponse{ID: mm.ID, Name: mm.Name}
}

func FromGenreModels(ms []m.Genre) []GenreResponse {
	out := make([]GenreResponse, 0, len(ms))
	for _, mm := range ms {
		out = append(out, FromGenreModel(mm))
	}
	return out
}
