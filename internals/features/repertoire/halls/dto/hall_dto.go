package dto

import (
	"strings"

	m "disco_backend/internals/features/repertoire/halls/model"
)

type CreateHallRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Capacity *int   `json:"capacity" validate:"omitempty,gt=0"`
}

func (r *CreateHallRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateHallRequest) ToModel() m.Hall {
	return m.Hall{Name: r.Name, Capacity: r.Capacity}
}

type UpdateHallRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Capacity *int   `json:"capacity" validate:"omitempty,gt=0"`
}

func (r *UpdateHallRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r UpdateHallRequest) Apply(mm *m.Hall) {
	mm.Name = r.Name
	mm.Capacity = r.Capacity
}

type HallResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Capacity *int   `json:"capacity,omitempty"`
}

func FromHallModel(mm m.Hall) HallResponse {
	return HallResponse{ID: mm.ID, Name: mm.Name, Capacity: mm.Capacity}
}

func FromHallModels(ms []m.Hall) []HallResponse {
	out := make([]HallResponse, 0, len(ms))
	for _, mm := range ms {
		out = append(out, FromHallModel(mm))
	}
	return out
}
