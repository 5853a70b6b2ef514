package dto

import (
	"strings"

	m "disco_backend/internals/features/repertoire/hosts/model"
)

type CreateHostRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Experience *int   `json:"experience" validate:"omitempty,gte=0"`
}

func (r *CreateHostRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateHostRequest) ToModel() m.Host {
	return m.Host{Name: r.Name, Experience: r.Experience}
}

type UpdateHostRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Experience *int   `json:"experience" validate:"omitempty,gte=0"`
}

func (r *UpdateHostRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r UpdateHostRequest) Apply(mm *m.Host) {
	mm.Name = r.Name
	mm.Experience = r.Experience
}

type HostResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Experience *int   `json:"experience,omitempty"`
}

func FromHostModel(mm m.Host) HostResponse {
	return HostResponse{ID: mm.ID, Name: mm.Name, Experience: mm.Experience}
}

func FromHostModels(ms []m.Host) []HostResponse {
	out := make([]HostResponse, 0, len(ms))
	for _, mm := range ms {
		out = append(out, FromHostModel(mm))
	}
	return out
}
