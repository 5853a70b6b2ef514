package dto

import (
	"strings"

	m "disco_backend/internals/features/repertoire/weekdays/model"
)

type CreateWeekDayRequest struct {
	Name string `json:"name" validate:"required,min=1,max=20"`
	// globally unique position used for listing order
	Order int `json:"order" validate:"required"`
}

func (r *CreateWeekDayRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateWeekDayRequest) ToModel() m.WeekDay {
	return m.WeekDay{Name: r.Name, Ord: r.Order}
}

type UpdateWeekDayRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=20"`
	Order int    `json:"order" validate:"required"`
}

func (r *UpdateWeekDayRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r UpdateWeekDayRequest) Apply(mm *m.WeekDay) {
	mm.Name = r.Name
	mm.Ord = r.Order
}

type WeekDayResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

func FromWeekDayModel(mm m.WeekDay) WeekDayResponse {
	return WeekDayResponse{ID: mm.ID, Name: mm.Name, Order: mm.Ord}
}

func FromWeekDayModels(ms []m.WeekDay) []WeekDayResponse {
	out := make([]WeekDayResponse, 0, len(ms))
	for _, mm := range ms {
		out = append(out, FromWeekDayModel(mm))
	}
	return out
}
