package dto

import (
	"time"
	"villadesk/internal/domains/calendar/model"
	"villadesk/shared/constant"
	gDto "villadesk/shared/dto"
)

type MarkRangeRequest struct {
	VillaID   string  `json:"villa_id"   validate:"required,uuid"`
	From      string  `json:"from"       validate:"required,dateonly"`
	To        string  `json:"to"         validate:"required,dateonly"`
	Status    string  `json:"status"     validate:"omitempty,oneof=AVAILABLE PENDING RESERVED BLOCKED"`
	EventType *string `json:"event_type" validate:"omitempty"`
	Price     *int64  `json:"price"      validate:"omitempty,gte=0"`
	Note      *string `json:"note"       validate:"omitempty"`
}

// Dates parses the closed interval bounds.
func (m *MarkRangeRequest) Dates() (from, to time.Time, err error) {
	from, err = time.Parse(constant.DateOnlyFormat, m.From)
	if err != nil {
		return from, to, err
	}

	to, err = time.Parse(constant.DateOnlyFormat, m.To)

	return from, to, err
}

type PopulateRequest struct {
	VillaID string `json:"villa_id" validate:"required,uuid"`
	Months  int    `json:"months"   validate:"omitempty,gte=1,lte=36"`
}

type CalendarDayResponse struct {
	ID        string  `json:"id"`
	VillaID   string  `json:"villa_id"`
	Day       string  `json:"day"`
	Status    string  `json:"status"`
	Price     *int64  `json:"price,omitempty"`
	EventType *string `json:"event_type,omitempty"`
	Note      *string `json:"note,omitempty"`
	gDto.Metadata
}

func (r *CalendarDayResponse) FromModel(model model.CalendarDay) {
	r.ID = model.ID
	r.VillaID = model.VillaID
	r.Day = model.Day.Format(constant.DateOnlyFormat)
	r.Status = model.Status
	r.Price = model.Price
	r.EventType = model.EventType
	r.Note = model.Note
	r.Metadata.FromModel(model.Metadata)
}

type GetCalendarResponse struct {
	VillaID string                `json:"villa_id"`
	From    string                `json:"from"`
	To      string                `json:"to"`
	Days    []CalendarDayResponse `json:"days"`
}

func (r *GetCalendarResponse) FromModels(villaID string, from, to time.Time, models []model.CalendarDay) {
	r.VillaID = villaID
	r.From = from.Format(constant.DateOnlyFormat)
	r.To = to.Format(constant.DateOnlyFormat)

	r.Days = make([]CalendarDayResponse, len(models))
	for i, mod := range models {
		r.Days[i].FromModel(mod)
	}
}
