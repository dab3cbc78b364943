package dto

import (
	"time"
	"villadesk/internal/domains/reservation/model"
	"villadesk/shared"
	"villadesk/shared/constant"
	gDto "villadesk/shared/dto"
	gModel "villadesk/shared/model"
	"villadesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	BookingRef    string `json:"booking_ref"    validate:"required,max=50"`
	VillaID       string `json:"villa_id"       validate:"required,uuid"`
	StartDate     string `json:"start_date"     validate:"required,dateonly"`
	EndDate       string `json:"end_date"       validate:"required,dateonly"`
	GuestCount    int    `json:"guest_count"    validate:"required,gt=0"`
	GuestName     string `json:"guest_name"     validate:"required,max=100"`
	GuestEmail    string `json:"guest_email"    validate:"omitempty,email"`
	GuestPhone    string `json:"guest_phone"    validate:"omitempty,max=30"`
	TotalAmount   *int64 `json:"total_amount"   validate:"omitempty,gt=0"`
	AdvanceAmount int64  `json:"advance_amount" validate:"omitempty,gte=0"`
	PaymentType   string `json:"payment_type"   validate:"required,oneof=FULL_PAYMENT SPLIT_PAYMENT"`
	Status        string `json:"status"         validate:"omitempty,oneof=PENDING CONFIRMED"`
	Note          string `json:"note"           validate:"omitempty"`
}

// Dates parses the stay range. EndDate is the checkout day, exclusive.
func (c *CreateReservationRequest) Dates() (start, end time.Time, err error) {
	start, err = time.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return start, end, err
	}

	end, err = time.Parse(constant.DateOnlyFormat, c.EndDate)

	return start, end, err
}

// ToModel builds the reservation with its payment breakdown settled: a
// FULL_PAYMENT booking has no remaining balance regardless of the advance
// sent, a SPLIT_PAYMENT one owes total minus advance.
func (c *CreateReservationRequest) ToModel(start, end time.Time, total int64, user string) model.Reservation {
	status := c.Status
	if status == "" {
		status = model.StatusPending
	}

	advance := c.AdvanceAmount
	remaining := total - advance

	if c.PaymentType == model.PaymentTypeFull {
		advance = total
		remaining = 0
	}

	return model.Reservation{
		ID:              uuid.NewString(),
		BookingRef:      c.BookingRef,
		VillaID:         c.VillaID,
		StartDate:       start,
		EndDate:         end,
		GuestCount:      c.GuestCount,
		GuestName:       c.GuestName,
		GuestEmail:      c.GuestEmail,
		GuestPhone:      c.GuestPhone,
		TotalAmount:     total,
		AdvanceAmount:   advance,
		RemainingAmount: remaining,
		PaymentType:     c.PaymentType,
		Status:          status,
		Note:            c.Note,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateReservationRequest struct {
	GuestCount    int    `db:"guest_count"    json:"guest_count"    validate:"omitempty,gt=0"`
	GuestName     string `db:"guest_name"     json:"guest_name"     validate:"omitempty,max=100"`
	GuestEmail    string `db:"guest_email"    json:"guest_email"    validate:"omitempty,email"`
	GuestPhone    string `db:"guest_phone"    json:"guest_phone"    validate:"omitempty,max=30"`
	AdvanceAmount *int64 `db:"advance_amount" json:"advance_amount" validate:"omitempty,gte=0"`
	Note          string `db:"note"           json:"note"           validate:"omitempty"`
}

type UpdateReservationStatusRequest struct {
	Status             string `json:"status"              validate:"required,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
	CancellationReason string `json:"cancellation_reason" validate:"omitempty,max=255"`
}

type CheckConflictRequest struct {
	VillaID   string `json:"villa_id"   validate:"required,uuid"`
	StartDate string `json:"start_date" validate:"required,dateonly"`
	EndDate   string `json:"end_date"   validate:"required,dateonly"`
	ExcludeID string `json:"exclude_id" validate:"omitempty,uuid"`
}

func (c *CheckConflictRequest) Dates() (start, end time.Time, err error) {
	start, err = time.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return start, end, err
	}

	end, err = time.Parse(constant.DateOnlyFormat, c.EndDate)

	return start, end, err
}

type ConflictResponse struct {
	Conflict     bool     `json:"conflict"`
	Reservations []string `json:"reservations,omitempty"`
}

type ReservationResponse struct {
	ID                 string  `json:"id"`
	BookingRef         string  `json:"booking_ref"`
	VillaID            string  `json:"villa_id"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	Nights             int     `json:"nights"`
	GuestCount         int     `json:"guest_count"`
	GuestName          string  `json:"guest_name"`
	GuestEmail         string  `json:"guest_email,omitempty"`
	GuestPhone         string  `json:"guest_phone,omitempty"`
	TotalAmount        int64   `json:"total_amount"`
	AdvanceAmount      int64   `json:"advance_amount"`
	RemainingAmount    int64   `json:"remaining_amount"`
	PaymentType        string  `json:"payment_type"`
	Status             string  `json:"status"`
	Note               string  `json:"note,omitempty"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
	CancelledAt        *string `json:"cancelled_at,omitempty"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.BookingRef = model.BookingRef
	r.VillaID = model.VillaID
	r.StartDate = model.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = model.EndDate.Format(constant.DateOnlyFormat)
	r.Nights = model.Nights()
	r.GuestCount = model.GuestCount
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.TotalAmount = model.TotalAmount
	r.AdvanceAmount = model.AdvanceAmount
	r.RemainingAmount = model.RemainingAmount
	r.PaymentType = model.PaymentType
	r.Status = model.Status
	r.Note = model.Note
	r.CancellationReason = model.CancellationReason

	if model.CancelledAt != nil {
		cancelledAt := model.CancelledAt.Format(time.RFC3339)
		r.CancelledAt = &cancelledAt
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

type ReconcileResponse struct {
	VillaID      string `json:"villa_id"`
	Reservations int    `json:"reservations"`
	NightsMarked int    `json:"nights_marked"`
}
