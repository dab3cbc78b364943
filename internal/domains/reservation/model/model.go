package model

import (
	"time"
	"villadesk/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID                 = "id"
	FieldBookingRef         = "booking_ref"
	FieldVillaID            = "villa_id"
	FieldStartDate          = "start_date"
	FieldEndDate            = "end_date"
	FieldGuestCount         = "guest_count"
	FieldGuestName          = "guest_name"
	FieldGuestEmail         = "guest_email"
	FieldGuestPhone         = "guest_phone"
	FieldTotalAmount        = "total_amount"
	FieldAdvanceAmount      = "advance_amount"
	FieldRemainingAmount    = "remaining_amount"
	FieldPaymentType        = "payment_type"
	FieldStatus             = "status"
	FieldNote               = "note"
	FieldCancellationReason = "cancellation_reason"
	FieldCancelledAt        = "cancelled_at"
)

const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

const (
	PaymentTypeFull  = "FULL_PAYMENT"
	PaymentTypeSplit = "SPLIT_PAYMENT"
)

const (
	EventReservationCreated   = "reservation.created"
	EventReservationCancelled = "reservation.cancelled"
)

// Reservation occupies the half-open range [StartDate, EndDate): the checkout
// day is free for the next check-in. Amounts are in cents.
type Reservation struct {
	ID                 string     `db:"id"`
	BookingRef         string     `db:"booking_ref"`
	VillaID            string     `db:"villa_id"`
	StartDate          time.Time  `db:"start_date"`
	EndDate            time.Time  `db:"end_date"`
	GuestCount         int        `db:"guest_count"`
	GuestName          string     `db:"guest_name"`
	GuestEmail         string     `db:"guest_email"`
	GuestPhone         string     `db:"guest_phone"`
	TotalAmount        int64      `db:"total_amount"`
	AdvanceAmount      int64      `db:"advance_amount"`
	RemainingAmount    int64      `db:"remaining_amount"`
	PaymentType        string     `db:"payment_type"`
	Status             string     `db:"status"`
	Note               string     `db:"note"`
	CancellationReason *string    `db:"cancellation_reason"`
	CancelledAt        *time.Time `db:"cancelled_at"`
	model.Metadata
}

// Overlaps reports whether the reservation's stay intersects the half-open
// range [start, end). Back-to-back stays (checkout day equals the next
// check-in day) do not overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartDate.Before(end) && r.EndDate.After(start)
}

// Nights is the stay length.
func (r *Reservation) Nights() int {
	return int(r.EndDate.Sub(r.StartDate).Hours() / 24)
}

// Event is the payload published to the reservation events topic.
type Event struct {
	Type          string    `json:"type"`
	ReservationID string    `json:"reservation_id"`
	BookingRef    string    `json:"booking_ref"`
	VillaID       string    `json:"villa_id"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}
