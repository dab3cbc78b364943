package model

import (
	"time"
	"villadesk/shared/model"
)

const (
	TableName  = "calendar_days"
	EntityName = "calendar_day"

	FieldID        = "id"
	FieldVillaID   = "villa_id"
	FieldDay       = "day"
	FieldStatus    = "status"
	FieldPrice     = "price"
	FieldEventType = "event_type"
	FieldNote      = "note"
)

const (
	StatusAvailable = "AVAILABLE"
	StatusPending   = "PENDING"
	StatusReserved  = "RESERVED"
	StatusBlocked   = "BLOCKED"
)

const (
	EventCheckIn      = "CHECKIN"
	EventCheckOut     = "CHECKOUT"
	EventSpecialOffer = "SPECIAL_OFFER"
)

// CalendarDay is one ledger row: the state of a single villa on a single day.
// Price is an optional per-day override in cents.
type CalendarDay struct {
	ID        string    `db:"id"`
	VillaID   string    `db:"villa_id"`
	Day       time.Time `db:"day"`
	Status    string    `db:"status"`
	Price     *int64    `db:"price"`
	EventType *string   `db:"event_type"`
	Note      *string   `db:"note"`
	model.Metadata
}

// DaysIn returns every day of the closed interval [from, to].
func DaysIn(from, to time.Time) []time.Time {
	from = Truncate(from)
	to = Truncate(to)

	if to.Before(from) {
		return nil
	}

	days := []time.Time{}
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}

	return days
}

// StayNights returns every night of the half-open stay range [start, end):
// the checkout day itself is not occupied.
func StayNights(start, end time.Time) []time.Time {
	start = Truncate(start)
	end = Truncate(end)

	if !start.Before(end) {
		return nil
	}

	return DaysIn(start, end.AddDate(0, 0, -1))
}

// Truncate drops the time-of-day component, keeping the location.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
