package model

import (
	"time"
	"villadesk/shared/model"
)

const (
	TableName  = "seasonal_prices"
	EntityName = "seasonal_price"

	FieldID           = "id"
	FieldVillaID      = "villa_id"
	FieldName         = "name"
	FieldStartDate    = "start_date"
	FieldEndDate      = "end_date"
	FieldNightlyPrice = "nightly_price"
	FieldWeeklyPrice  = "weekly_price"
	FieldActive       = "active"
	FieldDescription  = "description"
)

// Rate sources reported by the resolver.
const (
	RateSourceOverride = "override"
	RateSourceSeasonal = "seasonal"
)

// SeasonalPrice is a pricing rule covering the closed date interval
// [StartDate, EndDate]. Prices are in cents.
type SeasonalPrice struct {
	ID           string    `db:"id"`
	VillaID      string    `db:"villa_id"`
	Name         string    `db:"name"`
	StartDate    time.Time `db:"start_date"`
	EndDate      time.Time `db:"end_date"`
	NightlyPrice int64     `db:"nightly_price"`
	WeeklyPrice  *int64    `db:"weekly_price"`
	Active       bool      `db:"active"`
	Description  string    `db:"description"`
	model.Metadata
}

// Contains reports whether the rule covers the given day.
func (p *SeasonalPrice) Contains(day time.Time) bool {
	return !day.Before(p.StartDate) && !day.After(p.EndDate)
}

// Span is the rule's width in days; the tie-break prefers narrower rules.
func (p *SeasonalPrice) Span() int {
	return int(p.EndDate.Sub(p.StartDate).Hours() / 24)
}

// BestRule picks the active rule covering the day. Overlapping rules resolve
// deterministically: the narrowest range wins, ties go to the most recently
// created rule.
func BestRule(day time.Time, rules []SeasonalPrice) (SeasonalPrice, bool) {
	var best SeasonalPrice

	found := false

	for _, rule := range rules {
		if !rule.Active || !rule.Contains(day) {
			continue
		}

		if !found {
			best = rule
			found = true

			continue
		}

		if rule.Span() < best.Span() {
			best = rule

			continue
		}

		if rule.Span() == best.Span() && rule.CreatedAt.After(best.CreatedAt) {
			best = rule
		}
	}

	return best, found
}
