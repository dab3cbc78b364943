package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"villadesk/internal/domains/pricing/model"
	gModel "villadesk/shared/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rule(id string, start, end time.Time, price int64, active bool, createdAt time.Time) model.SeasonalPrice {
	return model.SeasonalPrice{
		ID:           id,
		VillaID:      "villa-1",
		Name:         id,
		StartDate:    start,
		EndDate:      end,
		NightlyPrice: price,
		Active:       active,
		Metadata:     gModel.Metadata{CreatedAt: createdAt},
	}
}

func TestSeasonalPrice_Contains(t *testing.T) {
	season := rule("summer", date(2025, time.June, 1), date(2025, time.August, 31), 20000, true, time.Now())

	assert.True(t, season.Contains(date(2025, time.June, 1)))
	assert.True(t, season.Contains(date(2025, time.August, 31)))
	assert.True(t, season.Contains(date(2025, time.July, 15)))
	assert.False(t, season.Contains(date(2025, time.May, 31)))
	assert.False(t, season.Contains(date(2025, time.September, 1)))
}

func TestBestRule(t *testing.T) {
	day := date(2025, time.August, 10)

	wide := rule("high-season", date(2025, time.June, 1), date(2025, time.August, 31), 20000, true, date(2025, time.January, 1))
	narrow := rule("august-peak", date(2025, time.August, 1), date(2025, time.August, 20), 30000, true, date(2025, time.February, 1))
	inactive := rule("disabled-peak", date(2025, time.August, 9), date(2025, time.August, 11), 50000, false, date(2025, time.March, 1))

	tests := []struct {
		name      string
		rules     []model.SeasonalPrice
		wantID    string
		wantFound bool
	}{
		{
			name:      "single covering rule",
			rules:     []model.SeasonalPrice{wide},
			wantID:    "high-season",
			wantFound: true,
		},
		{
			name:      "narrowest range wins over wider",
			rules:     []model.SeasonalPrice{wide, narrow},
			wantID:    "august-peak",
			wantFound: true,
		},
		{
			name:      "order of rules does not matter",
			rules:     []model.SeasonalPrice{narrow, wide},
			wantID:    "august-peak",
			wantFound: true,
		},
		{
			name:      "inactive rules are skipped",
			rules:     []model.SeasonalPrice{wide, inactive},
			wantID:    "high-season",
			wantFound: true,
		},
		{
			name:      "no covering rule",
			rules:     []model.SeasonalPrice{rule("spring", date(2025, time.March, 1), date(2025, time.May, 31), 12000, true, date(2025, time.January, 1))},
			wantFound: false,
		},
		{
			name:      "equal span ties go to the newest rule",
			rules:     []model.SeasonalPrice{rule("old", date(2025, time.August, 5), date(2025, time.August, 15), 25000, true, date(2025, time.January, 1)), rule("new", date(2025, time.August, 5), date(2025, time.August, 15), 28000, true, date(2025, time.April, 1))},
			wantID:    "new",
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best, found := model.BestRule(day, tt.rules)

			assert.Equal(t, tt.wantFound, found)

			if tt.wantFound {
				assert.Equal(t, tt.wantID, best.ID)
			}
		})
	}
}
