package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"villadesk/internal/domains/calendar/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want []time.Time
	}{
		{
			name: "closed interval includes both endpoints",
			from: date(2025, time.June, 1),
			to:   date(2025, time.June, 3),
			want: []time.Time{
				date(2025, time.June, 1),
				date(2025, time.June, 2),
				date(2025, time.June, 3),
			},
		},
		{
			name: "single day",
			from: date(2025, time.June, 1),
			to:   date(2025, time.June, 1),
			want: []time.Time{date(2025, time.June, 1)},
		},
		{
			name: "inverted range is empty",
			from: date(2025, time.June, 3),
			to:   date(2025, time.June, 1),
			want: nil,
		},
		{
			name: "time of day is dropped",
			from: time.Date(2025, time.June, 1, 15, 30, 0, 0, time.UTC),
			to:   time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC),
			want: []time.Time{
				date(2025, time.June, 1),
				date(2025, time.June, 2),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.DaysIn(tt.from, tt.to))
		})
	}
}

func TestStayNights(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  []time.Time
	}{
		{
			name:  "checkout day is not a night",
			start: date(2025, time.June, 1),
			end:   date(2025, time.June, 4),
			want: []time.Time{
				date(2025, time.June, 1),
				date(2025, time.June, 2),
				date(2025, time.June, 3),
			},
		},
		{
			name:  "one night stay",
			start: date(2025, time.June, 1),
			end:   date(2025, time.June, 2),
			want:  []time.Time{date(2025, time.June, 1)},
		},
		{
			name:  "zero length stay is empty",
			start: date(2025, time.June, 1),
			end:   date(2025, time.June, 1),
			want:  nil,
		},
		{
			name:  "inverted stay is empty",
			start: date(2025, time.June, 2),
			end:   date(2025, time.June, 1),
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.StayNights(tt.start, tt.end))
		})
	}
}

func TestTruncate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Athens")
	assert.NoError(t, err)

	truncated := model.Truncate(time.Date(2025, time.June, 1, 23, 59, 59, 0, loc))

	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, loc), truncated)
	assert.Equal(t, loc, truncated.Location())
}
