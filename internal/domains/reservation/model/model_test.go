package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"villadesk/internal/domains/reservation/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReservation_Overlaps(t *testing.T) {
	stay := model.Reservation{
		StartDate: date(2025, time.July, 10),
		EndDate:   date(2025, time.July, 15),
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			name:  "identical range overlaps",
			start: date(2025, time.July, 10),
			end:   date(2025, time.July, 15),
			want:  true,
		},
		{
			name:  "partial overlap at the front",
			start: date(2025, time.July, 8),
			end:   date(2025, time.July, 11),
			want:  true,
		},
		{
			name:  "partial overlap at the back",
			start: date(2025, time.July, 14),
			end:   date(2025, time.July, 20),
			want:  true,
		},
		{
			name:  "fully contained",
			start: date(2025, time.July, 11),
			end:   date(2025, time.July, 13),
			want:  true,
		},
		{
			name:  "back to back after checkout is legal",
			start: date(2025, time.July, 15),
			end:   date(2025, time.July, 18),
			want:  false,
		},
		{
			name:  "back to back before check-in is legal",
			start: date(2025, time.July, 5),
			end:   date(2025, time.July, 10),
			want:  false,
		},
		{
			name:  "disjoint range",
			start: date(2025, time.July, 20),
			end:   date(2025, time.July, 25),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stay.Overlaps(tt.start, tt.end))
		})
	}
}

func TestReservation_Nights(t *testing.T) {
	stay := model.Reservation{
		StartDate: date(2025, time.July, 10),
		EndDate:   date(2025, time.July, 15),
	}

	assert.Equal(t, 5, stay.Nights())
}
