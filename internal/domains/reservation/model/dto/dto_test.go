package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"villadesk/internal/domains/reservation/model"
	"villadesk/internal/domains/reservation/model/dto"
)

func TestCreateReservationRequest_ToModel(t *testing.T) {
	start := time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)

	t.Run("full payment settles the whole amount", func(t *testing.T) {
		req := dto.CreateReservationRequest{
			BookingRef:    "BK-1001",
			VillaID:       "villa-1",
			GuestCount:    4,
			GuestName:     "Jane Doe",
			PaymentType:   model.PaymentTypeFull,
			AdvanceAmount: 5000,
		}

		reservation := req.ToModel(start, end, 100000, "admin")

		assert.Equal(t, int64(100000), reservation.TotalAmount)
		assert.Equal(t, int64(100000), reservation.AdvanceAmount)
		assert.Zero(t, reservation.RemainingAmount)
		assert.Equal(t, model.StatusPending, reservation.Status)
		assert.NotEmpty(t, reservation.ID)
	})

	t.Run("split payment tracks the remaining balance", func(t *testing.T) {
		req := dto.CreateReservationRequest{
			BookingRef:    "BK-1002",
			VillaID:       "villa-1",
			GuestCount:    2,
			GuestName:     "John Doe",
			PaymentType:   model.PaymentTypeSplit,
			AdvanceAmount: 30000,
			Status:        model.StatusConfirmed,
		}

		reservation := req.ToModel(start, end, 100000, "admin")

		assert.Equal(t, int64(30000), reservation.AdvanceAmount)
		assert.Equal(t, int64(70000), reservation.RemainingAmount)
		assert.Equal(t, model.StatusConfirmed, reservation.Status)
	})
}

func TestCreateReservationRequest_Dates(t *testing.T) {
	req := dto.CreateReservationRequest{StartDate: "2025-07-10", EndDate: "2025-07-15"}

	start, end, err := req.Dates()

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC), end)

	req.EndDate = "15-07-2025"
	_, _, err = req.Dates()

	assert.Error(t, err)
}
