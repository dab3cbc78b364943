package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"villadesk/config"
	"villadesk/infras/otel/mocks"
	calendarMocks "villadesk/internal/domains/calendar/mocks"
	"villadesk/internal/domains/calendar/model"
	"villadesk/internal/domains/calendar/model/dto"
	"villadesk/internal/domains/calendar/service"
	villaMocks "villadesk/internal/domains/villa/mocks"
	"villadesk/shared/constant"
	"villadesk/shared/failure"
)

const testVillaID = "8a9f7a6a-1f2d-4a7e-9a44-0b1c2d3e4f50"

func newCalendarService(t *testing.T) (service.Calendar, *calendarMocks.MockCalendar, *villaMocks.MockVilla) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := calendarMocks.NewMockCalendar(ctrl)
	mockVillaRepo := villaMocks.NewMockVilla(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Booking.CalendarWindowMonths = 18

	return service.New(mockRepo, mockVillaRepo, cfg, mockOtel), mockRepo, mockVillaRepo
}

func TestCalendarService_Range(t *testing.T) {
	svc, mockRepo, _ := newCalendarService(t)
	ctx := context.Background()

	t.Run("inverted range is rejected", func(t *testing.T) {
		_, err := svc.Range(ctx, testVillaID, time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC), time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("returns rows for the window", func(t *testing.T) {
		from := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, time.July, 3, 0, 0, 0, 0, time.UTC)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.CalendarDay{
				{ID: "day-1", VillaID: testVillaID, Day: from, Status: model.StatusAvailable},
				{ID: "day-2", VillaID: testVillaID, Day: from.AddDate(0, 0, 1), Status: model.StatusReserved},
			}, nil)

		res, err := svc.Range(ctx, testVillaID, from, to)

		assert.NoError(t, err)
		assert.Equal(t, testVillaID, res.VillaID)
		assert.Len(t, res.Days, 2)
		assert.Equal(t, model.StatusReserved, res.Days[1].Status)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.Range(ctx, testVillaID, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, time.July, 3, 0, 0, 0, 0, time.UTC))

		assert.Error(t, err)
	})
}

func TestCalendarService_MarkRange(t *testing.T) {
	svc, mockRepo, mockVillaRepo := newCalendarService(t)
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("invalid dates are rejected", func(t *testing.T) {
		err := svc.MarkRange(ctx, dto.MarkRangeRequest{VillaID: testVillaID, From: "not-a-date", To: "2025-07-03"})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown villa is rejected", func(t *testing.T) {
		mockVillaRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.MarkRange(ctx, dto.MarkRangeRequest{VillaID: testVillaID, From: "2025-07-01", To: "2025-07-03", Status: model.StatusBlocked})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("explicit status rewrites existing row statuses", func(t *testing.T) {
		mockVillaRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rows []model.CalendarDay, conflictColumns, updateColumns []string) error {
				assert.Len(t, rows, 3)
				assert.Equal(t, model.StatusBlocked, rows[0].Status)
				assert.Equal(t, []string{model.FieldVillaID, model.FieldDay}, conflictColumns)
				assert.Contains(t, updateColumns, model.FieldStatus)
				return nil
			})

		err := svc.MarkRange(ctx, dto.MarkRangeRequest{VillaID: testVillaID, From: "2025-07-01", To: "2025-07-03", Status: model.StatusBlocked})

		assert.NoError(t, err)
	})

	t.Run("event only mark leaves statuses untouched", func(t *testing.T) {
		offer := model.EventSpecialOffer
		price := int64(15000)

		mockVillaRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rows []model.CalendarDay, _, updateColumns []string) error {
				// New rows still default to AVAILABLE.
				assert.Equal(t, model.StatusAvailable, rows[0].Status)
				assert.NotContains(t, updateColumns, model.FieldStatus)
				assert.Contains(t, updateColumns, model.FieldEventType)
				assert.Contains(t, updateColumns, model.FieldPrice)
				return nil
			})

		err := svc.MarkRange(ctx, dto.MarkRangeRequest{VillaID: testVillaID, From: "2025-07-01", To: "2025-07-01", EventType: &offer, Price: &price})

		assert.NoError(t, err)
	})
}

func TestCalendarService_Reserve(t *testing.T) {
	svc, mockRepo, _ := newCalendarService(t)
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("empty stay is rejected", func(t *testing.T) {
		day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

		err := svc.Reserve(ctx, testVillaID, day, day)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("marks every night except checkout", func(t *testing.T) {
		start := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, time.July, 4, 0, 0, 0, 0, time.UTC)

		mockRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rows []model.CalendarDay, _, updateColumns []string) error {
				assert.Len(t, rows, 3)
				for _, row := range rows {
					assert.Equal(t, model.StatusReserved, row.Status)
				}
				// Price, event and note on existing rows must survive a reserve.
				assert.NotContains(t, updateColumns, model.FieldPrice)
				assert.NotContains(t, updateColumns, model.FieldEventType)
				return nil
			})

		err := svc.Reserve(ctx, testVillaID, start, end)

		assert.NoError(t, err)
	})
}

func TestCalendarService_Release(t *testing.T) {
	svc, mockRepo, _ := newCalendarService(t)
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("flips only reserved rows back", func(t *testing.T) {
		start := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, time.July, 4, 0, 0, 0, 0, time.UTC)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod map[string]any, _ any) error {
				assert.Equal(t, model.StatusAvailable, mod[model.FieldStatus])
				return nil
			})

		err := svc.Release(ctx, testVillaID, start, end)

		assert.NoError(t, err)
	})

	t.Run("empty range is rejected", func(t *testing.T) {
		day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

		err := svc.Release(ctx, testVillaID, day, day)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestCalendarService_Populate(t *testing.T) {
	svc, mockRepo, mockVillaRepo := newCalendarService(t)
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("unknown villa is rejected", func(t *testing.T) {
		mockVillaRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Populate(ctx, dto.PopulateRequest{VillaID: testVillaID})

		assert.Error(t, err)
	})

	t.Run("never rewrites existing rows", func(t *testing.T) {
		mockVillaRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, rows []model.CalendarDay, _, _ []string) error {
				assert.NotEmpty(t, rows)
				assert.Equal(t, model.StatusAvailable, rows[0].Status)
				return nil
			})

		err := svc.Populate(ctx, dto.PopulateRequest{VillaID: testVillaID, Months: 2})

		assert.NoError(t, err)
	})
}
