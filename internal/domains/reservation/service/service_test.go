package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"villadesk/config"
	kafkaMocks "villadesk/infras/kafka/mocks"
	"villadesk/infras/otel/mocks"
	"villadesk/infras/postgres"
	calendarServiceMocks "villadesk/internal/domains/calendar/service/mocks"
	pricingDto "villadesk/internal/domains/pricing/model/dto"
	pricingServiceMocks "villadesk/internal/domains/pricing/service/mocks"
	reservationMocks "villadesk/internal/domains/reservation/mocks"
	"villadesk/internal/domains/reservation/model"
	"villadesk/internal/domains/reservation/model/dto"
	"villadesk/internal/domains/reservation/service"
	villaMocks "villadesk/internal/domains/villa/mocks"
	villaModel "villadesk/internal/domains/villa/model"
	"villadesk/shared/cache"
	cacheMocks "villadesk/shared/cache/mocks"
	"villadesk/shared/constant"
	"villadesk/shared/failure"
)

const testVillaID = "8a9f7a6a-1f2d-4a7e-9a44-0b1c2d3e4f50"

type reservationFixture struct {
	svc          service.Reservation
	mockRepo     *reservationMocks.MockReservation
	mockVilla    *villaMocks.MockVilla
	mockCalendar *calendarServiceMocks.MockCalendar
	mockPricing  *pricingServiceMocks.MockPricing
	mockLocker   *cacheMocks.MockLocker
	mockProducer *kafkaMocks.MockClient
	mockCache    *cacheMocks.MockRedisCache
}

func newReservationService(t *testing.T) reservationFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockVilla := villaMocks.NewMockVilla(ctrl)
	mockCalendar := calendarServiceMocks.NewMockCalendar(ctrl)
	mockPricing := pricingServiceMocks.NewMockPricing(ctrl)
	mockLocker := cacheMocks.NewMockLocker(ctrl)
	mockProducer := kafkaMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.VillaLockTTLSeconds = 10

	// Cache writes and invalidations run on detached goroutines.
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockVilla, mockCalendar, mockPricing, &postgres.Connection{}, mockLocker, mockProducer, cfg, mockCache, mockOtel)

	return reservationFixture{
		svc:          svc,
		mockRepo:     mockRepo,
		mockVilla:    mockVilla,
		mockCalendar: mockCalendar,
		mockPricing:  mockPricing,
		mockLocker:   mockLocker,
		mockProducer: mockProducer,
		mockCache:    mockCache,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testVilla() villaModel.Villa {
	return villaModel.Villa{
		ID:          testVillaID,
		Name:        "Villa Thalassa",
		MaxGuests:   6,
		MinimumStay: 2,
		Active:      true,
	}
}

func validCreateRequest() dto.CreateReservationRequest {
	total := int64(100000)

	return dto.CreateReservationRequest{
		BookingRef:    "BK-1001",
		VillaID:       testVillaID,
		StartDate:     "2025-07-10",
		EndDate:       "2025-07-15",
		GuestCount:    4,
		GuestName:     "Jane Doe",
		TotalAmount:   &total,
		AdvanceAmount: 30000,
		PaymentType:   model.PaymentTypeSplit,
	}
}

func existingReservation(id string, start, end time.Time, status string) model.Reservation {
	return model.Reservation{
		ID:          id,
		BookingRef:  "BK-" + id,
		VillaID:     testVillaID,
		StartDate:   start,
		EndDate:     end,
		GuestCount:  2,
		GuestName:   "Guest",
		TotalAmount: 50000,
		PaymentType: model.PaymentTypeFull,
		Status:      status,
	}
}

func TestReservationService_Create(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("invalid dates", func(t *testing.T) {
		fx := newReservationService(t)

		req := validCreateRequest()
		req.StartDate = "July 10"

		_, err := fx.svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("start must be before end", func(t *testing.T) {
		fx := newReservationService(t)

		req := validCreateRequest()
		req.StartDate = "2025-07-15"
		req.EndDate = "2025-07-10"

		_, err := fx.svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown villa", func(t *testing.T) {
		fx := newReservationService(t)

		fx.mockVilla.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(villaModel.Villa{}, nil)

		_, err := fx.svc.Create(ctx, validCreateRequest())

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("guest count over villa capacity", func(t *testing.T) {
		fx := newReservationService(t)

		fx.mockVilla.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(testVilla(), nil)

		req := validCreateRequest()
		req.GuestCount = 10

		_, err := fx.svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("stay below the minimum", func(t *testing.T) {
		fx := newReservationService(t)

		fx.mockVilla.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(testVilla(), nil)

		req := validCreateRequest()
		req.StartDate = "2025-07-10"
		req.EndDate = "2025-07-11"

		_, err := fx.svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("duplicate booking ref conflicts", func(t *testing.T) {
		fx := newReservationService(t)

		fx.mockVilla.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(testVilla(), nil)

		fx.mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := fx.svc.Create(ctx, validCreateRequest())

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("villa lock held by another booking", func(t *testing.T) {
		fx := newReservationService(t)

		fx.mockVilla.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(testVilla(), nil)

		fx.mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		fx.mockLocker.EXPECT().
			Acquire(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, cache.ErrLockNotAcquired)

		_, err := fx.svc.Create(ctx, validCreateRequest())

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("overlapping stay conflicts", func(t *testing.T) {
		fx := newReservationService(t)

		fx.mockVilla.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(testVilla(), nil)

		fx.mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		fx.mockLocker.EXPECT().
			Acquire(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(func() {}, nil)

		fx.mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Reservation{
				existingReservation("res-1", date(2025, time.July, 12), date(2025, time.July, 18), model.StatusConfirmed),
			}, nil)

		_, err := fx.svc.Create(ctx, validCreateRequest())

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("back to back stay does not conflict but advance over total fails", func(t *testing.T) {
		fx := newReservationService(t)

		fx.mockVilla.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(testVilla(), nil)

		fx.mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		fx.mockLocker.EXPECT().
			Acquire(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(func() {}, nil)

		// Checkout on July 10 is compatible with a July 10 check-in.
		fx.mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Reservation{
				existingReservation("res-1", date(2025, time.July, 5), date(2025, time.July, 10), model.StatusConfirmed),
			}, nil)

		req := validCreateRequest()
		req.AdvanceAmount = 200000

		_, err := fx.svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("quote failure propagates when no total is given", func(t *testing.T) {
		fx := newReservationService(t)

		fx.mockVilla.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(testVilla(), nil)

		fx.mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		fx.mockLocker.EXPECT().
			Acquire(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(func() {}, nil)

		fx.mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		fx.mockPricing.EXPECT().
			Quote(gomock.Any(), testVillaID, gomock.Any(), gomock.Any()).
			Return(pricingDto.QuoteResponse{}, failure.Unprocessable("no nightly rate available for the requested dates"))

		req := validCreateRequest()
		req.TotalAmount = nil

		_, err := fx.svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
	})
}

func TestReservationService_CheckConflict(t *testing.T) {
	ctx := context.Background()

	t.Run("reports overlap with live reservations", func(t *testing.T) {
		fx := newReservationService(t)

		fx.mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Reservation{
				existingReservation("res-1", date(2025, time.July, 12), date(2025, time.July, 18), model.StatusConfirmed),
			}, nil)

		res, err := fx.svc.CheckConflict(ctx, dto.CheckConflictRequest{
			VillaID:   testVillaID,
			StartDate: "2025-07-10",
			EndDate:   "2025-07-15",
		})

		assert.NoError(t, err)
		assert.True(t, res.Conflict)
		assert.Equal(t, []string{"res-1"}, res.Reservations)
	})

	t.Run("back to back stays do not conflict", func(t *testing.T) {
		fx := newReservationService(t)

		fx.mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Reservation{
				existingReservation("res-1", date(2025, time.July, 5), date(2025, time.July, 10), model.StatusConfirmed),
			}, nil)

		res, err := fx.svc.CheckConflict(ctx, dto.CheckConflictRequest{
			VillaID:   testVillaID,
			StartDate: "2025-07-10",
			EndDate:   "2025-07-15",
		})

		assert.NoError(t, err)
		assert.False(t, res.Conflict)
	})

	t.Run("the excluded reservation is ignored", func(t *testing.T) {
		fx := newReservationService(t)

		fx.mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Reservation{
				existingReservation("res-1", date(2025, time.July, 12), date(2025, time.July, 18), model.StatusConfirmed),
			}, nil)

		res, err := fx.svc.CheckConflict(ctx, dto.CheckConflictRequest{
			VillaID:   testVillaID,
			StartDate: "2025-07-10",
			EndDate:   "2025-07-15",
			ExcludeID: "res-1",
		})

		assert.NoError(t, err)
		assert.False(t, res.Conflict)
	})

	t.Run("invalid range", func(t *testing.T) {
		fx := newReservationService(t)

		_, err := fx.svc.CheckConflict(ctx, dto.CheckConflictRequest{
			VillaID:   testVillaID,
			StartDate: "2025-07-15",
			EndDate:   "2025-07-15",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestReservationService_Update(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("empty request", func(t *testing.T) {
		fx := newReservationService(t)

		err := fx.svc.Update(ctx, dto.UpdateReservationRequest{}, "res-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("cancelled reservation is immutable", func(t *testing.T) {
		fx := newReservationService(t)

		fx.mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existingReservation("res-1", date(2025, time.July, 10), date(2025, time.July, 15), model.StatusCancelled), nil)

		err := fx.svc.Update(ctx, dto.UpdateReservationRequest{GuestName: "New Name"}, "res-1")

		assert.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
	})

	t.Run("advance over total", func(t *testing.T) {
		fx := newReservationService(t)

		fx.mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existingReservation("res-1", date(2025, time.July, 10), date(2025, time.July, 15), model.StatusConfirmed), nil)

		advance := int64(60000)
		err := fx.svc.Update(ctx, dto.UpdateReservationRequest{AdvanceAmount: &advance}, "res-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("advance update recomputes the remaining balance", func(t *testing.T) {
		fx := newReservationService(t)

		fx.mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existingReservation("res-1", date(2025, time.July, 10), date(2025, time.July, 15), model.StatusConfirmed), nil)

		fx.mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updatedFields map[string]any, _ any) error {
				assert.Equal(t, int64(30000), updatedFields[model.FieldRemainingAmount])
				return nil
			})

		advance := int64(20000)
		err := fx.svc.Update(ctx, dto.UpdateReservationRequest{AdvanceAmount: &advance}, "res-1")

		assert.NoError(t, err)
	})
}

func TestReservationService_UpdateStatus(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("not found", func(t *testing.T) {
		fx := newReservationService(t)

		fx.mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{}, nil)

		err := fx.svc.UpdateStatus(ctx, dto.UpdateReservationStatusRequest{Status: model.StatusConfirmed}, "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("cancelled reservation cannot change again", func(t *testing.T) {
		fx := newReservationService(t)

		fx.mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existingReservation("res-1", date(2025, time.July, 10), date(2025, time.July, 15), model.StatusCancelled), nil)

		err := fx.svc.UpdateStatus(ctx, dto.UpdateReservationStatusRequest{Status: model.StatusConfirmed}, "res-1")

		assert.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		fx := newReservationService(t)

		fx.mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existingReservation("res-1", date(2025, time.July, 10), date(2025, time.July, 15), model.StatusConfirmed), nil)

		err := fx.svc.UpdateStatus(ctx, dto.UpdateReservationStatusRequest{Status: model.StatusConfirmed}, "res-1")

		assert.NoError(t, err)
	})

	t.Run("non-cancelling transition updates in place", func(t *testing.T) {
		fx := newReservationService(t)

		fx.mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existingReservation("res-1", date(2025, time.July, 10), date(2025, time.July, 15), model.StatusPending), nil)

		fx.mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updatedFields map[string]any, _ any) error {
				assert.Equal(t, model.StatusConfirmed, updatedFields[model.FieldStatus])
				assert.NotContains(t, updatedFields, model.FieldCancelledAt)
				return nil
			})

		err := fx.svc.UpdateStatus(ctx, dto.UpdateReservationStatusRequest{Status: model.StatusConfirmed}, "res-1")

		assert.NoError(t, err)
	})
}
