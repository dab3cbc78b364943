package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"villadesk/config"
	"villadesk/infras/otel/mocks"
	calendarMocks "villadesk/internal/domains/calendar/mocks"
	calendarModel "villadesk/internal/domains/calendar/model"
	pricingMocks "villadesk/internal/domains/pricing/mocks"
	"villadesk/internal/domains/pricing/model"
	"villadesk/internal/domains/pricing/model/dto"
	"villadesk/internal/domains/pricing/service"
	villaMocks "villadesk/internal/domains/villa/mocks"
	cacheMocks "villadesk/shared/cache/mocks"
	"villadesk/shared/constant"
	"villadesk/shared/failure"
	gModel "villadesk/shared/model"
)

const testVillaID = "8a9f7a6a-1f2d-4a7e-9a44-0b1c2d3e4f50"

type pricingFixture struct {
	svc              service.Pricing
	mockRepo         *pricingMocks.MockPricing
	mockCalendarRepo *calendarMocks.MockCalendar
	mockVillaRepo    *villaMocks.MockVilla
	mockCache        *cacheMocks.MockRedisCache
}

func newPricingService(t *testing.T) pricingFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := pricingMocks.NewMockPricing(ctrl)
	mockCalendarRepo := calendarMocks.NewMockCalendar(ctrl)
	mockVillaRepo := villaMocks.NewMockVilla(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Cache writes and invalidations run on detached goroutines.
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return pricingFixture{
		svc:              service.New(mockRepo, mockCalendarRepo, mockVillaRepo, cfg, mockCache, mockOtel),
		mockRepo:         mockRepo,
		mockCalendarRepo: mockCalendarRepo,
		mockVillaRepo:    mockVillaRepo,
		mockCache:        mockCache,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seasonalRule(id string, start, end time.Time, price int64, createdAt time.Time) model.SeasonalPrice {
	return model.SeasonalPrice{
		ID:           id,
		VillaID:      testVillaID,
		Name:         id,
		StartDate:    start,
		EndDate:      end,
		NightlyPrice: price,
		Active:       true,
		Metadata:     gModel.Metadata{CreatedAt: createdAt},
	}
}

func specialOffer(day time.Time, price int64) calendarModel.CalendarDay {
	offer := calendarModel.EventSpecialOffer

	return calendarModel.CalendarDay{
		ID:        "override-" + day.Format(constant.DateOnlyFormat),
		VillaID:   testVillaID,
		Day:       day,
		Status:    calendarModel.StatusAvailable,
		Price:     &price,
		EventType: &offer,
	}
}

func TestPricingService_Create(t *testing.T) {
	fx := newPricingService(t)
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	validReq := dto.CreateSeasonalPriceRequest{
		VillaID:      testVillaID,
		Name:         "High Season",
		StartDate:    "2025-06-01",
		EndDate:      "2025-08-31",
		NightlyPrice: 20000,
	}

	t.Run("invalid date format", func(t *testing.T) {
		req := validReq
		req.StartDate = "June 1st"

		err := fx.svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("end before start", func(t *testing.T) {
		req := validReq
		req.StartDate = "2025-08-31"
		req.EndDate = "2025-06-01"

		err := fx.svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown villa", func(t *testing.T) {
		fx.mockVillaRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := fx.svc.Create(ctx, validReq)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("duplicate date range conflicts", func(t *testing.T) {
		fx.mockVillaRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		fx.mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := fx.svc.Create(ctx, validReq)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("successful creation", func(t *testing.T) {
		fx.mockVillaRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		fx.mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		fx.mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, seasonalPrice model.SeasonalPrice) error {
				assert.Equal(t, testVillaID, seasonalPrice.VillaID)
				assert.True(t, seasonalPrice.Active)
				assert.Equal(t, int64(20000), seasonalPrice.NightlyPrice)
				return nil
			})

		err := fx.svc.Create(ctx, validReq)

		assert.NoError(t, err)
	})
}

func TestPricingService_Resolve(t *testing.T) {
	fx := newPricingService(t)
	ctx := context.Background()
	day := date(2025, time.August, 10)

	t.Run("special offer override wins over seasonal rule", func(t *testing.T) {
		fx.mockCalendarRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]calendarModel.CalendarDay{specialOffer(day, 9900)}, nil)

		fx.mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.SeasonalPrice{seasonalRule("high-season", date(2025, time.June, 1), date(2025, time.August, 31), 20000, date(2025, time.January, 1))}, nil)

		rate, err := fx.svc.Resolve(ctx, testVillaID, day)

		assert.NoError(t, err)
		assert.Equal(t, int64(9900), rate.Price)
		assert.Equal(t, model.RateSourceOverride, rate.Source)
	})

	t.Run("falls back to the best seasonal rule", func(t *testing.T) {
		fx.mockCalendarRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		fx.mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.SeasonalPrice{
				seasonalRule("high-season", date(2025, time.June, 1), date(2025, time.August, 31), 20000, date(2025, time.January, 1)),
				seasonalRule("august-peak", date(2025, time.August, 1), date(2025, time.August, 20), 30000, date(2025, time.February, 1)),
			}, nil)

		rate, err := fx.svc.Resolve(ctx, testVillaID, day)

		assert.NoError(t, err)
		assert.Equal(t, int64(30000), rate.Price)
		assert.Equal(t, model.RateSourceSeasonal, rate.Source)
		assert.Equal(t, "august-peak", rate.SeasonName)
	})

	t.Run("calendar row without offer does not price the night", func(t *testing.T) {
		blocked := calendarModel.CalendarDay{
			ID:      "plain-row",
			VillaID: testVillaID,
			Day:     day,
			Status:  calendarModel.StatusBlocked,
		}

		fx.mockCalendarRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]calendarModel.CalendarDay{blocked}, nil)

		fx.mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		_, err := fx.svc.Resolve(ctx, testVillaID, day)

		assert.ErrorIs(t, err, service.ErrRateUnavailable)
	})

	t.Run("no rule and no override", func(t *testing.T) {
		fx.mockCalendarRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		fx.mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		_, err := fx.svc.Resolve(ctx, testVillaID, day)

		assert.ErrorIs(t, err, service.ErrRateUnavailable)
		assert.Equal(t, 422, failure.GetCode(err))
	})
}

func TestPricingService_Quote(t *testing.T) {
	fx := newPricingService(t)
	ctx := context.Background()

	t.Run("empty stay is rejected", func(t *testing.T) {
		day := date(2025, time.August, 10)

		_, err := fx.svc.Quote(ctx, testVillaID, day, day)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("sums every night and excludes checkout", func(t *testing.T) {
		start := date(2025, time.August, 10)
		end := date(2025, time.August, 13)

		fx.mockCalendarRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]calendarModel.CalendarDay{specialOffer(date(2025, time.August, 11), 9900)}, nil)

		fx.mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.SeasonalPrice{seasonalRule("high-season", date(2025, time.June, 1), date(2025, time.August, 31), 20000, date(2025, time.January, 1))}, nil)

		quote, err := fx.svc.Quote(ctx, testVillaID, start, end)

		assert.NoError(t, err)
		assert.Equal(t, 3, quote.NightsQty)
		assert.Len(t, quote.Nights, 3)
		assert.Equal(t, int64(20000+9900+20000), quote.Total)
		assert.Equal(t, model.RateSourceOverride, quote.Nights[1].Source)
	})

	t.Run("one unpriced night fails the whole quote", func(t *testing.T) {
		start := date(2025, time.August, 30)
		end := date(2025, time.September, 2)

		fx.mockCalendarRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		// The rule covers August only: September 1st stays unpriced.
		fx.mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.SeasonalPrice{seasonalRule("high-season", date(2025, time.June, 1), date(2025, time.August, 31), 20000, date(2025, time.January, 1))}, nil)

		quote, err := fx.svc.Quote(ctx, testVillaID, start, end)

		assert.ErrorIs(t, err, service.ErrRateUnavailable)
		assert.Zero(t, quote.Total)
		assert.Empty(t, quote.Nights)
	})
}
