package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"villadesk/config"
	"villadesk/infras/otel"
	calendarModel "villadesk/internal/domains/calendar/model"
	calendarRepo "villadesk/internal/domains/calendar/repository"
	"villadesk/internal/domains/pricing/model"
	"villadesk/internal/domains/pricing/model/dto"
	"villadesk/internal/domains/pricing/repository"
	villaModel "villadesk/internal/domains/villa/model"
	villaRepo "villadesk/internal/domains/villa/repository"
	"villadesk/shared"
	"villadesk/shared/cache"
	"villadesk/shared/constant"
	gDto "villadesk/shared/dto"
	"villadesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetSeasonalPrice    = "pricing:get"
	cacheGetAllSeasonalPrice = "pricing:gets"
)

// ErrRateUnavailable is the resolver's "cannot quote" result: no override and
// no active seasonal rule covers the requested night. It is never reported as
// a zero price.
var ErrRateUnavailable = failure.Unprocessable("no nightly rate available for the requested dates")

// Pricing manages seasonal price rules and resolves nightly rates. Resolution
// priority is strict: a SPECIAL_OFFER calendar override wins over any seasonal
// rule; overlapping rules tie-break on narrowest range, then newest.
type Pricing interface {
	Create(ctx context.Context, req dto.CreateSeasonalPriceRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSeasonalPricesResponse, error)
	Get(ctx context.Context, id string) (dto.SeasonalPriceResponse, error)
	Update(ctx context.Context, req dto.UpdateSeasonalPriceRequest, id string) error
	Delete(ctx context.Context, id string) error
	Resolve(ctx context.Context, villaID string, date time.Time) (dto.RateResponse, error)
	Quote(ctx context.Context, villaID string, start, end time.Time) (dto.QuoteResponse, error)
}

type serviceImpl struct {
	repo         repository.Pricing
	calendarRepo calendarRepo.Calendar
	villaRepo    villaRepo.Villa
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Pricing, calendarRepo calendarRepo.Calendar, villaRepo villaRepo.Villa, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Pricing {
	return &serviceImpl{
		repo:         repo,
		calendarRepo: calendarRepo,
		villaRepo:    villaRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSeasonalPriceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	seasonalPrice, err := req.ToModel(user)
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if seasonalPrice.EndDate.Before(seasonalPrice.StartDate) {
		return failure.BadRequestFromString("start_date must not be after end_date") // nolint:wrapcheck
	}

	villaExists, err := s.villaRepo.Exist(ctx, shared.FilterByID(req.VillaID, villaModel.FieldID, villaModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if villa exists")

		return fmt.Errorf("failed to check if villa exists: %w", err)
	}

	if !villaExists {
		return failure.BadRequestFromString("villa does not exist") // nolint:wrapcheck
	}

	duplicate, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldVillaID,
				Operator: gDto.FilterOperatorEq,
				Value:    seasonalPrice.VillaID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStartDate,
				Operator: gDto.FilterOperatorEq,
				Value:    seasonalPrice.StartDate,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldEndDate,
				Operator: gDto.FilterOperatorEq,
				Value:    seasonalPrice.EndDate,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check for duplicate season date range")

		return fmt.Errorf("failed to check for duplicate season date range: %w", err)
	}

	if duplicate {
		return failure.Conflict("a seasonal price with this date range already exists") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, seasonalPrice); err != nil {
		log.Error().Err(err).Msg("failed to create seasonal price")

		return fmt.Errorf("failed to create seasonal price: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllSeasonalPrice)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSeasonalPricesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSeasonalPrice, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count seasonal prices")

		return res, fmt.Errorf("failed to count seasonal prices: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get seasonal prices")

		return res, fmt.Errorf("failed to get seasonal prices: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save seasonal prices to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SeasonalPriceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSeasonalPrice, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	seasonalPrice, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get seasonal price")

		return res, fmt.Errorf("failed to get seasonal price: %w", err)
	}

	if seasonalPrice.ID == constant.Empty {
		return res, failure.NotFound("seasonal price not found") // nolint:wrapcheck
	}

	res.FromModel(seasonalPrice)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save seasonal price to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSeasonalPriceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateSeasonalPriceRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if seasonal price exists")

		return fmt.Errorf("failed to check if seasonal price exists: %w", err)
	}

	if !exist {
		return failure.NotFound("seasonal price not found") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update seasonal price")

		return fmt.Errorf("failed to update seasonal price: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSeasonalPrice, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete seasonal price from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSeasonalPrice)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if seasonal price exists")

		return fmt.Errorf("failed to check if seasonal price exists: %w", err)
	}

	if !exist {
		return failure.NotFound("seasonal price not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete seasonal price")

		return fmt.Errorf("failed to delete seasonal price: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSeasonalPrice, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete seasonal price from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSeasonalPrice)
	}()

	return nil
}

func (s *serviceImpl) Resolve(ctx context.Context, villaID string, date time.Time) (res dto.RateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer scope.TraceIfError(err)

	date = calendarModel.Truncate(date)

	overrides, err := s.fetchOverrides(ctx, villaID, date, date.AddDate(0, 0, 1))
	if err != nil {
		return res, err
	}

	rules, err := s.fetchCandidateRules(ctx, villaID, date, date)
	if err != nil {
		return res, err
	}

	price, source, seasonName, ok := resolveNight(date, overrides, rules)
	if !ok {
		return res, ErrRateUnavailable // nolint:wrapcheck
	}

	return dto.RateResponse{
		VillaID:    villaID,
		Date:       date.Format(constant.DateOnlyFormat),
		Price:      price,
		Source:     source,
		SeasonName: seasonName,
	}, nil
}

// Quote prices every night of the half-open stay range [start, end). It fails
// with ErrRateUnavailable if any night is unpriced; there are no partial sums.
func (s *serviceImpl) Quote(ctx context.Context, villaID string, start, end time.Time) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	nights := calendarModel.StayNights(start, end)
	if len(nights) == 0 {
		return res, failure.BadRequestFromString("start must be before end") // nolint:wrapcheck
	}

	overrides, err := s.fetchOverrides(ctx, villaID, nights[0], calendarModel.Truncate(end))
	if err != nil {
		return res, err
	}

	rules, err := s.fetchCandidateRules(ctx, villaID, nights[0], nights[len(nights)-1])
	if err != nil {
		return res, err
	}

	res = dto.QuoteResponse{
		VillaID:   villaID,
		StartDate: nights[0].Format(constant.DateOnlyFormat),
		EndDate:   calendarModel.Truncate(end).Format(constant.DateOnlyFormat),
		Nights:    make([]dto.NightRate, 0, len(nights)),
		NightsQty: len(nights),
	}

	for _, night := range nights {
		price, source, _, ok := resolveNight(night, overrides, rules)
		if !ok {
			return dto.QuoteResponse{}, ErrRateUnavailable // nolint:wrapcheck
		}

		res.Nights = append(res.Nights, dto.NightRate{
			Date:   night.Format(constant.DateOnlyFormat),
			Price:  price,
			Source: source,
		})
		res.Total += price
	}

	return res, nil
}

// resolveNight applies the resolution priority for a single night.
func resolveNight(night time.Time, overrides map[string]calendarModel.CalendarDay, rules []model.SeasonalPrice) (price int64, source, seasonName string, ok bool) {
	key := night.Format(constant.DateOnlyFormat)

	if day, found := overrides[key]; found {
		if day.EventType != nil && *day.EventType == calendarModel.EventSpecialOffer && day.Price != nil {
			return *day.Price, model.RateSourceOverride, "", true
		}
	}

	rule, found := model.BestRule(night, rules)
	if !found {
		return 0, "", "", false
	}

	return rule.NightlyPrice, model.RateSourceSeasonal, rule.Name, true
}

// fetchOverrides loads calendar rows for [from, to) keyed by day.
func (s *serviceImpl) fetchOverrides(ctx context.Context, villaID string, from, to time.Time) (map[string]calendarModel.CalendarDay, error) {
	days, err := s.calendarRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    calendarModel.FieldVillaID,
				Operator: gDto.FilterOperatorEq,
				Value:    villaID,
				Table:    calendarModel.TableName,
			},
			gDto.Filter{
				ArgName:  "day_from",
				Field:    calendarModel.FieldDay,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    from,
				Table:    calendarModel.TableName,
			},
			gDto.Filter{
				ArgName:  "day_to",
				Field:    calendarModel.FieldDay,
				Operator: gDto.FilterOperatorLess,
				Value:    to,
				Table:    calendarModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get calendar overrides")

		return nil, fmt.Errorf("failed to get calendar overrides: %w", err)
	}

	overrides := make(map[string]calendarModel.CalendarDay, len(days))
	for _, day := range days {
		overrides[day.Day.Format(constant.DateOnlyFormat)] = day
	}

	return overrides, nil
}

// fetchCandidateRules loads active rules touching the closed interval
// [firstNight, lastNight].
func (s *serviceImpl) fetchCandidateRules(ctx context.Context, villaID string, firstNight, lastNight time.Time) ([]model.SeasonalPrice, error) {
	rules, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldVillaID,
				Operator: gDto.FilterOperatorEq,
				Value:    villaID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStartDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    lastNight,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldEndDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    firstNight,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get seasonal price rules")

		return nil, fmt.Errorf("failed to get seasonal price rules: %w", err)
	}

	return rules, nil
}
