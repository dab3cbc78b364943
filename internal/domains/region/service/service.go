package service

import (
	"context"
	"fmt"
	"villadesk/config"
	"villadesk/infras/otel"
	"villadesk/internal/domains/region/model"
	"villadesk/internal/domains/region/model/dto"
	"villadesk/internal/domains/region/repository"
	"villadesk/shared"
	"villadesk/shared/cache"
	"villadesk/shared/constant"
	gDto "villadesk/shared/dto"
	"villadesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRegion    = "region:get"
	cacheGetAllRegion = "region:gets"
	cacheCountRegion  = "region:count"
)

type Region interface {
	Create(ctx context.Context, req dto.CreateRegionRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRegionsResponse, error)
	Get(ctx context.Context, id string) (dto.RegionResponse, error)
	Update(ctx context.Context, req dto.UpdateRegionRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Region
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Region, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Region {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRegionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create region")

		return fmt.Errorf("failed to create region: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRegion)
		shared.InvalidateCaches(c, s.cache, cacheCountRegion)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRegionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRegion, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count regions")

		return res, fmt.Errorf("failed to count regions: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get regions")

		return res, fmt.Errorf("failed to get regions: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save regions to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RegionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRegion, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	region, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get region")

		return res, fmt.Errorf("failed to get region: %w", err)
	}

	if region.ID == constant.Empty {
		return res, failure.NotFound("region not found") // nolint:wrapcheck
	}

	res.FromModel(region)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save region to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRegionRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateRegionRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if region exists")

		return fmt.Errorf("failed to check if region exists: %w", err)
	}

	if !exist {
		return failure.NotFound("region not found") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update region")

		return fmt.Errorf("failed to update region: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRegion, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete region from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRegion)
		shared.InvalidateCaches(c, s.cache, cacheCountRegion)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if region exists")

		return fmt.Errorf("failed to check if region exists: %w", err)
	}

	if !exist {
		return failure.NotFound("region not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete region")

		return fmt.Errorf("failed to delete region: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRegion, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete region from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRegion)
		shared.InvalidateCaches(c, s.cache, cacheCountRegion)
	}()

	return nil
}
