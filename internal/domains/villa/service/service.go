package service

import (
	"context"
	"fmt"
	"villadesk/config"
	"villadesk/infras/otel"
	regionModel "villadesk/internal/domains/region/model"
	regionRepo "villadesk/internal/domains/region/repository"
	"villadesk/internal/domains/villa/model"
	"villadesk/internal/domains/villa/model/dto"
	"villadesk/internal/domains/villa/repository"
	"villadesk/shared"
	"villadesk/shared/cache"
	"villadesk/shared/constant"
	gDto "villadesk/shared/dto"
	"villadesk/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetVilla    = "villa:get"
	cacheGetAllVilla = "villa:gets"
	cacheCountVilla  = "villa:count"
)

type Villa interface {
	Create(ctx context.Context, req dto.CreateVillaRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetVillasResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.VillaResponse, error)
	Update(ctx context.Context, req dto.UpdateVillaRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo       repository.Villa
	regionRepo regionRepo.Region
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(repo repository.Villa, regionRepo regionRepo.Region, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Villa {
	return &serviceImpl{
		repo:       repo,
		regionRepo: regionRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVillaRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	regionExists, err := s.regionRepo.Exist(ctx, shared.FilterByID(req.RegionID, regionModel.FieldID, regionModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if region exists")

		return fmt.Errorf("failed to check if region exists: %w", err)
	}

	if !regionExists {
		return failure.BadRequestFromString("region does not exist") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create villa")

		return fmt.Errorf("failed to create villa: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllVilla)
		shared.InvalidateCaches(c, s.cache, cacheCountVilla)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetVillasResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllVilla, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for villas")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count villas")

		return res, fmt.Errorf("failed to count villas: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get villas")

		return res, fmt.Errorf("failed to get villas: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save villas to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountVilla, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count villas")

		return res, fmt.Errorf("failed to count villas: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save villa count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.VillaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetVilla, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for villa")

		return res, nil
	}

	villa, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get villa")

		return res, fmt.Errorf("failed to get villa: %w", err)
	}

	if villa.ID == constant.Empty {
		return res, failure.NotFound("villa not found") // nolint:wrapcheck
	}

	res.FromModel(villa)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save villa to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateVillaRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if villa exists")

		return fmt.Errorf("failed to check if villa exists: %w", err)
	}

	if !exist {
		return failure.NotFound("villa not found") // nolint:wrapcheck
	}

	if req.RegionID != "" {
		regionExists, err := s.regionRepo.Exist(ctx, shared.FilterByID(req.RegionID, regionModel.FieldID, regionModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if region exists")

			return fmt.Errorf("failed to check if region exists: %w", err)
		}

		if !regionExists {
			return failure.BadRequestFromString("region does not exist") // nolint:wrapcheck
		}
	}

	updatedFields := shared.TransformFields(req, user)
	if req.Tags != nil {
		updatedFields[model.FieldTags] = pq.StringArray(req.Tags)
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update villa")

		return fmt.Errorf("failed to update villa: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetVilla, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete villa from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllVilla)
		shared.InvalidateCaches(c, s.cache, cacheCountVilla)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if villa exists")

		return fmt.Errorf("failed to check if villa exists: %w", err)
	}

	if !exist {
		return failure.NotFound("villa not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete villa")

		return fmt.Errorf("failed to delete villa: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetVilla, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete villa from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllVilla)
		shared.InvalidateCaches(c, s.cache, cacheCountVilla)
	}()

	return nil
}
