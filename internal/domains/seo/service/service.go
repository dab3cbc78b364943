package service

import (
	"context"
	"fmt"
	"villadesk/config"
	"villadesk/infras/otel"
	"villadesk/internal/domains/seo/model"
	"villadesk/internal/domains/seo/model/dto"
	"villadesk/internal/domains/seo/repository"
	"villadesk/shared"
	"villadesk/shared/cache"
	"villadesk/shared/constant"
	gDto "villadesk/shared/dto"
	"villadesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetSeo    = "seo:get"
	cacheGetAllSeo = "seo:gets"
)

// Seo manages per-page SEO metadata keyed by page key.
type Seo interface {
	Create(ctx context.Context, req dto.CreateSeoRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSeoResponse, error)
	GetByPageKey(ctx context.Context, pageKey string) (dto.SeoResponse, error)
	Update(ctx context.Context, req dto.UpdateSeoRequest, pageKey string) error
	Delete(ctx context.Context, pageKey string) error
}

type serviceImpl struct {
	repo  repository.Seo
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Seo, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Seo {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func filterByPageKey(pageKey string) gDto.FilterGroup {
	return shared.FilterByID(pageKey, model.FieldPageKey, model.TableName)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSeoRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create seo metadata")

		return fmt.Errorf("failed to create seo metadata: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllSeo)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSeoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSeo, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count seo metadata")

		return res, fmt.Errorf("failed to count seo metadata: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get seo metadata")

		return res, fmt.Errorf("failed to get seo metadata: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save seo metadata to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByPageKey(ctx context.Context, pageKey string) (res dto.SeoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByPageKey")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSeo, pageKey)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	seo, err := s.repo.Get(ctx, filterByPageKey(pageKey))
	if err != nil {
		log.Error().Err(err).Msg("failed to get seo metadata")

		return res, fmt.Errorf("failed to get seo metadata: %w", err)
	}

	if seo.ID == constant.Empty {
		return res, failure.NotFound("seo metadata not found") // nolint:wrapcheck
	}

	res.FromModel(seo)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save seo metadata to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSeoRequest, pageKey string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateSeoRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := filterByPageKey(pageKey)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if seo metadata exists")

		return fmt.Errorf("failed to check if seo metadata exists: %w", err)
	}

	if !exist {
		return failure.NotFound("seo metadata not found") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update seo metadata")

		return fmt.Errorf("failed to update seo metadata: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSeo, pageKey)); err != nil {
			log.Error().Err(err).Msg("failed to delete seo metadata from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSeo)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, pageKey string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, filterByPageKey(pageKey))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if seo metadata exists")

		return fmt.Errorf("failed to check if seo metadata exists: %w", err)
	}

	if !exist {
		return failure.NotFound("seo metadata not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filterByPageKey(pageKey)); err != nil {
		log.Error().Err(err).Msg("failed to delete seo metadata")

		return fmt.Errorf("failed to delete seo metadata: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSeo, pageKey)); err != nil {
			log.Error().Err(err).Msg("failed to delete seo metadata from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSeo)
	}()

	return nil
}
