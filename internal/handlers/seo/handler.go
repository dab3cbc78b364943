package seo

import (
	"net/http"
	"villadesk/infras/otel"
	"villadesk/internal/domains/seo/model/dto"
	"villadesk/internal/domains/seo/service"
	"villadesk/shared/constant"
	gDto "villadesk/shared/dto"
	"villadesk/shared/validator"
	"villadesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const requestParamPageKey = "page_key"

type Handler struct {
	service service.Seo
	otel    otel.Otel
}

func New(service service.Seo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/seo", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSeo)
		routerGroup.Get("/", handler.GetSeoPages)
		routerGroup.Get("/{page_key}", handler.GetSeoByPageKey)
		routerGroup.Patch("/{page_key}", handler.UpdateSeo)
		routerGroup.Delete("/{page_key}", handler.DeleteSeo)
	})
}

func (handler *Handler) CreateSeo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSeo")
	defer scope.End()

	req := dto.CreateSeoRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create seo metadata")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "SEO metadata created successfully")
}

func (handler *Handler) GetSeoPages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSeoPages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	pages, err := handler.service.GetAll(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get seo metadata")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, pages)
}

func (handler *Handler) GetSeoByPageKey(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSeoByPageKey")
	defer scope.End()

	pageKey := chi.URLParam(r, requestParamPageKey)

	seo, err := handler.service.GetByPageKey(ctx, pageKey)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get seo metadata by page key")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, seo)
}

func (handler *Handler) UpdateSeo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSeo")
	defer scope.End()

	pageKey := chi.URLParam(r, requestParamPageKey)

	req := dto.UpdateSeoRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, pageKey); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update seo metadata")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "SEO metadata updated successfully")
}

func (handler *Handler) DeleteSeo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSeo")
	defer scope.End()

	pageKey := chi.URLParam(r, requestParamPageKey)

	if err := handler.service.Delete(ctx, pageKey); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete seo metadata")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "SEO metadata deleted successfully")
}
