package region

import (
	"net/http"
	"villadesk/infras/otel"
	"villadesk/internal/domains/region/model"
	"villadesk/internal/domains/region/model/dto"
	"villadesk/internal/domains/region/service"
	"villadesk/shared/constant"
	gDto "villadesk/shared/dto"
	"villadesk/shared/validator"
	"villadesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Region
	otel    otel.Otel
}

func New(service service.Region, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/regions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRegion)
		routerGroup.Get("/", handler.GetRegions)
		routerGroup.Get("/{id}", handler.GetRegionByID)
		routerGroup.Patch("/{id}", handler.UpdateRegion)
		routerGroup.Delete("/{id}", handler.DeleteRegion)
	})
}

func (handler *Handler) CreateRegion(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRegion")
	defer scope.End()

	req := dto.CreateRegionRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create region")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Region created successfully")
}

func (handler *Handler) GetRegions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRegions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	regions, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get regions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, regions)
}

func (handler *Handler) GetRegionByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRegionByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	region, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get region by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, region)
}

func (handler *Handler) UpdateRegion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRegion")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRegionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update region")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Region updated successfully")
}

func (handler *Handler) DeleteRegion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRegion")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete region")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Region deleted successfully")
}
