package tag

import (
	"net/http"
	"villadesk/infras/otel"
	"villadesk/internal/domains/tag/model"
	"villadesk/internal/domains/tag/model/dto"
	"villadesk/internal/domains/tag/service"
	"villadesk/shared/constant"
	gDto "villadesk/shared/dto"
	"villadesk/shared/validator"
	"villadesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Tag
	otel    otel.Otel
}

func New(service service.Tag, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tags", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTag)
		routerGroup.Get("/", handler.GetTags)
		routerGroup.Get("/{id}", handler.GetTagByID)
		routerGroup.Patch("/{id}", handler.UpdateTag)
		routerGroup.Delete("/{id}", handler.DeleteTag)
	})
}

func (handler *Handler) CreateTag(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTag")
	defer scope.End()

	req := dto.CreateTagRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create tag")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Tag created successfully")
}

func (handler *Handler) GetTags(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTags")
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

	tags, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tags")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, tags)
}

func (handler *Handler) GetTagByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTagByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	tag, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tag by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, tag)
}

func (handler *Handler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTag")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTagRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update tag")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Tag updated successfully")
}

func (handler *Handler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTag")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete tag")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Tag deleted successfully")
}
