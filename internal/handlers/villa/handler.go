package villa

import (
	"net/http"
	"villadesk/infras/otel"
	"villadesk/internal/domains/villa/model"
	"villadesk/internal/domains/villa/model/dto"
	"villadesk/internal/domains/villa/service"
	"villadesk/shared"
	"villadesk/shared/constant"
	gDto "villadesk/shared/dto"
	"villadesk/shared/validator"
	"villadesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Villa
	otel    otel.Otel
}

func New(service service.Villa, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/villas", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateVilla)
		routerGroup.Get("/", handler.GetVillas)
		routerGroup.Get("/{id}", handler.GetVillaByID)
		routerGroup.Patch("/{id}", handler.UpdateVilla)
		routerGroup.Delete("/{id}", handler.DeleteVilla)
	})
}

// CreateVilla handles the creation of a new villa.
// @Summary Create a new villa
// @Description Create a new villa with the provided details.
// @Tags Villa
// @Accept json
// @Produce json
// @Param request body dto.CreateVillaRequest true "Create Villa Request"
// @Success 201 {object} response.Message "Villa created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/villas [post]
// @Security BearerAuth
func (handler *Handler) CreateVilla(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVilla")
	defer scope.End()

	req := dto.CreateVillaRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create villa")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Villa created successfully")
}

// GetVillas retrieves all villas based on query parameters.
// @Summary Get all villas
// @Description Retrieve all villas with optional filtering and pagination.
// @Tags Villa
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param region_id query string false "Filter by region ID"
// @Param active query bool false "Filter by active flag"
// @Param name query string false "Search by name"
// @Success 200 {object} response.Data[dto.GetVillasResponse] "List of villas"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/villas [get]
func (handler *Handler) GetVillas(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVillas")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	regionID := r.URL.Query().Get(model.FieldRegionID)
	active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive))
	name := r.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if regionID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRegionID,
			Operator: gDto.FilterOperatorEq,
			Value:    regionID,
			Table:    model.TableName,
		})
	}

	if active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	villas, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get villas")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, villas)
}

// GetVillaByID retrieves a villa by its ID.
// @Summary Get a villa by ID
// @Description Retrieve a villa by its unique identifier.
// @Tags Villa
// @Accept json
// @Produce json
// @Param id path string true "Villa ID"
// @Success 200 {object} response.Data[dto.VillaResponse] "Villa details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/villas/{id} [get]
func (handler *Handler) GetVillaByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVillaByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	villa, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get villa by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, villa)
}

// UpdateVilla updates an existing villa by its ID.
// @Summary Update a villa by ID
// @Description Update the details of an existing villa.
// @Tags Villa
// @Accept json
// @Produce json
// @Param id path string true "Villa ID"
// @Param request body dto.UpdateVillaRequest true "Update Villa Request"
// @Success 200 {object} response.Message "Villa updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/villas/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateVilla(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateVilla")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateVillaRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update villa")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Villa updated successfully")
}

// DeleteVilla deletes a villa by its ID.
// @Summary Delete a villa by ID
// @Description Delete a villa using its unique identifier.
// @Tags Villa
// @Accept json
// @Produce json
// @Param id path string true "Villa ID"
// @Success 200 {object} response.Message "Villa deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/villas/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteVilla(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteVilla")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete villa")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Villa deleted successfully")
}
