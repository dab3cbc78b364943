package pricing

import (
	"net/http"
	"time"
	"villadesk/infras/otel"
	"villadesk/internal/domains/pricing/model"
	"villadesk/internal/domains/pricing/model/dto"
	"villadesk/internal/domains/pricing/service"
	"villadesk/shared"
	"villadesk/shared/constant"
	gDto "villadesk/shared/dto"
	"villadesk/shared/failure"
	"villadesk/shared/validator"
	"villadesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	requestParamDate = "date"
)

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/seasonal-prices", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSeasonalPrice)
		routerGroup.Get("/", handler.GetSeasonalPrices)
		routerGroup.Get("/{id}", handler.GetSeasonalPriceByID)
		routerGroup.Patch("/{id}", handler.UpdateSeasonalPrice)
		routerGroup.Delete("/{id}", handler.DeleteSeasonalPrice)
	})

	router.Route("/rates", func(routerGroup chi.Router) {
		routerGroup.Get("/resolve", handler.ResolveRate)
		routerGroup.Get("/quote", handler.QuoteStay)
	})
}

// CreateSeasonalPrice handles the creation of a new seasonal price rule.
// @Summary Create a seasonal price
// @Description Create a seasonal pricing rule for a villa. Duplicate (villa, start, end) ranges are rejected.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.CreateSeasonalPriceRequest true "Create Seasonal Price Request"
// @Success 201 {object} response.Message "Seasonal price created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/seasonal-prices [post]
// @Security BearerAuth
func (handler *Handler) CreateSeasonalPrice(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSeasonalPrice")
	defer scope.End()

	req := dto.CreateSeasonalPriceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create seasonal price")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Seasonal price created successfully")
}

func (handler *Handler) GetSeasonalPrices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSeasonalPrices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	villaID := r.URL.Query().Get(model.FieldVillaID)
	active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive))

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if villaID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldVillaID,
			Operator: gDto.FilterOperatorEq,
			Value:    villaID,
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

	seasonalPrices, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get seasonal prices")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, seasonalPrices)
}

func (handler *Handler) GetSeasonalPriceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSeasonalPriceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	seasonalPrice, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get seasonal price by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, seasonalPrice)
}

func (handler *Handler) UpdateSeasonalPrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSeasonalPrice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateSeasonalPriceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update seasonal price")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Seasonal price updated successfully")
}

func (handler *Handler) DeleteSeasonalPrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSeasonalPrice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete seasonal price")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Seasonal price deleted successfully")
}

// ResolveRate resolves the nightly rate for a villa on a single date.
// @Summary Resolve a nightly rate
// @Description Resolve the effective nightly price for a villa on a date: special-offer override first, then the best matching active seasonal rule.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param villa_id query string true "Villa ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.RateResponse] "Resolved rate"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error "No rate available"
// @Failure 500 {object} response.Error
// @Router /v1/rates/resolve [get]
func (handler *Handler) ResolveRate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResolveRate")
	defer scope.End()

	villaID := r.URL.Query().Get(constant.RequestParamVillaID)
	dateParam := r.URL.Query().Get(requestParamDate)

	if villaID == "" || dateParam == "" {
		err := failure.BadRequestFromString("villa_id and date are required")
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	date, err := time.Parse(constant.DateOnlyFormat, dateParam)
	if err != nil {
		err = failure.BadRequestFromString("date must be a calendar date in YYYY-MM-DD form")
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	rate, err := handler.service.Resolve(ctx, villaID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve rate")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rate)
}

// QuoteStay prices a stay over the half-open range [from, to).
// @Summary Quote a stay
// @Description Per-night price breakdown and total for a stay. The checkout day is not charged. Fails if any night has no rate.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param villa_id query string true "Villa ID"
// @Param from query string true "Check-in date (YYYY-MM-DD)"
// @Param to query string true "Checkout date (YYYY-MM-DD, exclusive)"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Stay quote"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error "No rate available"
// @Failure 500 {object} response.Error
// @Router /v1/rates/quote [get]
func (handler *Handler) QuoteStay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".QuoteStay")
	defer scope.End()

	villaID := r.URL.Query().Get(constant.RequestParamVillaID)
	fromParam := r.URL.Query().Get(constant.RequestParamFrom)
	toParam := r.URL.Query().Get(constant.RequestParamTo)

	if villaID == "" || fromParam == "" || toParam == "" {
		err := failure.BadRequestFromString("villa_id, from and to are required")
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	from, err := time.Parse(constant.DateOnlyFormat, fromParam)
	if err != nil {
		err = failure.BadRequestFromString("from must be a calendar date in YYYY-MM-DD form")
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	to, err := time.Parse(constant.DateOnlyFormat, toParam)
	if err != nil {
		err = failure.BadRequestFromString("to must be a calendar date in YYYY-MM-DD form")
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	quote, err := handler.service.Quote(ctx, villaID, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote stay")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, quote)
}
