package calendar

import (
	"net/http"
	"time"
	"villadesk/infras/otel"
	"villadesk/internal/domains/calendar/model/dto"
	"villadesk/internal/domains/calendar/service"
	"villadesk/shared/constant"
	"villadesk/shared/failure"
	"villadesk/shared/validator"
	"villadesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Calendar
	otel    otel.Otel
}

func New(service service.Calendar, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/calendar", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCalendar)
		routerGroup.Post("/mark", handler.MarkRange)
		routerGroup.Post("/populate", handler.Populate)
	})
}

// GetCalendar returns the ledger rows for a villa over a closed date interval.
// @Summary Get calendar range
// @Description Retrieve availability ledger rows for a villa between two dates (inclusive).
// @Tags Calendar
// @Accept json
// @Produce json
// @Param villa_id query string true "Villa ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetCalendarResponse] "Calendar days"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar [get]
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
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

	calendar, err := handler.service.Range(ctx, villaID, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get calendar range")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, calendar)
}

// MarkRange bulk-edits a closed date interval of the ledger.
// @Summary Mark a calendar range
// @Description Set status, special offer price, event type or note over a date range. Missing days are created.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param request body dto.MarkRangeRequest true "Mark Range Request"
// @Success 200 {object} response.Message "Calendar range marked successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar/mark [post]
// @Security BearerAuth
func (handler *Handler) MarkRange(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkRange")
	defer scope.End()

	req := dto.MarkRangeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.MarkRange(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark calendar range")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Calendar range marked successfully")
}

// Populate ensures AVAILABLE ledger rows exist for the villa's rolling window.
// @Summary Populate the calendar window
// @Description Create AVAILABLE rows for the next N months without touching existing rows.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param request body dto.PopulateRequest true "Populate Request"
// @Success 200 {object} response.Message "Calendar window populated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar/populate [post]
// @Security BearerAuth
func (handler *Handler) Populate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Populate")
	defer scope.End()

	req := dto.PopulateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Populate(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to populate calendar window")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Calendar window populated successfully")
}
