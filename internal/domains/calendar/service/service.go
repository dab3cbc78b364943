package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"villadesk/config"
	"villadesk/infras/otel"
	"villadesk/internal/domains/calendar/model"
	"villadesk/internal/domains/calendar/model/dto"
	"villadesk/internal/domains/calendar/repository"
	villaModel "villadesk/internal/domains/villa/model"
	villaRepo "villadesk/internal/domains/villa/repository"
	"villadesk/shared"
	"villadesk/shared/constant"
	gDto "villadesk/shared/dto"
	"villadesk/shared/failure"
	gModel "villadesk/shared/model"
	"villadesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Calendar is the availability ledger: one row per villa per day, mutated in
// bulk over date ranges. Admin edits use closed intervals; reservation flips
// use the half-open stay range [start, end).
type Calendar interface {
	Range(ctx context.Context, villaID string, from, to time.Time) (dto.GetCalendarResponse, error)
	MarkRange(ctx context.Context, req dto.MarkRangeRequest) error
	Reserve(ctx context.Context, villaID string, start, end time.Time) error
	ReserveTx(ctx context.Context, sqltx *sqlx.Tx, villaID string, start, end time.Time) error
	Release(ctx context.Context, villaID string, start, end time.Time) error
	ReleaseTx(ctx context.Context, sqltx *sqlx.Tx, villaID string, start, end time.Time) error
	ReleaseAllTx(ctx context.Context, sqltx *sqlx.Tx, villaID string) error
	Populate(ctx context.Context, req dto.PopulateRequest) error
}

type serviceImpl struct {
	repo      repository.Calendar
	villaRepo villaRepo.Villa
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Calendar, villaRepo villaRepo.Villa, cfg *config.Config, otel otel.Otel) Calendar {
	return &serviceImpl{
		repo:      repo,
		villaRepo: villaRepo,
		cfg:       cfg,
		otel:      otel,
	}
}

// rangeFilter selects ledger rows for one villa over the closed day interval.
func rangeFilter(villaID string, from, to time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldVillaID,
				Operator: gDto.FilterOperatorEq,
				Value:    villaID,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "day_from",
				Field:    model.FieldDay,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    from,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "day_to",
				Field:    model.FieldDay,
				Operator: gDto.FilterOperatorLessEq,
				Value:    to,
				Table:    model.TableName,
			},
		},
	}
}

func buildRows(villaID string, days []time.Time, status string, price *int64, eventType, note *string, user string) []model.CalendarDay {
	rows := make([]model.CalendarDay, len(days))
	for i, day := range days {
		rows[i] = model.CalendarDay{
			ID:        uuid.NewString(),
			VillaID:   villaID,
			Day:       day,
			Status:    status,
			Price:     price,
			EventType: eventType,
			Note:      note,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return rows
}

func (s *serviceImpl) Range(ctx context.Context, villaID string, from, to time.Time) (res dto.GetCalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Range")
	defer scope.End()
	defer scope.TraceIfError(err)

	if to.Before(from) {
		return res, failure.BadRequestFromString("from must not be after to") // nolint:wrapcheck
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldDay,
		SortDir: gDto.SortDirAsc,
	}

	days, err := s.repo.GetAll(ctx, params, rangeFilter(villaID, from, to))
	if err != nil {
		log.Error().Err(err).Msg("failed to get calendar days")

		return res, fmt.Errorf("failed to get calendar days: %w", err)
	}

	res.FromModels(villaID, from, to, days)

	return res, nil
}

func (s *serviceImpl) MarkRange(ctx context.Context, req dto.MarkRangeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRange")
	defer scope.End()
	defer scope.TraceIfError(err)

	from, to, err := req.Dates()
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if to.Before(from) {
		return failure.BadRequestFromString("from must not be after to") // nolint:wrapcheck
	}

	exist, err := s.villaRepo.Exist(ctx, shared.FilterByID(req.VillaID, villaModel.FieldID, villaModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if villa exists")

		return fmt.Errorf("failed to check if villa exists: %w", err)
	}

	if !exist {
		return failure.BadRequestFromString("villa does not exist") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	// New rows default to AVAILABLE when the request touches only event/price.
	status := req.Status
	if status == "" {
		status = model.StatusAvailable
	}

	rows := buildRows(req.VillaID, model.DaysIn(from, to), status, req.Price, req.EventType, req.Note, user)

	updateColumns := []string{
		model.FieldEventType,
		model.FieldPrice,
		model.FieldNote,
		constant.FieldModifiedAt,
		constant.FieldModifiedBy,
	}

	// An empty status leaves existing row statuses untouched (clearing a
	// special offer must not unblock or free a day).
	if req.Status != "" {
		updateColumns = append([]string{model.FieldStatus}, updateColumns...)
	}

	if err = s.repo.Upsert(ctx, rows, repository.ConflictColumns, updateColumns); err != nil {
		log.Error().Err(err).Msg("failed to mark calendar range")

		return fmt.Errorf("failed to mark calendar range: %w", err)
	}

	return nil
}

func (s *serviceImpl) Reserve(ctx context.Context, villaID string, start, end time.Time) error {
	return s.reserve(ctx, nil, villaID, start, end)
}

func (s *serviceImpl) ReserveTx(ctx context.Context, sqltx *sqlx.Tx, villaID string, start, end time.Time) error {
	return s.reserve(ctx, sqltx, villaID, start, end)
}

// reserve flips every night of [start, end) to RESERVED, creating missing
// rows. Price, event and note on existing rows are preserved.
func (s *serviceImpl) reserve(ctx context.Context, sqltx *sqlx.Tx, villaID string, start, end time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	nights := model.StayNights(start, end)
	if len(nights) == 0 {
		return failure.BadRequestFromString("start must be before end") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	rows := buildRows(villaID, nights, model.StatusReserved, nil, nil, nil, user)

	updateColumns := []string{model.FieldStatus, constant.FieldModifiedAt, constant.FieldModifiedBy}

	if sqltx != nil {
		err = s.repo.UpsertTx(ctx, sqltx, rows, repository.ConflictColumns, updateColumns)
	} else {
		err = s.repo.Upsert(ctx, rows, repository.ConflictColumns, updateColumns)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to reserve calendar range")

		return fmt.Errorf("failed to reserve calendar range: %w", err)
	}

	return nil
}

func (s *serviceImpl) Release(ctx context.Context, villaID string, start, end time.Time) error {
	return s.release(ctx, nil, villaID, start, end)
}

func (s *serviceImpl) ReleaseTx(ctx context.Context, sqltx *sqlx.Tx, villaID string, start, end time.Time) error {
	return s.release(ctx, sqltx, villaID, start, end)
}

// release flips RESERVED nights of [start, end) back to AVAILABLE. Rows that
// are BLOCKED or already AVAILABLE are untouched, so releasing twice (or over
// a free range) is a no-op.
func (s *serviceImpl) release(ctx context.Context, sqltx *sqlx.Tx, villaID string, start, end time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Release")
	defer scope.End()
	defer scope.TraceIfError(err)

	start = model.Truncate(start)
	end = model.Truncate(end)

	if !start.Before(end) {
		return failure.BadRequestFromString("start must be before end") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldVillaID,
				Operator: gDto.FilterOperatorEq,
				Value:    villaID,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "day_from",
				Field:    model.FieldDay,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    start,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "day_to",
				Field:    model.FieldDay,
				Operator: gDto.FilterOperatorLess,
				Value:    end,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "current_status",
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusReserved,
				Table:    model.TableName,
			},
		},
	}

	mod := map[string]any{
		model.FieldStatus:        model.StatusAvailable,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if sqltx != nil {
		err = s.repo.UpdateTx(ctx, sqltx, mod, filter)
	} else {
		err = s.repo.Update(ctx, mod, filter)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to release calendar range")

		return fmt.Errorf("failed to release calendar range: %w", err)
	}

	return nil
}

// ReleaseAllTx flips every RESERVED row of the villa back to AVAILABLE. Used
// by the reconcile routine before re-deriving the ledger from reservations.
func (s *serviceImpl) ReleaseAllTx(ctx context.Context, sqltx *sqlx.Tx, villaID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReleaseAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldVillaID,
				Operator: gDto.FilterOperatorEq,
				Value:    villaID,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "current_status",
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusReserved,
				Table:    model.TableName,
			},
		},
	}

	mod := map[string]any{
		model.FieldStatus:        model.StatusAvailable,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.UpdateTx(ctx, sqltx, mod, filter); err != nil {
		log.Error().Err(err).Msg("failed to release reserved calendar rows")

		return fmt.Errorf("failed to release reserved calendar rows: %w", err)
	}

	return nil
}

func (s *serviceImpl) Populate(ctx context.Context, req dto.PopulateRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Populate")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.villaRepo.Exist(ctx, shared.FilterByID(req.VillaID, villaModel.FieldID, villaModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if villa exists")

		return fmt.Errorf("failed to check if villa exists: %w", err)
	}

	if !exist {
		return failure.BadRequestFromString("villa does not exist") // nolint:wrapcheck
	}

	months := req.Months
	if months == 0 {
		months = s.cfg.Booking.CalendarWindowMonths
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	from := model.Truncate(timezone.Now())
	to := from.AddDate(0, months, -1)
	rows := buildRows(req.VillaID, model.DaysIn(from, to), model.StatusAvailable, nil, nil, nil, user)

	// DO NOTHING on conflict: populating never rewrites existing ledger rows.
	if err = s.repo.Upsert(ctx, rows, repository.ConflictColumns, nil); err != nil {
		log.Error().Err(err).Msg("failed to populate calendar window")

		return fmt.Errorf("failed to populate calendar window: %w", err)
	}

	return nil
}
