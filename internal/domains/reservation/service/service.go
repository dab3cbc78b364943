package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"villadesk/config"
	"villadesk/infras/kafka"
	"villadesk/infras/otel"
	"villadesk/infras/postgres"
	calendarService "villadesk/internal/domains/calendar/service"
	pricingService "villadesk/internal/domains/pricing/service"
	"villadesk/internal/domains/reservation/model"
	"villadesk/internal/domains/reservation/model/dto"
	"villadesk/internal/domains/reservation/repository"
	villaModel "villadesk/internal/domains/villa/model"
	villaRepo "villadesk/internal/domains/villa/repository"
	"villadesk/shared"
	"villadesk/shared/cache"
	"villadesk/shared/constant"
	gDto "villadesk/shared/dto"
	"villadesk/shared/failure"
	"villadesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"

	villaLockPrefix = "villa"
)

// Reservation coordinates the booking lifecycle. Every state change that
// affects occupancy runs the reservation write and the calendar flip in a
// single database transaction, guarded by a per-villa lock so two concurrent
// bookings cannot both pass the conflict check.
type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateReservationStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
	CheckConflict(ctx context.Context, req dto.CheckConflictRequest) (dto.ConflictResponse, error)
	Reconcile(ctx context.Context, villaID string) (dto.ReconcileResponse, error)
}

type serviceImpl struct {
	repo      repository.Reservation
	villaRepo villaRepo.Villa
	calendar  calendarService.Calendar
	pricing   pricingService.Pricing
	db        *postgres.Connection
	locker    cache.Locker
	producer  kafka.Client
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Reservation,
	villaRepo villaRepo.Villa,
	calendar calendarService.Calendar,
	pricing pricingService.Pricing,
	db *postgres.Connection,
	locker cache.Locker,
	producer kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:      repo,
		villaRepo: villaRepo,
		calendar:  calendar,
		pricing:   pricing,
		db:        db,
		locker:    locker,
		producer:  producer,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := req.Dates()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !start.Before(end) {
		return res, failure.BadRequestFromString("start_date must be before end_date") // nolint:wrapcheck
	}

	villa, err := s.villaRepo.Get(ctx, shared.FilterByID(req.VillaID, villaModel.FieldID, villaModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get villa")

		return res, fmt.Errorf("failed to get villa: %w", err)
	}

	if villa.ID == constant.Empty {
		return res, failure.BadRequestFromString("villa does not exist") // nolint:wrapcheck
	}

	if req.GuestCount > villa.MaxGuests {
		return res, failure.BadRequestFromString(fmt.Sprintf("guest count exceeds the villa capacity of %d", villa.MaxGuests)) // nolint:wrapcheck
	}

	nights := int(end.Sub(start).Hours() / 24)
	if nights < villa.MinimumStay {
		return res, failure.BadRequestFromString(fmt.Sprintf("stay is shorter than the minimum of %d nights", villa.MinimumStay)) // nolint:wrapcheck
	}

	duplicate, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingRef,
				Operator: gDto.FilterOperatorEq,
				Value:    req.BookingRef,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check for duplicate booking ref")

		return res, fmt.Errorf("failed to check for duplicate booking ref: %w", err)
	}

	if duplicate {
		return res, failure.Conflict("a reservation with this booking ref already exists") // nolint:wrapcheck
	}

	// The lock closes the window between the conflict check and the insert.
	release, err := s.locker.Acquire(ctx, shared.BuildCacheKey(villaLockPrefix, req.VillaID), s.villaLockTTL())
	if err != nil {
		return res, err
	}
	defer release()

	conflicting, err := s.overlapping(ctx, req.VillaID, start, end, constant.Empty)
	if err != nil {
		return res, err
	}

	if len(conflicting) > 0 {
		return res, failure.Conflict("the villa is already booked for the requested dates") // nolint:wrapcheck
	}

	total, err := s.resolveTotal(ctx, req, start, end)
	if err != nil {
		return res, err
	}

	if req.PaymentType == model.PaymentTypeSplit && req.AdvanceAmount > total {
		return res, failure.BadRequestFromString("advance_amount must not exceed the total amount") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	reservation := req.ToModel(start, end, total, user)

	sqltx, err := s.db.Write.Beginx()
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return res, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := sqltx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.repo.InsertTx(ctx, sqltx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	if err = s.calendar.ReserveTx(ctx, sqltx, reservation.VillaID, start, end); err != nil {
		return res, err
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return res, fmt.Errorf("failed to commit transaction: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, model.EventReservationCreated, reservation)
		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
	}()

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateReservationRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	reservation, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if reservation.Status == model.StatusCancelled {
		return failure.Unprocessable("a cancelled reservation cannot be modified") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	updatedFields := shared.TransformFields(req, user)

	// The advance is capped by the total; the remaining balance tracks it.
	if req.AdvanceAmount != nil {
		if *req.AdvanceAmount > reservation.TotalAmount {
			return failure.BadRequestFromString("advance_amount must not exceed the total amount") // nolint:wrapcheck
		}

		updatedFields[model.FieldRemainingAmount] = reservation.TotalAmount - *req.AdvanceAmount
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateReservationStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if reservation.Status == model.StatusCancelled {
		return failure.Unprocessable("a cancelled reservation cannot be modified") // nolint:wrapcheck
	}

	if reservation.Status == req.Status {
		return nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if req.Status != model.StatusCancelled {
		if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to update reservation status")

			return fmt.Errorf("failed to update reservation status: %w", err)
		}

		s.invalidate(ctx, id)

		return nil
	}

	// Cancellation frees the villa: the status change and the calendar release
	// land in the same transaction.
	updatedFields[model.FieldCancellationReason] = req.CancellationReason
	updatedFields[model.FieldCancelledAt] = timezone.Now()

	sqltx, err := s.db.Write.Beginx()
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := sqltx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.repo.UpdateTx(ctx, sqltx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel reservation")

		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	if err = s.calendar.ReleaseTx(ctx, sqltx, reservation.VillaID, reservation.StartDate, reservation.EndDate); err != nil {
		return err
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	reservation.Status = model.StatusCancelled

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, model.EventReservationCancelled, reservation)
	}()

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	sqltx, err := s.db.Write.Beginx()
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := sqltx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.repo.DeleteTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	// A cancelled reservation already released its nights.
	if reservation.Status != model.StatusCancelled {
		if err = s.calendar.ReleaseTx(ctx, sqltx, reservation.VillaID, reservation.StartDate, reservation.EndDate); err != nil {
			return err
		}
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) CheckConflict(ctx context.Context, req dto.CheckConflictRequest) (res dto.ConflictResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckConflict")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := req.Dates()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !start.Before(end) {
		return res, failure.BadRequestFromString("start_date must be before end_date") // nolint:wrapcheck
	}

	conflicting, err := s.overlapping(ctx, req.VillaID, start, end, req.ExcludeID)
	if err != nil {
		return res, err
	}

	res.Conflict = len(conflicting) > 0
	for _, reservation := range conflicting {
		res.Reservations = append(res.Reservations, reservation.ID)
	}

	return res, nil
}

// Reconcile rebuilds the villa's calendar occupancy from its reservations:
// every RESERVED night is freed, then re-marked from the non-cancelled
// reservations, all in one transaction. Use it when the ledger has drifted.
func (s *serviceImpl) Reconcile(ctx context.Context, villaID string) (res dto.ReconcileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reconcile")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.villaRepo.Exist(ctx, shared.FilterByID(villaID, villaModel.FieldID, villaModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if villa exists")

		return res, fmt.Errorf("failed to check if villa exists: %w", err)
	}

	if !exist {
		return res, failure.BadRequestFromString("villa does not exist") // nolint:wrapcheck
	}

	release, err := s.locker.Acquire(ctx, shared.BuildCacheKey(villaLockPrefix, villaID), s.villaLockTTL())
	if err != nil {
		return res, err
	}
	defer release()

	reservations, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldVillaID,
				Operator: gDto.FilterOperatorEq,
				Value:    villaID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    model.StatusCancelled,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	sqltx, err := s.db.Write.Beginx()
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return res, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := sqltx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.calendar.ReleaseAllTx(ctx, sqltx, villaID); err != nil {
		return res, err
	}

	nightsMarked := 0

	for _, reservation := range reservations {
		if err = s.calendar.ReserveTx(ctx, sqltx, villaID, reservation.StartDate, reservation.EndDate); err != nil {
			return res, err
		}

		nightsMarked += reservation.Nights()
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return res, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return dto.ReconcileResponse{
		VillaID:      villaID,
		Reservations: len(reservations),
		NightsMarked: nightsMarked,
	}, nil
}

// overlapping returns non-cancelled reservations whose stay intersects the
// half-open range [start, end). The interval test runs in memory so its
// semantics stay next to model.Overlaps.
func (s *serviceImpl) overlapping(ctx context.Context, villaID string, start, end time.Time, excludeID string) ([]model.Reservation, error) {
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
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    model.StatusCancelled,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "stay_end",
				Field:    model.FieldStartDate,
				Operator: gDto.FilterOperatorLess,
				Value:    end,
				Table:    model.TableName,
			},
		},
	}

	candidates, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get overlapping reservations")

		return nil, fmt.Errorf("failed to get overlapping reservations: %w", err)
	}

	conflicting := make([]model.Reservation, 0, len(candidates))

	for _, candidate := range candidates {
		if candidate.ID == excludeID {
			continue
		}

		if candidate.Overlaps(start, end) {
			conflicting = append(conflicting, candidate)
		}
	}

	return conflicting, nil
}

// resolveTotal uses the explicit total when given, otherwise prices the stay
// through the rate resolver.
func (s *serviceImpl) resolveTotal(ctx context.Context, req dto.CreateReservationRequest, start, end time.Time) (int64, error) {
	if req.TotalAmount != nil {
		return *req.TotalAmount, nil
	}

	quote, err := s.pricing.Quote(ctx, req.VillaID, start, end)
	if err != nil {
		return 0, err
	}

	return quote.Total, nil
}

func (s *serviceImpl) getByID(ctx context.Context, id string) (model.Reservation, error) {
	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return reservation, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	return reservation, nil
}

func (s *serviceImpl) villaLockTTL() time.Duration {
	return time.Duration(s.cfg.Booking.VillaLockTTLSeconds) * time.Second
}

// publishEvent notifies downstream consumers. Delivery is best effort: the
// reservation is already committed, so a broker failure only logs.
func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, reservation model.Reservation) {
	event := model.Event{
		Type:          eventType,
		ReservationID: reservation.ID,
		BookingRef:    reservation.BookingRef,
		VillaID:       reservation.VillaID,
		StartDate:     reservation.StartDate.Format(constant.DateOnlyFormat),
		EndDate:       reservation.EndDate.Format(constant.DateOnlyFormat),
		Status:        reservation.Status,
		OccurredAt:    timezone.Now(),
	}

	err := s.producer.SendMessages(ctx, s.cfg.Kafka.Topic.ReservationEvents, kafka.Message{
		Key:   reservation.VillaID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("event", eventType).Msg("failed to publish reservation event")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
	}()
}
