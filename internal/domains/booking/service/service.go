package service

import (
	"context"
	"fmt"

	"pawsit/config"
	"pawsit/infras/kafka"
	"pawsit/infras/otel"
	"pawsit/internal/domains/booking/model"
	"pawsit/internal/domains/booking/model/dto"
	"pawsit/internal/domains/booking/repository"
	notificationModel "pawsit/internal/domains/notification/model"
	notificationService "pawsit/internal/domains/notification/service"
	"pawsit/internal/events"
	"pawsit/shared"
	"pawsit/shared/cache"
	"pawsit/shared/constant"
	gDto "pawsit/shared/dto"
	"pawsit/shared/failure"
	"pawsit/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking     = "booking:get"
	cacheGetAllBookings = "booking:get_all"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest, clientID string) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Cancel(ctx context.Context, id, actorID string) error
	ConfirmPayment(ctx context.Context, bookingID string) error
}

type serviceImpl struct {
	repo         repository.Booking
	notification notificationService.Notification
	kafka        kafka.Client
	cache        cache.RedisCache
	cfg          *config.Config
	otel         otel.Otel
}

func New(repo repository.Booking, notification notificationService.Notification, kafka kafka.Client, cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:         repo,
		notification: notification,
		kafka:        kafka,
		cache:        cache,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest, clientID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := req.ToModel(clientID)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err := s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to insert booking")

		return res, fmt.Errorf("failed to insert booking: %w", err)
	}

	s.invalidateCaches(ctx)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)
	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	booking, err := s.fetch(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("key", cacheKey).Msg("failed to save booking cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBookings, params, filter)
	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("key", cacheKey).Msg("failed to save bookings cache")
		}
	}()

	return res, nil
}

// Cancel cancels a booking directly. Once a visit exists (any state past
// pending) the visit is the authority for cancellation, so direct cancel is
// only allowed while the booking is still pending.
func (s *serviceImpl) Cancel(ctx context.Context, id, actorID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status == model.StatusCancelled {
		return nil
	}

	if booking.Status != model.StatusPending {
		return failure.Conflict(fmt.Sprintf("booking in state %s is cancelled through its visit", booking.Status)) // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actorID,
	}, s.pendingFilter(id)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.invalidateCaches(ctx)

	return nil
}

// ConfirmPayment flips a pending booking to approved and announces the
// approval. The write is conditional on the booking still being pending, so
// replayed webhooks and concurrent confirmations collapse to a no-op.
func (s *serviceImpl) ConfirmPayment(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.fetch(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Status != model.StatusPending {
		log.Info().Str("booking_id", bookingID).Str("status", booking.Status).Msg("payment confirmation on non-pending booking, skipping")

		return nil
	}

	now := timezone.Now()

	if err := s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        model.StatusApproved,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: constant.SystemActor,
	}, s.pendingFilter(bookingID)); err != nil {
		log.Error().Err(err).Msg("failed to approve booking")

		return fmt.Errorf("failed to approve booking: %w", err)
	}

	s.invalidateCaches(ctx)

	err = s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.BookingApproved, kafka.Message{
		Key: bookingID,
		Value: events.BookingApproved{
			BookingID:  bookingID,
			ClientID:   booking.ClientID,
			ApprovedAt: now,
		},
	})
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to publish booking approval")

		return fmt.Errorf("failed to publish booking approval: %w", err)
	}

	s.notification.Enqueue(ctx, booking.ClientID, notificationModel.TypeBookingApproved, map[string]any{
		"bookingId":   bookingID,
		"serviceType": booking.ServiceType,
	})

	return nil
}

func (s *serviceImpl) fetch(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return model.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return model.Booking{}, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// pendingFilter scopes a write to the booking while it is still pending.
func (s *serviceImpl) pendingFilter(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusPending,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) invalidateCaches(ctx context.Context) {
	go func() {
		ctx := context.WithoutCancel(ctx)

		shared.InvalidateCaches(ctx, s.cache, cacheGetBooking)
		shared.InvalidateCaches(ctx, s.cache, cacheGetAllBookings)
	}()
}
