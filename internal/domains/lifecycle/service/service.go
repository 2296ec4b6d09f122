// Package service keeps booking and visit state consistent. A booking's
// first approval derives its visit; after that the visit is the sole
// authority for in-progress, completed and cancelled, which this package
// mirrors back onto the booking.
package service

import (
	"context"
	"fmt"
	"time"

	"pawsit/infras/otel"
	bookingModel "pawsit/internal/domains/booking/model"
	bookingRepo "pawsit/internal/domains/booking/repository"
	userModel "pawsit/internal/domains/user/model"
	userRepo "pawsit/internal/domains/user/repository"
	visitModel "pawsit/internal/domains/visit/model"
	visitRepo "pawsit/internal/domains/visit/repository"
	"pawsit/shared"
	"pawsit/shared/constant"
	"pawsit/shared/timezone"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

const clientNameFallback = "Client"

// visitToBookingStatus is the one-way status map from visit onto booking.
var visitToBookingStatus = map[string]string{
	visitModel.StatusScheduled:  bookingModel.StatusApproved,
	visitModel.StatusInProgress: bookingModel.StatusInProgress,
	visitModel.StatusCompleted:  bookingModel.StatusCompleted,
	visitModel.StatusCancelled:  bookingModel.StatusCancelled,
}

type Lifecycle interface {
	HandleBookingApproved(ctx context.Context, bookingID string) error
	MirrorVisitStatus(ctx context.Context, visitID, before, after string) error
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	visitRepo   visitRepo.Visit
	userRepo    userRepo.User
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, visitRepo visitRepo.Visit, userRepo userRepo.User, otel otel.Otel) Lifecycle {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		visitRepo:   visitRepo,
		userRepo:    userRepo,
		otel:        otel,
	}
}

// HandleBookingApproved derives the booking's visit. The upsert is keyed by
// the booking id so replayed approval events merge into the existing visit
// instead of duplicating it, and fields absent on the booking are left out of
// the merge so they never blank an existing visit value. The visit's status
// is only written on creation: a replay must not drag a progressed visit back
// to scheduled.
func (s *serviceImpl) HandleBookingApproved(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HandleBookingApproved")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get approved booking")

		return fmt.Errorf("failed to get approved booking: %w", err)
	}

	if booking.ID == constant.Empty {
		log.Warn().Str("booking_id", bookingID).Msg("approval event for unknown booking, skipping")

		return nil
	}

	if booking.Status == bookingModel.StatusPending || booking.Status == bookingModel.StatusCancelled {
		log.Info().Str("booking_id", bookingID).Str("status", booking.Status).Msg("booking not in an approved state, skipping visit upsert")

		return nil
	}

	start := scheduledStart(booking.Date, booking.TimeOfDay)
	end := scheduledEnd(start, booking.DurationMinutes)
	now := timezone.Now()

	// visits.pet_ids is NOT NULL; a booking row without pets must write an
	// empty array, not NULL.
	petIDs := booking.PetIDs
	if petIDs == nil {
		petIDs = pq.StringArray{}
	}

	visit := visitModel.Visit{
		ID:             booking.ID,
		SitterID:       booking.SitterID,
		SitterName:     booking.SitterName,
		ClientID:       booking.ClientID,
		ClientName:     s.resolveClientName(ctx, booking.ClientID),
		ServiceSummary: booking.ServiceType,
		ScheduledStart: start,
		ScheduledEnd:   end,
		Status:         visitModel.StatusScheduled,
		Address:        booking.Address,
		PetIDs:         petIDs,
	}
	visit.CreatedAt = now
	visit.CreatedBy = constant.SystemActor
	visit.ModifiedAt = now
	visit.ModifiedBy = constant.SystemActor

	mergeColumns := []string{
		visitModel.FieldClientID,
		visitModel.FieldClientName,
		visitModel.FieldServiceSummary,
		visitModel.FieldScheduledStart,
		visitModel.FieldScheduledEnd,
		constant.FieldModifiedAt,
		constant.FieldModifiedBy,
	}

	if booking.SitterID != nil {
		mergeColumns = append(mergeColumns, visitModel.FieldSitterID, visitModel.FieldSitterName)
	}

	if booking.Address != nil {
		mergeColumns = append(mergeColumns, visitModel.FieldAddress)
	}

	if len(booking.PetIDs) > 0 {
		mergeColumns = append(mergeColumns, visitModel.FieldPetIDs)
	}

	if err := s.visitRepo.Upsert(ctx, visit, mergeColumns); err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to upsert visit for approved booking")

		return fmt.Errorf("failed to upsert visit for approved booking: %w", err)
	}

	return nil
}

// MirrorVisitStatus propagates a visit transition onto its paired booking.
// Equal before/after is a no-op, a missing booking is swallowed (not every
// visit keeps a live booking counterpart), and other failures are logged for
// an external retry mechanism rather than retried here.
func (s *serviceImpl) MirrorVisitStatus(ctx context.Context, visitID, before, after string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MirrorVisitStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if before == after {
		return nil
	}

	mapped, ok := visitToBookingStatus[after]
	if !ok {
		log.Warn().Str("visit_id", visitID).Str("status", after).Msg("unknown visit status, skipping mirror")

		return nil
	}

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(visitID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("visit_id", visitID).Msg("failed to get booking for status mirror")

		return fmt.Errorf("failed to get booking for status mirror: %w", err)
	}

	if booking.ID == constant.Empty {
		return nil
	}

	if booking.Status == mapped {
		return nil
	}

	now := timezone.Now()

	updates := map[string]any{
		bookingModel.FieldStatus: mapped,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: constant.SystemActor,
	}

	switch after {
	case visitModel.StatusInProgress:
		updates[bookingModel.FieldCheckIn] = now
	case visitModel.StatusCompleted:
		updates[bookingModel.FieldCheckOut] = now
	}

	if err := s.bookingRepo.Update(ctx, updates, shared.FilterByID(visitID, bookingModel.FieldID, bookingModel.TableName)); err != nil {
		log.Error().Err(err).Str("visit_id", visitID).Str("status", mapped).Msg("failed to mirror visit status onto booking")

		return fmt.Errorf("failed to mirror visit status onto booking: %w", err)
	}

	return nil
}

// scheduledStart combines the booking date with its wall-clock time string.
// An unparsable time string falls back to midnight on the booking's date
// rather than rejecting the booking.
func scheduledStart(date time.Time, timeOfDay string) time.Time {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, timezone.GetLocation())

	clock, err := time.Parse(constant.ClockFormat, timeOfDay)
	if err != nil {
		log.Warn().Str("time_of_day", timeOfDay).Msg("unparsable booking time, falling back to midnight")

		return midnight
	}

	return midnight.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute)
}

// scheduledEnd coerces negative durations to zero so the end never precedes
// the start.
func scheduledEnd(start time.Time, durationMinutes int) time.Time {
	if durationMinutes < 0 {
		durationMinutes = 0
	}

	return start.Add(time.Duration(durationMinutes) * time.Minute)
}

// resolveClientName is best-effort: a missing or unreadable profile falls
// back to a generic display name rather than failing the upsert.
func (s *serviceImpl) resolveClientName(ctx context.Context, clientID string) string {
	user, err := s.userRepo.Get(ctx, shared.FilterByID(clientID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("client_id", clientID).Msg("failed to resolve client display name")

		return clientNameFallback
	}

	return user.DisplayName(clientNameFallback)
}
