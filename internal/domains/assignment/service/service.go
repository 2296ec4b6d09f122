package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pawsit/config"
	"pawsit/infras/otel"
	"pawsit/infras/s3"
	"pawsit/internal/domains/assignment/model"
	"pawsit/internal/domains/assignment/model/dto"
	"pawsit/internal/domains/assignment/repository"
	bookingModel "pawsit/internal/domains/booking/model"
	bookingRepo "pawsit/internal/domains/booking/repository"
	notificationModel "pawsit/internal/domains/notification/model"
	notificationService "pawsit/internal/domains/notification/service"
	petModel "pawsit/internal/domains/pet/model"
	petRepo "pawsit/internal/domains/pet/repository"
	sitterModel "pawsit/internal/domains/sitter/model"
	sitterRepo "pawsit/internal/domains/sitter/repository"
	sitterService "pawsit/internal/domains/sitter/service"
	"pawsit/shared"
	"pawsit/shared/constant"
	gDto "pawsit/shared/dto"
	"pawsit/shared/failure"
	"pawsit/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

const trainingArchiveDirectory = "assignments"

var errBookingNoLongerEligible = errors.New("booking is no longer eligible for assignment")

// TxRunner runs a function inside a write transaction.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type Assignment interface {
	AssignBestSitter(ctx context.Context, criteria model.Criteria) model.Result
	AssignToBooking(ctx context.Context, bookingID string, preferredSitterID *string) (model.Result, error)
	HandleSitterUnavailable(ctx context.Context, sitterID, bookingID string) error
	GetRecord(ctx context.Context, bookingID string) (dto.RecordResponse, error)
	AttachFeedback(ctx context.Context, bookingID string, req dto.FeedbackRequest) error
}

type serviceImpl struct {
	directory    sitterService.Sitter
	bookingRepo  bookingRepo.Booking
	sitterRepo   sitterRepo.Sitter
	repo         repository.Assignment
	trainingRepo repository.Training
	petRepo      petRepo.Pet
	notification notificationService.Notification
	s3           s3.S3
	tx           TxRunner
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	directory sitterService.Sitter,
	bookingRepo bookingRepo.Booking,
	sitterRepo sitterRepo.Sitter,
	repo repository.Assignment,
	trainingRepo repository.Training,
	petRepo petRepo.Pet,
	notification notificationService.Notification,
	s3 s3.S3,
	tx TxRunner,
	cfg *config.Config,
	otel otel.Otel,
) Assignment {
	return &serviceImpl{
		directory:    directory,
		bookingRepo:  bookingRepo,
		sitterRepo:   sitterRepo,
		repo:         repo,
		trainingRepo: trainingRepo,
		petRepo:      petRepo,
		notification: notification,
		s3:           s3,
		tx:           tx,
		cfg:          cfg,
		otel:         otel,
	}
}

// AssignBestSitter selects and commits the best sitter for the criteria. It
// never returns an error: every outcome, including store faults, surfaces as
// a structured Result so the caller decides whether to retry or escalate.
// The whole call is bounded by the configured assignment timeout.
func (s *serviceImpl) AssignBestSitter(ctx context.Context, criteria model.Criteria) (res model.Result) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignBestSitter")
	defer scope.End()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Assignment.TimeoutSeconds)*time.Second)
	defer cancel()

	now := timezone.Now()

	candidates, err := s.directory.FetchAvailableSitters(ctx)
	if err != nil {
		log.Error().Err(err).Str("booking_id", criteria.BookingID).Msg("assignment failed: sitter directory unavailable")

		res = model.Failed(criteria.BookingID, now, fmt.Sprintf("Sitter directory unavailable: %v", err))
		s.recordOutcome(ctx, res, len(candidates))

		return res
	}

	eligible := FilterCandidates(candidates, criteria)
	if len(eligible) == 0 {
		log.Info().
			Str("booking_id", criteria.BookingID).
			Int("candidate_count", len(candidates)).
			Msg("assignment failed: no candidate passed filtering")

		res = model.Failed(criteria.BookingID, now, ReasonNoCandidates)
		s.recordOutcome(ctx, res, len(candidates))

		return res
	}

	ranked := RankCandidates(eligible, criteria, now)
	winner := ranked[0].Candidate
	winnerConfidence := Confidence(winner, criteria)
	winnerReasons := BuildReasons(winner, criteria)

	if err := s.commit(ctx, criteria.BookingID, winner, winnerConfidence, winnerReasons, now); err != nil {
		// A commit failure after selection is a different animal from an
		// empty candidate pool and must stay distinguishable downstream.
		log.Error().Err(err).
			Str("booking_id", criteria.BookingID).
			Str("sitter_id", winner.ID).
			Int("candidate_count", len(candidates)).
			Msg("assignment failed: commit did not apply")

		reason := fmt.Sprintf("Assignment commit failed: %v", err)
		if errors.Is(err, errBookingNoLongerEligible) {
			reason = "Booking is no longer eligible for assignment"
		}

		res = model.Failed(criteria.BookingID, now, reason)
		s.recordOutcome(ctx, res, len(candidates))

		return res
	}

	res = model.Result{
		BookingID:  criteria.BookingID,
		SitterID:   &winner.ID,
		SitterName: &winner.FullName,
		Method:     model.MethodAutomatic,
		Confidence: winnerConfidence,
		Reasons:    winnerReasons,
		Timestamp:  now,
	}

	s.notification.Enqueue(ctx, winner.ID, notificationModel.TypeSitterAssigned, map[string]any{
		"bookingId":   criteria.BookingID,
		"serviceType": criteria.ServiceType,
	})

	s.recordOutcome(ctx, res, len(candidates))

	return res
}

// AssignToBooking builds criteria from a stored booking and runs the engine.
// Bookings already at assigned or a later state are rejected up front so a
// replayed approval event cannot race a second assignment.
func (s *serviceImpl) AssignToBooking(ctx context.Context, bookingID string, preferredSitterID *string) (res model.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignToBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get booking for assignment")

		return res, fmt.Errorf("failed to get booking for assignment: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status != bookingModel.StatusPending && booking.Status != bookingModel.StatusApproved {
		return res, failure.Conflict(fmt.Sprintf("booking in state %s cannot be assigned", booking.Status)) // nolint:wrapcheck
	}

	petTypes, err := s.fetchPetTypes(ctx, booking.PetIDs)
	if err != nil {
		return res, err
	}

	criteria := model.Criteria{
		BookingID:         booking.ID,
		ClientID:          booking.ClientID,
		BookingLocation:   booking.Location(),
		PetTypes:          petTypes,
		ServiceType:       booking.ServiceType,
		Date:              booking.Date,
		DurationMinutes:   booking.DurationMinutes,
		PreferredSitterID: preferredSitterID,
	}
	if booking.SpecialInstructions != nil {
		criteria.SpecialRequirements = []string{*booking.SpecialInstructions}
	}

	return s.AssignBestSitter(ctx, criteria), nil
}

// HandleSitterUnavailable is the recovery path when an assigned sitter backs
// out: the audit record is cancelled and the booking returns to the pending
// pool with its sitter fields cleared. Safe to call repeatedly.
func (s *serviceImpl) HandleSitterUnavailable(ctx context.Context, sitterID, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HandleSitterUnavailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get booking for sitter-unavailable recovery")

		return fmt.Errorf("failed to get booking for sitter-unavailable recovery: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	now := timezone.Now()
	cancelReason := model.CancelReasonSitterUnavailable

	err = s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldStatus:        model.StatusCancelled,
			model.FieldCancelReason:  cancelReason,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: constant.SystemActor,
		}, shared.FilterByID(bookingID, model.FieldBookingID, model.TableName)); err != nil {
			return err
		}

		return s.bookingRepo.UpdateTx(ctx, tx, map[string]any{
			bookingModel.FieldStatus:           bookingModel.StatusPending,
			bookingModel.FieldSitterID:         nil,
			bookingModel.FieldSitterName:       nil,
			bookingModel.FieldAssignedAt:       nil,
			bookingModel.FieldAssignmentMethod: nil,
			constant.FieldModifiedAt:           now,
			constant.FieldModifiedBy:           constant.SystemActor,
		}, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	})
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Str("sitter_id", sitterID).Msg("failed to recover booking from unavailable sitter")

		return fmt.Errorf("failed to recover booking from unavailable sitter: %w", err)
	}

	s.notification.Enqueue(ctx, booking.ClientID, notificationModel.TypeSitterUnavailable, map[string]any{
		"bookingId": bookingID,
	})

	return nil
}

func (s *serviceImpl) GetRecord(ctx context.Context, bookingID string) (res dto.RecordResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRecord")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get assignment record")

		return res, fmt.Errorf("failed to get assignment record: %w", err)
	}

	if record.BookingID == constant.Empty {
		return res, failure.NotFound("assignment record not found") // nolint:wrapcheck
	}

	res.FromModel(record)

	return res, nil
}

// AttachFeedback records post-hoc feedback on the booking's training rows.
func (s *serviceImpl) AttachFeedback(ctx context.Context, bookingID string, req dto.FeedbackRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AttachFeedback")
	defer scope.End()
	defer scope.TraceIfError(err)

	rows, err := s.trainingRepo.GetAll(ctx, gDto.QueryParams{Limit: 1}, shared.FilterByID(bookingID, model.TrainingFieldBookingID, model.TrainingTableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to look up training records")

		return fmt.Errorf("failed to look up training records: %w", err)
	}

	if len(rows) == 0 {
		return failure.NotFound("no training record for booking") // nolint:wrapcheck
	}

	if err := s.trainingRepo.Update(ctx, map[string]any{
		"feedback_rating":        req.Rating,
		"feedback_comment":       req.Comment,
		"feedback_success":       req.Success,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: constant.SystemActor,
	}, shared.FilterByID(bookingID, model.TrainingFieldBookingID, model.TrainingTableName)); err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to attach assignment feedback")

		return fmt.Errorf("failed to attach assignment feedback: %w", err)
	}

	return nil
}

// commit applies the three assignment writes atomically. The booking write is
// conditional on the booking still being assignable; zero affected rows means
// another invocation won the race and the whole transaction rolls back.
func (s *serviceImpl) commit(ctx context.Context, bookingID string, winner sitterModel.Candidate, confidence float64, reasons []string, now time.Time) error {
	record := model.Record{
		BookingID:  bookingID,
		SitterID:   &winner.ID,
		SitterName: &winner.FullName,
		Method:     model.MethodAutomatic,
		Status:     model.StatusActive,
		Confidence: confidence,
		Reasons:    pq.StringArray(reasons),
		AssignedAt: now,
	}
	record.CreatedAt = now
	record.CreatedBy = constant.SystemActor
	record.ModifiedAt = now
	record.ModifiedBy = constant.SystemActor

	return s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		affected, err := s.bookingRepo.UpdateCheckedTx(ctx, tx, map[string]any{
			bookingModel.FieldSitterID:         winner.ID,
			bookingModel.FieldSitterName:       winner.FullName,
			bookingModel.FieldAssignedAt:       now,
			bookingModel.FieldAssignmentMethod: model.MethodAutomatic,
			bookingModel.FieldStatus:           bookingModel.StatusAssigned,
			constant.FieldModifiedAt:           now,
			constant.FieldModifiedBy:           constant.SystemActor,
		}, assignableBookingFilter(bookingID))
		if err != nil {
			return err
		}

		if affected == 0 {
			return errBookingNoLongerEligible
		}

		if err := s.repo.UpsertTx(ctx, tx, record, []string{
			model.FieldSitterID, model.FieldSitterName, model.FieldMethod, model.FieldStatus,
			model.FieldConfidence, model.FieldReasons, model.FieldCancelReason, model.FieldAssignedAt,
			constant.FieldModifiedAt, constant.FieldModifiedBy,
		}); err != nil {
			return err
		}

		return s.sitterRepo.UpdateTx(ctx, tx, map[string]any{
			sitterModel.FieldLastAssignedAt: now,
			constant.FieldModifiedAt:        now,
			constant.FieldModifiedBy:        constant.SystemActor,
		}, shared.FilterByID(winner.ID, sitterModel.FieldID, sitterModel.TableName))
	})
}

// assignableBookingFilter scopes the commit write to bookings still waiting
// for a sitter.
func assignableBookingFilter(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{bookingModel.StatusPending, bookingModel.StatusApproved},
				Table:    bookingModel.TableName,
			},
		},
	}
}

func (s *serviceImpl) fetchPetTypes(ctx context.Context, petIDs []string) ([]string, error) {
	if len(petIDs) == 0 {
		return nil, nil
	}

	pets, err := s.petRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    petModel.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    petIDs,
				Table:    petModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve pet types")

		return nil, fmt.Errorf("failed to resolve pet types: %w", err)
	}

	seen := map[string]bool{}
	types := []string{}

	for _, pet := range pets {
		if pet.Type == constant.Empty || seen[pet.Type] {
			continue
		}

		seen[pet.Type] = true
		types = append(types, pet.Type)
	}

	return types, nil
}

// recordOutcome appends the result to the training log and archives it to
// object storage. Both writes are best-effort: a training failure never fails
// the assignment, and the log survives caller cancellation.
func (s *serviceImpl) recordOutcome(ctx context.Context, res model.Result, candidateCount int) {
	ctx = context.WithoutCancel(ctx)

	record := model.TrainingRecord{
		ID:             uuid.NewString(),
		BookingID:      res.BookingID,
		SitterID:       res.SitterID,
		Method:         res.Method,
		Confidence:     res.Confidence,
		Reasons:        res.Reasons,
		CandidateCount: candidateCount,
	}
	record.CreatedAt = res.Timestamp
	record.CreatedBy = constant.SystemActor
	record.ModifiedAt = res.Timestamp
	record.ModifiedBy = constant.SystemActor

	if err := s.trainingRepo.Insert(ctx, record); err != nil {
		log.Error().Err(err).Str("booking_id", res.BookingID).Msg("failed to append assignment training record")
	}

	payload, err := json.Marshal(res)
	if err != nil {
		log.Error().Err(err).Str("booking_id", res.BookingID).Msg("failed to encode assignment result for archival")

		return
	}

	objectName := fmt.Sprintf("%s-%s.json", res.BookingID, record.ID)

	directory := fmt.Sprintf("%s/%s", trainingArchiveDirectory, res.Timestamp.Format(constant.DateOnlyFormat))
	if _, err := s.s3.PutObjectBytes(ctx, constant.Empty, directory, objectName, constant.ContentTypeJSON, payload); err != nil {
		log.Error().Err(err).Str("booking_id", res.BookingID).Msg("failed to archive assignment result")
	}
}
