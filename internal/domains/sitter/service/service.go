package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pawsit/config"
	"pawsit/infras/otel"
	bookingModel "pawsit/internal/domains/booking/model"
	bookingRepo "pawsit/internal/domains/booking/repository"
	"pawsit/internal/domains/sitter/model"
	"pawsit/internal/domains/sitter/model/dto"
	"pawsit/internal/domains/sitter/repository"
	"pawsit/shared"
	"pawsit/shared/constant"
	gDto "pawsit/shared/dto"
	"pawsit/shared/failure"

	"github.com/rs/zerolog/log"
)

// lastAssignedStatuses are the booking states that count as a real engagement
// when deriving a sitter's most recent assignment.
var lastAssignedStatuses = []string{
	bookingModel.StatusApproved,
	bookingModel.StatusInProgress,
	bookingModel.StatusCompleted,
}

type Sitter interface {
	FetchAvailableSitters(ctx context.Context) ([]model.Candidate, error)
	Get(ctx context.Context, id string) (dto.SitterResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSittersResponse, error)
	UpsertAvailability(ctx context.Context, req dto.UpsertAvailabilityRequest, sitterID string) error
}

type serviceImpl struct {
	repo             repository.Sitter
	availabilityRepo repository.Availability
	bookingRepo      bookingRepo.Booking
	cfg              *config.Config
	otel             otel.Otel
}

func New(repo repository.Sitter, availabilityRepo repository.Availability, bookingRepo bookingRepo.Booking, cfg *config.Config, otel otel.Otel) Sitter {
	return &serviceImpl{
		repo:             repo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		cfg:              cfg,
		otel:             otel,
	}
}

// FetchAvailableSitters reads the active sitter roster and enriches each
// profile with its availability descriptor and most recent assignment time.
// The roster is re-read from the store on every call; nothing is cached, so
// an assignment request always sees current data. Per-sitter enrichment
// fetches are read-only and touch disjoint rows, so they run concurrently.
// Any store error fails the whole fetch: the caller must treat that as "no
// sitters available" rather than assigning from a partial roster.
func (s *serviceImpl) FetchAvailableSitters(ctx context.Context) (res []model.Candidate, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FetchAvailableSitters")
	defer scope.End()
	defer scope.TraceIfError(err)

	sitters, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch sitter roster")

		return nil, fmt.Errorf("failed to fetch sitter roster: %w", err)
	}

	candidates := make([]model.Candidate, len(sitters))
	errs := make([]error, len(sitters))

	var wg sync.WaitGroup

	for i, sitter := range sitters {
		wg.Add(1)

		go func(i int, sitter model.Sitter) {
			defer wg.Done()

			candidate, err := s.buildCandidate(ctx, sitter)
			if err != nil {
				errs[i] = err

				return
			}

			candidates[i] = candidate
		}(i, sitter)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			log.Error().Err(err).Msg("failed to enrich sitter candidate")

			return nil, err
		}
	}

	return candidates, nil
}

func (s *serviceImpl) buildCandidate(ctx context.Context, sitter model.Sitter) (model.Candidate, error) {
	availability, err := s.fetchAvailability(ctx, sitter.ID)
	if err != nil {
		return model.Candidate{}, err
	}

	lastAssigned, err := s.fetchLastAssigned(ctx, sitter.ID)
	if err != nil {
		return model.Candidate{}, err
	}

	if lastAssigned == nil {
		lastAssigned = sitter.LastAssignedAt
	}

	return model.Candidate{
		ID:             sitter.ID,
		FullName:       sitter.FullName,
		Email:          sitter.Email,
		Active:         sitter.Active,
		Available:      sitter.Available,
		PetTypes:       sitter.PetTypes,
		Availability:   availability,
		Location:       sitter.Location(),
		Rating:         sitter.Rating,
		TotalBookings:  sitter.TotalBookings,
		LastAssignedAt: lastAssigned,
	}, nil
}

// fetchAvailability loads the sitter's availability descriptor. A sitter with
// no row is fully available; that fail-open default must be preserved.
func (s *serviceImpl) fetchAvailability(ctx context.Context, sitterID string) (model.Availability, error) {
	availability, err := s.availabilityRepo.Get(ctx, shared.FilterByID(sitterID, model.AvailabilityFieldSitterID, model.AvailabilityTableName))
	if err != nil {
		return model.Availability{}, fmt.Errorf("failed to fetch availability for sitter %s: %w", sitterID, err)
	}

	if availability.SitterID == constant.Empty {
		return model.DefaultAvailability(sitterID), nil
	}

	return availability, nil
}

// fetchLastAssigned derives the most recent assignment timestamp from the
// sitter's bookings; absence means the sitter has never been assigned.
func (s *serviceImpl) fetchLastAssigned(ctx context.Context, sitterID string) (*time.Time, error) {
	bookings, err := s.bookingRepo.GetAll(ctx,
		gDto.QueryParams{Limit: 1, SortBy: bookingModel.FieldAssignedAt, SortDir: gDto.SortDirDesc},
		gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    bookingModel.FieldSitterID,
					Operator: gDto.FilterOperatorEq,
					Value:    sitterID,
					Table:    bookingModel.TableName,
				},
				gDto.Filter{
					Field:    bookingModel.FieldStatus,
					Operator: gDto.FilterOperatorIn,
					Value:    lastAssignedStatuses,
					Table:    bookingModel.TableName,
				},
				gDto.Filter{
					Field:    bookingModel.FieldAssignedAt,
					Operator: gDto.FilterIsNotNull,
					Table:    bookingModel.TableName,
				},
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch last assignment for sitter %s: %w", sitterID, err)
	}

	if len(bookings) == 0 {
		return nil, nil
	}

	return bookings[0].AssignedAt, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SitterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	sitter, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get sitter")

		return res, fmt.Errorf("failed to get sitter: %w", err)
	}

	if sitter.ID == constant.Empty {
		return res, failure.NotFound("sitter not found") // nolint:wrapcheck
	}

	res.FromModel(sitter)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSittersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count sitters")

		return res, fmt.Errorf("failed to count sitters: %w", err)
	}

	sitters, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sitters")

		return res, fmt.Errorf("failed to get sitters: %w", err)
	}

	res.FromModels(sitters, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) UpsertAvailability(ctx context.Context, req dto.UpsertAvailabilityRequest, sitterID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpsertAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(sitterID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if sitter exists")

		return fmt.Errorf("failed to check if sitter exists: %w", err)
	}

	if !exist {
		return failure.NotFound("sitter not found") // nolint:wrapcheck
	}

	availability, err := req.ToModel(sitterID)
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid availability payload: %v", err)) // nolint:wrapcheck
	}

	if err := s.availabilityRepo.Upsert(ctx, availability, []string{
		"is_available", "active_hours", "blocked_dates", constant.FieldModifiedAt, constant.FieldModifiedBy,
	}); err != nil {
		log.Error().Err(err).Msg("failed to upsert sitter availability")

		return fmt.Errorf("failed to upsert sitter availability: %w", err)
	}

	return nil
}
