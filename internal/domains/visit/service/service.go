package service

import (
	"context"
	"fmt"

	"pawsit/config"
	"pawsit/infras/kafka"
	"pawsit/infras/otel"
	"pawsit/internal/domains/visit/model"
	"pawsit/internal/domains/visit/model/dto"
	"pawsit/internal/domains/visit/repository"
	"pawsit/internal/events"
	"pawsit/shared"
	"pawsit/shared/constant"
	gDto "pawsit/shared/dto"
	"pawsit/shared/failure"
	"pawsit/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Visit interface {
	Get(ctx context.Context, id string) (dto.VisitResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetVisitsResponse, error)
	CheckIn(ctx context.Context, id, actorID string) error
	CheckOut(ctx context.Context, id, actorID string) error
	Cancel(ctx context.Context, id, actorID string) error
	UpdateNote(ctx context.Context, id, actorID string, req dto.UpdateNoteRequest) error
}

type serviceImpl struct {
	repo  repository.Visit
	kafka kafka.Client
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.Visit, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Visit {
	return &serviceImpl{
		repo:  repo,
		kafka: kafka,
		cfg:   cfg,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.VisitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	visit, err := s.fetch(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(visit)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetVisitsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count visits")

		return res, fmt.Errorf("failed to count visits: %w", err)
	}

	visits, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get visits")

		return res, fmt.Errorf("failed to get visits: %w", err)
	}

	res.FromModels(visits, total, params.Limit)

	return res, nil
}

// CheckIn moves a scheduled visit into in_progress.
func (s *serviceImpl) CheckIn(ctx context.Context, id, actorID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, actorID, model.StatusInProgress)
}

// CheckOut completes an in_progress visit.
func (s *serviceImpl) CheckOut(ctx context.Context, id, actorID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, actorID, model.StatusCompleted)
}

// Cancel cancels a visit from any non-terminal state.
func (s *serviceImpl) Cancel(ctx context.Context, id, actorID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, actorID, model.StatusCancelled)
}

func (s *serviceImpl) UpdateNote(ctx context.Context, id, actorID string, req dto.UpdateNoteRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateNote")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err := s.fetch(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, map[string]any{
		model.FieldNote:          req.Note,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actorID,
	}, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update visit note")

		return fmt.Errorf("failed to update visit note: %w", err)
	}

	return nil
}

func (s *serviceImpl) fetch(ctx context.Context, id string) (model.Visit, error) {
	visit, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get visit")

		return model.Visit{}, fmt.Errorf("failed to get visit: %w", err)
	}

	if visit.ID == constant.Empty {
		return model.Visit{}, failure.NotFound("visit not found") // nolint:wrapcheck
	}

	return visit, nil
}

// transition applies a state-machine move and publishes the status change.
// The status write is durable before the event goes out; a publish failure is
// logged for an external sweeper rather than rolling the transition back.
func (s *serviceImpl) transition(ctx context.Context, id, actorID, to string) error {
	visit, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}

	if visit.Status == to {
		return nil
	}

	if !model.CanTransition(visit.Status, to) {
		return failure.Conflict(fmt.Sprintf("visit cannot move from %s to %s", visit.Status, to)) // nolint:wrapcheck
	}

	now := timezone.Now()

	if err := s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        to,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: actorID,
	}, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update visit status")

		return fmt.Errorf("failed to update visit status: %w", err)
	}

	s.publishStatusChanged(ctx, events.VisitStatusChanged{
		VisitID:   id,
		Before:    visit.Status,
		After:     to,
		ChangedAt: now,
	})

	return nil
}

func (s *serviceImpl) publishStatusChanged(ctx context.Context, payload events.VisitStatusChanged) {
	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.VisitStatusChanged, kafka.Message{
		Key:   payload.VisitID,
		Value: payload,
	})
	if err != nil {
		log.Error().Err(err).Str("visit_id", payload.VisitID).Msg("failed to publish visit status change")
	}
}
