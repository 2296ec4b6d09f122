package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"

	"pawsit/config"
	"pawsit/infras/kafka"
	"pawsit/infras/otel"
	"pawsit/internal/domains/notification/model"
	"pawsit/internal/domains/notification/repository"
	"pawsit/internal/events"
	"pawsit/shared"
	"pawsit/shared/constant"
	"pawsit/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Notification interface {
	Enqueue(ctx context.Context, recipientID, notificationType string, payload map[string]any)
}

type serviceImpl struct {
	repo  repository.Notification
	kafka kafka.Client
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.Notification, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		repo:  repo,
		kafka: kafka,
		cfg:   cfg,
		otel:  otel,
	}
}

// Enqueue records a notification intent and fans it out to the dispatcher
// topic. Both writes are best-effort: a failure here must never fail the
// operation that triggered the notification, so errors are logged and
// swallowed.
func (s *serviceImpl) Enqueue(ctx context.Context, recipientID, notificationType string, payload map[string]any) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Enqueue")
	defer scope.End()

	raw, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("type", notificationType).Msg("failed to encode notification payload")

		return
	}

	now := timezone.Now()

	intent := model.Intent{
		ID:          uuid.NewString(),
		RecipientID: recipientID,
		Type:        notificationType,
		Payload:     raw,
		Status:      model.StatusQueued,
	}
	intent.CreatedAt = now
	intent.CreatedBy = constant.SystemActor
	intent.ModifiedAt = now
	intent.ModifiedBy = constant.SystemActor

	if err := s.repo.Insert(ctx, intent); err != nil {
		log.Error().Err(err).Str("type", notificationType).Msg("failed to record notification intent")

		return
	}

	err = s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.Notification, kafka.Message{
		Key: intent.ID,
		Value: events.NotificationDispatch{
			NotificationID: intent.ID,
			RecipientID:    recipientID,
			Type:           notificationType,
			Payload:        payload,
		},
	})
	if err != nil {
		log.Error().Err(err).Str("type", notificationType).Msg("failed to publish notification intent")

		return
	}

	if err := s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        model.StatusPublished,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: constant.SystemActor,
	}, shared.FilterByID(intent.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("notification_id", intent.ID).Msg("failed to mark notification as published")
	}
}
