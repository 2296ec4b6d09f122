// Package worker consumes the service's kafka topics and dispatches each
// message to its domain handler.
package worker

import (
	"context"

	"pawsit/config"
	"pawsit/infras/kafka"
	"pawsit/infras/otel"
	assignmentService "pawsit/internal/domains/assignment/service"
	lifecycleService "pawsit/internal/domains/lifecycle/service"
	"pawsit/internal/events"
	"pawsit/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Worker wires the kafka topics to their domain handlers. Each consumed
// message is handled in its own goroutine by the kafka client; handlers must
// tolerate replays.
type Worker struct {
	kafka      kafka.Client
	assignment assignmentService.Assignment
	lifecycle  lifecycleService.Lifecycle
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	kafka kafka.Client,
	assignment assignmentService.Assignment,
	lifecycle lifecycleService.Lifecycle,
	cfg *config.Config,
	otel otel.Otel,
) *Worker {
	return &Worker{
		kafka:      kafka,
		assignment: assignment,
		lifecycle:  lifecycle,
		cfg:        cfg,
		otel:       otel,
	}
}

// Start launches the consumers. It returns immediately; consumption stops
// when ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	go w.kafka.Consume(ctx, w.cfg.Kafka.ConsumerGroup, w.cfg.Kafka.Topics.BookingApproved, w.handleBookingApproved)
	go w.kafka.Consume(ctx, w.cfg.Kafka.ConsumerGroup, w.cfg.Kafka.Topics.VisitStatusChanged, w.handleVisitStatusChanged)

	log.Info().Msg("Event workers started")
}

// handleBookingApproved runs assignment before the visit upsert so the visit
// is created with the chosen sitter already on the booking. A failed
// assignment still produces a visit; the booking simply stays unassigned.
func (w *Worker) handleBookingApproved(msg kafkaGo.Message) {
	ctx, scope := w.otel.NewScope(context.Background(), constant.OtelEventScopeName, constant.OtelEventScopeName+".handleBookingApproved")
	defer scope.End()

	payload, err := kafka.DecodeKafkaMessage[events.BookingApproved](msg)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode booking approval event")

		return
	}

	result, err := w.assignment.AssignToBooking(ctx, payload.BookingID, nil)
	if err != nil {
		log.Error().Err(err).Str("booking_id", payload.BookingID).Msg("assignment skipped for approved booking")
	} else {
		log.Info().
			Str("booking_id", payload.BookingID).
			Str("method", result.Method).
			Float64("confidence", result.Confidence).
			Msg("assignment finished for approved booking")
	}

	if err := w.lifecycle.HandleBookingApproved(ctx, payload.BookingID); err != nil {
		log.Error().Err(err).Str("booking_id", payload.BookingID).Msg("failed to derive visit for approved booking")
	}
}

func (w *Worker) handleVisitStatusChanged(msg kafkaGo.Message) {
	ctx, scope := w.otel.NewScope(context.Background(), constant.OtelEventScopeName, constant.OtelEventScopeName+".handleVisitStatusChanged")
	defer scope.End()

	payload, err := kafka.DecodeKafkaMessage[events.VisitStatusChanged](msg)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode visit status event")

		return
	}

	if err := w.lifecycle.MirrorVisitStatus(ctx, payload.VisitID, payload.Before, payload.After); err != nil {
		log.Error().Err(err).Str("visit_id", payload.VisitID).Msg("failed to mirror visit status")
	}
}
