// Package events announces domain changes on Kafka. Publishing is best
// effort: the store write has already succeeded, so failures are logged and
// counted but never surface to the HTTP caller.
package events

import (
	"context"
	"time"

	"splendico/pkg/config"
	"splendico/pkg/kafka"
	kafka_middleware "splendico/pkg/kafka/middleware"
	"splendico/pkg/logger"

	"github.com/google/uuid"
)

type Type string

const (
	BookingCreated Type = "booking.created"
	BookingDeleted Type = "booking.deleted"
	ReviewCreated  Type = "review.created"
)

const (
	schemaVersion  = "1"
	source         = "splendico-api"
	publishTimeout = 5 * time.Second
)

// Envelope is the JSON value of every message.
type Envelope struct {
	Type       Type      `json:"type"`
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

type Publisher interface {
	// Publish sends payload keyed by aggregateID. It does not return an
	// error; failures are logged.
	Publish(ctx context.Context, eventType Type, aggregateID string, payload any)
	Close() error
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Type, string, any) {}

func (NopPublisher) Close() error { return nil }

type messageProducer interface {
	Publish(ctx context.Context, msg kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	producer messageProducer
	log      *logger.Logger
	now      func() time.Time
}

func NewKafkaPublisher(producer messageProducer, log *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		log:      log,
		now:      time.Now,
	}
}

// NewPublisher returns a Kafka-backed publisher when brokers are configured
// and a NopPublisher otherwise.
func NewPublisher(cfg *config.Config, recorder kafka_middleware.PublishRecorder) (Publisher, error) {
	if !cfg.Kafka.Enabled() {
		cfg.Log.Info("Kafka brokers not configured, domain events are disabled")
		return NopPublisher{}, nil
	}

	producer, err := kafka.NewProducer(&cfg.Kafka, cfg.Log)
	if err != nil {
		return nil, err
	}
	producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	if recorder != nil {
		producer.Use(kafka_middleware.MetricsProducerMiddleware(recorder))
	}

	return NewKafkaPublisher(producer, cfg.Log), nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, eventType Type, aggregateID string, payload any) {
	requestID := logger.RequestID(ctx)
	envelope := Envelope{
		Type:       eventType,
		ID:         uuid.NewString(),
		OccurredAt: p.now().UTC(),
		Payload:    payload,
	}

	msg, err := kafka.NewMessage().
		WithKey(aggregateID).
		WithEventID(envelope.ID).
		WithEventType(string(eventType)).
		WithCorrelationID(requestID).
		WithSchemaVersion(schemaVersion).
		WithSource(source).
		WithTimestamp(envelope.OccurredAt).
		WithValue(envelope).
		Build()
	if err != nil {
		p.log.Error("failed to encode event", "event_type", eventType, "error", err)
		return
	}

	// The request may finish before the broker acknowledges.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Warn("domain event not published",
			logger.REQUEST_ID, requestID,
			"event_type", eventType,
			"aggregate_id", aggregateID,
			"error", err,
		)
	}
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
