package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"splendico/pkg/config"
	"splendico/pkg/kafka"
	"splendico/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	published []kafka.Message
	deadline  time.Time
	err       error
	closed    bool
}

func (f *fakeProducer) Publish(ctx context.Context, msg kafka.Message) error {
	f.deadline, _ = ctx.Deadline()
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeProducer) Close() error {
	f.closed = true
	return nil
}

func TestKafkaPublisher_Envelope(t *testing.T) {
	producer := &fakeProducer{}
	p := NewKafkaPublisher(producer, logger.Nop())
	fixed := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	ctx := logger.WithRequestID(context.Background(), "req-42")
	p.Publish(ctx, BookingCreated, "65f0c0ffee0000000000abcd", map[string]string{"email": "alice@example.com"})

	require.Len(t, producer.published, 1)
	msg := producer.published[0]
	assert.Equal(t, "65f0c0ffee0000000000abcd", msg.Key)
	assert.Equal(t, string(BookingCreated), msg.EventType())
	assert.Equal(t, "req-42", msg.CorrelationID())

	var env struct {
		Type       string            `json:"type"`
		ID         string            `json:"id"`
		OccurredAt time.Time         `json:"occurredAt"`
		Payload    map[string]string `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(msg.Value, &env))
	assert.Equal(t, "booking.created", env.Type)
	assert.Equal(t, msg.EventID(), env.ID)
	assert.True(t, fixed.Equal(env.OccurredAt))
	assert.Equal(t, "alice@example.com", env.Payload["email"])
}

func TestKafkaPublisher_SurvivesCancelledRequest(t *testing.T) {
	producer := &fakeProducer{}
	p := NewKafkaPublisher(producer, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.Publish(ctx, ReviewCreated, "r1", struct{}{})

	require.Len(t, producer.published, 1)
	assert.False(t, producer.deadline.IsZero())
}

func TestKafkaPublisher_FailureIsSwallowed(t *testing.T) {
	producer := &fakeProducer{err: errors.New("broker down")}
	p := NewKafkaPublisher(producer, logger.Nop())

	assert.NotPanics(t, func() {
		p.Publish(context.Background(), BookingDeleted, "b1", nil)
	})
	require.NoError(t, p.Close())
	assert.True(t, producer.closed)
}

func TestNewPublisher_DisabledWithoutBrokers(t *testing.T) {
	cfg := &config.Config{Log: logger.Nop()}

	p, err := NewPublisher(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, NopPublisher{}, p)
	assert.NoError(t, p.Close())
}

func TestNewPublisher_KafkaWhenBrokersSet(t *testing.T) {
	cfg := &config.Config{Log: logger.Nop()}
	cfg.Kafka.Brokers = []string{"localhost:9092"}
	cfg.Kafka.Topic = "splendico.events"
	cfg.Kafka.ProducerMaxAttempts = 1

	p, err := NewPublisher(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &KafkaPublisher{}, p)
	assert.NoError(t, p.Close())
}
