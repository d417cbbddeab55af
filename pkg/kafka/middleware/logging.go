package kafka_middleware

import (
	"context"
	"time"

	"splendico/pkg/kafka"
	"splendico/pkg/logger"
)

// LoggingProducerMiddleware logs every publish attempt and its outcome.
func LoggingProducerMiddleware(log *logger.Logger) kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()

		err := next(ctx, msg)

		attrs := []any{
			"topic", msg.Topic,
			"key", msg.Key,
			"event_id", msg.EventID(),
			"event_type", msg.EventType(),
			"duration", time.Since(start),
		}
		if id := logger.RequestID(ctx); id != "" {
			attrs = append(attrs, logger.REQUEST_ID, id)
		}

		if err != nil {
			log.Error("failed to publish message", append(attrs, "class", kafka.ClassifyError(err), "error", err)...)
			return err
		}

		log.Debug("published message", attrs...)
		return nil
	}
}
