package kafka_middleware

import (
	"context"

	"splendico/pkg/kafka"
)

// PublishRecorder receives publish outcomes; *metrics.Collector satisfies it.
type PublishRecorder interface {
	RecordPublished(eventType string)
	RecordPublishFailure(eventType, class string)
}

// MetricsProducerMiddleware counts successful and failed publishes by event type.
func MetricsProducerMiddleware(recorder PublishRecorder) kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		err := next(ctx, msg)
		if err != nil {
			recorder.RecordPublishFailure(msg.EventType(), string(kafka.ClassifyError(err)))
			return err
		}
		recorder.RecordPublished(msg.EventType())
		return nil
	}
}
