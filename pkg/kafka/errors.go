package kafka

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/segmentio/kafka-go"
)

var (
	ErrProducerClosed = errors.New("kafka producer is closed")
	ErrInvalidMessage = errors.New("invalid message")
	ErrEmptyKey       = errors.New("message key cannot be empty")
	ErrEmptyValue     = errors.New("message value cannot be empty")
)

// ErrorClass tells a caller whether a failed publish is worth retrying.
type ErrorClass string

const (
	ClassTransient ErrorClass = "transient"
	ClassPermanent ErrorClass = "permanent"
)

// ClassifyError buckets a publish error. Validation failures and closed
// producers are permanent; network, timeout and retriable broker errors are
// transient.
func ClassifyError(err error) ErrorClass {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrProducerClosed),
		errors.Is(err, ErrInvalidMessage),
		errors.Is(err, ErrEmptyKey),
		errors.Is(err, ErrEmptyValue):
		return ClassPermanent
	case errors.Is(err, context.DeadlineExceeded):
		return ClassTransient
	}

	var kerr kafka.Error
	if errors.As(err, &kerr) {
		if kerr.Temporary() || kerr.Timeout() {
			return ClassTransient
		}
		return ClassPermanent
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ClassTransient
	}

	msg := strings.ToLower(err.Error())
	for _, hint := range []string{"connection refused", "connection reset", "broken pipe", "timeout", "unavailable"} {
		if strings.Contains(msg, hint) {
			return ClassTransient
		}
	}

	return ClassPermanent
}
