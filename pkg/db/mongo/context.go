// Package mongo holds helpers shared by the Mongo-backed repositories.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WithTimeout bounds a store call by timeout, never extending a deadline the
// caller already set.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// ObjectID parses a hex id, wrapping invalidErr on failure so callers can
// match their own domain sentinel.
func ObjectID(id string, invalidErr error) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s", invalidErr, id)
	}
	return oid, nil
}
