package logger

import (
	"context"

	"github.com/google/uuid"
)

// WithOperation derives a child logger tagged with the operation name and a
// fresh op_id, attaches it to ctx and returns both. Everything logged through
// FromContext(ctx) afterwards can be correlated by op_id.
func (l *Logger) WithOperation(ctx context.Context, op string) (context.Context, *Logger) {
	child := &Logger{l.With().
		Str("op", op).
		Str("op_id", newOperationID()).
		Logger()}

	return child.WithContext(ctx), child
}

func newOperationID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
