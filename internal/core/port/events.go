package port

import (
	"context"

	"linkdrop/internal/core/domain"
)

// EventPublisher is an interface to define a session lifecycle event publisher (nats, kafka, ...)
type EventPublisher interface {
	Publish(ctx context.Context, event domain.SessionEvent) error
	Close() error
}
