package port

import (
	"context"
	"time"

	"linkdrop/internal/core/domain"
)

// SessionRepository is an interface to interact with session records
type SessionRepository interface {
	Create(ctx context.Context, session domain.Session) error
	// FindByID returns domain.ErrSessionNotFound for absent AND expired
	// sessions; callers cannot tell the two apart.
	FindByID(ctx context.Context, id string) (*domain.Session, error)
	// Delete is idempotent; deleting an absent session is not an error.
	Delete(ctx context.Context, id string) error
	FindAllExpired(ctx context.Context, now time.Time) ([]domain.Session, error)
}
