package port

import (
	"context"
	"time"
)

// CleanupService is service that reaps expired sessions
type CleanupService interface {
	CleanupExpiredSessions(ctx context.Context, now time.Time) error
}
