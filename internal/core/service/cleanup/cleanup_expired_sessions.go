package cleanup

import (
	"context"
	"time"

	"linkdrop/internal/core/domain"
)

// CleanupExpiredSessions finds sessions past their TTL and removes
// their stored objects and records. Reads already hide expired rows, so
// this sweep only reclaims storage; a failure on one session never
// blocks the others.
func (c *cleanupService) CleanupExpiredSessions(ctx context.Context, now time.Time) error {

	sessions, err := c.sessions.FindAllExpired(ctx, now)
	if err != nil {
		return err
	}

	for _, session := range sessions {

		for _, ref := range session.Files {
			if deleteErr := c.storage.Delete(ctx, ref); deleteErr != nil {
				c.logger.Warn("failed to delete stored object",
					"session_id", session.ID,
					"public_id", ref.PublicID,
					"error", deleteErr)
			}
		}

		if deleteErr := c.sessions.Delete(ctx, session.ID); deleteErr != nil {
			c.logger.Error("failed to delete expired session", "session_id", session.ID, "error", deleteErr)
			continue
		}

		if c.events != nil {
			event := domain.SessionEvent{
				Type:       domain.SessionEventExpired,
				SessionID:  session.ID,
				FileCount:  len(session.Files),
				OccurredAt: now,
			}
			if publishErr := c.events.Publish(ctx, event); publishErr != nil {
				c.logger.Error("failed to publish session event", "session_id", session.ID, "error", publishErr)
			}
		}
	}

	c.logger.Info("expired sessions cleanup completed", "count", len(sessions))
	return nil
}
