package share

import (
	"context"
	"errors"

	"linkdrop/internal/core/domain"
)

// CompleteSession deletes the stored objects best-effort and then the
// session record regardless of per-object outcomes. Completing an
// already-deleted session is a successful no-op, so concurrent calls
// are safe without coordination.
func (s *shareService) CompleteSession(ctx context.Context, sessionID string) error {

	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil
		}
		return err
	}

	for _, ref := range session.Files {
		if deleteErr := s.storage.Delete(ctx, ref); deleteErr != nil {
			s.logger.Warn("failed to delete stored object",
				"session_id", sessionID,
				"public_id", ref.PublicID,
				"error", deleteErr)
		}
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}

	s.publish(ctx, domain.SessionEventCompleted, sessionID, len(session.Files))
	return nil
}
