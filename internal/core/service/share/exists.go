package share

import (
	"context"
	"errors"

	"linkdrop/internal/core/domain"
)

// SessionExists reports whether the session is still reachable. TTL
// expiry and explicit deletion are indistinguishable here. No side
// effects.
func (s *shareService) SessionExists(ctx context.Context, sessionID string) (bool, error) {

	_, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
