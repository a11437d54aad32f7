package share

import (
	"context"

	"linkdrop/internal/core/domain"
)

// HandleDownload resolves every file of the session to a fetchable URL,
// in stored order. Individual resolution failures are skipped and
// logged; the call only fails when the session is gone or nothing
// resolves.
func (s *shareService) HandleDownload(ctx context.Context, sessionID string) ([]domain.DownloadLink, error) {

	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	links := make([]domain.DownloadLink, 0, len(session.Files))
	for _, ref := range session.Files {
		url, resolveErr := s.storage.ResolveURL(ctx, ref)
		if resolveErr != nil {
			s.logger.Warn("failed to resolve stored object",
				"session_id", sessionID,
				"public_id", ref.PublicID,
				"error", resolveErr)
			continue
		}
		links = append(links, domain.DownloadLink{URL: url, Filename: ref.Filename})
	}

	if len(links) == 0 {
		return nil, domain.ErrNoFilesAvailable
	}

	return links, nil
}
