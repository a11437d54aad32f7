package share

import (
	"context"
	"log/slog"
	"time"

	"linkdrop/internal/config"
	"linkdrop/internal/core/domain"
	"linkdrop/internal/core/port"
)

type shareService struct {
	storage  port.ObjectStorage
	sessions port.SessionRepository
	events   port.EventPublisher
	cfg      config.ShareConfig
	logger   *slog.Logger
}

// NewShareService creates a new share service. The event publisher may
// be nil, in which case lifecycle events are skipped.
func NewShareService(sessions port.SessionRepository, storage port.ObjectStorage, events port.EventPublisher, cfg config.ShareConfig, logger *slog.Logger) port.ShareService {
	return &shareService{
		storage:  storage,
		sessions: sessions,
		events:   events,
		cfg:      cfg,
		logger:   logger,
	}
}

// publish emits a lifecycle event; failures are logged, never surfaced.
func (s *shareService) publish(ctx context.Context, eventType domain.SessionEventType, sessionID string, fileCount int) {
	if s.events == nil {
		return
	}

	event := domain.SessionEvent{
		Type:       eventType,
		SessionID:  sessionID,
		FileCount:  fileCount,
		OccurredAt: time.Now(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish session event", "type", eventType, "session_id", sessionID, "error", err)
	}
}
