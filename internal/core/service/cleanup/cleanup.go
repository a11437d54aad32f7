package cleanup

import (
	"log/slog"

	"linkdrop/internal/core/port"
)

type cleanupService struct {
	sessions port.SessionRepository
	storage  port.ObjectStorage
	events   port.EventPublisher
	logger   *slog.Logger
}

// NewCleanupService creates a new cleanup service. The event publisher
// may be nil.
func NewCleanupService(sessions port.SessionRepository, storage port.ObjectStorage, events port.EventPublisher, logger *slog.Logger) port.CleanupService {
	return &cleanupService{
		sessions: sessions,
		storage:  storage,
		events:   events,
		logger:   logger,
	}
}
