package port

import (
	"context"

	"linkdrop/internal/core/domain"
)

// PersistFunc is the deferred persistence step of an upload batch. The
// transport layer decides whether to await it or detach it, but it must
// be run exactly once and its error must not be dropped silently.
type PersistFunc func(ctx context.Context) error

// ShareService is an interface to define the session lifecycle service
type ShareService interface {
	// HandleUpload stores the given files and prepares a session
	// referencing the successes. The receipt is complete before the
	// session record is written; the returned PersistFunc performs that
	// write.
	HandleUpload(ctx context.Context, files []domain.FileUpload) (*domain.UploadReceipt, PersistFunc, error)
	// HandleDownload resolves every file of the session to a fetchable
	// URL, in stored order.
	HandleDownload(ctx context.Context, sessionID string) ([]domain.DownloadLink, error)
	// CompleteSession deletes the stored objects and the session record.
	// It is idempotent: completing an absent session is a no-op.
	CompleteSession(ctx context.Context, sessionID string) error
	// SessionExists reports whether the session is still reachable.
	SessionExists(ctx context.Context, sessionID string) (bool, error)
}
