package share

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"linkdrop/internal/core/domain"
	"linkdrop/internal/core/identity"
	"linkdrop/internal/core/port"
)

// HandleUpload stores every file of the batch concurrently and prepares
// a session referencing the successes. All uploads settle before the
// batch outcome is decided; a per-file failure never aborts its
// siblings. The returned PersistFunc writes the session record so the
// caller can answer the uploader without waiting on the database.
func (s *shareService) HandleUpload(ctx context.Context, files []domain.FileUpload) (*domain.UploadReceipt, port.PersistFunc, error) {

	if len(files) == 0 {
		return nil, nil, domain.ErrNoFilesProvided
	}

	type result struct {
		ref domain.StoredObjectRef
		err error
	}
	// one slot per input file keeps the file/reference association
	// deterministic regardless of completion order
	results := make([]result, len(files))

	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ref, err := s.uploadWithRetry(ctx, f)
			results[i] = result{ref: ref, err: err}
		}()
	}
	wg.Wait()

	receipt := &domain.UploadReceipt{}
	for i, r := range results {
		if r.err != nil {
			receipt.Failed = append(receipt.Failed, files[i].Name)
			continue
		}
		receipt.Files = append(receipt.Files, r.ref)
	}

	if len(receipt.Files) == 0 {
		return nil, nil, domain.ErrAllUploadsFailed
	}

	receipt.SessionID = identity.New()

	now := time.Now()
	session := domain.Session{
		ID:        receipt.SessionID,
		Files:     receipt.Files,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
	}

	persist := func(ctx context.Context) error {
		if err := s.sessions.Create(ctx, session); err != nil {
			return fmt.Errorf("failed to persist session %s: %w", session.ID, err)
		}
		s.publish(ctx, domain.SessionEventCreated, session.ID, len(session.Files))
		return nil
	}

	return receipt, persist, nil
}

// uploadWithRetry attempts a single file upload up to the configured
// attempt count, additionally capped by an elapsed-time budget so a
// slow store cannot stall the batch indefinitely. Empty payloads are
// terminal and never retried.
func (s *shareService) uploadWithRetry(ctx context.Context, f domain.FileUpload) (domain.StoredObjectRef, error) {

	deadline := time.Now().Add(s.cfg.UploadRetryMaxElapsed)

	var lastErr error
	for attempt := 1; attempt <= s.cfg.UploadMaxAttempts; attempt++ {
		ref, err := s.storage.Upload(ctx, f.Data, f.Name)
		if err == nil {
			return ref, nil
		}
		lastErr = err

		if errors.Is(err, domain.ErrEmptyFile) {
			return domain.StoredObjectRef{}, err
		}

		s.logger.Warn("upload attempt failed",
			"file", f.Name,
			"attempt", attempt,
			"error", err)

		if !time.Now().Before(deadline) {
			s.logger.Warn("upload retry budget exhausted", "file", f.Name)
			break
		}
	}

	return domain.StoredObjectRef{}, lastErr
}
