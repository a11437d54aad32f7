package port

import (
	"context"

	"linkdrop/internal/core/domain"
)

// ObjectStorage is an interface to define object store interactions
type ObjectStorage interface {
	// Upload stores a raw payload and returns its reference. Empty
	// payloads are rejected with domain.ErrEmptyFile without contacting
	// the store.
	Upload(ctx context.Context, payload []byte, originalName string) (domain.StoredObjectRef, error)
	// ResolveURL re-resolves a stored reference to a currently fetchable
	// URL. Missing objects map to domain.ErrObjectNotFound.
	ResolveURL(ctx context.Context, ref domain.StoredObjectRef) (string, error)
	// Delete removes the stored object. Deleting an absent object is not
	// an error.
	Delete(ctx context.Context, ref domain.StoredObjectRef) error
}
