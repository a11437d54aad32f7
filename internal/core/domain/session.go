package domain

import "time"

// StoredObjectRef identifies one uploaded file inside the object store.
// It is immutable and owned by exactly one session.
type StoredObjectRef struct {
	PublicID string `json:"public_id"`
	Filename string `json:"filename"`
	Format   string `json:"format"`
}

// Session binds a shareable identifier to the files uploaded in one batch.
// A session is immutable after creation except for deletion.
type Session struct {
	ID        string
	Files     []StoredObjectRef
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session passed its time-to-live at the given instant.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// FileUpload is one raw file payload received from the uploader.
type FileUpload struct {
	Name string
	Data []byte
}

// UploadReceipt is the outcome of one upload batch. Files holds the
// successfully stored objects in input order; Failed holds the original
// names of files that could not be stored.
type UploadReceipt struct {
	SessionID string
	Files     []StoredObjectRef
	Failed    []string
}

// DownloadLink is one resolved per-file download URL.
type DownloadLink struct {
	URL      string
	Filename string
}
