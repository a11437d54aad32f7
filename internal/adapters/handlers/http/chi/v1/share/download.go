package share

import (
	"errors"
	"net/http"

	"linkdrop/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

// V1DownloadFile is one downloadable file entry
type V1DownloadFile struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// V1DownloadResponse is the response to a download request
type V1DownloadResponse struct {
	Files []V1DownloadFile `json:"files"`
}

// DownloadV1 resolves the session's files to per-file download URLs
func (h *HandlerV1) DownloadV1(w http.ResponseWriter, r *http.Request) {

	sessionID := chi.URLParam(r, "sessionID")

	links, err := h.shareService.HandleDownload(r.Context(), sessionID)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		h.respondJSON(w, http.StatusNotFound, V1MessageResponse{Message: "Invalid session"})
		return
	case errors.Is(err, domain.ErrNoFilesAvailable):
		h.respondJSON(w, http.StatusNotFound, V1MessageResponse{Message: "No files available for download"})
		return
	case err != nil:
		h.logger.Error("error handling download", "session_id", sessionID, "error", err)
		h.respondJSON(w, http.StatusInternalServerError, V1ErrorResponse{Message: "Error processing download", Error: err.Error()})
		return
	}

	files := make([]V1DownloadFile, 0, len(links))
	for _, link := range links {
		files = append(files, V1DownloadFile{URL: link.URL, Filename: link.Filename})
	}

	h.respondJSON(w, http.StatusOK, V1DownloadResponse{Files: files})
}
