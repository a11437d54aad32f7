package share

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"linkdrop/internal/core/domain"
)

// V1UploadedFile describes one stored file in the upload response
type V1UploadedFile struct {
	PublicID string `json:"public_id"`
	Filename string `json:"filename"`
	Format   string `json:"format"`
}

// V1UploadResponse is the response to an upload batch
type V1UploadResponse struct {
	SessionID   string           `json:"sessionId"`
	RedirectURL string           `json:"redirectUrl"`
	Files       []V1UploadedFile `json:"files"`
	FailedFiles []string         `json:"failedFiles,omitempty"`
}

// UploadV1 accepts a multipart batch under the "files" field, answers
// with the session receipt, then runs the session persistence detached
// from the request.
func (h *HandlerV1) UploadV1(w http.ResponseWriter, r *http.Request) {

	if err := r.ParseMultipartForm(h.maxRequestSize); err != nil {
		h.logger.Error("error parsing multipart form", "error", err)
		h.respondJSON(w, http.StatusBadRequest, V1MessageResponse{Message: "No files uploaded"})
		return
	}

	var files []domain.FileUpload
	for _, header := range r.MultipartForm.File["files"] {
		part, err := header.Open()
		if err != nil {
			h.logger.Error("error opening multipart file", "filename", header.Filename, "error", err)
			h.respondJSON(w, http.StatusInternalServerError, V1ErrorResponse{Message: "Error processing files", Error: err.Error()})
			return
		}
		data, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			h.logger.Error("error reading multipart file", "filename", header.Filename, "error", err)
			h.respondJSON(w, http.StatusInternalServerError, V1ErrorResponse{Message: "Error processing files", Error: err.Error()})
			return
		}
		files = append(files, domain.FileUpload{Name: header.Filename, Data: data})
	}

	receipt, persist, err := h.shareService.HandleUpload(r.Context(), files)
	switch {
	case errors.Is(err, domain.ErrNoFilesProvided):
		h.respondJSON(w, http.StatusBadRequest, V1MessageResponse{Message: "No files uploaded"})
		return
	case errors.Is(err, domain.ErrAllUploadsFailed):
		h.respondJSON(w, http.StatusBadRequest, V1MessageResponse{Message: "All uploads failed"})
		return
	case err != nil:
		h.logger.Error("error handling upload", "error", err)
		h.respondJSON(w, http.StatusInternalServerError, V1ErrorResponse{Message: "Error processing files", Error: err.Error()})
		return
	}

	respFiles := make([]V1UploadedFile, 0, len(receipt.Files))
	for _, f := range receipt.Files {
		respFiles = append(respFiles, V1UploadedFile{
			PublicID: f.PublicID,
			Filename: f.Filename,
			Format:   f.Format,
		})
	}

	resp := V1UploadResponse{
		SessionID:   receipt.SessionID,
		RedirectURL: fmt.Sprintf("%s/download/%s", h.publicBaseURL, receipt.SessionID),
		Files:       respFiles,
		FailedFiles: receipt.Failed,
	}
	h.respondJSON(w, http.StatusOK, resp)

	// the receipt is already on the wire; the session write happens
	// detached, observed exactly once with logged-on-failure semantics
	go func() {
		persistCtx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), 10*time.Second)
		defer cancel()
		if persistErr := persist(persistCtx); persistErr != nil {
			h.logger.Error("error persisting session", "session_id", receipt.SessionID, "error", persistErr)
		}
	}()
}
