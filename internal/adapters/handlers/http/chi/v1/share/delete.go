package share

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DeleteV1 removes the session's stored objects and record. The call is
// idempotent; an already-gone session gets the same success response.
func (h *HandlerV1) DeleteV1(w http.ResponseWriter, r *http.Request) {

	sessionID := chi.URLParam(r, "sessionID")

	if err := h.shareService.CompleteSession(r.Context(), sessionID); err != nil {
		h.logger.Error("error completing session", "session_id", sessionID, "error", err)
		h.respondJSON(w, http.StatusInternalServerError, V1ErrorResponse{Message: "Error deleting files", Error: err.Error()})
		return
	}

	h.respondJSON(w, http.StatusOK, V1MessageResponse{Message: "Files deleted successfully"})
}
