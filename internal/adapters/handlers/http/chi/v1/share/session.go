package share

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SessionV1 is the liveness probe polled by clients; an expired session
// and a deleted one answer identically.
func (h *HandlerV1) SessionV1(w http.ResponseWriter, r *http.Request) {

	sessionID := chi.URLParam(r, "sessionID")

	exists, err := h.shareService.SessionExists(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("error checking session", "session_id", sessionID, "error", err)
		h.respondJSON(w, http.StatusInternalServerError, V1ErrorResponse{Message: "Error checking session", Error: err.Error()})
		return
	}

	if !exists {
		h.respondJSON(w, http.StatusNotFound, V1MessageResponse{Message: "Invalid session"})
		return
	}

	h.respondJSON(w, http.StatusOK, V1MessageResponse{Message: "Session found"})
}
