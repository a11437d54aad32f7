package share

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"linkdrop/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 share routes
type HandlerV1 struct {
	shareService   port.ShareService
	logger         *slog.Logger
	publicBaseURL  string
	maxRequestSize int64
}

// NewShareHandlerV1 creates HandlerV1
func NewShareHandlerV1(service port.ShareService, logger *slog.Logger, publicBaseURL string, maxRequestSize int64) *HandlerV1 {
	return &HandlerV1{
		shareService:   service,
		logger:         logger,
		publicBaseURL:  strings.TrimSuffix(publicBaseURL, "/"),
		maxRequestSize: maxRequestSize,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/upload", h.UploadV1)
	router.Get("/download/{sessionID}", h.DownloadV1)
	router.Delete("/delete/{sessionID}", h.DeleteV1)
	router.Get("/session/{sessionID}", h.SessionV1)

	return router
}

// V1MessageResponse is a generic message body
type V1MessageResponse struct {
	Message string `json:"message"`
}

// V1ErrorResponse carries a message plus the underlying error text
type V1ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (h *HandlerV1) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
