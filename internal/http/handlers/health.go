package handlers

import (
	"net/http"
	"time"

	"github.com/hongminglow/accounts-be/internal/http/respond"
)

const rootBanner = "Backend API is running 🚀"

// HealthHandler returns uptime and basic status.
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler creates a health endpoint handler.
func NewHealthHandler(startedAt time.Time) *HealthHandler {
	return &HealthHandler{startedAt: startedAt}
}

// Register wires the liveness banner and /health into a ServeMux.
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleRoot)
	mux.HandleFunc("GET /health", h.handle)
}

func (h *HealthHandler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	respond.Text(w, http.StatusOK, rootBanner)
}

func (h *HealthHandler) handle(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"uptime": time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}
