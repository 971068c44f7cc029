package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	_ "github.com/mtlprog/dailysales/docs" // Import generated docs
	"github.com/mtlprog/dailysales/internal/config"
	"github.com/mtlprog/dailysales/internal/handler/dto"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handler serves the status and health endpoints. It holds only immutable
// service identity, so it is safe for concurrent use.
type Handler struct {
	serviceName string
}

// New creates a new Handler for the configured service.
func New(cfg config.Config) *Handler {
	return &Handler{
		serviceName: cfg.ServiceName,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// "{$}" keeps the root pattern from matching every other path
	mux.HandleFunc("GET /{$}", h.handleRoot)

	// Health check
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// Swagger UI
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler())
}

// handleRoot reports that the service is running.
// @Summary Service status
// @Description Returns a fixed payload identifying the running service.
// @Tags system
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router / [get]
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.NewStatusResponse(h.serviceName))
}

// handleHealthz is the liveness probe. It never touches a downstream resource.
// @Summary Liveness probe
// @Description Returns 200 while the process can serve requests.
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.HealthResponse{OK: true})
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}
