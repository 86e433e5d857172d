package handler

import (
	"net/http"

	"github.com/Rrens/autocatalog/internal/api/response"
	"github.com/Rrens/autocatalog/internal/repository/postgres"
	"github.com/rs/zerolog/log"
)

// HealthHandler reports process and dependency health
type HealthHandler struct {
	db *postgres.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *postgres.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health reports process liveness
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{"status": "ok"})
}

// Ready reports whether the database is reachable
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		log.Error().Err(err).Msg("Readiness check failed")
		response.JSON(w, http.StatusServiceUnavailable, response.ErrorResponse{Error: "database unavailable"})
		return
	}

	response.OK(w, map[string]string{"status": "ready"})
}
