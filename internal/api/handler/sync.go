package handler

import (
	"net/http"

	"github.com/Rrens/autocatalog/internal/api/response"
	"github.com/Rrens/autocatalog/internal/service"
	"github.com/rs/zerolog/log"
)

// SyncHandler triggers a reference data sync on demand
type SyncHandler struct {
	syncService *service.SyncService
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(syncService *service.SyncService) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// Trigger runs a full feed sync and reports how many records were applied
func (h *SyncHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	synced, err := h.syncService.Run(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("On-demand sync failed")
		response.InternalError(w, "sync failed")
		return
	}

	response.OK(w, map[string]int{"synced": synced})
}
