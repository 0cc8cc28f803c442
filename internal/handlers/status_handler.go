package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scribo/internal/services/status"
)

// StatusHandler exposes content stats
type StatusHandler struct {
	statusService *status.Service
	logger        arbor.ILogger
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(statusService *status.Service, logger arbor.ILogger) *StatusHandler {
	return &StatusHandler{
		statusService: statusService,
		logger:        logger,
	}
}

// GetStatsHandler handles GET /api/stats
func (h *StatusHandler) GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	stats, err := h.statusService.Stats(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to collect stats")
		WriteError(w, http.StatusInternalServerError, "Failed to collect stats")
		return
	}

	WriteJSON(w, http.StatusOK, stats)
}
