package handlers

import (
	"great-circle-service/internal/api/dto"
	"great-circle-service/internal/ports"
	"net/http"

	"github.com/rs/zerolog"
)

// HealthHandler reports liveness and whether lookup history is reachable.
// An unreachable store reports "degraded" with status 200.
type HealthHandler struct {
	History ports.LookupRecorder
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := dto.HealthResponse{Status: "ok"}
	if h.History != nil {
		if _, err := h.History.ListRecent(r.Context(), 1); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("health: lookup history unreachable")
			res = dto.HealthResponse{Status: "degraded", History: "unavailable"}
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}
