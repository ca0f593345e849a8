package handlers

import (
	"great-circle-service/internal/api/dto"
	"great-circle-service/internal/ports"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
)

const (
	defaultLookupLimit = 20
	maxLookupLimit     = 100
)

// LookupHandler exposes read-only access to the lookup history.
type LookupHandler struct {
	History ports.LookupRecorder
}

func (h *LookupHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit := defaultLookupLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLookupLimit {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	lookups, err := h.History.ListRecent(r.Context(), limit)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("list lookups failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListLookupsResponse{
		Lookups: make([]dto.LookupResponse, 0, len(lookups)),
	}
	for _, l := range lookups {
		res.Lookups = append(res.Lookups, dto.LookupResponse{
			ID:         l.ID.String(),
			From:       dto.CoordinatesResponse{Lat: l.From.Lat, Lon: l.From.Lon},
			To:         dto.CoordinatesResponse{Lat: l.To.Lat, Lon: l.To.Lon},
			Kilometers: l.Result.Kilometers,
			Miles:      l.Result.Miles,
			ComputedAt: l.ComputedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
