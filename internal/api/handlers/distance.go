package handlers

import (
	"encoding/json"
	"errors"
	"great-circle-service/internal/api/dto"
	"great-circle-service/internal/domain"
	"great-circle-service/internal/ports"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// DistanceHandler exposes great-circle distance computation over HTTP.
type DistanceHandler struct {
	Provider ports.DistanceProvider
}

// Compute accepts either GET with lat1/lon1/lat2/lon2 query parameters or
// POST with a JSON body, and returns the distance in kilometers and miles.
func (h *DistanceHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var (
		from, to domain.Coordinates
		ok       bool
	)

	switch r.Method {
	case http.MethodGet:
		from, to, ok = parseQuery(w, r)
	case http.MethodPost:
		from, to, ok = parseBody(w, r)
	default:
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !ok {
		return
	}

	result, err := h.Provider.GetDistance(r.Context(), from, to)
	if err != nil {
		var rangeErr *domain.RangeValidationError
		if errors.As(err, &rangeErr) {
			writeJSON(w, r, http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
				Error: rangeErr.Error(),
				Field: string(rangeErr.Field),
			})
			return
		}

		zerolog.Ctx(r.Context()).Error().Err(err).Msg("compute distance failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DistanceResponse{
		Kilometers: result.Kilometers,
		Miles:      result.Miles,
		Formatted:  result.String(),
	})
}

func parseQuery(w http.ResponseWriter, r *http.Request) (domain.Coordinates, domain.Coordinates, bool) {
	q := r.URL.Query()
	names := [4]string{"lat1", "lon1", "lat2", "lon2"}

	var vals [4]float64
	for i, name := range names {
		raw := strings.TrimSpace(q.Get(name))
		if raw == "" {
			writeError(w, r, http.StatusBadRequest, name+" is required")
			return domain.Coordinates{}, domain.Coordinates{}, false
		}

		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, name+" must be a number")
			return domain.Coordinates{}, domain.Coordinates{}, false
		}
		vals[i] = v
	}

	return domain.Coordinates{Lat: vals[0], Lon: vals[1]},
		domain.Coordinates{Lat: vals[2], Lon: vals[3]},
		true
}

func parseBody(w http.ResponseWriter, r *http.Request) (domain.Coordinates, domain.Coordinates, bool) {
	var req dto.DistanceRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return domain.Coordinates{}, domain.Coordinates{}, false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return domain.Coordinates{}, domain.Coordinates{}, false
	}

	fields := []struct {
		name string
		v    *float64
	}{
		{"from.lat", req.From.Lat},
		{"from.lon", req.From.Lon},
		{"to.lat", req.To.Lat},
		{"to.lon", req.To.Lon},
	}
	for _, f := range fields {
		if f.v == nil {
			writeError(w, r, http.StatusBadRequest, f.name+" is required")
			return domain.Coordinates{}, domain.Coordinates{}, false
		}
	}

	return domain.Coordinates{Lat: *req.From.Lat, Lon: *req.From.Lon},
		domain.Coordinates{Lat: *req.To.Lat, Lon: *req.To.Lon},
		true
}
