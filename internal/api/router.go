package api

import (
	"great-circle-service/internal/api/handlers"
	"great-circle-service/internal/ports"
	"net/http"

	"github.com/rs/zerolog"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers stay unaware of concrete adapters.
func NewRouter(logger zerolog.Logger, provider ports.DistanceProvider, history ports.LookupRecorder) http.Handler {
	mux := http.NewServeMux()

	distanceHandler := &handlers.DistanceHandler{Provider: provider}
	lookupHandler := &handlers.LookupHandler{History: history}
	healthHandler := &handlers.HealthHandler{History: history}

	mux.HandleFunc("/health", healthHandler.Check)
	mux.HandleFunc("/distance", distanceHandler.Compute)
	mux.HandleFunc("/lookups", lookupHandler.List)

	return requestMiddleware(logger, mux)
}
