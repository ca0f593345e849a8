package dto

import "time"

type CoordinatesRequest struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type DistanceRequest struct {
	From CoordinatesRequest `json:"from"`
	To   CoordinatesRequest `json:"to"`
}

type DistanceResponse struct {
	Kilometers float64 `json:"kilometers"`
	Miles      float64 `json:"miles"`
	Formatted  string  `json:"formatted"`
}

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type LookupResponse struct {
	ID         string              `json:"id"`
	From       CoordinatesResponse `json:"from"`
	To         CoordinatesResponse `json:"to"`
	Kilometers float64             `json:"kilometers"`
	Miles      float64             `json:"miles"`
	ComputedAt time.Time           `json:"computed_at"`
}

type ListLookupsResponse struct {
	Lookups []LookupResponse `json:"lookups"`
}

type ValidationErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	History string `json:"history,omitempty"`
}
