package ports

import (
	"context"
	"great-circle-service/internal/domain"
)

// Contract for computing the surface distance between two coordinates.
type DistanceProvider interface {
	// Return the distance between origin and destination, or a
	// *domain.RangeValidationError when either point is out of range.
	GetDistance(ctx context.Context, origin, destination domain.Coordinates) (domain.DistanceResult, error)
}
