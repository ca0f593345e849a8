package services

import (
	"fmt"
	"great-circle-service/internal/domain"
	"math"
)

// ToRadians converts decimal degrees to radians.
func ToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// GreatCircleDistance computes the Haversine distance between two points
// given in decimal degrees.
//
// Inputs are not range-checked; callers validate first (see ComputeDistance).
// The result is symmetric in its endpoints and zero for identical points.
func GreatCircleDistance(lat1, lon1, lat2, lon2 float64) domain.DistanceResult {
	lat1 = ToRadians(lat1)
	lon1 = ToRadians(lon1)
	lat2 = ToRadians(lat2)
	lon2 = ToRadians(lon2)

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return domain.DistanceResult{
		Kilometers: domain.EarthRadiusKm * c,
		Miles:      domain.EarthRadiusMi * c,
	}
}

// ComputeDistance validates both coordinates and, only if they are in range,
// returns the great-circle distance between them.
func ComputeDistance(from, to domain.Coordinates) (domain.DistanceResult, error) {
	if err := domain.ValidatePair(from, to); err != nil {
		return domain.DistanceResult{}, fmt.Errorf("compute distance: %w", err)
	}

	return GreatCircleDistance(from.Lat, from.Lon, to.Lat, to.Lon), nil
}
