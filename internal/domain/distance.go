package domain

import "fmt"

// Earth radii used by the Haversine calculation. The mile radius is an
// independent constant, not a conversion of the kilometer radius.
const (
	EarthRadiusKm = 6371.009
	EarthRadiusMi = 3958.761
)

// Represents the same great-circle distance in two units.
// Both values are non-negative and derived from a single central angle.
type DistanceResult struct {
	Kilometers float64
	Miles      float64
}

func (r DistanceResult) String() string {
	return fmt.Sprintf("Great Circle Distance: %.6f km (%.6f miles)", r.Kilometers, r.Miles)
}
