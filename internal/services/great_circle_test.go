package services

import (
	"errors"
	"fmt"
	"great-circle-service/internal/domain"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRadians(t *testing.T) {
	assert.Equal(t, 0.0, ToRadians(0))
	assert.InDelta(t, math.Pi, ToRadians(180), 1e-15)
	assert.InDelta(t, -math.Pi/2, ToRadians(-90), 1e-15)
}

func TestGreatCircleDistanceNewYorkLondon(t *testing.T) {
	r := GreatCircleDistance(40.7128, -74.0060, 51.5074, -0.1278)

	assert.Equal(t, "5570.230049", fmt.Sprintf("%.6f", r.Kilometers))
	assert.Equal(t, "3461.180086", fmt.Sprintf("%.6f", r.Miles))
	assert.Equal(t, "Great Circle Distance: 5570.230049 km (3461.180086 miles)", r.String())
}

func TestGreatCircleDistanceQuarterCircumference(t *testing.T) {
	r := GreatCircleDistance(0, 0, 0, 90)

	assert.InDelta(t, domain.EarthRadiusKm*math.Pi/2, r.Kilometers, 1e-6)
	assert.InDelta(t, domain.EarthRadiusMi*math.Pi/2, r.Miles, 1e-6)
}

func TestGreatCircleDistanceAntipodes(t *testing.T) {
	r := GreatCircleDistance(90, 0, -90, 0)
	assert.InDelta(t, domain.EarthRadiusKm*math.Pi, r.Kilometers, 1e-6)

	r = GreatCircleDistance(0, -180, 0, 0)
	assert.InDelta(t, domain.EarthRadiusKm*math.Pi, r.Kilometers, 1e-6)
}

func TestGreatCircleDistanceProperties(t *testing.T) {
	points := []domain.Coordinates{
		{Lat: 0, Lon: 0},
		{Lat: 40.7128, Lon: -74.0060},
		{Lat: 51.5074, Lon: -0.1278},
		{Lat: -33.8688, Lon: 151.2093},
		{Lat: 90, Lon: 180},
		{Lat: -90, Lon: -180},
		{Lat: 35.6762, Lon: 139.6503},
	}

	wantRatio := domain.EarthRadiusMi / domain.EarthRadiusKm

	for _, a := range points {
		t.Run(fmt.Sprintf("identity %v", a), func(t *testing.T) {
			r := GreatCircleDistance(a.Lat, a.Lon, a.Lat, a.Lon)
			assert.InDelta(t, 0, r.Kilometers, 1e-9)
			assert.InDelta(t, 0, r.Miles, 1e-9)
		})

		for _, b := range points {
			ab := GreatCircleDistance(a.Lat, a.Lon, b.Lat, b.Lon)
			ba := GreatCircleDistance(b.Lat, b.Lon, a.Lat, a.Lon)

			assert.GreaterOrEqual(t, ab.Kilometers, 0.0)
			assert.GreaterOrEqual(t, ab.Miles, 0.0)
			assert.InDelta(t, ab.Kilometers, ba.Kilometers, 1e-6, "symmetry %v <-> %v", a, b)
			assert.InDelta(t, ab.Miles, ba.Miles, 1e-6, "symmetry %v <-> %v", a, b)

			if ab.Kilometers > 1e-6 {
				assert.InDelta(t, wantRatio, ab.Miles/ab.Kilometers, 1e-9)
			}
		}
	}
}

func TestComputeDistance(t *testing.T) {
	from := domain.Coordinates{Lat: 40.7128, Lon: -74.0060}
	to := domain.Coordinates{Lat: 51.5074, Lon: -0.1278}

	r, err := ComputeDistance(from, to)
	require.NoError(t, err)
	assert.Equal(t, GreatCircleDistance(from.Lat, from.Lon, to.Lat, to.Lon), r)
}

func TestComputeDistanceRejectsInvalidInput(t *testing.T) {
	r, err := ComputeDistance(domain.Coordinates{Lat: 91, Lon: 0}, domain.Coordinates{Lat: 0, Lon: 0})
	require.Error(t, err)
	assert.Equal(t, domain.DistanceResult{}, r)

	var rangeErr *domain.RangeValidationError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, domain.FirstLatitude, rangeErr.Field)
	assert.Equal(t, 91.0, rangeErr.Value)
}
