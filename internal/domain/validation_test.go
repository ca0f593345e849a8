package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidLatitude(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  bool
	}{
		{"equator", 0, true},
		{"south pole", -90.0, true},
		{"north pole", 90.0, true},
		{"new york", 40.7128, true},
		{"just below range", -90.0000001, false},
		{"just above range", 90.0000001, false},
		{"far out", 91, false},
		{"nan", math.NaN(), false},
		{"positive infinity", math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidLatitude(tt.value))
		})
	}
}

func TestIsValidLongitude(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  bool
	}{
		{"prime meridian", 0, true},
		{"antimeridian west", -180.0, true},
		{"antimeridian east", 180.0, true},
		{"just below range", -180.0000001, false},
		{"just above range", 180.0000001, false},
		{"latitude range is not enforced", 120, true},
		{"nan", math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidLongitude(tt.value))
		})
	}
}

func TestValidatePair(t *testing.T) {
	valid := Coordinates{Lat: 10, Lon: 20}

	tests := []struct {
		name      string
		from, to  Coordinates
		wantField Field
	}{
		{"first latitude", Coordinates{Lat: 91, Lon: 0}, valid, FirstLatitude},
		{"first longitude", Coordinates{Lat: 0, Lon: -181}, valid, FirstLongitude},
		{"second latitude", valid, Coordinates{Lat: -90.5, Lon: 0}, SecondLatitude},
		{"second longitude", valid, Coordinates{Lat: 0, Lon: 180.1}, SecondLongitude},
		{"first failure wins", Coordinates{Lat: 91, Lon: 500}, Coordinates{Lat: 91, Lon: 500}, FirstLatitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePair(tt.from, tt.to)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrOutOfRange))

			var rangeErr *RangeValidationError
			require.True(t, errors.As(err, &rangeErr))
			assert.Equal(t, tt.wantField, rangeErr.Field)
		})
	}

	assert.NoError(t, ValidatePair(valid, Coordinates{Lat: -90, Lon: 180}))
}

func TestRangeValidationErrorMessage(t *testing.T) {
	err := &RangeValidationError{Field: FirstLatitude, Value: 91}
	assert.Equal(t, "invalid first latitude: 91 (must be between -90 and 90 degrees)", err.Error())

	err = &RangeValidationError{Field: SecondLongitude, Value: -200}
	assert.Equal(t, "invalid second longitude: -200 (must be between -180 and 180 degrees)", err.Error())
}

func TestDistanceResultString(t *testing.T) {
	r := DistanceResult{Kilometers: 5570.230049, Miles: 3461.180086}
	assert.Equal(t, "Great Circle Distance: 5570.230049 km (3461.180086 miles)", r.String())
}
