package domain

import (
	"errors"
	"fmt"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrOutOfRange is matched by every RangeValidationError via errors.Is.
var ErrOutOfRange = errors.New("coordinate out of range")

// Field identifies which of the four input components failed validation.
type Field string

const (
	FirstLatitude   Field = "first_latitude"
	FirstLongitude  Field = "first_longitude"
	SecondLatitude  Field = "second_latitude"
	SecondLongitude Field = "second_longitude"
)

// Human-readable label, e.g. "first latitude".
func (f Field) Label() string {
	switch f {
	case FirstLatitude:
		return "first latitude"
	case FirstLongitude:
		return "first longitude"
	case SecondLatitude:
		return "second latitude"
	case SecondLongitude:
		return "second longitude"
	default:
		return string(f)
	}
}

// IsLatitude reports whether the field is bounded by the latitude range.
func (f Field) IsLatitude() bool {
	return f == FirstLatitude || f == SecondLatitude
}

// RangeValidationError is raised when a coordinate component is outside its legal range.
type RangeValidationError struct {
	Field Field
	Value float64
}

func (e *RangeValidationError) Error() string {
	lo, hi := MinLongitude, MaxLongitude
	if e.Field.IsLatitude() {
		lo, hi = MinLatitude, MaxLatitude
	}
	return fmt.Sprintf("invalid %s: %g (must be between %g and %g degrees)", e.Field.Label(), e.Value, lo, hi)
}

func (e *RangeValidationError) Is(target error) bool {
	return target == ErrOutOfRange
}

// IsValidLatitude reports whether v lies in [-90, 90]. NaN is never valid.
func IsValidLatitude(v float64) bool {
	return v >= MinLatitude && v <= MaxLatitude
}

// IsValidLongitude reports whether v lies in [-180, 180]. NaN is never valid.
func IsValidLongitude(v float64) bool {
	return v >= MinLongitude && v <= MaxLongitude
}

// ValidateComponent checks a single value against the range that applies to field.
func ValidateComponent(field Field, v float64) error {
	ok := IsValidLongitude(v)
	if field.IsLatitude() {
		ok = IsValidLatitude(v)
	}
	if !ok {
		return &RangeValidationError{Field: field, Value: v}
	}
	return nil
}

// ValidatePair checks both coordinates in input order and returns the first failure.
func ValidatePair(from, to Coordinates) error {
	checks := []struct {
		field Field
		value float64
	}{
		{FirstLatitude, from.Lat},
		{FirstLongitude, from.Lon},
		{SecondLatitude, to.Lat},
		{SecondLongitude, to.Lon},
	}

	for _, c := range checks {
		if err := ValidateComponent(c.field, c.value); err != nil {
			return err
		}
	}

	return nil
}
