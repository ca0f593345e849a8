package domain

import (
	"time"

	"github.com/google/uuid"
)

// Represents a single completed distance computation.
// Lookups are appended to history for auditing and are never used
// to answer later requests.
type Lookup struct {
	ID         uuid.UUID
	From       Coordinates
	To         Coordinates
	Result     DistanceResult
	ComputedAt time.Time
}

func NewLookup(from, to Coordinates, result DistanceResult, at time.Time) Lookup {
	return Lookup{
		ID:         uuid.New(),
		From:       from,
		To:         to,
		Result:     result,
		ComputedAt: at,
	}
}
