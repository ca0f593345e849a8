package ports

import (
	"context"
	"great-circle-service/internal/domain"
)

// Port: append-only history of completed distance lookups.
type LookupRecorder interface {
	// Persist a completed lookup.
	Record(ctx context.Context, lookup domain.Lookup) error
	// Return at most limit lookups, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.Lookup, error)
}
