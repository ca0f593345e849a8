package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema backing SQLLookupLog.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLookupsQuery := `
	CREATE TABLE IF NOT EXISTS distance_lookups (
		id UUID PRIMARY KEY,
		from_lat DOUBLE PRECISION NOT NULL,
		from_lon DOUBLE PRECISION NOT NULL,
		to_lat DOUBLE PRECISION NOT NULL,
		to_lon DOUBLE PRECISION NOT NULL,
		distance_km DOUBLE PRECISION NOT NULL,
		distance_mi DOUBLE PRECISION NOT NULL,
		computed_at TIMESTAMPTZ NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_distance_lookups_computed_at
	ON distance_lookups(computed_at DESC);
	`

	statements := []string{
		createLookupsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
