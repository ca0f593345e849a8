package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"great-circle-service/internal/domain"
	"great-circle-service/internal/platform/obs"
)

// SQLLookupLog is a Postgres-backed, append-only lookup history.
type SQLLookupLog struct {
	DB *sql.DB
}

func NewSQLLookupLog(db *sql.DB) *SQLLookupLog {
	return &SQLLookupLog{DB: db}
}

// Store a single completed lookup.
func (s *SQLLookupLog) Record(ctx context.Context, l domain.Lookup) (err error) {
	defer obs.Time(ctx, "history.sql.Record")(&err)

	if s.DB == nil {
		return errors.New("lookup log: db is nil")
	}

	q := `
	INSERT INTO distance_lookups (
		id, from_lat, from_lon, to_lat, to_lon, distance_km, distance_mi, computed_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO NOTHING;
	`

	_, err = s.DB.ExecContext(ctx, q,
		l.ID,
		l.From.Lat, l.From.Lon,
		l.To.Lat, l.To.Lon,
		l.Result.Kilometers, l.Result.Miles,
		l.ComputedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("record lookup id=%s: %w", l.ID, err)
	}

	return nil
}

// Fetch the most recent lookups, newest first.
func (s *SQLLookupLog) ListRecent(ctx context.Context, limit int) (_ []domain.Lookup, err error) {
	defer obs.Time(ctx, "history.sql.ListRecent")(&err)

	if s.DB == nil {
		return nil, errors.New("lookup log: db is nil")
	}

	if limit <= 0 {
		return []domain.Lookup{}, nil
	}

	q := `
	SELECT id, from_lat, from_lon, to_lat, to_lon, distance_km, distance_mi, computed_at
	FROM distance_lookups
	ORDER BY computed_at DESC
	LIMIT $1;
	`

	rows, err := s.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list lookups: query distance_lookups table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Lookup, 0, limit)
	for rows.Next() {
		var l domain.Lookup
		if err := rows.Scan(
			&l.ID,
			&l.From.Lat, &l.From.Lon,
			&l.To.Lat, &l.To.Lon,
			&l.Result.Kilometers, &l.Result.Miles,
			&l.ComputedAt,
		); err != nil {
			return nil, fmt.Errorf("list lookups: scan rows: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list lookups: row iteration: %w", err)
	}

	return out, nil
}
