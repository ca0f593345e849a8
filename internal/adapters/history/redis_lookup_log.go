package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"great-circle-service/internal/domain"
	"great-circle-service/internal/platform/obs"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const DefaultRedisKey = "greatcircle:lookups"

// RedisLookupLog keeps the newest MaxEntries lookups in a Redis list.
type RedisLookupLog struct {
	Client     *redis.Client
	Key        string
	MaxEntries int
}

func NewRedisLookupLog(client *redis.Client, maxEntries int) *RedisLookupLog {
	return &RedisLookupLog{
		Client:     client,
		Key:        DefaultRedisKey,
		MaxEntries: maxEntries,
	}
}

type lookupRecord struct {
	ID         uuid.UUID `json:"id"`
	FromLat    float64   `json:"from_lat"`
	FromLon    float64   `json:"from_lon"`
	ToLat      float64   `json:"to_lat"`
	ToLon      float64   `json:"to_lon"`
	DistanceKm float64   `json:"distance_km"`
	DistanceMi float64   `json:"distance_mi"`
	ComputedAt time.Time `json:"computed_at"`
}

func toRecord(l domain.Lookup) lookupRecord {
	return lookupRecord{
		ID:         l.ID,
		FromLat:    l.From.Lat,
		FromLon:    l.From.Lon,
		ToLat:      l.To.Lat,
		ToLon:      l.To.Lon,
		DistanceKm: l.Result.Kilometers,
		DistanceMi: l.Result.Miles,
		ComputedAt: l.ComputedAt.UTC(),
	}
}

func (r lookupRecord) toDomain() domain.Lookup {
	return domain.Lookup{
		ID:         r.ID,
		From:       domain.Coordinates{Lat: r.FromLat, Lon: r.FromLon},
		To:         domain.Coordinates{Lat: r.ToLat, Lon: r.ToLon},
		Result:     domain.DistanceResult{Kilometers: r.DistanceKm, Miles: r.DistanceMi},
		ComputedAt: r.ComputedAt,
	}
}

func (s *RedisLookupLog) Record(ctx context.Context, l domain.Lookup) (err error) {
	defer obs.Time(ctx, "history.redis.Record")(&err)

	if s.Client == nil {
		return errors.New("lookup log: redis client is nil")
	}

	payload, err := json.Marshal(toRecord(l))
	if err != nil {
		return fmt.Errorf("record lookup: marshal: %w", err)
	}

	// Push and trim atomically so the list never exceeds MaxEntries.
	pipe := s.Client.TxPipeline()
	pipe.LPush(ctx, s.Key, payload)
	if s.MaxEntries > 0 {
		pipe.LTrim(ctx, s.Key, 0, int64(s.MaxEntries-1))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record lookup id=%s: %w", l.ID, err)
	}

	return nil
}

func (s *RedisLookupLog) ListRecent(ctx context.Context, limit int) (_ []domain.Lookup, err error) {
	defer obs.Time(ctx, "history.redis.ListRecent")(&err)

	if s.Client == nil {
		return nil, errors.New("lookup log: redis client is nil")
	}

	if limit <= 0 {
		return []domain.Lookup{}, nil
	}

	raw, err := s.Client.LRange(ctx, s.Key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("list lookups: lrange %q: %w", s.Key, err)
	}

	out := make([]domain.Lookup, 0, len(raw))
	for i, item := range raw {
		var rec lookupRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("list lookups: decode entry #%d: %w", i, err)
		}
		out = append(out, rec.toDomain())
	}

	return out, nil
}
