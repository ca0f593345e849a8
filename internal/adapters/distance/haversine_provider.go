package distance

import (
	"context"
	"fmt"
	"great-circle-service/internal/domain"
	"great-circle-service/internal/platform/obs"
	"great-circle-service/internal/ports"
	"great-circle-service/internal/services"
	"time"

	"github.com/rs/zerolog"
)

// HaversineProvider implements DistanceProvider with the spherical Haversine
// formula. Every successful computation is appended to an optional history
// recorder; history is never consulted to answer a request.
//
// The provider is safe for concurrent use.
type HaversineProvider struct {
	recorder ports.LookupRecorder
	now      func() time.Time
}

func NewHaversineProvider(recorder ports.LookupRecorder) *HaversineProvider {
	return &HaversineProvider{
		recorder: recorder,
		now:      time.Now,
	}
}

func (h *HaversineProvider) GetDistance(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ domain.DistanceResult, err error) {
	defer obs.Time(ctx, "haversine.GetDistance")(&err)

	if err := ctx.Err(); err != nil {
		return domain.DistanceResult{}, err
	}

	result, err := services.ComputeDistance(origin, destination)
	if err != nil {
		return domain.DistanceResult{}, fmt.Errorf("get haversine distance: %w", err)
	}

	if h.recorder != nil {
		lookup := domain.NewLookup(origin, destination, result, h.now())
		if err := h.recorder.Record(ctx, lookup); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("lookup_id", lookup.ID.String()).Msg("lookup history write failed")
		}
	}

	return result, nil
}
