package distance

import (
	"context"
	"fmt"
	"great-circle-service/internal/domain"
)

type MockPair struct {
	From, To domain.Coordinates
	Result   domain.DistanceResult
}

// MockDistanceProvider answers from a fixed table and validates nothing.
type MockDistanceProvider struct {
	m map[[2]domain.Coordinates]domain.DistanceResult
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[[2]domain.Coordinates]domain.DistanceResult, len(pairs))
	for _, p := range pairs {
		m[[2]domain.Coordinates{p.From, p.To}] = p.Result
	}
	return &MockDistanceProvider{m: m}
}

func (p *MockDistanceProvider) GetDistance(ctx context.Context, origin, destination domain.Coordinates) (domain.DistanceResult, error) {
	r, ok := p.m[[2]domain.Coordinates{origin, destination}]
	if !ok {
		return domain.DistanceResult{}, fmt.Errorf("missing pair %v -> %v", origin, destination)
	}

	return r, nil
}
