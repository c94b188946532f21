package routing

import (
	"context"
	"fmt"

	"github.com/givihub/givix-routing/internal/domain"
	"github.com/givihub/givix-routing/internal/ports"
)

type MockPair struct {
	From, To string
	Meters   int
	Seconds  int
}

// MockRouteProvider answers from a fixed table keyed by "lat,lon"
// coordinate pairs. Intended for service-level tests.
type MockRouteProvider struct {
	m     map[string]ports.RouteResult
	Calls int
}

func NewMockRouteProvider(pairs []MockPair) *MockRouteProvider {
	m := make(map[string]ports.RouteResult, len(pairs))
	for _, p := range pairs {
		m[p.From+"|"+p.To] = ports.RouteResult{DistanceMeters: p.Meters, DurationSeconds: p.Seconds}
	}
	return &MockRouteProvider{m: m}
}

func MockKey(p domain.ResolvedPoint) string {
	return p.Lat + "," + p.Lon
}

func (p *MockRouteProvider) Route(
	ctx context.Context,
	from, to domain.ResolvedPoint,
	opts domain.RouteOptions,
) (ports.RouteResult, error) {
	p.Calls++

	r, ok := p.m[MockKey(from)+"|"+MockKey(to)]
	if !ok {
		return ports.RouteResult{}, fmt.Errorf("missing pair %q -> %q", MockKey(from), MockKey(to))
	}

	return r, nil
}
