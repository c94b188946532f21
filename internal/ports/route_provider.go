package ports

import (
	"context"

	"github.com/givihub/givix-routing/internal/domain"
)

// Travel distance and duration of a computed route.
type RouteResult struct {
	DistanceMeters  int
	DurationSeconds int
}

// Contract for computing a driving route between two resolved points.
type RouteProvider interface {
	// Route returns distance and duration for the first route candidate
	// the service offers; candidates are not compared or ranked here.
	Route(ctx context.Context, from, to domain.ResolvedPoint, opts domain.RouteOptions) (RouteResult, error)
}
