package services

import (
	"context"
	"fmt"
	"math"

	"github.com/givihub/givix-routing/internal/domain"
	"github.com/givihub/givix-routing/internal/ports"
)

// SingleRequest is the single-route input document: two points plus
// the optional vehicle/route parameters at the top level.
type SingleRequest struct {
	From domain.Point `json:"from"`
	To   domain.Point `json:"to"`
	domain.RouteOptions
}

// SingleResult is the single-route output document. Distance and
// duration carry both raw and human-friendly units.
type SingleResult struct {
	Success         bool                 `json:"success"`
	From            domain.ResolvedPoint `json:"from"`
	To              domain.ResolvedPoint `json:"to"`
	DistanceMeters  int                  `json:"distance_meters"`
	DistanceKm      float64              `json:"distance_km"`
	DurationSeconds int                  `json:"duration_seconds"`
	DurationMinutes float64              `json:"duration_minutes"`
}

// ComputeRoute resolves both endpoints and computes one route. Any
// failure is fatal for the request. The truck profile is the default
// transport on this path.
func ComputeRoute(
	ctx context.Context,
	req SingleRequest,
	resolver *Resolver,
	provider ports.RouteProvider,
) (SingleResult, error) {
	from, err := resolver.Resolve(ctx, req.From)
	if err != nil {
		return SingleResult{}, fmt.Errorf("compute route: from: %w", err)
	}

	to, err := resolver.Resolve(ctx, req.To)
	if err != nil {
		return SingleResult{}, fmt.Errorf("compute route: to: %w", err)
	}

	opts := req.RouteOptions
	if opts.Vehicle == "" {
		opts.Vehicle = domain.TransportTruck
	}

	res, err := provider.Route(ctx, from, to, opts)
	if err != nil {
		return SingleResult{}, fmt.Errorf("compute route: %w", err)
	}

	return SingleResult{
		Success:         true,
		From:            from,
		To:              to,
		DistanceMeters:  res.DistanceMeters,
		DistanceKm:      math.Round(float64(res.DistanceMeters)/1000*1000) / 1000,
		DurationSeconds: res.DurationSeconds,
		DurationMinutes: math.Round(float64(res.DurationSeconds)/60*10) / 10,
	}, nil
}
