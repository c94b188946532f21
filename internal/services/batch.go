package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/givihub/givix-routing/internal/domain"
	"github.com/givihub/givix-routing/internal/ports"
)

// BatchRequest is the batch-mode input document.
type BatchRequest struct {
	Routes []RouteLeg `json:"routes"`
}

// RouteLeg is one route descriptor in a batch document. Distance and
// duration carry previously known values, if any; they are replaced
// only by a successful new computation.
type RouteLeg struct {
	ID        string       `json:"id"`
	Loading   domain.Point `json:"loading"`
	Unloading domain.Point `json:"unloading"`
	domain.RouteOptions
	DistanceM *int `json:"distance_m"`
	DurationS *int `json:"duration_s"`
}

// BatchLeg mirrors a RouteLeg in the output document with resolved
// points and the computation outcome.
type BatchLeg struct {
	ID        string       `json:"id"`
	Loading   domain.Point `json:"loading"`
	Unloading domain.Point `json:"unloading"`
	DistanceM *int         `json:"distance_m"`
	DurationS *int         `json:"duration_s"`
	Error     *string      `json:"error"`
}

// BatchResponse is the batch-mode output document.
type BatchResponse struct {
	Routes []BatchLeg `json:"routes"`
}

// ProcessBatch computes every leg independently, in order, one request
// in flight at a time. A failing leg records its error and keeps the
// previously known distance/duration; processing always continues with
// the remaining legs.
func ProcessBatch(
	ctx context.Context,
	req BatchRequest,
	resolver *Resolver,
	provider ports.RouteProvider,
	log *zap.SugaredLogger,
) BatchResponse {
	if log == nil {
		log = zap.S()
	}

	out := BatchResponse{Routes: make([]BatchLeg, 0, len(req.Routes))}
	for _, leg := range req.Routes {
		log.Infow("processing route", "id", leg.ID)

		res := processLeg(ctx, leg, resolver, provider)
		if res.Error != nil {
			log.Warnw("route failed", "id", leg.ID, "err", *res.Error)
		}

		out.Routes = append(out.Routes, res)
	}

	return out
}

func processLeg(
	ctx context.Context,
	leg RouteLeg,
	resolver *Resolver,
	provider ports.RouteProvider,
) BatchLeg {
	out := BatchLeg{
		ID:        leg.ID,
		Loading:   leg.Loading,
		Unloading: leg.Unloading,
		DistanceM: leg.DistanceM,
		DurationS: leg.DurationS,
	}

	from, err := resolver.Resolve(ctx, leg.Loading)
	if err != nil {
		return failLeg(out, fmt.Errorf("%s / loading: %w", leg.ID, err))
	}
	out.Loading = from.ToPoint()

	to, err := resolver.Resolve(ctx, leg.Unloading)
	if err != nil {
		return failLeg(out, fmt.Errorf("%s / unloading: %w", leg.ID, err))
	}
	out.Unloading = to.ToPoint()

	opts := leg.RouteOptions
	if opts.Vehicle == "" {
		opts.Vehicle = domain.TransportDriving
	}

	res, err := provider.Route(ctx, from, to, opts)
	if err != nil {
		return failLeg(out, fmt.Errorf("%s: %w", leg.ID, err))
	}

	meters := res.DistanceMeters
	seconds := res.DurationSeconds
	out.DistanceM = &meters
	out.DurationS = &seconds

	return out
}

func failLeg(out BatchLeg, err error) BatchLeg {
	msg := err.Error()
	out.Error = &msg
	return out
}
