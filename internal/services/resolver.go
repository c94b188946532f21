package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/givihub/givix-routing/internal/domain"
	"github.com/givihub/givix-routing/internal/ports"
)

// Resolver guarantees that a point ends up with both coordinates and,
// best effort, an address, invoking the geocoder only for whatever is
// missing.
type Resolver struct {
	geocoder ports.Geocoder
	log      *zap.SugaredLogger
}

func NewResolver(geocoder ports.Geocoder, log *zap.SugaredLogger) *Resolver {
	if log == nil {
		log = zap.S()
	}
	return &Resolver{geocoder: geocoder, log: log}
}

// Resolve returns a new resolved point; the input is never mutated.
//
// Explicit coordinates always win over the address: the address is only
// used to derive missing coordinates, never to override supplied ones.
// A failed reverse lookup is logged and swallowed; resolution still
// succeeds without an address.
func (r *Resolver) Resolve(ctx context.Context, p domain.Point) (domain.ResolvedPoint, error) {
	addr := strings.TrimSpace(p.Address)

	if p.Lat.IsSet() && p.Lon.IsSet() {
		out := domain.ResolvedPoint{
			Address: addr,
			Lat:     p.Lat.String(),
			Lon:     p.Lon.String(),
		}
		if _, _, err := out.Floats(); err != nil {
			return domain.ResolvedPoint{}, fmt.Errorf("resolve point: %w", err)
		}

		if out.Address == "" {
			rev, err := r.geocoder.Reverse(ctx, out.Lat, out.Lon)
			if err != nil {
				r.log.Warnw("reverse geocode failed",
					"lat", out.Lat, "lon", out.Lon, "err", err)
			} else {
				out.Address = rev
			}
		}

		return out, nil
	}

	if addr != "" {
		lat, lon, err := r.geocoder.Forward(ctx, addr)
		if err != nil {
			return domain.ResolvedPoint{}, fmt.Errorf("resolve point %q: %w", addr, err)
		}

		return domain.ResolvedPoint{
			Address: addr,
			Lat:     domain.FormatCoord(lat),
			Lon:     domain.FormatCoord(lon),
		}, nil
	}

	return domain.ResolvedPoint{}, fmt.Errorf("resolve point: %w", domain.ErrPointUnderspecified)
}
