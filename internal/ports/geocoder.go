package ports

import "context"

// Port: a boundary for resolving between addresses and coordinates.
type Geocoder interface {
	// Forward resolves an address to (lat, lon). Only the first,
	// highest-ranked match is used; no results is an error.
	Forward(ctx context.Context, address string) (lat, lon float64, err error)
	// Reverse resolves normalized coordinate strings to an address.
	// Callers on the best-effort path are expected to discard the error.
	Reverse(ctx context.Context, lat, lon string) (string, error)
}
