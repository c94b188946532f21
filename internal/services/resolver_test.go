package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/givihub/givix-routing/internal/domain"
)

type fakeGeocoder struct {
	forwardLat   float64
	forwardLon   float64
	forwardErr   error
	reverseAddr  string
	reverseErr   error
	forwardCalls int
	reverseCalls int
}

func (f *fakeGeocoder) Forward(ctx context.Context, address string) (float64, float64, error) {
	f.forwardCalls++
	if f.forwardErr != nil {
		return 0, 0, f.forwardErr
	}
	return f.forwardLat, f.forwardLon, nil
}

func (f *fakeGeocoder) Reverse(ctx context.Context, lat, lon string) (string, error) {
	f.reverseCalls++
	if f.reverseErr != nil {
		return "", f.reverseErr
	}
	return f.reverseAddr, nil
}

func newTestResolver(g *fakeGeocoder) *Resolver {
	return NewResolver(g, zap.NewNop().Sugar())
}

func TestResolveAddressOnly(t *testing.T) {
	g := &fakeGeocoder{forwardLat: 55.755814, forwardLon: 37.617635}
	r := newTestResolver(g)

	p, err := r.Resolve(context.Background(), domain.Point{Address: "Москва, Красная площадь, 1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Lat != "55.755814" || p.Lon != "37.617635" {
		t.Fatalf("coords = (%q, %q), want six-decimal strings", p.Lat, p.Lon)
	}

	lat, lon, err := p.Floats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lat != 55.755814 || lon != 37.617635 {
		t.Fatalf("floats = (%v, %v)", lat, lon)
	}

	if g.forwardCalls != 1 {
		t.Fatalf("forward calls = %d, want 1", g.forwardCalls)
	}
	if g.reverseCalls != 0 {
		t.Fatalf("reverse calls = %d, want 0", g.reverseCalls)
	}
}

func TestResolveCoordsOnly(t *testing.T) {
	g := &fakeGeocoder{reverseAddr: "Somewhere St, 5"}
	r := newTestResolver(g)

	in := domain.Point{
		Lat: domain.CoordinateFromString("55.755800"),
		Lon: domain.CoordinateFromString("37.617300"),
	}

	p, err := r.Resolve(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Supplied coordinates are retained exactly; forward geocoding must
	// never run when both are present.
	if p.Lat != "55.755800" || p.Lon != "37.617300" {
		t.Fatalf("coords = (%q, %q), want originals", p.Lat, p.Lon)
	}
	if g.forwardCalls != 0 {
		t.Fatalf("forward calls = %d, want 0", g.forwardCalls)
	}

	if p.Address != "Somewhere St, 5" {
		t.Fatalf("address = %q, want reverse geocode result", p.Address)
	}
}

func TestResolveCoordsReverseFailureIsNotFatal(t *testing.T) {
	g := &fakeGeocoder{reverseErr: errors.New("boom")}
	r := newTestResolver(g)

	in := domain.Point{
		Lat: domain.CoordinateFromString("55.755800"),
		Lon: domain.CoordinateFromString("37.617300"),
	}

	p, err := r.Resolve(context.Background(), in)
	if err != nil {
		t.Fatalf("reverse failure must not fail resolution, got: %v", err)
	}

	if p.Address != "" {
		t.Fatalf("address = %q, want unset", p.Address)
	}
	if g.reverseCalls != 1 {
		t.Fatalf("reverse calls = %d, want 1", g.reverseCalls)
	}
}

func TestResolveCoordsWithAddressSkipsGeocoder(t *testing.T) {
	g := &fakeGeocoder{}
	r := newTestResolver(g)

	in := domain.Point{
		Address: "Already known",
		Lat:     domain.CoordinateFromString("55.755800"),
		Lon:     domain.CoordinateFromString("37.617300"),
	}

	p, err := r.Resolve(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if g.forwardCalls != 0 || g.reverseCalls != 0 {
		t.Fatalf("geocoder calls = (%d, %d), want none", g.forwardCalls, g.reverseCalls)
	}
	if p.Address != "Already known" {
		t.Fatalf("address = %q", p.Address)
	}
}

func TestResolveUnderspecifiedPoint(t *testing.T) {
	r := newTestResolver(&fakeGeocoder{})

	_, err := r.Resolve(context.Background(), domain.Point{})
	if !errors.Is(err, domain.ErrPointUnderspecified) {
		t.Fatalf("err = %v, want ErrPointUnderspecified", err)
	}
}

func TestResolvePartialCoordsWithoutAddress(t *testing.T) {
	r := newTestResolver(&fakeGeocoder{})

	in := domain.Point{Lat: domain.CoordinateFromString("55.755800")}

	_, err := r.Resolve(context.Background(), in)
	if !errors.Is(err, domain.ErrPointUnderspecified) {
		t.Fatalf("err = %v, want ErrPointUnderspecified", err)
	}
}

func TestResolveForwardFailurePropagates(t *testing.T) {
	g := &fakeGeocoder{forwardErr: domain.ErrNoResults}
	r := newTestResolver(g)

	_, err := r.Resolve(context.Background(), domain.Point{Address: "nowhere"})
	if !errors.Is(err, domain.ErrNoResults) {
		t.Fatalf("err = %v, want ErrNoResults", err)
	}
}
