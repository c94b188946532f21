package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/givihub/givix-routing/internal/domain"
)

const forwardBody = `{
	"response": {
		"GeoObjectCollection": {
			"featureMember": [
				{
					"GeoObject": {
						"metaDataProperty": {
							"GeocoderMetaData": {"text": "Москва, Красная площадь, 1"}
						},
						"Point": {"pos": "37.617635 55.755814"}
					}
				}
			]
		}
	}
}`

const emptyBody = `{"response":{"GeoObjectCollection":{"featureMember":[]}}}`

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) *YandexGeocoder {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewYandexGeocoder("test-key", srv.URL, 0)
}

func TestForwardParsesFirstResult(t *testing.T) {
	var gotQuery string
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("geocode")
		if r.URL.Query().Get("apikey") != "test-key" {
			t.Errorf("apikey = %q, want test-key", r.URL.Query().Get("apikey"))
		}
		if r.URL.Query().Get("results") != "1" {
			t.Errorf("results = %q, want 1", r.URL.Query().Get("results"))
		}
		w.Write([]byte(forwardBody))
	})

	lat, lon, err := g.Forward(context.Background(), "Москва, Красная площадь, 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery != "Москва, Красная площадь, 1" {
		t.Fatalf("geocode query = %q", gotQuery)
	}

	// The service answers "lon lat"; the client swaps the axes.
	if lat != 55.755814 {
		t.Fatalf("lat = %v, want 55.755814", lat)
	}
	if lon != 37.617635 {
		t.Fatalf("lon = %v, want 37.617635", lon)
	}
}

func TestForwardNoResults(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(emptyBody))
	})

	_, _, err := g.Forward(context.Background(), "nowhere at all")
	if !errors.Is(err, domain.ErrNoResults) {
		t.Fatalf("err = %v, want ErrNoResults", err)
	}
}

func TestForwardMissingKey(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	g := NewYandexGeocoder("", srv.URL, 0)

	_, _, err := g.Forward(context.Background(), "Москва")
	if !errors.Is(err, domain.ErrMissingAPIKey) {
		t.Fatalf("err = %v, want ErrMissingAPIKey", err)
	}
	if called {
		t.Fatalf("no request should be issued without an api key")
	}
}

func TestReverseSendsLonLatOrder(t *testing.T) {
	var gotQuery string
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("geocode")
		w.Write([]byte(forwardBody))
	})

	addr, err := g.Reverse(context.Background(), "55.755814", "37.617635")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery != "37.617635,55.755814" {
		t.Fatalf("geocode query = %q, want lon,lat order", gotQuery)
	}
	if addr != "Москва, Красная площадь, 1" {
		t.Fatalf("address = %q", addr)
	}
}

func TestReverseNoResults(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(emptyBody))
	})

	_, err := g.Reverse(context.Background(), "0.000000", "0.000000")
	if !errors.Is(err, domain.ErrNoResults) {
		t.Fatalf("err = %v, want ErrNoResults", err)
	}
}

func TestForwardUpstreamFailure(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	})

	_, _, err := g.Forward(context.Background(), "Москва")
	if err == nil {
		t.Fatalf("expected error for non-200 status")
	}
}
