package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/givihub/givix-routing/internal/domain"
	"github.com/givihub/givix-routing/internal/platform/obs"
)

const defaultBaseURL = "https://geocode-maps.yandex.ru/1.x"

// YandexGeocoder implements forward and reverse geocoding against the
// Yandex Geocoder 1.x HTTP API.
//
// The public contract of this package is (lat, lon); the service itself
// speaks (lon, lat). The axis swap happens here and nowhere else.
//
// Only the first result of a lookup is used. The upstream service
// already ranks matches, so disambiguation is not attempted.
type YandexGeocoder struct {
	session *http.Client
	apiKey  string
	baseURL string
	lang    string
}

// NewYandexGeocoder builds a client with a bounded per-call timeout.
// An empty apiKey is allowed at construction time: Forward and Reverse
// report domain.ErrMissingAPIKey when actually invoked, which lets the
// best-effort reverse path degrade instead of failing startup.
func NewYandexGeocoder(apiKey, baseURL string, timeout time.Duration) *YandexGeocoder {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &YandexGeocoder{
		session: &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		baseURL: baseURL,
		lang:    "ru_RU",
	}
}

type geocodeResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					MetaDataProperty struct {
						GeocoderMetaData struct {
							Text string `json:"text"`
						} `json:"GeocoderMetaData"`
					} `json:"metaDataProperty"`
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// Forward resolves an address to (lat, lon).
func (g *YandexGeocoder) Forward(ctx context.Context, address string) (_, _ float64, err error) {
	defer obs.Time(ctx, "geocode.Forward")(&err)

	if strings.TrimSpace(g.apiKey) == "" {
		return 0, 0, fmt.Errorf("forward geocode: %w", domain.ErrMissingAPIKey)
	}

	decoded, err := g.lookup(ctx, address)
	if err != nil {
		return 0, 0, fmt.Errorf("forward geocode %q: %w", address, err)
	}

	members := decoded.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return 0, 0, fmt.Errorf("forward geocode %q: %w", address, domain.ErrNoResults)
	}

	// Point positions come back as "lon lat".
	pos := members[0].GeoObject.Point.Pos
	fields := strings.Fields(pos)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("forward geocode %q: malformed point %q", address, pos)
	}

	lon, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("forward geocode %q: parse lon %q: %w", address, fields[0], err)
	}
	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("forward geocode %q: parse lat %q: %w", address, fields[1], err)
	}

	return lat, lon, nil
}

// Reverse resolves coordinate strings to a formatted address. The
// caller owns the decision to discard the error on best-effort paths.
func (g *YandexGeocoder) Reverse(ctx context.Context, lat, lon string) (_ string, err error) {
	defer obs.Time(ctx, "geocode.Reverse")(&err)

	if strings.TrimSpace(g.apiKey) == "" {
		return "", fmt.Errorf("reverse geocode: %w", domain.ErrMissingAPIKey)
	}

	decoded, err := g.lookup(ctx, lon+","+lat)
	if err != nil {
		return "", fmt.Errorf("reverse geocode %s,%s: %w", lat, lon, err)
	}

	members := decoded.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return "", fmt.Errorf("reverse geocode %s,%s: %w", lat, lon, domain.ErrNoResults)
	}

	return members[0].GeoObject.MetaDataProperty.GeocoderMetaData.Text, nil
}

func (g *YandexGeocoder) lookup(ctx context.Context, query string) (*geocodeResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("apikey", g.apiKey)
	q.Set("format", "json")
	q.Set("geocode", query)
	q.Set("results", "1")
	q.Set("lang", g.lang)
	req.URL.RawQuery = q.Encode()

	resp, err := g.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}

	return &decoded, nil
}
