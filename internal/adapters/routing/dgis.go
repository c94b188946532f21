package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/givihub/givix-routing/internal/domain"
	"github.com/givihub/givix-routing/internal/platform/obs"
	"github.com/givihub/givix-routing/internal/ports"
)

const defaultBaseURL = "https://routing.api.2gis.com/routing/7.0.0/global"

// DGISRouteProvider implements RouteProvider using the 2GIS Routing
// API 7.0.0 (JSON POST). Optional vehicle/route parameters are mapped
// onto the request body; unset parameters are omitted entirely.
type DGISRouteProvider struct {
	session       *http.Client
	apiKey        string
	baseURL       string
	defaultLocale string
}

// NewDGISRouteProvider builds a client with a bounded per-call timeout.
// An empty apiKey is allowed at construction time; Route reports
// domain.ErrMissingAPIKey when invoked, so batch callers can record the
// failure per item instead of aborting the whole run.
func NewDGISRouteProvider(apiKey, baseURL string, timeout time.Duration, locale string) *DGISRouteProvider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &DGISRouteProvider{
		session:       &http.Client{Timeout: timeout},
		apiKey:        apiKey,
		baseURL:       baseURL,
		defaultLocale: locale,
	}
}

type stopPoint struct {
	Type string  `json:"type"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type truckParams struct {
	Height      float64 `json:"height,omitempty"`
	Width       float64 `json:"width,omitempty"`
	Length      float64 `json:"length,omitempty"`
	Weight      float64 `json:"weight,omitempty"`
	AxleWeight  float64 `json:"axle_weight,omitempty"`
	HazardClass float64 `json:"hazard_class,omitempty"`
}

type routeRequest struct {
	Points      []stopPoint  `json:"points"`
	Transport   string       `json:"transport"`
	RouteMode   string       `json:"route_mode"`
	TrafficMode string       `json:"traffic_mode,omitempty"`
	Filters     []string     `json:"filters,omitempty"`
	Locale      string       `json:"locale,omitempty"`
	UTC         int64        `json:"utc,omitempty"`
	TruckParams *truckParams `json:"truck_params,omitempty"`
}

type routeResponse struct {
	Result []struct {
		TotalDistance *int `json:"total_distance"`
		TotalDuration *int `json:"total_duration"`
	} `json:"result"`
}

// Route computes a route and returns the first candidate's totals.
func (p *DGISRouteProvider) Route(
	ctx context.Context,
	from, to domain.ResolvedPoint,
	opts domain.RouteOptions,
) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "routing.Route")(&err)

	if strings.TrimSpace(p.apiKey) == "" {
		return ports.RouteResult{}, fmt.Errorf("route: %w", domain.ErrMissingAPIKey)
	}

	body, err := p.buildRequest(from, to, opts)
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("route: %w", err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("marshal route request: %w", err)
	}

	req, err := p.newRequest(ctx, http.MethodPost, p.baseURL, bytes.NewReader(payload))
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("route: %w", err)
	}

	resp, err := p.do(req)
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("route request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("read route response: %w", err)
	}

	var decoded routeResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return ports.RouteResult{}, fmt.Errorf("decode route response: %w (body: %s)", err, trimBody(raw))
	}

	if len(decoded.Result) == 0 {
		return ports.RouteResult{}, fmt.Errorf("route response has no result: %s", trimBody(raw))
	}

	// The first candidate is authoritative; the service ranks them.
	first := decoded.Result[0]
	if first.TotalDistance == nil || first.TotalDuration == nil {
		return ports.RouteResult{}, fmt.Errorf(
			"route result missing total_distance/total_duration: %s", trimBody(raw))
	}

	return ports.RouteResult{
		DistanceMeters:  *first.TotalDistance,
		DurationSeconds: *first.TotalDuration,
	}, nil
}

func (p *DGISRouteProvider) buildRequest(
	from, to domain.ResolvedPoint,
	opts domain.RouteOptions,
) (routeRequest, error) {
	fromLat, fromLon, err := from.Floats()
	if err != nil {
		return routeRequest{}, fmt.Errorf("from point: %w", err)
	}
	toLat, toLon, err := to.Floats()
	if err != nil {
		return routeRequest{}, fmt.Errorf("to point: %w", err)
	}

	transport := opts.Vehicle
	if transport == "" {
		transport = domain.TransportDriving
	}

	mode := domain.RouteModeShortest
	switch {
	case opts.Priority == domain.PriorityTime:
		mode = domain.RouteModeFastest
	case opts.Priority == domain.PriorityDistance:
		mode = domain.RouteModeShortest
	case opts.Priority != "":
		// Unknown priorities pass through for the service to validate.
		mode = opts.Priority
	case opts.TrafficEnabled():
		mode = domain.RouteModeFastest
	}

	locale := opts.Locale
	if locale == "" {
		locale = p.defaultLocale
	}

	body := routeRequest{
		Points: []stopPoint{
			{Type: "stop", Lat: fromLat, Lon: fromLon},
			{Type: "stop", Lat: toLat, Lon: toLon},
		},
		Transport: transport,
		RouteMode: mode,
		Locale:    locale,
		UTC:       opts.UTC,
	}

	if opts.TrafficEnabled() {
		body.TrafficMode = "jam"
	}

	if len(opts.Filters) > 0 {
		body.Filters = opts.Filters
	}

	// Dimensions are only meaningful for truck profiles, and only when
	// present and non-zero.
	if transport == domain.TransportTruck && !opts.VehicleParams.Empty() {
		vp := opts.VehicleParams
		body.TruckParams = &truckParams{
			Height:      vp.Height.Float(),
			Width:       vp.Width.Float(),
			Length:      vp.Length.Float(),
			Weight:      vp.Weight.Float(),
			AxleWeight:  vp.AxleWeight.Float(),
			HazardClass: vp.HazardClass.Float(),
		}
	}

	return body, nil
}
