package domain

// Transport types understood by the routing service.
const (
	TransportDriving = "driving"
	TransportTruck   = "truck"
)

// Route mode values accepted by the routing service.
const (
	RouteModeFastest  = "fastest"
	RouteModeShortest = "shortest"
)

// Priority values accepted in input documents.
const (
	PriorityTime     = "time"
	PriorityDistance = "distance"
)

// RouteOptions carries the optional vehicle/route parameters of a
// routing request. Zero values mean "not specified"; callers decide
// which transport default applies to their scenario.
type RouteOptions struct {
	Vehicle       string        `json:"vehicle,omitempty"`
	Traffic       string        `json:"traffic,omitempty"`
	Filters       []string      `json:"filters,omitempty"`
	Priority      string        `json:"priority,omitempty"`
	Locale        string        `json:"locale,omitempty"`
	UTC           int64         `json:"utc,omitempty"`
	VehicleParams VehicleParams `json:"vehicle_params"`
}

// TrafficEnabled reports whether live traffic should be considered.
func (o RouteOptions) TrafficEnabled() bool { return o.Traffic == "enabled" }
