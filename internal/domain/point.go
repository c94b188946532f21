package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Coordinate is a latitude or longitude value as it appears in input
// documents: a JSON number, a string, or absent. Numeric input is
// normalized to a string with exactly six decimal places; string input
// is kept verbatim (trimmed). An empty value means "not supplied".
//
// Values are not range-checked: out-of-range latitudes and longitudes
// pass through to the upstream services unchanged. This is an accepted
// limitation of the system.
type Coordinate struct {
	s string
}

// FormatCoord renders a coordinate with exactly six decimal places.
func FormatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func CoordinateFromFloat(v float64) Coordinate {
	return Coordinate{s: FormatCoord(v)}
}

func CoordinateFromString(s string) Coordinate {
	return Coordinate{s: strings.TrimSpace(s)}
}

func (c Coordinate) IsSet() bool { return c.s != "" }

func (c Coordinate) String() string { return c.s }

func (c Coordinate) Float() (float64, error) {
	if c.s == "" {
		return 0, errors.New("coordinate is empty")
	}
	v, err := strconv.ParseFloat(c.s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse coordinate %q: %w", c.s, err)
	}
	return v, nil
}

func (c *Coordinate) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		c.s = ""
	case float64:
		c.s = FormatCoord(v)
	case string:
		c.s = strings.TrimSpace(v)
	default:
		return fmt.Errorf("coordinate must be a number or a string, got %T", raw)
	}
	return nil
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	if c.s == "" {
		return []byte("null"), nil
	}
	return json.Marshal(c.s)
}

// Point describes one end of a requested route as supplied by the
// caller: an address, a coordinate pair, or both.
type Point struct {
	Address string     `json:"address,omitempty"`
	Lat     Coordinate `json:"lat"`
	Lon     Coordinate `json:"lon"`
}

// ResolvedPoint is the outcome of point resolution: both coordinates
// present as six-decimal strings and, best effort, an address.
type ResolvedPoint struct {
	Address string `json:"address,omitempty"`
	Lat     string `json:"lat"`
	Lon     string `json:"lon"`
}

// Floats parses the coordinate strings back into numeric form.
func (p ResolvedPoint) Floats() (lat, lon float64, err error) {
	lat, err = strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse lat %q: %w", p.Lat, err)
	}
	lon, err = strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse lon %q: %w", p.Lon, err)
	}
	return lat, lon, nil
}

// ToPoint converts a resolved point back into the wire representation
// used by input and output documents.
func (p ResolvedPoint) ToPoint() Point {
	return Point{
		Address: p.Address,
		Lat:     CoordinateFromString(p.Lat),
		Lon:     CoordinateFromString(p.Lon),
	}
}
