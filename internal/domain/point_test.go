package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCoordinateUnmarshalNumber(t *testing.T) {
	var c Coordinate
	if err := json.Unmarshal([]byte("55.7558"), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.String() != "55.755800" {
		t.Fatalf("coordinate = %q, want %q", c.String(), "55.755800")
	}
}

func TestCoordinateUnmarshalString(t *testing.T) {
	var c Coordinate
	if err := json.Unmarshal([]byte(`"  37.617300 "`), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.String() != "37.617300" {
		t.Fatalf("coordinate = %q, want trimmed string unchanged", c.String())
	}
}

func TestCoordinateUnmarshalNull(t *testing.T) {
	var c Coordinate
	if err := json.Unmarshal([]byte("null"), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.IsSet() {
		t.Fatalf("null coordinate should not be set")
	}
}

func TestCoordinateUnmarshalRejectsOtherTypes(t *testing.T) {
	var c Coordinate
	if err := json.Unmarshal([]byte("true"), &c); err == nil {
		t.Fatalf("expected error for boolean coordinate")
	}
}

func TestFormatCoordSixDecimals(t *testing.T) {
	values := []float64{55.7558, -37.61, 0, 55.755814, 179.9999999}

	for _, v := range values {
		s := FormatCoord(v)

		i := strings.IndexByte(s, '.')
		if i < 0 {
			t.Fatalf("FormatCoord(%v) = %q, no decimal point", v, s)
		}
		if got := len(s) - i - 1; got != 6 {
			t.Fatalf("FormatCoord(%v) = %q, %d decimals, want 6", v, s, got)
		}
	}
}

func TestCoordinateNormalizationIdempotent(t *testing.T) {
	once := CoordinateFromFloat(55.7558)
	twice := CoordinateFromString(once.String())

	if once.String() != twice.String() {
		t.Fatalf("normalize(normalize(x)) = %q, want %q", twice.String(), once.String())
	}
}

func TestResolvedPointFloats(t *testing.T) {
	p := ResolvedPoint{Lat: "55.755800", Lon: "37.617300"}

	lat, lon, err := p.Floats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lat != 55.7558 || lon != 37.6173 {
		t.Fatalf("floats = (%v, %v), want (55.7558, 37.6173)", lat, lon)
	}
}

func TestResolvedPointFloatsBadValue(t *testing.T) {
	p := ResolvedPoint{Lat: "not-a-number", Lon: "37.617300"}

	if _, _, err := p.Floats(); err == nil {
		t.Fatalf("expected error for malformed latitude")
	}
}
