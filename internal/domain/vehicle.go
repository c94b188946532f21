package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Quantity is an optional numeric parameter that may arrive as a JSON
// number or a string. Absent values, empty strings, and zeroes are all
// treated as "not set": a zero vehicle dimension is never meaningful.
type Quantity struct {
	raw string
}

func QuantityOf(v float64) Quantity {
	return Quantity{raw: strconv.FormatFloat(v, 'f', -1, 64)}
}

func (q *Quantity) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		q.raw = ""
	case float64:
		q.raw = strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		q.raw = strings.TrimSpace(v)
	default:
		return fmt.Errorf("quantity must be a number or a string, got %T", raw)
	}
	return nil
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	if !q.IsSet() {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseFloat(q.raw, 64); err == nil {
		// Numeric values go out as JSON numbers, verbatim.
		return []byte(q.raw), nil
	}
	return json.Marshal(q.raw)
}

// IsSet reports whether the quantity carries a usable non-zero value.
func (q Quantity) IsSet() bool {
	if q.raw == "" {
		return false
	}
	if v, err := strconv.ParseFloat(q.raw, 64); err == nil && v == 0 {
		return false
	}
	return true
}

func (q Quantity) Float() float64 {
	v, _ := strconv.ParseFloat(q.raw, 64)
	return v
}

// VehicleParams are the optional truck dimension fields of a routing
// request. Unset fields are omitted from outgoing requests entirely.
type VehicleParams struct {
	Height      Quantity `json:"height"`
	Width       Quantity `json:"width"`
	Length      Quantity `json:"length"`
	Weight      Quantity `json:"weight"`
	AxleWeight  Quantity `json:"axle_weight"`
	HazardClass Quantity `json:"hazard_class"`
}

func (p VehicleParams) Empty() bool {
	return !p.Height.IsSet() &&
		!p.Width.IsSet() &&
		!p.Length.IsSet() &&
		!p.Weight.IsSet() &&
		!p.AxleWeight.IsSet() &&
		!p.HazardClass.IsSet()
}
