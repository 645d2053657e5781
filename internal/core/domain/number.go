package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount coerces a stored or submitted quantity into a usable non-negative
// number: NaN, infinities and negatives become 0.
func Amount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// LenientNumber decodes a JSON number, a numeric string or null. Values that
// cannot be read as a number decode to 0 and leave Valid false.
type LenientNumber struct {
	Value float64
	Valid bool
}

func (n *LenientNumber) UnmarshalJSON(data []byte) error {
	n.Value, n.Valid = 0, false

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}

	n.Value, n.Valid = f, true
	return nil
}

func (n LenientNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Float returns the coerced amount, 0 when the value was missing or invalid.
func (n LenientNumber) Float() float64 {
	if !n.Valid {
		return 0
	}
	return Amount(n.Value)
}
