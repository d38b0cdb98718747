package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexibleNumber is a float64 that unmarshals leniently: JSON numbers and
// numeric strings parse normally, and any other value degrades to zero
// instead of failing the request. Keeping the policy in a dedicated type
// isolates it from the computation code that consumes the parsed values.
type FlexibleNumber float64

// UnmarshalJSON implements lenient numeric decoding
func (n *FlexibleNumber) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*n = FlexibleNumber(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*n = FlexibleNumber(f)
			return nil
		}
	}

	// Malformed numeric input is normalized to zero rather than rejected
	*n = 0
	return nil
}

// MarshalJSON emits the value as a plain JSON number
func (n FlexibleNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(n))
}
