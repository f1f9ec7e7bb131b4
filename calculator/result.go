package calculator

import (
	"math"
	"strconv"
	"strings"
)

// Result is an operation output. It encodes to JSON the way the service has
// always rendered doubles: integral values keep a trailing ".0", magnitudes
// outside [1e-3, 1e7) use "1.0E10" notation, and non-finite values become
// the strings "NaN", "Infinity" and "-Infinity".
type Result float64

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	v := float64(r)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Infinity"`), nil
	}
	return []byte(r.String()), nil
}

// String formats a finite result; non-finite values use the same spelling
// as their JSON form without quotes.
func (r Result) String() string {
	v := float64(r)
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if v == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// 1.2345E+07 -> 1.2345E7, 1E-05 -> 1.0E-5
	s := strconv.FormatFloat(v, 'E', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	sign := ""
	if strings.HasPrefix(exp, "-") {
		sign = "-"
	}
	exp = strings.TrimLeft(exp, "+-0")
	return mantissa + "E" + sign + exp
}
