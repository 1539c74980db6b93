package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AutoDimension is what "auto" and empty dimension literals resolve to.
// Geometry treats auto width and height as filling the parent, use IsAuto to
// tell it apart from an explicit zero.
const AutoDimension = 0.0

// IsAuto reports whether the dimension literal is "auto" or empty.
func IsAuto(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, "auto")
}

// ParseDimension resolves "<n>%", "<n>px", "<n>" and "auto" against the parent
// dimension. Negative and non numeric literals resolve to 0 with an error
// wrapping ErrMalformed.
func ParseDimension(s string, parent float64) (float64, error) {
	if IsAuto(s) {
		return AutoDimension, nil
	}

	str := strings.ToLower(strings.TrimSpace(s))
	percent := false
	switch {
	case strings.HasSuffix(str, "%"):
		str, percent = strings.TrimSuffix(str, "%"), true
	case strings.HasSuffix(str, "px"):
		str = strings.TrimSuffix(str, "px")
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: dimension %q", ErrMalformed, s)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: negative dimension %q", ErrMalformed, s)
	}
	if percent {
		return v / 100 * parent, nil
	}
	return v, nil
}

// ParseNumber parses a plain number with an optional "px" suffix.
func ParseNumber(s string) (float64, error) {
	str := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "px")
	v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: number %q", ErrMalformed, s)
	}
	return v, nil
}
