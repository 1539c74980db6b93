// Package anim holds values which transition toward a target over time
// instead of snapping to it.
package anim

//go:generate go tool go-enum --marshal --names --nocase --mustparse

// Easing curve applied to animation progress.
// ENUM(linear, ease-in, ease-out, ease-in-out)
type Curve int

// Ease maps linear progress t to eased progress. Both are clamped to [0, 1]
// and every curve is monotonic, so eased values never overshoot the target.
func (x Curve) Ease(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	switch x {
	case CurveEaseIn:
		return t * t
	case CurveEaseOut:
		return t * (2 - t)
	case CurveEaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	default:
		return t
	}
}
