package anim

import (
	"time"
)

// Timing describes how a value travels toward its target.
type Timing struct {
	Duration time.Duration
	Curve    Curve
	// Now is the clock used to sample progress, time.Now when nil.
	Now func() time.Time
}

// DefaultTiming is used when no timing was configured.
var DefaultTiming = Timing{Duration: 300 * time.Millisecond, Curve: CurveEaseInOut}

func (t Timing) now() time.Time {
	if t.Now == nil {
		return time.Now()
	}
	return t.Now()
}

// Lerp interpolates between from and to, t is eased progress in [0, 1].
type Lerp[T any] func(from, to T, t float64) T

// LerpFloat is linear interpolation of scalars.
func LerpFloat(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Value holds a current value which moves toward the most recent target.
// Progress is derived from the clock every time the value is read, there is
// no background ticking. Not safe for concurrent use.
type Value[T any] struct {
	timing  Timing
	lerp    Lerp[T]
	from    T
	to      T
	start   time.Time
	running bool
}

// New creates a value resting at initial.
func New[T any](initial T, lerp Lerp[T], timing Timing) *Value[T] {
	return &Value[T]{timing: timing, lerp: lerp, from: initial, to: initial}
}

// NewFloat creates a scalar value resting at initial.
func NewFloat(initial float64, timing Timing) *Value[float64] {
	return New(initial, LerpFloat, timing)
}

// Reset snaps current and target to x, discarding any transition in flight.
func (v *Value[T]) Reset(x T) {
	v.from, v.to = x, x
	v.running = false
}

// AnimateTo starts transition from the present value toward x.
func (v *Value[T]) AnimateTo(x T) {
	now := v.timing.now()
	v.from = v.at(now)
	v.to = x
	v.start = now
	v.running = v.timing.Duration > 0
}

// Current returns the value at the present moment.
func (v *Value[T]) Current() T {
	return v.at(v.timing.now())
}

// Target returns the value transition is heading to.
func (v *Value[T]) Target() T {
	return v.to
}

// Animating reports whether transition is still in progress.
func (v *Value[T]) Animating() bool {
	return v.running && v.timing.now().Sub(v.start) < v.timing.Duration
}

// Progress returns eased progress of the current transition, 1 when idle.
func (v *Value[T]) Progress() float64 {
	if !v.running {
		return 1
	}
	return v.progress(v.timing.now())
}

func (v *Value[T]) progress(now time.Time) float64 {
	return v.timing.Curve.Ease(float64(now.Sub(v.start)) / float64(v.timing.Duration))
}

func (v *Value[T]) at(now time.Time) T {
	if !v.running {
		return v.to
	}
	p := v.progress(now)
	switch {
	case p <= 0:
		return v.from
	case p >= 1:
		return v.to
	}
	return v.lerp(v.from, v.to, p)
}
