package anim

import (
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestValue_AnimateTo(t *testing.T) {
	clock := newClock()
	v := NewFloat(10, Timing{Duration: time.Second, Curve: CurveLinear, Now: clock.Now})

	if got := v.Current(); got != 10 {
		t.Fatalf("Current() = %v, want 10", got)
	}
	if v.Animating() {
		t.Error("new value should not be animating")
	}

	v.AnimateTo(20)
	if got := v.Target(); got != 20 {
		t.Errorf("Target() = %v, want 20", got)
	}

	steps := []struct {
		advance time.Duration
		want    float64
	}{
		{0, 10},
		{250 * time.Millisecond, 12.5},
		{250 * time.Millisecond, 15},
		{500 * time.Millisecond, 20},
		{time.Second, 20},
	}
	for _, s := range steps {
		clock.Advance(s.advance)
		if got := v.Current(); got != s.want {
			t.Errorf("after %v Current() = %v, want %v", s.advance, got, s.want)
		}
	}
	if v.Animating() {
		t.Error("value should not be animating after duration elapsed")
	}
	if got := v.Progress(); got != 1 {
		t.Errorf("Progress() = %v, want 1", got)
	}
}

func TestValue_CurrentIsPure(t *testing.T) {
	clock := newClock()
	v := NewFloat(0, Timing{Duration: time.Second, Curve: CurveLinear, Now: clock.Now})

	v.AnimateTo(100)
	clock.Advance(300 * time.Millisecond)

	first := v.Current()
	for range 5 {
		if got := v.Current(); got != first {
			t.Fatalf("repeated Current() = %v, want %v", got, first)
		}
	}
	if !v.Animating() {
		t.Error("value should still be animating")
	}
}

func TestValue_Retarget(t *testing.T) {
	clock := newClock()
	v := NewFloat(0, Timing{Duration: time.Second, Curve: CurveLinear, Now: clock.Now})

	v.AnimateTo(100)
	clock.Advance(500 * time.Millisecond)
	v.AnimateTo(0)

	if got := v.Current(); got != 50 {
		t.Errorf("Current() right after retarget = %v, want 50", got)
	}
	clock.Advance(500 * time.Millisecond)
	if got := v.Current(); got != 25 {
		t.Errorf("Current() = %v, want 25", got)
	}
}

func TestValue_Reset(t *testing.T) {
	clock := newClock()
	v := NewFloat(0, Timing{Duration: time.Second, Curve: CurveEaseInOut, Now: clock.Now})

	v.AnimateTo(100)
	clock.Advance(100 * time.Millisecond)
	v.Reset(42)

	if got := v.Current(); got != 42 {
		t.Errorf("Current() after Reset = %v, want 42", got)
	}
	if v.Animating() {
		t.Error("Reset should stop transition")
	}
}

func TestValue_ZeroDuration(t *testing.T) {
	v := NewFloat(1, Timing{})

	v.AnimateTo(5)
	if got := v.Current(); got != 5 {
		t.Errorf("Current() = %v, want 5", got)
	}
	if v.Animating() {
		t.Error("zero duration should not animate")
	}
}

func TestValue_StaysInRange(t *testing.T) {
	for _, curve := range []Curve{CurveLinear, CurveEaseIn, CurveEaseOut, CurveEaseInOut} {
		t.Run(curve.String(), func(t *testing.T) {
			clock := newClock()
			v := NewFloat(0, Timing{Duration: time.Second, Curve: curve, Now: clock.Now})
			v.AnimateTo(10)

			prev := 0.0
			for range 40 {
				clock.Advance(30 * time.Millisecond)
				got := v.Current()
				if got < 0 || got > 10 {
					t.Fatalf("Current() = %v is out of [0, 10]", got)
				}
				if got < prev {
					t.Fatalf("Current() = %v went backwards from %v", got, prev)
				}
				prev = got
			}
			if prev != 10 {
				t.Errorf("final value = %v, want 10", prev)
			}
		})
	}
}

func TestValue_Generic(t *testing.T) {
	clock := newClock()
	lerp := func(from, to [2]float64, t float64) [2]float64 {
		return [2]float64{LerpFloat(from[0], to[0], t), LerpFloat(from[1], to[1], t)}
	}
	v := New([2]float64{0, 0}, lerp, Timing{Duration: time.Second, Curve: CurveLinear, Now: clock.Now})

	v.AnimateTo([2]float64{10, 20})
	clock.Advance(500 * time.Millisecond)
	if got := v.Current(); got != [2]float64{5, 10} {
		t.Errorf("Current() = %v, want [5 10]", got)
	}
}

func TestCurve_Ease(t *testing.T) {
	for _, name := range CurveNames() {
		curve := MustParseCurve(name)
		t.Run(name, func(t *testing.T) {
			if got := curve.Ease(0); got != 0 {
				t.Errorf("Ease(0) = %v, want 0", got)
			}
			if got := curve.Ease(1); got != 1 {
				t.Errorf("Ease(1) = %v, want 1", got)
			}
			if got := curve.Ease(-1); got != 0 {
				t.Errorf("Ease(-1) = %v, want 0", got)
			}
			if got := curve.Ease(2); got != 1 {
				t.Errorf("Ease(2) = %v, want 1", got)
			}
			prev := 0.0
			for i := 1; i <= 100; i++ {
				got := curve.Ease(float64(i) / 100)
				if got < prev {
					t.Fatalf("Ease is not monotonic at %v: %v < %v", float64(i)/100, got, prev)
				}
				prev = got
			}
		})
	}

	if got := CurveEaseInOut.Ease(0.5); got != 0.5 {
		t.Errorf("ease-in-out midpoint = %v, want 0.5", got)
	}
	if got := CurveEaseIn.Ease(0.5); got != 0.25 {
		t.Errorf("ease-in midpoint = %v, want 0.25", got)
	}
}
