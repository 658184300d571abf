package anim

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestEasingEndpoints(t *testing.T) {
	tests := []struct {
		name string
		ease Easing
	}{
		{"linear", Linear},
		{"decelerate", Decelerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ease(0); got != 0 {
				t.Errorf("f(0) = %v, want 0", got)
			}
			if got := tt.ease(1); got != 1 {
				t.Errorf("f(1) = %v, want 1", got)
			}
			if got := tt.ease(-0.5); got != 0 {
				t.Errorf("f(-0.5) = %v, want 0 (clamped)", got)
			}
			if got := tt.ease(1.5); got != 1 {
				t.Errorf("f(1.5) = %v, want 1 (clamped)", got)
			}
		})
	}
}

func TestDecelerateShape(t *testing.T) {
	if got := Decelerate(0.5); !almostEqual(got, 0.75) {
		t.Errorf("Decelerate(0.5) = %v, want 0.75", got)
	}

	// Monotonic with shrinking increments.
	prev := 0.0
	prevStep := math.Inf(1)
	for i := 1; i <= 100; i++ {
		v := Decelerate(float64(i) / 100)
		step := v - prev
		if step < 0 {
			t.Fatalf("Decelerate not monotonic at %d: %v < %v", i, v, prev)
		}
		if step > prevStep+epsilon {
			t.Fatalf("Decelerate slope increased at %d: %v > %v", i, step, prevStep)
		}
		prev, prevStep = v, step
	}
}
