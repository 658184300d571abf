package anim

// Easing maps linear progress t in [0, 1] to an interpolation factor.
// Implementations must satisfy f(0) = 0 and f(1) = 1.
type Easing func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return clampUnit(t)
}

// Decelerate starts fast and settles into place: 1 - (1-t)^2.
// The slope decreases monotonically from 2 at t=0 to 0 at t=1.
func Decelerate(t float64) float64 {
	t = clampUnit(t)
	inv := 1 - t
	return 1 - inv*inv
}

func clampUnit(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
