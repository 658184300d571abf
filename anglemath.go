package arcprogress

import "math"

// FullCircle is the sweep of a closed arc, in degrees.
const FullCircle = 360.0

// CapAngle returns the angular compensation for a stroke cap.
//
// Round and square caps stick out by half the stroke width past each end
// of the arc. Converted to an angle on a circle of the given radius that is
// 90*width/(pi*radius) degrees. Butt caps, and degenerate radii (<= 0),
// need no compensation.
func CapAngle(strokeWidth, radius float64, c StrokeCap) float64 {
	switch c {
	case CapRound, CapSquare:
		if radius <= 0 {
			return 0
		}
		return 90 * strokeWidth / math.Pi / radius
	default:
		return 0
	}
}

// DeterminateSweep converts progress into a sweep angle in degrees.
//
// While |progress| < |maximum| the sweep is progress/maximum*360 with the
// sign preserved. Anything beyond saturates at a full circle; a full circle
// has no sign, so the result is always +360.
//
// A zero maximum is a caller bug and panics with ErrZeroMaximum.
func DeterminateSweep(progress, maximum float64) float64 {
	if maximum == 0 {
		panic(ErrZeroMaximum)
	}
	if math.Abs(progress) < math.Abs(maximum) {
		return progress / maximum * FullCircle
	}
	return FullCircle
}

// ApplyCapCompensation shrinks the sweep by one cap angle at each end and
// shifts the start inward so the visible ends of a capped stroke land on
// the mathematical arc boundary.
//
// Nothing changes when capAngle is 0 or the arc is a full circle, which has
// no ends. The compensated sweep may change sign on very short arcs; it is
// returned as is.
func ApplyCapCompensation(start, sweep, capAngle float64) (float64, float64) {
	if capAngle == 0 || math.Abs(sweep) == FullCircle {
		return start, sweep
	}
	switch {
	case sweep > 0:
		start += capAngle
		sweep -= capAngle * 2
	case sweep < 0:
		start -= capAngle
		sweep += capAngle * 2
	}
	return start, sweep
}
