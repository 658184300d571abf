package arcprogress

import "github.com/gogpu/arcprogress/anim"

// DeterminateState is the per-frame input of a determinate arc.
type DeterminateState struct {
	Progress   float64
	Maximum    float64
	StartAngle float64
}

// IndeterminateState is the per-frame input of an indeterminate arc, read
// from the animator outputs.
type IndeterminateState struct {
	RotationAngle float64
	SweepAngle    float64
	MinimumAngle  float64
	Phase         anim.Phase
}

// ArcState is everything needed to derive the arc drawn in one frame.
// It holds no animation state of its own and Angles has no side effects,
// so the same ArcState always yields the same angles.
type ArcState struct {
	Indeterminate bool
	Determinate   DeterminateState
	Spinner       IndeterminateState
	CapAngle      float64
}

// Angles returns the start and sweep, in degrees, of the arc to draw.
// Angles follow screen conventions: 0 is 3 o'clock, positive is clockwise.
//
// Determinate: start is the configured start angle and the sweep follows
// DeterminateSweep. Indeterminate grow mode anchors the tail and extends
// the head; shrink mode anchors the head and pulls the tail. Cap
// compensation is applied to both.
func (s ArcState) Angles() (start, sweep float64) {
	if s.Indeterminate {
		start, sweep = s.Spinner.angles()
	} else {
		start = s.Determinate.StartAngle
		sweep = DeterminateSweep(s.Determinate.Progress, s.Determinate.Maximum)
	}
	return ApplyCapCompensation(start, sweep, s.CapAngle)
}

func (s IndeterminateState) angles() (start, sweep float64) {
	if s.Phase.GrowMode {
		start = s.RotationAngle - s.Phase.OffsetAngle
		sweep = s.SweepAngle + s.MinimumAngle
		return start, sweep
	}
	start = s.RotationAngle + s.SweepAngle - s.Phase.OffsetAngle
	sweep = FullCircle - s.SweepAngle - s.MinimumAngle
	return start, sweep
}
