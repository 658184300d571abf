// Package arcprogress implements the geometry and animation state of a
// circular progress indicator.
//
// # Overview
//
// A [Bar] draws a single arc on a circle in one of two modes:
//
//   - Determinate: the arc covers progress/maximum of the circle, starting
//     at a configurable angle. Progress changes are interpolated with a
//     decelerating curve.
//   - Indeterminate: a perpetual spinner. A linear rotation carries an arc
//     that alternately grows from its tail and shrinks toward its head.
//
// The package owns the math and the animation state. It never rasterizes:
// the host asks for [Bar.Angles] and [Bar.DrawRect] and draws them with its
// own canvas. The integration/ggring package does that with gg.
//
// # Quick Start
//
//	bar, err := arcprogress.New(arcprogress.DefaultConfig(),
//	    arcprogress.WithInvalidator(requestRepaint))
//	if err != nil {
//	    return err
//	}
//	bar.Resize(128, 128)
//	bar.Attach()
//	bar.SetProgress(42)
//
//	// every frame, from the host's update loop
//	bar.Tick(time.Second / 60)
//	start, sweep := bar.Angles()
//
// # Coordinate System
//
// Angles are in degrees in screen space: 0 is 3 o'clock and angles increase
// clockwise because Y grows downward. The default start angle, 270, is 12
// o'clock.
//
// # Stroke Caps
//
// Round and square caps extend past the ends of the arc. [CapAngle]
// converts that overhang into degrees for the current radius and
// [ApplyCapCompensation] pulls both ends in by it, so the visible arc ends
// exactly where the math says. A full circle is never compensated.
//
// # Threading
//
// Everything is single-threaded and frame-driven. Animations advance only
// in [Bar.Tick]; deferred work goes through an anim.TaskQueue run at the
// start of the next Tick.
//
// # Errors
//
// Validating setters return an error wrapping [ErrInvalidArgument] and leave
// the Bar unchanged. A zero maximum reaching [DeterminateSweep] is a
// programming error and panics with [ErrZeroMaximum].
package arcprogress
