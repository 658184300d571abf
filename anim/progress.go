package anim

import "time"

// ProgressAnimator drives a single value from a start to a target over a
// fixed duration with an easing curve.
//
// At most one animation is in flight. Starting a new one while running
// continues from the current interpolated value, so retargeting never
// makes the value jump.
type ProgressAnimator struct {
	// Easing shapes the interpolation. Defaults to [Decelerate].
	Easing Easing

	from    float64
	to      float64
	value   float64
	elapsed time.Duration

	// duration applies to the next Start; runDuration to the run in flight.
	duration    time.Duration
	runDuration time.Duration
	running     bool
}

// NewProgressAnimator creates an idle animator with the given duration.
// Negative durations are treated as zero.
func NewProgressAnimator(duration time.Duration) *ProgressAnimator {
	return &ProgressAnimator{
		Easing:   Decelerate,
		duration: max(duration, 0),
	}
}

// Duration returns the duration used by the next Start.
func (a *ProgressAnimator) Duration() time.Duration {
	return a.duration
}

// SetDuration changes the duration of future runs. A run already in
// flight keeps the duration it started with.
func (a *ProgressAnimator) SetDuration(d time.Duration) {
	a.duration = max(d, 0)
}

// Start begins animating from from to to. If an animation is already
// running, its current value replaces from. A zero duration resolves to
// to immediately and leaves the animator idle.
func (a *ProgressAnimator) Start(from, to float64) {
	if a.running {
		from = a.value
	}
	a.from = from
	a.to = to
	a.elapsed = 0
	a.runDuration = a.duration

	if a.runDuration == 0 {
		a.value = to
		a.running = false
		return
	}
	a.value = from
	a.running = true
}

// Tick advances the animation by dt and returns the current value.
// Ticking an idle animator returns the frozen value.
func (a *ProgressAnimator) Tick(dt time.Duration) float64 {
	if !a.running {
		return a.value
	}
	if dt > 0 {
		// Saturate so a huge dt cannot overflow elapsed.
		if dt >= a.runDuration-a.elapsed {
			a.elapsed = a.runDuration
		} else {
			a.elapsed += dt
		}
	}

	t := float64(a.elapsed) / float64(a.runDuration)
	if t >= 1 {
		a.value = a.to
		a.running = false
		return a.value
	}

	ease := a.Easing
	if ease == nil {
		ease = Decelerate
	}
	a.value = a.from + ease(t)*(a.to-a.from)
	return a.value
}

// Cancel stops the animation, freezing the value where it is.
func (a *ProgressAnimator) Cancel() {
	a.running = false
}

// Running reports whether an animation is in flight.
func (a *ProgressAnimator) Running() bool {
	return a.running
}

// Value returns the current interpolated value.
func (a *ProgressAnimator) Value() float64 {
	return a.value
}

// Target returns the value the current or last run heads to.
func (a *ProgressAnimator) Target() float64 {
	return a.to
}
