package anim

import (
	"math"
	"time"
)

// IndeterminateConfig configures an [IndeterminateAnimator].
type IndeterminateConfig struct {
	// MinimumAngle is the shortest arc, in degrees, ever drawn. [0, 180].
	MinimumAngle float64

	// RotationDuration is the period of one full 360 degree turn.
	RotationDuration time.Duration

	// SweepDuration is the length of one grow or shrink phase.
	SweepDuration time.Duration
}

// Phase is the grow/shrink state of the indeterminate arc.
type Phase struct {
	// GrowMode is true while the arc lengthens from its tail.
	GrowMode bool

	// OffsetAngle accumulates 2*MinimumAngle (mod 360) on every switch
	// into grow mode so consecutive cycles do not restart at the same spot.
	OffsetAngle float64
}

// next returns the phase after one natural sweep completion.
func (p Phase) next(minimumAngle float64) Phase {
	p.GrowMode = !p.GrowMode
	if p.GrowMode {
		p.OffsetAngle = math.Mod(p.OffsetAngle+minimumAngle*2, 360)
	}
	return p
}

// rotationDriver is a linear, infinitely repeating [0, 360) driver.
type rotationDriver struct {
	elapsed time.Duration
	period  time.Duration
	value   float64
	running bool
}

func (d *rotationDriver) start(period time.Duration) {
	d.elapsed = 0
	d.period = period
	d.value = 0
	d.running = true
}

// tick advances the driver. A new period takes effect when the current
// turn wraps.
func (d *rotationDriver) tick(dt, next time.Duration) {
	if d.period <= 0 {
		d.period = next
		d.elapsed = 0
		if d.period <= 0 {
			d.value = 0
			return
		}
	}

	d.elapsed += dt
	if d.elapsed >= d.period {
		d.elapsed %= d.period
		if next != d.period {
			d.period = next
			if d.period <= 0 {
				d.elapsed = 0
				d.value = 0
				return
			}
			d.elapsed %= d.period
		}
	}
	d.value = 360 * float64(d.elapsed) / float64(d.period)
}

// sweepDriver is a one-shot [0, limit] driver.
type sweepDriver struct {
	elapsed  time.Duration
	duration time.Duration
	value    float64
	running  bool
}

func (d *sweepDriver) start(duration time.Duration) {
	d.elapsed = 0
	d.duration = duration
	d.value = 0
	d.running = true
}

// tick advances the driver and reports natural completion.
func (d *sweepDriver) tick(dt time.Duration, ease Easing, limit float64) bool {
	d.elapsed += dt
	if d.duration <= 0 || d.elapsed >= d.duration {
		d.value = limit
		d.running = false
		return true
	}
	d.value = ease(float64(d.elapsed)/float64(d.duration)) * limit
	return false
}

// IndeterminateAnimator couples a continuous rotation with an oscillating
// sweep and the grow/shrink phase toggle that links them.
//
// The sweep driver never restarts inline. On natural completion it posts a
// restart to the task queue; the restart toggles the phase and, if
// KeepRunning allows, starts the next sweep. Cancel invalidates any restart
// already queued.
type IndeterminateAnimator struct {
	// Easing shapes the sweep driver. Defaults to [Decelerate].
	Easing Easing

	// KeepRunning is consulted by a deferred restart after the phase
	// toggle. A nil KeepRunning always restarts.
	KeepRunning func() bool

	cfg        IndeterminateConfig
	rotation   rotationDriver
	sweep      sweepDriver
	phase      Phase
	queue      *TaskQueue
	generation uint64
	pending    bool
}

// NewIndeterminateAnimator creates a stopped animator posting its deferred
// restarts to queue. A nil queue gets a private one, reachable via Queue.
func NewIndeterminateAnimator(queue *TaskQueue, cfg IndeterminateConfig) *IndeterminateAnimator {
	if queue == nil {
		queue = NewTaskQueue()
	}
	cfg.RotationDuration = max(cfg.RotationDuration, 0)
	cfg.SweepDuration = max(cfg.SweepDuration, 0)
	return &IndeterminateAnimator{
		Easing: Decelerate,
		cfg:    cfg,
		queue:  queue,
	}
}

// Queue returns the task queue restarts are posted to.
func (a *IndeterminateAnimator) Queue() *TaskQueue {
	return a.queue
}

// Config returns the current configuration.
func (a *IndeterminateAnimator) Config() IndeterminateConfig {
	return a.cfg
}

// SetMinimumAngle changes the minimum arc. The sweep limit shrinks or grows
// with it; a sweep value beyond the new limit is clamped.
func (a *IndeterminateAnimator) SetMinimumAngle(angle float64) {
	a.cfg.MinimumAngle = angle
	if limit := a.SweepLimit(); a.sweep.value > limit {
		a.sweep.value = limit
	}
}

// SetRotationDuration changes the rotation period from the next turn on.
func (a *IndeterminateAnimator) SetRotationDuration(d time.Duration) {
	a.cfg.RotationDuration = max(d, 0)
}

// SetSweepDuration changes the sweep duration from the next sweep on.
func (a *IndeterminateAnimator) SetSweepDuration(d time.Duration) {
	a.cfg.SweepDuration = max(d, 0)
}

// SweepLimit returns the upper bound of the sweep driver: 360 - 2*minimum.
func (a *IndeterminateAnimator) SweepLimit() float64 {
	return 360 - a.cfg.MinimumAngle*2
}

// Start starts whichever driver is not already running. A sweep whose
// restart is queued counts as running.
func (a *IndeterminateAnimator) Start() {
	if !a.rotation.running {
		a.rotation.start(a.cfg.RotationDuration)
	}
	if !a.sweep.running && !a.pending {
		a.sweep.start(a.cfg.SweepDuration)
	}
}

// Cancel stops both drivers without a phase toggle. Any restart already
// queued becomes stale and is dropped when it runs.
func (a *IndeterminateAnimator) Cancel() {
	a.generation++
	a.pending = false
	a.rotation.running = false
	a.sweep.running = false
}

// ResetPhase returns the phase to shrink mode with no offset.
func (a *IndeterminateAnimator) ResetPhase() {
	a.phase = Phase{}
}

// Tick advances both drivers by dt and reports whether any value moved.
func (a *IndeterminateAnimator) Tick(dt time.Duration) bool {
	if dt < 0 {
		dt = 0
	}
	moved := false
	if a.rotation.running {
		a.rotation.tick(dt, a.cfg.RotationDuration)
		moved = true
	}
	if a.sweep.running {
		ease := a.Easing
		if ease == nil {
			ease = Decelerate
		}
		if a.sweep.tick(dt, ease, a.SweepLimit()) {
			a.scheduleRestart()
		}
		moved = true
	}
	return moved
}

func (a *IndeterminateAnimator) scheduleRestart() {
	a.pending = true
	gen := a.generation
	a.queue.Post(func() {
		a.restart(gen)
	})
}

func (a *IndeterminateAnimator) restart(gen uint64) {
	if gen != a.generation || !a.pending {
		return
	}
	a.pending = false
	a.phase = a.phase.next(a.cfg.MinimumAngle)
	if a.KeepRunning == nil || a.KeepRunning() {
		a.sweep.start(a.cfg.SweepDuration)
	}
}

// Running reports whether either driver runs or a restart is queued.
func (a *IndeterminateAnimator) Running() bool {
	return a.rotation.running || a.sweep.running || a.pending
}

// RotationAngle returns the rotation driver's value in [0, 360).
func (a *IndeterminateAnimator) RotationAngle() float64 {
	return a.rotation.value
}

// SweepAngle returns the sweep driver's value in [0, SweepLimit].
func (a *IndeterminateAnimator) SweepAngle() float64 {
	return a.sweep.value
}

// Phase returns the current grow/shrink phase.
func (a *IndeterminateAnimator) Phase() Phase {
	return a.phase
}
