package arcprogress

import (
	"time"

	"github.com/gogpu/arcprogress/anim"
	"github.com/gogpu/gg"
)

// Bar is a circular progress indicator: the lifecycle controller that owns
// the configuration, starts and stops the animators on host signals, and
// derives the angles to draw each frame.
//
// The host feeds it four signals (Attach/Detach, SetVisible, Resize, Tick)
// and reads Angles and DrawRect when it repaints. Bar is NOT safe for
// concurrent use; drive it from the host's update goroutine.
type Bar struct {
	cfg Config

	width    float64
	height   float64
	rect     Rect
	capAngle float64

	visible  bool
	attached bool

	progress   *anim.ProgressAnimator
	spinner    *anim.IndeterminateAnimator
	queue      *anim.TaskQueue
	invalidate func()
}

// New creates a detached, invisible Bar. The configuration is validated
// first; an invalid cfg returns an error wrapping ErrInvalidArgument.
func New(cfg Config, opts ...Option) (*Bar, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.queue == nil {
		o.queue = anim.NewTaskQueue()
	}

	b := &Bar{
		cfg:        cfg,
		queue:      o.queue,
		invalidate: o.invalidate,
		progress:   anim.NewProgressAnimator(cfg.ProgressDuration),
		spinner: anim.NewIndeterminateAnimator(o.queue, anim.IndeterminateConfig{
			MinimumAngle:     cfg.MinimumAngle,
			RotationDuration: cfg.RotationDuration,
			SweepDuration:    cfg.SweepDuration,
		}),
	}
	b.spinner.KeepRunning = func() bool {
		return b.visible && b.cfg.Indeterminate
	}
	return b, nil
}

// Attach marks the Bar as shown by the host. It becomes visible and, in
// indeterminate mode, starts spinning.
func (b *Bar) Attach() {
	b.attached = true
	Logger().Debug("arcprogress: attached", "indeterminate", b.cfg.Indeterminate)
	b.SetVisible(true)
}

// Detach marks the Bar as torn down and cancels every animation
// unconditionally. Deferred restarts already queued become stale.
func (b *Bar) Detach() {
	b.attached = false
	b.visible = false
	b.spinner.Cancel()
	b.progress.Cancel()
	Logger().Debug("arcprogress: detached")
}

// SetVisible reports a visibility change from the host. In indeterminate
// mode it starts or cancels the spinner.
func (b *Bar) SetVisible(visible bool) {
	b.visible = visible
	if !b.cfg.Indeterminate {
		return
	}
	if visible {
		b.spinner.Start()
		Logger().Debug("arcprogress: indeterminate animation started")
	} else {
		b.spinner.Cancel()
		Logger().Debug("arcprogress: indeterminate animation cancelled", "reason", "hidden")
	}
}

// Resize reports new host bounds. The draw rect and cap angle follow.
func (b *Bar) Resize(width, height float64) {
	b.width = width
	b.height = height
	b.updateDrawRect()
	b.requestRedraw()
}

// Tick advances time by dt. Deferred tasks queued before the call run
// first, then the active animator steps. Tick requests a redraw when
// anything moved and reports whether the host should keep ticking.
func (b *Bar) Tick(dt time.Duration) bool {
	moved := b.queue.RunPending() > 0

	if b.progress.Running() {
		b.cfg.Progress = b.progress.Tick(dt)
		moved = true
	}
	if b.spinner.Tick(dt) {
		moved = true
	}

	if moved {
		b.requestRedraw()
	}
	return b.Animating()
}

// Animating reports whether any animation runs or a deferred restart is
// pending.
func (b *Bar) Animating() bool {
	return b.progress.Running() || b.spinner.Running()
}

// ArcState returns the inputs of the current frame.
func (b *Bar) ArcState() ArcState {
	return ArcState{
		Indeterminate: b.cfg.Indeterminate,
		Determinate: DeterminateState{
			Progress:   b.cfg.Progress,
			Maximum:    b.cfg.Maximum,
			StartAngle: b.cfg.StartAngle,
		},
		Spinner: IndeterminateState{
			RotationAngle: b.spinner.RotationAngle(),
			SweepAngle:    b.spinner.SweepAngle(),
			MinimumAngle:  b.cfg.MinimumAngle,
			Phase:         b.spinner.Phase(),
		},
		CapAngle: b.capAngle,
	}
}

// Angles returns the start and sweep, in degrees, of the foreground arc
// for the current frame.
func (b *Bar) Angles() (start, sweep float64) {
	return b.ArcState().Angles()
}

// DrawRect returns the square the arcs are inscribed in. It is empty until
// the first Resize with a positive size.
func (b *Bar) DrawRect() Rect {
	return b.rect
}

// CapAngle returns the current foreground cap compensation in degrees.
func (b *Bar) CapAngle() float64 {
	return b.capAngle
}

// TaskQueue returns the deferred task queue the Bar posts to.
func (b *Bar) TaskQueue() *anim.TaskQueue {
	return b.queue
}

// Config returns a snapshot of the configuration. Progress holds the
// currently drawn value, which lags the target while animating.
func (b *Bar) Config() Config {
	return b.cfg
}

// Visible reports the last visibility signal.
func (b *Bar) Visible() bool { return b.visible }

// Attached reports whether Attach was called without a later Detach.
func (b *Bar) Attached() bool { return b.attached }

// Indeterminate reports whether the spinner mode is selected.
func (b *Bar) Indeterminate() bool { return b.cfg.Indeterminate }

// Progress returns the progress value currently drawn.
func (b *Bar) Progress() float64 { return b.cfg.Progress }

// ProgressTarget returns the value the progress animation heads to, or the
// drawn value when idle.
func (b *Bar) ProgressTarget() float64 {
	if b.progress.Running() {
		return b.progress.Target()
	}
	return b.cfg.Progress
}

// Maximum returns the progress drawn as a full circle.
func (b *Bar) Maximum() float64 { return b.cfg.Maximum }

// StartAngle returns the determinate start angle.
func (b *Bar) StartAngle() float64 { return b.cfg.StartAngle }

// Foreground returns the foreground arc stroke.
func (b *Bar) Foreground() Stroke { return b.cfg.Foreground }

// Background returns the background circle stroke.
func (b *Bar) Background() Stroke { return b.cfg.Background }

// DrawBackground reports whether the background circle is drawn.
func (b *Bar) DrawBackground() bool { return b.cfg.DrawBackground }

// SetIndeterminate switches between determinate and indeterminate mode.
// The animator of the mode being left is cancelled first. Enabling the
// mode from off resets the grow/shrink phase.
func (b *Bar) SetIndeterminate(indeterminate bool) {
	if indeterminate == b.cfg.Indeterminate {
		if indeterminate && b.visible {
			b.spinner.Start()
		}
		return
	}

	b.spinner.Cancel()
	b.progress.Cancel()
	b.cfg.Indeterminate = indeterminate
	if indeterminate {
		b.spinner.ResetPhase()
	}
	b.requestRedraw()

	if indeterminate && b.visible {
		b.spinner.Start()
	}
	Logger().Debug("arcprogress: mode changed", "indeterminate", indeterminate, "visible", b.visible)
}

// SetProgress sets the determinate progress.
//
// While visible with animation enabled, the drawn value moves to progress
// over the progress duration, starting from the value drawn now. Otherwise
// it jumps. In indeterminate mode the value is stored for later.
// NaN and infinite values are ignored.
func (b *Bar) SetProgress(progress float64) {
	if err := checkFinite("progress", progress); err != nil {
		Logger().Debug("arcprogress: progress ignored", "error", err)
		return
	}
	if b.cfg.Indeterminate {
		b.cfg.Progress = progress
		return
	}

	b.progress.Cancel()
	if b.visible && b.cfg.AnimateProgress {
		b.progress.Start(b.cfg.Progress, progress)
		if !b.progress.Running() {
			b.cfg.Progress = b.progress.Value()
		}
	} else {
		b.cfg.Progress = progress
	}
	b.requestRedraw()
}

// SetMaximum sets the progress drawn as a full circle. Zero and
// non-finite values are rejected.
func (b *Bar) SetMaximum(maximum float64) error {
	if err := checkMaximum(maximum); err != nil {
		return err
	}
	b.cfg.Maximum = maximum
	b.requestRedraw()
	return nil
}

// SetStartAngle sets where the determinate arc begins, in [-360, 360].
func (b *Bar) SetStartAngle(angle float64) error {
	if err := checkStartAngle(angle); err != nil {
		return err
	}
	b.cfg.StartAngle = angle
	b.requestRedraw()
	return nil
}

// SetAnimateProgress enables or disables progress interpolation.
func (b *Bar) SetAnimateProgress(animate bool) {
	b.cfg.AnimateProgress = animate
}

// SetProgressDuration sets the progress interpolation length. A run in
// flight keeps its duration.
func (b *Bar) SetProgressDuration(d time.Duration) error {
	if err := checkDuration("progress duration", d); err != nil {
		return err
	}
	b.cfg.ProgressDuration = d
	b.progress.SetDuration(d)
	return nil
}

// SetMinimumAngle sets the shortest indeterminate arc, in [0, 180]. The
// spinner restarts with the new sweep range when running.
func (b *Bar) SetMinimumAngle(angle float64) error {
	if err := checkMinimumAngle(angle); err != nil {
		return err
	}
	b.spinner.Cancel()
	b.cfg.MinimumAngle = angle
	b.spinner.SetMinimumAngle(angle)
	b.requestRedraw()
	if b.visible && b.cfg.Indeterminate {
		b.spinner.Start()
	}
	return nil
}

// SetRotationDuration sets the indeterminate rotation period. It applies
// from the next turn.
func (b *Bar) SetRotationDuration(d time.Duration) error {
	if err := checkDuration("rotation duration", d); err != nil {
		return err
	}
	b.cfg.RotationDuration = d
	b.spinner.SetRotationDuration(d)
	return nil
}

// SetSweepDuration sets the length of one grow or shrink phase. It applies
// from the next sweep.
func (b *Bar) SetSweepDuration(d time.Duration) error {
	if err := checkDuration("sweep duration", d); err != nil {
		return err
	}
	b.cfg.SweepDuration = d
	b.spinner.SetSweepDuration(d)
	return nil
}

// SetForegroundStrokeCap sets the foreground cap and recomputes the cap
// compensation.
func (b *Bar) SetForegroundStrokeCap(c StrokeCap) error {
	if err := checkCap(c); err != nil {
		return err
	}
	b.cfg.Foreground.Cap = c
	b.updateCapAngle()
	b.requestRedraw()
	return nil
}

// SetForegroundStrokeWidth sets the foreground width in pixels (>= 0).
func (b *Bar) SetForegroundStrokeWidth(width float64) error {
	if err := checkWidth("foreground stroke width", width); err != nil {
		return err
	}
	b.cfg.Foreground.Width = width
	b.updateDrawRect()
	b.requestRedraw()
	return nil
}

// SetForegroundColor sets the foreground arc colour.
func (b *Bar) SetForegroundColor(c gg.RGBA) {
	b.cfg.Foreground.Color = c
	b.requestRedraw()
}

// SetBackgroundColor sets the background circle colour.
func (b *Bar) SetBackgroundColor(c gg.RGBA) {
	b.cfg.Background.Color = c
	b.requestRedraw()
}

// SetBackgroundStrokeWidth sets the background width in pixels (>= 0).
func (b *Bar) SetBackgroundStrokeWidth(width float64) error {
	if err := checkWidth("background stroke width", width); err != nil {
		return err
	}
	b.cfg.Background.Width = width
	b.updateDrawRect()
	b.requestRedraw()
	return nil
}

// SetDrawBackground enables or disables the background circle.
func (b *Bar) SetDrawBackground(draw bool) {
	b.cfg.DrawBackground = draw
	b.updateDrawRect()
	b.requestRedraw()
}

// updateDrawRect recomputes the draw rect for the current bounds and
// stroke widths, then the cap angle that depends on its radius.
func (b *Bar) updateDrawRect() {
	if b.width > 0 && b.height > 0 {
		thickness := b.cfg.Foreground.Width
		if b.cfg.DrawBackground {
			thickness = max(thickness, b.cfg.Background.Width)
		}
		b.rect = ComputeDrawRect(b.width, b.height, thickness)
	} else {
		b.rect = Rect{}
	}
	b.updateCapAngle()
}

func (b *Bar) updateCapAngle() {
	b.capAngle = CapAngle(b.cfg.Foreground.Width, b.rect.Radius(), b.cfg.Foreground.Cap)
}

func (b *Bar) requestRedraw() {
	b.invalidate()
}
