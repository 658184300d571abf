// Package anim provides the frame-driven animation primitives behind
// arcprogress: easing curves, a single-threaded deferred task queue, the
// determinate [ProgressAnimator] and the two-driver [IndeterminateAnimator].
//
// # Time Model
//
// Nothing in this package owns a clock or a goroutine. The host advances
// every animator explicitly with Tick(dt) from its update loop, and runs
// deferred work with [TaskQueue.RunPending]. All types are therefore NOT
// safe for concurrent use; drive them from one goroutine.
//
// # Deferred Restart
//
// The indeterminate sweep driver does not restart itself from inside its
// own completion. It posts a restart task to a [TaskQueue], and the task
// runs on the host's next RunPending call. Every Cancel bumps a generation
// counter so a restart that was queued before the cancel is dropped when it
// finally runs.
package anim
