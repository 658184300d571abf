package arcprogress

import "github.com/gogpu/arcprogress/anim"

// Option configures a Bar during creation.
//
// Example:
//
//	bar, err := arcprogress.New(arcprogress.DefaultConfig(),
//	    arcprogress.WithInvalidator(window.RequestRepaint))
type Option func(*options)

// options holds optional configuration for Bar creation.
type options struct {
	invalidate func()
	queue      *anim.TaskQueue
}

func defaultOptions() options {
	return options{
		invalidate: func() {},
		queue:      nil, // Created in New if nil
	}
}

// WithInvalidator sets the redraw-request sink. The Bar calls fn whenever
// the drawn geometry may have changed; the host schedules a repaint and
// later reads Angles. The Bar never draws by itself.
func WithInvalidator(fn func()) Option {
	return func(o *options) {
		if fn != nil {
			o.invalidate = fn
		}
	}
}

// WithTaskQueue shares the host's deferred task queue with the Bar.
// Tasks the Bar posts run when the host calls RunPending, or on the
// Bar's next Tick. Without this option the Bar owns a private queue.
func WithTaskQueue(q *anim.TaskQueue) Option {
	return func(o *options) {
		o.queue = q
	}
}
