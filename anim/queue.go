package anim

// TaskQueue is a single-threaded queue of deferred work.
//
// Tasks posted while RunPending is executing are not run by that call;
// they wait for the next one. This keeps a completion handler from
// re-entering the animator that posted it.
type TaskQueue struct {
	tasks []func()
}

// NewTaskQueue creates an empty queue.
func NewTaskQueue() *TaskQueue {
	return &TaskQueue{}
}

// Post appends fn to the queue. A nil fn is ignored.
func (q *TaskQueue) Post(fn func()) {
	if fn == nil {
		return
	}
	q.tasks = append(q.tasks, fn)
}

// RunPending runs the tasks that were queued before the call, in order,
// and returns how many ran.
func (q *TaskQueue) RunPending() int {
	n := len(q.tasks)
	if n == 0 {
		return 0
	}
	batch := q.tasks[:n:n]
	q.tasks = nil
	for _, fn := range batch {
		fn()
	}
	return n
}

// Len returns the number of queued tasks.
func (q *TaskQueue) Len() int {
	return len(q.tasks)
}

// Clear drops every queued task without running it.
func (q *TaskQueue) Clear() {
	q.tasks = nil
}
