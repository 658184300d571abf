package arcprogress

import (
	"testing"
	"time"

	"github.com/gogpu/arcprogress/anim"
)

func TestNewDefaultOptions(t *testing.T) {
	b, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if b.TaskQueue() == nil {
		t.Error("TaskQueue() is nil, expected a private queue")
	}
	// The default invalidator is a no-op and must not panic.
	b.Resize(10, 10)
}

func TestWithInvalidatorNilKeepsDefault(t *testing.T) {
	b, err := New(DefaultConfig(), WithInvalidator(nil))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	b.SetDrawBackground(true)
}

func TestWithTaskQueueShared(t *testing.T) {
	q := anim.NewTaskQueue()
	cfg := DefaultConfig()
	cfg.Indeterminate = true

	b, err := New(cfg, WithTaskQueue(q))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if b.TaskQueue() != q {
		t.Fatal("TaskQueue() is not the injected queue")
	}

	b.Attach()
	b.Tick(cfg.SweepDuration)
	if q.Len() != 1 {
		t.Fatalf("restart not posted to the shared queue, Len() = %d", q.Len())
	}

	// The host may drain the queue itself between ticks.
	q.RunPending()
	if !b.ArcState().Spinner.Phase.GrowMode {
		t.Error("restart run by the host did not toggle the phase")
	}
	b.Tick(16 * time.Millisecond)
}
