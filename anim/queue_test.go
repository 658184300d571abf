package anim

import "testing"

func TestTaskQueueRunsInOrder(t *testing.T) {
	q := NewTaskQueue()
	var got []int
	for i := range 3 {
		q.Post(func() { got = append(got, i) })
	}

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}
	if n := q.RunPending(); n != 3 {
		t.Errorf("RunPending() = %d, want 3", n)
	}
	if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Errorf("ran %v, want [0 1 2]", got)
	}
	if q.Len() != 0 {
		t.Errorf("Len() after run = %d, want 0", q.Len())
	}
}

func TestTaskQueueDefersTasksPostedDuringRun(t *testing.T) {
	q := NewTaskQueue()
	ran := 0
	q.Post(func() {
		ran++
		q.Post(func() { ran++ })
	})

	if n := q.RunPending(); n != 1 {
		t.Fatalf("first RunPending() = %d, want 1", n)
	}
	if ran != 1 {
		t.Fatalf("ran = %d after first pass, want 1", ran)
	}
	if q.Len() != 1 {
		t.Fatalf("nested task not queued, Len() = %d", q.Len())
	}
	if n := q.RunPending(); n != 1 {
		t.Errorf("second RunPending() = %d, want 1", n)
	}
	if ran != 2 {
		t.Errorf("ran = %d, want 2", ran)
	}
}

func TestTaskQueueClearAndNil(t *testing.T) {
	q := NewTaskQueue()
	q.Post(nil)
	if q.Len() != 0 {
		t.Errorf("Post(nil) queued a task")
	}

	called := false
	q.Post(func() { called = true })
	q.Clear()
	if n := q.RunPending(); n != 0 {
		t.Errorf("RunPending() after Clear = %d, want 0", n)
	}
	if called {
		t.Error("cleared task ran")
	}
}
