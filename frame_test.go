package dnd

import "testing"

func TestFrameSchedulerRunsOnNextTick(t *testing.T) {
	var f FrameScheduler
	var ran int
	f.Request(func() { ran++ })
	if ran != 0 {
		t.Fatal("callback ran before Tick")
	}
	if n := f.Tick(); n != 1 {
		t.Errorf("Tick ran %d, want 1", n)
	}
	if n := f.Tick(); n != 0 {
		t.Errorf("second Tick ran %d, want 0", n)
	}
	if ran != 1 {
		t.Errorf("ran = %d, want 1", ran)
	}
}

func TestFrameSchedulerRequestDuringTickWaits(t *testing.T) {
	var f FrameScheduler
	var count int
	var loop func()
	loop = func() {
		count++
		f.Request(loop)
	}
	f.Request(loop)

	for i := 1; i <= 3; i++ {
		f.Tick()
		if count != i {
			t.Fatalf("after tick %d count = %d", i, count)
		}
	}
	if f.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", f.Pending())
	}
}

func TestFrameSchedulerCancel(t *testing.T) {
	var f FrameScheduler
	var ran bool
	h := f.Request(func() { ran = true })
	f.Cancel(h)
	f.Cancel(h)
	f.Cancel(0)
	f.Tick()
	if ran {
		t.Error("cancelled callback ran")
	}
}

func TestFrameSchedulerCancelWithinTick(t *testing.T) {
	var f FrameScheduler
	var second bool
	var h FrameHandle
	f.Request(func() { f.Cancel(h) })
	h = f.Request(func() { second = true })

	if n := f.Tick(); n != 1 {
		t.Errorf("Tick ran %d, want 1", n)
	}
	if second {
		t.Error("callback cancelled earlier in the same tick still ran")
	}
}
