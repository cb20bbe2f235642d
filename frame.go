package dnd

// FrameHandle identifies a requested frame callback. The zero value is never
// issued and cancelling it is a no-op.
type FrameHandle uint32

type frameTask struct {
	handle FrameHandle
	fn     func()
}

// FrameScheduler runs one-shot callbacks on the next tick, like a browser's
// animation-frame queue. A callback that wants to run every frame requests
// itself again. The host calls Tick once per frame; tests call it directly.
type FrameScheduler struct {
	pending []frameTask
	running []frameTask // reused buffer
	next    FrameHandle
}

// Request schedules fn for the next Tick.
func (f *FrameScheduler) Request(fn func()) FrameHandle {
	f.next++
	f.pending = append(f.pending, frameTask{handle: f.next, fn: fn})
	return f.next
}

// Cancel drops a pending callback. Cancelling a callback that already ran or
// was never requested is a no-op. Cancelling from inside a tick prevents a
// not-yet-run callback of the same tick from running.
func (f *FrameScheduler) Cancel(h FrameHandle) {
	if h == 0 {
		return
	}
	for i := range f.pending {
		if f.pending[i].handle == h {
			copy(f.pending[i:], f.pending[i+1:])
			f.pending[len(f.pending)-1] = frameTask{}
			f.pending = f.pending[:len(f.pending)-1]
			return
		}
	}
	for i := range f.running {
		if f.running[i].handle == h {
			f.running[i].fn = nil
			return
		}
	}
}

// Tick runs every callback requested before this call and returns how many
// ran. Callbacks requested during the tick wait for the next one.
func (f *FrameScheduler) Tick() int {
	if len(f.pending) == 0 {
		return 0
	}
	f.running = append(f.running[:0], f.pending...)
	for i := range f.pending {
		f.pending[i] = frameTask{}
	}
	f.pending = f.pending[:0]

	ran := 0
	for i := 0; i < len(f.running); i++ {
		fn := f.running[i].fn
		if fn == nil {
			continue
		}
		f.running[i].fn = nil
		fn()
		ran++
	}
	f.running = f.running[:0]
	return ran
}

// Pending returns the number of callbacks waiting for the next tick.
func (f *FrameScheduler) Pending() int {
	return len(f.pending)
}
