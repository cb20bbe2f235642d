package dnd

import "testing"

func TestInjectClick(t *testing.T) {
	e := newTestEngine()
	e.NewDragSource(DragSourceConfig{ID: "x", Element: StaticElement(Rect{Width: 100, Height: 100})})

	var starts int
	e.State().Watch(func(tr Transition) {
		if tr.Kind == TransitionDragStart {
			starts++
		}
	})

	e.InjectClick(50, 50)
	if e.PendingInjections() != 2 {
		t.Fatalf("expected 2 queued events, got %d", e.PendingInjections())
	}

	// Frame 1: press
	e.Update()
	if e.PendingInjections() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", e.PendingInjections())
	}
	if !e.State().Dragging() {
		t.Error("press should start a drag")
	}

	// Frame 2: release
	e.Update()
	if e.PendingInjections() != 0 {
		t.Fatalf("expected 0 remaining events after frame 2, got %d", e.PendingInjections())
	}
	if e.State().Dragging() {
		t.Error("release should end the drag")
	}
	if starts != 1 {
		t.Errorf("starts = %d, want 1", starts)
	}
}

func TestInjectDrag(t *testing.T) {
	e := newTestEngine()
	e.NewDragSource(DragSourceConfig{ID: "x", Element: StaticElement(Rect{Width: 20, Height: 20})})

	var positions []Vec2
	e.State().Watch(func(tr Transition) {
		if tr.Kind == TransitionDragEnd {
			positions = append(positions, tr.Drag.Pointer)
		}
	})

	e.InjectDrag(10, 10, 10, 110, 6)
	if e.PendingInjections() != 6 {
		t.Fatalf("expected 6 queued events, got %d", e.PendingInjections())
	}
	for i := 0; i < 6; i++ {
		e.Update()
	}
	if e.PendingInjections() != 0 {
		t.Fatalf("expected empty queue, got %d", e.PendingInjections())
	}
	if len(positions) != 1 {
		t.Fatalf("drag ended %d times, want 1", len(positions))
	}
	if positions[0] != (Vec2{X: 10, Y: 110}) {
		t.Errorf("final pointer = %+v, want (10, 110)", positions[0])
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	e := newTestEngine()
	e.InjectDrag(0, 0, 50, 50, 0)
	if e.PendingInjections() != 2 {
		t.Errorf("expected 2 queued events, got %d", e.PendingInjections())
	}
}

func TestInjectDragInterpolates(t *testing.T) {
	e := newTestEngine()
	e.InjectDrag(0, 0, 40, 0, 5)
	want := []float64{10, 20, 30}
	var got []float64
	for i, ev := range e.injectQueue {
		if i == 0 || i == len(e.injectQueue)-1 {
			continue
		}
		got = append(got, ev.x)
	}
	if len(got) != 3 {
		t.Fatalf("intermediate moves = %v", got)
	}
	for i, x := range got {
		if x != want[i] {
			t.Errorf("move %d x = %v, want %v", i, x, want[i])
		}
	}
}

type fixedPointer struct {
	x, y    float64
	pressed bool
	reads   int
}

func (p *fixedPointer) ReadPointer() (float64, float64, bool) {
	p.reads++
	return p.x, p.y, p.pressed
}

func TestInjectedInputSkipsReader(t *testing.T) {
	ptr := &fixedPointer{}
	e := NewEngine(WithPointerReader(ptr), WithLogger(discardLogger()))

	e.InjectPress(1, 1)
	e.Update()
	if ptr.reads != 0 {
		t.Errorf("reader polled on an injected frame")
	}
	e.Update()
	if ptr.reads != 1 {
		t.Errorf("reads = %d, want 1", ptr.reads)
	}
}
