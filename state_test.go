package dnd

import "testing"

func TestStateStartEndDrag(t *testing.T) {
	s := NewState(nil)
	if s.Dragging() {
		t.Fatal("new state should be idle")
	}

	src := StaticElement(Rect{Width: 10, Height: 10})
	s.StartDrag(DragStart{ID: "a", GroupKey: "g", Payload: 42, Source: src, Pointer: Vec2{5, 6}})

	drag, ok := s.Active()
	if !ok {
		t.Fatal("expected active drag")
	}
	if drag.ID != "a" || drag.GroupKey != "g" || drag.Payload != 42 {
		t.Errorf("drag = %+v", drag)
	}
	if drag.Pointer != (Vec2{5, 6}) {
		t.Errorf("pointer = %v, want (5,6)", drag.Pointer)
	}
	if !s.SelectionSuppressed() {
		t.Error("selection should be suppressed during a drag")
	}

	s.UpdateHover("b")
	s.EndDrag()

	if _, ok := s.Active(); ok {
		t.Error("drag should be cleared")
	}
	if s.Hover() != "" {
		t.Errorf("hover = %q, want empty", s.Hover())
	}
	if s.SelectionSuppressed() {
		t.Error("selection should be restored after the drag")
	}
}

func TestStateSelectionCallback(t *testing.T) {
	s := NewState(nil)
	var modes []bool
	s.OnSelectionMode = func(v bool) { modes = append(modes, v) }

	s.StartDrag(DragStart{ID: "a"})
	s.StartDrag(DragStart{ID: "b"}) // already suppressed: no second call
	s.EndDrag()
	s.EndDrag()

	if len(modes) != 2 || !modes[0] || modes[1] {
		t.Errorf("modes = %v, want [true false]", modes)
	}
}

func TestStateStartDragOverwrites(t *testing.T) {
	s := NewState(nil)
	s.StartDrag(DragStart{ID: "a", Pointer: Vec2{1, 1}})
	s.UpdatePlacementHint(PlacementAfter)
	s.StartDrag(DragStart{ID: "b", Pointer: Vec2{2, 2}})

	drag, ok := s.Active()
	if !ok || drag.ID != "b" {
		t.Fatalf("active = %+v, want b (last writer wins)", drag)
	}
	if drag.Placement != PlacementBefore {
		t.Errorf("placement should reset for the new drag, got %v", drag.Placement)
	}
}

func TestStateUpdatesAreNoOpsWhenIdle(t *testing.T) {
	s := NewState(nil)
	var n int
	s.Watch(func(Transition) { n++ })

	s.UpdatePointerPosition(Vec2{10, 10})
	s.UpdatePlacementHint(PlacementAfter)
	s.EndDrag()

	if _, ok := s.Active(); ok {
		t.Error("idle state should stay idle")
	}
	if n != 0 {
		t.Errorf("expected no transitions, got %d", n)
	}
}

func TestStatePointerAndPlacement(t *testing.T) {
	s := NewState(nil)
	s.StartDrag(DragStart{ID: "a"})
	s.UpdatePointerPosition(Vec2{30, 40})
	s.UpdatePlacementHint(PlacementAfter)

	drag, _ := s.Active()
	if drag.Pointer != (Vec2{30, 40}) {
		t.Errorf("pointer = %v", drag.Pointer)
	}
	if drag.Placement != PlacementAfter {
		t.Errorf("placement = %v, want after", drag.Placement)
	}
}

func TestStateActiveIsSnapshot(t *testing.T) {
	s := NewState(nil)
	s.StartDrag(DragStart{ID: "a", Pointer: Vec2{1, 1}})
	snap, _ := s.Active()
	s.UpdatePointerPosition(Vec2{9, 9})
	if snap.Pointer != (Vec2{1, 1}) {
		t.Errorf("snapshot changed after update: %v", snap.Pointer)
	}
}

func TestStateAtMostOneActiveDrag(t *testing.T) {
	s := NewState(nil)
	active := 0
	s.Watch(func(tr Transition) {
		switch tr.Kind {
		case TransitionDragStart:
			active = 1
		case TransitionDragEnd:
			active = 0
		}
		if active > 1 {
			t.Fatalf("observed %d active drags", active)
		}
	})
	for _, id := range []string{"a", "b", "c"} {
		s.StartDrag(DragStart{ID: id})
		if drag, ok := s.Active(); !ok || drag.ID != id {
			t.Fatalf("active = %+v, want %s", drag, id)
		}
		s.EndDrag()
	}
}

func TestStateWatch(t *testing.T) {
	s := NewState(nil)
	var kinds []TransitionKind
	h := s.Watch(func(tr Transition) { kinds = append(kinds, tr.Kind) })

	s.StartDrag(DragStart{ID: "a"})
	s.UpdateHover("x")
	s.UpdateHover("x") // unchanged: no transition
	s.UpdatePlacementHint(PlacementAfter)
	s.EndDrag()

	want := []TransitionKind{TransitionDragStart, TransitionHover, TransitionPlacement, TransitionDragEnd}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}

	h.Remove()
	h.Remove()
	s.StartDrag(DragStart{ID: "b"})
	if len(kinds) != len(want) {
		t.Error("removed watcher still fired")
	}
}

func TestStateDragEndCarriesEndedDrag(t *testing.T) {
	s := NewState(nil)
	var ended Transition
	s.Watch(func(tr Transition) {
		if tr.Kind == TransitionDragEnd {
			ended = tr
		}
	})
	s.StartDrag(DragStart{ID: "a", GroupKey: "g"})
	s.UpdateHover("h")
	s.EndDrag()

	if ended.Drag.ID != "a" || ended.PrevHover != "h" {
		t.Errorf("drag end transition = %+v", ended)
	}
}
