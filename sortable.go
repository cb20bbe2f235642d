package dnd

// SortableItemConfig describes one item of a sortable collection.
type SortableItemConfig struct {
	ID        string
	Element   ElementRef
	Direction Direction
}

// SortableItem compares its element's bounds against the dragged pointer
// once per frame while a drag is active. Geometry can change without any
// pointer event (layout, scrolling, tweens), so this polls rather than
// reacting to events.
//
// Each tick, when the pointer is inside the bounds, the item publishes the
// placement hint for its own midpoint and claims hover; when it is outside,
// the item drops its own claim. The most recent tick wins when items
// overlap.
type SortableItem struct {
	id      string
	element ElementRef
	dir     Direction
	engine  *Engine

	frame     FrameHandle
	watch     CallbackHandle
	over      bool
	placement Placement
	measured  bool
	disposed  bool
}

// NewSortableItem registers a position tracker. If a drag is already active
// tracking starts on the next frame.
func (e *Engine) NewSortableItem(cfg SortableItemConfig) *SortableItem {
	it := &SortableItem{
		id:      cfg.ID,
		element: cfg.Element,
		dir:     cfg.Direction,
		engine:  e,
	}
	it.watch = e.state.Watch(it.onTransition)
	e.items = append(e.items, it)
	if e.state.Dragging() {
		it.schedule()
	}
	return it
}

// ID returns the item id.
func (it *SortableItem) ID() string { return it.id }

// Element returns the tracked element.
func (it *SortableItem) Element() ElementRef { return it.element }

// Direction returns the comparison axis.
func (it *SortableItem) Direction() Direction { return it.dir }

// IsOver reports whether the pointer was inside the element at the last tick.
func (it *SortableItem) IsOver() bool { return it.over }

// IsActive reports whether this item is being dragged.
func (it *SortableItem) IsActive() bool {
	drag, ok := it.engine.state.Active()
	return ok && drag.ID == it.id
}

// Placement returns the side of this item the pointer was on at the last
// tick, and false if the item has not been measured during this drag.
func (it *SortableItem) Placement() (Placement, bool) {
	return it.placement, it.measured
}

// Tracking reports whether a tick is scheduled.
func (it *SortableItem) Tracking() bool { return it.frame != 0 }

func (it *SortableItem) onTransition(tr Transition) {
	switch tr.Kind {
	case TransitionDragStart:
		it.schedule()
	case TransitionDragEnd:
		it.stop()
	}
}

func (it *SortableItem) schedule() {
	if it.disposed || it.frame != 0 {
		return
	}
	it.frame = it.engine.frames.Request(it.tick)
}

// stop cancels the pending tick and forgets per-drag measurements.
func (it *SortableItem) stop() {
	it.engine.frames.Cancel(it.frame)
	it.frame = 0
	it.over = false
	it.measured = false
}

func (it *SortableItem) tick() {
	it.frame = 0
	if it.measure() {
		it.schedule()
	}
}

// measure compares the element's bounds with the dragged pointer and
// publishes the result. It reports false when there is nothing to track.
func (it *SortableItem) measure() bool {
	state := it.engine.state
	drag, ok := state.Active()
	if !ok || it.disposed || it.element == nil {
		it.over = false
		it.measured = false
		return false
	}

	r := it.element.Bounds()
	inside := r.ContainsPoint(drag.Pointer)
	placement := placementFor(it.dir, r, drag.Pointer)
	it.over = inside
	it.placement = placement
	it.measured = true

	if inside {
		state.UpdatePlacementHint(placement)
		if state.Hover() != it.id {
			state.UpdateHover(it.id)
		}
	} else if state.Hover() == it.id {
		// Give up a stale claim so a release outside every item is a no-op.
		state.UpdateHover("")
	}
	return true
}

// Dispose stops tracking and unregisters the item.
func (it *SortableItem) Dispose() {
	if it.disposed {
		return
	}
	it.stop()
	it.disposed = true
	it.watch.Remove()
	e := it.engine
	for i, x := range e.items {
		if x == it {
			e.items = append(e.items[:i], e.items[i+1:]...)
			break
		}
	}
}
