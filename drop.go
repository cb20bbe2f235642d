package dnd

import "fmt"

// DropTargetConfig describes a container that accepts dropped items.
type DropTargetConfig struct {
	ID      string
	Element ElementRef
	// OnDrop receives the released drag. It is responsible for rejecting
	// no-op moves, such as an item dropped on the container that already
	// holds it.
	OnDrop func(ActiveDrag)
}

// DropTarget tracks whether the pointer is over its element and hands the
// active drag to OnDrop when the pointer is released over it.
type DropTarget struct {
	id      string
	element ElementRef
	onDrop  func(ActiveDrag)
	engine  *Engine

	// members reports whether a hover id belongs to an item nested in this
	// target; set when a sortable group is attached.
	members func(id string) bool

	inside   bool
	disposed bool
}

// NewDropTarget registers a drop target. Targets registered later are hit
// first when elements overlap.
func (e *Engine) NewDropTarget(cfg DropTargetConfig) *DropTarget {
	t := &DropTarget{
		id:      cfg.ID,
		element: cfg.Element,
		onDrop:  cfg.OnDrop,
		engine:  e,
	}
	e.targets = append(e.targets, t)
	return t
}

// ID returns the target id.
func (t *DropTarget) ID() string { return t.id }

// Element returns the element the target is attached to.
func (t *DropTarget) Element() ElementRef { return t.element }

// IsOver reports whether this target is the hover target.
func (t *DropTarget) IsOver() bool {
	return t.engine.state.Hover() == t.id
}

// Inside reports whether the pointer was inside the element at the last
// pointer sample.
func (t *DropTarget) Inside() bool { return t.inside }

// SetOnDrop replaces the drop callback.
func (t *DropTarget) SetOnDrop(fn func(ActiveDrag)) { t.onDrop = fn }

// owns reports whether hoverID designates this target or one of its members.
func (t *DropTarget) owns(hoverID string) bool {
	if hoverID == "" {
		return false
	}
	if hoverID == t.id {
		return true
	}
	return t.members != nil && t.members(hoverID)
}

func (t *DropTarget) pointerEnter() {
	t.inside = true
	if t.engine.state.Dragging() {
		t.engine.state.UpdateHover(t.id)
	}
}

// pointerOver reclaims hover for the target while the pointer stays inside
// it and no item holds hover, e.g. in the gap between two items.
func (t *DropTarget) pointerOver() {
	if t.engine.state.Dragging() && t.engine.state.Hover() == "" {
		t.engine.state.UpdateHover(t.id)
	}
}

// pointerLeave clears hover only if this target still holds it, so a claim
// made by another target during fast travel survives.
func (t *DropTarget) pointerLeave() {
	t.inside = false
	if t.engine.state.Hover() == t.id {
		t.engine.state.UpdateHover("")
	}
}

func (t *DropTarget) release(ctx PointerContext) {
	if t.disposed || !ctx.Dragging || !t.owns(ctx.HoverID) {
		return
	}
	t.engine.log.Debug("drop", "target", t.id, "id", ctx.Drag.ID)
	t.engine.emit(Event{
		Type:      EventDrop,
		ItemID:    ctx.Drag.ID,
		GroupKey:  ctx.Drag.GroupKey,
		TargetID:  t.id,
		X:         ctx.Position.X,
		Y:         ctx.Position.Y,
		Placement: ctx.Drag.Placement,
	})
	if err := t.drop(ctx.Drag); err != nil {
		t.engine.log.Error("drop callback failed", "target", t.id, "id", ctx.Drag.ID, "err", err)
	}
	t.engine.state.EndDrag()
}

func (t *DropTarget) drop(d ActiveDrag) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	if t.onDrop != nil {
		t.onDrop(d)
	}
	return nil
}

// Dispose unregisters the target and releases hover if it held it.
func (t *DropTarget) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	e := t.engine
	for i, x := range e.targets {
		if x == t {
			e.targets = append(e.targets[:i], e.targets[i+1:]...)
			break
		}
	}
	if e.pointer.hoverTarget == t {
		e.pointer.hoverTarget = nil
	}
	if e.state.Hover() == t.id {
		e.state.UpdateHover("")
	}
}
