package dnd

// DragSourceConfig describes a draggable element.
type DragSourceConfig struct {
	ID       string
	GroupKey string // sortable group the item belongs to; empty for plain transfers
	Payload  any
	Element  ElementRef
}

// DragSource turns a press on its element into a drag gesture. Pointer
// listeners are gesture-scoped: subscribed on press and removed on release.
type DragSource struct {
	id       string
	groupKey string
	payload  any
	element  ElementRef
	engine   *Engine

	move     CallbackHandle
	release  CallbackHandle
	disposed bool
}

// NewDragSource registers a drag source. Sources registered later are hit
// first when elements overlap.
func (e *Engine) NewDragSource(cfg DragSourceConfig) *DragSource {
	d := &DragSource{
		id:       cfg.ID,
		groupKey: cfg.GroupKey,
		payload:  cfg.Payload,
		element:  cfg.Element,
		engine:   e,
	}
	e.sources = append(e.sources, d)
	return d
}

// ID returns the dragged item's id.
func (d *DragSource) ID() string { return d.id }

// GroupKey returns the sortable group key, or "".
func (d *DragSource) GroupKey() string { return d.groupKey }

// Element returns the element the source is attached to.
func (d *DragSource) Element() ElementRef { return d.element }

// SetPayload replaces the payload handed to the next drag.
func (d *DragSource) SetPayload(p any) { d.payload = p }

// IsActive reports whether this source's item is being dragged.
func (d *DragSource) IsActive() bool {
	drag, ok := d.engine.state.Active()
	return ok && drag.ID == d.id
}

// IsOver reports whether this source's item is the hover target.
func (d *DragSource) IsOver() bool {
	return d.engine.state.Hover() == d.id
}

// PointerDown starts a drag at p. The engine calls it when a press hits the
// source's element; hosts doing their own hit testing may call it directly.
func (d *DragSource) PointerDown(p Vec2) {
	if d.disposed {
		return
	}
	d.unsubscribe()
	d.engine.state.StartDrag(DragStart{
		ID:       d.id,
		GroupKey: d.groupKey,
		Payload:  d.payload,
		Source:   d.element,
		Pointer:  p,
	})
	d.move = d.engine.OnPointerMove(d.onMove)
	d.release = d.engine.OnPointerRelease(d.onRelease)
}

func (d *DragSource) onMove(ctx PointerContext) {
	d.engine.state.UpdatePointerPosition(ctx.Position)
}

// onRelease runs the group's completion handler while its closure still
// holds the latest items, then drops the gesture listeners and ends the drag.
func (d *DragSource) onRelease(ctx PointerContext) {
	if ctx.Dragging && ctx.Drag.ID == d.id {
		d.engine.registry.RunHandlers(d.groupKey, Completion{Drag: ctx.Drag, HoverID: ctx.HoverID})
	}
	d.unsubscribe()
	d.engine.state.EndDrag()
}

// unsubscribe removes the gesture listeners. Safe to call repeatedly.
func (d *DragSource) unsubscribe() {
	d.move.Remove()
	d.release.Remove()
	d.move = CallbackHandle{}
	d.release = CallbackHandle{}
}

// Dispose unregisters the source. A gesture in progress keeps running until
// release, but no new gesture can start.
func (d *DragSource) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	e := d.engine
	for i, s := range e.sources {
		if s == d {
			e.sources = append(e.sources[:i], e.sources[i+1:]...)
			break
		}
	}
}
