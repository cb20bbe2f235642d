package dnd

import (
	"slices"

	"github.com/google/uuid"
)

const groupKeyPrefix = "sortable-group-"

// GroupConfig binds a collection to a sortable group.
type GroupConfig[T Item] struct {
	Items []T
	// OnReordered receives the new order after a drag inside the group
	// lands on a different slot. Never called for no-op drops.
	OnReordered func(items []T)
	// SetPosition writes an item's zero-based slot into its position
	// field. Nil when items carry no position.
	SetPosition func(item *T, pos int)
}

// SortableGroup owns one completion handler in the registry under a key
// generated once per group. Every Update replaces that handler, so the
// handler that runs on release always sees the latest items.
type SortableGroup[T Item] struct {
	key    string
	engine *Engine

	items       []T
	onReordered func([]T)
	setPos      func(*T, int)

	handle     CallbackHandle
	draggables []*Draggable
	disposed   bool
}

// NewSortableGroup creates a group and registers its completion handler.
func NewSortableGroup[T Item](e *Engine, cfg GroupConfig[T]) *SortableGroup[T] {
	g := &SortableGroup[T]{
		key:         groupKeyPrefix + uuid.NewString(),
		engine:      e,
		items:       slices.Clone(cfg.Items),
		onReordered: cfg.OnReordered,
		setPos:      cfg.SetPosition,
	}
	g.register()
	return g
}

// Key returns the group key handed to member drag sources.
func (g *SortableGroup[T]) Key() string { return g.key }

// Items returns a copy of the group's current items.
func (g *SortableGroup[T]) Items() []T { return slices.Clone(g.items) }

// Draggables returns the live draggables created through NewDraggable.
func (g *SortableGroup[T]) Draggables() []*Draggable { return slices.Clone(g.draggables) }

// Len returns the number of items.
func (g *SortableGroup[T]) Len() int { return len(g.items) }

// Contains reports whether an item with id is in the group.
func (g *SortableGroup[T]) Contains(id string) bool {
	return IndexOf(g.items, id) != -1
}

// Update replaces the items and callback and re-registers the completion
// handler. A nil onReordered keeps the current callback.
func (g *SortableGroup[T]) Update(items []T, onReordered func([]T)) {
	if g.disposed {
		return
	}
	g.items = slices.Clone(items)
	if onReordered != nil {
		g.onReordered = onReordered
	}
	g.register()
}

func (g *SortableGroup[T]) register() {
	items := slices.Clone(g.items)
	onReordered := g.onReordered
	g.handle = g.engine.registry.Register(g.key, func(c Completion) error {
		g.finalize(items, onReordered, c)
		return nil
	})
}

func (g *SortableGroup[T]) finalize(items []T, onReordered func([]T), c Completion) {
	out, from, to, ok := Reorder(items, c.Drag.ID, c.HoverID, c.Drag.Placement, g.setPos)
	if !ok {
		g.engine.log.Debug("reorder skipped", "group", g.key, "id", c.Drag.ID,
			"hover", c.HoverID, "from", from, "to", to)
		return
	}
	g.engine.log.Debug("reorder", "group", g.key, "id", c.Drag.ID, "from", from, "to", to)
	g.engine.emit(Event{
		Type:      EventReorder,
		ItemID:    c.Drag.ID,
		GroupKey:  g.key,
		TargetID:  c.HoverID,
		X:         c.Drag.Pointer.X,
		Y:         c.Drag.Pointer.Y,
		Placement: c.Drag.Placement,
		From:      from,
		To:        to,
	})
	if onReordered != nil {
		onReordered(out)
	}
}

// Draggable is a sortable item that can also be picked up: a position
// tracker and a drag source sharing an id and the group key.
type Draggable struct {
	Item   *SortableItem
	Source *DragSource

	forget func()
}

// DraggableOption configures NewDraggable.
type DraggableOption func(*draggableConfig)

type draggableConfig struct {
	dir     Direction
	payload any
}

// WithDirection sets the comparison axis of the item.
func WithDirection(d Direction) DraggableOption {
	return func(c *draggableConfig) { c.dir = d }
}

// WithPayload attaches caller metadata to drags of the item.
func WithPayload(p any) DraggableOption {
	return func(c *draggableConfig) { c.payload = p }
}

// NewDraggable registers a sortable, draggable member of the group. The
// caller does not need to know the group key.
func (g *SortableGroup[T]) NewDraggable(id string, el ElementRef, opts ...DraggableOption) *Draggable {
	var cfg draggableConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	d := &Draggable{
		Item: g.engine.NewSortableItem(SortableItemConfig{ID: id, Element: el, Direction: cfg.dir}),
		Source: g.engine.NewDragSource(DragSourceConfig{
			ID:       id,
			GroupKey: g.key,
			Payload:  cfg.payload,
			Element:  el,
		}),
	}
	d.forget = func() {
		g.draggables = slices.DeleteFunc(g.draggables, func(x *Draggable) bool { return x == d })
	}
	g.draggables = append(g.draggables, d)
	return d
}

// ID returns the item id.
func (d *Draggable) ID() string { return d.Item.ID() }

// IsOver reports whether the pointer was over the item at the last tick.
func (d *Draggable) IsOver() bool { return d.Item.IsOver() }

// IsActive reports whether the item is being dragged.
func (d *Draggable) IsActive() bool { return d.Source.IsActive() }

// PointerDown starts a drag of the item at p.
func (d *Draggable) PointerDown(p Vec2) { d.Source.PointerDown(p) }

// Dispose unregisters both halves and drops the item from its group.
func (d *Draggable) Dispose() {
	d.Item.Dispose()
	d.Source.Dispose()
	if d.forget != nil {
		d.forget()
		d.forget = nil
	}
}

// Dispose removes the group's handler and every draggable created through it.
func (g *SortableGroup[T]) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	g.handle.Remove()
	for _, d := range slices.Clone(g.draggables) {
		d.Dispose()
	}
	g.draggables = nil
}

// DroppableSortable is a container that both accepts items from elsewhere
// and reorders its own items.
type DroppableSortable[T Item] struct {
	Target *DropTarget
	Group  *SortableGroup[T]
}

// NewDroppableSortable creates a drop target and a sortable group and ties
// them together: hovering any member of the group counts as hovering the
// target.
func NewDroppableSortable[T Item](e *Engine, id string, el ElementRef, cfg GroupConfig[T], onDrop func(ActiveDrag)) *DroppableSortable[T] {
	g := NewSortableGroup(e, cfg)
	t := e.NewDropTarget(DropTargetConfig{ID: id, Element: el, OnDrop: onDrop})
	t.members = g.Contains
	return &DroppableSortable[T]{Target: t, Group: g}
}

// Dispose unregisters the target and the group.
func (ds *DroppableSortable[T]) Dispose() {
	ds.Target.Dispose()
	ds.Group.Dispose()
}
