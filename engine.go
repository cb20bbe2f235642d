package dnd

import (
	"log/slog"
	"slices"
)

// PointerReader supplies the host's pointer once per frame.
type PointerReader interface {
	ReadPointer() (x, y float64, pressed bool)
}

// PointerContext carries pointer event data to gesture listeners and drop
// targets. Drag and HoverID are a snapshot taken before any listener runs,
// so every listener of a release sees the same drag even if an earlier one
// ended it.
type PointerContext struct {
	Position Vec2
	Drag     ActiveDrag
	Dragging bool
	HoverID  string
}

type pointerListener struct {
	id uint32
	fn func(PointerContext)
}

// pointerState is the engine's view of the single pointer.
type pointerState struct {
	down        bool
	last        Vec2
	hoverTarget *DropTarget // drop target the pointer is inside (for enter/leave)
}

// Engine owns the interaction state, the completion registry, the frame
// scheduler and every registered binding. Create one at startup and call
// Update once per frame.
type Engine struct {
	state    Interaction
	registry *Registry
	frames   FrameScheduler

	log   *slog.Logger
	level *slog.LevelVar
	debug bool
	sink  EventSink

	reader PointerReader

	sources []*DragSource
	targets []*DropTarget
	items   []*SortableItem

	pointer          pointerState
	moveListeners    []pointerListener
	releaseListeners []pointerListener
	nextListenerID   uint32

	injectQueue []syntheticPointerEvent
	script      *ScriptRunner
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger replaces the default stderr logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithEventSink forwards engine events to sink.
func WithEventSink(sink EventSink) Option {
	return func(e *Engine) { e.sink = sink }
}

// WithPointerReader sets where Update reads the pointer from. The default
// reads Ebitengine's cursor and left mouse button. A nil reader disables
// polling; input then arrives only through FeedPointer and the inject queue.
func WithPointerReader(r PointerReader) Option {
	return func(e *Engine) { e.reader = r }
}

// WithInteraction substitutes the interaction state, e.g. with a test double.
func WithInteraction(i Interaction) Option {
	return func(e *Engine) { e.state = i }
}

// NewEngine creates an idle engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		level:  new(slog.LevelVar),
		reader: EbitenPointer{},
	}
	e.level.Set(slog.LevelWarn)
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = newDefaultLogger(e.level)
	}
	if e.state == nil {
		e.state = NewState(e.log)
	}
	e.registry = NewRegistry(e.log)
	e.state.Watch(e.forwardTransition)
	return e
}

// State returns the shared interaction state.
func (e *Engine) State() Interaction { return e.state }

// Registry returns the completion event registry.
func (e *Engine) Registry() *Registry { return e.registry }

// Frames returns the per-frame scheduler ticked by Update.
func (e *Engine) Frames() *FrameScheduler { return &e.frames }

// Update consumes one frame of input, advances an attached script runner and
// runs the frame callbacks requested since the last Update.
func (e *Engine) Update() {
	if e.script != nil {
		e.script.step(e)
	}
	if !e.processInjectedInput() && e.reader != nil {
		x, y, pressed := e.reader.ReadPointer()
		e.FeedPointer(x, y, pressed)
	}
	e.frames.Tick()
}

// --- Gesture listeners ---

// OnPointerMove registers a window-level callback for pointer movement while
// the button is held.
func (e *Engine) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	e.nextListenerID++
	id := e.nextListenerID
	e.moveListeners = append(e.moveListeners, pointerListener{id: id, fn: fn})
	return CallbackHandle{remove: func() {
		e.moveListeners = removeListener(e.moveListeners, id)
	}}
}

// OnPointerRelease registers a window-level callback for pointer release.
func (e *Engine) OnPointerRelease(fn func(PointerContext)) CallbackHandle {
	e.nextListenerID++
	id := e.nextListenerID
	e.releaseListeners = append(e.releaseListeners, pointerListener{id: id, fn: fn})
	return CallbackHandle{remove: func() {
		e.releaseListeners = removeListener(e.releaseListeners, id)
	}}
}

func removeListener(s []pointerListener, id uint32) []pointerListener {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerListener{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Hit testing ---

// dragSourceAt returns the most recently registered drag source whose
// element contains p.
func (e *Engine) dragSourceAt(p Vec2) *DragSource {
	for i := len(e.sources) - 1; i >= 0; i-- {
		d := e.sources[i]
		if d.element != nil && d.element.Bounds().ContainsPoint(p) {
			return d
		}
	}
	return nil
}

// dropTargetAt returns the most recently registered drop target whose
// element contains p.
func (e *Engine) dropTargetAt(p Vec2) *DropTarget {
	for i := len(e.targets) - 1; i >= 0; i-- {
		t := e.targets[i]
		if t.element != nil && t.element.Bounds().ContainsPoint(p) {
			return t
		}
	}
	return nil
}

// --- Input processing ---

// FeedPointer runs the pointer state machine for one pointer sample in
// screen coordinates.
func (e *Engine) FeedPointer(x, y float64, pressed bool) {
	p := Vec2{X: x, Y: y}
	ps := &e.pointer

	// Fire enter/leave when the drop target under the pointer changes.
	target := e.dropTargetAt(p)
	if target != ps.hoverTarget {
		if ps.hoverTarget != nil {
			ps.hoverTarget.pointerLeave()
		}
		if target != nil {
			target.pointerEnter()
		}
		ps.hoverTarget = target
	}
	if target != nil {
		target.pointerOver()
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.last = p
		if src := e.dragSourceAt(p); src != nil {
			src.PointerDown(p)
		}
	case !pressed && ps.down:
		if p != ps.last {
			e.fireMove(p)
			e.remeasure(target)
		}
		ps.down = false
		ps.last = p
		e.release(p, target)
	case pressed && ps.down:
		if p != ps.last {
			ps.last = p
			e.fireMove(p)
		}
	default:
		ps.last = p
	}
}

func (e *Engine) context(p Vec2) PointerContext {
	drag, dragging := e.state.Active()
	return PointerContext{Position: p, Drag: drag, Dragging: dragging, HoverID: e.state.Hover()}
}

func (e *Engine) fireMove(p Vec2) {
	if len(e.moveListeners) == 0 {
		return
	}
	ctx := e.context(p)
	for _, l := range slices.Clone(e.moveListeners) {
		l.fn(ctx)
	}
}

// remeasure brings hover and placement up to date with a pointer that moved
// since the last frame, so a release never acts on where the pointer was.
func (e *Engine) remeasure(target *DropTarget) {
	if !e.state.Dragging() {
		return
	}
	for _, it := range slices.Clone(e.items) {
		it.measure()
	}
	if target != nil {
		target.pointerOver()
	}
}

// release dispatches a pointer release: first to the drop target under the
// pointer, then to gesture listeners, and finally ends any drag nobody
// claimed so the state can never stay stuck.
func (e *Engine) release(p Vec2, target *DropTarget) {
	ctx := e.context(p)
	if target != nil {
		target.release(ctx)
	}
	for _, l := range slices.Clone(e.releaseListeners) {
		l.fn(ctx)
	}
	if e.state.Dragging() {
		e.log.Debug("release outside any drop target", "id", ctx.Drag.ID, "x", p.X, "y", p.Y)
		e.state.EndDrag()
	}
}

// forwardTransition bridges state transitions to the event sink.
func (e *Engine) forwardTransition(tr Transition) {
	ev := Event{
		ItemID:    tr.Drag.ID,
		GroupKey:  tr.Drag.GroupKey,
		TargetID:  tr.HoverID,
		X:         tr.Drag.Pointer.X,
		Y:         tr.Drag.Pointer.Y,
		Placement: tr.Drag.Placement,
	}
	switch tr.Kind {
	case TransitionDragStart:
		ev.Type = EventDragStart
	case TransitionDragEnd:
		ev.Type = EventDragEnd
		ev.TargetID = tr.PrevHover
	case TransitionHover:
		ev.Type = EventHoverChange
	case TransitionPlacement:
		ev.Type = EventPlacement
	}
	e.emit(ev)
}
