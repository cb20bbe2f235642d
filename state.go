package dnd

import (
	"log/slog"
	"slices"
)

// DragStart carries the arguments of Interaction.StartDrag.
type DragStart struct {
	ID       string
	GroupKey string
	Payload  any
	Source   ElementRef
	Pointer  Vec2
}

// TransitionKind identifies a change of interaction state.
type TransitionKind uint8

const (
	TransitionDragStart TransitionKind = iota
	TransitionDragEnd
	TransitionHover
	TransitionPlacement
)

// Transition is delivered to state watchers after every change.
type Transition struct {
	Kind TransitionKind
	// Drag is the drag the transition applies to. For TransitionDragEnd it
	// is the drag that just ended.
	Drag      ActiveDrag
	HoverID   string
	PrevHover string
}

// Interaction is the narrow operation set over the shared drag state.
// *State is the production implementation; bindings only see this interface
// so tests can substitute their own.
type Interaction interface {
	StartDrag(d DragStart)
	UpdateHover(id string)
	UpdatePointerPosition(p Vec2)
	UpdatePlacementHint(p Placement)
	EndDrag()

	Active() (ActiveDrag, bool)
	Hover() string
	Dragging() bool

	Watch(fn func(Transition)) CallbackHandle
}

type stateWatcher struct {
	id uint32
	fn func(Transition)
}

// State holds the single active drag and the single hover target.
// It is not safe for concurrent use; like the rest of the engine it is
// driven from one goroutine (the host's update loop).
type State struct {
	active   ActiveDrag
	dragging bool
	hover    string
	noSelect bool

	// OnSelectionMode, if set, is called with true when a drag starts and
	// false when it ends, so hosts can disable text selection.
	OnSelectionMode func(suppressed bool)

	watchers []stateWatcher
	nextID   uint32
	log      *slog.Logger
}

var _ Interaction = (*State)(nil)

// NewState creates an idle interaction state. A nil logger discards output.
func NewState(log *slog.Logger) *State {
	if log == nil {
		log = discardLogger()
	}
	return &State{log: log}
}

// StartDrag makes d the active drag. Starting while another drag is active
// replaces it: the last writer wins.
func (s *State) StartDrag(d DragStart) {
	if s.dragging {
		s.log.Warn("drag started while another drag is active; replacing",
			"previous", s.active.ID, "next", d.ID)
	}
	s.active = ActiveDrag{
		ID:       d.ID,
		GroupKey: d.GroupKey,
		Payload:  d.Payload,
		Source:   d.Source,
		Pointer:  d.Pointer,
	}
	s.dragging = true
	s.setSelectionSuppressed(true)
	s.log.Debug("startDrag", "id", d.ID, "group", d.GroupKey, "x", d.Pointer.X, "y", d.Pointer.Y)
	s.notify(Transition{Kind: TransitionDragStart, Drag: s.active, HoverID: s.hover})
}

// UpdateHover sets the hover target. An empty id clears it.
func (s *State) UpdateHover(id string) {
	if s.hover == id {
		return
	}
	prev := s.hover
	s.hover = id
	s.log.Debug("updateHover", "hover", id, "prev", prev)
	s.notify(Transition{Kind: TransitionHover, Drag: s.active, HoverID: id, PrevHover: prev})
}

// UpdatePointerPosition moves the active drag's pointer. No-op when idle.
func (s *State) UpdatePointerPosition(p Vec2) {
	if !s.dragging {
		return
	}
	s.active.Pointer = p
}

// UpdatePlacementHint records the side of the hovered item the pointer is
// biased toward. No-op when idle.
func (s *State) UpdatePlacementHint(p Placement) {
	if !s.dragging || s.active.Placement == p {
		return
	}
	s.active.Placement = p
	s.notify(Transition{Kind: TransitionPlacement, Drag: s.active, HoverID: s.hover})
}

// EndDrag clears the active drag and the hover target. Safe to call when idle.
func (s *State) EndDrag() {
	if !s.dragging && s.hover == "" {
		return
	}
	ended := s.active
	wasDragging := s.dragging
	prevHover := s.hover
	s.active = ActiveDrag{}
	s.dragging = false
	s.hover = ""
	s.setSelectionSuppressed(false)
	s.log.Debug("endDrag", "id", ended.ID)
	if wasDragging {
		s.notify(Transition{Kind: TransitionDragEnd, Drag: ended, PrevHover: prevHover})
	} else {
		s.notify(Transition{Kind: TransitionHover, PrevHover: prevHover})
	}
}

// Active returns a copy of the active drag.
func (s *State) Active() (ActiveDrag, bool) {
	return s.active, s.dragging
}

// Hover returns the current hover target id, or "" when nothing is hovered.
func (s *State) Hover() string {
	return s.hover
}

// Dragging reports whether a drag is active.
func (s *State) Dragging() bool {
	return s.dragging
}

// SelectionSuppressed reports whether text selection should be disabled.
func (s *State) SelectionSuppressed() bool {
	return s.noSelect
}

// Watch registers fn to be called after every transition.
func (s *State) Watch(fn func(Transition)) CallbackHandle {
	s.nextID++
	id := s.nextID
	s.watchers = append(s.watchers, stateWatcher{id: id, fn: fn})
	return CallbackHandle{remove: func() {
		s.watchers = slices.DeleteFunc(s.watchers, func(w stateWatcher) bool { return w.id == id })
	}}
}

func (s *State) setSelectionSuppressed(v bool) {
	if s.noSelect == v {
		return
	}
	s.noSelect = v
	if s.OnSelectionMode != nil {
		s.OnSelectionMode(v)
	}
}

// notify runs watchers against a snapshot of the list so a watcher may
// remove itself or others.
func (s *State) notify(tr Transition) {
	if len(s.watchers) == 0 {
		return
	}
	for _, w := range slices.Clone(s.watchers) {
		w.fn(tr)
	}
}
