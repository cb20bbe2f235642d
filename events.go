package dnd

// EventType identifies a kind of engine event.
type EventType uint8

const (
	EventDragStart   EventType = iota // a drag began
	EventDragEnd                      // the active drag was cleared
	EventHoverChange                  // the hover target changed (TargetID may be empty)
	EventPlacement                    // the placement hint flipped
	EventDrop                         // a drop target accepted a release
	EventReorder                      // a sortable group produced a new order
)

func (t EventType) String() string {
	switch t {
	case EventDragStart:
		return "drag-start"
	case EventDragEnd:
		return "drag-end"
	case EventHoverChange:
		return "hover-change"
	case EventPlacement:
		return "placement"
	case EventDrop:
		return "drop"
	case EventReorder:
		return "reorder"
	}
	return "unknown"
}

// EventSink is the interface for optional ECS integration.
// When set on an Engine, engine events are forwarded to it.
type EventSink interface {
	EmitEvent(event Event)
}

// Event carries engine event data for the sink.
type Event struct {
	Type      EventType
	ItemID    string // dragged item
	GroupKey  string
	TargetID  string // hover or drop target
	X, Y      float64
	Placement Placement
	// Reorder fields (valid for EventReorder)
	From int
	To   int
}

func (e *Engine) emit(ev Event) {
	if e.sink == nil {
		return
	}
	e.sink.EmitEvent(ev)
}
