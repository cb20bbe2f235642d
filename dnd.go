package dnd

import "fmt"

// Vec2 is a 2D point in screen coordinates.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsPoint is Contains for a Vec2.
func (r Rect) ContainsPoint(p Vec2) bool {
	return r.Contains(p.X, p.Y)
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// ElementRef is the engine's view of a visual element: something with
// on-screen bounds that may change between frames. The engine never owns
// the element.
type ElementRef interface {
	Bounds() Rect
}

// ElementFunc adapts a function to ElementRef.
type ElementFunc func() Rect

// Bounds calls f.
func (f ElementFunc) Bounds() Rect { return f() }

// StaticElement returns an ElementRef whose bounds never change.
func StaticElement(r Rect) ElementRef {
	return ElementFunc(func() Rect { return r })
}

// Placement is the side of the hovered item the dragged item should land on.
type Placement uint8

const (
	PlacementBefore Placement = iota // land in front of the hovered item
	PlacementAfter                   // land behind the hovered item
)

func (p Placement) String() string {
	switch p {
	case PlacementBefore:
		return "before"
	case PlacementAfter:
		return "after"
	default:
		return fmt.Sprintf("Placement(%d)", uint8(p))
	}
}

// ParsePlacement converts "before" or "after" to a Placement.
func ParsePlacement(s string) (Placement, error) {
	switch s {
	case "before":
		return PlacementBefore, nil
	case "after":
		return PlacementAfter, nil
	}
	return PlacementBefore, fmt.Errorf("dnd: unknown placement %q", s)
}

// Direction selects the axis a sortable item compares the pointer on.
type Direction uint8

const (
	DirectionVertical   Direction = iota // compare Y against the vertical midpoint
	DirectionHorizontal                  // compare X against the horizontal midpoint
	DirectionGrid                        // rows resolve by Y; columns are not consulted
)

func (d Direction) String() string {
	switch d {
	case DirectionVertical:
		return "vertical"
	case DirectionHorizontal:
		return "horizontal"
	case DirectionGrid:
		return "grid"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// placementFor resolves which side of r the point p is biased toward.
func placementFor(dir Direction, r Rect, p Vec2) Placement {
	c := r.Center()
	switch dir {
	case DirectionHorizontal:
		if p.X < c.X {
			return PlacementBefore
		}
		return PlacementAfter
	default:
		// Vertical and grid both resolve by row.
		if p.Y < c.Y {
			return PlacementBefore
		}
		return PlacementAfter
	}
}

// ActiveDrag describes the single drag in progress. Values returned from the
// engine are copies; mutate only through Interaction.
type ActiveDrag struct {
	ID       string
	GroupKey string // empty for plain transfer drags
	Payload  any
	Source   ElementRef // originating element, for ghost rendering only
	Pointer  Vec2
	// Placement is the side of the hovered item the pointer is biased
	// toward, as last published by a sortable item.
	Placement Placement
}

// Completion is handed to completion handlers when a gesture is released.
type Completion struct {
	Drag    ActiveDrag
	HoverID string
}

// Item is implemented by elements of an orderable collection.
type Item interface {
	ItemID() string
}
