package dnd

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by ApplyReorder for indices outside the
// collection.
var ErrIndexOutOfRange = errors.New("dnd: index out of range")

// IndexOf returns the index of the item with the given id, or -1.
func IndexOf[T Item](items []T, id string) int {
	for i := range items {
		if items[i].ItemID() == id {
			return i
		}
	}
	return -1
}

// ComputeTargetIndex returns the index the dragged item should occupy after
// being dropped on the placement side of the hovered item. If either id is
// missing the dragged item's current index is returned (-1 when the dragged
// item itself is missing), which callers treat as a no-op.
func ComputeTargetIndex[T Item](items []T, draggedID, hoverID string, placement Placement) int {
	from := IndexOf(items, draggedID)
	hover := IndexOf(items, hoverID)
	if from == -1 || hover == -1 {
		return from
	}

	to := hover
	if placement == PlacementAfter {
		to = hover + 1
	}
	// Removing the dragged item shifts everything behind it down by one.
	if to > from {
		to--
	}
	return min(max(to, 0), len(items)-1)
}

// ApplyReorder removes the item at from and reinserts it at to, then calls
// setPos on every item with its new zero-based slot. The input slice is not
// modified; the result is a fresh slice. For value element types the result
// shares nothing with the input. setPos may be nil when items carry no
// position field.
func ApplyReorder[T any](items []T, from, to int, setPos func(item *T, pos int)) ([]T, error) {
	n := len(items)
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil, fmt.Errorf("reorder %d -> %d of %d: %w", from, to, n, ErrIndexOutOfRange)
	}

	out := make([]T, 0, n)
	moved := items[from]
	for i := range items {
		if i == from {
			continue
		}
		if len(out) == to {
			out = append(out, moved)
		}
		out = append(out, items[i])
	}
	if len(out) < n {
		out = append(out, moved)
	}

	if setPos != nil {
		for i := range out {
			setPos(&out[i], i)
		}
	}
	return out, nil
}

// Reorder is the guarded path used by sortable groups: it resolves the target
// index, rejects no-op and invalid moves, and applies the move. It reports
// false when nothing should change.
func Reorder[T Item](items []T, draggedID, hoverID string, placement Placement, setPos func(item *T, pos int)) ([]T, int, int, bool) {
	from := IndexOf(items, draggedID)
	if from == -1 || hoverID == "" || IndexOf(items, hoverID) == -1 {
		return nil, from, from, false
	}
	to := ComputeTargetIndex(items, draggedID, hoverID, placement)
	if to == from || to < 0 {
		return nil, from, to, false
	}
	out, err := ApplyReorder(items, from, to, setPos)
	if err != nil {
		return nil, from, to, false
	}
	return out, from, to, true
}
