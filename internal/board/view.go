package board

import (
	"github.com/phanxgames/dnd"
	"github.com/phanxgames/dnd/internal/roster"
)

// ColumnView is a snapshot of one group for drawing.
type ColumnView struct {
	GroupID string
	Index   int
	Rect    dnd.Rect
	Over    bool // the column or one of its cards is the hover target
	Cards   []CardView
}

// CardView is a snapshot of one user card.
type CardView struct {
	User   roster.User
	Rect   dnd.Rect // displayed bounds, mid-slide while animating
	Active bool     // being dragged
	Over   bool     // hover target
}

// Columns returns every column in display order.
func (b *Board) Columns() []ColumnView {
	hover := b.engine.State().Hover()
	drag, dragging := b.engine.State().Active()

	out := make([]ColumnView, 0, len(b.columns))
	for _, col := range b.columns {
		cv := ColumnView{
			GroupID: col.groupID,
			Index:   col.index,
			Rect:    col.rect,
			Over:    col.list.Target.IsOver() || (hover != "" && col.list.Group.Contains(hover)),
		}
		for _, u := range col.list.Group.Items() {
			c, ok := b.cards[u.ID]
			if !ok {
				continue
			}
			cv.Cards = append(cv.Cards, CardView{
				User:   u,
				Rect:   c.display,
				Active: dragging && drag.ID == u.ID,
				Over:   hover == u.ID,
			})
		}
		out = append(out, cv)
	}
	return out
}

// Ghost returns the bounds of the dragged card centered on the pointer,
// and false when nothing from this board is being dragged.
func (b *Board) Ghost() (CardView, bool) {
	drag, ok := b.engine.State().Active()
	if !ok {
		return CardView{}, false
	}
	c, ok := b.cards[drag.ID]
	if !ok {
		return CardView{}, false
	}
	r := c.display
	r.X = drag.Pointer.X - r.Width/2
	r.Y = drag.Pointer.Y - r.Height/2
	return CardView{User: c.user, Rect: r, Active: true}, true
}

// Orders returns the user names of every group, in order. Used by the
// replay tool and tests.
func (b *Board) Orders() [][]string {
	groups := b.roster.Groups()
	out := make([][]string, len(groups))
	for i, g := range groups {
		for _, u := range g.Users {
			out[i] = append(out[i], u.Name)
		}
	}
	return out
}
