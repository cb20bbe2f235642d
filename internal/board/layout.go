package board

import "github.com/phanxgames/dnd"

// Layout places groups side by side as columns and stacks each group's
// users inside its column.
type Layout struct {
	Origin      dnd.Vec2
	ColumnWidth float64
	ColumnGap   float64
	Header      float64 // space above the first slot for the group title
	Padding     float64
	SlotHeight  float64
	SlotGap     float64
}

// DefaultLayout matches the demo window.
func DefaultLayout() Layout {
	return Layout{
		Origin:      dnd.Vec2{X: 20, Y: 20},
		ColumnWidth: 220,
		ColumnGap:   20,
		Header:      30,
		Padding:     10,
		SlotHeight:  40,
		SlotGap:     10,
	}
}

// Column returns the bounds of column col holding n users. An empty column
// keeps room for one slot so it can still receive drops.
func (l Layout) Column(col, n int) dnd.Rect {
	rows := max(n, 1)
	h := l.Header + 2*l.Padding + float64(rows)*l.SlotHeight + float64(rows-1)*l.SlotGap
	return dnd.Rect{
		X:      l.Origin.X + float64(col)*(l.ColumnWidth+l.ColumnGap),
		Y:      l.Origin.Y,
		Width:  l.ColumnWidth,
		Height: h,
	}
}

// Slot returns the bounds of row row in column col.
func (l Layout) Slot(col, row int) dnd.Rect {
	return dnd.Rect{
		X:      l.Origin.X + float64(col)*(l.ColumnWidth+l.ColumnGap) + l.Padding,
		Y:      l.Origin.Y + l.Header + l.Padding + float64(row)*(l.SlotHeight+l.SlotGap),
		Width:  l.ColumnWidth - 2*l.Padding,
		Height: l.SlotHeight,
	}
}

// Size returns the extent needed to show cols columns of up to rows users.
func (l Layout) Size(cols, rows int) (w, h float64) {
	last := l.Column(max(cols, 1)-1, rows)
	return last.X + last.Width + l.Origin.X, last.Y + last.Height + l.Origin.Y
}
