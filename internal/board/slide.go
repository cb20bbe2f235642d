package board

import (
	"github.com/phanxgames/dnd"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// slide eases a card's displayed position toward its slot. Call update(dt)
// each frame until done.
type slide struct {
	x, y *gween.Tween
	done bool
}

func newSlide(from, to dnd.Rect, duration float32, fn ease.TweenFunc) *slide {
	return &slide{
		x: gween.New(float32(from.X), float32(to.X), duration, fn),
		y: gween.New(float32(from.Y), float32(to.Y), duration, fn),
	}
}

// update advances both tweens by dt seconds and writes the values into r.
func (s *slide) update(dt float32, r *dnd.Rect) {
	if s.done {
		return
	}
	x, doneX := s.x.Update(dt)
	y, doneY := s.y.Update(dt)
	r.X = float64(x)
	r.Y = float64(y)
	s.done = doneX && doneY
}
