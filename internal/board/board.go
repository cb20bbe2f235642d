// Package board binds a roster to a dnd engine: every group becomes a
// droppable sortable column and every user a sortable draggable card.
// It holds no rendering code, so hosts (Ebitengine, a terminal, the
// headless replay tool) draw from the views it exposes.
package board

import (
	"log/slog"
	"slices"

	"github.com/phanxgames/dnd"
	"github.com/phanxgames/dnd/internal/roster"

	"github.com/tanema/gween/ease"
)

const defaultSlideDuration = 0.15

// Board keeps engine bindings in step with the roster.
type Board struct {
	engine *dnd.Engine
	roster *roster.Roster
	layout Layout
	log    *slog.Logger

	slideDuration float32
	slideEase     ease.TweenFunc

	columns []*column
	cards   map[string]*card

	// OnChange is called after the roster changed through a drop or a
	// reorder and the bindings were synced.
	OnChange func()
}

type column struct {
	groupID    string
	index      int
	rect       dnd.Rect
	list       *dnd.DroppableSortable[roster.User]
	draggables map[string]*dnd.Draggable
}

type card struct {
	user    roster.User
	groupID string
	slot    dnd.Rect
	display dnd.Rect
	slide   *slide
}

// Option configures a Board.
type Option func(*Board)

// WithLayout replaces DefaultLayout.
func WithLayout(l Layout) Option {
	return func(b *Board) { b.layout = l }
}

// WithSlide sets how long cards take to ease into a new slot. A zero
// duration snaps cards into place.
func WithSlide(duration float32, fn ease.TweenFunc) Option {
	return func(b *Board) {
		b.slideDuration = duration
		if fn != nil {
			b.slideEase = fn
		}
	}
}

// WithLogger sets the logger for roster errors.
func WithLogger(l *slog.Logger) Option {
	return func(b *Board) { b.log = l }
}

// New creates a board and binds every group of r to e.
func New(e *dnd.Engine, r *roster.Roster, opts ...Option) *Board {
	b := &Board{
		engine:        e,
		roster:        r,
		layout:        DefaultLayout(),
		slideDuration: defaultSlideDuration,
		slideEase:     ease.OutCubic,
		cards:         make(map[string]*card),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = e.Logger()
	}
	b.Sync()
	return b
}

// Engine returns the engine the board is bound to.
func (b *Board) Engine() *dnd.Engine { return b.engine }

// Roster returns the bound roster.
func (b *Board) Roster() *roster.Roster { return b.roster }

// Layout returns the layout in use.
func (b *Board) Layout() Layout { return b.layout }

// AddGroup appends a generated group to the roster and binds it.
func (b *Board) AddGroup() roster.Group {
	g := b.roster.AddGroup()
	b.Sync()
	return g
}

// Sync reconciles engine bindings and card slots with the roster. Existing
// groups keep their group key; their handler is re-registered with the
// current users.
func (b *Board) Sync() {
	groups := b.roster.Groups()
	seenGroups := make(map[string]bool, len(groups))
	seenCards := make(map[string]bool)

	for gi, g := range groups {
		seenGroups[g.ID] = true
		col := b.column(g.ID)
		if col == nil {
			col = b.bindColumn(g)
		} else {
			col.list.Group.Update(g.Users, nil)
		}
		col.index = gi
		col.rect = b.layout.Column(gi, len(g.Users))

		for ui, u := range g.Users {
			seenCards[u.ID] = true
			b.placeCard(u, g.ID, b.layout.Slot(gi, ui))
			if _, ok := col.draggables[u.ID]; !ok {
				col.draggables[u.ID] = col.list.Group.NewDraggable(u.ID, b.cardElement(u.ID))
			}
		}
		for id, d := range col.draggables {
			if !slices.ContainsFunc(g.Users, func(u roster.User) bool { return u.ID == id }) {
				d.Dispose()
				delete(col.draggables, id)
			}
		}
	}

	b.columns = slices.DeleteFunc(b.columns, func(c *column) bool {
		if seenGroups[c.groupID] {
			return false
		}
		c.list.Dispose()
		return true
	})
	slices.SortFunc(b.columns, func(x, y *column) int { return x.index - y.index })
	for id := range b.cards {
		if !seenCards[id] {
			delete(b.cards, id)
		}
	}
}

func (b *Board) column(groupID string) *column {
	for _, c := range b.columns {
		if c.groupID == groupID {
			return c
		}
	}
	return nil
}

func (b *Board) bindColumn(g roster.Group) *column {
	col := &column{groupID: g.ID, draggables: make(map[string]*dnd.Draggable)}
	col.list = dnd.NewDroppableSortable(b.engine, g.ID,
		dnd.ElementFunc(func() dnd.Rect { return col.rect }),
		dnd.GroupConfig[roster.User]{
			Items:       g.Users,
			SetPosition: roster.SetIndex,
			OnReordered: func(users []roster.User) { b.reordered(col.groupID, users) },
		},
		func(d dnd.ActiveDrag) { b.dropped(col, d) },
	)
	b.columns = append(b.columns, col)
	return col
}

// cardElement reports the card's displayed bounds, so hit testing follows
// cards while they slide.
func (b *Board) cardElement(userID string) dnd.ElementRef {
	return dnd.ElementFunc(func() dnd.Rect {
		if c, ok := b.cards[userID]; ok {
			return c.display
		}
		return dnd.Rect{}
	})
}

func (b *Board) placeCard(u roster.User, groupID string, slot dnd.Rect) {
	c, ok := b.cards[u.ID]
	if !ok {
		b.cards[u.ID] = &card{user: u, groupID: groupID, slot: slot, display: slot}
		return
	}
	c.user = u
	c.groupID = groupID
	if c.slot == slot && c.slide == nil {
		return
	}
	c.slot = slot
	if b.slideDuration <= 0 {
		c.display = slot
		c.slide = nil
		return
	}
	c.display.Width, c.display.Height = slot.Width, slot.Height
	c.slide = newSlide(c.display, slot, b.slideDuration, b.slideEase)
}

// dropped moves a user from another group into col. Drops of a user the
// column already holds are left to the sortable group.
func (b *Board) dropped(col *column, d dnd.ActiveDrag) {
	if col.list.Group.Contains(d.ID) {
		return
	}
	if err := b.roster.MoveUser(d.ID, col.groupID); err != nil {
		b.log.Error("drop rejected", "user", d.ID, "group", col.groupID, "err", err)
		return
	}
	b.Sync()
	b.changed()
}

func (b *Board) reordered(groupID string, users []roster.User) {
	if err := b.roster.UpdateGroupUsers(groupID, users); err != nil {
		b.log.Error("reorder rejected", "group", groupID, "err", err)
		return
	}
	b.Sync()
	b.changed()
}

func (b *Board) changed() {
	if b.OnChange != nil {
		b.OnChange()
	}
}

// Update advances card slides by dt seconds.
func (b *Board) Update(dt float32) {
	for _, c := range b.cards {
		if c.slide == nil {
			continue
		}
		c.slide.update(dt, &c.display)
		if c.slide.done {
			c.display = c.slot
			c.slide = nil
		}
	}
}

// Animating reports whether any card is still sliding.
func (b *Board) Animating() bool {
	for _, c := range b.cards {
		if c.slide != nil {
			return true
		}
	}
	return false
}
