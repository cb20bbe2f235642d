package dnd

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// EbitenPointer reads the mouse cursor and left button from Ebitengine.
// Only meaningful inside a running ebiten.Game.
type EbitenPointer struct{}

// ReadPointer implements PointerReader.
func (EbitenPointer) ReadPointer() (x, y float64, pressed bool) {
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// RunConfig configures Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Background fills the screen before Draw. Zero leaves it black.
	Background color.Color

	// Update runs after the engine's Update each tick. dt is in seconds.
	Update func(dt float64) error
	// Draw renders one frame.
	Draw func(screen *ebiten.Image)
}

// Run opens a window and drives e once per tick until the window closes or
// Update returns an error. It is a convenience for small tools and demos;
// larger games call Engine.Update from their own ebiten.Game.
func Run(e *Engine, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&runGame{engine: e, cfg: cfg})
}

type runGame struct {
	engine *Engine
	cfg    RunConfig
}

func (g *runGame) Update() error {
	g.engine.Update()
	if g.cfg.Update != nil {
		return g.cfg.Update(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

func (g *runGame) Draw(screen *ebiten.Image) {
	if g.cfg.Background != nil {
		screen.Fill(g.cfg.Background)
	}
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen)
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *runGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
