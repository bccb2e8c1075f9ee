//go:build ebiten

package app

import (
	"image/color"
	"time"

	"dungen/internal/core"
	"dungen/internal/render"
	"dungen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core generator to the ebiten.Game interface.
type Game struct {
	gen     core.Generator
	painter *render.GridPainter
	overlay *ui.Overlay
	cursor  *controlCursor

	palette []color.RGBA

	scale int
	seed  int64
}

// New constructs a Game for the provided generator.
func New(gen core.Generator, scale int, seed int64) *Game {
	g := &Game{
		gen:     gen,
		painter: render.NewGridPainter(gen.Size().W, gen.Size().H),
		overlay: ui.NewOverlay(gen, scale),
		cursor:  newControlCursor(gen),
		scale:   scale,
		seed:    seed,
	}
	if provider, ok := gen.(paletteProvider); ok {
		g.palette = provider.Palette()
	} else {
		g.palette = []color.RGBA{
			{R: 0, G: 0, B: 0, A: 255},
			{R: 255, G: 255, B: 255, A: 255},
		}
	}
	return g
}

// Reset regenerates the dungeon with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.gen.Reset(seed)
}

// Update handles keyboard input. Generation is instantaneous, so there is no
// per-frame stepping; the grid only changes on an explicit regenerate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && !g.cursor.Empty() {
		g.cursor.Cycle()
		ebiten.SetWindowTitle("dungen — " + g.gen.Name() + " [" + g.cursor.Label() + "]")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		if g.cursor.Adjust(g.gen, -1) {
			g.Reset(g.seed)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		if g.cursor.Adjust(g.gen, 1) {
			g.Reset(g.seed)
		}
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	return nil
}

// Draw renders the current dungeon state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.BlitPalette(screen, g.gen.Cells(), g.palette, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.gen.Size()
	return s.W * g.scale, s.H * g.scale
}
