//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"glyph-snake/internal/core"
	"glyph-snake/internal/render"
	"glyph-snake/internal/ui"
)

const hudWidth = 220

// Game adapts a core game to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	keys    core.KeyHandler
	painter *render.CellPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	chars []rune
	seed  int64
}

// controlKeys maps the ebiten keys with no printable form.
var controlKeys = []struct {
	key  ebiten.Key
	code core.KeyCode
}{
	{ebiten.KeyArrowLeft, core.KeyLeft},
	{ebiten.KeyArrowRight, core.KeyRight},
	{ebiten.KeyArrowUp, core.KeyUp},
	{ebiten.KeyArrowDown, core.KeyDown},
	{ebiten.KeyEscape, core.KeyEscape},
	{ebiten.KeyEnter, core.KeyEnter},
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, seed int64) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewCellPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, render.CellW, render.CellH),
		hud:     ui.NewHUD(sim, hudWidth, size.H*render.CellH),
		seed:    seed,
	}
	if kh, ok := sim.(core.KeyHandler); ok {
		g.keys = kh
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
}

// Update forwards key presses and advances the game by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.Reset(g.seed)
	}

	if g.keys != nil {
		for _, ck := range controlKeys {
			if inpututil.IsKeyJustPressed(ck.key) {
				g.keys.HandleKey(core.Key{Code: ck.code})
			}
		}
		g.chars = ebiten.AppendInputChars(g.chars[:0])
		for _, r := range g.chars {
			g.keys.HandleKey(core.RuneKey(r))
		}
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	g.hud.Update(g.boardWidth())

	g.sim.Step()
	return nil
}

// Draw renders the current game state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Surface())
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	g.hud.Draw(screen, g.boardWidth())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return g.boardWidth() + hudWidth, s.H * render.CellH
}

func (g *Game) boardWidth() int { return g.sim.Size().W * render.CellW }
