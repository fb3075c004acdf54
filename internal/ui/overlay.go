//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"glyph-snake/internal/core"
)

// Overlay draws status banners, the death flash and an optional cell grid
// on top of the board.
type Overlay struct {
	sim         core.Sim
	cellW       int
	cellH       int
	showGrid    bool
	showBanners bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay for a board drawn with the given cell
// size in pixels.
func NewOverlay(sim core.Sim, cellW, cellH int) *Overlay {
	o := &Overlay{sim: sim, cellW: cellW, cellH: cellH, showBanners: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showBanners = !o.showBanners
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 || o.cellW <= 0 || o.cellH <= 0 {
		return
	}
	width := float64(size.W * o.cellW)
	height := float64(size.H * o.cellH)

	if o.showGrid {
		o.drawGrid(screen, size)
	}

	provider, ok := o.sim.(core.ScoreboardProvider)
	if !ok {
		return
	}
	status := provider.Scoreboard().Status
	if status == core.StatusJustDied {
		o.drawRect(screen, 0, 0, width, height, color.NRGBA{R: 200, G: 30, B: 30, A: 110})
	}
	if !o.showBanners {
		return
	}
	if title, hint, ok := Banner(status); ok {
		o.drawBanner(screen, width, height, title, hint)
	}
}

func (o *Overlay) drawBanner(screen *ebiten.Image, width, height float64, title, hint string) {
	face := basicfont.Face7x13
	titleBounds := text.BoundString(face, title)
	hintBounds := text.BoundString(face, hint)
	boxW := math.Max(float64(titleBounds.Dx()), float64(hintBounds.Dx())) + 24
	boxH := 48.0
	x := (width - boxW) / 2
	y := (height - boxH) / 2
	o.drawRect(screen, x, y, boxW, boxH, color.NRGBA{R: 16, G: 16, B: 20, A: 220})

	cx := int(width / 2)
	text.Draw(screen, title, face, cx-titleBounds.Dx()/2, int(y)+18, color.RGBA{R: 255, G: 255, B: 85, A: 255})
	text.Draw(screen, hint, face, cx-hintBounds.Dx()/2, int(y)+38, color.RGBA{R: 170, G: 170, B: 170, A: 255})
}

func (o *Overlay) drawGrid(screen *ebiten.Image, size core.Size) {
	col := color.NRGBA{R: 60, G: 60, B: 70, A: 90}
	width := float64(size.W * o.cellW)
	height := float64(size.H * o.cellH)
	for x := 1; x < size.W; x++ {
		px := float64(x * o.cellW)
		o.drawLine(screen, px, 0, px, height, 1, col)
	}
	for y := 1; y < size.H; y++ {
		py := float64(y * o.cellH)
		o.drawLine(screen, 0, py, width, py, 1, col)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.Color) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.Color) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
