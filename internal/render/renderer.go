//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"glyph-snake/internal/core"
)

// Cell dimensions of the built-in bitmap face.
const (
	CellW = 7
	CellH = 13
)

// CellPainter draws a character surface: one background pixel per cell
// scaled to the cell size, then the glyphs on top.
type CellPainter struct {
	w, h  int
	bg    *ebiten.Image
	buf   []byte
	pixel *ebiten.Image
}

// NewCellPainter allocates a painter for a surface of w*h cells.
func NewCellPainter(w, h int) *CellPainter {
	cp := &CellPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	cp.bg = ebiten.NewImage(w, h)
	cp.pixel = ebiten.NewImage(1, 1)
	cp.pixel.Fill(RGBA(core.White))
	return cp
}

// Blit draws s onto dst at the origin.
func (cp *CellPainter) Blit(dst *ebiten.Image, s core.Surface) {
	size := s.Size()
	if size.W != cp.w || size.H != cp.h {
		return
	}
	fillBackgroundRGBA(cp.buf, s)
	cp.bg.WritePixels(cp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(CellW, CellH)
	dst.DrawImage(cp.bg, op)

	face := basicfont.Face7x13
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			ch, pair := s.Peek(x, y)
			if ch == ' ' {
				continue
			}
			fg := RGBA(pair.FG)
			if _, ok := face.GlyphAdvance(ch); !ok {
				// The bitmap face is ASCII only; mark the cell instead.
				cp.fillCell(dst, x, y, fg)
				continue
			}
			text.Draw(dst, string(ch), face, x*CellW, y*CellH+face.Ascent, fg)
		}
	}
}

func (cp *CellPainter) fillCell(dst *ebiten.Image, x, y int, col color.Color) {
	r, g, b, a := col.RGBA()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(CellW-2, CellH-4)
	op.GeoM.Translate(float64(x*CellW+1), float64(y*CellH+2))
	op.ColorScale.Scale(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
	dst.DrawImage(cp.pixel, op)
}
