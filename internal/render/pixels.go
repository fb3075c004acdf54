package render

import (
	"image/color"

	"glyph-snake/internal/core"
)

// vga holds the sixteen text-mode colours in core.Color order.
var vga = [16]color.RGBA{
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	{R: 0x00, G: 0x00, B: 0xaa, A: 0xff},
	{R: 0x00, G: 0xaa, B: 0x00, A: 0xff},
	{R: 0x00, G: 0xaa, B: 0xaa, A: 0xff},
	{R: 0xaa, G: 0x00, B: 0x00, A: 0xff},
	{R: 0xaa, G: 0x00, B: 0xaa, A: 0xff},
	{R: 0xaa, G: 0x55, B: 0x00, A: 0xff},
	{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff},
	{R: 0x55, G: 0x55, B: 0x55, A: 0xff},
	{R: 0x55, G: 0x55, B: 0xff, A: 0xff},
	{R: 0x55, G: 0xff, B: 0x55, A: 0xff},
	{R: 0x55, G: 0xff, B: 0xff, A: 0xff},
	{R: 0xff, G: 0x55, B: 0x55, A: 0xff},
	{R: 0xff, G: 0x55, B: 0xff, A: 0xff},
	{R: 0xff, G: 0xff, B: 0x55, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// RGBA converts a text-mode colour to its display value. Out of range
// values render as black.
func RGBA(c core.Color) color.RGBA {
	if int(c) >= len(vga) {
		return vga[core.Black]
	}
	return vga[c]
}

// fillBackgroundRGBA writes one pixel per cell holding the cell's
// background colour. buf must hold 4*W*H bytes.
func fillBackgroundRGBA(buf []byte, s core.Surface) {
	size := s.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			_, pair := s.Peek(x, y)
			col := RGBA(pair.BG)
			base := (y*size.W + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
