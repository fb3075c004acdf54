package snake

import "glyph-snake/internal/core"

// Neutral is the color pair of an empty cell. Apple placement only accepts
// cells whose background matches it.
var Neutral = core.ColorPair{FG: core.Black, BG: core.Black}

var (
	snakeColors = core.ColorPair{FG: core.Cyan, BG: core.Black}
	appleColors = core.ColorPair{FG: core.Red, BG: core.Black}
	wallColors  = core.ColorPair{FG: core.Yellow, BG: core.Brown}
	textColors  = core.ColorPair{FG: core.White, BG: core.Black}
)

// ColorsFor returns the color pair a symbol is drawn with.
func ColorsFor(s Symbol) core.ColorPair {
	switch s.Kind {
	case KindHead, KindBody, KindStart:
		return snakeColors
	case KindApple:
		return appleColors
	case KindWall:
		return wallColors
	case KindUnrecognized:
		return textColors
	}
	return Neutral
}

func (w *World) draw(s Symbol, p core.Point) {
	w.surface.Plot(w.codec.Encode(s), p.X, p.Y, ColorsFor(s))
}

// safePeek decodes the cell at p. Coordinates off the surface read as NaN
// on a neutral background.
func (w *World) safePeek(p core.Point) (Symbol, core.ColorPair) {
	if !w.surface.Size().InBounds(p) {
		return NaN, Neutral
	}
	ch, c := w.surface.Peek(p.X, p.Y)
	return w.codec.Decode(ch), c
}

func (w *World) symbolAt(p core.Point) Symbol {
	s, _ := w.safePeek(p)
	return s
}

// drawFrame walls off the outermost ring of cells.
func (w *World) drawFrame() {
	size := w.surface.Size()
	for x := 0; x < size.W; x++ {
		w.draw(Wall, core.Point{X: x, Y: 0})
		w.draw(Wall, core.Point{X: x, Y: size.H - 1})
	}
	for y := 1; y < size.H-1; y++ {
		w.draw(Wall, core.Point{X: 0, Y: y})
		w.draw(Wall, core.Point{X: size.W - 1, Y: y})
	}
}
