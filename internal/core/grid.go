package core

// Color enumerates the sixteen text-mode colours a cell can carry.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

// ColorPair is the foreground/background combination stored with a glyph.
type ColorPair struct {
	FG Color
	BG Color
}

// Cell is a single displayed character and its colours.
type Cell struct {
	Ch    rune
	Color ColorPair
}

// Blank is the cell every grid starts out with.
var Blank = Cell{Ch: ' ', Color: ColorPair{FG: Black, BG: Black}}

// Surface is the addressable character grid a simulation draws into. Peek
// and Plot are not bounds-checked; callers keep coordinates inside Size.
type Surface interface {
	Size() Size
	Peek(x, y int) (rune, ColorPair)
	Plot(ch rune, x, y int, c ColorPair)
	Clear()
}

// Grid stores a 2D grid of character cells in row-major order.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates a blank grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid{W: w, H: h, data: make([]Cell, w*h)}
	g.Clear()
	return g
}

// Cells exposes the backing slice so callers can read cells directly.
func (g *Grid) Cells() []Cell { return g.data }

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Peek returns the glyph and colours stored at (x, y).
func (g *Grid) Peek(x, y int) (rune, ColorPair) {
	c := g.data[g.Index(x, y)]
	return c.Ch, c.Color
}

// Plot stores a glyph and its colours at (x, y).
func (g *Grid) Plot(ch rune, x, y int, c ColorPair) {
	g.data[g.Index(x, y)] = Cell{Ch: ch, Color: c}
}

// Clear resets every cell to Blank.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Blank
	}
}
