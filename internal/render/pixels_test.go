package render

import (
	"testing"

	"glyph-snake/internal/core"
)

func TestFillBackgroundRGBA(t *testing.T) {
	g := core.NewGrid(3, 2)
	g.Plot('#', 1, 0, core.ColorPair{FG: core.Yellow, BG: core.Brown})
	g.Plot('0', 2, 1, core.ColorPair{FG: core.Cyan, BG: core.Black})

	buf := make([]byte, 4*3*2)
	fillBackgroundRGBA(buf, g)

	brown := RGBA(core.Brown)
	if got := buf[4:8]; got[0] != brown.R || got[1] != brown.G || got[2] != brown.B || got[3] != 0xff {
		t.Fatalf("wall cell background = %v, want %v", got, brown)
	}
	for _, idx := range []int{0, 2, 3, 4, 5} {
		base := idx * 4
		if buf[base] != 0 || buf[base+1] != 0 || buf[base+2] != 0 || buf[base+3] != 0xff {
			t.Fatalf("cell %d should be opaque black, got %v", idx, buf[base:base+4])
		}
	}
}

func TestRGBAOutOfRange(t *testing.T) {
	if RGBA(core.Color(200)) != RGBA(core.Black) {
		t.Fatal("unknown colours should render black")
	}
	if RGBA(core.White).R != 0xff {
		t.Fatal("white is not white")
	}
}
