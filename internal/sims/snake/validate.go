package snake

import (
	"fmt"

	"glyph-snake/internal/core"
)

// CheckPath verifies that the cells holding the snake form one simple path
// from the tail to the head, following nothing but the glyphs on the board.
func (w *World) CheckPath() error {
	size := w.surface.Size()
	occupied := 0
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if w.symbolAt(core.Point{X: x, Y: y}).Occupied() {
				occupied++
			}
		}
	}

	head := w.st.Head
	if s := w.symbolAt(head); s.Kind != KindHead {
		return fmt.Errorf("head %v holds %s", head, s)
	}

	cur, prev := w.st.Tail, w.st.Tail
	hasPrev := false
	cells := 1
	for cur != head {
		s := w.symbolAt(cur)
		if s.Kind != KindBody && s.Kind != KindStart {
			return fmt.Errorf("segment %v holds %s", cur, s)
		}
		if hasPrev && s.Kind == KindStart {
			return fmt.Errorf("start marker %v is not the tail", cur)
		}
		next, ok := w.successor(cur, s, prev, hasPrev)
		if !ok {
			return fmt.Errorf("path from tail %v breaks at %v", w.st.Tail, cur)
		}
		prev, cur, hasPrev = cur, next, true
		cells++
		if cells > occupied {
			return fmt.Errorf("path from tail %v loops before reaching head %v", w.st.Tail, head)
		}
	}
	if cells != occupied {
		return fmt.Errorf("path covers %d cells but %d are occupied", cells, occupied)
	}
	return nil
}
