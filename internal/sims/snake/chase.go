package snake

import "glyph-snake/internal/core"

// chaseTail erases the tail cell and moves the tail onto the segment that
// continues the body. Anything but a body or start glyph under the tail
// leaves the board untouched.
func (w *World) chaseTail() {
	tail := w.st.Tail
	s := w.symbolAt(tail)
	if s.Kind != KindBody && s.Kind != KindStart {
		return
	}
	w.draw(Empty, tail)
	if next, ok := w.successor(tail, s, tail, false); ok {
		w.st.Tail = next
	}
}

// successor finds the segment after cur by probing its neighbours in
// priority order. A body neighbour qualifies when its glyph opens back
// towards cur and cur opens towards it; a start marker opens every way.
// The head qualifies only from the cell it just left. prev is skipped when
// hasPrev is set.
func (w *World) successor(cur core.Point, s Symbol, prev core.Point, hasPrev bool) (core.Point, bool) {
	size := w.surface.Size()
	for _, d := range directions {
		n := size.Wrap(cur.Add(d))
		if hasPrev && n == prev {
			continue
		}
		if s.Kind == KindBody && !s.Trail.Connects(d) {
			continue
		}
		ns := w.symbolAt(n)
		switch ns.Kind {
		case KindBody:
			if ns.Trail.Connects(d.Neg()) {
				return n, true
			}
		case KindHead:
			if n == w.st.Head && cur == w.st.OldHead {
				return n, true
			}
		}
	}
	return core.Point{}, false
}
