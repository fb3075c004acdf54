package snake

import "glyph-snake/internal/core"

// wrapDelta folds a coordinate difference taken across the board edge back
// to a unit step.
func wrapDelta(d, n int) int {
	switch {
	case d > 1:
		return d - n
	case d < -1:
		return d + n
	}
	return d
}

// displacement is the unit step that leads from a to b on a board of the
// given size. Equal points yield the zero vector.
func displacement(a, b core.Point, size core.Size) core.Point {
	return core.Point{
		X: wrapDelta(b.X-a.X, size.W),
		Y: wrapDelta(b.Y-a.Y, size.H),
	}
}

// move performs one due tick: input, head, trail, apple, tail.
func (w *World) move() {
	w.applyInput()

	size := w.surface.Size()
	next := size.Wrap(w.st.Head.Add(w.st.Vel))

	// The head may enter the cell the tail is leaving on this very tick.
	chased := false
	if w.st.Growth == 0 && next == w.st.Tail && w.st.Tail != w.st.Head {
		w.chaseTail()
		chased = true
	}

	entered := displacement(w.st.OldHead, w.st.Head, size)
	if !w.advance() {
		return
	}
	w.draw(ChooseTrail(entered, w.st.Vel), w.st.OldHead)

	if w.symbolAt(w.st.Apple).Kind != KindApple {
		w.placeApple()
	}

	if w.st.Growth > 0 {
		w.st.Growth--
		w.st.Length++
		return
	}
	if !chased {
		w.chaseTail()
	}
}

// advance moves the head one step along the velocity and resolves whatever
// it lands on. It reports false on a collision, in which case the head is
// left where it was and the round is over. Characters the codec does not
// map decode as NaN and collide like a wall.
func (w *World) advance() bool {
	prevOld := w.st.OldHead
	w.st.OldHead = w.st.Head
	w.st.Head = w.surface.Size().Wrap(w.st.Head.Add(w.st.Vel))

	switch target := w.symbolAt(w.st.Head); target.Kind {
	case KindHead, KindEmpty:
	case KindApple:
		w.st.Score++
		w.st.Growth += w.cfg.AppleGrowth
	default:
		w.log.Printf("snake: round %s: hit %s at %v, score %d", w.round, target, w.st.Head, w.st.Score)
		w.st.Head = w.st.OldHead
		w.st.OldHead = prevOld
		w.setStatus(JustDied)
		return false
	}

	w.draw(Head, w.st.Head)
	return true
}
