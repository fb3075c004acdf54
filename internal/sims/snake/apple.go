package snake

import "glyph-snake/internal/core"

// interior maps v onto [1, n-2], keeping clear of a border frame. Boards too
// thin to have an interior use the full range.
func interior(v uint32, n int) int {
	if n <= 2 {
		return int(v % uint32(n))
	}
	return 1 + int(v%uint32(n-2))
}

// placeApple draws a candidate cell and puts the apple on the first vacant
// cell from there. A full board pauses the round.
func (w *World) placeApple() {
	size := w.surface.Size()
	candidate := core.Point{
		X: interior(w.st.RNG.Next(w.st.Length), size.W),
		Y: interior(w.st.RNG.Next(w.st.Length), size.H),
	}
	p, ok := w.findVacant(candidate)
	if !ok {
		w.log.Printf("snake: round %s: no vacant cell for an apple, pausing", w.round)
		w.setStatus(Paused)
		return
	}
	w.st.Apple = p
	w.draw(Apple, p)
}

// findVacant scans row-major from start, wrapping at the edges, for an
// empty cell on a neutral background. It gives up after one full lap.
func (w *World) findVacant(start core.Point) (core.Point, bool) {
	size := w.surface.Size()
	start = size.Wrap(start)
	total := size.W * size.H
	origin := start.Y*size.W + start.X
	for i := 0; i < total; i++ {
		idx := (origin + i) % total
		p := core.Point{X: idx % size.W, Y: idx / size.W}
		s, c := w.safePeek(p)
		if s.Kind == KindEmpty && c.BG == Neutral.BG {
			return p, true
		}
	}
	return core.Point{}, false
}
