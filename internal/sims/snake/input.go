package snake

import "glyph-snake/internal/core"

var (
	left  = core.Point{X: -1}
	right = core.Point{X: 1}
	up    = core.Point{Y: -1}
	down  = core.Point{Y: 1}
)

// directions lists the axis neighbours in chase priority order.
var directions = [4]core.Point{right, down, left, up}

// InputQueue buffers at most two direction changes between moves.
type InputQueue struct {
	slots [2]core.Point
	n     int
}

// Push appends d. It reports false and drops d when both slots are taken.
func (q *InputQueue) Push(d core.Point) bool {
	if q.n == len(q.slots) {
		return false
	}
	q.slots[q.n] = d
	q.n++
	return true
}

// Pop removes the oldest buffered direction.
func (q *InputQueue) Pop() (core.Point, bool) {
	if q.n == 0 {
		return core.Point{}, false
	}
	d := q.slots[0]
	q.slots[0] = q.slots[1]
	q.slots[1] = core.Point{}
	q.n--
	return d, true
}

// Len reports the number of buffered directions.
func (q InputQueue) Len() int { return q.n }

// Clear drops all buffered input.
func (q *InputQueue) Clear() { *q = InputQueue{} }

// directionFor maps movement keys (arrows and WASD) to a unit direction.
func directionFor(k core.Key) (core.Point, bool) {
	switch k.Code {
	case core.KeyLeft:
		return left, true
	case core.KeyRight:
		return right, true
	case core.KeyUp:
		return up, true
	case core.KeyDown:
		return down, true
	case core.KeyRune:
		switch k.Rune {
		case 'a', 'A':
			return left, true
		case 'd', 'D':
			return right, true
		case 'w', 'W':
			return up, true
		case 's', 'S':
			return down, true
		}
	}
	return core.Point{}, false
}

func isEscape(k core.Key) bool {
	return k.Code == core.KeyEscape || (k.Code == core.KeyRune && k.Rune == '\x1b')
}

func isRestart(k core.Key) bool {
	return k.Code == core.KeyRune && (k.Rune == 'r' || k.Rune == 'R')
}

func isConfirm(k core.Key) bool {
	return k.Code == core.KeyEnter || (k.Code == core.KeyRune && k.Rune == ' ')
}

// HandleKey records a key press. Every key stirs the random seed; movement
// keys are buffered only while running.
func (w *World) HandleKey(k core.Key) {
	w.st.RNG.Stir(k.Value())

	switch {
	case isEscape(k):
		switch w.st.Status {
		case Running:
			w.setStatus(Paused)
		case Paused:
			w.setStatus(Running)
		case GameOver:
			w.setStatus(StartScreen)
		}
		return
	case isRestart(k):
		switch w.st.Status {
		case GameOver, Paused, StartScreen:
			w.restart(Running)
		}
		return
	case isConfirm(k):
		if w.st.Status == StartScreen {
			w.restart(Running)
		}
		return
	}

	if w.st.Status != Running {
		return
	}
	if d, ok := directionFor(k); ok {
		w.st.Input.Push(d)
	}
}

// applyInput consumes one buffered direction. A reversal of the current
// heading is discarded.
func (w *World) applyInput() {
	d, ok := w.st.Input.Pop()
	if !ok {
		return
	}
	if d == w.st.Vel.Neg() {
		return
	}
	w.st.Vel = d
}
