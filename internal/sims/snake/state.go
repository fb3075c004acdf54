package snake

import "glyph-snake/internal/core"

// Status is the phase of a round.
type Status uint8

const (
	Running Status = iota
	Paused
	JustDied
	GameOver
	StartScreen
)

func (s Status) String() string {
	switch s {
	case Running:
		return core.StatusRunning
	case Paused:
		return core.StatusPaused
	case JustDied:
		return core.StatusJustDied
	case GameOver:
		return core.StatusGameOver
	case StartScreen:
		return core.StatusStartScreen
	}
	return "unknown"
}

// State is everything about a round that is not stored on the grid. The
// body itself lives only in the glyphs between Tail and Head.
type State struct {
	Head    core.Point
	OldHead core.Point
	Tail    core.Point
	Vel     core.Point

	Apple core.Point

	Score  int
	Length int
	// Growth counts moves still owed to apples: the tail stays put for each.
	Growth int
	// Countdown is the number of frames until the next move.
	Countdown int

	Status Status
	RNG    core.RNG
	Input  InputQueue

	// Ticks counts frames since the round started.
	Ticks uint64
}

func initialState(cfg Config, rng core.RNG, status Status) State {
	start := core.Point{X: cfg.Width / 4, Y: cfg.Height / 2}
	if cfg.Walls {
		// keep off the frame on narrow boards
		start.X = max(start.X, 1)
		start.Y = max(start.Y, 1)
	}
	return State{
		Head:      start,
		OldHead:   start,
		Tail:      start,
		Vel:       right,
		Growth:    cfg.InitialGrowth,
		Countdown: cfg.UpdateFrequency,
		Status:    status,
		RNG:       rng,
	}
}
