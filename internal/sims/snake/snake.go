package snake

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"glyph-snake/internal/core"
)

// World is a snake round drawn on a character surface. The surface is the
// only record of the body; State tracks its two ends.
type World struct {
	cfg Config

	surface core.Surface
	codec   *Codec
	st      State

	log   *log.Logger
	round string
}

// New returns a snake game on a w x h board using the default settings.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a snake game drawing into its own grid.
func NewWithConfig(cfg Config) *World {
	cfg = cfg.normalized()
	w, err := NewWithSurface(cfg, core.NewGrid(cfg.Width, cfg.Height))
	if err != nil {
		// normalized configs only name built-in glyph sets
		panic(err)
	}
	return w
}

// NewWithSurface returns a snake game drawing into s. The board takes the
// dimensions of the surface; cfg.Width and cfg.Height are overwritten.
func NewWithSurface(cfg Config, s core.Surface) (*World, error) {
	size := s.Size()
	if size.W < MinDimension || size.H < MinDimension {
		return nil, fmt.Errorf("snake: surface %dx%d is smaller than %dx%d", size.W, size.H, MinDimension, MinDimension)
	}
	cfg.Width, cfg.Height = size.W, size.H
	cfg = cfg.normalized()

	set, _ := GlyphSetByName(cfg.Glyphs)
	codec, err := NewCodec(set)
	if err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	w := &World{cfg: cfg, surface: s, codec: codec, log: logger}
	w.Reset(0)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "snake" }

// Size reports the board dimensions.
func (w *World) Size() core.Size { return w.surface.Size() }

// Surface exposes the grid the game draws into.
func (w *World) Surface() core.Surface { return w.surface }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// State returns a copy of the round state.
func (w *World) State() State { return w.st }

// Status reports the phase of the round. Harnesses poll it to decide
// whether to keep ticking.
func (w *World) Status() Status { return w.st.Status }

// Round returns the identifier of the current round.
func (w *World) Round() string { return w.round }

// Scoreboard summarises the round for display.
func (w *World) Scoreboard() core.Scoreboard {
	return core.Scoreboard{
		Score:  w.st.Score,
		Length: w.st.Length,
		Status: w.st.Status.String(),
		Ticks:  w.st.Ticks,
	}
}

// Reset starts a fresh round from seed. Zero selects the configured seed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.st.RNG = core.NewRNG(uint32(seed))
	status := Running
	if w.cfg.StartScreen {
		status = StartScreen
	}
	w.restart(status)
}

// restart wipes the board and begins a new round. The generator is kept as
// it stands rather than reseeded, so a replayed round differs from the last
// one; only Reset goes back to a seed.
func (w *World) restart(status Status) {
	w.surface.Clear()
	if w.cfg.Walls {
		w.drawFrame()
	}
	w.st = initialState(w.cfg, w.st.RNG, status)
	w.draw(Head, w.st.Head)
	w.round = uuid.NewString()
	w.log.Printf("snake: round %s started at %v, seed %d", w.round, w.st.Head, w.st.RNG.Seed())
}

// Step advances the game by one frame. The snake moves once every
// UpdateFrequency+1 frames while running.
func (w *World) Step() {
	w.st.RNG.Tick()
	w.st.Ticks++

	switch w.st.Status {
	case JustDied:
		w.setStatus(GameOver)
		return
	case Running:
	default:
		return
	}

	if w.st.Countdown > 0 {
		w.st.Countdown--
		return
	}
	w.st.Countdown = w.cfg.UpdateFrequency
	w.move()
}

func (w *World) setStatus(s Status) {
	if w.st.Status == s {
		return
	}
	if s == GameOver {
		w.log.Printf("snake: round %s over: score %d, length %d", w.round, w.st.Score, w.st.Length)
	}
	w.st.Status = s
}

func init() {
	core.Register("snake", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
