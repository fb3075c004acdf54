package term

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"glyph-snake/internal/core"
	"glyph-snake/internal/ui"
)

const (
	framePeriod = 16 * time.Millisecond // ~60 FPS
	maxCatchUp  = 4
	minTPS      = 1
	maxTPS      = 240
)

// Runner drives a sim on a terminal screen: it polls keys, advances the sim
// at a fixed tick rate and redraws every frame.
type Runner struct {
	screen tcell.Screen
	sim    core.Sim
	keys   core.KeyHandler
	step   *core.FixedStep
	seed   int64
	log    *log.Logger
}

// NewRunner prepares a runner. The screen must already be initialised.
func NewRunner(screen tcell.Screen, sim core.Sim, tps int, seed int64, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	r := &Runner{
		screen: screen,
		sim:    sim,
		step:   core.NewFixedStep(clampTPS(tps)),
		seed:   seed,
		log:    logger,
	}
	if kh, ok := sim.(core.KeyHandler); ok {
		r.keys = kh
	}
	return r
}

// TPS reports the current tick rate.
func (r *Runner) TPS() int { return r.step.TPS() }

// Run loops until ctx is cancelled or the player quits.
func (r *Runner) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()

	r.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !r.handle(ev) {
				return nil
			}
		case <-ticker.C:
			r.advance()
			r.draw()
		}
	}
}

func (r *Runner) advance() {
	for i := 0; i < maxCatchUp && r.step.ShouldStep(); i++ {
		r.sim.Step()
	}
}

// handle reacts to one terminal event and reports whether to keep running.
func (r *Runner) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case '+', '=':
				r.setTPS(r.step.TPS() * 2)
				return true
			case '-', '_':
				r.setTPS(r.step.TPS() / 2)
				return true
			}
		}
		if ev.Key() == tcell.KeyF5 {
			r.log.Printf("reset with seed %d", r.seed)
			r.sim.Reset(r.seed)
			return true
		}
		if r.keys != nil {
			if k, ok := TranslateKey(ev); ok {
				r.keys.HandleKey(k)
			}
		}
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return true
}

func (r *Runner) setTPS(tps int) {
	tps = clampTPS(tps)
	if tps == r.step.TPS() {
		return
	}
	r.step.SetTPS(tps)
	r.log.Printf("tick rate %d", tps)
}

func clampTPS(tps int) int {
	if tps < minTPS {
		return minTPS
	}
	if tps > maxTPS {
		return maxTPS
	}
	return tps
}

func (r *Runner) draw() {
	r.screen.Clear()
	Blit(r.screen, r.sim.Surface())
	if sp, ok := r.sim.(core.ScoreboardProvider); ok {
		w, h := r.screen.Size()
		row := r.sim.Size().H
		if row < h {
			DrawText(r.screen, 0, row, w, statusStyle, StatusLine(sp.Scoreboard(), r.step.TPS()))
		}
		if title, hint, ok := ui.Banner(sp.Scoreboard().Status); ok {
			r.drawBanner(title, hint)
		}
	}
	r.screen.Show()
}

// drawBanner centres a title and a hint over the middle rows of the board.
func (r *Runner) drawBanner(title, hint string) {
	size := r.sim.Size()
	mid := size.H / 2
	for i, line := range []string{title, hint} {
		y := mid - 1 + i
		if y < 0 || y >= size.H {
			continue
		}
		w := columns.StringWidth(line)
		x := (size.W - w) / 2
		if x < 0 {
			x = 0
		}
		DrawText(r.screen, x, y, size.W-x, bannerStyle, line)
	}
}
