package snake

import (
	"io"
	"log"
	"testing"

	"glyph-snake/internal/core"
)

func quietConfig(w, h int) Config {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.UpdateFrequency = 0
	cfg.InitialGrowth = 0
	cfg.Logger = log.New(io.Discard, "", 0)
	return cfg
}

func newTestWorld(t *testing.T, w, h int, opts ...func(*Config)) *World {
	t.Helper()
	cfg := quietConfig(w, h)
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewWithConfig(cfg)
}

// placeSnake moves a single-cell snake to p.
func placeSnake(w *World, p core.Point) {
	w.draw(Empty, w.st.Head)
	w.st.Head, w.st.OldHead, w.st.Tail = p, p, p
	w.draw(Head, p)
}

func putApple(w *World, p core.Point) {
	w.st.Apple = p
	w.draw(Apple, p)
}

func pt(x, y int) core.Point { return core.Point{X: x, Y: y} }

func key(code core.KeyCode) core.Key { return core.Key{Code: code} }
