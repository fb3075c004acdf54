package ui

import (
	"testing"

	"glyph-snake/internal/core"
	"glyph-snake/internal/sims/snake"
)

func TestAdjustedValue(t *testing.T) {
	ctrl := core.ParameterControl{Key: "k", Type: core.ParamTypeInt, Step: 2, Min: 0, Max: 5, HasMin: true, HasMax: true}
	cases := []struct {
		current, direction int
		want               int
		ok                 bool
	}{
		{2, 1, 4, true},
		{4, 1, 5, true},
		{5, 1, 5, false},
		{1, -1, 0, true},
		{0, -1, 0, false},
	}
	for _, tc := range cases {
		got, ok := adjustedValue(ctrl, tc.current, tc.direction)
		if got != tc.want || ok != tc.ok {
			t.Errorf("adjustedValue(%d, %d) = %d, %v; want %d, %v", tc.current, tc.direction, got, ok, tc.want, tc.ok)
		}
	}

	unbounded := core.ParameterControl{Key: "k", Type: core.ParamTypeInt}
	if got, ok := adjustedValue(unbounded, 0, -1); got != -1 || !ok {
		t.Errorf("unbounded step = %d, %v", got, ok)
	}
}

func TestBanner(t *testing.T) {
	if _, _, ok := Banner(core.StatusRunning); ok {
		t.Fatal("running rounds have no banner")
	}
	for _, status := range []string{core.StatusPaused, core.StatusJustDied, core.StatusGameOver, core.StatusStartScreen} {
		if title, hint, ok := Banner(status); !ok || title == "" || hint == "" {
			t.Errorf("missing banner for %q", status)
		}
	}
}

func TestBannerCoversSnakeStatuses(t *testing.T) {
	for _, s := range []snake.Status{snake.Paused, snake.JustDied, snake.GameOver, snake.StartScreen} {
		if _, _, ok := Banner(s.String()); !ok {
			t.Errorf("no banner for snake status %v", s)
		}
	}
	if _, _, ok := Banner(snake.Running.String()); ok {
		t.Error("running snake shows a banner")
	}
}
