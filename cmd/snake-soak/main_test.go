package main

import (
	"io"
	"log"
	"testing"

	"glyph-snake/internal/sims/snake"
)

func TestRunScenarioKeepsBody(t *testing.T) {
	base := snake.DefaultConfig()
	base.Width, base.Height = 12, 6
	base.UpdateFrequency = 0
	base.Logger = log.New(io.Discard, "", 0)

	for _, sc := range []scenario{
		{seed: 1, glyphs: "ascii"},
		{seed: 2, glyphs: "box", walls: true},
	} {
		res := runScenario(base, sc, 1500)
		if res.err != nil {
			t.Fatalf("%s: step %d: %v", sc, res.failStep, res.err)
		}
		if res.steps != 1500 {
			t.Fatalf("%s: ran %d steps, want 1500", sc, res.steps)
		}
		// every restart follows a death
		if res.deaths < res.rounds-1 {
			t.Fatalf("%s: %d deaths in %d rounds", sc, res.deaths, res.rounds)
		}
	}
}
