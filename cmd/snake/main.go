//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"glyph-snake/internal/app"
	_ "glyph-snake/internal/sims/snake"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, closeLog, err := app.OpenLog(cfg.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()
	if cfg.LogFile != "" {
		log.SetOutput(logger.Writer())
	}

	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("glyph-snake: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w*cfg.Scale, h*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
