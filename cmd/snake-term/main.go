package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/go-errors/errors"

	"glyph-snake/internal/app"
	_ "glyph-snake/internal/sims/snake"
	"glyph-snake/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, closeLog, err := app.OpenLog(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open log:", err)
		os.Exit(1)
	}
	defer closeLog()
	// the screen owns stderr while the game runs
	log.SetOutput(logger.Writer())
	log.SetFlags(logger.Flags())

	sim, err := cfg.NewSim()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "terminal:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "terminal:", err)
		os.Exit(1)
	}
	screen.HideCursor()

	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintln(os.Stderr, "snake-term crashed:", errors.Wrap(r, 2).ErrorStack())
			logger.Printf("panic: %v", r)
			closeLog()
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Printf("start %s %dx%d at %d tps", sim.Name(), sim.Size().W, sim.Size().H, cfg.TPS)
	runErr := term.NewRunner(screen, sim, cfg.TPS, cfg.Seed, logger).Run(ctx)
	screen.Fini()
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}
