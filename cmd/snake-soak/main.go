package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"glyph-snake/internal/core"
	"glyph-snake/internal/sims/snake"
)

type scenario struct {
	seed   int64
	glyphs string
	walls  bool
}

func (s scenario) String() string {
	return fmt.Sprintf("seed=%d glyphs=%s walls=%t", s.seed, s.glyphs, s.walls)
}

type scenarioResult struct {
	scenario  scenario
	rounds    int
	deaths    int
	bestScore int
	bestLen   int
	steps     int
	err       error
	failStep  int
}

var soakKeys = []core.Key{
	{Code: core.KeyUp}, {Code: core.KeyDown}, {Code: core.KeyLeft}, {Code: core.KeyRight},
	core.RuneKey('w'), core.RuneKey('a'), core.RuneKey('s'), core.RuneKey('d'),
}

func main() {
	seeds := flag.Int("seeds", 64, "number of seeds per glyph set and wall setting")
	steps := flag.Int("steps", 20000, "ticks to simulate per scenario")
	width := flag.Int("w", 40, "board width")
	height := flag.Int("h", 16, "board height")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "scenarios to list in the summary")
	flag.Parse()

	base := snake.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.UpdateFrequency = 0
	base.Logger = log.New(io.Discard, "", 0)

	var sets []scenario
	for _, glyphs := range []string{snake.ASCIIGlyphs.Name, snake.BoxGlyphs.Name} {
		for _, walls := range []bool{false, true} {
			for i := 1; i <= *seeds; i++ {
				sets = append(sets, scenario{seed: int64(i), glyphs: glyphs, walls: walls})
			}
		}
	}

	fmt.Printf("Soaking %d scenarios (%d workers, %s steps each)\n", len(sets), *workers, humanize.Comma(int64(*steps)))

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(base, sc, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	failures := 0
	total := 0
	for res := range results {
		all = append(all, res)
		total += res.steps
		if res.err != nil {
			failures++
			fmt.Printf("FAIL %s at step %d: %v\n", res.scenario, res.failStep, res.err)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].bestScore != all[j].bestScore {
			return all[i].bestScore > all[j].bestScore
		}
		return all[i].scenario.seed < all[j].scenario.seed
	})
	elapsed := time.Since(start)

	fmt.Printf("Simulated %s ticks in %s\n", humanize.Comma(int64(total)), elapsed.Round(time.Millisecond))
	for i := 0; i < *top && i < len(all); i++ {
		r := all[i]
		fmt.Printf("  %-36s score %-5s length %-5s rounds %-4d deaths %d\n",
			r.scenario, humanize.Comma(int64(r.bestScore)), humanize.Comma(int64(r.bestLen)), r.rounds, r.deaths)
	}
	if failures > 0 {
		fmt.Printf("%d of %d scenarios broke the body path\n", failures, len(all))
		os.Exit(1)
	}
	fmt.Println("All scenarios kept a single connected body.")
}

// runScenario plays random keys for the given number of ticks and checks the
// body after every one.
func runScenario(base snake.Config, sc scenario, steps int) scenarioResult {
	cfg := base
	cfg.Seed = sc.seed
	cfg.Glyphs = sc.glyphs
	cfg.Walls = sc.walls
	cfg.StartScreen = false
	w := snake.NewWithConfig(cfg)

	rng := rand.New(rand.NewPCG(uint64(sc.seed), 0x5eed))
	res := scenarioResult{scenario: sc, rounds: 1}
	for i := 0; i < steps; i++ {
		switch w.Status() {
		case snake.GameOver:
			w.HandleKey(core.RuneKey('r'))
			res.rounds++
		case snake.Paused:
			w.HandleKey(core.Key{Code: core.KeyEscape})
		}
		if rng.IntN(3) == 0 {
			w.HandleKey(soakKeys[rng.IntN(len(soakKeys))])
		}
		w.Step()
		res.steps++

		sb := w.Scoreboard()
		if sb.Score > res.bestScore {
			res.bestScore = sb.Score
		}
		if sb.Length > res.bestLen {
			res.bestLen = sb.Length
		}
		if w.Status() == snake.JustDied {
			res.deaths++
		}
		if err := w.CheckPath(); err != nil {
			res.err = err
			res.failStep = i
			return res
		}
	}
	return res
}
