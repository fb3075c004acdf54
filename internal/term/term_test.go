package term

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glyph-snake/internal/core"
)

type fakeSim struct {
	grid   *core.Grid
	steps  int
	resets []int64
	keys   []core.Key
	status string
}

func newFakeSim(w, h int) *fakeSim { return &fakeSim{grid: core.NewGrid(w, h)} }

func (f *fakeSim) Name() string          { return "fake" }
func (f *fakeSim) Size() core.Size       { return f.grid.Size() }
func (f *fakeSim) Reset(seed int64)      { f.resets = append(f.resets, seed) }
func (f *fakeSim) Step()                 { f.steps++ }
func (f *fakeSim) Surface() core.Surface { return f.grid }
func (f *fakeSim) HandleKey(k core.Key)  { f.keys = append(f.keys, k) }
func (f *fakeSim) Scoreboard() core.Scoreboard {
	status := f.status
	if status == "" {
		status = core.StatusRunning
	}
	return core.Scoreboard{Score: 1234, Length: 7, Status: status, Ticks: 99}
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func rowText(s tcell.Screen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestStyleMapsPalette(t *testing.T) {
	fg, bg, _ := Style(core.ColorPair{FG: core.Yellow, BG: core.Brown}).Decompose()
	assert.Equal(t, tcell.ColorYellow, fg)
	assert.Equal(t, tcell.ColorOlive, bg)

	assert.Equal(t, tcell.ColorTeal, Color(core.Cyan))
	assert.Equal(t, tcell.ColorDefault, Color(core.Color(200)))
}

func TestTranslateKey(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want core.Key
		ok   bool
	}{
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.Key{Code: core.KeyUp}, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.Key{Code: core.KeyEscape}, true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), core.Key{Code: core.KeyEnter}, true},
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), core.RuneKey('w'), true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.RuneKey(' '), true},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModAlt), core.Key{}, false},
		{"function key", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), core.Key{}, false},
		{"nil", nil, core.Key{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := TranslateKey(tc.ev)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBlitCopiesSurface(t *testing.T) {
	screen := newScreen(t, 6, 4)
	g := core.NewGrid(8, 3)
	g.Plot('&', 1, 2, core.ColorPair{FG: core.Red, BG: core.Black})
	g.Plot('#', 7, 0, core.ColorPair{FG: core.Yellow, BG: core.Brown})

	Blit(screen, g)

	r, _, style, _ := screen.GetContent(1, 2)
	assert.Equal(t, '&', r)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.ColorMaroon, fg)
	assert.Equal(t, tcell.ColorBlack, bg)

	// column 7 is off screen
	assert.Equal(t, "      ", rowText(screen, 0, 6))
}

func TestStatusLine(t *testing.T) {
	line := StatusLine(core.Scoreboard{Score: 1234567, Length: 12, Status: "paused", Ticks: 4000}, 30)
	assert.Equal(t, "score 1,234,567  length 12  paused  tick 4,000  30 tps", line)
}

func TestDrawTextClips(t *testing.T) {
	screen := newScreen(t, 10, 1)
	DrawText(screen, 0, 0, 6, tcell.StyleDefault, "abcdefghij")
	assert.Equal(t, "abcde~    ", rowText(screen, 0, 10))

	DrawText(screen, 0, 0, 0, tcell.StyleDefault, "zzz")
	assert.Equal(t, "abcde~    ", rowText(screen, 0, 10))
}

func TestRunnerForwardsKeys(t *testing.T) {
	screen := newScreen(t, 20, 5)
	sim := newFakeSim(10, 3)
	r := NewRunner(screen, sim, 30, 5, quietLogger())

	assert.True(t, r.handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	assert.True(t, r.handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)))
	assert.True(t, r.handle(tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone)))

	assert.Equal(t, []core.Key{{Code: core.KeyLeft}, core.RuneKey('r')}, sim.keys)
}

func TestRunnerControls(t *testing.T) {
	screen := newScreen(t, 20, 5)
	sim := newFakeSim(10, 3)
	var buf bytes.Buffer
	r := NewRunner(screen, sim, 30, 5, log.New(&buf, "", 0))

	assert.True(t, r.handle(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone)))
	assert.Equal(t, 60, r.TPS())
	assert.True(t, r.handle(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone)))
	assert.True(t, r.handle(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone)))
	assert.Equal(t, 15, r.TPS())
	assert.Contains(t, buf.String(), "tick rate 15")

	assert.True(t, r.handle(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone)))
	assert.Equal(t, []int64{5}, sim.resets)

	assert.Empty(t, sim.keys, "harness keys are not forwarded")

	assert.False(t, r.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, r.handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
}

func TestClampTPS(t *testing.T) {
	assert.Equal(t, minTPS, clampTPS(0))
	assert.Equal(t, 30, clampTPS(30))
	assert.Equal(t, maxTPS, clampTPS(100000))
}

func TestRunnerDrawsBoardAndStatus(t *testing.T) {
	screen := newScreen(t, 40, 5)
	sim := newFakeSim(10, 3)
	sim.grid.Plot('0', 2, 1, core.ColorPair{FG: core.Cyan, BG: core.Black})
	r := NewRunner(screen, sim, 30, 0, quietLogger())

	r.draw()

	ch, _, _, _ := screen.GetContent(2, 1)
	assert.Equal(t, '0', ch)
	assert.True(t, strings.HasPrefix(rowText(screen, 3, 40), "score 1,234  length 7  running"))
}

func TestRunnerDrawsBanner(t *testing.T) {
	screen := newScreen(t, 40, 6)
	sim := newFakeSim(20, 5)
	sim.status = core.StatusPaused
	r := NewRunner(screen, sim, 30, 0, quietLogger())

	r.draw()

	assert.Equal(t, "PAUSED", strings.TrimSpace(rowText(screen, 1, 20)))
	assert.Equal(t, 7, strings.Index(rowText(screen, 1, 20), "PAUSED"))
	assert.Contains(t, rowText(screen, 2, 20), "esc resume")
}

func TestRunnerAdvanceSteps(t *testing.T) {
	screen := newScreen(t, 20, 5)
	sim := newFakeSim(10, 3)
	r := NewRunner(screen, sim, 30, 0, quietLogger())

	r.advance()
	assert.True(t, sim.steps >= 1 && sim.steps <= maxCatchUp, "steps = %d", sim.steps)
}

func TestRunnerQuitsOnKey(t *testing.T) {
	screen := newScreen(t, 20, 5)
	sim := newFakeSim(10, 3)
	r := NewRunner(screen, sim, 30, 0, quietLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, r.Run(ctx))
	assert.NoError(t, ctx.Err(), "run should end on q, not on the deadline")
	assert.Equal(t, []core.Key{core.RuneKey('a')}, sim.keys)
}

func TestRunnerStopsOnCancel(t *testing.T) {
	screen := newScreen(t, 20, 5)
	sim := newFakeSim(10, 3)
	r := NewRunner(screen, sim, 30, 0, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, r.Run(ctx))
}
