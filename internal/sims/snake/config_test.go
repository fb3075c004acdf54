package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                "40",
		"h":                "12",
		"seed":             "1234",
		"update_frequency": "5",
		"apple_growth":     "2",
		"initial_growth":   "0",
		"glyphs":           "box",
		"walls":            "true",
		"start_screen":     "1",
	})

	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 12, cfg.Height)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, 5, cfg.UpdateFrequency)
	assert.Equal(t, 2, cfg.AppleGrowth)
	assert.Equal(t, 0, cfg.InitialGrowth)
	assert.Equal(t, "box", cfg.Glyphs)
	assert.True(t, cfg.Walls)
	assert.True(t, cfg.StartScreen)
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"w":                "2",
		"h":                "tall",
		"update_frequency": "-1",
		"glyphs":           "emoji",
		"walls":            "maybe",
	})

	assert.Equal(t, def, cfg)
	assert.Equal(t, def, FromMap(nil))
}

func TestNormalizedClampsConfig(t *testing.T) {
	cfg := Config{Width: 1, Height: -4, UpdateFrequency: -2, AppleGrowth: -1, InitialGrowth: -9, Glyphs: "nope"}.normalized()

	assert.Equal(t, MinDimension, cfg.Width)
	assert.Equal(t, MinDimension, cfg.Height)
	assert.Equal(t, 0, cfg.UpdateFrequency)
	assert.Equal(t, 0, cfg.AppleGrowth)
	assert.Equal(t, 0, cfg.InitialGrowth)
	assert.Equal(t, ASCIIGlyphs.Name, cfg.Glyphs)
}

func TestParameters(t *testing.T) {
	w := newTestWorld(t, 20, 10)
	snap := w.Parameters()

	p, ok := snap.Lookup("update_frequency")
	assert.True(t, ok)
	assert.Equal(t, "0", p.Value)

	p, ok = snap.Lookup("status")
	assert.True(t, ok)
	assert.Equal(t, "running", p.Value)

	p, ok = snap.Lookup("walls")
	assert.True(t, ok)
	assert.Equal(t, "false", p.Value)

	_, ok = snap.Lookup("missing")
	assert.False(t, ok)
}

func TestSetIntParameter(t *testing.T) {
	w := newTestWorld(t, 20, 10, func(c *Config) { c.UpdateFrequency = 8 })
	assert.Equal(t, 8, w.State().Countdown)

	assert.True(t, w.SetIntParameter("update_frequency", 2))
	assert.Equal(t, 2, w.Config().UpdateFrequency)
	assert.Equal(t, 2, w.State().Countdown)

	assert.True(t, w.SetIntParameter("apple_growth", 7))
	assert.Equal(t, 7, w.Config().AppleGrowth)

	assert.False(t, w.SetIntParameter("apple_growth", 99))
	assert.False(t, w.SetIntParameter("w", 30))
	assert.Equal(t, 7, w.Config().AppleGrowth)

	assert.Len(t, w.ParameterControls(), 2)
}
