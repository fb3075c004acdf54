package snake

import (
	"log"
	"strconv"
)

// MinDimension is the smallest width or height a board may have. Anything
// narrower leaves no interior for apples.
const MinDimension = 3

// Config controls the board and the pacing of a snake round.
type Config struct {
	Width  int
	Height int

	Seed int64

	// UpdateFrequency is the number of idle frames between two moves.
	UpdateFrequency int
	// AppleGrowth is the number of growth ticks owed per eaten apple.
	AppleGrowth int
	// InitialGrowth is the number of growth ticks owed at round start.
	InitialGrowth int

	// Glyphs selects the glyph set by name ("ascii" or "box").
	Glyphs string
	// Walls draws a wall frame around the board at round start.
	Walls bool
	// StartScreen makes Reset leave the round on the title screen.
	StartScreen bool

	// Logger receives round events. Nil uses the standard logger.
	Logger *log.Logger
}

// DefaultConfig returns the standard configuration: an 80x25 board, the
// size of a VGA text buffer.
func DefaultConfig() Config {
	return Config{
		Width:           80,
		Height:          25,
		Seed:            80,
		UpdateFrequency: 3,
		AppleGrowth:     3,
		InitialGrowth:   9,
		Glyphs:          ASCIIGlyphs.Name,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= MinDimension {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= MinDimension {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["update_frequency"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.UpdateFrequency = parsed
		}
	}
	if v, ok := cfg["apple_growth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.AppleGrowth = parsed
		}
	}
	if v, ok := cfg["initial_growth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.InitialGrowth = parsed
		}
	}
	if v, ok := cfg["glyphs"]; ok {
		if _, known := GlyphSetByName(v); known {
			c.Glyphs = v
		}
	}
	if v, ok := cfg["walls"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Walls = parsed
		}
	}
	if v, ok := cfg["start_screen"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.StartScreen = parsed
		}
	}
	return c
}

func (c Config) normalized() Config {
	if c.Width < MinDimension {
		c.Width = MinDimension
	}
	if c.Height < MinDimension {
		c.Height = MinDimension
	}
	if c.UpdateFrequency < 0 {
		c.UpdateFrequency = 0
	}
	if c.AppleGrowth < 0 {
		c.AppleGrowth = 0
	}
	if c.InitialGrowth < 0 {
		c.InitialGrowth = 0
	}
	if _, ok := GlyphSetByName(c.Glyphs); !ok {
		c.Glyphs = ASCIIGlyphs.Name
	}
	return c
}
