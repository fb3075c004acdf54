package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPathDetectsStrayBody(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	require.NoError(t, w.CheckPath())

	w.draw(Body(Vertical), pt(8, 8))
	assert.Error(t, w.CheckPath())
}

func TestCheckPathDetectsBrokenLink(t *testing.T) {
	w := newTestWorld(t, 20, 10, func(c *Config) { c.InitialGrowth = 5 })
	putApple(w, pt(15, 1))
	for i := 0; i < 4; i++ {
		w.Step()
	}
	require.NoError(t, w.CheckPath())

	w.draw(Body(Vertical), pt(7, 5))
	assert.Error(t, w.CheckPath())
}

func TestCheckPathDetectsMissingHead(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	w.draw(Empty, w.State().Head)
	assert.Error(t, w.CheckPath())
}
