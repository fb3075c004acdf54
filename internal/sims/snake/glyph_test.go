package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allTrails = []Trail{Horizontal, Vertical, RightToUp, LeftToUp, RightToDown, LeftToDown}

func TestBuiltinGlyphSetsRoundTrip(t *testing.T) {
	for _, set := range []GlyphSet{ASCIIGlyphs, BoxGlyphs} {
		t.Run(set.Name, func(t *testing.T) {
			c, err := NewCodec(set)
			require.NoError(t, err)

			symbols := []Symbol{Empty, Wall, Head, Apple, StartMarker}
			for _, tr := range allTrails {
				symbols = append(symbols, Body(tr))
			}
			for _, s := range symbols {
				ch := c.Encode(s)
				assert.Equal(t, s, c.Decode(ch), "decode(encode(%s))", s)
				assert.Equal(t, ch, c.Encode(c.Decode(ch)), "encode(decode(%q))", ch)
			}
		})
	}
}

func TestASCIIGlyphs(t *testing.T) {
	c, err := NewCodec(ASCIIGlyphs)
	require.NoError(t, err)

	assert.Equal(t, Head, c.Decode('0'))
	assert.Equal(t, Apple, c.Decode('&'))
	assert.Equal(t, StartMarker, c.Decode('?'))
	assert.Equal(t, Body(Horizontal), c.Decode('='))
	assert.Equal(t, Body(Vertical), c.Decode('|'))
	assert.Equal(t, Body(RightToUp), c.Decode('J'))
	assert.Equal(t, Body(LeftToUp), c.Decode('L'))
	assert.Equal(t, Body(RightToDown), c.Decode(';'))
	assert.Equal(t, Body(LeftToDown), c.Decode('r'))
}

func TestUnmappedGlyphDecodesToNaN(t *testing.T) {
	c, err := NewCodec(ASCIIGlyphs)
	require.NoError(t, err)

	assert.Equal(t, NaN, c.Decode('x'))
	assert.Equal(t, NaN, c.Decode(0))
	assert.Equal(t, ' ', c.Encode(NaN))
	assert.Equal(t, 'x', c.Encode(Unrecognized('x')))
}

func TestNewCodecRejectsBadSets(t *testing.T) {
	dup := ASCIIGlyphs
	dup.Name = "dup"
	dup.Apple = dup.Head
	_, err := NewCodec(dup)
	assert.Error(t, err)

	wide := ASCIIGlyphs
	wide.Name = "wide"
	wide.Head = '蛇'
	_, err = NewCodec(wide)
	assert.Error(t, err)
}

func TestOccupied(t *testing.T) {
	assert.True(t, Head.Occupied())
	assert.True(t, StartMarker.Occupied())
	assert.True(t, Body(Vertical).Occupied())
	assert.False(t, Apple.Occupied())
	assert.False(t, Wall.Occupied())
	assert.False(t, Empty.Occupied())
	assert.False(t, NaN.Occupied())
}

func TestColorsFor(t *testing.T) {
	assert.Equal(t, Neutral, ColorsFor(Empty))
	assert.Equal(t, ColorsFor(Head), ColorsFor(Body(LeftToDown)))
	assert.NotEqual(t, Neutral.BG, ColorsFor(Wall).BG)
	assert.Equal(t, Neutral.BG, ColorsFor(Apple).BG)
}
