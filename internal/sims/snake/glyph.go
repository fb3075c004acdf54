package snake

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Kind classifies what a cell holds.
type Kind uint8

const (
	KindNaN Kind = iota
	KindEmpty
	KindWall
	KindHead
	KindApple
	KindStart
	KindBody
	KindUnrecognized
)

// Trail is the local shape of a body cell: the two sides it joins.
type Trail uint8

const (
	Horizontal Trail = iota
	Vertical
	RightToUp
	LeftToUp
	RightToDown
	LeftToDown
)

var trailNames = [...]string{"Horizontal", "Vertical", "RightToUp", "LeftToUp", "RightToDown", "LeftToDown"}

func (t Trail) String() string {
	if int(t) < len(trailNames) {
		return trailNames[t]
	}
	return fmt.Sprintf("Trail(%d)", uint8(t))
}

// Symbol is the semantic content of a cell. Trail is meaningful for
// KindBody, Ch for KindUnrecognized.
type Symbol struct {
	Kind  Kind
	Trail Trail
	Ch    rune
}

var (
	NaN         = Symbol{Kind: KindNaN}
	Empty       = Symbol{Kind: KindEmpty}
	Wall        = Symbol{Kind: KindWall}
	Head        = Symbol{Kind: KindHead}
	Apple       = Symbol{Kind: KindApple}
	StartMarker = Symbol{Kind: KindStart}
)

// Body returns the body symbol with the given trail shape.
func Body(t Trail) Symbol { return Symbol{Kind: KindBody, Trail: t} }

// Unrecognized returns a pass-through marker drawn as ch.
func Unrecognized(ch rune) Symbol { return Symbol{Kind: KindUnrecognized, Ch: ch} }

// Occupied reports whether the symbol is part of the snake.
func (s Symbol) Occupied() bool {
	return s.Kind == KindHead || s.Kind == KindBody || s.Kind == KindStart
}

func (s Symbol) String() string {
	switch s.Kind {
	case KindEmpty:
		return "Empty"
	case KindWall:
		return "Wall"
	case KindHead:
		return "Head"
	case KindApple:
		return "Apple"
	case KindStart:
		return "StartMarker"
	case KindBody:
		return "Body(" + s.Trail.String() + ")"
	case KindUnrecognized:
		return fmt.Sprintf("Unrecognized(%q)", s.Ch)
	default:
		return "NaN"
	}
}

// GlyphSet names the character drawn for each symbol. Body is indexed by
// Trail.
type GlyphSet struct {
	Name  string
	Empty rune
	Wall  rune
	Head  rune
	Apple rune
	Start rune
	Body  [6]rune
}

// ASCIIGlyphs is the classic text-mode alphabet.
var ASCIIGlyphs = GlyphSet{
	Name:  "ascii",
	Empty: ' ',
	Wall:  '#',
	Head:  '0',
	Apple: '&',
	Start: '?',
	Body: [6]rune{
		Horizontal:  '=',
		Vertical:    '|',
		RightToUp:   'J',
		LeftToUp:    'L',
		RightToDown: ';',
		LeftToDown:  'r',
	},
}

// BoxGlyphs draws the trail with box-drawing characters.
var BoxGlyphs = GlyphSet{
	Name:  "box",
	Empty: ' ',
	Wall:  '▒',
	Head:  '@',
	Apple: '♦',
	Start: '◘',
	Body: [6]rune{
		Horizontal:  '═',
		Vertical:    '║',
		RightToUp:   '╝',
		LeftToUp:    '╚',
		RightToDown: '╗',
		LeftToDown:  '╔',
	},
}

// GlyphSetByName returns one of the built-in glyph sets.
func GlyphSetByName(name string) (GlyphSet, bool) {
	switch name {
	case ASCIIGlyphs.Name:
		return ASCIIGlyphs, true
	case BoxGlyphs.Name:
		return BoxGlyphs, true
	}
	return GlyphSet{}, false
}

// columns measures glyphs as a non-CJK terminal does, whatever the locale.
var columns = &runewidth.Condition{EastAsianWidth: false}

// Codec maps symbols to displayed characters and back.
type Codec struct {
	set    GlyphSet
	decode map[rune]Symbol
}

// NewCodec builds a codec for set. Every glyph must occupy exactly one
// terminal column and no two symbols may share a glyph, otherwise the body
// could not be read back from the grid.
func NewCodec(set GlyphSet) (*Codec, error) {
	c := &Codec{set: set, decode: make(map[rune]Symbol, 11)}
	add := func(ch rune, s Symbol) error {
		if w := columns.RuneWidth(ch); w != 1 {
			return fmt.Errorf("glyph set %q: %s glyph %q is %d columns wide", set.Name, s, ch, w)
		}
		if prev, dup := c.decode[ch]; dup {
			return fmt.Errorf("glyph set %q: %s and %s share glyph %q", set.Name, prev, s, ch)
		}
		c.decode[ch] = s
		return nil
	}
	if err := add(set.Empty, Empty); err != nil {
		return nil, err
	}
	if err := add(set.Wall, Wall); err != nil {
		return nil, err
	}
	if err := add(set.Head, Head); err != nil {
		return nil, err
	}
	if err := add(set.Apple, Apple); err != nil {
		return nil, err
	}
	if err := add(set.Start, StartMarker); err != nil {
		return nil, err
	}
	for t, ch := range set.Body {
		if err := add(ch, Body(Trail(t))); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Decode reads a displayed character. Unmapped characters decode to NaN.
func (c *Codec) Decode(ch rune) Symbol {
	if s, ok := c.decode[ch]; ok {
		return s
	}
	return NaN
}

// Encode returns the character to display for s. NaN is drawn as empty.
func (c *Codec) Encode(s Symbol) rune {
	switch s.Kind {
	case KindEmpty, KindNaN:
		return c.set.Empty
	case KindWall:
		return c.set.Wall
	case KindHead:
		return c.set.Head
	case KindApple:
		return c.set.Apple
	case KindStart:
		return c.set.Start
	case KindBody:
		if int(s.Trail) < len(c.set.Body) {
			return c.set.Body[s.Trail]
		}
		return c.set.Start
	case KindUnrecognized:
		return s.Ch
	}
	return c.set.Empty
}
