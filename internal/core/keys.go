package core

// KeyCode names the control keys a harness can deliver. Printable input
// arrives as KeyRune with the character in Key.Rune.
type KeyCode uint8

const (
	KeyRune KeyCode = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEscape
	KeyEnter
)

// Key is one decoded key press.
type Key struct {
	Code KeyCode
	Rune rune
}

// RuneKey builds the key event for a printable character.
func RuneKey(r rune) Key { return Key{Code: KeyRune, Rune: r} }

// Value folds the key into a number suitable for stirring a seed. Runes map
// to their code point, control keys to values above the Unicode range.
func (k Key) Value() uint32 {
	if k.Code == KeyRune {
		return uint32(k.Rune)
	}
	return 0x110000 + uint32(k.Code)
}
