package term

import (
	"github.com/gdamore/tcell/v2"

	"glyph-snake/internal/core"
)

var controlKeys = map[tcell.Key]core.KeyCode{
	tcell.KeyLeft:   core.KeyLeft,
	tcell.KeyRight:  core.KeyRight,
	tcell.KeyUp:     core.KeyUp,
	tcell.KeyDown:   core.KeyDown,
	tcell.KeyEscape: core.KeyEscape,
	tcell.KeyEnter:  core.KeyEnter,
}

// TranslateKey converts a terminal key event into a game key. Keys the game
// has no use for report false.
func TranslateKey(ev *tcell.EventKey) (core.Key, bool) {
	if ev == nil {
		return core.Key{}, false
	}
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return core.Key{}, false
		}
		return core.RuneKey(ev.Rune()), true
	}
	if code, ok := controlKeys[ev.Key()]; ok {
		return core.Key{Code: code}, true
	}
	return core.Key{}, false
}
