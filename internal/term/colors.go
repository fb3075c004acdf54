package term

import (
	"github.com/gdamore/tcell/v2"

	"glyph-snake/internal/core"
)

// palette maps the text-mode colours onto the terminal's first sixteen.
var palette = [16]tcell.Color{
	core.Black:      tcell.ColorBlack,
	core.Blue:       tcell.ColorNavy,
	core.Green:      tcell.ColorGreen,
	core.Cyan:       tcell.ColorTeal,
	core.Red:        tcell.ColorMaroon,
	core.Magenta:    tcell.ColorPurple,
	core.Brown:      tcell.ColorOlive,
	core.LightGray:  tcell.ColorSilver,
	core.DarkGray:   tcell.ColorGray,
	core.LightBlue:  tcell.ColorBlue,
	core.LightGreen: tcell.ColorLime,
	core.LightCyan:  tcell.ColorAqua,
	core.LightRed:   tcell.ColorRed,
	core.Pink:       tcell.ColorFuchsia,
	core.Yellow:     tcell.ColorYellow,
	core.White:      tcell.ColorWhite,
}

// Color returns the terminal colour for c.
func Color(c core.Color) tcell.Color {
	if int(c) < len(palette) {
		return palette[c]
	}
	return tcell.ColorDefault
}

// Style returns the cell style for a colour pair.
func Style(p core.ColorPair) tcell.Style {
	return tcell.StyleDefault.Foreground(Color(p.FG)).Background(Color(p.BG))
}
