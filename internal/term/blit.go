package term

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"glyph-snake/internal/core"
)

var columns = &runewidth.Condition{EastAsianWidth: false}

var (
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy).Bold(true)
)

// Blit copies the surface into the top-left corner of the screen. Cells the
// screen cannot show are skipped.
func Blit(screen tcell.Screen, s core.Surface) {
	size := s.Size()
	sw, sh := screen.Size()
	for y := 0; y < size.H && y < sh; y++ {
		for x := 0; x < size.W && x < sw; x++ {
			ch, c := s.Peek(x, y)
			screen.SetContent(x, y, ch, nil, Style(c))
		}
	}
}

// StatusLine formats the scoreboard for the row under the board.
func StatusLine(sb core.Scoreboard, tps int) string {
	return fmt.Sprintf("score %s  length %s  %s  tick %s  %d tps",
		humanize.Comma(int64(sb.Score)),
		humanize.Comma(int64(sb.Length)),
		sb.Status,
		humanize.Comma(int64(sb.Ticks)),
		tps)
}

// DrawText writes text on row y from column x, clipped to width columns.
func DrawText(screen tcell.Screen, x, y, width int, style tcell.Style, text string) {
	if width <= 0 {
		return
	}
	text = columns.Truncate(text, width, "~")
	for _, r := range text {
		w := columns.RuneWidth(r)
		if w == 0 {
			continue
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
}
