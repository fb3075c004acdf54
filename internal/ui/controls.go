package ui

import (
	"math"

	"glyph-snake/internal/core"
)

// adjustedValue steps current by one control step in direction, clamped to
// the control's bounds. It reports false when current already sits on the
// bound in that direction.
func adjustedValue(ctrl core.ParameterControl, current, direction int) (int, bool) {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	if ctrl.HasMin {
		min := int(math.Round(ctrl.Min))
		if target < min {
			if current <= min {
				return current, false
			}
			target = min
		}
	}
	if ctrl.HasMax {
		max := int(math.Round(ctrl.Max))
		if target > max {
			if current >= max {
				return current, false
			}
			target = max
		}
	}
	return target, true
}

// Banner returns the centred message shown for a round status, if any.
func Banner(status string) (title, hint string, ok bool) {
	switch status {
	case core.StatusPaused:
		return "PAUSED", "esc resume  r restart", true
	case core.StatusJustDied, core.StatusGameOver:
		return "GAME OVER", "r restart  esc title", true
	case core.StatusStartScreen:
		return "SNAKE", "enter or space to start", true
	}
	return "", "", false
}
