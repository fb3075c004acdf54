package snake

import (
	"strconv"

	"glyph-snake/internal/core"
)

// Parameters reports the configuration and the live round for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				stringParam("glyphs", "Glyphs", w.cfg.Glyphs),
				boolParam("walls", "Walls", w.cfg.Walls),
			},
		},
		{
			Name: "Pacing",
			Params: []core.Parameter{
				intParam("update_frequency", "Frames per move", w.cfg.UpdateFrequency),
				intParam("apple_growth", "Growth per apple", w.cfg.AppleGrowth),
				intParam("initial_growth", "Initial growth", w.cfg.InitialGrowth),
			},
		},
		{
			Name:    "Round",
			Summary: w.round,
			Params: []core.Parameter{
				stringParam("status", "Status", w.st.Status.String()),
				intParam("score", "Score", w.st.Score),
				intParam("length", "Length", w.st.Length),
				intParam("growth", "Growth owed", w.st.Growth),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the settings the HUD may adjust mid-round.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "update_frequency", Label: "Frames per move", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 30, HasMin: true, HasMax: true},
		{Key: "apple_growth", Label: "Growth per apple", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 20, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an adjustable setting. It reports false for
// unknown keys and out-of-range values.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "update_frequency":
		if value < 0 || value > 30 {
			return false
		}
		w.cfg.UpdateFrequency = value
		if w.st.Countdown > value {
			w.st.Countdown = value
		}
	case "apple_growth":
		if value < 0 || value > 20 {
			return false
		}
		w.cfg.AppleGrowth = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
