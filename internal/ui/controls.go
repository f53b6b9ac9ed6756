package ui

import (
	"math"

	"tilewater/internal/core"
)

// adjustedValue steps value in direction, clamped to the control's range.
// It reports false when the value is already at the limit.
func adjustedValue(ctrl core.ParameterControl, value float64, direction int) (float64, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := value + float64(direction)*step
	if ctrl.Max > ctrl.Min {
		target = math.Max(ctrl.Min, math.Min(ctrl.Max, target))
	}
	if math.Abs(target-value) < 1e-9 {
		return value, false
	}
	return target, true
}

// HelpLines is the text of the in-game menu.
var HelpLines = []string{
	"Left click    fill with water",
	"Right click   place obstacle",
	"Middle click  remove obstacle",
	"Space         pause / resume",
	"Ctrl          menu (pauses)",
	"N             single tick",
	"R             reset scenario",
	"S             reset with a new seed",
	"Esc / Q       quit",
}
