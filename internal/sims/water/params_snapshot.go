package water

import (
	"math"
	"strconv"
	"time"

	"tilewater/internal/core"
)

const (
	fillLevelMin = 0.1
	brushMax     = 4
)

// Parameters reports the fixed simulation settings, the editing brush and a
// few live readings.
func (w *World) Parameters() core.ParameterSnapshot {
	stats := w.Stats()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.grid.Width()),
				intParam("h", "Height", w.grid.Height()),
				durationParam("tick", "Tick period", w.cfg.TickPeriod),
				textParam("scenario", "Scenario", w.scenario.Name),
				int64Param("seed", "Seed", w.seed),
			},
		},
		{
			Name: "Flow",
			Params: []core.Parameter{
				floatParam("transfer", "Transfer factor", TransferFactor),
				floatParam("void_drain", "Void drain threshold", VoidDrainThreshold),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				floatParam("fill", "Fill level", w.cfg.FillLevel),
				intParam("brush", "Brush radius", w.cfg.BrushRadius),
			},
		},
		{
			Name: "Live",
			Params: []core.Parameter{
				intParam("ticks", "Ticks", w.ticks),
				floatParam("total_water", "Total water", roundTo(stats.TotalWater, 3)),
				intParam("wet_cells", "Wet cells", stats.WetCells),
				intParam("obstacles", "Obstacles", stats.Obstacles),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust. Grid size and tick
// period are fixed for the lifetime of the world.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "fill", Label: "Fill level", Type: core.ParamTypeFloat, Step: 0.1, Min: fillLevelMin, Max: Capacity},
		{Key: "brush", Label: "Brush radius", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: brushMax},
	}
}

// SetFloatParameter updates the fill level, clamped to its range.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "fill":
		if math.IsNaN(value) {
			return false
		}
		w.cfg.FillLevel = math.Min(Capacity, math.Max(fillLevelMin, value))
		return true
	}
	return false
}

// SetIntParameter updates the brush radius, clamped to its range.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "brush":
		if value < 0 {
			value = 0
		}
		if value > brushMax {
			value = brushMax
		}
		w.cfg.BrushRadius = value
		return true
	}
	return false
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
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

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func durationParam(key, label string, value time.Duration) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeDuration,
		Value: value.String(),
	}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Value: value}
}
