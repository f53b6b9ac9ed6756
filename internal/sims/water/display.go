package water

import (
	"image/color"
	"math"
)

const (
	// DisplayLevels is the display value of a full open cell.
	DisplayLevels = 100
	// DisplayObstacle marks obstacle cells in the display buffer.
	DisplayObstacle = 0xff
)

var waterPalette = buildWaterPalette()

// Palette exposes the color palette used for rendering the display buffer.
// Index 0 is a dry open cell.
func (w *World) Palette() []color.RGBA {
	return waterPalette
}

// DisplayLevel converts a display value back to a water level. Obstacles
// report 0.
func DisplayLevel(v uint8) float64 {
	if v == DisplayObstacle || v > DisplayLevels {
		return 0
	}
	return float64(v) / DisplayLevels
}

func encodeDisplayValue(c *Cell) uint8 {
	if c.IsObstacle() {
		return DisplayObstacle
	}
	v := uint8(math.Round(c.level * DisplayLevels))
	if v == 0 && c.level > 0 {
		// Keep a trace of water too thin to round up.
		v = 1
	}
	return v
}

func buildWaterPalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	dry := color.NRGBA{R: 236, G: 232, B: 222, A: 255}
	wet := color.NRGBA{R: 40, G: 90, B: 220, A: 255}
	for i := 0; i <= DisplayLevels; i++ {
		// The water itself is drawn as geometry on top; the background only
		// gets a light tint so thin films stay visible at small scales.
		palette[i] = toRGBA(blendColors(dry, wet, 0.35*float64(i)/DisplayLevels))
	}
	for i := DisplayLevels + 1; i < DisplayObstacle; i++ {
		palette[i] = toRGBA(dry)
	}
	palette[DisplayObstacle] = color.RGBA{R: 20, G: 20, B: 24, A: 255}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}
