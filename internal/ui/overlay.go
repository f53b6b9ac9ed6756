//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Overlay is the in-game menu listing the controls. The app pauses the
// simulation while it is visible.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a hidden menu.
func NewOverlay() *Overlay { return &Overlay{} }

// Toggle flips the menu visibility and returns the new state.
func (o *Overlay) Toggle() bool {
	o.visible = !o.visible
	return o.visible
}

// Visible reports whether the menu is shown.
func (o *Overlay) Visible() bool { return o.visible }

// Draw renders the menu centred over the simulation view.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	const (
		lineHeight = 16
		padding    = 14
		boxWidth   = 280
	)
	face := basicfont.Face7x13
	bounds := screen.Bounds()
	boxHeight := padding*2 + lineHeight*(len(HelpLines)+2)
	x := (bounds.Dx() - boxWidth) / 2
	y := (bounds.Dy() - boxHeight) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), color.RGBA{A: 120}, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), boxWidth, float32(boxHeight), color.RGBA{R: 24, G: 26, B: 32, A: 235}, false)

	ty := y + padding + lineHeight
	text.Draw(screen, "Paused", face, x+padding, ty, color.RGBA{R: 120, G: 170, B: 230, A: 255})
	ty += lineHeight
	for _, line := range HelpLines {
		ty += lineHeight
		text.Draw(screen, line, face, x+padding, ty, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}
