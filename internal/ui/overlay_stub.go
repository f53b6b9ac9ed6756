//go:build !ebiten

package ui

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{ visible bool }

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Toggle flips the menu visibility and returns the new state.
func (o *Overlay) Toggle() bool {
	o.visible = !o.visible
	return o.visible
}

// Visible reports whether the menu is shown.
func (o *Overlay) Visible() bool { return o.visible }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
