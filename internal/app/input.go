package app

import (
	"image/color"

	"tilewater/internal/core"
	"tilewater/internal/sims/water"
)

// Editable is the simulation surface the window needs: the core Sim
// contract plus direct access to the grid for drawing and editing.
type Editable interface {
	core.Sim
	Grid() *water.Grid
	Apply(e water.Edit) int
	Palette() []color.RGBA
	Seed() int64
	Config() water.Config
}

// Buttons is the mouse button state sampled for one frame.
type Buttons struct {
	Left, Right, Middle bool
}

// editFor maps the buttons held over a cell to an edit. Open cells take the
// right button (obstacle) over the left one (fill); obstacles only react to
// the middle button.
func editFor(cell *water.Cell, b Buttons) (water.Edit, bool) {
	if cell == nil {
		return water.Edit{}, false
	}
	x, y := cell.Position()
	if cell.IsObstacle() {
		if b.Middle {
			return water.Edit{Op: water.OpClearObstacle, X: x, Y: y}, true
		}
		return water.Edit{}, false
	}
	switch {
	case b.Right:
		return water.Edit{Op: water.OpPlaceObstacle, X: x, Y: y}, true
	case b.Left:
		return water.Edit{Op: water.OpFill, X: x, Y: y}, true
	}
	return water.Edit{}, false
}
