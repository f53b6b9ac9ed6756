package render

import "tilewater/internal/sims/water"

// FlowState is the visual classification of a water cell. It only affects
// how the water is drawn.
type FlowState uint8

const (
	// Flowing water fills the cell from the bottom up.
	Flowing FlowState = iota
	// Falling water is drawn as a full-height stream whose width follows
	// the level.
	Falling
)

func (s FlowState) String() string {
	if s == Falling {
		return "falling"
	}
	return "flowing"
}

// CellSource is the read-only lookup the renderer needs; *water.Grid
// satisfies it.
type CellSource interface {
	Get(x, y int) *water.Cell
}

// Classify decides whether the water at (x, y) is drawn falling or flowing.
// Inside a tube (obstacles on both sides) water falls while the cell above
// holds at least as much; otherwise water with no wet neighbour on either
// side falls, and everything else flows. Missing neighbours count as dry.
func Classify(src CellSource, x, y int) FlowState {
	left := src.Get(x-1, y)
	right := src.Get(x+1, y)
	level := levelOf(src.Get(x, y))

	if left != nil && right != nil && left.IsObstacle() && right.IsObstacle() {
		if level <= levelOf(src.Get(x, y+1)) {
			return Falling
		}
		return Flowing
	}
	if levelOf(left) == 0 && levelOf(right) == 0 {
		return Falling
	}
	return Flowing
}

func levelOf(c *water.Cell) float64 {
	if c == nil {
		return 0
	}
	return c.Level()
}

// Rect is an axis-aligned rectangle in cell units, with the origin at the
// top-left corner of the cell and y pointing down.
type Rect struct {
	X, Y, W, H float64
}

// WaterRect returns the part of a cell covered by water at the given level.
func WaterRect(state FlowState, level float64) Rect {
	if level <= 0 {
		return Rect{}
	}
	if level > 1 {
		level = 1
	}
	if state == Falling {
		return Rect{X: (1 - level) / 2, Y: 0, W: level, H: 1}
	}
	return Rect{X: 0, Y: 1 - level, W: 1, H: level}
}
