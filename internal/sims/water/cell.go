package water

// State tells whether a cell can hold water.
type State uint8

const (
	// Open cells hold a fractional amount of water.
	Open State = iota
	// Obstacle cells block water and always hold none.
	Obstacle
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Obstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Capacity is the water level of a completely full cell.
const Capacity = 1.0

// Cell is the per-position record owned by a Grid.
type Cell struct {
	x, y  int
	state State
	level float64
}

// X returns the column of the cell; column 0 is the left edge.
func (c *Cell) X() int { return c.x }

// Y returns the row of the cell; row 0 is the bottom edge.
func (c *Cell) Y() int { return c.y }

// Position returns the (x, y) coordinates fixed at grid creation.
func (c *Cell) Position() (int, int) { return c.x, c.y }

// State reports whether the cell is open or an obstacle.
func (c *Cell) State() State { return c.state }

// IsObstacle is shorthand for State() == Obstacle.
func (c *Cell) IsObstacle() bool { return c.state == Obstacle }

// Level returns the fraction of the cell filled with water, in [0, 1].
func (c *Cell) Level() float64 { return c.level }

// IsWet reports whether the cell holds any water.
func (c *Cell) IsWet() bool { return c.level > 0 }

// SetLevel stores v clamped to [0, Capacity]. Obstacles ignore the write.
func (c *Cell) SetLevel(v float64) {
	if c.state == Obstacle {
		c.level = 0
		return
	}
	c.level = clampLevel(v)
}

// SetObstacle turns the cell into an obstacle (dropping its water) or opens
// it again. A reopened cell starts dry; opening an open cell is a no-op.
func (c *Cell) SetObstacle(obstacle bool) {
	switch {
	case obstacle:
		c.state = Obstacle
		c.level = 0
	case c.state == Obstacle:
		c.state = Open
		c.level = 0
	}
}

func clampLevel(v float64) float64 {
	// NaN compares false both ways; treat it as empty.
	if !(v > 0) {
		return 0
	}
	if v > Capacity {
		return Capacity
	}
	return v
}
