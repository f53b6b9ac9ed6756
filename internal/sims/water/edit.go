package water

// Op names an editing action applied to a single cell.
type Op uint8

const (
	// OpFill sets the water level of an open cell.
	OpFill Op = iota
	// OpDrain empties an open cell.
	OpDrain
	// OpPlaceObstacle turns an open cell into an obstacle.
	OpPlaceObstacle
	// OpClearObstacle turns an obstacle back into an open, dry cell.
	OpClearObstacle
)

func (o Op) String() string {
	switch o {
	case OpFill:
		return "fill"
	case OpDrain:
		return "drain"
	case OpPlaceObstacle:
		return "place-obstacle"
	case OpClearObstacle:
		return "clear-obstacle"
	default:
		return "unknown"
	}
}

// Edit is a discrete mutation requested by an editing front end. Level is
// only used by OpFill.
type Edit struct {
	Op    Op
	X, Y  int
	Level float64
}

// Apply performs the edit and reports whether the cell changed. Edits that
// do not fit the cell's current state, or address the void, are ignored.
func (g *Grid) Apply(e Edit) bool {
	cell := g.Get(e.X, e.Y)
	if cell == nil {
		return false
	}
	switch e.Op {
	case OpFill:
		if cell.IsObstacle() {
			return false
		}
		before := cell.level
		cell.SetLevel(e.Level)
		return cell.level != before
	case OpDrain:
		if cell.IsObstacle() || cell.level == 0 {
			return false
		}
		cell.SetLevel(0)
		return true
	case OpPlaceObstacle:
		if cell.IsObstacle() {
			return false
		}
		cell.SetObstacle(true)
		return true
	case OpClearObstacle:
		if !cell.IsObstacle() {
			return false
		}
		cell.SetObstacle(false)
		return true
	}
	return false
}

// ApplyAll applies edits in order and returns how many changed a cell.
func (g *Grid) ApplyAll(edits []Edit) int {
	changed := 0
	for _, e := range edits {
		if g.Apply(e) {
			changed++
		}
	}
	return changed
}

// Brush expands an edit centred on (e.X, e.Y) to every in-bounds cell within
// radius (a square, Chebyshev distance). A radius of 0 yields the edit itself
// when it is in bounds.
func (g *Grid) Brush(e Edit, radius int) []Edit {
	if radius < 0 {
		radius = 0
	}
	var out []Edit
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x, y := e.X+dx, e.Y+dy
			if g.Get(x, y) == nil {
				continue
			}
			ed := e
			ed.X, ed.Y = x, y
			out = append(out, ed)
		}
	}
	return out
}
