package water

const (
	// TransferFactor is the share of a level difference moved by one
	// balancing step. Half the difference levels the two cells out.
	TransferFactor = 0.5

	// VoidDrainThreshold is the level at or below which water balanced
	// into the void is discarded entirely instead of being halved.
	VoidDrainThreshold = 0.1
)

// Tick advances the simulation by one step. Columns are visited left to
// right and, within a column, rows bottom to top. Every write lands in the
// cell records immediately: water moving down or left reaches a cell that
// was already computed and waits for the next tick, while water pushed into
// the column on the right is computed again, and can fall, later in the
// same tick.
func (g *Grid) Tick() {
	w, h := g.Width(), g.Height()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			g.computeCell(x, y)
		}
	}
}

func (g *Grid) computeCell(x, y int) {
	cell := g.Get(x, y)
	if cell == nil {
		return
	}
	if cell.IsObstacle() || !(cell.level > 0) {
		return
	}
	moved := g.tryDown(cell)
	if !moved || cell.level > 0 {
		g.trySideways(cell)
	}
}

// tryDown moves as much water as fits into the cell below. It reports false
// only when the cell below is an obstacle or already full.
func (g *Grid) tryDown(cell *Cell) bool {
	down := g.Get(cell.x, cell.y-1)
	if down == nil {
		// Bottom edge: the water falls out of the grid.
		cell.SetLevel(0)
		return true
	}
	if down.IsObstacle() || !(down.level < Capacity) {
		return false
	}
	portion := Capacity - down.level
	if cell.level < portion {
		portion = cell.level
	}
	cell.SetLevel(cell.level - portion)
	down.SetLevel(down.level + portion)
	return true
}

// trySideways spreads water to the left and right neighbours.
//
// The exclusion balances and the closing void/three-way balance both run on
// every call, so a cell can be balanced twice against the same neighbour in
// one invocation.
func (g *Grid) trySideways(cell *Cell) {
	left := g.Get(cell.x-1, cell.y)
	right := g.Get(cell.x+1, cell.y)
	noLeft := left == nil
	noRight := right == nil

	if !noLeft && (left.IsObstacle() || left.level > cell.level) {
		g.balance(cell, right)
	}
	if !noRight && (right.IsObstacle() || right.level > cell.level) {
		g.balance(cell, left)
	}

	switch {
	case noLeft:
		g.balance(cell, left)
		g.balance(cell, right)
	case noRight:
		g.balance(cell, right)
		g.balance(cell, left)
	default:
		diffLeft := cell.level - left.level
		diffRight := cell.level - right.level
		if diffLeft > diffRight {
			g.balance3(cell, left, right)
		} else {
			g.balance3(cell, right, left)
		}
	}
}

// balance moves water from source towards a strictly lower target. A nil
// target is the void: small amounts vanish, larger ones are halved.
func (g *Grid) balance(source, target *Cell) bool {
	if target == nil {
		if source.level <= VoidDrainThreshold {
			source.SetLevel(0)
		} else {
			source.SetLevel(source.level / 2)
		}
		return true
	}
	if target.IsObstacle() {
		return false
	}
	if target.level >= source.level {
		return false
	}
	diff := source.level - target.level
	source.SetLevel(source.level - diff*TransferFactor)
	target.SetLevel(target.level + diff*TransferFactor)
	return true
}

// balance3 levels current against low first, then against high if current
// is still above it. Both sides must be open.
func (g *Grid) balance3(current, low, high *Cell) {
	if low.IsObstacle() || high.IsObstacle() {
		return
	}
	diff := current.level - low.level
	current.SetLevel(current.level - diff*TransferFactor)
	low.SetLevel(low.level + diff*TransferFactor)
	if current.level > high.level {
		diff = current.level - high.level
		current.SetLevel(current.level - diff*TransferFactor)
		high.SetLevel(high.level + diff*TransferFactor)
	}
}
