package water

import (
	"fmt"

	"tilewater/internal/core"
)

// Grid owns a fixed-size set of cells addressed by (x, y), with (0, 0) in
// the lower-left corner. It is not safe for concurrent use.
type Grid struct {
	cells *core.Dense[Cell]
}

// NewGrid allocates width*height open, dry cells. Positions are assigned in
// row-major order: x advances fastest, then y.
func NewGrid(width, height int) (*Grid, error) {
	cells, err := core.NewDense[Cell](width, height)
	if err != nil {
		return nil, fmt.Errorf("water grid: %w", err)
	}
	items := cells.Items()
	for i := range items {
		items[i] = Cell{x: i % width, y: i / width}
	}
	return &Grid{cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.cells.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.cells.H }

// Get returns the cell at (x, y), or nil when the coordinates are outside
// the grid. A nil result is how the simulation recognises the void.
func (g *Grid) Get(x, y int) *Cell {
	return g.cells.At(x, y)
}

// Cells exposes the owned records in row-major order. Callers mutate them
// through the Cell methods only.
func (g *Grid) Cells() []Cell { return g.cells.Items() }

// Reset opens and drains every cell.
func (g *Grid) Reset() {
	items := g.cells.Items()
	for i := range items {
		items[i].state = Open
		items[i].level = 0
	}
}

// Levels returns a row-major copy of the water levels.
func (g *Grid) Levels() []float64 {
	items := g.cells.Items()
	out := make([]float64, len(items))
	for i := range items {
		out[i] = items[i].level
	}
	return out
}
