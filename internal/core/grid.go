package core

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a grid is requested with a non-positive
// width or height.
var ErrInvalidSize = errors.New("grid dimensions must be positive")

// Dense stores a fixed-size 2D grid of values in row-major order. Row 0 is
// the first row in memory; callers decide whether that is the top or the
// bottom of the picture.
type Dense[T any] struct {
	W, H int
	data []T
}

// NewDense allocates a grid with the given dimensions.
func NewDense[T any](w, h int) (*Dense[T], error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, w, h)
	}
	return &Dense[T]{W: w, H: h, data: make([]T, w*h)}, nil
}

// Items exposes the backing slice so callers can read/write values directly.
func (g *Dense[T]) Items() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Dense[T]) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a stored value.
func (g *Dense[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns a pointer to the value at (x, y), or nil when the coordinates
// fall outside the grid.
func (g *Dense[T]) At(x, y int) *T {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.data[g.Index(x, y)]
}

// Clear resets every value to its zero value.
func (g *Dense[T]) Clear() {
	var zero T
	for i := range g.data {
		g.data[i] = zero
	}
}
