//go:build ebiten

package render

import (
	"image/color"

	"tilewater/internal/sims/water"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter draws the cell background from a display buffer and the water
// on top of it as per-cell rectangles.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	water color.RGBA
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{
		w:     w,
		h:     h,
		buf:   make([]byte, 4*w*h),
		water: color.RGBA{R: 30, G: 80, B: 230, A: 200},
	}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the display buffer into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, gp.w, gp.h, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// DrawWater paints every wet cell of grid using its flow classification.
func (gp *GridPainter) DrawWater(dst *ebiten.Image, grid *water.Grid, scale int) {
	if scale <= 0 {
		scale = 1
	}
	s := float32(scale)
	cells := grid.Cells()
	for i := range cells {
		c := &cells[i]
		if c.IsObstacle() || !c.IsWet() {
			continue
		}
		x, y := c.Position()
		r := WaterRect(Classify(grid, x, y), c.Level())
		top := float32(gp.h-1-y) * s
		left := float32(x) * s
		vector.DrawFilledRect(dst,
			left+float32(r.X)*s, top+float32(r.Y)*s,
			float32(r.W)*s, float32(r.H)*s,
			gp.water, false)
	}
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
