package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Cells are stored bottom row first while images are top row first, so rows
// are flipped on the way. When the palette is empty the buffer is cleared
// to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, w, h int, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}

	last := len(palette) - 1
	for y := 0; y < h; y++ {
		row := h - 1 - y
		for x := 0; x < w; x++ {
			idx := int(cells[y*w+x])
			if idx > last {
				idx = last
			}
			base := (row*w + x) * 4
			col := palette[idx]
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// ScreenToCell maps a screen pixel to grid coordinates for a view drawn at
// the given scale with row 0 at the bottom. The result may be out of bounds.
func ScreenToCell(px, py, h, scale int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	x := floorDiv(px, scale)
	y := h - 1 - floorDiv(py, scale)
	return x, y
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
