package render

import (
	"image/color"
	"math"
	"testing"

	"tilewater/internal/sims/water"
)

func newGrid(t *testing.T, w, h int) *water.Grid {
	t.Helper()
	g, err := water.NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func TestClassifyTube(t *testing.T) {
	g := newGrid(t, 3, 3)
	g.Get(0, 1).SetObstacle(true)
	g.Get(2, 1).SetObstacle(true)
	g.Get(1, 1).SetLevel(0.4)

	g.Get(1, 2).SetLevel(0.8)
	if got := Classify(g, 1, 1); got != Falling {
		t.Fatalf("tube under a fuller cell should fall, got %s", got)
	}
	g.Get(1, 2).SetLevel(0.1)
	if got := Classify(g, 1, 1); got != Flowing {
		t.Fatalf("tube fuller than the cell above should flow, got %s", got)
	}

	// Tube at the top row: the void above counts as dry.
	g = newGrid(t, 3, 1)
	g.Get(0, 0).SetObstacle(true)
	g.Get(2, 0).SetObstacle(true)
	g.Get(1, 0).SetLevel(0.5)
	if got := Classify(g, 1, 0); got != Flowing {
		t.Fatalf("tube under the void should flow, got %s", got)
	}
}

func TestClassifyOpenNeighbours(t *testing.T) {
	g := newGrid(t, 3, 1)
	g.Get(1, 0).SetLevel(0.5)
	if got := Classify(g, 1, 0); got != Falling {
		t.Fatalf("isolated water should fall, got %s", got)
	}
	g.Get(2, 0).SetLevel(0.2)
	if got := Classify(g, 1, 0); got != Flowing {
		t.Fatalf("water next to water should flow, got %s", got)
	}
	if got := Classify(g, 0, 0); got != Flowing {
		t.Fatalf("edge cell next to water should flow, got %s", got)
	}
}

func TestWaterRect(t *testing.T) {
	flow := WaterRect(Flowing, 0.25)
	if flow != (Rect{X: 0, Y: 0.75, W: 1, H: 0.25}) {
		t.Fatalf("flowing rect %+v", flow)
	}
	fall := WaterRect(Falling, 0.5)
	if math.Abs(fall.X-0.25) > 1e-9 || fall.W != 0.5 || fall.H != 1 || fall.Y != 0 {
		t.Fatalf("falling rect %+v", fall)
	}
	if r := WaterRect(Flowing, 0); r != (Rect{}) {
		t.Fatalf("dry cell should have an empty rect, got %+v", r)
	}
	if r := WaterRect(Flowing, 3); r.H != 1 {
		t.Fatalf("level should clamp to 1, got %+v", r)
	}
}

func TestFillPaletteFlipsRows(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}}
	// 2x2, bottom row first: bottom-left is 1.
	cells := []uint8{1, 0, 0, 0}
	buf := make([]byte, 16)
	fillPaletteRGBA(buf, cells, 2, 2, palette)

	// Bottom-left of the image is pixel (0,1), offset 8.
	if buf[8] != 0 || buf[9] != 2 {
		t.Fatalf("bottom-left pixel = %v", buf[8:12])
	}
	if buf[0] != 1 || buf[1] != 0 {
		t.Fatalf("top-left pixel = %v", buf[0:4])
	}

	cells[0] = 200
	fillPaletteRGBA(buf, cells, 2, 2, palette)
	if buf[9] != 2 {
		t.Fatal("values past the palette should use the last entry")
	}
	fillPaletteRGBA(buf, cells, 2, 2, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("empty palette should clear the buffer, byte %d = %d", i, b)
		}
	}
}

func TestScreenToCell(t *testing.T) {
	x, y := ScreenToCell(0, 0, 10, 4)
	if x != 0 || y != 9 {
		t.Fatalf("top-left pixel maps to (%d,%d)", x, y)
	}
	x, y = ScreenToCell(13, 39, 10, 4)
	if x != 3 || y != 0 {
		t.Fatalf("bottom pixel maps to (%d,%d)", x, y)
	}
	x, y = ScreenToCell(-1, 41, 10, 4)
	if x != -1 || y != -1 {
		t.Fatalf("outside pixels should map outside the grid, got (%d,%d)", x, y)
	}
}
