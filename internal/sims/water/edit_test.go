package water

import "testing"

func TestApplyEdits(t *testing.T) {
	g := newTestGrid(t, 3, 3)

	if !g.Apply(Edit{Op: OpFill, X: 1, Y: 1, Level: 1}) {
		t.Fatal("fill on an open cell should apply")
	}
	if g.Apply(Edit{Op: OpFill, X: 1, Y: 1, Level: 1}) {
		t.Fatal("refilling to the same level should report no change")
	}
	if !g.Apply(Edit{Op: OpPlaceObstacle, X: 1, Y: 1}) {
		t.Fatal("placing an obstacle on an open cell should apply")
	}
	if lvl := g.Get(1, 1).Level(); lvl != 0 {
		t.Fatalf("obstacle kept water %f", lvl)
	}
	if g.Apply(Edit{Op: OpFill, X: 1, Y: 1, Level: 1}) {
		t.Fatal("fill must not touch obstacles")
	}
	if g.Apply(Edit{Op: OpPlaceObstacle, X: 1, Y: 1}) {
		t.Fatal("placing an obstacle twice should report no change")
	}
	if !g.Apply(Edit{Op: OpClearObstacle, X: 1, Y: 1}) {
		t.Fatal("clearing an obstacle should apply")
	}
	if g.Apply(Edit{Op: OpClearObstacle, X: 1, Y: 1}) {
		t.Fatal("clearing an open cell should report no change")
	}

	g.Apply(Edit{Op: OpFill, X: 0, Y: 2, Level: 3})
	if lvl := g.Get(0, 2).Level(); lvl != 1 {
		t.Fatalf("fill level should clamp to 1, got %f", lvl)
	}
	if !g.Apply(Edit{Op: OpDrain, X: 0, Y: 2}) {
		t.Fatal("drain on a wet cell should apply")
	}
	if g.Apply(Edit{Op: OpDrain, X: 0, Y: 2}) {
		t.Fatal("drain on a dry cell should report no change")
	}
	if g.Apply(Edit{Op: OpFill, X: -1, Y: 0, Level: 1}) {
		t.Fatal("edits in the void must be ignored")
	}
}

func TestBrushClipsToGrid(t *testing.T) {
	g := newTestGrid(t, 4, 4)

	edits := g.Brush(Edit{Op: OpFill, X: 0, Y: 0, Level: 0.5}, 1)
	if len(edits) != 4 {
		t.Fatalf("corner brush should cover 4 cells, got %d", len(edits))
	}
	for _, e := range edits {
		if e.Op != OpFill || e.Level != 0.5 {
			t.Fatalf("brush changed the edit: %+v", e)
		}
	}

	if n := g.ApplyAll(g.Brush(Edit{Op: OpPlaceObstacle, X: 2, Y: 2}, 1)); n != 9 {
		t.Fatalf("expected 9 obstacles, got %d", n)
	}
	if edits := g.Brush(Edit{Op: OpDrain, X: 9, Y: 9}, 0); len(edits) != 0 {
		t.Fatalf("out-of-bounds brush should be empty, got %d", len(edits))
	}
	if edits := g.Brush(Edit{Op: OpDrain, X: 1, Y: 1}, -3); len(edits) != 1 {
		t.Fatalf("negative radius should behave like 0, got %d edits", len(edits))
	}
}
