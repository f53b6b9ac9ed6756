package ui

import (
	"math"
	"testing"

	"tilewater/internal/core"
)

func TestAdjustedValueClampsToRange(t *testing.T) {
	fill := core.ParameterControl{Key: "fill", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.1, Max: 1}

	got, ok := adjustedValue(fill, 0.5, 1)
	if !ok || math.Abs(got-0.6) > 1e-9 {
		t.Fatalf("0.5 + step = %f (ok=%v)", got, ok)
	}
	got, ok = adjustedValue(fill, 0.95, 1)
	if !ok || got != 1 {
		t.Fatalf("expected clamp to 1, got %f (ok=%v)", got, ok)
	}
	if _, ok := adjustedValue(fill, 1, 1); ok {
		t.Fatal("already at max should not adjust")
	}
	if _, ok := adjustedValue(fill, 0.1, -1); ok {
		t.Fatal("already at min should not adjust")
	}

	brush := core.ParameterControl{Key: "brush", Type: core.ParamTypeInt, Min: 0, Max: 4}
	got, ok = adjustedValue(brush, 2, -1)
	if !ok || got != 1 {
		t.Fatalf("missing step should default to 1, got %f (ok=%v)", got, ok)
	}
}
