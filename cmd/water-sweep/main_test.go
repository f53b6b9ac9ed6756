package main

import (
	"strings"
	"testing"

	"tilewater/internal/sims/water"
)

func TestRunSeedSettlesEmptyWorld(t *testing.T) {
	cfg := water.DefaultConfig()
	cfg.Width = 6
	cfg.Height = 4
	res, err := runSeed(cfg, 3, 50, 1e-9)
	if err != nil {
		t.Fatalf("runSeed: %v", err)
	}
	if res.settledAt != 1 {
		t.Fatalf("an empty world should settle on the first tick, got %d", res.settledAt)
	}
	if res.drainedAt != 0 || res.peakWet != 0 {
		t.Fatalf("empty world reported water: %+v", res)
	}
}

func TestRunSeedTracksWater(t *testing.T) {
	cfg := water.DefaultConfig()
	cfg.Width = 16
	cfg.Height = 10
	cfg.Scenario = "random"
	res, err := runSeed(cfg, 5, 20, 1e-9)
	if err != nil {
		t.Fatalf("runSeed: %v", err)
	}
	if res.initial.TotalWater <= 0 {
		t.Fatalf("random scenario should start with water, got %s", res.initial)
	}
	if res.final.TotalWater > res.initial.TotalWater+1e-9 {
		t.Fatalf("water grew from %f to %f", res.initial.TotalWater, res.final.TotalWater)
	}
	if res.peakWet < res.initial.WetCells {
		t.Fatalf("peak wet %d below initial %d", res.peakWet, res.initial.WetCells)
	}
}

func TestDumpGrid(t *testing.T) {
	cfg := water.DefaultConfig()
	cfg.Width = 3
	cfg.Height = 2
	world, err := water.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	world.Grid().Get(0, 0).SetObstacle(true)
	world.Grid().Get(1, 0).SetLevel(1)
	world.Grid().Get(2, 1).SetLevel(0.3)

	var b strings.Builder
	dumpGrid(&b, world)
	want := "  :\n#O \n"
	if b.String() != want {
		t.Fatalf("dump = %q, want %q", b.String(), want)
	}
}

func TestLevelGlyph(t *testing.T) {
	cases := map[float64]byte{0: ' ', 0.1: '.', 0.3: ':', 0.6: 'o', 1: 'O'}
	for level, want := range cases {
		if got := levelGlyph(level); got != want {
			t.Fatalf("levelGlyph(%f) = %q, want %q", level, got, want)
		}
	}
}
