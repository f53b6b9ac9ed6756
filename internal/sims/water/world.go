package water

import (
	"fmt"

	"tilewater/internal/core"
)

// World wraps a Grid with the bookkeeping the front ends need: the active
// configuration, the starting scenario, a tick counter and a display buffer.
type World struct {
	cfg      Config
	grid     *Grid
	scenario Scenario
	seed     int64
	ticks    int

	display []uint8
}

// New returns a water world built from cfg, or a configuration error.
func New(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	scenario, err := LookupScenario(cfg.Scenario)
	if err != nil {
		return nil, err
	}
	w := &World{
		cfg:      cfg,
		grid:     grid,
		scenario: scenario,
		seed:     cfg.Seed,
		display:  make([]uint8, cfg.Width*cfg.Height),
	}
	w.Reset(cfg.Seed)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "water" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.Width(), H: w.grid.Height()} }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Grid exposes the owned grid to editing and rendering collaborators.
func (w *World) Grid() *Grid { return w.grid }

// Ticks returns the number of steps since the last reset.
func (w *World) Ticks() int { return w.ticks }

// Seed returns the seed used by the last reset.
func (w *World) Seed() int64 { return w.seed }

// Reset clears the grid and rebuilds the configured scenario. A zero seed
// falls back to the configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.seed = seed
	w.ticks = 0
	w.grid.Reset()
	w.scenario.Build(w.grid, core.NewRNG(seed))
}

// Step advances the simulation by one tick.
func (w *World) Step() {
	w.grid.Tick()
	w.ticks++
}

// Cells returns the display buffer, rebuilt from the grid on every call.
// Obstacles are encoded as DisplayObstacle; open cells carry their level
// scaled to 0..DisplayLevels.
func (w *World) Cells() []uint8 {
	cells := w.grid.Cells()
	for i := range cells {
		w.display[i] = encodeDisplayValue(&cells[i])
	}
	return w.display
}

// Apply forwards an edit to the grid, widened by the configured brush
// radius, and returns how many cells changed. Fill edits without a level
// use the configured fill level.
func (w *World) Apply(e Edit) int {
	if e.Op == OpFill && e.Level == 0 {
		e.Level = w.cfg.FillLevel
	}
	return w.grid.ApplyAll(w.grid.Brush(e, w.cfg.BrushRadius))
}

// Stats summarises the water currently held by the grid.
type Stats struct {
	TotalWater float64
	WetCells   int
	Obstacles  int
	MaxLevel   float64
}

func (s Stats) String() string {
	return fmt.Sprintf("water=%.3f wet=%d obstacles=%d max=%.3f", s.TotalWater, s.WetCells, s.Obstacles, s.MaxLevel)
}

// Stats walks the grid and returns the current totals.
func (w *World) Stats() Stats {
	var s Stats
	cells := w.grid.Cells()
	for i := range cells {
		c := &cells[i]
		if c.IsObstacle() {
			s.Obstacles++
			continue
		}
		if c.IsWet() {
			s.WetCells++
			s.TotalWater += c.level
			if c.level > s.MaxLevel {
				s.MaxLevel = c.level
			}
		}
	}
	return s
}

func init() {
	core.Register("water", func(cfg map[string]string) (core.Sim, error) {
		w, err := New(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return w, nil
	})
}
