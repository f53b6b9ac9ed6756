package water

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"tilewater/internal/core"
)

// ErrInvalidTick is returned for a non-positive tick period.
var ErrInvalidTick = errors.New("tick period must be positive")

// Config controls the water simulation dimensions, cadence and the editing
// brush.
type Config struct {
	Width  int
	Height int

	// TickPeriod is the wall-clock time between two simulation steps.
	TickPeriod time.Duration

	Scenario string
	Seed     int64

	// FillLevel is the level written by a fill edit.
	FillLevel float64
	// BrushRadius widens fill and obstacle edits to neighbouring cells.
	BrushRadius int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       48,
		Height:      20,
		TickPeriod:  2500 * time.Microsecond,
		Scenario:    "empty",
		Seed:        1,
		FillLevel:   1,
		BrushRadius: 0,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Values that fail to parse keep their defaults; sizes are taken as
// given so Validate can reject them.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["tick"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.TickPeriod = parsed
		}
	}
	if v, ok := cfg["scenario"]; ok && v != "" {
		c.Scenario = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.FillLevel = clampLevel(parsed)
		}
	}
	if v, ok := cfg["brush"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.BrushRadius = parsed
		}
	}
	return c
}

// Validate reports configuration errors that would leave the simulation
// unusable.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("water config: %w: got %dx%d", core.ErrInvalidSize, c.Width, c.Height)
	}
	if c.TickPeriod <= 0 {
		return fmt.Errorf("water config: %w: got %s", ErrInvalidTick, c.TickPeriod)
	}
	if _, err := LookupScenario(c.Scenario); err != nil {
		return fmt.Errorf("water config: %w", err)
	}
	return nil
}
