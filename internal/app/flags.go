package app

import (
	"flag"
	"strconv"
	"time"

	"tilewater/internal/sims/water"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	HUDWidth int

	Width    int
	Height   int
	Tick     time.Duration
	Scenario string
	Seed     int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := water.DefaultConfig()
	return &Config{
		Sim:      "water",
		Scale:    16,
		TPS:      60,
		HUDWidth: 220,
		Width:    def.Width,
		Height:   def.Height,
		Tick:     def.TickPeriod,
		Scenario: def.Scenario,
		Seed:     def.Seed,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the window loop")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the side panel in pixels (0 hides it)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "simulation tick period")
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "starting layout")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for scenario reset")
}

// SimConfig converts the flags into the key/value form sim factories take.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":        strconv.Itoa(c.Width),
		"h":        strconv.Itoa(c.Height),
		"tick":     c.Tick.String(),
		"scenario": c.Scenario,
		"seed":     strconv.FormatInt(c.Seed, 10),
	}
}
