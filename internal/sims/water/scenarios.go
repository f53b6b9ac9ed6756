package water

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"tilewater/internal/core"
)

// ErrUnknownScenario is returned by LookupScenario for unregistered names.
var ErrUnknownScenario = errors.New("unknown scenario")

// Scenario builds a starting layout on a freshly reset grid.
type Scenario struct {
	Name        string
	Description string
	Build       func(g *Grid, rng *core.RNG)
}

var scenarios = map[string]Scenario{}

func registerScenario(s Scenario) {
	scenarios[s.Name] = s
}

// ScenarioNames lists the built-in scenarios in sorted order.
func ScenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupScenario returns the scenario registered under name.
func LookupScenario(name string) (Scenario, error) {
	if s, ok := scenarios[name]; ok {
		return s, nil
	}
	if hints := core.Suggest(name, ScenarioNames(), 3); len(hints) > 0 {
		return Scenario{}, fmt.Errorf("%w %q (did you mean %s?)", ErrUnknownScenario, name, strings.Join(hints, ", "))
	}
	return Scenario{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownScenario, name, strings.Join(ScenarioNames(), ", "))
}

func init() {
	registerScenario(Scenario{
		Name:        "empty",
		Description: "open, dry grid",
		Build:       func(*Grid, *core.RNG) {},
	})
	registerScenario(Scenario{
		Name:        "basin",
		Description: "a U-shaped basin under a block of water",
		Build:       buildBasin,
	})
	registerScenario(Scenario{
		Name:        "cascade",
		Description: "staircase ledges fed from the top left",
		Build:       buildCascade,
	})
	registerScenario(Scenario{
		Name:        "tube",
		Description: "a walled vertical tube with water at its mouth",
		Build:       buildTube,
	})
	registerScenario(Scenario{
		Name:        "random",
		Description: "seeded obstacles and puddles",
		Build:       buildRandom,
	})
}

func buildBasin(g *Grid, _ *core.RNG) {
	w, h := g.Width(), g.Height()
	left, right := w/4, w-1-w/4
	floor := 1
	top := h / 2
	for x := left; x <= right; x++ {
		g.Apply(Edit{Op: OpPlaceObstacle, X: x, Y: floor})
	}
	for y := floor; y <= top; y++ {
		g.Apply(Edit{Op: OpPlaceObstacle, X: left, Y: y})
		g.Apply(Edit{Op: OpPlaceObstacle, X: right, Y: y})
	}
	for y := h - 3; y < h; y++ {
		for x := left + 2; x <= right-2; x++ {
			g.Apply(Edit{Op: OpFill, X: x, Y: y, Level: Capacity})
		}
	}
}

func buildCascade(g *Grid, _ *core.RNG) {
	w, h := g.Width(), g.Height()
	const steps = 4
	span := w / steps
	if span < 2 {
		span = 2
	}
	for i := 0; i < steps; i++ {
		y := h - 3 - i*(h/(steps+1))
		for x := i * span; x < (i+1)*span+1; x++ {
			g.Apply(Edit{Op: OpPlaceObstacle, X: x, Y: y})
		}
	}
	for x := 0; x < span/2+1; x++ {
		g.Apply(Edit{Op: OpFill, X: x, Y: h - 1, Level: Capacity})
		g.Apply(Edit{Op: OpFill, X: x, Y: h - 2, Level: Capacity})
	}
}

func buildTube(g *Grid, _ *core.RNG) {
	w, h := g.Width(), g.Height()
	c := w / 2
	for y := 1; y < h-2; y++ {
		g.Apply(Edit{Op: OpPlaceObstacle, X: c - 1, Y: y})
		g.Apply(Edit{Op: OpPlaceObstacle, X: c + 1, Y: y})
	}
	g.Apply(Edit{Op: OpFill, X: c, Y: h - 1, Level: Capacity})
	g.Apply(Edit{Op: OpFill, X: c, Y: h - 2, Level: Capacity})
}

func buildRandom(g *Grid, rng *core.RNG) {
	const (
		obstacleChance = 0.08
		waterChance    = 0.15
	)
	cells := g.Cells()
	for i := range cells {
		x, y := cells[i].Position()
		switch {
		case rng.Chance(obstacleChance):
			g.Apply(Edit{Op: OpPlaceObstacle, X: x, Y: y})
		case rng.Chance(waterChance):
			g.Apply(Edit{Op: OpFill, X: x, Y: y, Level: rng.Between(0.2, 1)})
		}
	}
}
