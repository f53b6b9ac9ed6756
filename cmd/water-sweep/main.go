package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"tilewater/internal/sims/water"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type runResult struct {
	seed      int64
	settledAt int
	drainedAt int
	peakWet   int
	final     water.Stats
	initial   water.Stats
}

func main() {
	steps := flag.Int("steps", 2000, "maximum ticks to simulate per seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seeds := flag.Int("seeds", 16, "number of seeds to run")
	firstSeed := flag.Int64("seed", 1, "first seed; the rest follow consecutively")
	epsilon := flag.Float64("epsilon", 1e-6, "largest per-cell change still counted as settled")
	dump := flag.Bool("dump", false, "print the final grid of the first seed")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form, e.g. scenario=basin (repeatable)")
	flag.Parse()

	kv := map[string]string{}
	for _, o := range overrides {
		parts := strings.SplitN(o, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("bad override %q, expected key=value", o)
		}
		kv[parts[0]] = parts[1]
	}
	cfg := water.FromMap(kv)
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if *workers <= 0 {
		*workers = 1
	}

	fmt.Printf("Running scenario %q on %dx%d for %d seeds (%d workers, up to %d ticks)\n",
		cfg.Scenario, cfg.Width, cfg.Height, *seeds, *workers, *steps)

	jobs := make(chan int64)
	results := make(chan runResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				res, err := runSeed(cfg, seed, *steps, *epsilon)
				if err != nil {
					log.Fatalf("seed %d: %v", seed, err)
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *seeds; i++ {
			jobs <- *firstSeed + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []runResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })
	elapsed := time.Since(start)

	var kept float64
	for _, res := range all {
		ratio := 0.0
		if res.initial.TotalWater > 0 {
			ratio = res.final.TotalWater / res.initial.TotalWater
		}
		kept += ratio
		fmt.Printf("seed=%d settled=%s drained=%s peakWet=%d start[%s] end[%s] kept=%.1f%%\n",
			res.seed, tickLabel(res.settledAt), tickLabel(res.drainedAt), res.peakWet, res.initial, res.final, ratio*100)
	}
	if len(all) > 0 {
		fmt.Printf("\nMean water kept %.1f%% over %d seeds (elapsed %s)\n", kept/float64(len(all))*100, len(all), elapsed.Round(time.Millisecond))
	}

	if *dump && len(all) > 0 {
		world, err := water.New(cfg)
		if err != nil {
			log.Fatal(err)
		}
		world.Reset(all[0].seed)
		for i := 0; i < *steps && i < maxTick(all[0]); i++ {
			world.Step()
		}
		fmt.Printf("\nSeed %d after %d ticks:\n", all[0].seed, world.Ticks())
		dumpGrid(os.Stdout, world)
	}
}

// runSeed simulates one world until it settles or runs out of steps.
func runSeed(cfg water.Config, seed int64, steps int, epsilon float64) (runResult, error) {
	world, err := water.New(cfg)
	if err != nil {
		return runResult{}, err
	}
	world.Reset(seed)

	res := runResult{seed: seed, initial: world.Stats()}
	res.peakWet = res.initial.WetCells
	prev := world.Grid().Levels()
	for step := 0; step < steps; step++ {
		world.Step()
		stats := world.Stats()
		if stats.WetCells > res.peakWet {
			res.peakWet = stats.WetCells
		}
		if res.initial.TotalWater > 0 && stats.TotalWater == 0 && res.drainedAt == 0 {
			res.drainedAt = step + 1
		}
		cur := world.Grid().Levels()
		if maxDelta(prev, cur) < epsilon {
			res.settledAt = step + 1
			break
		}
		prev = cur
	}
	res.final = world.Stats()
	return res, nil
}

func maxDelta(a, b []float64) float64 {
	var m float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > m {
			m = d
		}
	}
	return m
}

func maxTick(res runResult) int {
	if res.settledAt > 0 {
		return res.settledAt
	}
	return math.MaxInt
}

func tickLabel(tick int) string {
	if tick == 0 {
		return "-"
	}
	return fmt.Sprint(tick)
}

// dumpGrid prints the world top row first: '#' for obstacles, then
// increasingly dense characters for deeper water.
func dumpGrid(w io.Writer, world *water.World) {
	size := world.Size()
	cells := world.Cells()
	var b strings.Builder
	for y := size.H - 1; y >= 0; y-- {
		for x := 0; x < size.W; x++ {
			v := cells[y*size.W+x]
			if v == water.DisplayObstacle {
				b.WriteByte('#')
				continue
			}
			b.WriteByte(levelGlyph(water.DisplayLevel(v)))
		}
		b.WriteByte('\n')
	}
	io.WriteString(w, b.String())
}

func levelGlyph(level float64) byte {
	switch {
	case level <= 0:
		return ' '
	case level < 0.25:
		return '.'
	case level < 0.5:
		return ':'
	case level < 0.75:
		return 'o'
	default:
		return 'O'
	}
}
