//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"tilewater/internal/app"
	"tilewater/internal/core"
	_ "tilewater/internal/sims/water"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		log.Fatal(err)
	}
	sim, err := factory(cfg.SimConfig())
	if err != nil {
		log.Fatalf("configure %s: %v", cfg.Sim, err)
	}
	editable, ok := sim.(app.Editable)
	if !ok {
		log.Fatalf("sim %q cannot be edited interactively", sim.Name())
	}

	game := app.New(editable, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("tilewater - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
