//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"mad-fire/internal/app"
	"mad-fire/internal/core"
	_ "mad-fire/internal/sims/fire"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.New(cfg.Sim, cfg.SimConfig())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Scale, cfg.EffectiveSeed(), cfg.HUD)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("mad-fire - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
