package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"mad-fire/internal/app"
	"mad-fire/internal/core"
	_ "mad-fire/internal/sims/fire"
	"mad-fire/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	// The grid is sized to the terminal once; later resizes only clip.
	simCfg := cfg.SimConfig()
	cols, rows := screen.Size()
	fit := term.GridSize(cols, rows, term.StatusRows)
	if _, ok := simCfg["w"]; !ok {
		simCfg["w"] = strconv.Itoa(fit.W)
	}
	if _, ok := simCfg["h"]; !ok {
		simCfg["h"] = strconv.Itoa(fit.H)
	}

	sim, err := core.New(cfg.Sim, simCfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := term.NewLoop(screen, sim, cfg.TPS, cfg.EffectiveSeed())
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
