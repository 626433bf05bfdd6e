package main

import (
	"flag"
	"fmt"
	"log"

	"mad-fire/internal/app"
	"mad-fire/internal/core"
	"mad-fire/internal/record"
	"mad-fire/internal/sims/fire"
	"mad-fire/internal/stats"
)

func main() {
	cfg := app.NewConfig()
	cfg.Scale = 4
	cfg.Bind(flag.CommandLine)
	opts := record.DefaultOptions()
	out := flag.String("out", "fire.avi", "output AVI path")
	flag.IntVar(&opts.Frames, "frames", opts.Frames, "number of frames to record")
	flag.IntVar(&opts.Quality, "quality", opts.Quality, "JPEG quality 1-100")
	warmup := flag.Int("warmup", 60, "ticks to run before the first recorded frame")
	profile := flag.Bool("profile", false, "print the mean heat by height after recording")
	flag.Parse()
	opts.FPS = cfg.TPS
	opts.Scale = cfg.Scale

	sim, err := fire.NewWithConfig(fire.FromMap(cfg.SimConfig()))
	if err != nil {
		log.Fatal(err)
	}
	for i := 0; i < *warmup; i++ {
		sim.Step()
	}

	var prof stats.Profile
	observe := func(frame int) {
		prof.Add(sim.Field())
		if (frame+1)%100 == 0 {
			log.Printf("recorded %d/%d frames", frame+1, opts.Frames)
		}
	}
	if err := record.Record(*out, sim, sim.Palette(), opts, observe); err != nil {
		log.Fatal(err)
	}
	size := sim.Size()
	log.Printf("wrote %s: %d frames of %dx%d at %d fps", *out, opts.Frames, size.W*opts.Scale, size.H*opts.Scale, opts.FPS)

	if *profile {
		fmt.Println(stats.Plot(prof.Means(), 10, heightCaption(size, prof.Samples())))
	}
}

func heightCaption(size core.Size, samples int) string {
	return fmt.Sprintf("mean heat by height (base -> top, %d rows, %d samples)", size.H, samples)
}
