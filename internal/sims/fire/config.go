package fire

import (
	"errors"
	"fmt"
	"strconv"

	"mad-fire/internal/core"
	"mad-fire/internal/palette"
)

// ErrInvalidConfig reports parameter values the simulation cannot run with.
var ErrInvalidConfig = errors.New("invalid fire config")

// Params holds the injection and scheduling knobs for the fire sim.
type Params struct {
	// SparkOdds is the denominator of the per-column ignition chance.
	SparkOdds int
	// SparkMin and SparkMax bound the heat of a fresh spark, inclusive.
	SparkMin int
	SparkMax int
	// Pilot is the floor applied to unlit bottom-row cells.
	Pilot int
	// Workers splits each diffusion pass across goroutines when > 1.
	Workers int
}

// Config controls the fire simulation.
type Config struct {
	Width  int
	Height int

	Seed int64

	Palette string

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   100,
		Height:  35,
		Seed:    42,
		Palette: "classic",
		Params: Params{
			SparkOdds: 32,
			SparkMin:  128,
			SparkMax:  core.MaxHeat,
			Pilot:     14,
			Workers:   1,
		},
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Values that do not parse are ignored; range checks happen in Validate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	ints := map[string]*int{
		"w":          &c.Width,
		"h":          &c.Height,
		"spark_odds": &c.Params.SparkOdds,
		"spark_min":  &c.Params.SparkMin,
		"spark_max":  &c.Params.SparkMax,
		"pilot":      &c.Params.Pilot,
		"workers":    &c.Params.Workers,
	}
	for key, dst := range ints {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["palette"]; ok && v != "" {
		c.Palette = v
	}
	return c
}

// Validate checks the config against the ranges the simulation relies on.
// Heat written by injection must stay inside the palette.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("fire %dx%d: %w", c.Width, c.Height, core.ErrInvalidSize)
	}
	if _, err := palette.Named(c.Palette); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return c.Params.Validate()
}

// Validate checks that the injection parameters keep heat in [0, MaxHeat].
func (p Params) Validate() error {
	switch {
	case p.SparkOdds < 1:
		return fmt.Errorf("%w: spark_odds %d < 1", ErrInvalidConfig, p.SparkOdds)
	case p.SparkMin < 0 || p.SparkMin > core.MaxHeat:
		return fmt.Errorf("%w: spark_min %d outside [0,%d]", ErrInvalidConfig, p.SparkMin, core.MaxHeat)
	case p.SparkMax < 0 || p.SparkMax > core.MaxHeat:
		return fmt.Errorf("%w: spark_max %d outside [0,%d]", ErrInvalidConfig, p.SparkMax, core.MaxHeat)
	case p.SparkMin > p.SparkMax:
		return fmt.Errorf("%w: spark_min %d > spark_max %d", ErrInvalidConfig, p.SparkMin, p.SparkMax)
	case p.Pilot < 0 || p.Pilot > core.MaxHeat:
		return fmt.Errorf("%w: pilot %d outside [0,%d]", ErrInvalidConfig, p.Pilot, core.MaxHeat)
	case p.Workers < 1:
		return fmt.Errorf("%w: workers %d < 1", ErrInvalidConfig, p.Workers)
	}
	return nil
}
