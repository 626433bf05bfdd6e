package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends a key=value pair, rejecting values without '='.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64
	HUD   int
	Set   KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "fire", Scale: 8, TPS: 30, Seed: 42, HUD: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUD, "hud", c.HUD, "parameter panel width in pixels (0 hides it)")
	fs.Var(&c.Set, "set", "simulation parameter in key=value form (repeatable), e.g. -set w=160 -set palette=gas")
}

// SimConfig merges the -set overrides with the seed into the map handed to
// a sim factory. An explicit -set seed=N wins over -seed.
func (c *Config) SimConfig() map[string]string {
	cfg := map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}
	for _, kv := range c.Set {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		cfg[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return cfg
}

// EffectiveSeed returns the seed the sim is built with: a parsable
// -set seed=N, otherwise -seed.
func (c *Config) EffectiveSeed() int64 {
	if v, err := strconv.ParseInt(c.SimConfig()["seed"], 10, 64); err == nil {
		return v
	}
	return c.Seed
}
