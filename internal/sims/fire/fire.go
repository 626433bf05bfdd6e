package fire

import (
	"fmt"
	"image/color"

	"mad-fire/internal/core"
	"mad-fire/internal/palette"
)

// Fire is the classic scrolling fire effect: heat injected along the bottom
// row, box-blurred vertically then horizontally, and scrolled upward.
type Fire struct {
	cfg Config

	field   *core.HeatField
	scratch *core.HeatField
	display []uint8
	palette palette.Palette

	rng  core.IntSource
	tick int
}

// New returns a fire simulation with the provided dimensions using defaults.
func New(w, h int) (*Fire, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a fire simulation configured from cfg. The field
// starts cold and the RNG is seeded from cfg.Seed.
func NewWithConfig(cfg Config) (*Fire, error) {
	return NewWithSource(cfg, core.NewRNG(cfg.Seed))
}

// NewWithSource is NewWithConfig with an explicit random source. Reset
// replaces rng with a fresh seeded RNG.
func NewWithSource(cfg Config, rng core.IntSource) (*Fire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	field, err := core.NewHeatField(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	scratch, err := core.NewHeatField(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	pal, err := palette.Named(cfg.Palette)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &Fire{
		cfg:     cfg,
		field:   field,
		scratch: scratch,
		display: make([]uint8, cfg.Width*cfg.Height),
		palette: pal,
		rng:     rng,
	}, nil
}

// Name returns the simulation identifier.
func (f *Fire) Name() string { return "fire" }

// Size reports the grid dimensions.
func (f *Fire) Size() core.Size { return f.field.Size() }

// Cells exposes the display buffer: one byte of heat per cell.
func (f *Fire) Cells() []uint8 { return f.display }

// Field exposes the heat field for read access between steps.
func (f *Fire) Field() *core.HeatField { return f.field }

// Palette exposes the color palette used for rendering.
func (f *Fire) Palette() []color.RGBA { return f.palette }

// Config returns the active configuration.
func (f *Fire) Config() Config { return f.cfg }

// Tick returns the number of steps since the last reset.
func (f *Fire) Tick() int { return f.tick }

// Reset extinguishes the field and reseeds the RNG. A zero seed falls back
// to the configured seed.
func (f *Fire) Reset(seed int64) {
	if seed == 0 {
		seed = f.cfg.Seed
	}
	f.rng = core.NewRNG(seed)
	f.field.Clear()
	f.scratch.Clear()
	f.tick = 0
	f.refreshDisplay()
}

// Step advances the fire by one generation.
func (f *Fire) Step() {
	Tick(f.field, f.scratch, f.rng, f.cfg.Params)
	f.tick++
	f.refreshDisplay()
}

func (f *Fire) refreshDisplay() {
	for i, v := range f.field.Cells() {
		f.display[i] = uint8(core.ClampHeat(int(v)))
	}
}

func init() {
	core.Register("fire", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
