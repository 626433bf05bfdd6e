// Package palette maps heat values to display colors.
package palette

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/crazy3lf/colorconv"
)

// Size is the number of entries in every built-in palette, one per heat value.
const Size = 256

// Palette is an ordered color table indexed by heat.
type Palette []color.RGBA

// At returns the color for heat v. Negative values map to the first entry and
// values past the end saturate to the last entry.
func (p Palette) At(v int) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{}
	}
	if v < 0 {
		v = 0
	}
	if v >= len(p) {
		v = len(p) - 1
	}
	return p[v]
}

// classicRamp is the black to red to yellow ramp; heat 64 and above is white.
var classicRamp = [][3]uint8{
	{0, 0, 0}, {0, 4, 4}, {0, 16, 20}, {0, 28, 36},
	{0, 32, 44}, {0, 36, 48}, {60, 24, 32}, {100, 16, 16},
	{132, 12, 12}, {160, 8, 8}, {192, 8, 8}, {220, 4, 4},
	{252, 0, 0}, {252, 0, 0}, {252, 12, 0}, {252, 28, 0},
	{252, 40, 0}, {252, 52, 0}, {252, 64, 0}, {252, 80, 0},
	{252, 92, 0}, {252, 104, 0}, {252, 116, 0}, {252, 132, 0},
	{252, 144, 0}, {252, 156, 0}, {252, 156, 0}, {252, 160, 0},
	{252, 160, 0}, {252, 164, 0}, {252, 168, 0}, {252, 168, 0},
	{252, 172, 0}, {252, 176, 0}, {252, 176, 0}, {252, 180, 0},
	{252, 180, 0}, {252, 184, 0}, {252, 188, 0}, {252, 188, 0},
	{252, 192, 0}, {252, 196, 0}, {252, 196, 0}, {252, 200, 0},
	{252, 204, 0}, {252, 204, 0}, {252, 208, 0}, {252, 212, 0},
	{252, 212, 0}, {252, 216, 0}, {252, 220, 0}, {252, 220, 0},
	{252, 224, 0}, {252, 228, 0}, {252, 228, 0}, {252, 232, 0},
	{252, 232, 0}, {252, 236, 0}, {252, 240, 0}, {252, 240, 0},
	{252, 244, 0}, {252, 248, 0}, {252, 248, 0}, {252, 252, 0},
}

// Classic returns the default fire palette.
func Classic() Palette {
	p := make(Palette, Size)
	for i := range p {
		if i < len(classicRamp) {
			c := classicRamp[i]
			p[i] = color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
			continue
		}
		p[i] = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return p
}

// Gradient builds a palette that sweeps hue from hueFrom to hueTo (degrees)
// over the first ramp entries while brightening from black. Saturation then
// drains so the hottest entries reach white, like the classic ramp.
func Gradient(hueFrom, hueTo float64, ramp int) (Palette, error) {
	if ramp < 2 || ramp > Size {
		return nil, fmt.Errorf("palette ramp %d outside [2,%d]", ramp, Size)
	}
	p := make(Palette, Size)
	whiteAt := ramp + ramp/2
	for i := range p {
		t := float64(i) / float64(ramp-1)
		if t > 1 {
			t = 1
		}
		hue := hueFrom + (hueTo-hueFrom)*t
		for hue < 0 {
			hue += 360
		}
		for hue >= 360 {
			hue -= 360
		}
		sat := 1.0
		if i >= ramp {
			sat = 1 - float64(i-ramp)/float64(whiteAt-ramp)
			if sat < 0 {
				sat = 0
			}
		}
		r, g, b, err := colorconv.HSVToRGB(hue, sat, t)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		p[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return p, nil
}

type gradientSpec struct {
	from, to float64
	ramp     int
}

var gradients = map[string]gradientSpec{
	"ember": {from: 0, to: 50, ramp: 96},
	"gas":   {from: 240, to: 180, ramp: 80},
	"toxic": {from: 120, to: 70, ramp: 80},
}

// Names lists the palettes accepted by Named.
func Names() []string {
	names := []string{"classic"}
	for name := range gradients {
		names = append(names, name)
	}
	sort.Strings(names[1:])
	return names
}

// Named returns the palette registered under name.
func Named(name string) (Palette, error) {
	if name == "" || name == "classic" {
		return Classic(), nil
	}
	g, ok := gradients[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q (have %v)", name, Names())
	}
	return Gradient(g.from, g.to, g.ramp)
}
