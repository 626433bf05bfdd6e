// Package stats summarizes heat fields for terminal reports.
package stats

import (
	"mad-fire/internal/core"

	"github.com/guptarohit/asciigraph"
)

// RowMeans returns the mean heat of each row, top row first.
func RowMeans(f *core.HeatField) []float64 {
	w, h := f.Width(), f.Height()
	means := make([]float64, h)
	for y := 0; y < h; y++ {
		total := 0
		for _, v := range f.Row(y) {
			total += int(v)
		}
		means[y] = float64(total) / float64(w)
	}
	return means
}

// Profile accumulates RowMeans over several samples.
type Profile struct {
	sums    []float64
	samples int
}

// Add folds one field sample into the profile.
func (p *Profile) Add(f *core.HeatField) {
	means := RowMeans(f)
	if p.sums == nil {
		p.sums = make([]float64, len(means))
	}
	for i, m := range means {
		if i < len(p.sums) {
			p.sums[i] += m
		}
	}
	p.samples++
}

// Samples returns how many fields were added.
func (p *Profile) Samples() int { return p.samples }

// Means returns the averaged per-row heat, ordered from the base of the
// fire upward so plots read left to right as height increases.
func (p *Profile) Means() []float64 {
	out := make([]float64, len(p.sums))
	if p.samples == 0 {
		return out
	}
	for i, s := range p.sums {
		out[len(out)-1-i] = s / float64(p.samples)
	}
	return out
}

// Plot renders values as an ASCII line chart.
func Plot(values []float64, height int, caption string) string {
	if len(values) == 0 {
		return ""
	}
	if height <= 0 {
		height = 10
	}
	return asciigraph.Plot(values, asciigraph.Height(height), asciigraph.Caption(caption))
}
