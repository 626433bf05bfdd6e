package fire

import (
	"mad-fire/internal/core"

	"golang.org/x/sync/errgroup"
)

// Inject heats the bottom row. Each interior column either catches a spark
// (one chance in SparkOdds) or is raised to the pilot floor. The two edge
// columns are left alone. p should pass Validate; a non-positive SparkOdds
// disables sparks and an inverted spark range always yields SparkMin.
func Inject(f *core.HeatField, rng core.IntSource, p Params) {
	w := f.Width()
	row := f.Row(f.Height() - 1)
	pilot := int16(p.Pilot)
	span := p.SparkMax - p.SparkMin + 1
	for x := 1; x < w-1; x++ {
		if p.SparkOdds > 0 && rng.IntN(p.SparkOdds) == 0 {
			spark := p.SparkMin
			if span > 0 {
				spark += rng.IntN(span)
			}
			row[x] = core.ClampHeat(spark)
			continue
		}
		if row[x] < pilot {
			row[x] = pilot
		}
	}
}

// DiffuseVertical writes the column-wise 3-cell average of src into dst.
// dst and src must be distinct fields of the same size.
func DiffuseVertical(dst, src *core.HeatField, workers int) {
	w, h := src.Width(), src.Height()
	in, out := src.Cells(), dst.Cells()
	forLines(w, workers, func(x int) {
		blurLine(out, in, x, w, h)
	})
}

// DiffuseHorizontal writes the row-wise 3-cell average of src into dst.
// dst and src must be distinct fields of the same size.
func DiffuseHorizontal(dst, src *core.HeatField, workers int) {
	w, h := src.Width(), src.Height()
	in, out := src.Cells(), dst.Cells()
	forLines(h, workers, func(y int) {
		blurLine(out, in, y*w, 1, w)
	})
}

// blurLine averages the n cells starting at start and spaced stride apart.
// Boundary cells count themselves twice. A single cell is copied unchanged.
func blurLine(out, in []int16, start, stride, n int) {
	if n == 1 {
		out[start] = in[start]
		return
	}
	last := start + (n-1)*stride
	out[start] = int16((2*int(in[start]) + int(in[start+stride])) / 3)
	for i := start + stride; i < last; i += stride {
		out[i] = int16((int(in[i-stride]) + int(in[i]) + int(in[i+stride])) / 3)
	}
	out[last] = int16((int(in[last-stride]) + 2*int(in[last])) / 3)
}

// forLines calls fn for every line index in [0, n), split into contiguous
// chunks across up to workers goroutines.
func forLines(n, workers int, fn func(i int)) {
	if workers <= 1 || n < 2 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				fn(i)
			}
			return nil
		})
	}
	// Blur workers cannot fail; Wait only joins them.
	_ = g.Wait()
}

// Scroll moves every row up by one and zeroes the bottom row. It is the
// field's only heat sink besides rounding in diffusion.
func Scroll(f *core.HeatField) {
	cells := f.Cells()
	w := f.Width()
	copy(cells, cells[w:])
	clear(cells[len(cells)-w:])
}

// Tick runs one full generation on field: injection, vertical diffusion,
// horizontal diffusion, then scroll. scratch must match field's size; its
// contents are overwritten. p should pass Validate; see Inject for how
// out-of-range spark settings degrade.
func Tick(field, scratch *core.HeatField, rng core.IntSource, p Params) {
	Inject(field, rng, p)
	DiffuseVertical(scratch, field, p.Workers)
	field.Swap(scratch)
	DiffuseHorizontal(scratch, field, p.Workers)
	field.Swap(scratch)
	Scroll(field)
}
