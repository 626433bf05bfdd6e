package fire

import (
	"math/rand/v2"
	"slices"
	"testing"

	"mad-fire/internal/core"
)

// constSource always draws v (mod n).
type constSource int

func (c constSource) IntN(n int) int { return int(c) % n }

// seqSource replays draws in order, then repeats the last one.
type seqSource struct {
	draws []int
	i     int
}

func (s *seqSource) IntN(n int) int {
	v := s.draws[len(s.draws)-1]
	if s.i < len(s.draws) {
		v = s.draws[s.i]
		s.i++
	}
	return v % n
}

func newField(t *testing.T, w, h int) *core.HeatField {
	t.Helper()
	f, err := core.NewHeatField(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func randomField(t *testing.T, w, h int, seed int64) *core.HeatField {
	t.Helper()
	f := newField(t, w, h)
	rng := core.NewRNG(seed)
	for i := range f.Cells() {
		f.Cells()[i] = int16(rng.IntN(core.MaxHeat + 1))
	}
	return f
}

func TestVerticalDiffusionGolden(t *testing.T) {
	src := newField(t, 1, 5)
	src.Set(0, 2, 99)
	dst := newField(t, 1, 5)

	DiffuseVertical(dst, src, 1)

	want := []int16{0, 33, 33, 33, 0}
	if !slices.Equal(dst.Cells(), want) {
		t.Fatalf("vertical diffusion = %v, expected %v", dst.Cells(), want)
	}
	if src.Get(0, 2) != 99 {
		t.Fatal("diffusion modified its source")
	}
}

func TestDiffusionBoundaryWeights(t *testing.T) {
	src := newField(t, 4, 1)
	copy(src.Cells(), []int16{90, 30, 60, 12})
	dst := newField(t, 4, 1)

	DiffuseHorizontal(dst, src, 1)

	want := []int16{
		(2*90 + 30) / 3,
		(90 + 30 + 60) / 3,
		(30 + 60 + 12) / 3,
		(60 + 2*12) / 3,
	}
	if !slices.Equal(dst.Cells(), want) {
		t.Fatalf("horizontal diffusion = %v, expected %v", dst.Cells(), want)
	}
}

func TestDiffusionSingleCellLine(t *testing.T) {
	src := newField(t, 3, 1)
	copy(src.Cells(), []int16{9, 200, 30})
	dst := newField(t, 3, 1)

	DiffuseVertical(dst, src, 1)

	if !slices.Equal(dst.Cells(), src.Cells()) {
		t.Fatalf("vertical pass on height 1 = %v, expected copy of %v", dst.Cells(), src.Cells())
	}
}

func TestDiffusionIsAverageOfNeighbors(t *testing.T) {
	src := randomField(t, 9, 7, 3)
	dst := newField(t, 9, 7)
	DiffuseVertical(dst, src, 1)

	w, h := src.Width(), src.Height()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			var want int
			switch y {
			case 0:
				want = (2*int(src.Get(x, 0)) + int(src.Get(x, 1))) / 3
			case h - 1:
				want = (int(src.Get(x, h-2)) + 2*int(src.Get(x, h-1))) / 3
			default:
				want = (int(src.Get(x, y-1)) + int(src.Get(x, y)) + int(src.Get(x, y+1))) / 3
			}
			if int(dst.Get(x, y)) != want {
				t.Fatalf("(%d,%d) = %d, expected %d", x, y, dst.Get(x, y), want)
			}
		}
	}
}

func TestDiffusionNeverCreatesHeat(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		src := randomField(t, 11, 6, seed)
		mid := newField(t, 11, 6)
		out := newField(t, 11, 6)

		DiffuseVertical(mid, src, 1)
		if mid.Sum() > src.Sum() {
			t.Fatalf("seed %d: vertical pass raised sum %d -> %d", seed, src.Sum(), mid.Sum())
		}
		DiffuseHorizontal(out, mid, 1)
		if out.Sum() > mid.Sum() {
			t.Fatalf("seed %d: horizontal pass raised sum %d -> %d", seed, mid.Sum(), out.Sum())
		}
		for i, v := range out.Cells() {
			if v < 0 || v > core.MaxHeat {
				t.Fatalf("seed %d: cell %d = %d outside [0,%d]", seed, i, v, core.MaxHeat)
			}
		}
	}
}

func TestParallelDiffusionMatchesSerial(t *testing.T) {
	src := randomField(t, 37, 23, 11)
	for _, workers := range []int{2, 3, 8, 64} {
		serial := newField(t, 37, 23)
		parallel := newField(t, 37, 23)

		DiffuseVertical(serial, src, 1)
		DiffuseVertical(parallel, src, workers)
		if !slices.Equal(serial.Cells(), parallel.Cells()) {
			t.Fatalf("vertical pass with %d workers differs from serial", workers)
		}

		DiffuseHorizontal(serial, src, 1)
		DiffuseHorizontal(parallel, src, workers)
		if !slices.Equal(serial.Cells(), parallel.Cells()) {
			t.Fatalf("horizontal pass with %d workers differs from serial", workers)
		}
	}
}

func TestScrollShiftsRowsUp(t *testing.T) {
	f := randomField(t, 6, 5, 5)
	before := slices.Clone(f.Cells())
	w, h := f.Width(), f.Height()

	Scroll(f)

	for y := 0; y < h-1; y++ {
		want := before[(y+1)*w : (y+2)*w]
		if !slices.Equal(f.Row(y), want) {
			t.Fatalf("row %d = %v, expected pre-scroll row %d %v", y, f.Row(y), y+1, want)
		}
	}
	for x := 0; x < w; x++ {
		if f.Get(x, h-1) != 0 {
			t.Fatalf("bottom row not cleared: %v", f.Row(h-1))
		}
	}
}

func TestScrollSingleRowZeroes(t *testing.T) {
	f := newField(t, 4, 1)
	copy(f.Cells(), []int16{1, 2, 3, 4})
	Scroll(f)
	if f.Sum() != 0 {
		t.Fatalf("height-1 scroll left %v", f.Cells())
	}
}

func TestInjectPilotFloor(t *testing.T) {
	f := newField(t, 5, 4)
	Inject(f, constSource(1), DefaultConfig().Params)

	want := []int16{0, 14, 14, 14, 0}
	if !slices.Equal(f.Row(3), want) {
		t.Fatalf("bottom row = %v, expected %v", f.Row(3), want)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if f.Get(x, y) != 0 {
				t.Fatalf("injection touched (%d,%d)", x, y)
			}
		}
	}
}

func TestInjectNeverLowersHotCells(t *testing.T) {
	f := newField(t, 6, 2)
	copy(f.Row(1), []int16{0, 14, 200, 3, 90, 0})
	Inject(f, constSource(1), DefaultConfig().Params)

	want := []int16{0, 14, 200, 14, 90, 0}
	if !slices.Equal(f.Row(1), want) {
		t.Fatalf("bottom row = %v, expected %v", f.Row(1), want)
	}
}

func TestInjectSparks(t *testing.T) {
	f := newField(t, 5, 2)
	// Column 1 ignites with spark draw 0, column 2 stays pilot, column 3
	// ignites with spark draw 127.
	src := &seqSource{draws: []int{0, 0, 5, 0, 127}}
	Inject(f, src, DefaultConfig().Params)

	want := []int16{0, 128, 14, 255, 0}
	if !slices.Equal(f.Row(1), want) {
		t.Fatalf("bottom row = %v, expected %v", f.Row(1), want)
	}
}

func TestInjectLeavesEdgeColumns(t *testing.T) {
	f := newField(t, 8, 3)
	f.Set(0, 2, 3)
	f.Set(7, 2, 250)
	p := DefaultConfig().Params
	p.SparkOdds = 1
	for seed := int64(0); seed < 10; seed++ {
		Inject(f, core.NewRNG(seed), p)
		if f.Get(0, 2) != 3 || f.Get(7, 2) != 250 {
			t.Fatalf("edge columns changed: %v", f.Row(2))
		}
	}
}

func TestInjectNarrowFieldIsNoop(t *testing.T) {
	for _, w := range []int{1, 2} {
		f := newField(t, w, 2)
		Inject(f, constSource(0), DefaultConfig().Params)
		if f.Sum() != 0 {
			t.Fatalf("width %d: injection wrote %v", w, f.Cells())
		}
	}
}

func TestInjectZeroParamsDoesNotPanic(t *testing.T) {
	f := newField(t, 6, 2)
	rng := rand.New(rand.NewPCG(1, 2))
	Inject(f, rng, Params{})
	if f.Sum() != 0 {
		t.Fatalf("zero params injected heat: %v", f.Row(1))
	}

	field, scratch := newField(t, 6, 3), newField(t, 6, 3)
	Tick(field, scratch, rng, Params{Pilot: 20})
	if field.Sum() == 0 {
		t.Fatal("pilot floor should still heat the field without sparks")
	}
}

func TestInjectInvertedSparkRange(t *testing.T) {
	f := newField(t, 4, 1)
	p := Params{SparkOdds: 1, SparkMin: 200, SparkMax: 100}
	Inject(f, constSource(0), p)
	want := []int16{0, 200, 200, 0}
	if !slices.Equal(f.Row(0), want) {
		t.Fatalf("bottom row = %v, expected %v", f.Row(0), want)
	}
}

func TestTickGolden(t *testing.T) {
	field := newField(t, 5, 4)
	scratch := newField(t, 5, 4)

	Tick(field, scratch, constSource(1), DefaultConfig().Params)

	want := [][]int16{
		{0, 0, 0, 0, 0},
		{1, 2, 4, 2, 1},
		{3, 6, 9, 6, 3},
		{0, 0, 0, 0, 0},
	}
	for y, row := range want {
		if !slices.Equal(field.Row(y), row) {
			t.Fatalf("row %d = %v, expected %v", y, field.Row(y), row)
		}
	}
}

func TestTickRestStateWithoutInjection(t *testing.T) {
	field := newField(t, 7, 6)
	scratch := newField(t, 7, 6)
	p := DefaultConfig().Params
	p.Pilot = 0

	for i := 0; i < 5; i++ {
		Tick(field, scratch, constSource(1), p)
	}
	if field.Sum() != 0 {
		t.Fatalf("cold field heated up without sparks: %v", field.Cells())
	}
}

func TestTickStaysInPaletteRange(t *testing.T) {
	field := newField(t, 16, 12)
	scratch := newField(t, 16, 12)
	p := DefaultConfig().Params
	p.SparkOdds = 1
	p.SparkMin = core.MaxHeat
	rng := core.NewRNG(9)

	for i := 0; i < 50; i++ {
		Tick(field, scratch, rng, p)
		for _, v := range field.Cells() {
			if v < 0 || v > core.MaxHeat {
				t.Fatalf("tick %d produced %d", i, v)
			}
		}
	}
}
