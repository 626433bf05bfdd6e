package core

import (
	"errors"
	"fmt"
)

// MaxHeat is the hottest temperature a cell may hold.
const MaxHeat = 255

var (
	// ErrInvalidSize reports a grid dimension that is zero or negative.
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrOutOfBounds reports an access outside the grid.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
)

// BoundsError describes an out-of-range (x, y) access on a HeatField.
type BoundsError struct {
	X, Y int
	W, H int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("heat field: (%d,%d) outside %dx%d", e.X, e.Y, e.W, e.H)
}

// Is lets errors.Is match a BoundsError against ErrOutOfBounds.
func (e *BoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// HeatField stores a 2D grid of temperatures in row-major order. Row 0 is
// the top of the field.
type HeatField struct {
	w, h int
	data []int16
}

// NewHeatField allocates a zeroed field with the given dimensions.
func NewHeatField(w, h int) (*HeatField, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("heat field %dx%d: %w", w, h, ErrInvalidSize)
	}
	return &HeatField{w: w, h: h, data: make([]int16, w*h)}, nil
}

// Width returns the number of columns.
func (f *HeatField) Width() int { return f.w }

// Height returns the number of rows.
func (f *HeatField) Height() int { return f.h }

// Size returns the field dimensions.
func (f *HeatField) Size() Size { return Size{W: f.w, H: f.h} }

// InBounds reports whether (x, y) addresses a cell.
func (f *HeatField) InBounds(x, y int) bool {
	return x >= 0 && x < f.w && y >= 0 && y < f.h
}

// Index returns the linear slice index for coordinates (x, y).
func (f *HeatField) Index(x, y int) int { return y*f.w + x }

// Get returns the temperature at (x, y). It panics with a *BoundsError when
// the coordinates are outside the field.
func (f *HeatField) Get(x, y int) int16 {
	f.mustContain(x, y)
	return f.data[f.Index(x, y)]
}

// Set stores v at (x, y). It panics with a *BoundsError when the coordinates
// are outside the field.
func (f *HeatField) Set(x, y int, v int16) {
	f.mustContain(x, y)
	f.data[f.Index(x, y)] = v
}

// Lookup is Get with an error result instead of a panic.
func (f *HeatField) Lookup(x, y int) (int16, error) {
	if !f.InBounds(x, y) {
		return 0, f.boundsError(x, y)
	}
	return f.data[f.Index(x, y)], nil
}

// Cells exposes the backing slice so passes can read/write values directly.
func (f *HeatField) Cells() []int16 { return f.data }

// Row returns the slice backing row y.
func (f *HeatField) Row(y int) []int16 {
	f.mustContain(0, y)
	return f.data[y*f.w : (y+1)*f.w]
}

// Clear fills the field with zeros.
func (f *HeatField) Clear() {
	for i := range f.data {
		f.data[i] = 0
	}
}

// Swap exchanges backing buffers with other, which must be the same size.
// Pointers to either field stay valid.
func (f *HeatField) Swap(other *HeatField) {
	f.mustMatch(other)
	f.data, other.data = other.data, f.data
}

// Sum returns the total heat held by the field.
func (f *HeatField) Sum() int {
	total := 0
	for _, v := range f.data {
		total += int(v)
	}
	return total
}

// ClampHeat limits v to [0, MaxHeat].
func ClampHeat(v int) int16 {
	if v < 0 {
		return 0
	}
	if v > MaxHeat {
		return MaxHeat
	}
	return int16(v)
}

func (f *HeatField) mustContain(x, y int) {
	if !f.InBounds(x, y) {
		panic(f.boundsError(x, y))
	}
}

func (f *HeatField) mustMatch(other *HeatField) {
	if other.w != f.w || other.h != f.h {
		panic(fmt.Sprintf("heat field: size mismatch %dx%d vs %dx%d", f.w, f.h, other.w, other.h))
	}
}

func (f *HeatField) boundsError(x, y int) *BoundsError {
	return &BoundsError{X: x, Y: y, W: f.w, H: f.h}
}
