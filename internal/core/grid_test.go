package core

import (
	"errors"
	"slices"
	"testing"
)

func TestNewHeatFieldRejectsInvalidSize(t *testing.T) {
	cases := []struct{ w, h int }{
		{0, 4},
		{4, 0},
		{-1, 3},
		{3, -2},
	}
	for _, tc := range cases {
		f, err := NewHeatField(tc.w, tc.h)
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewHeatField(%d,%d) err=%v, expected ErrInvalidSize", tc.w, tc.h, err)
		}
		if f != nil {
			t.Fatalf("NewHeatField(%d,%d) returned a field alongside an error", tc.w, tc.h)
		}
	}
}

func TestHeatFieldGetSet(t *testing.T) {
	f, err := NewHeatField(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if f.Width() != 3 || f.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 3x2", f.Width(), f.Height())
	}
	f.Set(2, 1, 200)
	if got := f.Get(2, 1); got != 200 {
		t.Fatalf("Get(2,1) = %d, expected 200", got)
	}
	if got := f.Cells()[f.Index(2, 1)]; got != 200 {
		t.Fatalf("backing slice at (2,1) = %d, expected 200", got)
	}
	if !slices.Equal(f.Row(1), []int16{0, 0, 200}) {
		t.Fatalf("Row(1) = %v", f.Row(1))
	}
}

func TestHeatFieldOutOfBoundsPanics(t *testing.T) {
	f, _ := NewHeatField(4, 3)
	coords := [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}, {4, 3}}
	for _, c := range coords {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("Get(%d,%d) did not panic", c[0], c[1])
				}
				be, ok := r.(*BoundsError)
				if !ok {
					t.Fatalf("panic value %T, expected *BoundsError", r)
				}
				if be.X != c[0] || be.Y != c[1] {
					t.Fatalf("BoundsError reports (%d,%d), expected (%d,%d)", be.X, be.Y, c[0], c[1])
				}
			}()
			f.Get(c[0], c[1])
		}()
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Set(%d,%d) did not panic", c[0], c[1])
				}
			}()
			f.Set(c[0], c[1], 1)
		}()
	}
}

func TestHeatFieldLookup(t *testing.T) {
	f, _ := NewHeatField(2, 2)
	f.Set(1, 1, 9)
	v, err := f.Lookup(1, 1)
	if err != nil || v != 9 {
		t.Fatalf("Lookup(1,1) = %d, %v", v, err)
	}
	_, err = f.Lookup(2, 0)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Lookup(2,0) err=%v, expected ErrOutOfBounds", err)
	}
	var be *BoundsError
	if !errors.As(err, &be) || be.W != 2 || be.H != 2 {
		t.Fatalf("Lookup(2,0) err=%#v, expected *BoundsError for 2x2", err)
	}
}

func TestHeatFieldSwapKeepsPointers(t *testing.T) {
	a, _ := NewHeatField(2, 1)
	b, _ := NewHeatField(2, 1)
	a.Set(0, 0, 5)
	b.Set(1, 0, 7)
	a.Swap(b)
	if a.Get(1, 0) != 7 || a.Get(0, 0) != 0 {
		t.Fatalf("after swap a = %v", a.Cells())
	}
	if b.Get(0, 0) != 5 {
		t.Fatalf("after swap b = %v", b.Cells())
	}
}

func TestHeatFieldSwapSizeMismatchPanics(t *testing.T) {
	a, _ := NewHeatField(2, 2)
	b, _ := NewHeatField(3, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("Swap with mismatched sizes did not panic")
		}
	}()
	a.Swap(b)
}

func TestClampHeat(t *testing.T) {
	cases := map[int]int16{-5: 0, 0: 0, 14: 14, 255: 255, 300: 255}
	for in, want := range cases {
		if got := ClampHeat(in); got != want {
			t.Fatalf("ClampHeat(%d) = %d, expected %d", in, got, want)
		}
	}
}
