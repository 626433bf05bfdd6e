// Package term draws simulations on a character terminal through tcell.
//
// Each terminal cell shows two vertically stacked grid cells using an upper
// half block: the foreground paints the upper cell and the background paints
// the lower one.
package term

import (
	"image/color"

	"mad-fire/internal/core"

	"github.com/gdamore/tcell/v2"
)

// HalfBlock is the glyph used for every grid cell pair.
const HalfBlock = '▀'

// Renderer maps display cells to terminal colors.
type Renderer struct {
	colors []tcell.Color
	black  tcell.Color
}

// NewRenderer precomputes terminal colors for palette.
func NewRenderer(palette []color.RGBA) *Renderer {
	r := &Renderer{
		colors: make([]tcell.Color, len(palette)),
		black:  tcell.NewRGBColor(0, 0, 0),
	}
	for i, c := range palette {
		r.colors[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return r
}

// Color returns the terminal color for heat v, saturating past the end of
// the palette.
func (r *Renderer) Color(v uint8) tcell.Color {
	if len(r.colors) == 0 {
		return r.black
	}
	idx := int(v)
	if idx >= len(r.colors) {
		idx = len(r.colors) - 1
	}
	return r.colors[idx]
}

// Rows returns the number of terminal rows needed for a grid of height h.
func Rows(h int) int { return (h + 1) / 2 }

// GridSize returns the grid dimensions that fill a terminal of cols×rows,
// leaving reserved rows free at the bottom.
func GridSize(cols, rows, reserved int) core.Size {
	rows -= reserved
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return core.Size{W: cols, H: rows * 2}
}

// Draw paints cells onto screen starting at the top-left corner. Cells that
// fall outside the screen are skipped. An odd bottom row pairs with black.
func (r *Renderer) Draw(screen tcell.Screen, cells []uint8, size core.Size) {
	if len(cells) != size.W*size.H {
		return
	}
	sw, sh := screen.Size()
	cols := min(size.W, sw)
	rows := min(Rows(size.H), sh)
	for ty := 0; ty < rows; ty++ {
		upper := 2 * ty
		lower := upper + 1
		for x := 0; x < cols; x++ {
			fg := r.Color(cells[upper*size.W+x])
			bg := r.black
			if lower < size.H {
				bg = r.Color(cells[lower*size.W+x])
			}
			style := tcell.StyleDefault.Foreground(fg).Background(bg)
			screen.SetContent(x, ty, HalfBlock, nil, style)
		}
	}
}

// DrawText writes s at (x, y) in style, clipped to the screen width.
func DrawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	sw, sh := screen.Size()
	if y < 0 || y >= sh {
		return
	}
	for _, ch := range s {
		if x >= sw {
			return
		}
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
