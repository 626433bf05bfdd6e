package render

import (
	"image"
	"image/color"

	"mad-fire/internal/core"
)

// FillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette saturate to its last entry. When the
// palette is empty the buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Frame renders cells into a new image, scaling each cell to a scale×scale
// block.
func Frame(cells []uint8, size core.Size, palette []color.RGBA, scale int) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size.W*scale, size.H*scale))
	FrameInto(img, cells, size, palette, scale)
	return img
}

// FrameInto is Frame drawing into an existing image of the right bounds.
func FrameInto(img *image.RGBA, cells []uint8, size core.Size, palette []color.RGBA, scale int) {
	if scale <= 0 {
		scale = 1
	}
	if len(cells) != size.W*size.H {
		return
	}
	row := make([]byte, size.W*4)
	for y := 0; y < size.H; y++ {
		FillPaletteRGBA(row, cells[y*size.W:(y+1)*size.W], palette)
		for sy := 0; sy < scale; sy++ {
			line := img.Pix[(y*scale+sy)*img.Stride:]
			for x := 0; x < size.W; x++ {
				px := row[x*4 : x*4+4]
				for sx := 0; sx < scale; sx++ {
					copy(line[(x*scale+sx)*4:], px)
				}
			}
		}
	}
}
