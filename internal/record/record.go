// Package record captures simulation frames to an MJPEG AVI file.
package record

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	"mad-fire/internal/core"
	"mad-fire/internal/render"

	"github.com/icza/mjpeg"
)

// Options controls a recording.
type Options struct {
	Frames  int
	FPS     int
	Scale   int
	Quality int
}

// DefaultOptions returns a ten second clip at 30 FPS.
func DefaultOptions() Options {
	return Options{Frames: 300, FPS: 30, Scale: 4, Quality: 90}
}

func (o Options) validate() error {
	switch {
	case o.Frames <= 0:
		return fmt.Errorf("record: frames %d must be positive", o.Frames)
	case o.FPS <= 0:
		return fmt.Errorf("record: fps %d must be positive", o.FPS)
	case o.Scale <= 0:
		return fmt.Errorf("record: scale %d must be positive", o.Scale)
	case o.Quality < 1 || o.Quality > 100:
		return fmt.Errorf("record: quality %d outside [1,100]", o.Quality)
	}
	return nil
}

// Observer is called after each recorded frame with its index.
type Observer func(frame int)

// Record writes opts.Frames frames of sim to path. Each frame shows the
// current generation and then steps the sim, matching the live front-ends.
func Record(path string, sim core.Sim, palette []color.RGBA, opts Options, observe Observer) (err error) {
	if err := opts.validate(); err != nil {
		return err
	}
	size := sim.Size()
	w, h := size.W*opts.Scale, size.H*opts.Scale
	aw, err := mjpeg.New(path, int32(w), int32(h), int32(opts.FPS))
	if err != nil {
		return fmt.Errorf("record: open %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, aw.Close())
	}()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	jpegOpts := &jpeg.Options{Quality: opts.Quality}
	var buf bytes.Buffer
	for i := 0; i < opts.Frames; i++ {
		render.FrameInto(img, sim.Cells(), size, palette, opts.Scale)
		buf.Reset()
		if err := jpeg.Encode(&buf, img, jpegOpts); err != nil {
			return fmt.Errorf("record: encode frame %d: %w", i, err)
		}
		if err := aw.AddFrame(buf.Bytes()); err != nil {
			return fmt.Errorf("record: write frame %d: %w", i, err)
		}
		if observe != nil {
			observe(i)
		}
		sim.Step()
	}
	return nil
}
