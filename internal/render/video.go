package render

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"image/jpeg"

	"github.com/geostanley/advent-for-code/internal/core"
	"github.com/icza/mjpeg"
)

// WriteVideo composes frames into an MJPEG AVI at path. Frames of different
// extents are aligned onto their common bounds first.
func WriteVideo(path string, frames []core.Frame, palette []color.RGBA, fps, scale int) error {
	if len(frames) == 0 {
		return errors.New("no frames to encode")
	}
	if fps <= 0 {
		fps = 7
	}
	if scale <= 0 {
		scale = 1
	}
	aligned := core.Align(frames)
	w, h := aligned[0].W*scale, aligned[0].H*scale
	if w == 0 || h == 0 {
		return errors.New("frames are empty")
	}

	aw, err := mjpeg.New(path, int32(w), int32(h), int32(fps))
	if err != nil {
		return fmt.Errorf("create video: %w", err)
	}

	var buf bytes.Buffer
	opts := &jpeg.Options{Quality: 90}
	for i, f := range aligned {
		buf.Reset()
		if err := jpeg.Encode(&buf, Image(f, palette, scale), opts); err != nil {
			aw.Close()
			return fmt.Errorf("encode frame %d: %w", i, err)
		}
		if err := aw.AddFrame(buf.Bytes()); err != nil {
			aw.Close()
			return fmt.Errorf("add frame %d: %w", i, err)
		}
	}
	return aw.Close()
}
