package raster

import (
	"io"

	"github.com/iburimskiy/spidr-form/internal/particles"
)

// Snapshot renders frames of field with the pointer resting at its centre
// and writes the last one as a PNG. At least one frame is always drawn.
func Snapshot(field *particles.Field, frames int, w io.Writer) error {
	width, height := field.Size()
	field.PointerMove(width/2, height/2, 0, 0)

	c := NewCanvas(int(width), int(height))
	for i := 0; i < max(frames, 1); i++ {
		if !field.RenderFrame(c) {
			break
		}
	}
	return c.WritePNG(w)
}
