package xform

import (
	"github.com/ironsheep/gif-transform/internal/gif"
)

// Crop is a crop request in screen coordinates. LeftOffset and TopOffset
// carry the originally requested anchor, used to rederive each frame's
// screen offset after cropping.
type Crop struct {
	X, Y int
	W, H int

	LeftOffset int
	TopOffset  int
}

// NewCrop returns a crop request for the screen rectangle at (x, y) with
// the given size, anchored at its own origin.
func NewCrop(x, y, w, h int) Crop {
	return Crop{X: x, Y: y, W: w, H: h, LeftOffset: x, TopOffset: y}
}

// Combine translates the request into f's local coordinates and clamps it
// to the frame, shrinking W/H to the overlapping region. Zero or negative
// W/H in the result means the request misses the frame on that axis.
func (c Crop) Combine(f *gif.Frame) Crop {
	out := c
	out.X = c.X - f.Left
	out.Y = c.Y - f.Top

	if out.X < 0 {
		out.W += out.X
		out.X = 0
	}
	if out.Y < 0 {
		out.H += out.Y
		out.Y = 0
	}
	if out.X+out.W > f.Width {
		out.W = f.Width - out.X
	}
	if out.Y+out.H > f.Height {
		out.H = f.Height - out.Y
	}
	return out
}

// CropFrame crops f to the requested rectangle. The kept region's rows
// are views into the existing pixel storage; only the row table is
// rebuilt, no pixel bytes move.
//
// When the request misses the frame entirely, preserveEmpty collapses f
// to a 1×1 frame holding its original first pixel, forced transparent, so
// the frame still exists for containers that require at least one pixel.
// Without preserveEmpty the frame becomes empty.
//
// Returns whether the frame retains any pixels; false means the caller
// may want to drop the frame from its stream.
func CropFrame(f *gif.Frame, crop Crop, preserveEmpty bool) bool {
	c := crop.Combine(f)

	var rows [][]byte
	switch {
	case c.W > 0 && c.H > 0:
		rows = make([][]byte, c.H)
		for j := 0; j < c.H; j++ {
			rows[j] = f.Rows[c.Y+j][c.X : c.X+c.W]
		}
		f.Left += c.X - crop.LeftOffset
		f.Top += c.Y - crop.TopOffset

	case preserveEmpty:
		c.W, c.H = 1, 1
		rows = [][]byte{f.Rows[0][:1]}
		f.Transparent = int(rows[0][0])

	default:
		c.W, c.H = 0, 0
		rows = nil
	}

	f.Rows = rows
	f.Width = c.W
	f.Height = c.H
	if rows == nil {
		f.ReleaseCompressed()
	}
	return f.Rows != nil
}
