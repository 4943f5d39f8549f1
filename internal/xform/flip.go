package xform

import (
	"fmt"

	"github.com/ironsheep/gif-transform/internal/gif"
)

// Flip mirrors f in place and reflects its offset against the screen.
// Horizontal flips reverse each row's bytes through one scratch row;
// vertical flips reverse the row table only, touching no pixel bytes.
// The two directions are independent: callers wanting both call twice.
func Flip(f *gif.Frame, screenWidth, screenHeight int, vertical bool) {
	if !vertical {
		buffer := make([]byte, f.Width)
		for _, row := range f.Rows {
			copy(buffer, row)
			for x := 0; x < f.Width; x++ {
				row[f.Width-1-x] = buffer[x]
			}
		}
		f.Left = screenWidth - (f.Left + f.Width)
		return
	}

	scratch := make([][]byte, f.Height)
	copy(scratch, f.Rows)
	for y := 0; y < f.Height; y++ {
		f.Rows[y] = scratch[f.Height-1-y]
	}
	f.Top = screenHeight - (f.Top + f.Height)
}

// Rotate turns f by quarterTurns quarter turns clockwise. Only 1 (90°)
// and 3 (270°) are supported; anything else is a programmer error and
// panics. The pixels are rewritten into a fresh buffer, width and height
// swap, the offset is rederived against the screen, and any cached
// compressed form is invalidated.
func Rotate(f *gif.Frame, screenWidth, screenHeight int, quarterTurns int) {
	if quarterTurns != 1 && quarterTurns != 3 {
		panic(fmt.Sprintf("xform: rotation by %d quarter turns not supported", quarterTurns))
	}

	width, height := f.Width, f.Height
	pix := make([]byte, width*height)
	n := 0

	if quarterTurns == 1 {
		for x := 0; x < width; x++ {
			for y := height - 1; y >= 0; y-- {
				pix[n] = f.Rows[y][x]
				n++
			}
		}
		left := f.Left
		f.Left = screenHeight - (f.Top + height)
		f.Top = left
	} else {
		for x := width - 1; x >= 0; x-- {
			for y := 0; y < height; y++ {
				pix[n] = f.Rows[y][x]
				n++
			}
		}
		top := f.Top
		f.Top = screenWidth - (f.Left + width)
		f.Left = top
	}

	f.Width, f.Height = height, width
	f.SetPixels(pix)
	f.ReleaseCompressed()
}
