package xform

import (
	"math"

	"github.com/ironsheep/gif-transform/internal/diag"
	"github.com/ironsheep/gif-transform/internal/gif"
)

// 10-bit fixed point. The exact rounding here (round half up on unscale)
// is load-bearing: frames of one animation must round identically or
// their relative placement drifts.
const scaleShift = 10

func scaled(v int) int         { return v << scaleShift }
func unscaleNoRound(v int) int { return v >> scaleShift }
func unscale(v int) int        { return unscaleNoRound(v + 1<<(scaleShift-1)) }

// ScaleFrame resizes f by the given per-axis factors using fixed-point
// box-replication scan conversion.
//
// The target geometry comes from the frame's four screen-relative edges,
// each scaled and rounded independently: new width and height are edge
// deltas, never width×factor. Scaling the screen-relative edges is what
// keeps overlapping frames of an animation consistent with each other;
// scaling frame-local extents rounds each frame on its own and opens
// seams. Width and height are clamped to a minimum of 1.
//
// A frame held only in compressed form is uncompressed for the
// conversion and recompressed afterward. Codec failures are returned;
// an unrepresentable target size is fatal through rep.
func ScaleFrame(f *gif.Frame, xfactor, yfactor float64, rep diag.Reporter) error {
	wasCompressed := f.Rows == nil

	scaledXStep := int(float64(scaled(1))*xfactor + 0.5)
	scaledYStep := int(float64(scaled(1))*yfactor + 0.5)

	newLeft := unscale(scaledXStep * f.Left)
	newTop := unscale(scaledYStep * f.Top)
	newRight := unscale(scaledXStep * (f.Left + f.Width))
	newBottom := unscale(scaledYStep * (f.Top + f.Height))

	newWidth := newRight - newLeft
	newHeight := newBottom - newTop

	if newWidth <= 0 {
		newWidth = 1
		newRight = newLeft + 1
	}
	if newHeight <= 0 {
		newHeight = 1
		newBottom = newTop + 1
	}
	if newWidth > unscaleNoRound(math.MaxInt32) || newHeight > unscaleNoRound(math.MaxInt32) {
		rep.Fatal("new image size %dx%d is too big to handle", newWidth, newHeight)
		return nil
	}

	if wasCompressed {
		if err := f.Uncompress(); err != nil {
			return err
		}
	}
	pix := make([]byte, newWidth*newHeight)

	newY := newTop
	scaledNewY := scaledYStep * f.Top

	for j := 0; j < f.Height; j++ {
		inLine := f.Rows[j]

		scaledNewY += scaledYStep
		// The last source row lands exactly on the computed bottom edge,
		// absorbing accumulated rounding drift.
		if j == f.Height-1 {
			scaledNewY = scaled(newBottom)
		}

		if scaledNewY < scaled(newY+1) {
			continue
		}
		yDelta := unscale(scaledNewY - scaled(newY))

		newX := newLeft
		scaledNewX := scaledXStep * f.Left
		out := (newY - newTop) * newWidth

		for i := 0; i < f.Width; i++ {
			scaledNewX += scaledXStep
			if i == f.Width-1 {
				scaledNewX = scaled(newRight)
			}

			xDelta := unscale(scaledNewX - scaled(newX))

			for ; xDelta > 0; newX, xDelta, out = newX+1, xDelta-1, out+1 {
				for yinc := 0; yinc < yDelta; yinc++ {
					pix[out+yinc*newWidth] = inLine[i]
				}
			}
		}

		newY += yDelta
	}

	oldLeft, oldTop := f.Left, f.Top
	f.ReleaseCompressed()
	f.Width = newWidth
	f.Height = newHeight
	f.Left = unscale(scaledXStep * oldLeft)
	f.Top = unscale(scaledYStep * oldTop)
	f.SetPixels(pix)

	if wasCompressed {
		if err := f.Compress(); err != nil {
			return err
		}
		f.ReleaseRows()
	}
	return nil
}
