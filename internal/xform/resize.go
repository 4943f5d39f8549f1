package xform

import (
	"github.com/ironsheep/gif-transform/internal/diag"
	"github.com/ironsheep/gif-transform/internal/gif"
)

// ResizeStream scales every frame of st toward the requested screen size.
// A dimension <= 0 is unset and derived from the other axis (uniform
// scale); both unset is a no-op. With fit, the stream is never upscaled
// and a differing aspect ratio is resolved by the smaller factor, so the
// result fits inside the requested box.
//
// Exactly one factor pair is computed, from the recomputed screen size,
// and applied unchanged to every frame. Per-frame factor recomputation
// would let rounding place frames inconsistently against each other.
func ResizeStream(st *gif.Stream, newWidth, newHeight int, fit bool, rep diag.Reporter) error {
	st.RecomputeScreen(false)
	xfactor := float64(newWidth) / float64(st.ScreenWidth)
	yfactor := float64(newHeight) / float64(st.ScreenHeight)

	if newWidth <= 0 && newHeight <= 0 {
		return nil
	} else if newWidth <= 0 {
		xfactor = yfactor
		newWidth = int(float64(st.ScreenWidth)*xfactor + 0.5)
	} else if newHeight <= 0 {
		yfactor = xfactor
		newHeight = int(float64(st.ScreenHeight)*yfactor + 0.5)
	}

	if fit && newWidth >= st.ScreenWidth && newHeight >= st.ScreenHeight {
		return nil
	} else if fit && xfactor < yfactor {
		yfactor = xfactor
		newHeight = int(float64(st.ScreenHeight)*yfactor + 0.5)
	} else if fit && yfactor < xfactor {
		xfactor = yfactor
		newWidth = int(float64(st.ScreenWidth)*xfactor + 0.5)
	}

	for _, f := range st.Frames {
		if err := ScaleFrame(f, xfactor, yfactor, rep); err != nil {
			return err
		}
	}

	st.ScreenWidth = newWidth
	st.ScreenHeight = newHeight
	return nil
}
