package xform

import (
	"fmt"

	"github.com/ironsheep/gif-transform/internal/diag"
	"github.com/ironsheep/gif-transform/internal/gif"
)

// newTestFrame builds a frame at (left, top) whose pixel at (x, y) holds
// (y*width + x) mod 256, so every position is distinguishable.
func newTestFrame(width, height, left, top int) *gif.Frame {
	f := &gif.Frame{
		Width:       width,
		Height:      height,
		Left:        left,
		Top:         top,
		Transparent: gif.NoTransparent,
	}
	pix := make([]byte, width*height)
	for i := range pix {
		pix[i] = byte(i % 256)
	}
	f.SetPixels(pix)
	return f
}

// framePixels flattens a frame's rows back into row-major order.
func framePixels(f *gif.Frame) []byte {
	out := make([]byte, 0, f.Width*f.Height)
	for _, row := range f.Rows {
		out = append(out, row...)
	}
	return out
}

func newTestColormap(colors ...gif.Color) *gif.Colormap {
	return &gif.Colormap{Colors: colors}
}

// recordingTransform notes each application as "name/R" where R is the
// red component of the colormap's first entry, so ordering tests can see
// both transform order and colormap order.
type recordingTransform struct {
	kind    Kind
	name    string
	applied *[]string
}

func (t *recordingTransform) Kind() Kind { return t.kind }

func (t *recordingTransform) Apply(cm *gif.Colormap, rep diag.Reporter) {
	*t.applied = append(*t.applied, fmt.Sprintf("%s/%d", t.name, cm.Colors[0].R))
}
