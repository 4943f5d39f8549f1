package xform

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/gif-transform/internal/diag"
	"github.com/ironsheep/gif-transform/internal/gif"
)

// Gray desaturates every colormap entry. The chroma is dropped in HCL
// space rather than by channel averaging, so perceived lightness is
// preserved across the palette.
type Gray struct{}

func (Gray) Kind() Kind { return KindGray }

func (Gray) Apply(cm *gif.Colormap, rep diag.Reporter) {
	for i, c := range cm.Colors {
		src := colorful.Color{
			R: float64(c.R) / 255.0,
			G: float64(c.G) / 255.0,
			B: float64(c.B) / 255.0,
		}
		h, _, l := src.Hcl()
		r, g, b := colorful.Hcl(h, 0, l).Clamped().RGB255()
		cm.Colors[i] = gif.RGB(r, g, b)
	}
}
