package xform

import (
	"github.com/ironsheep/gif-transform/internal/diag"
	"github.com/ironsheep/gif-transform/internal/gif"
)

// Posterize quantizes every colormap entry to Bits significant bits per
// channel (1-7). Dropped low bits are refilled from the high bits so the
// quantized levels still span the full 0-255 range.
type Posterize struct {
	Bits int
}

func (t *Posterize) Kind() Kind { return KindPosterize }

func (t *Posterize) Apply(cm *gif.Colormap, rep diag.Reporter) {
	bits := t.Bits
	if bits < 1 || bits > 7 {
		rep.Warning("posterize level %d out of range 1-7, colormap unchanged", bits)
		return
	}
	for i, c := range cm.Colors {
		cm.Colors[i] = gif.RGB(
			posterizeChannel(c.R, bits),
			posterizeChannel(c.G, bits),
			posterizeChannel(c.B, bits),
		)
	}
}

func posterizeChannel(v uint8, bits int) uint8 {
	shift := uint(8 - bits)
	q := v >> shift
	// Replicate the kept bits downward to fill the dropped range.
	out := q << shift
	for s := shift; s > 0; {
		if s >= uint(bits) {
			s -= uint(bits)
			out |= q << s
		} else {
			out |= q >> (uint(bits) - s)
			s = 0
		}
	}
	return out
}
