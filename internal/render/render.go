// Package render composites indexed-color streams into standard images
// for preview and for pixel-level verification of transform output.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/gif-transform/internal/gif"
)

// FrameImage converts one frame to a paletted image positioned at its
// screen offset. The frame is uncompressed first if needed. The frame's
// transparent index becomes a zero-alpha palette entry.
func FrameImage(f *gif.Frame, global *gif.Colormap) (*image.Paletted, error) {
	if err := f.Uncompress(); err != nil {
		return nil, err
	}
	cm := f.Colormap(global)
	if cm.Len() == 0 {
		return nil, fmt.Errorf("frame at (%d,%d): no colormap in effect", f.Left, f.Top)
	}
	pal := make(color.Palette, cm.Len())
	for i, c := range cm.Colors {
		a := uint8(0xFF)
		if i == f.Transparent {
			a = 0
		}
		pal[i] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
	}

	p := image.NewPaletted(image.Rect(f.Left, f.Top, f.Left+f.Width, f.Top+f.Height), pal)
	for y := 0; y < f.Height; y++ {
		copy(p.Pix[y*p.Stride:], f.Rows[y])
	}
	return p, nil
}

// Screens composites every frame onto the logical screen in display
// order, honoring frame disposal, and returns one image per frame.
func Screens(st *gif.Stream) ([]*image.NRGBA, error) {
	bounds := image.Rect(0, 0, st.ScreenWidth, st.ScreenHeight)
	canvas := image.NewNRGBA(bounds)
	out := make([]*image.NRGBA, 0, len(st.Frames))

	for _, f := range st.Frames {
		p, err := FrameImage(f, st.Global)
		if err != nil {
			return nil, err
		}

		var saved *image.NRGBA
		if f.Disposal == gif.DisposalPrevious {
			saved = cloneNRGBA(canvas)
		}

		draw.Draw(canvas, p.Bounds(), p, p.Bounds().Min, draw.Over)
		out = append(out, cloneNRGBA(canvas))

		switch f.Disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, p.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = saved
		}
	}
	return out, nil
}

// Preview renders the first composited screen scaled to fit inside
// maxWidth×maxHeight, preserving aspect ratio. Screens smaller than the
// box come back at their original size.
func Preview(st *gif.Stream, maxWidth, maxHeight int) (image.Image, error) {
	screens, err := Screens(st)
	if err != nil {
		return nil, err
	}
	if len(screens) == 0 {
		return nil, fmt.Errorf("stream has no frames to preview")
	}
	return imaging.Fit(screens[0], maxWidth, maxHeight, imaging.Lanczos), nil
}

func cloneNRGBA(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
