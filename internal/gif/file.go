package gif

import (
	"fmt"
	"image"
	"image/color"
	stdgif "image/gif"
	"io"
)

// Decode reads a GIF from r into a Stream. Frames arrive in raw row form.
func Decode(r io.Reader) (*Stream, error) {
	g, err := stdgif.DecodeAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode gif: %w", err)
	}

	st := &Stream{
		ScreenWidth:  g.Config.Width,
		ScreenHeight: g.Config.Height,
		Background:   int(g.BackgroundIndex),
		Loop:         g.LoopCount,
	}
	if pal, ok := g.Config.ColorModel.(color.Palette); ok {
		st.Global = fromPalette(pal)
	}

	for i, p := range g.Image {
		b := p.Bounds()
		f := &Frame{
			Width:       b.Dx(),
			Height:      b.Dy(),
			Left:        b.Min.X,
			Top:         b.Min.Y,
			Transparent: transparentIndex(p.Palette),
			Delay:       g.Delay[i],
			Disposal:    g.Disposal[i],
		}
		pix := make([]byte, f.Width*f.Height)
		for y := 0; y < f.Height; y++ {
			src := p.Pix[y*p.Stride : y*p.Stride+f.Width]
			copy(pix[y*f.Width:], src)
		}
		f.SetPixels(pix)

		if cm := fromPalette(p.Palette); !sameColormap(cm, st.Global) {
			f.Local = cm
		}
		st.AddFrame(f)
	}
	if st.ScreenWidth == 0 || st.ScreenHeight == 0 {
		st.RecomputeScreen(false)
	}
	return st, nil
}

// Encode writes the stream to w as a GIF. Frames held only in compressed
// form are uncompressed first; the wire encoding is rebuilt by the stdlib
// writer regardless of any cached compressed plane.
func Encode(w io.Writer, st *Stream) error {
	out := &stdgif.GIF{
		LoopCount:       st.Loop,
		BackgroundIndex: byte(st.Background),
		Config: image.Config{
			Width:  st.ScreenWidth,
			Height: st.ScreenHeight,
		},
	}
	if st.Global != nil {
		out.Config.ColorModel = toPalette(st.Global, NoTransparent)
	}

	for i, f := range st.Frames {
		if err := f.Uncompress(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		cm := f.Colormap(st.Global)
		if cm.Len() == 0 {
			return fmt.Errorf("frame %d: no colormap in effect", i)
		}
		p := image.NewPaletted(
			image.Rect(f.Left, f.Top, f.Left+f.Width, f.Top+f.Height),
			toPalette(cm, f.Transparent),
		)
		for y := 0; y < f.Height; y++ {
			copy(p.Pix[y*p.Stride:], f.Rows[y])
		}
		out.Image = append(out.Image, p)
		out.Delay = append(out.Delay, f.Delay)
		out.Disposal = append(out.Disposal, f.Disposal)
	}

	if err := stdgif.EncodeAll(w, out); err != nil {
		return fmt.Errorf("failed to encode gif: %w", err)
	}
	return nil
}

func fromPalette(pal color.Palette) *Colormap {
	if pal == nil {
		return nil
	}
	cm := NewColormap(len(pal))
	for i, c := range pal {
		r, g, b, _ := c.RGBA()
		cm.Colors[i] = RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}
	return cm
}

func toPalette(cm *Colormap, transparent int) color.Palette {
	pal := make(color.Palette, cm.Len())
	for i, c := range cm.Colors {
		a := uint8(0xFF)
		if i == transparent {
			a = 0
		}
		pal[i] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
	}
	return pal
}

// transparentIndex recovers the transparent slot from a decoded palette,
// where the stdlib decoder represents transparency as a zero-alpha entry.
func transparentIndex(pal color.Palette) int {
	for i, c := range pal {
		if _, _, _, a := c.RGBA(); a == 0 {
			return i
		}
	}
	return NoTransparent
}

func sameColormap(a, b *Colormap) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.Colors {
		if !a.Colors[i].SameRGB(b.Colors[i]) {
			return false
		}
	}
	return true
}
