package gif

// NoTransparent marks a frame as fully opaque.
const NoTransparent = -1

// Disposal methods, matching the GIF graphic control extension values.
const (
	DisposalNone       = 0x01
	DisposalBackground = 0x02
	DisposalPrevious   = 0x03
)

// Color is one colormap entry. HasPixel pins the entry to an explicit
// palette slot: a pinned color refers to "whatever occupies index Pixel"
// rather than to its RGB value.
type Color struct {
	R, G, B  uint8
	HasPixel bool
	Pixel    uint32
}

// RGB returns an unpinned color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// PinnedColor returns a color that refers to palette slot i.
func PinnedColor(i uint32) Color {
	return Color{HasPixel: true, Pixel: i}
}

// SameRGB reports whether two colors have identical RGB components,
// ignoring any pixel pin.
func (c Color) SameRGB(o Color) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B
}

// Colormap is an ordered palette of colors. Transforms mutate entries in
// place and never change the entry count.
type Colormap struct {
	Colors []Color
}

// NewColormap returns a colormap with n zero (black) entries.
func NewColormap(n int) *Colormap {
	return &Colormap{Colors: make([]Color, n)}
}

// Len returns the number of entries.
func (cm *Colormap) Len() int {
	if cm == nil {
		return 0
	}
	return len(cm.Colors)
}

// Clone returns a deep copy of the colormap.
func (cm *Colormap) Clone() *Colormap {
	if cm == nil {
		return nil
	}
	out := &Colormap{Colors: make([]Color, len(cm.Colors))}
	copy(out.Colors, cm.Colors)
	return out
}

// Frame is one image plane of a stream. Either Rows (raw pixels) or
// Compressed (LZW pixel plane) is populated; Rows == nil means the frame
// is currently held only in compressed form.
type Frame struct {
	Width, Height int
	Left, Top     int

	// Rows holds the pixel plane as Height rows of Width palette-index
	// bytes. Rows alias a shared backing array; see SetPixels.
	Rows [][]byte

	// Compressed holds the LZW-compressed pixel plane, if present.
	Compressed []byte

	// Local overrides the stream's global colormap for this frame.
	Local *Colormap

	// Transparent is the palette index drawn as transparent, or
	// NoTransparent.
	Transparent int

	Delay    int // hundredths of a second
	Disposal byte
}

// SetPixels installs pix (a Width×Height pixel plane in row-major order)
// as the frame's raw storage, rebuilding the row table as views into pix.
func (f *Frame) SetPixels(pix []byte) {
	rows := make([][]byte, f.Height)
	for y := 0; y < f.Height; y++ {
		rows[y] = pix[y*f.Width : (y+1)*f.Width]
	}
	f.Rows = rows
}

// ReleaseRows drops the raw pixel form.
func (f *Frame) ReleaseRows() { f.Rows = nil }

// ReleaseCompressed drops the compressed pixel form. Geometric operations
// call this after rewriting pixels, forcing recompression before the frame
// can be serialized again.
func (f *Frame) ReleaseCompressed() { f.Compressed = nil }

// Empty reports whether the frame has no pixel content in either form.
func (f *Frame) Empty() bool {
	return f.Rows == nil && f.Compressed == nil
}

// Colormap returns the colormap in effect for this frame: the local one
// if present, otherwise the stream's global colormap.
func (f *Frame) Colormap(global *Colormap) *Colormap {
	if f.Local != nil {
		return f.Local
	}
	return global
}

// Stream is an ordered sequence of frames sharing a logical screen.
type Stream struct {
	ScreenWidth  int
	ScreenHeight int
	Frames       []*Frame
	Global       *Colormap

	// Background is the screen background palette index into Global.
	Background int

	// Loop is the animation loop count; 0 means loop forever, -1 means
	// play once (no loop extension).
	Loop int
}

// AddFrame appends a frame, preserving display order.
func (st *Stream) AddFrame(f *Frame) {
	st.Frames = append(st.Frames, f)
}

// RecomputeScreen rederives the screen size from the union of all frame
// placements. Without force the screen only grows, so an explicit larger
// canvas survives; with force it is set to the union exactly.
func (st *Stream) RecomputeScreen(force bool) {
	w, h := 0, 0
	for _, f := range st.Frames {
		if f.Left+f.Width > w {
			w = f.Left + f.Width
		}
		if f.Top+f.Height > h {
			h = f.Top + f.Height
		}
	}
	if force || w > st.ScreenWidth {
		st.ScreenWidth = w
	}
	if force || h > st.ScreenHeight {
		st.ScreenHeight = h
	}
}
