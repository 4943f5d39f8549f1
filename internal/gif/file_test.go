package gif

import (
	"bytes"
	"testing"
)

func testStream() *Stream {
	st := &Stream{
		ScreenWidth:  20,
		ScreenHeight: 15,
		Loop:         0,
		Global: &Colormap{Colors: []Color{
			RGB(0, 0, 0), RGB(255, 0, 0), RGB(0, 255, 0), RGB(0, 0, 255),
		}},
	}

	f1 := &Frame{Width: 20, Height: 15, Transparent: NoTransparent, Delay: 10}
	pix := make([]byte, 20*15)
	for i := range pix {
		pix[i] = byte(i % 4)
	}
	f1.SetPixels(pix)
	st.AddFrame(f1)

	f2 := &Frame{
		Width: 4, Height: 3, Left: 5, Top: 6,
		Transparent: 0, Delay: 20, Disposal: DisposalBackground,
		Local: &Colormap{Colors: []Color{
			RGB(9, 9, 9), RGB(128, 128, 128),
		}},
	}
	pix2 := make([]byte, 4*3)
	for i := range pix2 {
		pix2[i] = byte(i % 2)
	}
	f2.SetPixels(pix2)
	st.AddFrame(f2)

	return st
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	st := testStream()

	var buf bytes.Buffer
	if err := Encode(&buf, st); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got.ScreenWidth != 20 || got.ScreenHeight != 15 {
		t.Errorf("screen: got %dx%d, want 20x15", got.ScreenWidth, got.ScreenHeight)
	}
	if len(got.Frames) != 2 {
		t.Fatalf("frames: got %d, want 2", len(got.Frames))
	}

	f1 := got.Frames[0]
	if f1.Width != 20 || f1.Height != 15 || f1.Left != 0 || f1.Top != 0 {
		t.Errorf("frame 1 geometry: %dx%d at (%d,%d)", f1.Width, f1.Height, f1.Left, f1.Top)
	}
	if f1.Delay != 10 {
		t.Errorf("frame 1 delay: got %d, want 10", f1.Delay)
	}
	for i := 0; i < 20*15; i++ {
		if f1.Rows[i/20][i%20] != byte(i%4) {
			t.Fatalf("frame 1 pixel %d: got %d, want %d", i, f1.Rows[i/20][i%20], i%4)
		}
	}

	f2 := got.Frames[1]
	if f2.Width != 4 || f2.Height != 3 || f2.Left != 5 || f2.Top != 6 {
		t.Errorf("frame 2 geometry: %dx%d at (%d,%d)", f2.Width, f2.Height, f2.Left, f2.Top)
	}
	if f2.Transparent != 0 {
		t.Errorf("frame 2 transparent: got %d, want 0", f2.Transparent)
	}
	if f2.Disposal != DisposalBackground {
		t.Errorf("frame 2 disposal: got %d, want %d", f2.Disposal, DisposalBackground)
	}
	if f2.Local == nil {
		t.Fatal("frame 2 lost its local colormap")
	}
	if !f2.Local.Colors[1].SameRGB(RGB(128, 128, 128)) {
		t.Errorf("frame 2 local color 1: got %v", f2.Local.Colors[1])
	}
}

func TestEncode_UncompressesFrames(t *testing.T) {
	st := testStream()
	for _, f := range st.Frames {
		if err := f.Compress(); err != nil {
			t.Fatalf("Compress: %v", err)
		}
		f.ReleaseRows()
	}

	var buf bytes.Buffer
	if err := Encode(&buf, st); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty output")
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not a gif"))); err == nil {
		t.Error("Decode accepted garbage")
	}
}
