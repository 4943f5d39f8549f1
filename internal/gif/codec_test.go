package gif

import (
	"testing"
)

func TestFrame_CompressUncompressRoundTrip(t *testing.T) {
	f := &Frame{Width: 16, Height: 9, Transparent: NoTransparent}
	orig := pattern(16, 9)
	f.SetPixels(orig)

	if err := f.Compress(); err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if f.Compressed == nil {
		t.Fatal("no compressed form after Compress")
	}

	f.ReleaseRows()
	if f.Rows != nil {
		t.Fatal("rows present after ReleaseRows")
	}

	if err := f.Uncompress(); err != nil {
		t.Fatalf("Uncompress: %v", err)
	}
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.Rows[y][x] != orig[y*16+x] {
				t.Fatalf("pixel (%d,%d): got %d, want %d", x, y, f.Rows[y][x], orig[y*16+x])
			}
		}
	}
}

func TestFrame_UncompressIsNoopWithRows(t *testing.T) {
	f := &Frame{Width: 2, Height: 2, Transparent: NoTransparent}
	f.SetPixels([]byte{1, 2, 3, 4})
	rows := f.Rows

	if err := f.Uncompress(); err != nil {
		t.Fatalf("Uncompress: %v", err)
	}
	if &f.Rows[0][0] != &rows[0][0] {
		t.Error("Uncompress replaced existing raw rows")
	}
}

func TestFrame_UncompressWithoutData(t *testing.T) {
	f := &Frame{Width: 2, Height: 2, Transparent: NoTransparent}
	if err := f.Uncompress(); err == nil {
		t.Error("Uncompress succeeded with neither raw nor compressed form")
	}
}

func TestFrame_CompressWithoutRows(t *testing.T) {
	f := &Frame{Width: 2, Height: 2, Transparent: NoTransparent}
	if err := f.Compress(); err == nil {
		t.Error("Compress succeeded without raw pixels")
	}
}
