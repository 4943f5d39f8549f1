package gif

import (
	"bytes"
	"compress/lzw"
	"fmt"
	"io"
)

// The per-frame compressed form is the frame's pixel plane as an LSB-first
// LZW stream with 8-bit literals, which is how GIF stores image data minus
// the sub-block framing. Using a fixed literal width keeps the in-memory
// form independent of the colormap size; the container bridge re-derives
// the wire-level code size on encode.
const lzwLitWidth = 8

// Compress populates the frame's compressed form from its raw rows.
// The raw rows are left in place; callers that want to drop them use
// ReleaseRows afterward.
func (f *Frame) Compress() error {
	if f.Rows == nil {
		return fmt.Errorf("compress %dx%d frame: no raw pixels", f.Width, f.Height)
	}
	var buf bytes.Buffer
	w := lzw.NewWriter(&buf, lzw.LSB, lzwLitWidth)
	for _, row := range f.Rows {
		if _, err := w.Write(row); err != nil {
			w.Close()
			return fmt.Errorf("compress %dx%d frame: %w", f.Width, f.Height, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("compress %dx%d frame: %w", f.Width, f.Height, err)
	}
	f.Compressed = buf.Bytes()
	return nil
}

// Uncompress materializes the frame's raw rows from its compressed form.
// It is a no-op when the raw form is already present.
func (f *Frame) Uncompress() error {
	if f.Rows != nil {
		return nil
	}
	if f.Compressed == nil {
		return fmt.Errorf("uncompress %dx%d frame: no compressed data", f.Width, f.Height)
	}
	r := lzw.NewReader(bytes.NewReader(f.Compressed), lzw.LSB, lzwLitWidth)
	defer r.Close()
	pix := make([]byte, f.Width*f.Height)
	if _, err := io.ReadFull(r, pix); err != nil {
		return fmt.Errorf("uncompress %dx%d frame: %w", f.Width, f.Height, err)
	}
	f.SetPixels(pix)
	return nil
}
