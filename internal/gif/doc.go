// Package gif provides the in-memory model for an indexed-color image
// stream: a logical screen, an ordered list of frames positioned on that
// screen, and the global and per-frame colormaps the frames index into.
//
// # Pixel Storage
//
// A frame's pixels are held as a slice of rows, each row a slice of
// palette-index bytes. Rows are views into a shared backing array, so
// operations such as cropping can rebuild the row table without copying
// pixel data. A frame may alternatively hold only an LZW-compressed form
// of its pixel plane; Uncompress and Compress convert between the two.
//
// # Coordinate System
//
// Frame offsets (Left, Top) position the frame's top-left corner on the
// logical screen. Coordinates are 0-based, X increasing rightward and Y
// increasing downward. Frames are not clamped to the screen; callers that
// move frames are expected to call RecomputeScreen afterward.
//
// # Thread Safety
//
// Streams, frames, and colormaps are plain mutable values with no internal
// locking. Operations on the same stream must be serialized by the caller.
package gif
