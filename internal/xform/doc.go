// Package xform implements the transform engine for indexed-color
// streams: a composable pipeline of colormap transforms (recolor,
// external-process recoloring, grayscale, posterize) and the per-frame
// geometric operations crop, flip, rotate, and scale, plus the
// whole-stream resize orchestrator.
//
// Colormap transforms run in registration order; within one transform the
// stream's global colormap is processed before the frames' local
// colormaps, in frame order. Geometric operations mutate one frame at a
// time, replacing its pixel storage and rederiving its screen offset.
//
// The scale engine uses 10-bit fixed-point scan conversion and derives
// each frame's target geometry from its scaled screen-relative edges, so
// every frame of an animation rounds consistently against every other.
package xform
