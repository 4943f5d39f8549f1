package xform

import (
	"github.com/ironsheep/gif-transform/internal/diag"
	"github.com/ironsheep/gif-transform/internal/gif"
)

// Kind identifies a transform operation for pipeline removal. Payloads do
// not participate in matching: RemoveAll drops every node of a kind, never
// by payload equality.
type Kind int

const (
	KindRecolor Kind = iota
	KindPipe
	KindGray
	KindPosterize
)

// Transform is one colormap transform operation. Apply mutates cm in
// place and must never change its entry count.
type Transform interface {
	Kind() Kind
	Apply(cm *gif.Colormap, rep diag.Reporter)
}

// Pipeline is an ordered list of colormap transforms. The zero value is
// an empty pipeline ready for use.
type Pipeline struct {
	transforms []Transform
}

// Len returns the number of transforms in the pipeline.
func (p *Pipeline) Len() int { return len(p.transforms) }

// Append adds t at the tail, preserving the order of existing transforms.
func (p *Pipeline) Append(t Transform) {
	p.transforms = append(p.transforms, t)
}

// RemoveAll removes every transform of the given kind, preserving the
// relative order of the survivors.
func (p *Pipeline) RemoveAll(kind Kind) {
	kept := p.transforms[:0]
	for _, t := range p.transforms {
		if t.Kind() != kind {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(p.transforms); i++ {
		p.transforms[i] = nil
	}
	p.transforms = kept
}

// tail returns the last transform, or nil for an empty pipeline.
func (p *Pipeline) tail() Transform {
	if len(p.transforms) == 0 {
		return nil
	}
	return p.transforms[len(p.transforms)-1]
}

// Apply runs every transform, in order, over all colormaps of st: the
// global colormap first if present, then each frame's local colormap in
// frame order. Frames without a local colormap are skipped.
func (p *Pipeline) Apply(st *gif.Stream, rep diag.Reporter) {
	for _, t := range p.transforms {
		if st.Global != nil {
			t.Apply(st.Global, rep)
		}
		for _, f := range st.Frames {
			if f.Local != nil {
				t.Apply(f.Local, rep)
			}
		}
	}
}
