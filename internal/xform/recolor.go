package xform

import (
	"github.com/ironsheep/gif-transform/internal/diag"
	"github.com/ironsheep/gif-transform/internal/gif"
)

// ColorChange maps one old color (by RGB value, or by explicit palette
// slot when pinned) to a replacement color.
type ColorChange struct {
	Old gif.Color
	New gif.Color
}

// Recolor replaces colormap entries according to an ordered change list.
// For each entry the list is scanned in registration order and the first
// matching change wins; later changes for the same entry are ignored.
type Recolor struct {
	Changes []ColorChange
}

func (t *Recolor) Kind() Kind { return KindRecolor }

func (t *Recolor) Apply(cm *gif.Colormap, rep diag.Reporter) {
	for i := range cm.Colors {
		for _, ch := range t.Changes {
			var have bool
			if !ch.Old.HasPixel {
				have = cm.Colors[i].SameRGB(ch.Old)
			} else {
				have = ch.Old.Pixel == uint32(i)
			}
			if have {
				cm.Colors[i] = ch.New
				break // first registered change wins
			}
		}
	}
}

// AppendColorChange registers an old→new color change on the pipeline.
// Consecutive registrations merge into the tail Recolor node when one is
// already last, so a run of --change-color options executes as a single
// transform invocation with first-match-wins semantics across the run.
func AppendColorChange(p *Pipeline, old, new gif.Color) {
	if t, ok := p.tail().(*Recolor); ok {
		t.Changes = append(t.Changes, ColorChange{Old: old, New: new})
		return
	}
	p.Append(&Recolor{Changes: []ColorChange{{Old: old, New: new}}})
}
