// Package strip implements the strip-packing adapter (spec §4.7): a
// single container of fixed width and shrinking height, tightened after
// each complete search pass (one localsearch.Run, or one hyper.Run in the
// multi-worker path) whose best solution places all items (or, once
// MinHeight is set, whose best solution shrinks height to at least
// MinHeight even with items left unplaced). Solutions visited inside a
// pass do not tighten the height.
package strip

import (
	"github.com/AlkiviadisAleiferis/hyperpack/model"
)

// Adapter tracks one strip-packing container's current height. The zero
// value is not usable; use New.
type Adapter struct {
	Width     int
	HCurrent  int
	MinHeight *int // nil = unset
}

// New seeds HCurrent at the sum of every item's length — a trivially safe
// upper bound, since every item could in principle stack in a single
// column of this width when width is at least the widest item. New does
// not itself validate width against item widths: an infeasible seed only
// costs one wasted construction pass, not a correctness violation.
func New(width int, items []model.Item) *Adapter {
	var total int
	var it model.Item
	for _, it = range items {
		total += it.L
	}

	return &Adapter{Width: width, HCurrent: total}
}

// Container returns the current (Width, HCurrent) snapshot as a
// model.Container with a fixed adapter-owned ID.
func (a *Adapter) Container() model.Container {
	return model.Container{ID: "strip", W: a.Width, L: a.HCurrent}
}

// Tighten recomputes HCurrent from sol's placements and reports whether it
// changed. It only tightens when sol places every item in items, unless
// MinHeight is set, in which case it also tightens any node that would
// shrink HCurrent to at least MinHeight even with items left unplaced.
func (a *Adapter) Tighten(sol model.Solution, items map[string]model.Item) bool {
	complete := sol.IsComplete(items)

	maxBottom := 0
	var m map[string]model.Placement
	var p model.Placement
	for _, m = range sol.ByContainer {
		for _, p = range m {
			if bottom := p.Y + p.L; bottom > maxBottom {
				maxBottom = bottom
			}
		}
	}

	if !complete {
		if a.MinHeight == nil || maxBottom < *a.MinHeight {
			return false
		}
	}

	// MinHeight is a floor regardless of completeness: a perfectly complete
	// packing that fits under MinHeight must not drop HCurrent below it.
	if a.MinHeight != nil && maxBottom < *a.MinHeight {
		maxBottom = *a.MinHeight
	}

	if maxBottom >= a.HCurrent {
		return false
	}

	a.HCurrent = maxBottom

	return true
}

// Clone returns a deep copy of a, used by the multi-worker strip.Run path
// so that the caller's adapter is left unchanged.
func (a *Adapter) Clone() *Adapter {
	clone := &Adapter{Width: a.Width, HCurrent: a.HCurrent}
	if a.MinHeight != nil {
		h := *a.MinHeight
		clone.MinHeight = &h
	}

	return clone
}

// Reset reseeds HCurrent from items as New would, leaving Width and
// MinHeight untouched.
func (a *Adapter) Reset(items []model.Item) {
	var total int
	var it model.Item
	for _, it = range items {
		total += it.L
	}
	a.HCurrent = total
}
