package hyper

import (
	"sort"

	"github.com/AlkiviadisAleiferis/hyperpack/model"
)

// OrientMode selects a pre-search item orientation normalization.
type OrientMode int

const (
	// OrientNone leaves every item's (W, L) untouched.
	OrientNone OrientMode = iota

	// OrientWide swaps (W, L) -> (L, W) wherever W < L, so every item ends
	// with W >= L.
	OrientWide

	// OrientLong swaps (W, L) -> (L, W) wherever W > L, so every item ends
	// with W <= L.
	OrientLong
)

// Orient returns a copy of items with every item's orientation normalized
// per mode. Idempotent under repeated application of the same mode: once
// every item satisfies the mode's target inequality, a second pass is a
// no-op.
// Complexity: O(n).
func Orient(items []model.Item, mode OrientMode) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)

	if mode == OrientNone {
		return out
	}

	var i int
	for i = range out {
		w, l := out[i].W, out[i].L
		switch mode {
		case OrientWide:
			if w < l {
				out[i].W, out[i].L = l, w
			}
		case OrientLong:
			if w > l {
				out[i].W, out[i].L = l, w
			}
		}
	}

	return out
}

// SortKey selects the ranking function Sort uses.
type SortKey int

const (
	// ByArea ranks items by w*l.
	ByArea SortKey = iota

	// ByPerimeter ranks items by 2*(w+l).
	ByPerimeter

	// ByLongestSideRatio ranks items by max(w,l)/min(w,l).
	ByLongestSideRatio
)

// Sort returns a stably-sorted copy of items by key, ascending unless
// reverse is true. Ties break by ascending ID (descending ID when reverse
// is true), so the result is fully deterministic for equal keys.
// Complexity: O(n log n).
func Sort(items []model.Item, key SortKey, reverse bool) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)

	rank := func(it model.Item) float64 {
		switch key {
		case ByPerimeter:
			return float64(2 * (it.W + it.L))
		case ByLongestSideRatio:
			lo, hi := float64(it.W), float64(it.L)
			if lo > hi {
				lo, hi = hi, lo
			}
			if lo == 0 {
				return 0
			}

			return hi / lo
		default: // ByArea
			return float64(it.W * it.L)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank(out[i]), rank(out[j])
		if ri != rj {
			if reverse {
				return ri > rj
			}

			return ri < rj
		}

		if reverse {
			return out[i].ID > out[j].ID
		}

		return out[i].ID < out[j].ID
	})

	return out
}
