package hyper

import "github.com/AlkiviadisAleiferis/hyperpack/points"

// TotalPermutations is 10!, the size of the full potential-points strategy
// space enumerated by permutationIterator.
const TotalPermutations = 3628800

// permutationIterator lazily enumerates permutations of the ten
// points.Class values using the classic iterative Heap's algorithm: one
// reusable buffer, in-place swaps, and a small counter array instead of
// recursion — the same "no hidden allocation on the hot path" discipline
// as tsp/two_opt.go's prefetch buffer.
type permutationIterator struct {
	current [points.NumClasses]points.Class
	c       [points.NumClasses]int
	i       int
	started bool
	emitted int
	limit   int // exclusive cap on emitted count; negative means unlimited
}

// newPermutationIterator returns an iterator positioned at permutation 0
// (the identity order A,B,C,D,A',B',A'',B'',E,F) able to emit up to limit
// permutations total (negative limit means unlimited, i.e. all 10!).
func newPermutationIterator(limit int) *permutationIterator {
	it := &permutationIterator{limit: limit}
	var idx int
	for idx = 0; idx < points.NumClasses; idx++ {
		it.current[idx] = points.Class(idx)
	}

	return it
}

// next returns the next permutation (the identity order on the first
// call) and advances internal state. ok is false once limit permutations
// have been emitted, or the full 10! space is exhausted.
// Complexity: O(1) amortized.
func (it *permutationIterator) next() (points.Strategy, bool) {
	if it.limit >= 0 && it.emitted >= it.limit {
		return points.Strategy{}, false
	}

	if !it.started {
		it.started = true
		it.emitted++

		return points.Strategy(it.current), true
	}

	for it.i < points.NumClasses {
		if it.c[it.i] < it.i {
			if it.i%2 == 0 {
				it.current[0], it.current[it.i] = it.current[it.i], it.current[0]
			} else {
				it.current[it.c[it.i]], it.current[it.i] = it.current[it.i], it.current[it.c[it.i]]
			}
			it.c[it.i]++
			it.i = 0
			it.emitted++

			return points.Strategy(it.current), true
		}
		it.c[it.i] = 0
		it.i++
	}

	return points.Strategy{}, false
}

// skip advances the iterator past n permutations without returning them,
// used to position a worker's iterator at the start of its contiguous
// chunk (chunkStart, per the partitioning rule in runWorker).
func (it *permutationIterator) skip(n int) {
	var i int
	for i = 0; i < n; i++ {
		if _, ok := it.next(); !ok {
			return
		}
	}
}
