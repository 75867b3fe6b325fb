package localsearch

import (
	"time"

	"github.com/AlkiviadisAleiferis/hyperpack/dispatch"
	"github.com/AlkiviadisAleiferis/hyperpack/model"
)

// Neighbor is one candidate 2-opt swap, (I,J), 0 <= I < J < n.
type Neighbor struct {
	I, J int
}

// CanonicalNeighborOrder returns every (I,J) pair, 0 <= I < J < n, in
// lexicographic order: outer loop I ascending, inner loop J ascending. Both
// best-improvement and throttled first-improvement scans visit neighbors
// in exactly this order, so the test suite can pin the visitation sequence
// for a small n.
// Complexity: O(n^2).
func CanonicalNeighborOrder(n int) []Neighbor {
	if n < 2 {
		return nil
	}
	out := make([]Neighbor, 0, n*(n-1)/2)
	var i, j int
	for i = 0; i < n-1; i++ {
		for j = i + 1; j < n; j++ {
			out = append(out, Neighbor{I: i, J: j})
		}
	}

	return out
}

// swapped returns a copy of order with positions i and j exchanged.
func swapped(order []model.Item, i, j int) []model.Item {
	out := make([]model.Item, len(order))
	copy(out, order)
	out[i], out[j] = out[j], out[i]

	return out
}

// deadlinePassed reports whether opts' Deadline or Cancel has fired.
func deadlinePassed(opts Options) bool {
	if !opts.Deadline.IsZero() && time.Now().After(opts.Deadline) {
		return true
	}
	if opts.Cancel != nil {
		select {
		case <-opts.Cancel:
			return true
		default:
		}
	}

	return false
}

// fullyPacked reports whether objective equals the theoretical maximum for
// len(containers) fully-utilized containers (§4.5's global early exit).
func fullyPacked(objective float64, containers int) bool {
	return objective >= float64(containers)
}

// Run hill-climbs the item permutation by repeated 2-opt swaps, starting
// from items' given order. It returns the best model.Solution found, its
// objective value, and the item order that produced it.
// Complexity: O(restarts * n^2 * dispatch.Run cost) worst case; a restart
// happens on every accepted improving swap.
func Run(items []model.Item, opts Options) (model.Solution, float64, []model.Item, error) {
	order := make([]model.Item, len(items))
	copy(order, items)

	sol, objective, err := evaluate(order, opts)
	if err != nil {
		return model.Solution{}, 0, nil, err
	}

	n := len(order)
	threshold := opts.resolvedThreshold()

	for {
		if fullyPacked(objective, len(opts.Containers)) || deadlinePassed(opts) {
			break
		}

		neighbors := CanonicalNeighborOrder(n)
		bestI, bestJ, bestObjective, bestSol := -1, -1, objective, sol
		improvedAny := false

		var nb Neighbor
		for _, nb = range neighbors {
			candidateOrder := swapped(order, nb.I, nb.J)
			candSol, candObjective, cerr := evaluate(candidateOrder, opts)
			if cerr != nil {
				return model.Solution{}, 0, nil, cerr
			}

			if candObjective > bestObjective {
				bestI, bestJ, bestObjective, bestSol = nb.I, nb.J, candObjective, candSol
				improvedAny = true

				if n > threshold {
					// First-improvement: stop scanning at the first gain.
					break
				}
			}

			if deadlinePassed(opts) {
				break
			}
		}

		if !improvedAny {
			break
		}

		order = swapped(order, bestI, bestJ)
		sol, objective = bestSol, bestObjective
		if opts.OnImprovement != nil {
			opts.OnImprovement(objective)
		}
	}

	return sol, objective, order, nil
}

// evaluate dispatches order against opts.Containers and scores the result.
func evaluate(order []model.Item, opts Options) (model.Solution, float64, error) {
	sol, err := dispatch.Run(opts.Containers, order, opts.Strategy, opts.ConstructOpts)
	if err != nil {
		return model.Solution{}, 0, err
	}

	return sol, dispatch.Objective(sol, opts.ObjectiveK), nil
}
