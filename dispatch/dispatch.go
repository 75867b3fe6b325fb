// Package dispatch implements the multi-container dispatcher (spec §4.4):
// items are offered to containers in order, each container narrowing the
// remaining item set to whatever the previous container left unplaced, and
// the per-container constructor results are aggregated into one
// model.Solution.
package dispatch

import (
	"math"

	"github.com/AlkiviadisAleiferis/hyperpack/construct"
	"github.com/AlkiviadisAleiferis/hyperpack/model"
	"github.com/AlkiviadisAleiferis/hyperpack/points"
)

// DefaultObjectiveK is the exponent used by Objective when callers don't
// need a different bias. k=2 is the smallest strictly convex exponent,
// biasing the objective toward concentrating fill in fewer, fuller
// containers rather than spreading it thin across many.
const DefaultObjectiveK = 2.0

// Run packs items into containers in order. Each container only sees the
// items the previous container could not place; items unplaced by the
// final container are omitted from the returned Solution entirely (the
// caller — localsearch/hyper — inspects the item count against
// sol.PlacedItemCount to know what is missing).
// Complexity: O(len(containers) * construct.Run cost).
func Run(containers []model.Container, items []model.Item, strategy points.Strategy, opts construct.Options) (model.Solution, error) {
	sol := model.NewSolution()
	if len(items) == 0 {
		return sol, nil
	}

	remaining := items
	var c model.Container
	for _, c = range containers {
		if len(remaining) == 0 {
			break
		}

		res, err := construct.Run(c, remaining, strategy, opts)
		if err != nil {
			return model.Solution{}, err
		}

		if len(res.Placements) > 0 {
			placed := make(map[string]model.Placement, len(res.Placements))
			var id string
			var p model.Placement
			for id, p = range res.Placements {
				placed[id] = p
			}
			sol.ByContainer[c.ID] = placed
			sol.Utilization[c.ID] = res.Utilization
		}

		remaining = filterByIDs(remaining, res.Unplaced)
	}

	return sol, nil
}

// filterByIDs returns the subset of items whose ID appears in unplaced,
// preserving items' original relative order.
func filterByIDs(items []model.Item, unplaced []string) []model.Item {
	if len(unplaced) == 0 {
		return nil
	}
	keep := make(map[string]struct{}, len(unplaced))
	var id string
	for _, id = range unplaced {
		keep[id] = struct{}{}
	}

	out := make([]model.Item, 0, len(unplaced))
	var it model.Item
	for _, it = range items {
		if _, ok := keep[it.ID]; ok {
			out = append(out, it)
		}
	}

	return out
}

// Objective computes Σ_c util_c^k over every container present in sol.
// Containers never touched by a placement (not present in sol.Utilization)
// contribute zero. A fully-packed Solution against n containers yields
// exactly float64(n) when k is applied to utilization values of 1.0 each
// (1^k == 1), which is the "100% packing" stop condition used by
// localsearch and hyper.
func Objective(sol model.Solution, k float64) float64 {
	var total float64
	var u float64
	for _, u = range sol.Utilization {
		total += math.Pow(u, k)
	}

	return total
}
