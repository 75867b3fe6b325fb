// Package construct - constructor.go implements Run, the §4.3 greedy
// point-generation packer for a single container.
//
// Design (mirrors the engine-struct style of a dense search loop: explicit
// state, no closures, hot-path accessors preallocated):
//   - Grid tracks cell occupancy; Pool tracks candidate origins per class.
//   - Each item is tried against points popped in strategy order until it
//     fits (possibly rotated) or the pool empties for that item.
//   - Acceptance marks the grid, records the placement, and spawns ten new
//     candidate points from the placement's corner geometry.
//   - Items that never fit are reported in Unplaced, in their original
//     order; later, smaller items may still place successfully (items are
//     evaluated independently).
package construct

import (
	"github.com/AlkiviadisAleiferis/hyperpack/grid"
	"github.com/AlkiviadisAleiferis/hyperpack/model"
	"github.com/AlkiviadisAleiferis/hyperpack/points"
)

// Run packs items into container c in input order, using strategy to
// choose candidate origins and opts to control rotation.
// Complexity: O(items * points_examined * placed_rects) — placed_rects
// scans happen only on acceptance (spawn) and are bounded by the number of
// items already placed in this container.
func Run(c model.Container, items []model.Item, strategy points.Strategy, opts Options) (Result, error) {
	if err := points.ValidateStrategy(strategy); err != nil {
		return Result{}, ErrInvalidStrategy
	}

	g, err := grid.New(c.W, c.L)
	if err != nil {
		return Result{}, err
	}

	pool := points.NewPool()
	pool.Seed()

	placements := make(map[string]model.Placement, len(items))
	placedRects := make([]model.Placement, 0, len(items))
	var unplaced []string

	var it model.Item
	for _, it = range items {
		accepted, rect := tryPlace(g, pool, strategy, it, opts)
		if !accepted {
			unplaced = append(unplaced, it.ID)
			continue
		}

		placements[it.ID] = rect
		placedRects = append(placedRects, rect)
		pushSpawnedPoints(pool, rect, c, placedRects)
	}

	var placedArea int
	var p model.Placement
	for _, p = range placements {
		placedArea += p.Area()
	}
	util := 0.0
	if area := c.Area(); area > 0 {
		util = float64(placedArea) / float64(area)
	}

	return Result{Placements: placements, Unplaced: unplaced, Utilization: util}, nil
}

// tryPlace drains pool (in strategy order) for item it, attempting its
// given orientation and, if enabled and the item is non-square, its
// rotated orientation, until one fits or the pool empties. Points rejected
// on the way to a fit are discarded; if the item fits nowhere, the pool is
// refilled with the points it rejected, in their original order, so later
// items can still use them.
func tryPlace(g *grid.Grid, pool *points.Pool, strategy points.Strategy, it model.Item, opts Options) (bool, model.Placement) {
	var rejected []spawned
	for {
		cls, pt, ok := pool.PopNext(strategy)
		if !ok {
			pool.Clear()
			var s spawned
			for _, s = range rejected {
				pool.Push(s.class, s.x, s.y)
			}

			return false, model.Placement{}
		}

		if g.FreeRect(pt.X, pt.Y, it.W, it.L) {
			_ = g.Mark(pt.X, pt.Y, it.W, it.L)

			return true, model.Placement{X: pt.X, Y: pt.Y, W: it.W, L: it.L}
		}

		if opts.Rotation && it.W != it.L && g.FreeRect(pt.X, pt.Y, it.L, it.W) {
			_ = g.Mark(pt.X, pt.Y, it.L, it.W)

			return true, model.Placement{X: pt.X, Y: pt.Y, W: it.L, L: it.W}
		}
		// Neither orientation fit at this point; set it aside and keep draining.
		rejected = append(rejected, spawned{class: cls, x: pt.X, y: pt.Y})
	}
}

// pushSpawnedPoints computes the ten candidate points for the just-accepted
// rect and pushes every in-bounds one into pool.
func pushSpawnedPoints(pool *points.Pool, rect model.Placement, c model.Container, placedRects []model.Placement) {
	cand := spawnPoints(rect, c.W, c.L, placedRects)
	var s spawned
	for _, s = range cand {
		if s.x < 0 || s.y < 0 || s.x > c.W || s.y > c.L {
			continue
		}
		pool.Push(s.class, s.x, s.y)
	}
}
