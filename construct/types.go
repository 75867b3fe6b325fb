// Package construct implements the point-generation construction heuristic
// (spec §4.3): given one container, an ordered list of remaining items, a
// potential-points strategy, and a rotation flag, it deterministically
// packs items into the container, producing a placement map, the items it
// could not place (order preserved), and the container's utilization.
package construct

import (
	"errors"

	"github.com/AlkiviadisAleiferis/hyperpack/model"
)

// Sentinel errors for the construct package.
var (
	// ErrInvalidStrategy indicates the given Strategy is not a valid permutation
	// of the ten potential-point classes.
	ErrInvalidStrategy = errors.New("construct: invalid strategy")
)

// Options configures a single constructor run.
type Options struct {
	// Rotation, if true, allows the constructor to try an item's 90°-rotated
	// orientation when its given orientation does not fit.
	Rotation bool
}

// DefaultOptions returns Options{Rotation: true}, the spec's documented
// default.
func DefaultOptions() Options {
	return Options{Rotation: true}
}

// Result is the outcome of one constructor run against a single container.
type Result struct {
	// Placements maps item id -> Placement, for items placed in this run.
	Placements map[string]model.Placement

	// Unplaced lists the ids of items that did not fit, in their original
	// input order.
	Unplaced []string

	// Utilization is the placed area divided by the container's area.
	Utilization float64
}
