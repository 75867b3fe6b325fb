// Package localsearch implements the 2-opt hill-climb over item
// permutations (spec §4.5): repeatedly swap two item positions, re-run the
// dispatcher against the new order, and keep the swap if it strictly
// improves the packing objective.
package localsearch

import (
	"time"

	"github.com/AlkiviadisAleiferis/hyperpack/construct"
	"github.com/AlkiviadisAleiferis/hyperpack/model"
	"github.com/AlkiviadisAleiferis/hyperpack/points"
)

// DefaultThrottleThreshold is the item count above which Run switches from
// best-improvement to first-improvement scanning, per §4.5.
const DefaultThrottleThreshold = 71

// Options configures one Run call.
type Options struct {
	// Containers are tried in order by the dispatcher on every candidate.
	Containers []model.Container

	// Strategy selects potential-point draining order for the constructor.
	Strategy points.Strategy

	// ConstructOpts is forwarded to the constructor on every candidate.
	ConstructOpts construct.Options

	// ObjectiveK is the exponent passed to dispatch.Objective.
	ObjectiveK float64

	// ThrottleThreshold is the item count above which first-improvement
	// scanning replaces best-improvement. Zero means DefaultThrottleThreshold.
	ThrottleThreshold int

	// Deadline, if non-zero, bounds wall-clock time; Run returns the best
	// solution found so far (not an error) once passed.
	Deadline time.Time

	// Cancel, if non-nil, is checked alongside Deadline; closing it has the
	// same "return best so far" effect.
	Cancel <-chan struct{}

	// OnImprovement, if non-nil, is called with the new objective value
	// immediately after each accepted improving swap. It exists to let
	// callers (and tests) observe the monotone non-decreasing sequence of
	// objective values a single Run call produces; Run itself never reads
	// it back.
	OnImprovement func(objective float64)
}

// resolvedThreshold returns opts.ThrottleThreshold, defaulting to
// DefaultThrottleThreshold when zero.
func (o Options) resolvedThreshold() int {
	if o.ThrottleThreshold == 0 {
		return DefaultThrottleThreshold
	}

	return o.ThrottleThreshold
}
