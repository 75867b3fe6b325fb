// Package hyper implements the hyper-heuristic search (spec §4.6): it
// enumerates all 10! permutations of the ten potential-point classes,
// runs localsearch.Run for each resulting points.Strategy, and tracks the
// best solution found across however many goroutine workers are asked to
// share the work.
package hyper

import (
	"errors"
	"time"

	"github.com/AlkiviadisAleiferis/hyperpack/construct"
	"github.com/AlkiviadisAleiferis/hyperpack/model"
	"github.com/AlkiviadisAleiferis/hyperpack/points"
)

// ErrAllWorkersFailed indicates every worker's goroutine ended in a
// recovered panic or hard error; no usable Result was produced.
var ErrAllWorkersFailed = errors.New("hyper: all workers failed")

// DefaultWorkersNum is the worker count Options.WorkersNum defaults to
// when left zero.
const DefaultWorkersNum = 1

// DefaultMaxTime is the wall-clock budget Options.MaxTime defaults to
// when left zero.
const DefaultMaxTime = 60 * time.Second

// Options configures one hyper-search run.
type Options struct {
	// WorkersNum is the number of goroutine workers sharing the 10!
	// permutation space. Zero means DefaultWorkersNum.
	WorkersNum int

	// MaxTime bounds wall-clock time for the whole search. Zero means
	// DefaultMaxTime.
	MaxTime time.Duration

	// Containers is forwarded to every localsearch.Run call.
	Containers []model.Container

	// ConstructOpts is forwarded to every localsearch.Run call.
	ConstructOpts construct.Options

	// ObjectiveK is forwarded to every localsearch.Run call.
	ObjectiveK float64

	// ThrottleThreshold is forwarded to every localsearch.Run call.
	ThrottleThreshold int

	// Orient, if non-zero, normalizes every item's orientation once before
	// the permutation loop starts. Defaults to OrientNone.
	Orient OrientMode

	// SortKey, if set alongside SortEnabled, ranks items once before the
	// permutation loop starts. Defaults to the no-op (unsorted) order.
	SortKey     SortKey
	SortEnabled bool
	SortReverse bool

	// OnImprovement, if non-nil, is forwarded to every localsearch.Run call
	// as its OnImprovement hook. Workers invoke it directly from their own
	// goroutine — a non-nil hook shared across WorkersNum > 1 must be
	// goroutine-safe.
	OnImprovement func(objective float64)
}

func (o Options) resolvedWorkers() int {
	if o.WorkersNum <= 0 {
		return DefaultWorkersNum
	}

	return o.WorkersNum
}

func (o Options) resolvedMaxTime() time.Duration {
	if o.MaxTime <= 0 {
		return DefaultMaxTime
	}

	return o.MaxTime
}

// Result is the outcome of a hyper-search run.
type Result struct {
	// Best is the best model.Solution found by any worker.
	Best model.Solution

	// Objective is Best's dispatch.Objective score.
	Objective float64

	// StrategyUsed is the points.Strategy that produced Best.
	StrategyUsed points.Strategy

	// WorkerErrors collects recovered panics/errors from individual
	// workers; a non-empty slice does not by itself mean the search
	// failed, as long as at least one worker produced a Result.
	WorkerErrors []error

	// Elapsed is the wall-clock duration of the search.
	Elapsed time.Duration
}
