package hyper

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/AlkiviadisAleiferis/hyperpack/localsearch"
	"github.com/AlkiviadisAleiferis/hyperpack/model"
	"github.com/AlkiviadisAleiferis/hyperpack/points"
	"golang.org/x/sync/errgroup"
)

// workerOutcome is one goroutine worker's contribution to the reduction.
type workerOutcome struct {
	sol       model.Solution
	objective float64
	strategy  points.Strategy
	found     bool
	err       error
}

// Run enumerates the 10! potential-points strategies across opts.WorkersNum
// goroutine workers, running localsearch.Run per strategy and tracking the
// best solution found.
//
// Workers share a single atomic.Uint64 cell holding
// math.Float64bits(bestObjectiveSeen) as a lock-free ratchet: each worker
// only ever raises it via a compare-and-swap loop, and checks it once per
// outer-loop iteration (a strategy boundary) to short-circuit once any
// worker reports a full, 100%-utilized packing.
//
// Complexity: O(10!/WorkersNum * localsearch.Run cost) per worker in the
// worst case (no early exit, no deadline).
func Run(ctx context.Context, items []model.Item, opts Options) (Result, error) {
	start := time.Now()
	workers := opts.resolvedWorkers()
	maxTime := opts.resolvedMaxTime()

	runCtx, cancel := context.WithTimeout(ctx, maxTime)
	defer cancel()

	fullObjective := float64(len(opts.Containers))

	ordered := items
	if opts.Orient != OrientNone {
		ordered = Orient(ordered, opts.Orient)
	}
	if opts.SortEnabled {
		ordered = Sort(ordered, opts.SortKey, opts.SortReverse)
	}

	var sharedBest atomic.Uint64
	outcomes := make([]workerOutcome, workers)

	g, gctx := errgroup.WithContext(runCtx)
	var w int
	for w = 0; w < workers; w++ {
		workerIdx := w
		g.Go(func() error {
			outcomes[workerIdx] = runWorker(gctx, workerIdx, workers, ordered, opts, &sharedBest, fullObjective)

			return nil
		})
	}
	_ = g.Wait() // workers never return a hard error; failures are recorded per-outcome

	best, objective, strategy, workerErrors, anyFound := reduce(outcomes)
	if !anyFound {
		if len(workerErrors) == workers {
			return Result{}, ErrAllWorkersFailed
		}
		// Stopped by deadline or cancellation before any worker finished a
		// strategy: not a failure, the best-so-far is simply empty.
		best, objective = model.NewSolution(), 0
	}

	return Result{
		Best:         best,
		Objective:    objective,
		StrategyUsed: strategy,
		WorkerErrors: workerErrors,
		Elapsed:      time.Since(start),
	}, nil
}

// runWorker evaluates worker workerIdx's contiguous chunk of the
// permutation space, recovering from any panic so sibling workers are
// unaffected.
func runWorker(ctx context.Context, workerIdx, workers int, items []model.Item, opts Options, sharedBest *atomic.Uint64, fullObjective float64) (out workerOutcome) {
	defer func() {
		if r := recover(); r != nil {
			out = workerOutcome{err: fmt.Errorf("hyper: worker %d panicked: %v", workerIdx, r)}
		}
	}()

	chunkStart := workerIdx * TotalPermutations / workers
	chunkEnd := (workerIdx + 1) * TotalPermutations / workers

	it := newPermutationIterator(chunkEnd)
	it.skip(chunkStart)

	bestObjective := -1.0
	var bestSol model.Solution
	var bestStrategy points.Strategy
	found := false

	for {
		select {
		case <-ctx.Done():
			return workerOutcome{sol: bestSol, objective: bestObjective, strategy: bestStrategy, found: found}
		default:
		}

		strategy, ok := it.next()
		if !ok {
			break
		}

		lsOpts := localsearch.Options{
			Containers:        opts.Containers,
			Strategy:          strategy,
			ConstructOpts:     opts.ConstructOpts,
			ObjectiveK:        opts.ObjectiveK,
			ThrottleThreshold: opts.ThrottleThreshold,
			Cancel:            ctx.Done(),
			OnImprovement:     opts.OnImprovement,
		}
		if d, ok := ctx.Deadline(); ok {
			lsOpts.Deadline = d
		}

		sol, objective, _, err := localsearch.Run(items, lsOpts)
		if err != nil {
			return workerOutcome{err: err}
		}

		if objective > bestObjective {
			bestSol, bestObjective, bestStrategy, found = sol, objective, strategy, true
		}

		if bestObjective >= fullObjective {
			raiseShared(sharedBest, bestObjective)

			return workerOutcome{sol: bestSol, objective: bestObjective, strategy: bestStrategy, found: true}
		}

		// Strategy-boundary check: another worker may already have found a
		// full packing.
		if math.Float64frombits(sharedBest.Load()) >= fullObjective {
			break
		}
	}

	if found {
		raiseShared(sharedBest, bestObjective)
	}

	return workerOutcome{sol: bestSol, objective: bestObjective, strategy: bestStrategy, found: found}
}

// raiseShared CASes value into sharedBest if it exceeds the current
// contents; it never lowers the cell (a monotone ratchet).
func raiseShared(sharedBest *atomic.Uint64, value float64) {
	for {
		cur := sharedBest.Load()
		if value <= math.Float64frombits(cur) {
			return
		}
		if sharedBest.CompareAndSwap(cur, math.Float64bits(value)) {
			return
		}
	}
}

// reduce picks the best outcome across all workers, in worker-index order
// so ties break deterministically by the lowest chunk index, and collects
// every worker's error (if any).
func reduce(outcomes []workerOutcome) (model.Solution, float64, points.Strategy, []error, bool) {
	var best model.Solution
	bestObjective := -1.0
	var bestStrategy points.Strategy
	var errs []error
	anyFound := false

	var o workerOutcome
	for _, o = range outcomes {
		if o.err != nil {
			errs = append(errs, o.err)

			continue
		}
		if !o.found {
			continue
		}
		if !anyFound || o.objective > bestObjective {
			best, bestObjective, bestStrategy, anyFound = o.sol, o.objective, o.strategy, true
		}
	}

	return best, bestObjective, bestStrategy, errs, anyFound
}
