package strip

import (
	"context"
	"time"

	"github.com/AlkiviadisAleiferis/hyperpack/construct"
	"github.com/AlkiviadisAleiferis/hyperpack/hyper"
	"github.com/AlkiviadisAleiferis/hyperpack/localsearch"
	"github.com/AlkiviadisAleiferis/hyperpack/model"
	"github.com/AlkiviadisAleiferis/hyperpack/points"
)

// RunOptions configures one strip.Run call.
type RunOptions struct {
	// Adapter is the strip container state to pack against.
	Adapter *Adapter

	// WorkersNum selects single-worker (localsearch.Run directly) vs
	// multi-worker (hyper.Run) search. Values <= 1 mean single-worker.
	WorkersNum int

	// MaxTime bounds the whole strip.Run call, including every tightening
	// iteration.
	MaxTime time.Duration

	// Strategy fixes the potential-points drain order for the single-worker
	// path. Zero value (not a valid permutation) defaults to
	// points.DefaultStrategy(). Ignored in the multi-worker path, where
	// hyper.Run enumerates strategies itself.
	Strategy points.Strategy

	// ConstructOpts, ObjectiveK and ThrottleThreshold are forwarded to
	// whichever search layer runs underneath.
	ConstructOpts     construct.Options
	ObjectiveK        float64
	ThrottleThreshold int
}

// resolvedStrategy returns s, defaulting to points.DefaultStrategy() when s
// is the zero value (which is not a valid permutation).
func resolvedStrategy(s points.Strategy) points.Strategy {
	if points.ValidateStrategy(s) != nil {
		return points.DefaultStrategy()
	}

	return s
}

// Run repeatedly packs items against opts.Adapter's current container,
// tightening the container's height from the best solution of each
// complete search pass and re-running, until a tightening pass changes
// nothing or the deadline passes. Solutions visited inside a pass do not
// tighten the height.
//
// HCurrent retention contract (documented at the boundary, per the
// source spec): a single-worker (WorkersNum <= 1) call mutates
// opts.Adapter in place, so its final HCurrent persists for a later call
// unless the caller explicitly invokes (*Adapter).Reset. A multi-worker
// call instead tightens a single clone of opts.Adapter and leaves the
// caller's *Adapter completely untouched; callers needing the
// multi-worker result's final height must read the second return value,
// not opts.Adapter.
func Run(ctx context.Context, items []model.Item, opts RunOptions) (model.Solution, int, error) {
	deadline := time.Now().Add(opts.MaxTime)
	if opts.MaxTime <= 0 {
		deadline = time.Now().Add(hyper.DefaultMaxTime)
	}

	byID := make(map[string]model.Item, len(items))
	var it model.Item
	for _, it = range items {
		byID[it.ID] = it
	}

	if opts.WorkersNum <= 1 {
		return runSingleWorker(ctx, items, byID, opts, deadline)
	}

	return runMultiWorker(ctx, items, byID, opts, deadline)
}

// runSingleWorker mutates opts.Adapter in place across iterations.
func runSingleWorker(ctx context.Context, items []model.Item, byID map[string]model.Item, opts RunOptions, deadline time.Time) (model.Solution, int, error) {
	a := opts.Adapter
	var best model.Solution

	for {
		lsOpts := localsearch.Options{
			Containers:        []model.Container{a.Container()},
			Strategy:          resolvedStrategy(opts.Strategy),
			ConstructOpts:     opts.ConstructOpts,
			ObjectiveK:        opts.ObjectiveK,
			ThrottleThreshold: opts.ThrottleThreshold,
			Deadline:          deadline,
		}

		sol, _, _, err := localsearch.Run(items, lsOpts)
		if err != nil {
			return model.Solution{}, 0, err
		}
		best = sol

		if !a.Tighten(sol, byID) {
			break
		}
		if time.Now().After(deadline) {
			break
		}
		select {
		case <-ctx.Done():
			return best, a.HCurrent, nil
		default:
		}
	}

	return best, a.HCurrent, nil
}

// runMultiWorker clones opts.Adapter once and tightens only the clone
// across its hyper.Run calls, so the caller's Adapter is never mutated;
// the returned height must be read from the int return value.
func runMultiWorker(ctx context.Context, items []model.Item, byID map[string]model.Item, opts RunOptions, deadline time.Time) (model.Solution, int, error) {
	working := opts.Adapter.Clone()
	var best model.Solution

	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}

		hOpts := hyper.Options{
			WorkersNum:        opts.WorkersNum,
			MaxTime:           remaining,
			Containers:        []model.Container{working.Container()},
			ConstructOpts:     opts.ConstructOpts,
			ObjectiveK:        opts.ObjectiveK,
			ThrottleThreshold: opts.ThrottleThreshold,
		}

		res, err := hyper.Run(ctx, items, hOpts)
		if err != nil {
			return model.Solution{}, 0, err
		}
		best = res.Best

		if !working.Tighten(res.Best, byID) {
			break
		}
		select {
		case <-ctx.Done():
			return best, working.HCurrent, nil
		default:
		}
	}

	return best, working.HCurrent, nil
}
