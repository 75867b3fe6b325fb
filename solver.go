package hyperpack

import (
	"context"
	"errors"
	"time"

	"github.com/AlkiviadisAleiferis/hyperpack/construct"
	"github.com/AlkiviadisAleiferis/hyperpack/dispatch"
	"github.com/AlkiviadisAleiferis/hyperpack/hyper"
	"github.com/AlkiviadisAleiferis/hyperpack/model"
	"github.com/AlkiviadisAleiferis/hyperpack/points"
	"github.com/AlkiviadisAleiferis/hyperpack/strip"
)

// Solver is the stateful façade over the search core: a small state
// object with setter methods that validate and, except SetSettings,
// reset the cached solution.
type Solver struct {
	items      Items
	containers Containers

	stripMode  bool
	stripWidth int
	adapter    *strip.Adapter

	settings Settings
	strategy points.Strategy

	solution    model.Solution
	hasSolution bool
}

// NewSolver builds a multi-container Solver. items and containers must
// both be non-empty and dimensionally valid.
func NewSolver(items Items, containers Containers, opts ...SettingsOption) (*Solver, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}
	if len(containers) == 0 {
		return nil, ErrContainers
	}
	var c model.Container
	for _, c = range containers {
		if c.W <= 0 || c.L <= 0 {
			return nil, ErrDimensions
		}
	}

	settings := applyOptions(DefaultSettings(), opts...)
	if err := settings.validate(); err != nil {
		return nil, err
	}

	return &Solver{
		items:      items,
		containers: containers,
		settings:   settings,
		strategy:   points.DefaultStrategy(),
	}, nil
}

// NewStripSolver builds a strip-packing Solver: single container of fixed
// width and a height that shrinks as the search tightens it. Mutually
// exclusive with NewSolver's Containers — a Solver built this way has no
// Containers map at all.
func NewStripSolver(items Items, width int, opts ...SettingsOption) (*Solver, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}
	if width <= 0 {
		return nil, ErrDimensions
	}

	settings := applyOptions(DefaultSettings(), opts...)
	if err := settings.validate(); err != nil {
		return nil, err
	}

	return &Solver{
		items:      items,
		stripMode:  true,
		stripWidth: width,
		adapter:    strip.New(width, toSortedItems(items)),
		settings:   settings,
		strategy:   points.DefaultStrategy(),
	}, nil
}

func validateItems(items Items) error {
	if len(items) == 0 {
		return ErrItems
	}
	var it model.Item
	for _, it = range items {
		if it.W <= 0 || it.L <= 0 {
			return ErrDimensions
		}
	}

	return nil
}

// SetItems revalidates and replaces the item set, resetting the cached
// solution. For a strip Solver, it also reseeds the height adapter.
func (s *Solver) SetItems(items Items) error {
	if err := validateItems(items); err != nil {
		return err
	}
	s.items = items
	if s.stripMode {
		s.adapter = strip.New(s.stripWidth, toSortedItems(items))
	}
	s.resetSolution()

	return nil
}

// SetContainers revalidates and replaces the container set, resetting the
// cached solution. Invalid on a strip Solver.
func (s *Solver) SetContainers(containers Containers) error {
	if s.stripMode {
		return ErrContainers
	}
	if len(containers) == 0 {
		return ErrContainers
	}
	var c model.Container
	for _, c = range containers {
		if c.W <= 0 || c.L <= 0 {
			return ErrDimensions
		}
	}
	s.containers = containers
	s.resetSolution()

	return nil
}

// SetStrategy revalidates and replaces the potential-points strategy,
// resetting the cached solution.
func (s *Solver) SetStrategy(strategy points.Strategy) error {
	if err := points.ValidateStrategy(strategy); err != nil {
		return ErrPotentialPoints
	}
	s.strategy = strategy
	s.resetSolution()

	return nil
}

// SetSettings applies opts over the current Settings. Unlike the other
// setters, it does not reset the cached solution.
func (s *Solver) SetSettings(opts ...SettingsOption) error {
	settings := applyOptions(s.settings, opts...)
	if err := settings.validate(); err != nil {
		return err
	}
	s.settings = settings

	return nil
}

func (s *Solver) resetSolution() {
	s.solution = model.Solution{}
	s.hasSolution = false
}

// Solution returns the most recently cached solution from Solve. Calling
// it before Solve returns a zero-value, empty Solution.
func (s *Solver) Solution() model.Solution {
	return s.solution
}

// Solve runs the hyper-search (or the strip-pack adapter loop, for a
// Solver built via NewStripSolver) and caches the resulting Solution.
func (s *Solver) Solve(ctx context.Context) (model.Solution, error) {
	items := toSortedItems(s.items)
	constructOpts := construct.Options{Rotation: s.settings.Rotation}
	maxTime := time.Duration(s.settings.MaxTimeInSeconds) * time.Second

	if s.stripMode {
		sol, _, err := strip.Run(ctx, items, strip.RunOptions{
			Adapter:           s.adapter,
			WorkersNum:        s.settings.WorkersNum,
			MaxTime:           maxTime,
			Strategy:          s.strategy,
			ConstructOpts:     constructOpts,
			ObjectiveK:        dispatch.DefaultObjectiveK,
			ThrottleThreshold: 0,
		})
		if err != nil {
			return model.Solution{}, err
		}
		s.solution, s.hasSolution = sol, true

		return sol, nil
	}

	res, err := hyper.Run(ctx, items, hyper.Options{
		WorkersNum:        s.settings.WorkersNum,
		MaxTime:           maxTime,
		Containers:        toSortedContainers(s.containers),
		ConstructOpts:     constructOpts,
		ObjectiveK:        dispatch.DefaultObjectiveK,
		Orient:            s.settings.Orient,
		SortKey:           s.settings.SortKey,
		SortEnabled:       s.settings.SortEnabled,
		SortReverse:       s.settings.SortReverse,
	})
	if err != nil {
		if errors.Is(err, hyper.ErrAllWorkersFailed) {
			return model.Solution{}, ErrMultiProcess
		}

		return model.Solution{}, err
	}
	s.solution, s.hasSolution = res.Best, true

	return res.Best, nil
}
