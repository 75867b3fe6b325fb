package hyperpack

import "errors"

// Error policy: only sentinel vars are exposed; callers branch with
// errors.Is. Sentinels are never wrapped with a formatted string at
// definition site.
var (
	// ErrContainers indicates an invalid or empty Containers map, or a
	// conflicting attempt to set both Containers and a strip-pack width.
	ErrContainers = errors.New("hyperpack: invalid containers")

	// ErrItems indicates an invalid or empty Items map.
	ErrItems = errors.New("hyperpack: invalid items")

	// ErrDimensions indicates a non-positive width/length on an item or
	// container.
	ErrDimensions = errors.New("hyperpack: invalid dimensions")

	// ErrSettings indicates an invalid Settings value (e.g. WorkersNum <= 0
	// or MaxTimeInSeconds <= 0).
	ErrSettings = errors.New("hyperpack: invalid settings")

	// ErrPotentialPoints indicates a Strategy that is not a valid
	// permutation of the ten potential-point classes.
	ErrPotentialPoints = errors.New("hyperpack: invalid potential-points strategy")

	// ErrMultiProcess wraps hyper.ErrAllWorkersFailed: every hyper-search
	// worker ended in error or a recovered panic.
	ErrMultiProcess = errors.New("hyperpack: all search workers failed")

	// ErrFigureExport is reserved for the external figure-rendering
	// boundary. hyperpack never returns it itself; it exists only so
	// callers type-switching on the full error taxonomy compile against a
	// complete set.
	ErrFigureExport = errors.New("hyperpack: figure export failed")
)
