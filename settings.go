package hyperpack

import (
	"github.com/AlkiviadisAleiferis/hyperpack/hyper"
)

// Settings configures a Solver's search. It is plain data, built via
// DefaultSettings and zero or more SettingsOption values — never a
// schema/config-file loader, which is out of this module's scope.
type Settings struct {
	WorkersNum       int
	MaxTimeInSeconds int
	Rotation         bool

	Orient      hyper.OrientMode
	SortKey     hyper.SortKey
	SortEnabled bool
	SortReverse bool

	// Figure is a documented no-op passthrough: hyperpack never reads it.
	// It exists only so callers who also use an external figure renderer
	// can carry renderer-specific config alongside Settings without a
	// second struct.
	Figure any
}

// DefaultSettings returns {WorkersNum: 1, MaxTimeInSeconds: 60,
// Rotation: true}, every other field at its zero value.
func DefaultSettings() Settings {
	return Settings{
		WorkersNum:       1,
		MaxTimeInSeconds: 60,
		Rotation:         true,
	}
}

// SettingsOption customizes a Settings value by mutation. Option
// constructors validate and panic on meaningless inputs; Solver methods
// themselves never panic.
type SettingsOption func(*Settings)

// WithWorkersNum sets the number of goroutine workers the hyper-search
// layer uses. Panics if n <= 0.
func WithWorkersNum(n int) SettingsOption {
	if n <= 0 {
		panic("hyperpack: WithWorkersNum(n<=0)")
	}

	return func(s *Settings) { s.WorkersNum = n }
}

// WithMaxTimeInSeconds sets the wall-clock search budget. Panics if
// seconds <= 0.
func WithMaxTimeInSeconds(seconds int) SettingsOption {
	if seconds <= 0 {
		panic("hyperpack: WithMaxTimeInSeconds(seconds<=0)")
	}

	return func(s *Settings) { s.MaxTimeInSeconds = seconds }
}

// WithRotation enables or disables rotated-orientation placement attempts.
func WithRotation(enabled bool) SettingsOption {
	return func(s *Settings) { s.Rotation = enabled }
}

// WithOrient sets the pre-search item orientation normalization.
func WithOrient(mode hyper.OrientMode) SettingsOption {
	return func(s *Settings) { s.Orient = mode }
}

// WithSort enables a pre-search item ranking by key, ascending unless
// reverse is true.
func WithSort(key hyper.SortKey, reverse bool) SettingsOption {
	return func(s *Settings) {
		s.SortEnabled = true
		s.SortKey = key
		s.SortReverse = reverse
	}
}

// WithFigure attaches a caller-owned figure-renderer configuration value.
// hyperpack stores it and never reads it.
func WithFigure(figure any) SettingsOption {
	return func(s *Settings) { s.Figure = figure }
}

// applyOptions applies opts in order over a copy of base.
func applyOptions(base Settings, opts ...SettingsOption) Settings {
	s := base
	var opt SettingsOption
	for _, opt = range opts {
		opt(&s)
	}

	return s
}

// validate reports ErrSettings if s is not usable.
func (s Settings) validate() error {
	if s.WorkersNum <= 0 || s.MaxTimeInSeconds <= 0 {
		return ErrSettings
	}

	return nil
}
