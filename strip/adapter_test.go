package strip_test

import (
	"testing"

	"github.com/AlkiviadisAleiferis/hyperpack/model"
	"github.com/AlkiviadisAleiferis/hyperpack/strip"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, id string, w, l int) model.Item {
	t.Helper()
	it, err := model.NewItem(id, w, l)
	require.NoError(t, err)

	return it
}

func TestNewSeedsUpperBoundHeight(t *testing.T) {
	t.Parallel()

	items := []model.Item{mustItem(t, "a", 2, 3), mustItem(t, "b", 2, 4)}
	a := strip.New(2, items)
	require.Equal(t, 7, a.HCurrent)
	require.Equal(t, 2, a.Width)
}

func TestContainerSnapshot(t *testing.T) {
	t.Parallel()

	a := strip.New(5, nil)
	a.HCurrent = 9
	c := a.Container()
	require.Equal(t, 5, c.W)
	require.Equal(t, 9, c.L)
}

func TestTightenShrinksOnCompleteSolution(t *testing.T) {
	t.Parallel()

	items := map[string]model.Item{"a": mustItem(t, "a", 2, 2)}
	a := strip.New(2, []model.Item{items["a"]})
	require.Equal(t, 2, a.HCurrent)

	a.HCurrent = 10 // simulate an over-seeded height
	sol := model.NewSolution()
	sol.ByContainer["strip"] = map[string]model.Placement{
		"a": {X: 0, Y: 0, W: 2, L: 2},
	}

	changed := a.Tighten(sol, items)
	require.True(t, changed)
	require.Equal(t, 2, a.HCurrent)
}

func TestTightenNoOpWhenIncompleteAndNoMinHeight(t *testing.T) {
	t.Parallel()

	items := map[string]model.Item{
		"a": mustItem(t, "a", 2, 2),
		"b": mustItem(t, "b", 2, 2),
	}
	a := strip.New(2, []model.Item{items["a"], items["b"]})

	sol := model.NewSolution()
	sol.ByContainer["strip"] = map[string]model.Placement{
		"a": {X: 0, Y: 0, W: 2, L: 2},
	}

	changed := a.Tighten(sol, items)
	require.False(t, changed)
}

func TestTightenHonorsMinHeightWithIncompleteSolution(t *testing.T) {
	t.Parallel()

	items := map[string]model.Item{
		"a": mustItem(t, "a", 2, 2),
		"b": mustItem(t, "b", 2, 2),
	}
	a := strip.New(2, []model.Item{items["a"], items["b"]})
	minH := 2
	a.MinHeight = &minH

	sol := model.NewSolution()
	sol.ByContainer["strip"] = map[string]model.Placement{
		"a": {X: 0, Y: 0, W: 2, L: 2},
	}

	changed := a.Tighten(sol, items)
	require.True(t, changed)
	require.Equal(t, 2, a.HCurrent)
}

func TestTightenClampsToMinHeightOnCompleteSolution(t *testing.T) {
	t.Parallel()

	items := map[string]model.Item{"a": mustItem(t, "a", 2, 1)}
	a := strip.New(2, []model.Item{items["a"]})
	minH := 5
	a.MinHeight = &minH
	a.HCurrent = 10

	sol := model.NewSolution()
	sol.ByContainer["strip"] = map[string]model.Placement{
		"a": {X: 0, Y: 0, W: 2, L: 1},
	}

	changed := a.Tighten(sol, items)
	require.True(t, changed)
	require.Equal(t, minH, a.HCurrent, "HCurrent must never drop below MinHeight even for a complete packing")
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	a := strip.New(3, []model.Item{mustItem(t, "a", 1, 1)})
	clone := a.Clone()
	clone.HCurrent = 99

	require.NotEqual(t, a.HCurrent, clone.HCurrent)
}

func TestResetReseedsHeight(t *testing.T) {
	t.Parallel()

	items := []model.Item{mustItem(t, "a", 1, 5)}
	a := strip.New(3, items)
	a.HCurrent = 1

	a.Reset(items)
	require.Equal(t, 5, a.HCurrent)
}
