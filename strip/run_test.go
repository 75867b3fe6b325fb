package strip_test

import (
	"context"
	"testing"
	"time"

	"github.com/AlkiviadisAleiferis/hyperpack/construct"
	"github.com/AlkiviadisAleiferis/hyperpack/dispatch"
	"github.com/AlkiviadisAleiferis/hyperpack/model"
	"github.com/AlkiviadisAleiferis/hyperpack/strip"
	"github.com/stretchr/testify/require"
)

func TestRunSingleWorkerTightensAndRetainsAdapter(t *testing.T) {
	t.Parallel()

	items := []model.Item{
		mustItem(t, "a", 2, 2),
		mustItem(t, "b", 2, 2),
	}
	a := strip.New(4, items)
	seeded := a.HCurrent

	opts := strip.RunOptions{
		Adapter:       a,
		WorkersNum:    1,
		MaxTime:       2 * time.Second,
		ConstructOpts: construct.DefaultOptions(),
		ObjectiveK:    dispatch.DefaultObjectiveK,
	}

	sol, height, err := strip.Run(context.Background(), items, opts)
	require.NoError(t, err)
	require.Equal(t, 2, sol.PlacedItemCount())
	require.Less(t, height, seeded)
	require.Equal(t, height, a.HCurrent, "single-worker Run retains HCurrent on the passed Adapter")
}

func TestRunMultiWorkerLeavesCallerAdapterUntouched(t *testing.T) {
	t.Parallel()

	items := []model.Item{
		mustItem(t, "a", 2, 2),
		mustItem(t, "b", 2, 2),
	}
	a := strip.New(2, items)
	seededHeight := a.HCurrent

	opts := strip.RunOptions{
		Adapter:       a,
		WorkersNum:    2,
		MaxTime:       2 * time.Second,
		ConstructOpts: construct.DefaultOptions(),
		ObjectiveK:    dispatch.DefaultObjectiveK,
	}

	_, height, err := strip.Run(context.Background(), items, opts)
	require.NoError(t, err)
	require.Equal(t, seededHeight, a.HCurrent, "multi-worker Run must not mutate the caller's Adapter")
	require.LessOrEqual(t, height, seededHeight)
}
