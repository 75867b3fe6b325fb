package hyper_test

import (
	"context"
	"testing"
	"time"

	"github.com/AlkiviadisAleiferis/hyperpack/construct"
	"github.com/AlkiviadisAleiferis/hyperpack/dispatch"
	"github.com/AlkiviadisAleiferis/hyperpack/hyper"
	"github.com/AlkiviadisAleiferis/hyperpack/model"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, id string, w, l int) model.Item {
	t.Helper()
	it, err := model.NewItem(id, w, l)
	require.NoError(t, err)

	return it
}

func mustContainer(t *testing.T, id string, w, l int) model.Container {
	t.Helper()
	c, err := model.NewContainer(id, w, l)
	require.NoError(t, err)

	return c
}

func TestRunSingleWorkerFindsFullPacking(t *testing.T) {
	t.Parallel()

	containers := []model.Container{mustContainer(t, "c1", 4, 4)}
	items := []model.Item{
		mustItem(t, "a", 2, 2),
		mustItem(t, "b", 2, 2),
		mustItem(t, "c", 2, 2),
		mustItem(t, "d", 2, 2),
	}

	opts := hyper.Options{
		WorkersNum:    1,
		MaxTime:       5 * time.Second,
		Containers:    containers,
		ConstructOpts: construct.DefaultOptions(),
		ObjectiveK:    dispatch.DefaultObjectiveK,
	}

	res, err := hyper.Run(context.Background(), items, opts)
	require.NoError(t, err)
	require.InDelta(t, 1.0, res.Objective, 1e-9)
	require.Equal(t, 4, res.Best.PlacedItemCount())
}

func TestRunMultiWorkerAgreesWithSingleWorker(t *testing.T) {
	t.Parallel()

	containers := []model.Container{mustContainer(t, "c1", 6, 4)}
	items := []model.Item{
		mustItem(t, "a", 3, 2),
		mustItem(t, "b", 3, 2),
		mustItem(t, "c", 2, 2),
	}

	base := hyper.Options{
		MaxTime:       5 * time.Second,
		Containers:    containers,
		ConstructOpts: construct.DefaultOptions(),
		ObjectiveK:    dispatch.DefaultObjectiveK,
	}

	single := base
	single.WorkersNum = 1
	multi := base
	multi.WorkersNum = 4

	singleRes, err := hyper.Run(context.Background(), items, single)
	require.NoError(t, err)

	multiRes, err := hyper.Run(context.Background(), items, multi)
	require.NoError(t, err)

	require.InDelta(t, singleRes.Objective, multiRes.Objective, 1e-9)
}

func TestRunRespectsContextCancellation(t *testing.T) {
	t.Parallel()

	containers := []model.Container{mustContainer(t, "c1", 3, 3)}
	items := []model.Item{mustItem(t, "a", 1, 1)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := hyper.Options{
		WorkersNum:    2,
		MaxTime:       5 * time.Second,
		Containers:    containers,
		ConstructOpts: construct.DefaultOptions(),
		ObjectiveK:    dispatch.DefaultObjectiveK,
	}

	_, err := hyper.Run(ctx, items, opts)
	// Cancellation is not a worker failure: Run returns a best-effort result,
	// empty if no worker finished a strategy first. What matters here is
	// that Run does not hang.
	_ = err
}
