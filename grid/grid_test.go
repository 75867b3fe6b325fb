package grid_test

import (
	"testing"

	"github.com/AlkiviadisAleiferis/hyperpack/grid"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidDimensions(t *testing.T) {
	t.Parallel()

	_, err := grid.New(0, 4)
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)

	_, err = grid.New(4, -1)
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)
}

func TestFreeRectAndMark(t *testing.T) {
	t.Parallel()

	g, err := grid.New(4, 4)
	require.NoError(t, err)

	require.True(t, g.FreeRect(0, 0, 2, 2))
	require.NoError(t, g.Mark(0, 0, 2, 2))

	// Overlapping rectangle is no longer free.
	require.False(t, g.FreeRect(1, 1, 2, 2))
	err = g.Mark(1, 1, 2, 2)
	require.ErrorIs(t, err, grid.ErrNotFree)

	// Adjacent, non-overlapping rectangle remains free.
	require.True(t, g.FreeRect(2, 0, 2, 2))
	require.NoError(t, g.Mark(2, 0, 2, 2))

	require.Equal(t, 8, g.PopCount())
}

func TestOutOfBounds(t *testing.T) {
	t.Parallel()

	g, err := grid.New(4, 4)
	require.NoError(t, err)

	require.False(t, g.FreeRect(3, 3, 2, 2))
	require.False(t, g.FreeRect(-1, 0, 2, 2))

	err = g.Mark(3, 3, 2, 2)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestReset(t *testing.T) {
	t.Parallel()

	g, err := grid.New(4, 4)
	require.NoError(t, err)

	require.NoError(t, g.Mark(0, 0, 4, 4))
	require.Equal(t, 16, g.PopCount())

	g.Reset()
	require.Zero(t, g.PopCount())
	require.True(t, g.FreeRect(0, 0, 4, 4))
}

func TestFullCoverageExactFit(t *testing.T) {
	t.Parallel()

	g, err := grid.New(4, 4)
	require.NoError(t, err)

	coords := [][2]int{{0, 0}, {2, 0}, {0, 2}, {2, 2}}
	for _, c := range coords {
		require.True(t, g.FreeRect(c[0], c[1], 2, 2))
		require.NoError(t, g.Mark(c[0], c[1], 2, 2))
	}
	require.Equal(t, 16, g.PopCount())
	require.False(t, g.FreeRect(0, 0, 1, 1))
}
