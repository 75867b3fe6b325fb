package points_test

import (
	"testing"

	"github.com/AlkiviadisAleiferis/hyperpack/points"
	"github.com/stretchr/testify/require"
)

func TestValidateStrategy(t *testing.T) {
	t.Parallel()

	require.NoError(t, points.ValidateStrategy(points.DefaultStrategy()))

	bad := points.Strategy{points.ClassA, points.ClassA, points.ClassC, points.ClassD,
		points.ClassAPrime, points.ClassBPrime, points.ClassADouble, points.ClassBDouble,
		points.ClassE, points.ClassF}
	require.ErrorIs(t, points.ValidateStrategy(bad), points.ErrDuplicateClass)
}

func TestSeedAndPopNext(t *testing.T) {
	t.Parallel()

	p := points.NewPool()
	p.Seed()

	strat := points.DefaultStrategy()
	c, pt, ok := p.PopNext(strat)
	require.True(t, ok)
	require.Equal(t, points.ClassA, c)
	require.Equal(t, points.Point{X: 0, Y: 0}, pt)

	_, _, ok = p.PopNext(strat)
	require.False(t, ok, "pool should be empty after draining the single seed point")
}

func TestPushDedup(t *testing.T) {
	t.Parallel()

	p := points.NewPool()
	p.Push(points.ClassB, 3, 4)
	p.Push(points.ClassB, 3, 4) // duplicate, ignored
	p.Push(points.ClassB, 5, 6)

	require.Equal(t, 2, p.Len(points.ClassB))
}

func TestPopNextFIFOOrder(t *testing.T) {
	t.Parallel()

	p := points.NewPool()
	p.Push(points.ClassC, 1, 1)
	p.Push(points.ClassC, 2, 2)
	p.Push(points.ClassC, 3, 3)

	strat := points.DefaultStrategy()
	var got []points.Point
	for i := 0; i < 3; i++ {
		_, pt, ok := p.PopNext(strat)
		require.True(t, ok)
		got = append(got, pt)
	}
	require.Equal(t, []points.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}, got)
}

func TestPopNextRespectsStrategyOrder(t *testing.T) {
	t.Parallel()

	p := points.NewPool()
	p.Push(points.ClassF, 9, 9)
	p.Push(points.ClassA, 1, 1)

	// Strategy draining F before A must return the F point first.
	strat := points.Strategy{
		points.ClassF, points.ClassB, points.ClassC, points.ClassD,
		points.ClassAPrime, points.ClassBPrime, points.ClassADouble, points.ClassBDouble,
		points.ClassE, points.ClassA,
	}
	c, pt, ok := p.PopNext(strat)
	require.True(t, ok)
	require.Equal(t, points.ClassF, c)
	require.Equal(t, points.Point{X: 9, Y: 9}, pt)
}

func TestClear(t *testing.T) {
	t.Parallel()

	p := points.NewPool()
	p.Seed()
	p.Push(points.ClassB, 1, 1)
	p.Clear()

	_, _, ok := p.PopNext(points.DefaultStrategy())
	require.False(t, ok)
	require.Zero(t, p.Len(points.ClassA))
}
