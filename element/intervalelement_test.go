package element_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dsbelief/element"
	"github.com/katalvlaran/dsbelief/interval"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, start, end float64) interval.Interval {
	t.Helper()
	iv, err := interval.New(start, end)
	require.NoError(t, err)
	return iv
}

func TestIntervalElement_NormalisesOnBuild(t *testing.T) {
	e := element.FromIntervals(
		mustInterval(t, 5, 7),
		mustInterval(t, 1, 3),
		mustInterval(t, 2, 6),
	)
	ivs := e.Intervals()
	require.Len(t, ivs, 1)
	require.Equal(t, 1.0, ivs[0].Start)
	require.Equal(t, 7.0, ivs[0].End)
}

func TestIntervalElement_EmptyAndComplete(t *testing.T) {
	require.True(t, element.EmptyInterval().IsEmpty())
	require.True(t, element.CompleteInterval().IsComplete())
	require.Equal(t, math.Inf(1), element.CompleteInterval().Card())
}

func TestIntervalElement_Opposite(t *testing.T) {
	e := element.FromIntervals(mustInterval(t, 0, 1), mustInterval(t, 2, 3))
	opp := e.Opposite()
	ivs := opp.Intervals()
	require.Len(t, ivs, 3)
	require.True(t, math.IsInf(ivs[0].Start, -1))
	require.Equal(t, 0.0, ivs[0].End)
	require.Equal(t, 1.0, ivs[1].Start)
	require.Equal(t, 2.0, ivs[1].End)
	require.Equal(t, 3.0, ivs[2].Start)
	require.True(t, math.IsInf(ivs[2].End, 1))
}

func TestIntervalElement_Opposite_Roundtrip(t *testing.T) {
	require.True(t, element.EmptyInterval().Opposite().IsComplete())
	require.True(t, element.CompleteInterval().Opposite().IsEmpty())
}

func TestIntervalElement_ConjunctionDisjunction(t *testing.T) {
	a := element.FromIntervals(mustInterval(t, 0, 5))
	b := element.FromIntervals(mustInterval(t, 3, 8))

	and, err := a.Conjunction(b)
	require.NoError(t, err)
	require.Equal(t, 3.0, and.Intervals()[0].Start)
	require.Equal(t, 5.0, and.Intervals()[0].End)

	or, err := a.Disjunction(b)
	require.NoError(t, err)
	require.Len(t, or.Intervals(), 1)
	require.Equal(t, 0.0, or.Intervals()[0].Start)
	require.Equal(t, 8.0, or.Intervals()[0].End)
}

func TestIntervalElement_IsSubsetOf(t *testing.T) {
	a := element.FromIntervals(mustInterval(t, 1, 2))
	b := element.FromIntervals(mustInterval(t, 0, 5))

	sub, err := a.IsSubsetOf(b)
	require.NoError(t, err)
	require.True(t, sub)

	sub, err = b.IsSubsetOf(a)
	require.NoError(t, err)
	require.False(t, sub)
}

func TestIntervalElement_IsCompatibleAlwaysTrue(t *testing.T) {
	a := element.EmptyInterval()
	b := element.CompleteInterval()
	require.True(t, a.IsCompatible(b))
}

func TestIntervalElement_Card(t *testing.T) {
	e := element.FromIntervals(mustInterval(t, 0, 2), mustInterval(t, 10, 13))
	require.Equal(t, 5.0, e.Card())
}

func TestIntervalElement_String(t *testing.T) {
	e := element.FromIntervals(mustInterval(t, 0, 1))
	require.Equal(t, "[0,1]", e.String())
	require.Equal(t, "{}", element.EmptyInterval().String())
}
