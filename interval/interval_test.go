package interval_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dsbelief/interval"
	"github.com/stretchr/testify/require"
)

func TestNew_Invalid(t *testing.T) {
	_, err := interval.New(5, 1)
	require.ErrorIs(t, err, interval.ErrInvalidInterval)
}

func TestNew_NaNIsEmpty(t *testing.T) {
	iv, err := interval.New(math.NaN(), 1)
	require.NoError(t, err)
	require.True(t, iv.IsEmpty())
}

func TestEmptyAndComplete(t *testing.T) {
	require.True(t, interval.Empty().IsEmpty())
	require.True(t, interval.Complete().IsComplete())
	require.Equal(t, math.Inf(1), interval.Complete().Size())
}

func TestSize(t *testing.T) {
	iv, err := interval.New(1, 4)
	require.NoError(t, err)
	require.Equal(t, 3.0, iv.Size())
	require.Equal(t, 0.0, interval.Empty().Size())
}

func TestContains(t *testing.T) {
	iv, _ := interval.New(1, 4)
	require.True(t, iv.Contains(1))
	require.True(t, iv.Contains(4))
	require.False(t, iv.Contains(5))
	require.False(t, interval.Empty().Contains(0))
}

func TestOverlapsAndAdjoins(t *testing.T) {
	a, _ := interval.New(1, 3)
	b, _ := interval.New(3, 5)
	c, _ := interval.New(4, 5)

	require.True(t, a.Overlaps(b))
	require.True(t, a.Adjoins(b))
	require.False(t, a.Overlaps(c))
	require.False(t, a.Adjoins(c))
}

func TestIntersectAndEncompass(t *testing.T) {
	a, _ := interval.New(1, 5)
	b, _ := interval.New(3, 7)

	inter := a.Intersect(b)
	require.Equal(t, 3.0, inter.Start)
	require.Equal(t, 5.0, inter.End)

	enc := a.Encompass(b)
	require.Equal(t, 1.0, enc.Start)
	require.Equal(t, 7.0, enc.End)

	disjointA, _ := interval.New(1, 2)
	disjointB, _ := interval.New(5, 6)
	require.True(t, disjointA.Intersect(disjointB).IsEmpty())
}

func TestEqual(t *testing.T) {
	a, _ := interval.New(1, 2)
	b, _ := interval.New(1, 2)
	require.True(t, a.Equal(b))
	require.True(t, interval.Empty().Equal(interval.Empty()))
}

func TestBefore(t *testing.T) {
	a, _ := interval.New(1, 2)
	b, _ := interval.New(3, 4)
	require.True(t, a.Before(b))
	require.False(t, b.Before(a))
}
