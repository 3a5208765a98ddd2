package element_test

import (
	"testing"

	"github.com/katalvlaran/dsbelief/element"
	"github.com/stretchr/testify/require"
)

func TestEnumerator_CoversAllSubsets(t *testing.T) {
	en, err := element.NewEnumerator(3)
	require.NoError(t, err)

	seen := map[string]bool{}
	count := 0
	for {
		e, ok := en.Next()
		if !ok {
			break
		}
		seen[e.String()] = true
		count++
	}
	require.Equal(t, 8, count)
	require.True(t, seen["{}"])
	require.True(t, seen["{0,1,2}"])
}

func TestEnumerator_Reset(t *testing.T) {
	en, err := element.NewEnumerator(2)
	require.NoError(t, err)

	first, _ := en.Next()
	en.Reset()
	second, _ := en.Next()
	require.True(t, first.Equal(second))
}

func TestNewEnumerator_OutOfRange(t *testing.T) {
	_, err := element.NewEnumerator(1)
	require.ErrorIs(t, err, element.ErrOutOfRange)
}
