package reflist_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/dsbelief/reflist"
	"github.com/stretchr/testify/require"
)

func TestNew_DuplicateLabel(t *testing.T) {
	_, err := reflist.New("Yes", "No", "Yes")
	require.ErrorIs(t, err, reflist.ErrDuplicateLabel)
}

func TestNew_EmptyLabel(t *testing.T) {
	_, err := reflist.New("Yes", "")
	require.ErrorIs(t, err, reflist.ErrEmptyLabel)
}

func TestIndexOf(t *testing.T) {
	rl, err := reflist.New("Yes", "No")
	require.NoError(t, err)

	idx, ok := rl.IndexOf("No")
	require.True(t, ok)
	require.Equal(t, 1, idx)

	_, ok = rl.IndexOf("Maybe")
	require.False(t, ok)
}

func TestLabel_OutOfRange(t *testing.T) {
	rl, err := reflist.New("Yes", "No")
	require.NoError(t, err)

	_, err = rl.Label(5)
	require.True(t, errors.Is(err, reflist.ErrOutOfRange))

	label, err := rl.Label(0)
	require.NoError(t, err)
	require.Equal(t, "Yes", label)
}

func TestEqual(t *testing.T) {
	a, _ := reflist.New("Yes", "No")
	b, _ := reflist.New("Yes", "No")
	c, _ := reflist.New("No", "Yes")

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(nil))
}

func TestAppend(t *testing.T) {
	rl, err := reflist.New("Yes")
	require.NoError(t, err)
	require.NoError(t, rl.Append("No"))
	require.Equal(t, 2, rl.Len())
	require.ErrorIs(t, rl.Append("Yes"), reflist.ErrDuplicateLabel)
}
