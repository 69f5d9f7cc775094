package sets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	s := New("b", "a")
	require.True(t, s.Has("a"))
	require.False(t, s.Has("c"))

	require.True(t, s.Add("c"))
	require.False(t, s.Add("a"))
	require.Equal(t, []string{"a", "b", "c"}, s.Sorted())
}
