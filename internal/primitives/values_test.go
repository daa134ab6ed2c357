package primitives

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValuesBasic(t *testing.T) {
	v := NewValues()
	_, ok := v.Get("missing")
	require.False(t, ok)

	v.Set("b", 1)
	v.Set("a", nil)
	v.Set("c", 3)
	v.Set("b", 2) // overwrite keeps position

	got, ok := v.Get("a")
	require.True(t, ok, "explicit nil must count as present")
	require.Nil(t, got)
	require.Equal(t, []string{"b", "a", "c"}, v.Keys())
	require.Equal(t, 3, v.Len())

	require.True(t, v.Delete("a"))
	require.False(t, v.Delete("a"))
	require.False(t, v.Has("a"))
	v.Set("a", 4)
	require.Equal(t, []string{"b", "c", "a"}, v.Keys())
}

func TestValuesSnapshot(t *testing.T) {
	v := NewValues()
	v.Set("x", 1)
	snap := v.Snapshot()

	v.Set("x", 2)
	v.Set("y", 3)
	val, _ := snap.Get("x")
	require.Equal(t, 1, val)
	require.Equal(t, []string{"x"}, snap.Keys())

	// the snapshot owns its storage, so writes to it do not leak back
	snap.Set("z", 9)
	require.False(t, v.Has("z"))
}
