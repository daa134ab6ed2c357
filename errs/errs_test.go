package errs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("name", "must not be empty")
	require.EqualError(t, err, "invalid argument name: must not be empty")
	require.True(t, IsInvalidArgument(err))
	require.False(t, IsUnknownProperty(err))

	wrapped := fmt.Errorf("set: %w", err)
	require.True(t, IsInvalidArgument(wrapped))
}

func TestUnknownProperty(t *testing.T) {
	err := fmt.Errorf("lookup: %w", UnknownProperty("Nmae"))
	require.True(t, IsUnknownProperty(err))
	require.False(t, IsInvalidArgument(err))

	name, ok := PropertyName(err)
	require.True(t, ok)
	require.Equal(t, "Nmae", name)

	_, ok = PropertyName(InvalidArgument("x", "y"))
	require.False(t, ok)
}
