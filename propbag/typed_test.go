package propbag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tortugaresearch/anchor/errs"
	"github.com/tortugaresearch/anchor/propbag"
	"github.com/tortugaresearch/anchor/testutil"
)

func TestValue(t *testing.T) {
	b, _ := newBag(t)

	s, err := propbag.Value[string](b, "FirstName")
	require.NoError(t, err)
	require.Empty(t, s)

	_, _, _ = b.Set("Ada", propbag.Default, "FirstName")
	s, err = propbag.Value[string](b, "FirstName")
	require.NoError(t, err)
	require.Equal(t, "Ada", s)

	_, err = propbag.Value[int](b, "FirstName")
	require.True(t, errs.IsInvalidArgument(err))
	require.ErrorContains(t, err, "string is not int")
}

func TestGetDefaultStoresAcceptedValue(t *testing.T) {
	b, _ := newBag(t)
	rec := testutil.RecordBag(t, b)

	v, err := propbag.GetDefault(b, "a", 42)
	require.NoError(t, err)
	require.Equal(t, 42, v)
	require.Equal(t, []string{"A"}, b.Keys(), "stored under the canonical name")
	require.Empty(t, b.ChangedProperties())
	require.False(t, b.IsChanged())
	require.Zero(t, rec.Len())

	// once stored, the default is ignored
	_, _, _ = b.Set(7, propbag.Default, "A")
	v, err = propbag.GetDefault(b, "A", 42)
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestGetNewCreatesOnce(t *testing.T) {
	b, _ := newBag(t)
	calls := 0
	factory := func() []string {
		calls++
		return []string{"x"}
	}

	first, err := propbag.GetNew(b, "Tags", factory)
	require.NoError(t, err)
	second, err := propbag.GetNew(b, "Tags", factory)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, calls)

	_, err = propbag.GetNew[[]string](b, "Tags", nil)
	require.True(t, errs.IsInvalidArgument(err))

	_, err = propbag.GetNew(b, "Nope", factory)
	require.True(t, errs.IsUnknownProperty(err))
}

func TestGetNewLinksChild(t *testing.T) {
	b, _ := newBag(t)
	child, err := propbag.GetNew(b, "Child", newWeakChild)
	require.NoError(t, err)
	require.True(t, child.weak.Attached())

	rec := testutil.RecordBag(t, b)
	child.setChanged(true)
	require.Equal(t, []string{"IsChanged"}, rec.Changed())
}
