package propbag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tortugaresearch/anchor/errs"
	"github.com/tortugaresearch/anchor/metadata"
	"github.com/tortugaresearch/anchor/propbag"
	"github.com/tortugaresearch/anchor/testutil"
)

func TestGetUnsetReturnsNotSet(t *testing.T) {
	b, _ := newBag(t)

	v, err := b.Get("FirstName")
	require.NoError(t, err)
	require.True(t, propbag.IsNotSet(v))

	_, _, err = b.Set(nil, propbag.SetAsOriginal, "FirstName")
	require.NoError(t, err)
	v, err = b.Get("FirstName")
	require.NoError(t, err)
	require.Nil(t, v, "a stored nil is not NotSet")
	require.False(t, propbag.IsNotSet(v))

	defined, err := b.IsDefined("FirstName")
	require.NoError(t, err)
	require.True(t, defined)
}

func TestEmptyNameIsInvalid(t *testing.T) {
	b, _ := newBag(t)

	_, err := b.Get("")
	assert.True(t, errs.IsInvalidArgument(err))
	_, _, err = b.Set(1, propbag.Default, "")
	assert.True(t, errs.IsInvalidArgument(err))
	_, err = b.GetPreviousValue("")
	assert.True(t, errs.IsInvalidArgument(err))
	_, err = b.IsDefined("")
	assert.True(t, errs.IsInvalidArgument(err))
	assert.True(t, errs.IsInvalidArgument(b.OnPropertyChanged("")))
}

func TestSetNotSetIsInvalid(t *testing.T) {
	b, _ := newBag(t)
	_, _, err := b.Set(propbag.NotSet, propbag.Default, "A")
	require.True(t, errs.IsInvalidArgument(err))
	require.Empty(t, b.Keys())
}

func TestSetDefaultModeNotifications(t *testing.T) {
	b, o := newBag(t)
	rec := testutil.RecordBag(t, b)

	var senders []any
	var revalidated []string
	objectChecks := 0
	_, _ = b.PropertyChanged().Subscribe(func(sender any, args propbag.PropertyChangedArgs) { senders = append(senders, sender) })
	_, _ = b.RevalidateProperty().Subscribe(func(sender any, args propbag.RevalidatePropertyArgs) { revalidated = append(revalidated, args.Name) })
	_, _ = b.RevalidateObject().Subscribe(func(sender any, args propbag.RevalidateObjectArgs) { objectChecks++ })

	changed, old, err := b.Set("Ada", propbag.Default, "FirstName")
	require.NoError(t, err)
	require.True(t, changed)
	require.True(t, propbag.IsNotSet(old))

	require.Equal(t, []string{
		"changing:FirstName",
		"changed:FirstName",
		"changed:FullName",
		"changed:IsChangedLocal",
		"changed:IsChanged",
	}, rec.Events())
	require.Equal(t, []string{"FirstName"}, revalidated)
	require.Equal(t, 1, objectChecks)
	for _, s := range senders {
		require.Same(t, o, s)
	}
	require.True(t, b.IsChangedLocal())

	// a second edit does not repeat the IsChanged transition
	rec.Reset()
	changed, old, err = b.Set("Grace", propbag.Default, "FirstName")
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, "Ada", old)
	require.Equal(t, []string{"changing:FirstName", "changed:FirstName", "changed:FullName"}, rec.Events())
}

func TestNoOpSet(t *testing.T) {
	b, _ := newBag(t)
	_, _, err := b.Set("Ada", propbag.Default, "FirstName")
	require.NoError(t, err)

	rec := testutil.RecordBag(t, b)
	revalidations := 0
	_, _ = b.RevalidateProperty().Subscribe(func(sender any, args propbag.RevalidatePropertyArgs) { revalidations++ })

	changed, old, err := b.Set("Ada", propbag.Default, "FirstName")
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, "Ada", old)
	require.Zero(t, rec.Len())
	require.Zero(t, revalidations)
}

func TestNoOpSetComparesByValue(t *testing.T) {
	b, _ := newBag(t)
	_, _, err := b.Set([]string{"x", "y"}, propbag.Initialize, "Tags")
	require.NoError(t, err)

	changed, _, err := b.Set([]string{"x", "y"}, propbag.Default, "Tags")
	require.NoError(t, err)
	require.False(t, changed, "equal slices are the same value")

	type point struct{ X, Y int }
	p1, p2 := &point{1, 2}, &point{1, 2}
	_, _, _ = b.Set(p1, propbag.Initialize, "D")
	changed, _, err = b.Set(p2, propbag.Default, "D")
	require.NoError(t, err)
	require.True(t, changed, "distinct pointers are distinct values")

	changed, _, err = b.Set(int64(1), propbag.Default, "A")
	require.NoError(t, err)
	require.True(t, changed)
	changed, _, err = b.Set(1, propbag.Default, "A")
	require.NoError(t, err)
	require.True(t, changed, "different dynamic types are never equal")
}

func TestSetAsOriginalCountsAsAccepted(t *testing.T) {
	b, _ := newBag(t)
	rec := testutil.RecordBag(t, b)

	changed, _, err := b.Set("Ada", propbag.SetAsOriginal, "FirstName")
	require.NoError(t, err)
	require.True(t, changed)
	require.Empty(t, b.ChangedProperties())
	require.False(t, b.IsChangedLocal())
	require.Zero(t, rec.Len())

	prev, err := b.GetPreviousValue("FirstName")
	require.NoError(t, err)
	require.Equal(t, "Ada", prev)
}

func TestFixCasing(t *testing.T) {
	b, _ := newBag(t)
	_, _, err := b.Set("Ada", propbag.FixCasing|propbag.RaiseChangedEvent, "firstNAME")
	require.NoError(t, err)
	require.Equal(t, []string{"FirstName"}, b.Keys())

	canonical, err := b.Canonical("lastname")
	require.NoError(t, err)
	require.Equal(t, "LastName", canonical)
}

func TestFixCasingWithoutMetadata(t *testing.T) {
	b := propbag.New(nil, nil)
	_, _, err := b.Set("Ada", propbag.FixCasing, "FirstName")
	require.True(t, errs.IsUnknownProperty(err))

	// sparse storage needs no metadata at all
	changed, _, err := b.Set("Ada", propbag.Default, "Anything")
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, []string{"Anything"}, b.ChangedProperties())
}

func TestUnknownPropertyLeavesBagUntouched(t *testing.T) {
	b, _ := newBag(t)
	rec := testutil.RecordBag(t, b)

	_, _, err := b.Set("x", propbag.Default, "Nmae")
	require.True(t, errs.IsUnknownProperty(err))
	name, _ := errs.PropertyName(err)
	require.Equal(t, "Nmae", name)
	require.Empty(t, b.Keys())
	require.False(t, b.IsChangedLocal())
	require.Zero(t, rec.Len())

	_, _, err = b.Set("x", propbag.FixCasing, "Nmae")
	require.True(t, errs.IsUnknownProperty(err))

	// without metadata-dependent flags the name is stored sparsely
	changed, _, err := b.Set("x", propbag.UpdateIsChangedProperty, "Nmae")
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, []string{"Nmae"}, b.Keys())
}

func TestCalculatedInvalidation(t *testing.T) {
	b, _ := newBag(t)
	rec := testutil.RecordBag(t, b)

	_, _, err := b.Set(1, propbag.RaiseChangedEvent, "A")
	require.NoError(t, err)
	require.Equal(t, 1, rec.Count("C"))

	rec.Reset()
	_, _, err = b.Set(2, propbag.RaiseChangedEvent, "B")
	require.NoError(t, err)
	require.Equal(t, 1, rec.Count("C"))

	rec.Reset()
	_, _, err = b.Set(3, propbag.RaiseChangedEvent, "D")
	require.NoError(t, err)
	require.Zero(t, rec.Count("C"))

	// without RaiseChangedEvent nothing is invalidated
	rec.Reset()
	_, _, err = b.Set(4, propbag.UpdateIsChangedProperty, "A")
	require.NoError(t, err)
	require.Zero(t, rec.Count("C"))
}

func TestCalculatedCycleIsOneLevelDeep(t *testing.T) {
	c, err := metadata.NewBuilder("Cycle").
		Calculated("X", "Y").
		Calculated("Y", "X").
		Build()
	require.NoError(t, err)
	b := propbag.New(nil, c)
	rec := testutil.RecordBag(t, b)

	_, _, err = b.Set(1, propbag.RaiseChangedEvent, "X")
	require.NoError(t, err)
	require.Equal(t, []string{"X", "Y"}, rec.Changed())
}

func TestOnPropertyChanged(t *testing.T) {
	b, _ := newBag(t)
	rec := testutil.RecordBag(t, b)
	require.NoError(t, b.OnPropertyChanged("LastName"))
	require.Equal(t, []string{"LastName", "FullName"}, rec.Changed())
	require.True(t, errs.IsUnknownProperty(b.OnPropertyChanged("Nope")))
}

func TestFixCasingUsesProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	md := metadata.NewMockProvider(ctrl)
	md.EXPECT().Lookup("firstname").Return(&metadata.Property{Name: "FirstName"}, nil).Times(1)

	b := propbag.New(nil, md)
	changed, _, err := b.Set("Ada", propbag.FixCasing|propbag.SetAsOriginal, "firstname")
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, []string{"FirstName"}, b.Keys())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "None", propbag.Mode(0).String())
	assert.Equal(t, "FixCasing|SetAsOriginal", propbag.Initialize.String())
	assert.Equal(t, "RaiseChangedEvent|UpdateIsChangedProperty|ValidateProperty|ValidateObject", propbag.Default.String())
	assert.True(t, propbag.Default.Has(propbag.RaiseChangedEvent|propbag.ValidateObject))
	assert.False(t, propbag.Default.Has(propbag.FixCasing))
}
