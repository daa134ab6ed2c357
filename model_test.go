package anchor_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tortugaresearch/anchor"
	"github.com/tortugaresearch/anchor/errs"
	"github.com/tortugaresearch/anchor/event"
	"github.com/tortugaresearch/anchor/metadata"
	"github.com/tortugaresearch/anchor/propbag"
	"github.com/tortugaresearch/anchor/testutil"
)

func TestModelMetadataFromMethods(t *testing.T) {
	p := newPerson()
	c, ok := p.Metadata().(*metadata.Class)
	require.True(t, ok)

	var names []string
	for _, prop := range c.Properties() {
		names = append(names, prop.Name)
	}
	require.Equal(t, []string{"Age", "FirstName", "FullName", "LastName"}, names)

	full, err := c.Lookup("fullname")
	require.NoError(t, err)
	require.Equal(t, []string{"FirstName", "LastName"}, full.CalculatedFrom)
}

func TestModelInit(t *testing.T) {
	var p person
	require.True(t, errs.IsInvalidArgument(p.Init(nil)))

	q := newPerson()
	require.True(t, errs.IsInvalidArgument(q.Init(q)), "second Init is rejected")
}

func TestModelSetNotifies(t *testing.T) {
	p := newPerson()
	rec := testutil.RecordChanged(t, p.PropertyChangedEvent()).RecordChanging(t, p.PropertyChangingEvent())
	var senders []any
	_, _ = p.PropertyChangedEvent().Subscribe(func(sender any, _ propbag.PropertyChangedArgs) { senders = append(senders, sender) })

	p.SetLastName("Lovelace")
	require.Equal(t, []string{
		"changing:LastName",
		"changed:LastName",
		"changed:FullName",
		"changed:IsChangedLocal",
		"changed:IsChanged",
	}, rec.Events())
	for _, s := range senders {
		require.Same(t, p, s)
	}

	require.Equal(t, "Lovelace", p.LastName())
	require.True(t, p.IsChangedLocal())
	require.Equal(t, []string{"LastName"}, p.ChangedProperties())
	require.True(t, propbag.IsNotSet(p.PreviousValue("LastName")))
	require.True(t, propbag.IsNotSet(p.Get("FirstName")))
}

func TestModelSetUnknownPanics(t *testing.T) {
	p := newPerson()
	require.Panics(t, func() { p.Set("x", "Nickname") })

	_, err := p.SetWith("x", propbag.Default, "Nickname")
	require.True(t, errs.IsUnknownProperty(err))
}

func TestModelRead(t *testing.T) {
	p := newPerson()
	p.SetFirstName("Ada")
	p.SetLastName("Lovelace")

	v, err := p.Read("fullName")
	require.NoError(t, err)
	require.Equal(t, "Ada Lovelace", v)

	v, err = p.Read("FirstName")
	require.NoError(t, err)
	require.Equal(t, "Ada", v)

	_, err = p.Read("Nickname")
	require.True(t, errs.IsUnknownProperty(err))
}

func TestModelAcceptReject(t *testing.T) {
	p := newPerson()
	p.SetFirstName("Ada")
	p.AcceptChanges()
	require.False(t, p.IsChanged())

	p.SetFirstName("Grace")
	p.SetAge(36)
	p.RejectChanges()

	assert.Equal(t, "Ada", p.FirstName())
	assert.True(t, propbag.IsNotSet(p.Get("Age")))
	assert.False(t, p.IsChanged())
}

func TestModelWithExplicitMetadata(t *testing.T) {
	c, err := metadata.NewBuilder("Sparse").Property("Name").Build()
	require.NoError(t, err)

	p := &person{}
	require.NoError(t, p.Init(p, anchor.WithMetadata(c), anchor.WithEventName("sparse")))
	require.Same(t, c, p.Metadata())

	_, err = p.SetWith("Ada", propbag.Default|propbag.FixCasing, "name")
	require.NoError(t, err)
	require.Equal(t, "Ada", anchor.Get[string](p, "Name"))
	require.Equal(t, []string{"Name"}, p.Properties().Keys())
}

func TestValidationOnSet(t *testing.T) {
	p := newPerson()
	rec := testutil.RecordChanged(t, p.PropertyChangedEvent())
	var errorsChanged []string
	_, _ = p.ErrorsChangedEvent().Subscribe(func(_ any, args anchor.ErrorsChangedArgs) {
		errorsChanged = append(errorsChanged, args.Name)
	})

	p.SetFirstName("")
	require.True(t, p.HasErrors())
	require.Equal(t, []string{"FirstName"}, errorsChanged)
	require.Equal(t, 1, rec.Count(anchor.HasErrorsProperty))
	require.Len(t, p.Errors("FirstName"), 1)
	require.Equal(t, "first name is required", p.Errors("FirstName")[0].Message)

	// the same failure again changes nothing
	errorsChanged = nil
	p.SetLastName("Lovelace")
	require.Empty(t, errorsChanged)

	p.SetAge(-1)
	require.Equal(t, []string{""}, errorsChanged)
	require.Len(t, p.Errors(""), 1)
	require.Len(t, p.Errors("Age"), 1, "object errors naming a property are reported with it")
	require.Len(t, p.AllErrors(), 2)
	require.Equal(t, "age must not be negative", p.AllErrors()[1].Message)

	rec.Reset()
	p.SetFirstName("Ada")
	p.SetAge(36)
	require.False(t, p.HasErrors())
	require.Equal(t, 1, rec.Count(anchor.HasErrorsProperty))
}

func TestValidateAll(t *testing.T) {
	p := newPerson()
	require.False(t, p.HasErrors())

	err := p.Validate()
	require.Error(t, err)
	require.ErrorContains(t, err, "first name is required")
	require.True(t, p.HasErrors())

	p.ClearErrors()
	require.False(t, p.HasErrors())
	require.Empty(t, p.AllErrors())

	p.SetFirstName("Ada")
	require.NoError(t, p.Validate())
}

func TestWeakHandlerDoesNotPinSubscriber(t *testing.T) {
	p := newPerson()
	subscribeTransient(t, p, 8)
	require.True(t, p.WeakPropertyChanged().Attached())

	runtime.GC()
	runtime.GC()

	p.SetFirstName("Ada")
	require.False(t, p.WeakPropertyChanged().Attached())
	require.Zero(t, p.WeakPropertyChanged().Len())
}

func subscribeTransient(t *testing.T, p *person, n int) {
	t.Helper()
	for range n {
		l := event.NewListener(func(any, propbag.PropertyChangedArgs) {
			t.Error("collected listener invoked")
		})
		require.NoError(t, p.AddWeakPropertyChangedHandler(l))
	}
}

func TestWeakHandlerRemove(t *testing.T) {
	p := newPerson()
	var got []string
	l := event.NewListener(func(_ any, args propbag.PropertyChangedArgs) { got = append(got, args.Name) })
	require.NoError(t, p.AddWeakPropertyChangedHandler(l))

	p.SetAge(3)
	require.Contains(t, got, "Age")

	require.NoError(t, p.RemoveWeakPropertyChangedHandler(l))
	require.False(t, p.WeakPropertyChanged().Attached())
	require.True(t, errs.IsInvalidArgument(p.AddWeakPropertyChangedHandler(nil)))
	runtime.KeepAlive(l)
}
