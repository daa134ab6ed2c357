package propbag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tortugaresearch/anchor/event"
	"github.com/tortugaresearch/anchor/metadata"
	"github.com/tortugaresearch/anchor/propbag"
)

type owner struct{ name string }

func testClass(t *testing.T) *metadata.Class {
	t.Helper()
	c, err := metadata.NewBuilder("Test").
		Property("FirstName").
		Property("LastName").
		Calculated("FullName", "FirstName", "LastName").
		Property("A").
		Property("B").
		Calculated("C", "A", "B").
		Property("D").
		Property("Child").
		Property("Tags").
		Build()
	require.NoError(t, err)
	return c
}

func newBag(t *testing.T) (*propbag.Bag, *owner) {
	t.Helper()
	o := &owner{name: "test"}
	return propbag.New(o, testClass(t)), o
}

// weakChild is a change-tracking value exposing weak notifications.
type weakChild struct {
	changed  bool
	accepted int
	rejected int
	evt      event.Event[propbag.PropertyChangedArgs]
	weak     *event.Manager[propbag.PropertyChangedArgs]
}

func newWeakChild() *weakChild {
	c := &weakChild{}
	c.weak = event.NewManager[propbag.PropertyChangedArgs](&c.evt, event.WithName("test_child"))
	return c
}

func (c *weakChild) IsChanged() bool { return c.changed }

func (c *weakChild) AcceptChanges() {
	c.accepted++
	c.setChanged(false)
}

func (c *weakChild) RejectChanges() {
	c.rejected++
	c.setChanged(false)
}

func (c *weakChild) setChanged(v bool) {
	if c.changed == v {
		return
	}
	c.changed = v
	c.evt.Raise(c, propbag.PropertyChangedArgs{Name: propbag.IsChangedProperty})
}

func (c *weakChild) AddWeakPropertyChangedHandler(l *event.Listener[propbag.PropertyChangedArgs]) error {
	return c.weak.AddHandler(l)
}

func (c *weakChild) RemoveWeakPropertyChangedHandler(l *event.Listener[propbag.PropertyChangedArgs]) error {
	return c.weak.RemoveHandler(l)
}

// strongChild only exposes a conventional event.
type strongChild struct {
	changed bool
	evt     event.Event[propbag.PropertyChangedArgs]
}

func (c *strongChild) IsChanged() bool { return c.changed }
func (c *strongChild) AcceptChanges()  { c.changed = false }

func (c *strongChild) PropertyChangedEvent() event.Source[propbag.PropertyChangedArgs] {
	return &c.evt
}

func (c *strongChild) touch() {
	c.changed = true
	c.evt.Raise(c, propbag.PropertyChangedArgs{Name: propbag.IsChangedProperty})
}
