package anchor

import (
	"reflect"

	"github.com/tortugaresearch/anchor/errs"
	"github.com/tortugaresearch/anchor/event"
	"github.com/tortugaresearch/anchor/internal/primitives"
	"github.com/tortugaresearch/anchor/metadata"
	"github.com/tortugaresearch/anchor/propbag"
)

// HasErrorsProperty is raised through PropertyChanged when a model gains its
// first validation error or loses its last one.
const HasErrorsProperty = "HasErrors"

// Backed is anything exposing a property bag. Every type embedding
// ModelBase implements it.
type Backed interface {
	Properties() *propbag.Bag
}

// ModelBase is embedded by model types. It owns the model's property bag,
// the weak property-changed event and the validation error store.
//
// The zero value is unusable until Init has run.
type ModelBase struct {
	owner any
	md    metadata.Provider
	bag   *propbag.Bag
	weak  *event.Manager[propbag.PropertyChangedArgs]

	errorsChanged event.Event[ErrorsChangedArgs]
	errors        *primitives.Values // property name ("" for object) -> []*validation.Result

	reflectOpts []metadata.Option
	eventName   string
}

// Option configures ModelBase.Init.
type Option func(*ModelBase)

// WithMetadata uses md instead of discovering metadata from the owner's methods.
func WithMetadata(md metadata.Provider) Option {
	return func(m *ModelBase) {
		m.md = md
	}
}

// WithReflect passes options to metadata discovery. They only take effect the
// first time a model type is initialised.
func WithReflect(opts ...metadata.Option) Option {
	return func(m *ModelBase) {
		m.reflectOpts = append(m.reflectOpts, opts...)
	}
}

// WithEventName labels the model's weak event manager in logs and metrics.
// It defaults to the metadata class name.
func WithEventName(name string) Option {
	return func(m *ModelBase) {
		m.eventName = name
	}
}

// baseMethods are the accessor-shaped methods every model inherits from
// ModelBase. They are never properties.
var baseMethods = func() []string {
	t := reflect.TypeFor[*ModelBase]()
	names := make([]string, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		names = append(names, t.Method(i).Name)
	}
	return names
}()

// Init wires the model. owner must be the pointer embedding m; it is the
// sender of every notification and the target of metadata accessors.
func (m *ModelBase) Init(owner any, opts ...Option) error {
	if owner == nil {
		return errs.InvalidArgument("owner", "must not be nil")
	}
	if m.bag != nil {
		return errs.InvalidArgument("owner", "model already initialised")
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.md == nil {
		reflectOpts := append([]metadata.Option{metadata.WithExclude(baseMethods...)}, m.reflectOpts...)
		c, err := metadata.For(owner, reflectOpts...)
		if err != nil {
			return err
		}
		m.md = c
		if m.eventName == "" {
			m.eventName = c.Name()
		}
	}

	m.owner = owner
	m.bag = propbag.New(owner, m.md)
	m.weak = event.NewManager[propbag.PropertyChangedArgs](m.bag.PropertyChanged(), event.WithName(m.eventName))
	m.errors = primitives.NewValues()

	if _, err := m.bag.RevalidateProperty().Subscribe(m.onRevalidateProperty); err != nil {
		return err
	}
	if _, err := m.bag.RevalidateObject().Subscribe(m.onRevalidateObject); err != nil {
		return err
	}
	return nil
}

// Properties returns the model's property bag.
func (m *ModelBase) Properties() *propbag.Bag { return m.bag }

// Metadata returns the provider the model resolves property names with.
func (m *ModelBase) Metadata() metadata.Provider { return m.md }

// Get returns the stored value of name, or propbag.NotSet.
func (m *ModelBase) Get(name string) any {
	return must(m.bag.Get(name))
}

// Read returns the current value of name. Calculated properties are computed
// through their accessor; stored properties are read from the bag.
func (m *ModelBase) Read(name string) (any, error) {
	p, err := m.md.Lookup(name)
	if err != nil {
		return nil, err
	}
	if p.IsCalculated() && p.Getter != nil {
		return p.Get(m.owner)
	}
	return m.bag.Get(p.Name)
}

// Set writes value with the default mode and reports whether it changed.
// It panics if name is empty or unknown.
func (m *ModelBase) Set(value any, name string) bool {
	changed, err := m.SetWith(value, propbag.Default, name)
	if err != nil {
		panic(err)
	}
	return changed
}

// SetWith writes value with an explicit mode.
func (m *ModelBase) SetWith(value any, mode propbag.Mode, name string) (bool, error) {
	changed, _, err := m.bag.Set(value, mode, name)
	return changed, err
}

// IsChanged reports whether the model or any child has unaccepted changes.
func (m *ModelBase) IsChanged() bool { return m.bag.IsChanged() }

// IsChangedLocal reports whether the model's own values have unaccepted changes.
func (m *ModelBase) IsChangedLocal() bool { return m.bag.IsChangedLocal() }

// ChangedProperties lists the properties differing from the accepted state.
func (m *ModelBase) ChangedProperties() []string { return m.bag.ChangedProperties() }

// PreviousValue returns the accepted value of name, or propbag.NotSet.
func (m *ModelBase) PreviousValue(name string) any {
	return must(m.bag.GetPreviousValue(name))
}

// AcceptChanges accepts the model and, recursively, its children.
func (m *ModelBase) AcceptChanges() { m.bag.AcceptChanges(true) }

// RejectChanges rolls the model and, recursively, its children back to
// their accepted state.
func (m *ModelBase) RejectChanges() {
	if err := m.bag.RejectChanges(true); err != nil {
		panic(err)
	}
}

// PropertyChangedEvent is the model's conventional property-changed event.
func (m *ModelBase) PropertyChangedEvent() event.Source[propbag.PropertyChangedArgs] {
	return m.bag.PropertyChanged()
}

// PropertyChangingEvent is raised before a property is written.
func (m *ModelBase) PropertyChangingEvent() event.Source[propbag.PropertyChangingArgs] {
	return m.bag.PropertyChanging()
}

// AddWeakPropertyChangedHandler subscribes l without keeping it alive.
func (m *ModelBase) AddWeakPropertyChangedHandler(l *event.Listener[propbag.PropertyChangedArgs]) error {
	return m.weak.AddHandler(l)
}

// RemoveWeakPropertyChangedHandler removes a weak subscription.
func (m *ModelBase) RemoveWeakPropertyChangedHandler(l *event.Listener[propbag.PropertyChangedArgs]) error {
	return m.weak.RemoveHandler(l)
}

// WeakPropertyChanged returns the manager behind the weak property-changed event.
func (m *ModelBase) WeakPropertyChanged() *event.Manager[propbag.PropertyChangedArgs] {
	return m.weak
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
