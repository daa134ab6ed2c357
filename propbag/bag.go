package propbag

import (
	"github.com/tortugaresearch/anchor/errs"
	"github.com/tortugaresearch/anchor/event"
	"github.com/tortugaresearch/anchor/internal/primitives"
	"github.com/tortugaresearch/anchor/metadata"
	"github.com/tortugaresearch/anchor/metrics"
)

var (
	setChanged   = metrics.BagSetTotal.WithLabelValues(metrics.SetResult(true))
	setUnchanged = metrics.BagSetTotal.WithLabelValues(metrics.SetResult(false))
)

// Bag is a change-tracking property store owned by a single model object.
type Bag struct {
	owner        any
	md           metadata.Provider
	current      *primitives.Values
	original     *primitives.Values
	changedLocal bool

	changing           event.Event[PropertyChangingArgs]
	changed            event.Event[PropertyChangedArgs]
	revalidateProperty event.Event[RevalidatePropertyArgs]
	revalidateObject   event.Event[RevalidateObjectArgs]

	children map[string]*Link
}

// New creates an empty bag. owner is the sender of every notification; md
// may be nil, in which case casing fixes fail and no calculated properties
// are invalidated.
func New(owner any, md metadata.Provider) *Bag {
	return &Bag{
		owner:    owner,
		md:       md,
		current:  primitives.NewValues(),
		original: primitives.NewValues(),
		children: make(map[string]*Link),
	}
}

// PropertyChanging is raised before a value is written.
func (b *Bag) PropertyChanging() *event.Event[PropertyChangingArgs] { return &b.changing }

// PropertyChanged is raised after a value is written, for calculated
// properties depending on it, and for the synthetic IsChanged properties.
func (b *Bag) PropertyChanged() *event.Event[PropertyChangedArgs] { return &b.changed }

// RevalidateProperty is raised when Set runs with ValidateProperty.
func (b *Bag) RevalidateProperty() *event.Event[RevalidatePropertyArgs] { return &b.revalidateProperty }

// RevalidateObject is raised when Set runs with ValidateObject.
func (b *Bag) RevalidateObject() *event.Event[RevalidateObjectArgs] { return &b.revalidateObject }

// Metadata returns the provider the bag was created with.
func (b *Bag) Metadata() metadata.Provider { return b.md }

// Get returns the stored value, or NotSet if the property was never written.
func (b *Bag) Get(name string) (any, error) {
	if name == "" {
		return NotSet, errs.InvalidArgument("name", "must not be empty")
	}
	return b.get(name), nil
}

func (b *Bag) get(name string) any {
	if v, ok := b.current.Get(name); ok {
		return v
	}
	return NotSet
}

// IsDefined reports whether the property has a stored value.
func (b *Bag) IsDefined(name string) (bool, error) {
	if name == "" {
		return false, errs.InvalidArgument("name", "must not be empty")
	}
	return b.current.Has(name), nil
}

// Keys returns the stored property names in insertion order.
func (b *Bag) Keys() []string {
	return b.current.Keys()
}

// Set writes value under name with the side effects selected by mode and
// reports whether the stored value changed along with the value it replaced.
//
// Writing a value equal to the stored one does nothing at all. Metadata is
// resolved before anything is written, so a failed lookup leaves the bag as
// it was.
func (b *Bag) Set(value any, mode Mode, name string) (bool, any, error) {
	if name == "" {
		return false, NotSet, errs.InvalidArgument("name", "must not be empty")
	}
	if IsNotSet(value) {
		return false, NotSet, errs.InvalidArgument("value", "NotSet cannot be stored")
	}

	var prop *metadata.Property
	if mode.Has(FixCasing) || (mode.Has(RaiseChangedEvent) && b.md != nil) {
		p, err := b.lookup(name)
		if err != nil {
			return false, NotSet, err
		}
		if mode.Has(FixCasing) {
			name = p.Name
		}
		prop = p
	}

	old := b.get(name)
	if valuesEqual(old, value) {
		setUnchanged.Inc()
		return false, old, nil
	}

	link, err := b.linkChild(value)
	if err != nil {
		return false, old, err
	}

	if mode.Has(RaiseChangedEvent) {
		b.changing.Raise(b.owner, PropertyChangingArgs{Name: name})
	}
	b.current.Set(name, value)
	if mode.Has(SetAsOriginal) {
		b.original.Set(name, value)
	}
	b.replaceChild(name, link)
	setChanged.Inc()

	if mode.Has(RaiseChangedEvent) {
		b.raiseChanged(name, prop)
	}
	if mode.Has(UpdateIsChangedProperty) {
		b.setChangedLocal(true, true)
	}
	if mode.Has(ValidateProperty) {
		b.revalidateProperty.Raise(b.owner, RevalidatePropertyArgs{Name: name})
	}
	if mode.Has(ValidateObject) {
		b.revalidateObject.Raise(b.owner, RevalidateObjectArgs{})
	}
	return true, old, nil
}

// Canonical returns the declared casing of name. Without metadata the name
// is returned unchanged.
func (b *Bag) Canonical(name string) (string, error) {
	if name == "" {
		return "", errs.InvalidArgument("name", "must not be empty")
	}
	if b.md == nil {
		return name, nil
	}
	p, err := b.md.Lookup(name)
	if err != nil {
		return "", err
	}
	return p.Name, nil
}

// OnPropertyChanged raises a changed notification for name and for every
// calculated property depending on it.
func (b *Bag) OnPropertyChanged(name string) error {
	if name == "" {
		return errs.InvalidArgument("name", "must not be empty")
	}
	var prop *metadata.Property
	if b.md != nil {
		p, err := b.md.Lookup(name)
		if err != nil {
			return err
		}
		prop = p
	}
	b.raiseChanged(name, prop)
	return nil
}

func (b *Bag) lookup(name string) (*metadata.Property, error) {
	if b.md == nil {
		return nil, errs.UnknownProperty(name)
	}
	return b.md.Lookup(name)
}

// raiseChanged notifies name and then, one level deep, its dependents.
func (b *Bag) raiseChanged(name string, prop *metadata.Property) {
	b.changed.Raise(b.owner, PropertyChangedArgs{Name: name})
	if prop == nil {
		return
	}
	for _, calc := range prop.AffectsCalculated {
		b.changed.Raise(b.owner, PropertyChangedArgs{Name: calc})
	}
}

func (b *Bag) raise(name string) {
	b.changed.Raise(b.owner, PropertyChangedArgs{Name: name})
}
