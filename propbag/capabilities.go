package propbag

import "github.com/tortugaresearch/anchor/event"

//go:generate mockgen -source capabilities.go -destination capabilities_mock.go -package propbag

// Names of the synthetic properties raised by the bag itself.
const (
	IsChangedProperty      = "IsChanged"
	IsChangedLocalProperty = "IsChangedLocal"
)

// PropertyChangingArgs announces a property about to change.
type PropertyChangingArgs struct{ Name string }

// PropertyChangedArgs announces a property that changed.
type PropertyChangedArgs struct{ Name string }

// RevalidatePropertyArgs asks the owner to revalidate one property.
type RevalidatePropertyArgs struct{ Name string }

// RevalidateObjectArgs asks the owner to revalidate object-level rules.
type RevalidateObjectArgs struct{}

// Changeable is implemented by values that track their own changes.
type Changeable interface {
	IsChanged() bool
	AcceptChanges()
}

// Revertible is a Changeable that can roll back to its accepted state.
type Revertible interface {
	Changeable
	RejectChanges()
}

// Notifier exposes a strongly referenced property-changed event.
type Notifier interface {
	PropertyChangedEvent() event.Source[PropertyChangedArgs]
}

// WeakNotifier accepts weakly referenced property-changed listeners.
type WeakNotifier interface {
	AddWeakPropertyChangedHandler(l *event.Listener[PropertyChangedArgs]) error
	RemoveWeakPropertyChangedHandler(l *event.Listener[PropertyChangedArgs]) error
}

// AsChangeable returns v as a Changeable. Nil values and typed nils are
// never Changeable.
func AsChangeable(v any) (Changeable, bool) {
	if isNil(v) {
		return nil, false
	}
	c, ok := v.(Changeable)
	return c, ok
}

// AsRevertible returns v as a Revertible, with the same nil rules as AsChangeable.
func AsRevertible(v any) (Revertible, bool) {
	if isNil(v) {
		return nil, false
	}
	r, ok := v.(Revertible)
	return r, ok
}
