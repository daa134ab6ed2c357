package propbag

import (
	"fmt"
	"reflect"

	"github.com/tortugaresearch/anchor/errs"
)

// Value reads name as a T. NotSet and a stored nil both yield T's zero value.
func Value[T any](b *Bag, name string) (T, error) {
	var zero T
	v, err := b.Get(name)
	if err != nil {
		return zero, err
	}
	return convert[T](name, v)
}

// GetDefault reads name, storing def as an accepted value first if the
// property was never written. Storing the default raises nothing and does
// not mark the bag changed.
func GetDefault[T any](b *Bag, name string, def T) (T, error) {
	return getOrCreate(b, name, func() T { return def })
}

// GetNew reads name, storing factory() as an accepted value first if the
// property was never written. Use it for lazily created children such as
// collections.
func GetNew[T any](b *Bag, name string, factory func() T) (T, error) {
	if factory == nil {
		var zero T
		return zero, errs.InvalidArgument("factory", "must not be nil")
	}
	return getOrCreate(b, name, factory)
}

func getOrCreate[T any](b *Bag, name string, create func() T) (T, error) {
	var zero T
	name, err := b.Canonical(name)
	if err != nil {
		return zero, err
	}
	if v := b.get(name); !IsNotSet(v) {
		return convert[T](name, v)
	}
	v := create()
	if _, _, err := b.Set(v, SetAsOriginal, name); err != nil {
		return zero, err
	}
	return v, nil
}

func convert[T any](name string, v any) (T, error) {
	var zero T
	if IsNotSet(v) || v == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, errs.InvalidArgument(name, fmt.Sprintf("stored %T is not %s", v, reflect.TypeFor[T]()))
	}
	return t, nil
}
