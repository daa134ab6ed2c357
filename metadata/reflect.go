package metadata

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/tortugaresearch/anchor/errs"
)

// Option adjusts reflective discovery.
type Option func(*reflectOptions)

type reflectOptions struct {
	extra      []string
	calculated map[string][]string
	calcOrder  []string
	exclude    map[string]bool
}

// WithProperty declares stored properties that have no accessor method.
func WithProperty(names ...string) Option {
	return func(o *reflectOptions) { o.extra = append(o.extra, names...) }
}

// WithCalculated marks name as calculated from sources.
func WithCalculated(name string, sources ...string) Option {
	return func(o *reflectOptions) {
		if _, seen := o.calculated[name]; !seen {
			o.calcOrder = append(o.calcOrder, name)
		}
		o.calculated[name] = append(o.calculated[name], sources...)
	}
}

// WithExclude hides accessor-shaped methods that are not properties.
func WithExclude(names ...string) Option {
	return func(o *reflectOptions) {
		for _, n := range names {
			o.exclude[n] = true
		}
	}
}

// Reflect builds a Class for v's type. Every exported method of the pointer
// type taking no arguments and returning exactly one value is a property,
// unless excluded. Methods are visited in name order.
func Reflect(v any, opts ...Option) (*Class, error) {
	if v == nil {
		return nil, errs.InvalidArgument("v", "must not be nil")
	}
	o := reflectOptions{
		calculated: make(map[string][]string),
		exclude:    make(map[string]bool),
	}
	for _, opt := range opts {
		opt(&o)
	}

	t := reflect.TypeOf(v)
	if t.Kind() != reflect.Pointer {
		t = reflect.PointerTo(t)
	}

	b := NewBuilder(t.Elem().Name())
	seen := make(map[string]bool)
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if o.exclude[m.Name] || m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			continue
		}
		var pb *PropertyBuilder
		if sources, ok := o.calculated[m.Name]; ok {
			pb = b.Calculated(m.Name, sources...)
		} else {
			pb = b.Property(m.Name)
		}
		pb.WithGetter(methodGetter(t, m.Index, m.Name))
		seen[m.Name] = true
	}
	for _, name := range o.extra {
		if !seen[name] {
			b.Property(name)
			seen[name] = true
		}
	}
	for _, name := range o.calcOrder {
		if !seen[name] {
			b.Calculated(name, o.calculated[name]...)
		}
	}

	c, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("metadata for %s: %w", t, err)
	}
	return c, nil
}

func methodGetter(t reflect.Type, index int, name string) Getter {
	return func(target any) (any, error) {
		if target == nil {
			return nil, errs.InvalidArgument("target", "must not be nil")
		}
		rv := reflect.ValueOf(target)
		if rv.Type() != t {
			return nil, errs.InvalidArgument("target", fmt.Sprintf("%s is not a %s", rv.Type(), t))
		}
		if rv.IsNil() {
			return nil, errs.InvalidArgument("target", "must not be nil")
		}
		return rv.Method(index).Call(nil)[0].Interface(), nil
	}
}

var cache sync.Map // reflect.Type -> *Class

// For returns the cached Class for v's type, building it with opts on first use.
// Options passed on later calls for the same type are ignored.
func For(v any, opts ...Option) (*Class, error) {
	if v == nil {
		return nil, errs.InvalidArgument("v", "must not be nil")
	}
	t := reflect.TypeOf(v)
	if c, ok := cache.Load(t); ok {
		return c.(*Class), nil
	}
	c, err := Reflect(v, opts...)
	if err != nil {
		return nil, err
	}
	actual, _ := cache.LoadOrStore(t, c)
	return actual.(*Class), nil
}
