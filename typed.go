package anchor

import "github.com/tortugaresearch/anchor/propbag"

// Get reads name as a T, returning T's zero value while the property is unset.
// It panics if name is empty or the stored value is not a T.
func Get[T any](m Backed, name string) T {
	return must(propbag.Value[T](m.Properties(), name))
}

// GetDefault reads name, storing def as its accepted value on first read.
func GetDefault[T any](m Backed, name string, def T) T {
	return must(propbag.GetDefault(m.Properties(), name, def))
}

// GetNew reads name, storing factory() as its accepted value on first read.
// Use it for child models and collections created on demand.
func GetNew[T any](m Backed, name string, factory func() T) T {
	return must(propbag.GetNew(m.Properties(), name, factory))
}
