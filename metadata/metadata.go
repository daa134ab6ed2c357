// Package metadata describes the properties of a model type: canonical names,
// calculated-property source lists and accessor invokers.
//
// A Class is read-only once built. The property bag consumes it through the
// Provider interface to fix name casing and to find which calculated
// properties must be invalidated when a source property changes.
package metadata

import (
	"strings"

	"github.com/tortugaresearch/anchor/errs"
)

// Getter invokes a property's accessor on target.
type Getter func(target any) (any, error)

// Property describes one named property.
type Property struct {
	// Name is the canonical, declared casing.
	Name string
	// CalculatedFrom lists the source properties of a calculated property.
	CalculatedFrom []string
	// AffectsCalculated lists the calculated properties naming this one as a source.
	AffectsCalculated []string
	// Getter is nil for properties without an accessor.
	Getter Getter
}

// IsCalculated reports whether the property declares sources.
func (p *Property) IsCalculated() bool { return len(p.CalculatedFrom) > 0 }

// Get invokes the accessor on target.
func (p *Property) Get(target any) (any, error) {
	if p.Getter == nil {
		return nil, errs.InvalidArgument(p.Name, "property has no accessor")
	}
	return p.Getter(target)
}

//go:generate mockgen -source metadata.go -destination provider_mock.go -package metadata

// Provider resolves property names. Lookup fails with an unknown-property
// error for names it does not know, and never returns a default.
type Provider interface {
	Lookup(name string) (*Property, error)
}

// Class is the metadata table of one model type.
type Class struct {
	name   string
	props  []*Property
	byName map[string]*Property
	byFold map[string]*Property
}

// Name returns the type name the class was built for.
func (c *Class) Name() string { return c.name }

// Lookup resolves name exactly, then case-insensitively.
func (c *Class) Lookup(name string) (*Property, error) {
	if name == "" {
		return nil, errs.InvalidArgument("name", "must not be empty")
	}
	if p, ok := c.byName[name]; ok {
		return p, nil
	}
	if p, ok := c.byFold[strings.ToLower(name)]; ok {
		return p, nil
	}
	return nil, errs.UnknownProperty(name)
}

// Properties returns every property in declaration order.
func (c *Class) Properties() []*Property {
	out := make([]*Property, len(c.props))
	copy(out, c.props)
	return out
}

// Calculated returns the calculated properties in declaration order.
func (c *Class) Calculated() []*Property {
	var out []*Property
	for _, p := range c.props {
		if p.IsCalculated() {
			out = append(out, p)
		}
	}
	return out
}
