package metadata

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/tortugaresearch/anchor/errs"
)

// Builder provides a fluent API for declaring a Class by hand.
// Problems are collected and reported by Build.
type Builder struct {
	name  string
	props []*Property
	fold  map[string]*Property
	errs  []error
}

// PropertyBuilder configures the property most recently declared.
type PropertyBuilder struct {
	b    *Builder
	prop *Property
}

// NewBuilder starts a class named name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name: name,
		fold: make(map[string]*Property),
	}
}

// Property declares a stored property.
func (b *Builder) Property(name string) *PropertyBuilder {
	return &PropertyBuilder{b: b, prop: b.declare(name)}
}

// Calculated declares a calculated property invalidated by sources.
func (b *Builder) Calculated(name string, sources ...string) *PropertyBuilder {
	p := b.declare(name)
	if len(sources) == 0 {
		b.errs = append(b.errs, fmt.Errorf("calculated property %q: %w", name,
			errs.InvalidArgument("sources", "must not be empty")))
	}
	p.CalculatedFrom = append(p.CalculatedFrom, sources...)
	return &PropertyBuilder{b: b, prop: p}
}

func (b *Builder) declare(name string) *Property {
	p := &Property{Name: name}
	if name == "" {
		b.errs = append(b.errs, errs.InvalidArgument("name", "must not be empty"))
		return p
	}
	key := strings.ToLower(name)
	if _, dup := b.fold[key]; dup {
		b.errs = append(b.errs, fmt.Errorf("property %q declared twice", name))
		return p
	}
	b.fold[key] = p
	b.props = append(b.props, p)
	return p
}

// WithGetter attaches an accessor.
func (pb *PropertyBuilder) WithGetter(g Getter) *PropertyBuilder {
	pb.prop.Getter = g
	return pb
}

// Property continues with another stored property.
func (pb *PropertyBuilder) Property(name string) *PropertyBuilder {
	return pb.b.Property(name)
}

// Calculated continues with another calculated property.
func (pb *PropertyBuilder) Calculated(name string, sources ...string) *PropertyBuilder {
	return pb.b.Calculated(name, sources...)
}

// Build resolves source lists and returns the finished Class.
func (pb *PropertyBuilder) Build() (*Class, error) {
	return pb.b.Build()
}

// Build resolves source lists and returns the finished Class.
// Sources are rewritten to their canonical casing.
func (b *Builder) Build() (*Class, error) {
	problems := append([]error(nil), b.errs...)
	for _, p := range b.props {
		for i, src := range p.CalculatedFrom {
			target, ok := b.fold[strings.ToLower(src)]
			if !ok {
				problems = append(problems, fmt.Errorf("calculated property %q: %w", p.Name, errs.UnknownProperty(src)))
				continue
			}
			p.CalculatedFrom[i] = target.Name
			if !slices.Contains(target.AffectsCalculated, p.Name) {
				target.AffectsCalculated = append(target.AffectsCalculated, p.Name)
			}
		}
	}
	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}

	c := &Class{
		name:   b.name,
		props:  b.props,
		byName: make(map[string]*Property, len(b.props)),
		byFold: b.fold,
	}
	for _, p := range b.props {
		c.byName[p.Name] = p
	}
	return c, nil
}
