package anchor

import (
	"slices"

	"github.com/tortugaresearch/anchor/event"
	"github.com/tortugaresearch/anchor/metadata"
	"github.com/tortugaresearch/anchor/propbag"
	"github.com/tortugaresearch/anchor/validation"
)

// PropertyValidator is implemented by models validating single properties.
// It is called after every write made with propbag.ValidateProperty.
type PropertyValidator interface {
	ValidateProperty(name string, results *validation.Results)
}

// ObjectValidator is implemented by models with rules spanning properties.
// It is called after every write made with propbag.ValidateObject.
type ObjectValidator interface {
	ValidateObject(results *validation.Results)
}

// ErrorsChangedArgs names the property whose errors changed; Name is empty
// for object-level errors.
type ErrorsChangedArgs struct{ Name string }

// ErrorsChangedEvent is raised when the errors stored for a property change.
func (m *ModelBase) ErrorsChangedEvent() event.Source[ErrorsChangedArgs] {
	return &m.errorsChanged
}

// Validate revalidates every declared property and the object rules, and
// returns the resulting errors joined, or nil.
func (m *ModelBase) Validate() error {
	if pv, ok := m.owner.(PropertyValidator); ok {
		for _, name := range m.declared() {
			m.validateProperty(pv, name)
		}
	}
	if ov, ok := m.owner.(ObjectValidator); ok {
		m.validateObject(ov)
	}
	var all validation.Results
	all.Append(m.AllErrors()...)
	return all.Err()
}

// Errors returns the errors of name together with the object-level errors
// naming it. An empty name returns the object-level errors.
func (m *ModelBase) Errors(name string) []*validation.Result {
	object := m.stored("")
	if name == "" {
		return object
	}
	out := slices.Clone(m.stored(name))
	for _, r := range object {
		if r.Concerns(name) {
			out = append(out, r)
		}
	}
	return out
}

// AllErrors returns every stored error, property errors first in the order
// the properties first failed, object errors last.
func (m *ModelBase) AllErrors() []*validation.Result {
	var out []*validation.Result
	for _, k := range m.errors.Keys() {
		if k != "" {
			out = append(out, m.stored(k)...)
		}
	}
	return append(out, m.stored("")...)
}

// HasErrors reports whether any error is stored.
func (m *ModelBase) HasErrors() bool { return m.errors.Len() > 0 }

// ClearErrors drops every stored error.
func (m *ModelBase) ClearErrors() {
	had := m.HasErrors()
	for _, k := range m.errors.Keys() {
		m.errors.Delete(k)
		m.errorsChanged.Raise(m.owner, ErrorsChangedArgs{Name: k})
	}
	m.raiseHasErrors(had)
}

func (m *ModelBase) onRevalidateProperty(_ any, args propbag.RevalidatePropertyArgs) {
	if pv, ok := m.owner.(PropertyValidator); ok {
		m.validateProperty(pv, args.Name)
	}
}

func (m *ModelBase) onRevalidateObject(_ any, _ propbag.RevalidateObjectArgs) {
	if ov, ok := m.owner.(ObjectValidator); ok {
		m.validateObject(ov)
	}
}

func (m *ModelBase) validateProperty(pv PropertyValidator, name string) {
	var rs validation.Results
	pv.ValidateProperty(name, &rs)
	m.store(name, rs.All())
}

func (m *ModelBase) validateObject(ov ObjectValidator) {
	var rs validation.Results
	ov.ValidateObject(&rs)
	m.store("", rs.All())
}

// store replaces the errors kept under key, raising ErrorsChanged when they
// differ and HasErrors when the model flips between valid and invalid.
func (m *ModelBase) store(key string, results []*validation.Result) {
	old := m.stored(key)
	if slices.EqualFunc(old, results, sameResult) {
		return
	}
	had := m.HasErrors()
	if len(results) == 0 {
		m.errors.Delete(key)
	} else {
		m.errors.Set(key, results)
	}
	m.errorsChanged.Raise(m.owner, ErrorsChangedArgs{Name: key})
	m.raiseHasErrors(had)
}

func (m *ModelBase) stored(key string) []*validation.Result {
	v, ok := m.errors.Get(key)
	if !ok {
		return nil
	}
	return v.([]*validation.Result)
}

func (m *ModelBase) raiseHasErrors(had bool) {
	if had != m.HasErrors() {
		m.bag.PropertyChanged().Raise(m.owner, propbag.PropertyChangedArgs{Name: HasErrorsProperty})
	}
}

// declared lists the non-calculated properties known to the metadata.
func (m *ModelBase) declared() []string {
	lister, ok := m.md.(interface{ Properties() []*metadata.Property })
	if !ok {
		return m.bag.Keys()
	}
	var names []string
	for _, p := range lister.Properties() {
		if !p.IsCalculated() {
			names = append(names, p.Name)
		}
	}
	return names
}

func sameResult(a, b *validation.Result) bool {
	return a.Message == b.Message && slices.Equal(a.Properties, b.Properties)
}
