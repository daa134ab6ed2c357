// Package demo holds the sample models driven by the anchor CLI and the
// scenario runner applying scripted edits to them.
package demo

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tortugaresearch/anchor"
	"github.com/tortugaresearch/anchor/errs"
	"github.com/tortugaresearch/anchor/metadata"
	"github.com/tortugaresearch/anchor/propbag"
	"github.com/tortugaresearch/anchor/validation"
)

// Assignable models accept loosely typed values, as decoded from scenario files.
type Assignable interface {
	anchor.Backed
	Assign(name string, raw any) error
	Metadata() metadata.Provider
}

// Person is a contact with a derived full name.
type Person struct {
	anchor.ModelBase
}

// NewPerson returns an accepted, empty person.
func NewPerson() *Person {
	p := &Person{}
	must(p.Init(p, anchor.WithReflect(
		metadata.WithCalculated("FullName", "FirstName", "LastName"),
		metadata.WithExclude("String"),
	)))
	return p
}

func (p *Person) FirstName() string     { return anchor.Get[string](p, "FirstName") }
func (p *Person) SetFirstName(v string) { p.Set(v, "FirstName") }
func (p *Person) LastName() string      { return anchor.Get[string](p, "LastName") }
func (p *Person) SetLastName(v string)  { p.Set(v, "LastName") }
func (p *Person) Email() string         { return anchor.Get[string](p, "Email") }
func (p *Person) SetEmail(v string)     { p.Set(v, "Email") }
func (p *Person) Age() int              { return anchor.Get[int](p, "Age") }
func (p *Person) SetAge(v int)          { p.Set(v, "Age") }

// FullName joins the first and last names.
func (p *Person) FullName() string {
	return strings.TrimSpace(p.FirstName() + " " + p.LastName())
}

func (p *Person) String() string { return p.FullName() }

// ValidateProperty implements anchor.PropertyValidator.
func (p *Person) ValidateProperty(name string, results *validation.Results) {
	switch name {
	case "FirstName":
		if p.FirstName() == "" {
			results.Add("first name is required", name)
		}
	case "Email":
		if e := p.Email(); e != "" && !strings.Contains(e, "@") {
			results.Add(fmt.Sprintf("%q is not an email address", e), name)
		}
	}
}

// ValidateObject implements anchor.ObjectValidator.
func (p *Person) ValidateObject(results *validation.Results) {
	if p.Age() < 0 {
		results.Add("age must not be negative", "Age")
	}
}

// Assign implements Assignable.
func (p *Person) Assign(name string, raw any) error {
	prop, err := p.Metadata().Lookup(name)
	if err != nil {
		return err
	}
	switch prop.Name {
	case "FirstName", "LastName", "Email":
		return assign[string](&p.ModelBase, prop.Name, raw)
	case "Age":
		return assign[int](&p.ModelBase, prop.Name, raw)
	}
	return errs.InvalidArgument(prop.Name, "property is read-only")
}

// Order is a customer order with a change-tracked list of lines. Total is
// raised whenever the lines are added, removed or re-priced.
type Order struct {
	anchor.ModelBase

	lineLinks map[*Line]*propbag.Link
}

// NewOrder returns an accepted order with no lines.
func NewOrder() *Order {
	o := &Order{lineLinks: make(map[*Line]*propbag.Link)}
	must(o.Init(o, anchor.WithReflect(metadata.WithCalculated("Total", "Lines"))))
	_, err := o.Lines().CollectionChangedEvent().Subscribe(o.onLinesChanged)
	must(err)
	return o
}

func (o *Order) Customer() string     { return anchor.Get[string](o, "Customer") }
func (o *Order) SetCustomer(v string) { o.Set(v, "Customer") }

// Lines is created on first use and stored as an accepted child.
func (o *Order) Lines() *anchor.Collection[*Line] {
	return anchor.GetNew(o, "Lines", func() *anchor.Collection[*Line] { return anchor.NewCollection[*Line]() })
}

// Total sums the line amounts.
func (o *Order) Total() float64 {
	var sum float64
	for _, l := range o.Lines().Items() {
		sum += l.Amount()
	}
	return sum
}

// AddLine appends a new line for product.
func (o *Order) AddLine(product string, quantity int, unitPrice float64) *Line {
	l := NewLine(product, quantity, unitPrice)
	o.Lines().Add(l)
	return l
}

func (o *Order) onLinesChanged(any, anchor.CollectionChangedArgs[*Line]) {
	o.relinkLines()
	o.invalidateLines()
}

// relinkLines keeps exactly one watch per line currently in the collection.
func (o *Order) relinkLines() {
	live := make(map[*Line]bool, o.Lines().Len())
	for _, l := range o.Lines().Items() {
		live[l] = true
		if _, ok := o.lineLinks[l]; ok {
			continue
		}
		link, err := propbag.Watch(l, o.onLineChanged)
		must(err)
		o.lineLinks[l] = link
	}
	for l, link := range o.lineLinks {
		if !live[l] {
			link.Close()
			delete(o.lineLinks, l)
		}
	}
}

func (o *Order) onLineChanged(_ any, args propbag.PropertyChangedArgs) {
	if args.Name == "Amount" {
		o.invalidateLines()
	}
}

// invalidateLines raises Lines and, through the metadata, Total.
func (o *Order) invalidateLines() {
	must(o.Properties().OnPropertyChanged("Lines"))
}

// ValidateObject implements anchor.ObjectValidator.
func (o *Order) ValidateObject(results *validation.Results) {
	if o.Customer() == "" {
		results.Add("customer is required", "Customer")
	}
}

// Assign implements Assignable.
func (o *Order) Assign(name string, raw any) error {
	prop, err := o.Metadata().Lookup(name)
	if err != nil {
		return err
	}
	if prop.Name != "Customer" {
		return errs.InvalidArgument(prop.Name, "property is read-only")
	}
	return assign[string](&o.ModelBase, prop.Name, raw)
}

// Line is one order position. Its ID is assigned at creation and never changes.
type Line struct {
	anchor.ModelBase
}

// NewLine returns an unaccepted line.
func NewLine(product string, quantity int, unitPrice float64) *Line {
	l := &Line{}
	must(l.Init(l, anchor.WithReflect(metadata.WithCalculated("Amount", "Quantity", "UnitPrice"))))
	if _, err := l.SetWith(uuid.New(), propbag.Initialize, "ID"); err != nil {
		panic(err)
	}
	l.Set(product, "Product")
	l.Set(quantity, "Quantity")
	l.Set(unitPrice, "UnitPrice")
	return l
}

func (l *Line) ID() uuid.UUID          { return anchor.Get[uuid.UUID](l, "ID") }
func (l *Line) Product() string        { return anchor.Get[string](l, "Product") }
func (l *Line) SetProduct(v string)    { l.Set(v, "Product") }
func (l *Line) Quantity() int          { return anchor.Get[int](l, "Quantity") }
func (l *Line) SetQuantity(v int)      { l.Set(v, "Quantity") }
func (l *Line) UnitPrice() float64     { return anchor.Get[float64](l, "UnitPrice") }
func (l *Line) SetUnitPrice(v float64) { l.Set(v, "UnitPrice") }

// Amount is Quantity times UnitPrice.
func (l *Line) Amount() float64 { return float64(l.Quantity()) * l.UnitPrice() }

// ValidateProperty implements anchor.PropertyValidator.
func (l *Line) ValidateProperty(name string, results *validation.Results) {
	if name == "Quantity" && l.Quantity() <= 0 {
		results.Add("quantity must be positive", name)
	}
}

// Assign implements Assignable.
func (l *Line) Assign(name string, raw any) error {
	prop, err := l.Metadata().Lookup(name)
	if err != nil {
		return err
	}
	switch prop.Name {
	case "Product":
		return assign[string](&l.ModelBase, prop.Name, raw)
	case "Quantity":
		return assign[int](&l.ModelBase, prop.Name, raw)
	case "UnitPrice":
		return assign[float64](&l.ModelBase, prop.Name, raw)
	}
	return errs.InvalidArgument(prop.Name, "property is read-only")
}

func assign[T any](m *anchor.ModelBase, name string, raw any) error {
	v, err := coerce[T](name, raw)
	if err != nil {
		return err
	}
	_, err = m.SetWith(v, propbag.Default, name)
	return err
}

// coerce converts decoder output (int, int64, uint64, float64, string) to T.
func coerce[T any](name string, raw any) (T, error) {
	var zero T
	var out any
	switch any(zero).(type) {
	case string:
		s, ok := raw.(string)
		if !ok {
			s = fmt.Sprint(raw)
		}
		out = s
	case int:
		switch n := raw.(type) {
		case int:
			out = n
		case int64:
			out = int(n)
		case uint64:
			out = int(n)
		case float64:
			if n != float64(int(n)) {
				return zero, errs.InvalidArgument(name, fmt.Sprintf("%v is not a whole number", n))
			}
			out = int(n)
		}
	case float64:
		switch n := raw.(type) {
		case int:
			out = float64(n)
		case int64:
			out = float64(n)
		case uint64:
			out = float64(n)
		case float64:
			out = n
		}
	}
	v, ok := out.(T)
	if !ok {
		return zero, errs.InvalidArgument(name, fmt.Sprintf("cannot use %T value %v", raw, raw))
	}
	return v, nil
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
