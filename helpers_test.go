package anchor_test

import (
	"strings"

	"github.com/tortugaresearch/anchor"
	"github.com/tortugaresearch/anchor/metadata"
	"github.com/tortugaresearch/anchor/validation"
)

type person struct {
	anchor.ModelBase
}

func newPerson() *person {
	p := &person{}
	if err := p.Init(p, anchor.WithReflect(metadata.WithCalculated("FullName", "FirstName", "LastName"))); err != nil {
		panic(err)
	}
	return p
}

func (p *person) FirstName() string     { return anchor.Get[string](p, "FirstName") }
func (p *person) SetFirstName(v string) { p.Set(v, "FirstName") }
func (p *person) LastName() string      { return anchor.Get[string](p, "LastName") }
func (p *person) SetLastName(v string)  { p.Set(v, "LastName") }
func (p *person) Age() int              { return anchor.Get[int](p, "Age") }
func (p *person) SetAge(v int)          { p.Set(v, "Age") }

func (p *person) FullName() string {
	return strings.TrimSpace(p.FirstName() + " " + p.LastName())
}

func (p *person) ValidateProperty(name string, results *validation.Results) {
	if name == "FirstName" && p.FirstName() == "" {
		results.Add("first name is required", "FirstName")
	}
}

func (p *person) ValidateObject(results *validation.Results) {
	if p.Age() < 0 {
		results.Add("age must not be negative", "Age")
	}
}

type line struct {
	anchor.ModelBase
}

func newLine(product string, quantity int) *line {
	l := &line{}
	if err := l.Init(l); err != nil {
		panic(err)
	}
	l.Set(product, "Product")
	l.Set(quantity, "Quantity")
	return l
}

func (l *line) Product() string     { return anchor.Get[string](l, "Product") }
func (l *line) Quantity() int       { return anchor.Get[int](l, "Quantity") }
func (l *line) SetQuantity(v int)   { l.Set(v, "Quantity") }
func (l *line) SetProduct(v string) { l.Set(v, "Product") }

type order struct {
	anchor.ModelBase
}

func newOrder() *order {
	o := &order{}
	if err := o.Init(o); err != nil {
		panic(err)
	}
	return o
}

func (o *order) Customer() string     { return anchor.Get[string](o, "Customer") }
func (o *order) SetCustomer(v string) { o.Set(v, "Customer") }

func (o *order) Lines() *anchor.Collection[*line] {
	return anchor.GetNew(o, "Lines", func() *anchor.Collection[*line] { return anchor.NewCollection[*line]() })
}
