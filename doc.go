// Package anchor builds observable, change-tracked and validated model objects
// on top of the propbag and event packages.
//
// A model embeds ModelBase and initialises it once with a pointer to itself:
//
//	type Person struct {
//		anchor.ModelBase
//	}
//
//	func NewPerson() *Person {
//		p := &Person{}
//		if err := p.Init(p, anchor.WithReflect(metadata.WithCalculated("FullName", "FirstName", "LastName"))); err != nil {
//			panic(err)
//		}
//		return p
//	}
//
//	func (p *Person) FirstName() string     { return anchor.Get[string](p, "FirstName") }
//	func (p *Person) SetFirstName(v string) { p.Set(v, "FirstName") }
//
// Accessor-shaped methods of the model become its metadata. Property writes go
// through the bag, which raises PropertyChanged, tracks accept/reject state and
// asks the model to revalidate. Models and Collections store each other as
// children and bubble IsChanged up the graph through weak listeners, so a
// detached child never keeps its former parent alive.
//
// Models are single-owner objects and are not safe for concurrent use.
package anchor
