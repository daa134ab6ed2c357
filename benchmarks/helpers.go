// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"github.com/tortugaresearch/anchor"
	"github.com/tortugaresearch/anchor/event"
	"github.com/tortugaresearch/anchor/metadata"
	"github.com/tortugaresearch/anchor/propbag"
)

// PropName returns the name of the i-th generated property.
func PropName(i int) string { return fmt.Sprintf("P%d", i) }

// GenWideClass builds metadata with n plain properties and one calculated
// "Total" depending on all of them.
func GenWideClass(n int) *metadata.Class {
	if n < 1 {
		n = 1
	}
	b := metadata.NewBuilder(fmt.Sprintf("wide_%d", n))
	sources := make([]string, n)
	for i := range n {
		sources[i] = PropName(i)
		b.Property(sources[i])
	}
	b.Calculated("Total", sources...)
	md, err := b.Build()
	if err != nil {
		panic(err)
	}
	return md
}

// GenPopulatedBag returns an accepted bag holding a value for every plain
// property of a wide class.
func GenPopulatedBag(n int) *propbag.Bag {
	bag := propbag.New(nil, GenWideClass(n))
	for i := range n {
		if _, _, err := bag.Set(i, propbag.Initialize, PropName(i)); err != nil {
			panic(err)
		}
	}
	return bag
}

// Node is a minimal model holding a value and an optional child node.
type Node struct {
	anchor.ModelBase
}

func (n *Node) Value() int       { return anchor.Get[int](n, "Value") }
func (n *Node) SetValue(v int)   { n.Set(v, "Value") }
func (n *Node) Child() *Node     { return anchor.Get[*Node](n, "Child") }
func (n *Node) SetChild(c *Node) { n.Set(c, "Child") }

// GenChain links depth nodes parent to child and returns the root and the
// leaf. Every node starts accepted.
func GenChain(depth int) (root, leaf *Node) {
	if depth < 1 {
		depth = 1
	}
	nodes := make([]*Node, depth)
	for i := range nodes {
		nodes[i] = &Node{}
		if err := nodes[i].Init(nodes[i]); err != nil {
			panic(err)
		}
		nodes[i].SetValue(0)
	}
	for i := depth - 1; i > 0; i-- {
		nodes[i-1].SetChild(nodes[i])
	}
	nodes[0].AcceptChanges()
	return nodes[0], nodes[depth-1]
}

// Subscribe adds n weak listeners to mgr and returns them so the caller
// keeps them alive.
func Subscribe(mgr *event.Manager[propbag.PropertyChangedArgs], n int, h event.Handler[propbag.PropertyChangedArgs]) []*event.Listener[propbag.PropertyChangedArgs] {
	ls := make([]*event.Listener[propbag.PropertyChangedArgs], n)
	for i := range ls {
		ls[i] = event.NewListener(h)
		if err := mgr.AddHandler(ls[i]); err != nil {
			panic(err)
		}
	}
	return ls
}
