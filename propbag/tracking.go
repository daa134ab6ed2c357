package propbag

import (
	"errors"

	"github.com/tortugaresearch/anchor/errs"
	"github.com/tortugaresearch/anchor/internal/logging"
	"github.com/tortugaresearch/anchor/metadata"
	"github.com/tortugaresearch/anchor/metrics"
)

// IsChangedLocal reports whether any stored value differs from the accepted
// baseline or was created after it.
func (b *Bag) IsChangedLocal() bool { return b.changedLocal }

// IsChangedGraph reports whether any stored Changeable value reports itself
// changed. Grandchildren are the children's business.
func (b *Bag) IsChangedGraph() bool {
	for _, k := range b.current.Keys() {
		v, _ := b.current.Get(k)
		if c, ok := AsChangeable(v); ok && c.IsChanged() {
			return true
		}
	}
	return false
}

// IsChanged is IsChangedLocal or IsChangedGraph.
func (b *Bag) IsChanged() bool {
	return b.changedLocal || b.IsChangedGraph()
}

// ChangedProperties lists, in insertion order, the names whose value differs
// from the accepted baseline or that have no baseline at all.
func (b *Bag) ChangedProperties() []string {
	var out []string
	for _, k := range b.current.Keys() {
		cur, _ := b.current.Get(k)
		orig, ok := b.original.Get(k)
		if !ok || !valuesEqual(cur, orig) {
			out = append(out, k)
		}
	}
	return out
}

// GetPreviousValue returns the accepted value, or NotSet if the property has
// never been accepted.
func (b *Bag) GetPreviousValue(name string) (any, error) {
	if name == "" {
		return NotSet, errs.InvalidArgument("name", "must not be empty")
	}
	if v, ok := b.original.Get(name); ok {
		return v, nil
	}
	return NotSet, nil
}

// AcceptChanges makes the current values the baseline. With recursive set,
// every stored Changeable is accepted first.
func (b *Bag) AcceptChanges(recursive bool) {
	if recursive {
		for _, k := range b.current.Keys() {
			v, _ := b.current.Get(k)
			if c, ok := AsChangeable(v); ok {
				c.AcceptChanges()
			}
		}
	}
	b.original = b.current.Snapshot()
	b.setChangedLocal(false, true)

	metrics.BagAcceptTotal.Inc()
	logging.L().Debug().Int("properties", b.current.Len()).Bool("recursive", recursive).Msg("bag accepted changes")
}

// pendingReject is one property RejectChanges has to put back.
type pendingReject struct {
	name    string
	old     any
	restore bool
	value   any
}

// RejectChanges restores the accepted baseline. Properties created after it
// are removed; others get their accepted value back. Each restored or removed
// name is announced with changing then changed, along with its calculated
// dependents. With recursive set, every remaining Revertible is rejected too.
//
// The aggregate IsChanged notification is raised only when the graph-level
// state actually differs from before the rollback, whereas IsChangedLocal is
// raised whenever the local flag flips.
//
// The rollback always completes; errors from re-subscribing to restored
// children are joined and returned afterwards.
func (b *Bag) RejectChanges(recursive bool) error {
	before := b.IsChanged()

	var pending []pendingReject
	for _, k := range b.current.Keys() {
		cur, _ := b.current.Get(k)
		orig, ok := b.original.Get(k)
		switch {
		case !ok:
			pending = append(pending, pendingReject{name: k, old: cur})
		case !valuesEqual(cur, orig):
			pending = append(pending, pendingReject{name: k, old: cur, restore: true, value: orig})
		}
	}

	var problems []error
	for _, p := range pending {
		b.changing.Raise(b.owner, PropertyChangingArgs{Name: p.name})
		if p.restore {
			link, err := b.linkChild(p.value)
			if err != nil {
				problems = append(problems, err)
			}
			b.current.Set(p.name, p.value)
			b.replaceChild(p.name, link)
		} else {
			b.current.Delete(p.name)
			b.replaceChild(p.name, nil)
		}
		b.raiseChanged(p.name, b.lookupQuiet(p.name))
	}

	if recursive {
		for _, k := range b.current.Keys() {
			v, _ := b.current.Get(k)
			if r, ok := AsRevertible(v); ok {
				r.RejectChanges()
			}
		}
	}

	b.setChangedLocal(false, false)
	if after := b.IsChanged(); after != before {
		b.raise(IsChangedProperty)
	}

	metrics.BagRejectTotal.Inc()
	logging.L().Debug().Int("reverted", len(pending)).Bool("recursive", recursive).Msg("bag rejected changes")
	return errors.Join(problems...)
}

// lookupQuiet resolves metadata when it exists. Properties outside the
// metadata table can legitimately be stored sparsely, and a rollback must
// not fail on them.
func (b *Bag) lookupQuiet(name string) *metadata.Property {
	if b.md == nil {
		return nil
	}
	p, err := b.md.Lookup(name)
	if err != nil {
		return nil
	}
	return p
}

// setChangedLocal flips the local flag, raising IsChangedLocal and, when
// asked, IsChanged on a transition.
func (b *Bag) setChangedLocal(v, raiseAggregate bool) {
	if b.changedLocal == v {
		return
	}
	b.changedLocal = v
	b.raise(IsChangedLocalProperty)
	if raiseAggregate {
		b.raise(IsChangedProperty)
	}
}
