package anchor

import (
	"slices"

	"github.com/tortugaresearch/anchor/event"
	"github.com/tortugaresearch/anchor/internal/logging"
	"github.com/tortugaresearch/anchor/propbag"
)

// CountProperty is raised through PropertyChanged when a collection's length changes.
const CountProperty = "Count"

// CollectionAction says how a collection changed.
type CollectionAction int

const (
	CollectionAdd CollectionAction = iota
	CollectionRemove
	CollectionReplace
	CollectionReset
)

func (a CollectionAction) String() string {
	switch a {
	case CollectionAdd:
		return "add"
	case CollectionRemove:
		return "remove"
	case CollectionReplace:
		return "replace"
	case CollectionReset:
		return "reset"
	}
	return "unknown"
}

// CollectionChangedArgs describes one structural change. Index is -1 for resets.
type CollectionChangedArgs[T any] struct {
	Action   CollectionAction
	Index    int
	NewItems []T
	OldItems []T
}

// Collection is an ordered, change-tracked list. Items implementing
// propbag.Changeable count towards IsChanged and have their IsChanged
// notifications bubbled through the collection.
//
// Mutating methods panic if subscribing to an item fails, which only a
// misbehaving item implementation can cause.
type Collection[T any] struct {
	items    []T
	links    []*propbag.Link
	original []T
	changed  bool

	propertyChanged   event.Event[propbag.PropertyChangedArgs]
	collectionChanged event.Event[CollectionChangedArgs[T]]
	weak              *event.Manager[propbag.PropertyChangedArgs]
}

// NewCollection creates a collection whose initial items are already accepted.
func NewCollection[T any](items ...T) *Collection[T] {
	c := &Collection[T]{}
	c.weak = event.NewManager[propbag.PropertyChangedArgs](&c.propertyChanged, event.WithName("collection"))
	c.items = slices.Clone(items)
	c.links = make([]*propbag.Link, len(items))
	for i, item := range c.items {
		c.links[i] = c.watch(item)
	}
	c.original = slices.Clone(c.items)
	return c
}

// Len returns the number of items.
func (c *Collection[T]) Len() int { return len(c.items) }

// At returns the item at i.
func (c *Collection[T]) At(i int) T { return c.items[i] }

// Items returns a copy of the items.
func (c *Collection[T]) Items() []T { return slices.Clone(c.items) }

// Add appends item.
func (c *Collection[T]) Add(item T) {
	c.Insert(len(c.items), item)
}

// Insert places item at index i.
func (c *Collection[T]) Insert(i int, item T) {
	c.items = slices.Insert(c.items, i, item)
	c.links = slices.Insert(c.links, i, c.watch(item))
	c.raiseCollection(CollectionChangedArgs[T]{Action: CollectionAdd, Index: i, NewItems: []T{item}})
	c.raiseCount()
	c.markChanged()
}

// RemoveAt removes and returns the item at index i.
func (c *Collection[T]) RemoveAt(i int) T {
	item := c.items[i]
	c.links[i].Close()
	c.items = slices.Delete(c.items, i, i+1)
	c.links = slices.Delete(c.links, i, i+1)
	c.raiseCollection(CollectionChangedArgs[T]{Action: CollectionRemove, Index: i, OldItems: []T{item}})
	c.raiseCount()
	c.markChanged()
	return item
}

// Remove removes the first item matching and reports whether one did.
func (c *Collection[T]) Remove(match func(T) bool) bool {
	i := slices.IndexFunc(c.items, match)
	if i < 0 {
		return false
	}
	c.RemoveAt(i)
	return true
}

// IndexFunc returns the index of the first item matching, or -1.
func (c *Collection[T]) IndexFunc(match func(T) bool) int {
	return slices.IndexFunc(c.items, match)
}

// Replace swaps the item at index i for item and returns the old one.
func (c *Collection[T]) Replace(i int, item T) T {
	old := c.items[i]
	c.links[i].Close()
	c.items[i] = item
	c.links[i] = c.watch(item)
	c.raiseCollection(CollectionChangedArgs[T]{Action: CollectionReplace, Index: i, NewItems: []T{item}, OldItems: []T{old}})
	c.markChanged()
	return old
}

// Clear removes every item.
func (c *Collection[T]) Clear() {
	if len(c.items) == 0 {
		return
	}
	old := c.reset(nil)
	c.raiseCollection(CollectionChangedArgs[T]{Action: CollectionReset, Index: -1, OldItems: old})
	c.raiseCount()
	c.markChanged()
}

// IsChangedLocal reports whether the list itself was modified since the last accept.
func (c *Collection[T]) IsChangedLocal() bool { return c.changed }

// IsChanged reports local modifications or any changed item.
func (c *Collection[T]) IsChanged() bool {
	if c.changed {
		return true
	}
	for _, item := range c.items {
		if ch, ok := propbag.AsChangeable(item); ok && ch.IsChanged() {
			return true
		}
	}
	return false
}

// AcceptChanges accepts every item, then makes the current list the baseline.
func (c *Collection[T]) AcceptChanges() {
	for _, item := range c.items {
		if ch, ok := propbag.AsChangeable(item); ok {
			ch.AcceptChanges()
		}
	}
	c.original = slices.Clone(c.items)
	c.setChanged(false, true)
}

// RejectChanges restores the accepted list, then rejects every restored item.
func (c *Collection[T]) RejectChanges() {
	before := c.IsChanged()
	restored := 0
	if c.changed {
		old := c.reset(c.original)
		restored = len(old)
		c.raiseCollection(CollectionChangedArgs[T]{Action: CollectionReset, Index: -1, OldItems: old, NewItems: c.Items()})
		if len(old) != len(c.items) {
			c.raiseCount()
		}
	}
	for _, item := range c.items {
		if r, ok := propbag.AsRevertible(item); ok {
			r.RejectChanges()
		}
	}
	c.setChanged(false, false)
	if c.IsChanged() != before {
		c.raise(propbag.IsChangedProperty)
	}
	logging.L().Debug().Int("items", len(c.items)).Int("replaced", restored).Msg("collection rejected changes")
}

// PropertyChangedEvent raises Count, IsChanged and IsChangedLocal.
func (c *Collection[T]) PropertyChangedEvent() event.Source[propbag.PropertyChangedArgs] {
	return &c.propertyChanged
}

// CollectionChangedEvent is raised for every structural change.
func (c *Collection[T]) CollectionChangedEvent() event.Source[CollectionChangedArgs[T]] {
	return &c.collectionChanged
}

// AddWeakPropertyChangedHandler subscribes l without keeping it alive.
func (c *Collection[T]) AddWeakPropertyChangedHandler(l *event.Listener[propbag.PropertyChangedArgs]) error {
	return c.weak.AddHandler(l)
}

// RemoveWeakPropertyChangedHandler removes a weak subscription.
func (c *Collection[T]) RemoveWeakPropertyChangedHandler(l *event.Listener[propbag.PropertyChangedArgs]) error {
	return c.weak.RemoveHandler(l)
}

// WeakPropertyChanged returns the manager behind the weak property-changed event.
func (c *Collection[T]) WeakPropertyChanged() *event.Manager[propbag.PropertyChangedArgs] {
	return c.weak
}

// reset replaces the items wholesale, relinking every one, and returns the old items.
func (c *Collection[T]) reset(items []T) []T {
	old := c.items
	for _, l := range c.links {
		l.Close()
	}
	c.items = slices.Clone(items)
	c.links = make([]*propbag.Link, len(c.items))
	for i, item := range c.items {
		c.links[i] = c.watch(item)
	}
	return old
}

func (c *Collection[T]) watch(item T) *propbag.Link {
	l, err := propbag.Watch(item, c.onItemChanged)
	if err != nil {
		panic(err)
	}
	return l
}

func (c *Collection[T]) onItemChanged(_ any, args propbag.PropertyChangedArgs) {
	if args.Name == propbag.IsChangedProperty {
		c.raise(propbag.IsChangedProperty)
	}
}

func (c *Collection[T]) markChanged() {
	c.setChanged(true, true)
}

func (c *Collection[T]) setChanged(v, raiseAggregate bool) {
	if c.changed == v {
		return
	}
	c.changed = v
	c.raise(propbag.IsChangedLocalProperty)
	if raiseAggregate {
		c.raise(propbag.IsChangedProperty)
	}
}

func (c *Collection[T]) raise(name string) {
	c.propertyChanged.Raise(c, propbag.PropertyChangedArgs{Name: name})
}

func (c *Collection[T]) raiseCount() {
	c.raise(CountProperty)
}

func (c *Collection[T]) raiseCollection(args CollectionChangedArgs[T]) {
	c.collectionChanged.Raise(c, args)
}
