package propbag

import "github.com/tortugaresearch/anchor/event"

// Link is a subscription to the property-changed stream of one child value.
// The Link owns the listener; a weakly notifying child only references it
// weakly, so dropping the Link is enough to let the subscriber go.
type Link struct {
	listener *event.Listener[PropertyChangedArgs]
	detach   func()
}

// Close removes the subscription. It is safe on a nil Link.
func (l *Link) Close() {
	if l == nil {
		return
	}
	l.detach()
}

// Watch subscribes h to value's property-changed notifications when value is
// a change-tracking child, preferring the weak path. For any other value it
// returns a nil Link and no error.
func Watch(value any, h event.Handler[PropertyChangedArgs]) (*Link, error) {
	if _, ok := AsChangeable(value); !ok {
		return nil, nil
	}
	l := event.NewListener(h)
	switch child := value.(type) {
	case WeakNotifier:
		if err := child.AddWeakPropertyChangedHandler(l); err != nil {
			return nil, err
		}
		return &Link{
			listener: l,
			// l is never nil, the only reason removal can fail
			detach: func() { _ = child.RemoveWeakPropertyChangedHandler(l) },
		}, nil
	case Notifier:
		unsub, err := child.PropertyChangedEvent().Subscribe(l.Invoke)
		if err != nil {
			return nil, err
		}
		return &Link{listener: l, detach: unsub}, nil
	}
	return nil, nil
}

func (b *Bag) linkChild(value any) (*Link, error) {
	return Watch(value, b.onChildChanged)
}

// replaceChild tears down the link for name and installs link (which may be nil).
func (b *Bag) replaceChild(name string, link *Link) {
	if old, ok := b.children[name]; ok {
		old.Close()
		delete(b.children, name)
	}
	if link != nil {
		b.children[name] = link
	}
}

func (b *Bag) onChildChanged(sender any, args PropertyChangedArgs) {
	if args.Name == IsChangedProperty {
		b.raise(IsChangedProperty)
	}
}
