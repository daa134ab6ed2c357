package event

import "github.com/tortugaresearch/anchor/errs"

// Source is anything a handler can be subscribed to. The returned function
// removes the subscription; calling it more than once is harmless.
type Source[T any] interface {
	Subscribe(h Handler[T]) (unsubscribe func(), err error)
}

// Event is a strongly referenced multicast event. The zero value is ready to use.
type Event[T any] struct {
	next uint64
	subs []subscription[T]
}

type subscription[T any] struct {
	id uint64
	h  Handler[T]
}

// Subscribe adds h and returns a function that removes it again.
func (e *Event[T]) Subscribe(h Handler[T]) (func(), error) {
	if h == nil {
		return nil, errs.InvalidArgument("handler", "must not be nil")
	}
	e.next++
	id := e.next
	e.subs = append(e.subs, subscription[T]{id: id, h: h})
	return func() { e.remove(id) }, nil
}

func (e *Event[T]) remove(id uint64) {
	for i, s := range e.subs {
		if s.id == id {
			e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
			return
		}
	}
}

// Raise invokes every handler in subscription order. Handlers added or
// removed while Raise runs take effect from the next Raise.
func (e *Event[T]) Raise(sender any, args T) {
	if len(e.subs) == 0 {
		return
	}
	for _, s := range e.subs {
		s.h(sender, args)
	}
}

// Len returns the number of subscribed handlers.
func (e *Event[T]) Len() int {
	return len(e.subs)
}
