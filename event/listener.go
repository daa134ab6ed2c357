package event

import "weak"

// Handler receives an event raised by sender.
type Handler[T any] func(sender any, args T)

// Listener is the heap object a weak subscription points at.
type Listener[T any] struct {
	handler Handler[T]
}

// NewListener wraps h for weak subscription.
func NewListener[T any](h Handler[T]) *Listener[T] {
	return &Listener[T]{handler: h}
}

// Invoke calls the wrapped handler.
func (l *Listener[T]) Invoke(sender any, args T) {
	l.handler(sender, args)
}

func (l *Listener[T]) valid() bool {
	return l != nil && l.handler != nil
}

// Slot holds a non-owning reference to a Listener.
type Slot[T any] struct {
	ptr weak.Pointer[Listener[T]]
}

// NewSlot creates a slot referencing l without keeping it alive.
func NewSlot[T any](l *Listener[T]) Slot[T] {
	return Slot[T]{ptr: weak.Make(l)}
}

// Target returns the listener, or nil once it has been reclaimed.
func (s Slot[T]) Target() *Listener[T] {
	return s.ptr.Value()
}

// Alive reports whether the listener is still reachable.
func (s Slot[T]) Alive() bool {
	return s.ptr.Value() != nil
}

// Is reports whether the slot references l.
func (s Slot[T]) Is(l *Listener[T]) bool {
	return s.ptr == weak.Make(l)
}
