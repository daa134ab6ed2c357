package event

// Set is a collection of weak listener slots. Each listener appears at most
// once; dead slots linger until Sweep (or Remove of a live entry) runs.
type Set[T any] struct {
	slots []Slot[T]
}

// Add records l and reports whether it was not already present.
func (s *Set[T]) Add(l *Listener[T]) bool {
	if s.index(l) >= 0 {
		return false
	}
	s.slots = append(s.slots, NewSlot(l))
	return true
}

// Remove drops l and reports whether it was present.
func (s *Set[T]) Remove(l *Listener[T]) bool {
	i := s.index(l)
	if i < 0 {
		return false
	}
	s.slots = append(s.slots[:i], s.slots[i+1:]...)
	return true
}

// Contains reports whether l is recorded.
func (s *Set[T]) Contains(l *Listener[T]) bool {
	return s.index(l) >= 0
}

// Sweep purges reclaimed slots and returns how many were dropped.
func (s *Set[T]) Sweep() int {
	kept := s.slots[:0]
	for _, slot := range s.slots {
		if slot.Alive() {
			kept = append(kept, slot)
		}
	}
	dropped := len(s.slots) - len(kept)
	clear(s.slots[len(kept):])
	s.slots = kept
	return dropped
}

// Len returns the number of slots, dead ones included.
func (s *Set[T]) Len() int {
	return len(s.slots)
}

// Live returns strong references to every listener still reachable. Holding
// the result keeps those listeners alive until it is released.
func (s *Set[T]) Live() []*Listener[T] {
	out := make([]*Listener[T], 0, len(s.slots))
	for _, slot := range s.slots {
		if l := slot.Target(); l != nil {
			out = append(out, l)
		}
	}
	return out
}

func (s *Set[T]) index(l *Listener[T]) int {
	for i, slot := range s.slots {
		if slot.Is(l) {
			return i
		}
	}
	return -1
}
