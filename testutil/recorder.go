// Package testutil provides helpers shared by the package tests.
package testutil

import (
	"strings"
	"testing"

	"github.com/tortugaresearch/anchor/event"
	"github.com/tortugaresearch/anchor/propbag"
)

// Recorder captures property notifications in the order they were raised.
// Entries read "changing:Name" or "changed:Name".
type Recorder struct {
	events []string
}

// RecordBag subscribes to both notifications of b until the test ends.
func RecordBag(t testing.TB, b *propbag.Bag) *Recorder {
	t.Helper()
	r := &Recorder{}
	r.watchChanging(t, b.PropertyChanging())
	r.watchChanged(t, b.PropertyChanged())
	return r
}

// RecordChanged subscribes to a property-changed source until the test ends.
func RecordChanged(t testing.TB, src event.Source[propbag.PropertyChangedArgs]) *Recorder {
	t.Helper()
	r := &Recorder{}
	r.watchChanged(t, src)
	return r
}

// RecordChanging adds a property-changing source to an existing recorder.
func (r *Recorder) RecordChanging(t testing.TB, src event.Source[propbag.PropertyChangingArgs]) *Recorder {
	t.Helper()
	r.watchChanging(t, src)
	return r
}

func (r *Recorder) watchChanging(t testing.TB, src event.Source[propbag.PropertyChangingArgs]) {
	t.Helper()
	unsub, err := src.Subscribe(func(sender any, args propbag.PropertyChangingArgs) {
		r.events = append(r.events, "changing:"+args.Name)
	})
	if err != nil {
		t.Fatalf("subscribe changing: %v", err)
	}
	t.Cleanup(unsub)
}

func (r *Recorder) watchChanged(t testing.TB, src event.Source[propbag.PropertyChangedArgs]) {
	t.Helper()
	unsub, err := src.Subscribe(func(sender any, args propbag.PropertyChangedArgs) {
		r.events = append(r.events, "changed:"+args.Name)
	})
	if err != nil {
		t.Fatalf("subscribe changed: %v", err)
	}
	t.Cleanup(unsub)
}

// Events returns every recorded entry.
func (r *Recorder) Events() []string {
	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}

// Changed returns the names of changed notifications only.
func (r *Recorder) Changed() []string {
	return r.filter("changed:")
}

// Changing returns the names of changing notifications only.
func (r *Recorder) Changing() []string {
	return r.filter("changing:")
}

// Count returns how many changed notifications named name were recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, e := range r.events {
		if e == "changed:"+name {
			n++
		}
	}
	return n
}

// Len returns the number of recorded entries.
func (r *Recorder) Len() int { return len(r.events) }

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() { r.events = r.events[:0] }

func (r *Recorder) filter(prefix string) []string {
	var out []string
	for _, e := range r.events {
		if name, ok := strings.CutPrefix(e, prefix); ok {
			out = append(out, name)
		}
	}
	return out
}
