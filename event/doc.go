// Package event provides strongly and weakly referenced event dispatch.
//
// Event is a conventional multicast event: every subscribed Handler stays
// reachable for as long as the Event does. Manager layers a weak subscriber
// set on top of any Source so that long-lived publishers do not pin their
// listeners in memory (and listeners holding the publisher do not pin it
// back through the publisher's own subscription list).
//
// # Weak listeners
//
// A weak subscription is made with a *Listener. The subscriber must keep that
// pointer reachable (typically in a struct field) for as long as it wants to
// be notified; the Manager only stores a weak.Pointer to it. Once the last
// strong reference is dropped and a collection cycle has run, the slot reports
// dead and the next add, remove or dispatch sweeps it.
//
//	type view struct {
//	    onChange *event.Listener[propbag.PropertyChangedArgs]
//	}
//
//	v.onChange = event.NewListener(v.refresh)
//	_ = model.AddWeakPropertyChangedHandler(v.onChange)
//
// Closures passed to NewListener must not capture the *Listener itself,
// otherwise it stays reachable from the slot's own target.
//
// # Attachment
//
// A Manager hooks onto its upstream Source lazily, just before it records its
// first listener, and unhooks after the last live listener is removed or
// found reclaimed during a sweep. Attached reports which state it is in.
//
// Nothing here is safe for concurrent use. All calls are expected on the
// single goroutine that owns the publisher.
package event
