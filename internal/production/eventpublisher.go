package production

import (
	"context"
	"errors"
	"sync"

	"github.com/tortugaresearch/anchor/event"
	"github.com/tortugaresearch/anchor/propbag"
)

// Change is one published property-changed notification.
type Change struct {
	Model    string
	Property string
}

// ChannelPublisher forwards property changes of watched models to a Go
// channel. Publishing never blocks; changes are dropped on backpressure.
// Publish, Dropped and Close may be called from any goroutine; Watch follows
// the single-goroutine rule of the models it subscribes to.
type ChannelPublisher struct {
	mu      sync.Mutex
	ch      chan<- Change
	watched []watch
	dropped int64
	closed  bool
}

type watch struct {
	n propbag.WeakNotifier
	l *event.Listener[propbag.PropertyChangedArgs]
}

// ErrClosed is returned by Publish after Close.
var ErrClosed = errors.New("publisher closed")

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- Change) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

// Watch publishes every property change of n under the given model name. n
// only holds the subscription weakly; the publisher keeps it alive.
func (p *ChannelPublisher) Watch(model string, n propbag.WeakNotifier) error {
	l := event.NewListener(func(_ any, args propbag.PropertyChangedArgs) {
		_ = p.Publish(context.Background(), Change{Model: model, Property: args.Name})
	})
	if err := n.AddWeakPropertyChangedHandler(l); err != nil {
		return err
	}
	p.mu.Lock()
	p.watched = append(p.watched, watch{n: n, l: l})
	p.mu.Unlock()
	return nil
}

func (p *ChannelPublisher) Publish(ctx context.Context, c Change) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case p.ch <- c:
	default:
		p.dropped++
	}
	return nil
}

// Dropped returns how many changes were discarded because the channel was full.
func (p *ChannelPublisher) Dropped() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dropped
}

// Close removes the watched subscriptions and closes the channel. Calling it
// again is a no-op.
func (p *ChannelPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	watched := p.watched
	p.watched = nil
	close(p.ch)
	p.mu.Unlock()

	var err error
	for _, w := range watched {
		err = errors.Join(err, w.n.RemoveWeakPropertyChangedHandler(w.l))
	}
	return err
}
