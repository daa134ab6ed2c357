package event

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tortugaresearch/anchor/errs"
	"github.com/tortugaresearch/anchor/internal/logging"
	"github.com/tortugaresearch/anchor/metrics"
)

const defaultManagerName = "default"

// Manager fans an upstream Source out to weakly referenced listeners.
//
// The Manager belongs to the publisher exposing the weak event. It holds the
// upstream subscription only while at least one live listener is recorded.
type Manager[T any] struct {
	source Source[T]
	subs   Set[T]
	detach func()
	name   string

	attachTotal, detachTotal, dispatchTotal, sweptTotal prometheus.Counter
}

// ManagerOption configures a Manager.
type ManagerOption func(*managerOptions)

type managerOptions struct {
	name string
}

// WithName labels the manager in logs and metrics.
func WithName(name string) ManagerOption {
	return func(o *managerOptions) {
		if name != "" {
			o.name = name
		}
	}
}

// NewManager creates a detached manager for source.
func NewManager[T any](source Source[T], opts ...ManagerOption) *Manager[T] {
	o := managerOptions{name: defaultManagerName}
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager[T]{
		source:        source,
		name:          o.name,
		attachTotal:   metrics.EventAttachTotal.WithLabelValues(o.name),
		detachTotal:   metrics.EventDetachTotal.WithLabelValues(o.name),
		dispatchTotal: metrics.EventDispatchTotal.WithLabelValues(o.name),
		sweptTotal:    metrics.EventSweptTotal.WithLabelValues(o.name),
	}
}

// AddHandler records l as a weak listener, attaching to the source first if
// this is the only live listener.
func (m *Manager[T]) AddHandler(l *Listener[T]) error {
	if !l.valid() {
		return errs.InvalidArgument("listener", "must not be nil")
	}
	m.sweep()
	if m.detach == nil {
		if err := m.attach(); err != nil {
			return err
		}
	}
	m.subs.Add(l)
	return nil
}

// RemoveHandler drops l, detaching from the source once no live listener remains.
// Removing a listener that was never added is not an error.
func (m *Manager[T]) RemoveHandler(l *Listener[T]) error {
	if !l.valid() {
		return errs.InvalidArgument("listener", "must not be nil")
	}
	m.subs.Remove(l)
	m.sweep()
	if m.subs.Len() == 0 {
		m.unhook()
	}
	return nil
}

// Attached reports whether the manager is currently hooked onto its source.
func (m *Manager[T]) Attached() bool {
	return m.detach != nil
}

// Len returns the number of recorded listeners, including any that have been
// reclaimed but not yet swept.
func (m *Manager[T]) Len() int {
	return m.subs.Len()
}

func (m *Manager[T]) attach() error {
	detach, err := m.source.Subscribe(m.dispatch)
	if err != nil {
		return err
	}
	m.detach = detach
	m.attachTotal.Inc()
	logging.L().Debug().Str("manager", m.name).Msg("weak event manager attached")
	return nil
}

func (m *Manager[T]) unhook() {
	if m.detach == nil {
		return
	}
	m.detach()
	m.detach = nil
	m.detachTotal.Inc()
	logging.L().Debug().Str("manager", m.name).Msg("weak event manager detached")
}

func (m *Manager[T]) sweep() {
	if n := m.subs.Sweep(); n > 0 {
		m.sweptTotal.Add(float64(n))
		logging.L().Debug().Str("manager", m.name).Int("dropped", n).Msg("swept reclaimed listeners")
	}
}

func (m *Manager[T]) dispatch(sender any, args T) {
	m.sweep()
	live := m.subs.Live()
	if len(live) == 0 {
		m.sweep()
		m.unhook()
		return
	}
	for _, l := range live {
		l.Invoke(sender, args)
		m.dispatchTotal.Inc()
	}
}
