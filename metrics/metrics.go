// Package metrics exposes prometheus counters for weak event managers and
// property bags. The collectors are registered on the default registry at
// init; Collectors returns them for callers wiring a custom registry.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	EventAttachTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "anchor",
			Subsystem: "event",
			Name:      "attach_total",
			Help:      "Times a weak event manager hooked onto its upstream source",
		},
		[]string{"manager"},
	)

	EventDetachTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "anchor",
			Subsystem: "event",
			Name:      "detach_total",
			Help:      "Times a weak event manager unhooked from its upstream source",
		},
		[]string{"manager"},
	)

	EventDispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "anchor",
			Subsystem: "event",
			Name:      "dispatch_total",
			Help:      "Listener invocations performed by weak event managers",
		},
		[]string{"manager"},
	)

	EventSweptTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "anchor",
			Subsystem: "event",
			Name:      "swept_total",
			Help:      "Reclaimed listeners purged from weak subscriber sets",
		},
		[]string{"manager"},
	)

	BagSetTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "anchor",
			Subsystem: "bag",
			Name:      "set_total",
			Help:      "Property bag writes, by whether the value changed",
		},
		[]string{"result"},
	)

	BagAcceptTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "anchor",
			Subsystem: "bag",
			Name:      "accept_total",
			Help:      "AcceptChanges calls on property bags",
		},
	)

	BagRejectTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "anchor",
			Subsystem: "bag",
			Name:      "reject_total",
			Help:      "RejectChanges calls on property bags",
		},
	)
)

func init() {
	prometheus.MustRegister(Collectors()...)
}

// Collectors returns every collector defined by this package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		EventAttachTotal, EventDetachTotal, EventDispatchTotal, EventSweptTotal,
		BagSetTotal, BagAcceptTotal, BagRejectTotal,
	}
}

// SetResult maps a Set outcome onto the result label.
func SetResult(changed bool) string {
	if changed {
		return "changed"
	}
	return "unchanged"
}
