// Package promhooks counts govconf store events with Prometheus.
package promhooks

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/unkn0wn-root/govconf"
)

const (
	EventWriteFailed  = "write_failed"
	EventDeleteFailed = "delete_failed"
	EventReadFailed   = "read_failed"
	EventMiss         = "miss"
)

type Hooks struct {
	events *prometheus.CounterVec
}

var _ govconf.Hooks = (*Hooks)(nil)

// New registers govconf_store_events_total{event} with reg.
// A nil reg leaves the collector unregistered.
func New(reg prometheus.Registerer) (*Hooks, error) {
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "govconf",
		Name:      "store_events_total",
		Help:      "Governance configuration store events by kind.",
	}, []string{"event"})
	if reg != nil {
		if err := reg.Register(events); err != nil {
			return nil, err
		}
	}
	return &Hooks{events: events}, nil
}

// Collector exposes the underlying counter vec.
func (h *Hooks) Collector() *prometheus.CounterVec { return h.events }

func (h *Hooks) WriteFailed(string, error)  { h.events.WithLabelValues(EventWriteFailed).Inc() }
func (h *Hooks) DeleteFailed(string, error) { h.events.WithLabelValues(EventDeleteFailed).Inc() }
func (h *Hooks) ReadFailed(string, error)   { h.events.WithLabelValues(EventReadFailed).Inc() }
func (h *Hooks) Miss(string)                { h.events.WithLabelValues(EventMiss).Inc() }
