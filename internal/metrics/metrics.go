// Package metrics provides Prometheus counters for launchpad controller traffic.
package metrics

import (
	"net/http"

	"github.com/PixPMusic/gopher-launchpad/internal/launchpad"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gitlab.com/gomidi/midi/v2"
)

// Collector counts sent, dispatched and dropped messages.
// It implements launchpad.Observer.
type Collector struct {
	registry *prometheus.Registry

	sent       *prometheus.CounterVec
	dispatched *prometheus.CounterVec
	dropped    *prometheus.CounterVec
}

var _ launchpad.Observer = (*Collector)(nil)

// NewCollector creates a collector and registers its counters on a new registry
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		sent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "launchpad",
			Name:      "messages_sent_total",
			Help:      "MIDI messages sent to the device",
		}, []string{"controller"}),
		dispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "launchpad",
			Name:      "events_dispatched_total",
			Help:      "Decoded device events dispatched to listeners",
		}, []string{"controller", "kind"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "launchpad",
			Name:      "messages_dropped_total",
			Help:      "Inbound MIDI messages that were not recognized",
		}, []string{"controller"}),
	}
	c.registry.MustRegister(c.sent, c.dispatched, c.dropped)
	return c
}

// MessageSent implements launchpad.Observer
func (c *Collector) MessageSent(id string, _ midi.Message) {
	c.sent.WithLabelValues(id).Inc()
}

// MessageDispatched implements launchpad.Observer
func (c *Collector) MessageDispatched(id string, kind launchpad.EventKind) {
	c.dispatched.WithLabelValues(id, kind.String()).Inc()
}

// MessageDropped implements launchpad.Observer
func (c *Collector) MessageDropped(id string, _ midi.Message) {
	c.dropped.WithLabelValues(id).Inc()
}

// Handler serves the collector's registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
