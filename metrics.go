package pubsub

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ListenerGauge tracks the number of listeners per event. It is fed through
// the lifecycle sinks and implements prometheus.Collector:
//
//	g := pubsub.NewListenerGauge("app")
//	prometheus.MustRegister(g)
//	r := pubsub.New[int]("tick",
//		pubsub.WithNewListenerSink(g.Added()),
//		pubsub.WithRemoveListenerSink(g.Removed()),
//	)
type ListenerGauge struct {
	listeners *prometheus.GaugeVec
}

func NewListenerGauge(namespace string) *ListenerGauge {
	return &ListenerGauge{
		listeners: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "pubsub",
			Name:      "listeners",
			Help:      "Number of registered listeners per event.",
		}, []string{"event"}),
	}
}

// Added returns the sink to pass to WithNewListenerSink.
func (g *ListenerGauge) Added() Sink {
	return SinkFunc(func(c Change) { g.listeners.WithLabelValues(c.Event).Inc() })
}

// Removed returns the sink to pass to WithRemoveListenerSink.
func (g *ListenerGauge) Removed() Sink {
	return SinkFunc(func(c Change) { g.listeners.WithLabelValues(c.Event).Dec() })
}

func (g *ListenerGauge) Describe(ch chan<- *prometheus.Desc) { g.listeners.Describe(ch) }

func (g *ListenerGauge) Collect(ch chan<- prometheus.Metric) { g.listeners.Collect(ch) }
