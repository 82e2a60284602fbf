package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "alder"

// metrics holds the server's prometheus instruments.
type metrics struct {
	activeSessions  prometheus.Gauge
	sessionsTotal   prometheus.Counter
	eventsTotal     prometheus.Counter
	eventErrors     prometheus.Counter
	frameErrors     prometheus.Counter
	opsSentTotal    prometheus.Counter
	dispatchSeconds prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "server",
			Name:      "active_sessions",
			Help:      "Currently connected sessions.",
		}),
		sessionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "server",
			Name:      "sessions_total",
			Help:      "Total sessions accepted.",
		}),
		eventsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "server",
			Name:      "events_total",
			Help:      "Client events processed.",
		}),
		eventErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "server",
			Name:      "event_errors_total",
			Help:      "Events whose dispatch cycle failed.",
		}),
		frameErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "server",
			Name:      "frame_errors_total",
			Help:      "Frames that failed to decode.",
		}),
		opsSentTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "server",
			Name:      "ops_sent_total",
			Help:      "DOM ops sent to clients.",
		}),
		dispatchSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "server",
			Name:      "dispatch_seconds",
			Help:      "Duration of one event dispatch cycle.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
