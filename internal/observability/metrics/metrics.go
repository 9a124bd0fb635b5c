package metrics

import "github.com/prometheus/client_golang/prometheus"

// WebhookMetrics exposes counters/histograms for inbound webhook handling.
type WebhookMetrics struct {
	inboundTotal   *prometheus.CounterVec
	handlerLatency *prometheus.HistogramVec
}

func NewWebhookMetrics(reg prometheus.Registerer) *WebhookMetrics {
	m := &WebhookMetrics{
		inboundTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "simplemsg",
			Subsystem: "webhook",
			Name:      "inbound_total",
			Help:      "Total inbound webhook deliveries",
		}, []string{"event_type", "outcome"}),
		handlerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "simplemsg",
			Subsystem: "webhook",
			Name:      "handler_latency_seconds",
			Help:      "Latency of webhook processing",
			Buckets:   prometheus.DefBuckets,
		}, []string{"event_type"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.inboundTotal, m.handlerLatency)
	return m
}

func (m *WebhookMetrics) ObserveInbound(eventType, outcome string) {
	if m == nil {
		return
	}
	m.inboundTotal.WithLabelValues(eventType, outcome).Inc()
}

func (m *WebhookMetrics) ObserveLatency(eventType string, seconds float64) {
	if m == nil {
		return
	}
	m.handlerLatency.WithLabelValues(eventType).Observe(seconds)
}
