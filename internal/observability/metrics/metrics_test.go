package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestWebhookMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWebhookMetrics(reg)
	m.ObserveInbound("message.delivered", "accepted")
	m.ObserveInbound("unknown", "rejected")
	m.ObserveLatency("message.delivered", 0.02)
}

func TestWebhookMetricsNilSafe(t *testing.T) {
	var m *WebhookMetrics
	m.ObserveInbound("event", "accepted")
	m.ObserveLatency("event", 0.1)
}
