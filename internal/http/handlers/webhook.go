package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/simplemsg/simplemsg-go/internal/observability/metrics"
	"github.com/simplemsg/simplemsg-go/pkg/logging"
	"github.com/simplemsg/simplemsg-go/pkg/simplemsg"
)

// MessageFetcher looks up a message by ID. Satisfied by *simplemsg.Client.
type MessageFetcher interface {
	GetMessage(ctx context.Context, messageID string) (simplemsg.Message, error)
}

// WebhookHandler receives SimpleMsg event callbacks. The provider carries the
// payload signature as a bearer token in the Authorization header.
type WebhookHandler struct {
	secret  string
	client  MessageFetcher
	metrics *metrics.WebhookMetrics
	logger  *logging.Logger
}

// NewWebhookHandler builds a handler. client may be nil when the receiver only
// acknowledges events; metrics may be nil.
func NewWebhookHandler(secret string, client MessageFetcher, m *metrics.WebhookMetrics, logger *logging.Logger) *WebhookHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &WebhookHandler{
		secret:  strings.TrimSpace(secret),
		client:  client,
		metrics: m,
		logger:  logger,
	}
}

func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.secret == "" {
		h.logger.Error("webhook secret not configured")
		http.Error(w, "webhook secret not configured", http.StatusInternalServerError)
		return
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	signature := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !simplemsg.VerifyWebhookSignature(string(payload), h.secret, signature) {
		h.logger.Warn("invalid webhook signature")
		h.metrics.ObserveInbound("unknown", "rejected")
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "Invalid signature"})
		return
	}

	var event map[string]any
	if err := json.Unmarshal(payload, &event); err != nil {
		h.metrics.ObserveInbound("unknown", "malformed")
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON payload"})
		return
	}

	eventType := "unknown"
	if v, ok := event["type"].(string); ok && v != "" {
		eventType = v
	}
	h.logger.Info("webhook event received", "event_type", eventType)
	h.metrics.ObserveInbound(eventType, "accepted")
	h.metrics.ObserveLatency(eventType, time.Since(start).Seconds())

	if id, ok := event["message_id"].(string); ok && id != "" && h.client != nil {
		h.enrich(r.Context(), id)
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "Received"})
}

// enrich pulls the full message record behind an event so the log line carries
// its content. Failures are logged, never surfaced to the provider.
func (h *WebhookHandler) enrich(ctx context.Context, messageID string) {
	msg, err := h.client.GetMessage(ctx, messageID)
	if err != nil {
		h.logger.Error("failed to fetch message for event", "message_id", messageID, "error", err)
		return
	}
	h.logger.Info("webhook message detail",
		"message_id", messageID,
		"content", msg["content"],
		"status", msg["status"],
	)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
