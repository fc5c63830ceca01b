package alerts

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ogulcanaydogan/smartstock/pkg/model"
)

// Webhook event names. Generated inventory alerts carry their AlertKind and
// source event ID; everything else (restock requests, task updates,
// simulation start and pause) is sent as a notice.
const (
	EventInventoryAlert  = "inventory_alert"
	EventInventoryNotice = "inventory_notice"
)

// WebhookNotifier posts notifications to a generic HTTP endpoint as JSON:
//
//	{"event": "inventory_alert", "timestamp": "...", "notification": {...}}
//
// The event name is also sent in the X-SmartStock-Event header so receivers
// can route without decoding the body.
type WebhookNotifier struct {
	url    string
	secret string
	client *http.Client
}

// NewWebhookNotifier creates a generic webhook notifier.
// If secret is non-empty, requests are signed with HMAC-SHA256.
func NewWebhookNotifier(url, secret string) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		secret: secret,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (w *WebhookNotifier) Name() string { return "webhook" }

func (w *WebhookNotifier) Send(ctx context.Context, n model.Notification) error {
	payload := newWebhookPayload(n)
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "SmartStock/1.0")
	req.Header.Set("X-SmartStock-Event", payload.Event)

	if w.secret != "" {
		sig := computeHMAC(body, []byte(w.secret))
		req.Header.Set("X-Signature-256", "sha256="+sig)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("send webhook notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook %s returned status %d", payload.Event, resp.StatusCode)
	}
	return nil
}

type webhookPayload struct {
	Event        string             `json:"event"`
	Timestamp    string             `json:"timestamp"`
	Notification model.Notification `json:"notification"`
}

func newWebhookPayload(n model.Notification) webhookPayload {
	event := EventInventoryNotice
	if n.Kind != "" {
		event = EventInventoryAlert
	}
	ts := n.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return webhookPayload{
		Event:        event,
		Timestamp:    ts.UTC().Format(time.RFC3339),
		Notification: n,
	}
}

func computeHMAC(message, key []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}
