package alerts_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ogulcanaydogan/smartstock/pkg/alerts"
	"github.com/ogulcanaydogan/smartstock/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookNotifier_Name(t *testing.T) {
	n := alerts.NewWebhookNotifier("https://example.com/webhook", "")
	assert.Equal(t, "webhook", n.Name())
}

func TestWebhookNotifier_Send(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "SmartStock/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, http.MethodPost, r.Method)

		err := json.NewDecoder(r.Body).Decode(&received)
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := alerts.NewWebhookNotifier(server.URL, "")
	err := n.Send(context.Background(), model.Notification{
		Title:    "✅ Delivery Arrived",
		Message:  "Delivery arrived: Milk 1L from Warehouse B",
		Severity: model.SeverityDefault,
		Kind:     model.KindDeliveryArrived,
		EventID:  "evt-1",
	})
	require.NoError(t, err)
	assert.Equal(t, alerts.EventInventoryAlert, received["event"])
	assert.NotEmpty(t, received["timestamp"])

	notification, ok := received["notification"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "evt-1", notification["event_id"])
	assert.Equal(t, "default", notification["severity"])
}

func TestWebhookNotifier_Send_Notice(t *testing.T) {
	var header string
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("X-SmartStock-Event")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sent := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	n := alerts.NewWebhookNotifier(server.URL, "")
	err := n.Send(context.Background(), model.Notification{
		Title:     "🎉 Restock Initiated",
		Message:   "Restocking 40 Milk 1L units",
		Severity:  model.SeverityDefault,
		Timestamp: sent,
	})
	require.NoError(t, err)

	assert.Equal(t, alerts.EventInventoryNotice, header)
	assert.Equal(t, alerts.EventInventoryNotice, received["event"])
	assert.Equal(t, "2026-03-01T09:30:00Z", received["timestamp"])
}

func TestWebhookNotifier_Send_WithHMAC(t *testing.T) {
	var signature string
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signature = r.Header.Get("X-Signature-256")
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := alerts.NewWebhookNotifier(server.URL, "test-secret")
	err := n.Send(context.Background(), model.Notification{Severity: model.SeverityDestructive})
	require.NoError(t, err)

	mac := hmac.New(sha256.New, []byte("test-secret"))
	mac.Write(body)
	assert.Equal(t, "sha256="+hex.EncodeToString(mac.Sum(nil)), signature)
}

func TestWebhookNotifier_Send_NoHMAC(t *testing.T) {
	var hasSignature bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hasSignature = r.Header.Get("X-Signature-256") != ""
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := alerts.NewWebhookNotifier(server.URL, "")
	err := n.Send(context.Background(), model.Notification{})
	require.NoError(t, err)
	assert.False(t, hasSignature)
}

func TestWebhookNotifier_Send_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	n := alerts.NewWebhookNotifier(server.URL, "")
	err := n.Send(context.Background(), model.Notification{})
	assert.Error(t, err)
}
