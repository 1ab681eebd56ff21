package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookClient_Deliver(t *testing.T) {
	var gotContentType string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewWebhookClient(srv.URL)
	err := client.Deliver(context.Background(), map[string]string{"requestId": "abc"})
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "abc", gotBody["requestId"])
}

func TestWebhookClient_Deliver_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewWebhookClient(srv.URL)
	err := client.Deliver(context.Background(), map[string]string{"requestId": "abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestWebhookClient_Deliver_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewWebhookClient(srv.URL)
	err := client.Deliver(context.Background(), map[string]string{})
	assert.Error(t, err)
}

func TestWebhookClient_Deliver_UnmarshalablePayload(t *testing.T) {
	client := NewWebhookClient("http://localhost:0")
	err := client.Deliver(context.Background(), func() {})
	assert.Error(t, err)
}
