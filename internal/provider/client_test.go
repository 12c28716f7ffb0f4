package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestClient_GetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("apiKey"); got != "test-key" {
			t.Errorf("Expected apiKey=test-key, got %q", got)
		}

		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Expected Accept header application/json, got %q", got)
		}

		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	client := NewClientWithConfig(5*time.Second, 100)

	params := url.Values{}
	params.Set("apiKey", "test-key")

	body, err := client.GetJSON(context.Background(), server.URL, params)
	if err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}

	if string(body) != `{"status":"ok"}` {
		t.Errorf("Unexpected body: %s", body)
	}
}

func TestClient_GetJSON_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClientWithConfig(5*time.Second, 100)

	_, err := client.GetJSON(context.Background(), server.URL, nil)
	if !errors.Is(err, ErrUnexpectedStatusCode) {
		t.Errorf("Expected ErrUnexpectedStatusCode, got %v", err)
	}
}

func TestClient_GetJSON_ContextCancelled(t *testing.T) {
	client := NewClientWithConfig(5*time.Second, 100)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetJSON(ctx, "http://127.0.0.1:1", nil)
	if err == nil {
		t.Fatal("Expected error for cancelled context, got nil")
	}
}
