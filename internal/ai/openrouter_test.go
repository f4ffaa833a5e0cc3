package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*OpenRouterClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenRouterClient("test-key", srv.URL, "test-model"), srv
}

func TestChatReturnsCompletionText(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("expected model test-model, got %s", req.Model)
		}
		if len(req.Messages) != 2 || req.Messages[1].Role != "user" {
			t.Errorf("expected system+user messages, got %+v", req.Messages)
		}

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "Focus on the report first."}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	text, err := client.Chat(context.Background(), "what first?")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if text != "Focus on the report first." {
		t.Errorf("unexpected completion text: %q", text)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}
}

func TestChatEmptyChoices(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	text, err := client.Chat(context.Background(), "anything")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if text != "" {
		t.Errorf("expected empty text for empty choices, got %q", text)
	}
}

func TestChatUpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := client.Chat(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
