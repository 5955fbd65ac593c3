package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/meetsum/meeting-summarizer/pkg/config"
)

func TestGroqComplete_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if r.URL.Path != "/openai/v1/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", got)
		}
		var payload ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload.Model != "llama3-8b-8192" {
			t.Fatalf("unexpected model %s", payload.Model)
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "• Discussed roadmap"}},
			},
		})
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})

	got, err := client.Complete(context.Background(), "summarize this")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if got != "• Discussed roadmap" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestGroqComplete_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})

	if _, err := client.Complete(context.Background(), "summarize this"); err == nil {
		t.Fatal("expected error on 429 response")
	}
}

func TestGoogleComplete_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/models/gemini-1.5-flash:generateContent" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Fatalf("unexpected key %q", got)
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "• Discussed roadmap"}},
				}},
			},
		})
	}))
	defer ts.Close()

	client := NewGoogleClient(&config.GoogleAIConfig{APIKey: "test-key", BaseURL: ts.URL})

	got, err := client.Complete(context.Background(), "summarize this")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if got != "• Discussed roadmap" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestGoogleComplete_EmptyCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer ts.Close()

	client := NewGoogleClient(&config.GoogleAIConfig{APIKey: "test-key", BaseURL: ts.URL})

	if _, err := client.Complete(context.Background(), "summarize this"); err == nil {
		t.Fatal("expected error on empty candidates")
	}
}

func TestProviderAvailability(t *testing.T) {
	cases := []struct {
		key  string
		want bool
	}{
		{"", false},
		{"your-groq-key", false},
		{"changeme", false},
		{"gsk_real_key", true},
	}

	for _, tc := range cases {
		client := NewGroqClient(&config.GroqConfig{APIKey: tc.key})
		if got := client.Available(); got != tc.want {
			t.Errorf("Available() with key %q = %v, want %v", tc.key, got, tc.want)
		}
	}
}
