package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"draftsmith/internal/config"
)

func serviceConfig(baseURL string) config.Service {
	return config.Service{
		Provider:     "openai",
		BaseURL:      baseURL,
		Model:        "test-model",
		APIKey:       "lm-studio",
		Timeout:      "5s",
		ProbeTimeout: "2s",
	}
}

func TestNewSelectsProvider(t *testing.T) {
	client, err := New(serviceConfig("http://localhost:1234/v1"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, ok := client.(*OpenAIClient); !ok {
		t.Errorf("expected *OpenAIClient, got %T", client)
	}

	if _, err := New(config.Service{Provider: "smoke-signals"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestOpenAIComplete(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req["model"] != "test-model" {
			t.Errorf("model = %v, want test-model", req["model"])
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "cmpl-1",
			"object": "chat.completion",
			"choices": []map[string]any{
				{"index": 0, "message": map[string]any{"role": "assistant", "content": "generated text"}},
			},
		})
	}))
	defer server.Close()

	client := NewOpenAIClient(serviceConfig(server.URL + "/v1"))
	got, err := client.Complete(context.Background(), "prompt", Options{Temperature: 0.7, MaxTokens: 64})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if got != "generated text" {
		t.Errorf("Complete = %q, want %q", got, "generated text")
	}
	if gotPath != "/v1/chat/completions" {
		t.Errorf("request path = %q", gotPath)
	}
}

func TestOpenAICompleteServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewOpenAIClient(serviceConfig(server.URL + "/v1"))
	if _, err := client.Complete(context.Background(), "prompt", Options{}); err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestOpenAIProbe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/models" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"object": "list",
			"data": []map[string]any{
				{"id": "local-llama-3.2", "object": "model"},
			},
		})
	}))
	defer server.Close()

	client := NewOpenAIClient(serviceConfig(server.URL + "/v1"))
	status := client.Probe(context.Background())
	if !status.Available {
		t.Fatal("expected service to be reported available")
	}
	if status.Backend != "local-llama-3.2" {
		t.Errorf("Backend = %q, want local-llama-3.2", status.Backend)
	}
	if status.Model != "test-model" {
		t.Errorf("Model = %q, want test-model", status.Model)
	}
}

func TestOpenAIProbeUnreachable(t *testing.T) {
	// Closed server: connection refused collapses to unavailable.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewOpenAIClient(serviceConfig(server.URL + "/v1"))
	if status := client.Probe(context.Background()); status.Available {
		t.Error("expected unavailable status for unreachable endpoint")
	}
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(config.Service{Provider: "gemini"})
	if err == nil {
		t.Error("expected error when gemini api key is missing")
	}
}
