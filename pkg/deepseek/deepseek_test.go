package deepseek_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"devflow/pkg/deepseek"
)

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"message": "bad key"}}`))
			return
		}
		var req deepseek.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Model != "deepseek-chat" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{
			"model": "deepseek-chat",
			"choices": [{"message": {"role": "assistant", "content": "", "tool_calls": [
				{"id": "call_1", "type": "function", "function": {"name": "list_tasks", "arguments": "{}"}}
			]}}],
			"usage": {"prompt_tokens": 3, "completion_tokens": 2, "total_tokens": 5}
		}`))
	}))
	defer ts.Close()

	client, err := deepseek.New(deepseek.Config{APIKey: "secret", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	resp, err := client.GenerateContent(context.Background(), &deepseek.Request{
		Messages: []deepseek.Message{{Role: deepseek.RoleUser, Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}
	if len(resp.Choices) != 1 || len(resp.Choices[0].Message.ToolCalls) != 1 {
		t.Fatalf("unexpected choices: %+v", resp.Choices)
	}
	if resp.Choices[0].Message.ToolCalls[0].ID != "call_1" {
		t.Errorf("expected call_1, got %s", resp.Choices[0].Message.ToolCalls[0].ID)
	}
	if resp.Usage.TotalTokens != 5 {
		t.Errorf("expected 5 tokens, got %d", resp.Usage.TotalTokens)
	}
}

func TestGenerateContent_ErrorMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "bad key"}}`))
	}))
	defer ts.Close()

	client, _ := deepseek.New(deepseek.Config{APIKey: "wrong", BaseURL: ts.URL})
	_, err := client.GenerateContent(context.Background(), &deepseek.Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "deepseek: API error 401: bad key" {
		t.Errorf("unexpected error text %q", got)
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := deepseek.New(deepseek.Config{}); err == nil {
		t.Fatal("expected error")
	}
}
