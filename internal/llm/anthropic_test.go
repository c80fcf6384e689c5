package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
	)
	return &AnthropicProvider{
		client: &client,
		model:  "claude-sonnet-4-20250514",
	}
}

// messageHandler serves a canned Messages API payload with the given
// text content and stop reason.
func messageHandler(text, stopReason string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_test",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": text},
			},
			"model":       "claude-sonnet-4-20250514",
			"stop_reason": stopReason,
			"usage": map[string]any{
				"input_tokens":  50,
				"output_tokens": 30,
			},
		})
	}
}

func anthropicErrorHandler(status int, errType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"type": "error",
			"error": map[string]any{
				"type":    errType,
				"message": "upstream error",
			},
		})
	}
}

func TestAnthropicProvider_HappyPath(t *testing.T) {
	text := `{"type":"text","content":"정답입니다!"}`
	p := newTestAnthropicProvider(t, messageHandler(text, "end_turn"))

	resp, err := p.Generate(context.Background(), Request{
		System:    "당신은 수학 선생님입니다.",
		Messages:  []Message{{Role: RoleUser, Content: "문제 풀이를 시작해줘"}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != text {
		t.Fatalf("content = %s", resp.Content)
	}
	if resp.Usage.TotalTokens != 80 {
		t.Fatalf("total tokens = %d, want 80", resp.Usage.TotalTokens)
	}
	if resp.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp.StopReason)
	}
}

func TestAnthropicProvider_TruncatedOutput(t *testing.T) {
	p := newTestAnthropicProvider(t, messageHandler(`{"type":"te`, "max_tokens"))

	resp, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "계속"}},
		MaxTokens: 16,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StopReason != "max_tokens" {
		t.Fatalf("expected stop reason 'max_tokens', got %q", resp.StopReason)
	}
}

func TestAnthropicProvider_ErrorMapping(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		errType       string
		wantRateLimit bool
	}{
		{"rate limited", http.StatusTooManyRequests, "rate_limit_error", true},
		{"server error", http.StatusInternalServerError, "api_error", false},
		{"overloaded", http.StatusServiceUnavailable, "overloaded_error", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestAnthropicProvider(t, anthropicErrorHandler(tt.status, tt.errType))
			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "test"}},
				MaxTokens: 100,
			})
			if err == nil {
				t.Fatal("expected error")
			}
			var rl *ErrRateLimit
			if gotRL := errors.As(err, &rl); gotRL != tt.wantRateLimit {
				t.Fatalf("rate limit = %v, want %v (err %v)", gotRL, tt.wantRateLimit, err)
			}
			if !tt.wantRateLimit {
				var unavail *ErrProviderUnavailable
				if !errors.As(err, &unavail) {
					t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
				}
			}
		})
	}
}

func TestAnthropicProvider_ModelID(t *testing.T) {
	p := &AnthropicProvider{model: "claude-sonnet-4-20250514"}
	if p.ModelID() != "claude-sonnet-4-20250514" {
		t.Fatalf("expected 'claude-sonnet-4-20250514', got %q", p.ModelID())
	}
}

func TestAnthropicModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet-4-20250514", "claude-sonnet-4-20250514"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, anthropicModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
