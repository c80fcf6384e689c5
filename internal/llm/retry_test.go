package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

const retryOKBody = `{"type":"text","content":"좋아요!"}`

func okResponse() MockResponse {
	return MockResponse{Content: json.RawMessage(retryOKBody)}
}

func downResponse() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func badSchemaResponse() MockResponse {
	return MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")}}
}

func TestRetryAttempts(t *testing.T) {
	tests := []struct {
		name      string
		responses []MockResponse
		wantCalls int
		wantOK    bool
	}{
		{
			name:      "first attempt succeeds",
			responses: []MockResponse{okResponse()},
			wantCalls: 1,
			wantOK:    true,
		},
		{
			name:      "transient failure then success",
			responses: []MockResponse{downResponse(), okResponse()},
			wantCalls: 2,
			wantOK:    true,
		},
		{
			name:      "budget exhausted",
			responses: []MockResponse{downResponse(), downResponse(), downResponse()},
			wantCalls: 3,
		},
		{
			name: "rate limit honors retry-after",
			responses: []MockResponse{
				{Err: &ErrRateLimit{RetryAfter: 1 * time.Millisecond, Err: errors.New("429")}},
				okResponse(),
			},
			wantCalls: 2,
			wantOK:    true,
		},
		{
			// Schema failures get exactly one repair attempt. The queued
			// success is never reached.
			name:      "invalid response retried once",
			responses: []MockResponse{badSchemaResponse(), badSchemaResponse(), okResponse()},
			wantCalls: 2,
		},
		{
			name:      "truncation not retried",
			responses: []MockResponse{{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{}`)}}},
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			p := WithRetry(mock, retryConfig())

			resp, err := p.Generate(context.Background(), Request{})
			if tt.wantOK {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if string(resp.Content) != retryOKBody {
					t.Fatalf("unexpected content: %s", resp.Content)
				}
			} else if err == nil {
				t.Fatal("expected error")
			}
			if mock.CallCount() != tt.wantCalls {
				t.Fatalf("call count = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetryMaxTokensErrorSurfaces(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{}`)}})
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %T", err)
	}
}

func TestRetryContextCancellation(t *testing.T) {
	mock := NewMockProvider(downResponse(), downResponse(), okResponse())
	p := WithRetry(mock, retryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestRetryModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), retryConfig())
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
