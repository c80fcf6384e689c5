package llm

import (
	"context"
	"encoding/json"
)

// Provider is the completion-service boundary. Consumers hand it an
// ordered transcript and receive one free-text completion.
type Provider interface {
	// Generate sends a request to the LLM and returns its completion.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the response Content is the
	// validated JSON. Otherwise Content is the raw completion text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history, oldest first. Tutoring
	// sessions send their full role-tagged transcript here; messages
	// with RoleSystem are folded into the system prompt by providers
	// whose APIs keep system instructions out of the turn list.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// Nil for free-text completions (the tutoring dialogue), set for
	// single-shot structured calls.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (used as tool name for Anthropic,
	// schema name for OpenAI). Kebab-case, e.g. "step-record".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. When a Schema was provided in
	// the request, this is the validated JSON object. Otherwise it is
	// the raw completion text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the response content as a plain string.
func (r *Response) Text() string {
	return string(r.Content)
}

// foldSystemMessages merges any RoleSystem entries in msgs into system
// and returns the remaining user/assistant turns. Used by providers
// whose APIs take the system instruction out-of-band.
func foldSystemMessages(system string, msgs []Message) (string, []Message) {
	turns := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Role == RoleSystem {
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
			continue
		}
		turns = append(turns, m)
	}
	return system, turns
}
