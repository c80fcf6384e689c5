package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func stepSchema() *Schema {
	return &Schema{
		Name:        "tutor-step",
		Description: "One structured tutoring step",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"type":       map[string]any{"type": "string", "enum": []any{"step", "text", "complete"}},
				"step":       map[string]any{"type": "integer", "minimum": 1},
				"totalSteps": map[string]any{"type": "integer", "minimum": 1},
				"question":   map[string]any{"type": "string"},
				"options": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"type", "step", "question"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name: "valid step",
			raw:  `{"type":"step","step":1,"totalSteps":3,"question":"첫 단계는?","options":["a","b"]}`,
		},
		{
			name: "valid without optional fields",
			raw:  `{"type":"step","step":2,"question":"다음은?"}`,
		},
		{
			name:    "missing required field",
			raw:     `{"type":"step","step":1}`,
			wantErr: true,
		},
		{
			name:    "wrong field type",
			raw:     `{"type":"step","step":"one","question":"q"}`,
			wantErr: true,
		},
		{
			name:    "invalid enum value",
			raw:     `{"type":"hint","step":1,"question":"q"}`,
			wantErr: true,
		},
		{
			name:    "step below minimum",
			raw:     `{"type":"step","step":0,"question":"q"}`,
			wantErr: true,
		},
		{
			name:    "malformed JSON",
			raw:     `{not json}`,
			wantErr: true,
		},
		{
			name:    "empty response",
			raw:     ``,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(stepSchema(), json.RawMessage(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error")
				}
				var invErr *ErrInvalidResponse
				if !errors.As(err, &invErr) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("nil schema must accept anything, got: %v", err)
	}
}

func TestValidateResponseNestedArrays(t *testing.T) {
	schema := &Schema{
		Name:        "tutor-step-batch",
		Description: "Wrapper holding several records",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"responses": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []any{"type"},
					},
				},
			},
			"required": []any{"responses"},
		},
	}

	valid := json.RawMessage(`{"responses":[{"type":"text"},{"type":"complete"}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	invalid := json.RawMessage(`{"responses":[{"step":1}]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for record without type")
	}
}
