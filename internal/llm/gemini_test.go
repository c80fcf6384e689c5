package llm

import "testing"

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	schema := buildGeminiSchema(stepSchema().Definition)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}

	checks := []struct {
		prop string
		typ  string
	}{
		{"type", "STRING"},
		{"step", "INTEGER"},
		{"totalSteps", "INTEGER"},
		{"question", "STRING"},
		{"options", "ARRAY"},
	}
	for _, c := range checks {
		p, ok := schema.Properties[c.prop]
		if !ok {
			t.Fatalf("missing property %q", c.prop)
		}
		if string(p.Type) != c.typ {
			t.Errorf("property %q: type = %s, want %s", c.prop, p.Type, c.typ)
		}
	}

	if schema.Properties["options"].Items.Type != "STRING" {
		t.Errorf("options items type = %s, want STRING", schema.Properties["options"].Items.Type)
	}
	if got := schema.Properties["type"].Enum; len(got) != 3 {
		t.Errorf("type enum = %v, want 3 values", got)
	}
	if len(schema.Required) == 0 {
		t.Error("expected required fields to carry over")
	}
}

func TestBuildGeminiSchemaIgnoresUnknownKeywords(t *testing.T) {
	schema := buildGeminiSchema(map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"answer": map[string]any{"type": "string", "minLength": 1},
		},
	})

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if schema.Properties["answer"].Type != "STRING" {
		t.Fatalf("answer type = %s, want STRING", schema.Properties["answer"].Type)
	}
}
