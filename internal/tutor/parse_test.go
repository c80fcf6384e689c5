package tutor

import (
	"testing"
)

func TestParseRecordsProseInterleaved(t *testing.T) {
	raw := `prefix {"type":"text","content":"ok"} {"type":"step","step":2,"totalSteps":2,"question":"q","options":["a","이 단계 건너뛰기"]} suffix`

	records := ParseRecords(raw)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Kind != KindText || records[0].Content != "ok" {
		t.Errorf("first record = %+v, want text %q", records[0], "ok")
	}
	if records[1].Kind != KindStep || records[1].Step != 2 || records[1].TotalSteps != 2 {
		t.Errorf("second record = %+v, want step 2/2", records[1])
	}
	if len(records[1].Options) != 2 {
		t.Errorf("options = %v, want 2 entries", records[1].Options)
	}
}

func TestParseRecordsWrapper(t *testing.T) {
	raw := `{"responses":[{"type":"complete","content":"done"}]}`

	records := ParseRecords(raw)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Kind != KindComplete {
		t.Errorf("kind = %q, want complete", records[0].Kind)
	}
	if records[0].Content != "done" {
		t.Errorf("content = %q, want %q", records[0].Content, "done")
	}
}

func TestParseRecordsCodeFence(t *testing.T) {
	raw := "```json\n{\"type\":\"text\",\"content\":\"hello\"}\n```"

	records := ParseRecords(raw)
	if len(records) != 1 || records[0].Content != "hello" {
		t.Fatalf("records = %+v, want one text record", records)
	}
}

func TestParseRecordsDiscardsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"no json at all", "the model rambled instead", 0},
		{"broken braces", `{"type":"text","content":`, 0},
		{"unknown type", `{"type":"hint","content":"x"}`, 0},
		{"zero step number", `{"type":"step","step":0,"totalSteps":2,"question":"q","options":["a"]}`, 0},
		{"malformed beside valid", `{bad} {"type":"text","content":"kept"}`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRecords(tt.raw)
			if len(got) != tt.want {
				t.Errorf("got %d records, want %d: %+v", len(got), tt.want, got)
			}
		})
	}
}

func TestParseRecordsRepairsControlEscapes(t *testing.T) {
	// A lone \t in the JSON string decodes to a tab; the parser must
	// restore it to the LaTeX escape it was meant to be.
	raw := `{"type":"text","content":"$2 \times 3 = 6$"}`

	records := ParseRecords(raw)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	want := `$2 \times 3 = 6$`
	if records[0].Content != want {
		t.Errorf("content = %q, want %q", records[0].Content, want)
	}
}

func TestRepairEscapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2 \times 3", `2 \times 3`},
		{"\frac{1}{2}", `\frac{1}{2}`},
		{"line one\n line two", "line one\n line two"}, // newline before space kept
		{"a\nb", `a\nb`},                               // newline before letter repaired
		{"no escapes here", "no escapes here"},
	}

	for _, tt := range tests {
		if got := repairEscapes(tt.in); got != tt.want {
			t.Errorf("repairEscapes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractObjectsNested(t *testing.T) {
	raw := `{"responses":[{"type":"text","content":"a"}]} trailing`

	spans := ExtractObjects(raw)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d: %v", len(spans), spans)
	}
	if spans[0] != `{"responses":[{"type":"text","content":"a"}]}` {
		t.Errorf("span = %q", spans[0])
	}
}
