package tutor

import (
	"encoding/json"
	"regexp"
	"strings"
)

// wireRecord mirrors the wire contract. A single object is either one
// record or a wrapper holding an ordered list under "responses".
type wireRecord struct {
	Type         string       `json:"type"`
	Step         int          `json:"step"`
	TotalSteps   int          `json:"totalSteps"`
	Question     string       `json:"question"`
	Options      []string     `json:"options"`
	CorrectIndex *int         `json:"correctIndex"`
	Content      string       `json:"content"`
	Responses    []wireRecord `json:"responses"`
}

var fenceRe = regexp.MustCompile("```(?:json)?\\s*")

// stripFences removes markdown code-fence markers the model sometimes
// wraps its JSON in.
func stripFences(s string) string {
	s = fenceRe.ReplaceAllString(s, "")
	return strings.ReplaceAll(s, "```", "")
}

// ExtractObjects scans for balanced-brace object spans, tolerating prose
// interleaved between objects. Nested braces are tracked with a depth
// counter; a span is emitted when depth returns to zero.
func ExtractObjects(s string) []string {
	s = stripFences(s)

	var spans []string
	depth := 0
	start := -1

	for i, ch := range s {
		switch ch {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
			if depth == 0 && start != -1 {
				spans = append(spans, s[start:i+1])
				start = -1
			}
		}
	}

	return spans
}

// controlEscapes maps control characters back to the escape letter a
// naive decoder collapsed them from.
var controlEscapes = map[rune]byte{
	'\t': 't',
	'\n': 'n',
	'\r': 'r',
	'\f': 'f',
	'\b': 'b',
}

// repairEscapes restores mathematical markup escapes that JSON decoding
// corrupted: a lone "\t" inside a string meant to start "\times" decodes
// to a literal tab. Any control character immediately followed by a
// letter is converted back to a backslash-letter pair.
func repairEscapes(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	for i, r := range runes {
		letter, isControl := controlEscapes[r]
		if isControl && i+1 < len(runes) && isASCIILetter(runes[i+1]) {
			b.WriteByte('\\')
			b.WriteByte(letter)
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// repairRecord applies the escape repair to every text field.
func repairRecord(r *StepRecord) {
	r.Question = repairEscapes(r.Question)
	r.Content = repairEscapes(r.Content)
	for i, opt := range r.Options {
		r.Options[i] = repairEscapes(opt)
	}
}

// ParseRecords extracts every decodable StepRecord from one raw
// completion, in order. Malformed spans and spans that fail schema
// validation are silently discarded; ParseRecords never fails.
func ParseRecords(raw string) []StepRecord {
	var records []StepRecord

	for _, span := range ExtractObjects(raw) {
		var wire wireRecord
		if err := json.Unmarshal([]byte(span), &wire); err != nil {
			continue
		}
		if !validRecordSpan(span) {
			continue
		}
		records = append(records, unwrap(wire)...)
	}

	return records
}

// unwrap flattens a wrapper object into its ordered record list, or
// converts a single record. Records of unknown type are dropped.
func unwrap(wire wireRecord) []StepRecord {
	if len(wire.Responses) > 0 {
		var out []StepRecord
		for _, inner := range wire.Responses {
			out = append(out, unwrap(inner)...)
		}
		return out
	}

	rec, ok := toRecord(wire)
	if !ok {
		return nil
	}
	return []StepRecord{rec}
}

func toRecord(wire wireRecord) (StepRecord, bool) {
	switch Kind(wire.Type) {
	case KindStep:
		if wire.Step < 1 || wire.TotalSteps < 1 {
			return StepRecord{}, false
		}
		rec := StepRecord{
			Kind:         KindStep,
			Step:         wire.Step,
			TotalSteps:   wire.TotalSteps,
			Question:     wire.Question,
			Options:      wire.Options,
			CorrectIndex: wire.CorrectIndex,
		}
		repairRecord(&rec)
		return rec, true
	case KindText, KindComplete:
		rec := StepRecord{
			Kind:    Kind(wire.Type),
			Content: wire.Content,
		}
		repairRecord(&rec)
		return rec, true
	default:
		return StepRecord{}, false
	}
}
