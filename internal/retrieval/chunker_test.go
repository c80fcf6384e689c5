package retrieval

import (
	"strings"
	"testing"
)

func TestSplitEmptyInput(t *testing.T) {
	c := NewChunker()
	if got := c.Split(""); got != nil {
		t.Errorf("Split(\"\") = %v, want nil", got)
	}
	if got := c.Split("   \n\n  "); got != nil {
		t.Errorf("Split(whitespace) = %v, want nil", got)
	}
}

func TestSplitShortTextIsOneChunk(t *testing.T) {
	c := NewChunker()
	got := c.Split("짧은 문단 하나")
	if len(got) != 1 || got[0] != "짧은 문단 하나" {
		t.Fatalf("got %v, want the text unchanged", got)
	}
}

func TestSplitRespectsSizeLimit(t *testing.T) {
	c := Chunker{Size: 100, Overlap: 20}

	var b strings.Builder
	for i := 0; i < 50; i++ {
		b.WriteString("어휘 항목 몇 개 ")
	}
	chunks := c.Split(b.String())

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, ch := range chunks {
		if n := len([]rune(ch)); n > c.Size {
			t.Errorf("chunk %d has %d runes, limit %d", i, n, c.Size)
		}
		if strings.TrimSpace(ch) == "" {
			t.Errorf("chunk %d is blank", i)
		}
	}
}

func TestSplitPrefersParagraphBoundaries(t *testing.T) {
	c := Chunker{Size: 60, Overlap: 10}
	text := strings.Repeat("first paragraph sentence. ", 2) + "\n\n" +
		strings.Repeat("second paragraph sentence. ", 2)

	chunks := c.Split(text)
	for i, ch := range chunks {
		if strings.Contains(ch, "\n\n") {
			t.Errorf("chunk %d crosses a paragraph boundary: %q", i, ch)
		}
	}
}

func TestSplitOverlapCarriesContext(t *testing.T) {
	c := Chunker{Size: 50, Overlap: 25}
	words := make([]string, 40)
	for i := range words {
		words[i] = "word" + string(rune('a'+i%26))
	}
	chunks := c.Split(strings.Join(words, " "))

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i := 1; i < len(chunks); i++ {
		prevWords := strings.Fields(chunks[i-1])
		lastPrev := prevWords[len(prevWords)-1]
		if !strings.Contains(chunks[i], lastPrev) {
			t.Errorf("chunk %d does not overlap with its predecessor: %q / %q",
				i, chunks[i-1], chunks[i])
			break
		}
	}
}

func TestSplitHardCutsUnbrokenText(t *testing.T) {
	c := Chunker{Size: 30, Overlap: 5}
	chunks := c.Split(strings.Repeat("x", 100))

	if len(chunks) < 3 {
		t.Fatalf("expected hard cuts, got %d chunks", len(chunks))
	}
	for i, ch := range chunks {
		if len([]rune(ch)) > c.Size {
			t.Errorf("chunk %d exceeds size: %d", i, len([]rune(ch)))
		}
	}
}
