package retrieval

import (
	"fmt"
	"io"
	"strings"
)

// Extractor pulls plain text out of an uploaded document payload.
// Binary formats plug in their own implementation.
type Extractor interface {
	Extract(r io.Reader) (string, error)
}

// PlainTextExtractor treats the payload as UTF-8 text.
type PlainTextExtractor struct{}

func (PlainTextExtractor) Extract(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read payload: %w", err)
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("document contains no extractable text")
	}
	return text, nil
}
