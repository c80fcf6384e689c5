// Package ragchat answers questions about a folder of uploaded
// documents, grounding each reply in the most similar text chunks.
package ragchat

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/danoh/steptutor/internal/docstore"
	"github.com/danoh/steptutor/internal/llm"
	"github.com/danoh/steptutor/internal/retrieval"
)

// SimilarityThreshold is the floor a chunk must score to be used.
// Lower values let unrelated questions (weather, small talk) pull in
// chunks and produce a misleading source list.
const SimilarityThreshold = 0.82

const (
	matchCount      = 5
	previewRunes    = 150
	chatMaxTokens   = 1000
	chatTemperature = 0.7
)

// Canned replies for folders that cannot be searched yet.
const (
	msgNoPDFs       = "이 폴더에 업로드된 PDF가 없습니다."
	msgNotReady     = "이 폴더에 임베딩이 완료된 PDF가 없습니다. PDF 업로드 후 임베딩이 완료될 때까지 기다려주세요."
	msgNothingFound = "질문과 관련된 내용을 찾을 수 없습니다. 다른 질문을 시도해보세요."
)

// notFoundPhrases mark replies where the model concluded the documents
// do not cover the question; sources are suppressed for those.
var notFoundPhrases = []string{
	"문서에서 해당 내용을 찾을 수 없",
	"질문과 관련된 내용을 찾을 수 없습니다",
}

// Source cites one chunk that grounded the answer.
type Source struct {
	SourceName string  `json:"sourceName"`
	ChunkIndex int     `json:"chunkIndex"`
	Similarity float64 `json:"similarityScore"`
	Preview    string  `json:"previewText"`
}

// Answer is one reply with its citations. Sources is empty when the
// reply was not grounded in the documents.
type Answer struct {
	Message string   `json:"message"`
	Sources []Source `json:"sources"`
}

// Retriever finds the chunks most similar to a query.
type Retriever interface {
	Search(ctx context.Context, query string, pdfIDs []uuid.UUID, k int) ([]retrieval.Match, error)
}

// Chat runs retrieval-augmented conversations over one folder.
type Chat struct {
	Provider  llm.Provider
	Retriever Retriever
	PDFs      docstore.PDFRepo
	Log       *slog.Logger
}

// Ask answers the latest user turn in messages using the folder's
// documents. With allowGeneral set, the model may supplement document
// content with its own knowledge; otherwise it must stay inside the
// documents.
func (c *Chat) Ask(ctx context.Context, folderID uuid.UUID, messages []llm.Message, allowGeneral bool) (*Answer, error) {
	question := latestUserTurn(messages)
	if question == "" {
		return nil, fmt.Errorf("ragchat: no user question in messages")
	}

	pdfs, err := c.PDFs.ListByFolder(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("list folder PDFs: %w", err)
	}
	if len(pdfs) == 0 {
		return &Answer{Message: msgNoPDFs, Sources: []Source{}}, nil
	}

	names := make(map[uuid.UUID]string, len(pdfs))
	ids := make([]uuid.UUID, 0, len(pdfs))
	ready := 0
	for _, p := range pdfs {
		names[p.ID] = p.Filename
		ids = append(ids, p.ID)
		if p.RagStatus == docstore.RagCompleted {
			ready++
		}
	}
	if ready == 0 {
		return &Answer{Message: msgNotReady, Sources: []Source{}}, nil
	}

	matches, err := c.Retriever.Search(ctx, question, ids, matchCount)
	if err != nil {
		return nil, fmt.Errorf("search chunks: %w", err)
	}

	var used []retrieval.Match
	for _, m := range matches {
		if m.Similarity >= SimilarityThreshold {
			used = append(used, m)
		}
	}
	c.logger().Info("chunks retrieved",
		"folder_id", folderID, "candidates", len(matches), "above_threshold", len(used))

	if len(used) == 0 {
		return &Answer{Message: msgNothingFound, Sources: []Source{}}, nil
	}

	sources := make([]Source, 0, len(used))
	var ctxBlock strings.Builder
	for i, m := range used {
		name := names[m.Chunk.PDFID]
		if name == "" {
			name = "알 수 없음"
		}
		sources = append(sources, Source{
			SourceName: name,
			ChunkIndex: m.Chunk.Index,
			Similarity: m.Similarity,
			Preview:    preview(m.Chunk.Content),
		})
		if i > 0 {
			ctxBlock.WriteString("\n\n")
		}
		fmt.Fprintf(&ctxBlock, "[출처 %d: %s - 청크 %d]\n%s", i+1, name, m.Chunk.Index+1, m.Chunk.Content)
	}

	resp, err := c.Provider.Generate(llm.WithPurpose(ctx, llm.PurposeDocChat), llm.Request{
		System:      systemPrompt(ctxBlock.String(), allowGeneral),
		Messages:    messages,
		MaxTokens:   chatMaxTokens,
		Temperature: chatTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	message := stripReferenceLines(resp.Text())
	if message == "" {
		message = resp.Text()
	}
	if isNotFoundReply(message) {
		sources = []Source{}
	}

	return &Answer{Message: message, Sources: sources}, nil
}

func (c *Chat) logger() *slog.Logger {
	if c.Log != nil {
		return c.Log
	}
	return slog.Default()
}

func latestUserTurn(messages []llm.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == llm.RoleUser {
			return strings.TrimSpace(messages[i].Content)
		}
	}
	return ""
}

func systemPrompt(context string, allowGeneral bool) string {
	if allowGeneral {
		return "당신은 PDF 문서를 분석하는 AI 어시스턴트입니다. 다음 문서 내용을 참고하되, 필요시 당신의 일반 지식도 활용하여 질문에 답변해주세요.\n\n" +
			"답변 작성 규칙:\n" +
			"1. 답변은 한국어로 작성하세요.\n" +
			"2. 주로 제공된 문서 내용을 기반으로 답변하되, 문서에 없는 부분은 일반 지식을 활용하여 보완할 수 있습니다.\n" +
			"3. 문서 내용과 일반 지식을 혼합할 경우, 어느 부분이 문서 기반인지 간단히 구분해 주세요.\n" +
			"4. 참고/출처 문구(예: \"참고:\", \"**참고:**\")를 답변 본문에 포함하지 마세요. (출처는 별도로 표시됩니다)\n\n" +
			"참고 문서:\n" + context
	}
	return "당신은 PDF 문서를 분석하는 AI 어시스턴트입니다. 다음 문서 내용을 참고해서 질문에 답변해주세요.\n\n" +
		"답변 작성 규칙:\n" +
		"1. 답변은 한국어로 작성하세요.\n" +
		"2. 문서에 명시된 내용만을 기반으로 답변하세요.\n" +
		"3. 문서에 없는 내용은 \"문서에서 해당 내용을 찾을 수 없습니다\"라고 답변하세요.\n" +
		"4. 참고/출처 문구(예: \"참고:\", \"**참고:**\")를 답변 본문에 포함하지 마세요. (출처는 별도로 표시됩니다)\n\n" +
		"참고 문서:\n" + context
}

var referenceLineRe = regexp.MustCompile(`^\s*(\*\*\s*)?참고\s*[:：]`)

// stripReferenceLines drops everything from the first trailing
// "참고:" annotation line onward; the structured source list already
// carries that information.
func stripReferenceLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if referenceLineRe.MatchString(line) {
			return strings.TrimSpace(strings.Join(lines[:i], "\n"))
		}
	}
	return strings.TrimSpace(text)
}

func isNotFoundReply(message string) bool {
	for _, p := range notFoundPhrases {
		if strings.Contains(message, p) {
			return true
		}
	}
	return false
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewRunes {
		return content
	}
	return string(runes[:previewRunes])
}
