package ragchat

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/danoh/steptutor/internal/docstore"
	"github.com/danoh/steptutor/internal/llm"
	"github.com/danoh/steptutor/internal/retrieval"
)

type fakePDFRepo struct {
	pdfs []*docstore.PDF
}

func (f *fakePDFRepo) Create(_ context.Context, p *docstore.PDF) (*docstore.PDF, error) {
	return p, nil
}
func (f *fakePDFRepo) ListByFolder(context.Context, uuid.UUID) ([]*docstore.PDF, error) {
	return f.pdfs, nil
}
func (f *fakePDFRepo) Get(context.Context, uuid.UUID) (*docstore.PDF, error) { return nil, nil }
func (f *fakePDFRepo) FindByDigest(context.Context, uuid.UUID, string) (*docstore.PDF, error) {
	return nil, nil
}
func (f *fakePDFRepo) SetRagStatus(context.Context, uuid.UUID, docstore.RagStatus) error {
	return nil
}
func (f *fakePDFRepo) ListByStatus(context.Context, docstore.RagStatus) ([]*docstore.PDF, error) {
	return nil, nil
}
func (f *fakePDFRepo) Delete(context.Context, uuid.UUID) error { return nil }

type fakeRetriever struct {
	matches []retrieval.Match
	err     error
}

func (f *fakeRetriever) Search(context.Context, string, []uuid.UUID, int) ([]retrieval.Match, error) {
	return f.matches, f.err
}

func ask(t *testing.T, c *Chat, folderID uuid.UUID, question string) *Answer {
	t.Helper()
	ans, err := c.Ask(context.Background(), folderID,
		[]llm.Message{{Role: llm.RoleUser, Content: question}}, false)
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	return ans
}

func TestAskEmptyFolder(t *testing.T) {
	c := &Chat{
		Provider:  llm.NewMockProvider(),
		Retriever: &fakeRetriever{},
		PDFs:      &fakePDFRepo{},
	}

	ans := ask(t, c, uuid.New(), "미분이 뭐야?")
	if ans.Message != msgNoPDFs {
		t.Errorf("message = %q, want %q", ans.Message, msgNoPDFs)
	}
	if len(ans.Sources) != 0 {
		t.Errorf("sources = %v, want empty", ans.Sources)
	}
}

func TestAskNoCompletedPDFs(t *testing.T) {
	c := &Chat{
		Provider:  llm.NewMockProvider(),
		Retriever: &fakeRetriever{},
		PDFs: &fakePDFRepo{pdfs: []*docstore.PDF{
			{ID: uuid.New(), Filename: "calc.pdf", RagStatus: docstore.RagPending},
		}},
	}

	ans := ask(t, c, uuid.New(), "미분이 뭐야?")
	if ans.Message != msgNotReady {
		t.Errorf("message = %q, want %q", ans.Message, msgNotReady)
	}
}

func TestAskFiltersBelowThreshold(t *testing.T) {
	pdfID := uuid.New()
	c := &Chat{
		Provider: llm.NewMockProvider(),
		Retriever: &fakeRetriever{matches: []retrieval.Match{
			{Chunk: &docstore.Chunk{PDFID: pdfID, Index: 0, Content: "무관한 내용"}, Similarity: 0.5},
			{Chunk: &docstore.Chunk{PDFID: pdfID, Index: 1, Content: "역시 무관"}, Similarity: 0.81},
		}},
		PDFs: &fakePDFRepo{pdfs: []*docstore.PDF{
			{ID: pdfID, Filename: "calc.pdf", RagStatus: docstore.RagCompleted},
		}},
	}

	ans := ask(t, c, uuid.New(), "오늘 날씨 어때?")
	if ans.Message != msgNothingFound {
		t.Errorf("message = %q, want %q", ans.Message, msgNothingFound)
	}
	if len(ans.Sources) != 0 {
		t.Errorf("sources = %v, want empty", ans.Sources)
	}
}

func TestAskGroundedAnswer(t *testing.T) {
	pdfID := uuid.New()
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("미분은 순간 변화율을 구하는 연산입니다.\n\n참고: calc.pdf 청크 1"),
	})
	c := &Chat{
		Provider: mock,
		Retriever: &fakeRetriever{matches: []retrieval.Match{
			{Chunk: &docstore.Chunk{PDFID: pdfID, Index: 0, Content: "미분의 정의는 순간 변화율이다."}, Similarity: 0.91},
			{Chunk: &docstore.Chunk{PDFID: pdfID, Index: 3, Content: "적분은 다음 장에서 다룬다."}, Similarity: 0.60},
		}},
		PDFs: &fakePDFRepo{pdfs: []*docstore.PDF{
			{ID: pdfID, Filename: "calc.pdf", RagStatus: docstore.RagCompleted},
		}},
	}

	ans := ask(t, c, uuid.New(), "미분이 뭐야?")
	if ans.Message != "미분은 순간 변화율을 구하는 연산입니다." {
		t.Errorf("message = %q, trailing reference line not stripped", ans.Message)
	}
	if len(ans.Sources) != 1 {
		t.Fatalf("sources = %d, want 1 (below-threshold chunk excluded)", len(ans.Sources))
	}
	src := ans.Sources[0]
	if src.SourceName != "calc.pdf" || src.ChunkIndex != 0 || src.Similarity != 0.91 {
		t.Errorf("source = %+v", src)
	}

	// The system prompt carries the context block with source tags.
	req := mock.Calls[0]
	if !contains(req.System, "[출처 1: calc.pdf - 청크 1]") {
		t.Errorf("system prompt missing context tag: %q", req.System)
	}
	if !contains(req.System, "문서에 명시된 내용만을") {
		t.Error("strict prompt expected when general knowledge is off")
	}
}

func TestAskGeneralKnowledgePrompt(t *testing.T) {
	pdfID := uuid.New()
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("답변")})
	c := &Chat{
		Provider: mock,
		Retriever: &fakeRetriever{matches: []retrieval.Match{
			{Chunk: &docstore.Chunk{PDFID: pdfID, Index: 0, Content: "본문"}, Similarity: 0.9},
		}},
		PDFs: &fakePDFRepo{pdfs: []*docstore.PDF{
			{ID: pdfID, Filename: "calc.pdf", RagStatus: docstore.RagCompleted},
		}},
	}

	_, err := c.Ask(context.Background(), uuid.New(),
		[]llm.Message{{Role: llm.RoleUser, Content: "질문"}}, true)
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if !contains(mock.Calls[0].System, "일반 지식도 활용") {
		t.Error("general-knowledge prompt expected")
	}
}

func TestAskSuppressesSourcesOnNotFound(t *testing.T) {
	pdfID := uuid.New()
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("문서에서 해당 내용을 찾을 수 없습니다."),
	})
	c := &Chat{
		Provider: mock,
		Retriever: &fakeRetriever{matches: []retrieval.Match{
			{Chunk: &docstore.Chunk{PDFID: pdfID, Index: 0, Content: "엉뚱한 본문"}, Similarity: 0.85},
		}},
		PDFs: &fakePDFRepo{pdfs: []*docstore.PDF{
			{ID: pdfID, Filename: "calc.pdf", RagStatus: docstore.RagCompleted},
		}},
	}

	ans := ask(t, c, uuid.New(), "문서 밖 질문")
	if len(ans.Sources) != 0 {
		t.Errorf("sources = %v, want suppressed on not-found reply", ans.Sources)
	}
}

func TestStripReferenceLines(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"본문\n참고: calc.pdf", "본문"},
		{"본문\n**참고:** calc.pdf", "본문"},
		{"본문\n참고： 전각 콜론", "본문"},
		{"참고 없이 끝", "참고 없이 끝"},
		{"중간에 참고라는 말이 나와도 유지", "중간에 참고라는 말이 나와도 유지"},
	}
	for _, tt := range tests {
		if got := stripReferenceLines(tt.in); got != tt.want {
			t.Errorf("stripReferenceLines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
