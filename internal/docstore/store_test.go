package docstore

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestFolderLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	folders := s.Folders()

	f, err := folders.Create(ctx, "중간고사 대비")
	if err != nil {
		t.Fatalf("create folder: %v", err)
	}
	if f.Name != "중간고사 대비" {
		t.Errorf("name = %q", f.Name)
	}

	list, err := folders.List(ctx)
	if err != nil {
		t.Fatalf("list folders: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("folders = %d, want 1", len(list))
	}

	if err := folders.Rename(ctx, f.ID, "기말고사 대비"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	got, err := folders.Get(ctx, f.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "기말고사 대비" {
		t.Errorf("renamed name = %q", got.Name)
	}

	if err := folders.Delete(ctx, f.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	gone, err := folders.Get(ctx, f.ID)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if gone != nil {
		t.Error("folder still present after delete")
	}
}

func TestFolderDeleteCascades(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	f, err := s.Folders().Create(ctx, "정리 대상")
	if err != nil {
		t.Fatalf("create folder: %v", err)
	}
	pdf, err := s.PDFs().Create(ctx, &PDF{
		FolderID: f.ID, Filename: "doc.pdf", URL: "/files/x", Digest: "d1",
		SizeBytes: 10, RagStatus: RagCompleted,
	})
	if err != nil {
		t.Fatalf("create pdf: %v", err)
	}
	err = s.Chunks().SaveBatch(ctx, []*Chunk{
		{PDFID: pdf.ID, Index: 0, Content: "본문", Embedding: []float32{1, 0}},
	})
	if err != nil {
		t.Fatalf("save chunks: %v", err)
	}

	if err := s.Folders().Delete(ctx, f.ID); err != nil {
		t.Fatalf("delete folder: %v", err)
	}

	pdfs, err := s.PDFs().ListByFolder(ctx, f.ID)
	if err != nil {
		t.Fatalf("list pdfs: %v", err)
	}
	if len(pdfs) != 0 {
		t.Errorf("pdfs survived folder delete: %d", len(pdfs))
	}
	chunks, err := s.Chunks().ListByPDFs(ctx, []uuid.UUID{pdf.ID})
	if err != nil {
		t.Fatalf("list chunks: %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("chunks survived folder delete: %d", len(chunks))
	}
}

func TestPDFDigestDedupe(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	f, _ := s.Folders().Create(ctx, "folder")
	_, err := s.PDFs().Create(ctx, &PDF{
		FolderID: f.ID, Filename: "a.pdf", URL: "/files/a", Digest: "same",
		SizeBytes: 1, RagStatus: RagPending,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := s.PDFs().FindByDigest(ctx, f.ID, "same")
	if err != nil {
		t.Fatalf("find by digest: %v", err)
	}
	if found == nil || found.Filename != "a.pdf" {
		t.Errorf("found = %+v", found)
	}

	missing, err := s.PDFs().FindByDigest(ctx, f.ID, "other")
	if err != nil {
		t.Fatalf("find missing digest: %v", err)
	}
	if missing != nil {
		t.Errorf("unexpected hit: %+v", missing)
	}
}

func TestPDFStatusTransitions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	f, _ := s.Folders().Create(ctx, "folder")
	pdf, err := s.PDFs().Create(ctx, &PDF{
		FolderID: f.ID, Filename: "b.pdf", URL: "/files/b", Digest: "d",
		SizeBytes: 1, RagStatus: RagPending,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.PDFs().SetRagStatus(ctx, pdf.ID, RagProcessing); err != nil {
		t.Fatalf("set processing: %v", err)
	}
	pending, err := s.PDFs().ListByStatus(ctx, RagPending)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("pending = %d, want 0", len(pending))
	}
	processing, err := s.PDFs().ListByStatus(ctx, RagProcessing)
	if err != nil {
		t.Fatalf("list processing: %v", err)
	}
	if len(processing) != 1 {
		t.Errorf("processing = %d, want 1", len(processing))
	}
}

func TestChunkRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	f, _ := s.Folders().Create(ctx, "folder")
	pdf, _ := s.PDFs().Create(ctx, &PDF{
		FolderID: f.ID, Filename: "c.pdf", URL: "/files/c", Digest: "dc",
		SizeBytes: 1, RagStatus: RagCompleted,
	})

	in := []*Chunk{
		{PDFID: pdf.ID, Index: 0, Content: "첫 청크", Embedding: []float32{0.1, 0.2}},
		{PDFID: pdf.ID, Index: 1, Content: "둘째 청크", Embedding: []float32{0.3, 0.4}},
	}
	if err := s.Chunks().SaveBatch(ctx, in); err != nil {
		t.Fatalf("save batch: %v", err)
	}

	out, err := s.Chunks().ListByPDFs(ctx, []uuid.UUID{pdf.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("chunks = %d, want 2", len(out))
	}
	if out[0].Index != 0 || out[1].Index != 1 {
		t.Errorf("order = [%d %d]", out[0].Index, out[1].Index)
	}
	if out[1].Content != "둘째 청크" || len(out[1].Embedding) != 2 {
		t.Errorf("chunk = %+v", out[1])
	}

	if err := s.Chunks().DeleteByPDF(ctx, pdf.ID); err != nil {
		t.Fatalf("delete by pdf: %v", err)
	}
	out, err = s.Chunks().ListByPDFs(ctx, []uuid.UUID{pdf.ID})
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("chunks after delete = %d", len(out))
	}
}

func TestQuestionHierarchy(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Questions()

	ch, err := repo.CreateChapter(ctx, "1. 다항식", 1)
	if err != nil {
		t.Fatalf("create chapter: %v", err)
	}
	sec, err := repo.CreateSection(ctx, ch.ID, "1-1. 다항식의 연산", 1)
	if err != nil {
		t.Fatalf("create section: %v", err)
	}
	q, err := repo.CreateQuestion(ctx, &Question{
		SectionID: sec.ID,
		Text:      "$x+1=2$일 때 $x$는?",
		Type:      QuestionShortAnswer,
		Answer:    "1",
		Position:  1,
	})
	if err != nil {
		t.Fatalf("create question: %v", err)
	}

	questions, err := repo.ListQuestions(ctx, sec.ID)
	if err != nil {
		t.Fatalf("list questions: %v", err)
	}
	if len(questions) != 1 || questions[0].Text != q.Text {
		t.Errorf("questions = %+v", questions)
	}

	mc, err := repo.CreateQuestion(ctx, &Question{
		SectionID: sec.ID,
		Text:      "객관식 문제",
		Type:      QuestionMultipleChoice,
		Choices:   []string{"1", "2", "3", "4"},
		Answer:    "2",
		Position:  2,
	})
	if err != nil {
		t.Fatalf("create mc question: %v", err)
	}
	got, err := repo.GetQuestion(ctx, mc.ID)
	if err != nil {
		t.Fatalf("get question: %v", err)
	}
	if len(got.Choices) != 4 {
		t.Errorf("choices = %v", got.Choices)
	}

	if err := repo.DeleteQuestion(ctx, q.ID); err != nil {
		t.Fatalf("delete question: %v", err)
	}
	questions, _ = repo.ListQuestions(ctx, sec.ID)
	if len(questions) != 1 {
		t.Errorf("questions after delete = %d, want 1", len(questions))
	}
}

func TestEventAppendAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.Events()

	err := events.AppendLLMEvent(ctx, LLMEventData{
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Purpose:      "tutor-turn",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    900,
		Success:      true,
		RequestBody:  "[user] 문제 풀이를 시작해줘",
		ResponseBody: `{"type":"step","step":1}`,
	})
	if err != nil {
		t.Fatalf("append event: %v", err)
	}

	list, err := events.ListLLMEvents(ctx, 10)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("events = %d, want 1", len(list))
	}
	got, err := events.GetLLMEvent(ctx, list[0].ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if got.Model != "gpt-4o-mini" || !got.Success {
		t.Errorf("event = %+v", got)
	}
	if !strings.Contains(got.RequestBody, "문제 풀이") {
		t.Errorf("request body = %q", got.RequestBody)
	}
}
