package retrieval

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/danoh/steptutor/internal/docstore"
)

// fakeChunkRepo records saved batches in memory.
type fakeChunkRepo struct {
	chunks  []*docstore.Chunk
	batches []int
	saveErr error
}

func (f *fakeChunkRepo) SaveBatch(_ context.Context, chunks []*docstore.Chunk) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.chunks = append(f.chunks, chunks...)
	f.batches = append(f.batches, len(chunks))
	return nil
}

func (f *fakeChunkRepo) ListByPDFs(_ context.Context, pdfIDs []uuid.UUID) ([]*docstore.Chunk, error) {
	var out []*docstore.Chunk
	for _, ch := range f.chunks {
		for _, id := range pdfIDs {
			if ch.PDFID == id {
				out = append(out, ch)
			}
		}
	}
	return out, nil
}

func (f *fakeChunkRepo) DeleteByPDF(_ context.Context, pdfID uuid.UUID) error {
	kept := f.chunks[:0]
	for _, ch := range f.chunks {
		if ch.PDFID != pdfID {
			kept = append(kept, ch)
		}
	}
	f.chunks = kept
	return nil
}

// fakePDFRepo tracks rag status transitions.
type fakePDFRepo struct {
	statuses []docstore.RagStatus
}

func (f *fakePDFRepo) Create(_ context.Context, p *docstore.PDF) (*docstore.PDF, error) {
	return p, nil
}
func (f *fakePDFRepo) ListByFolder(context.Context, uuid.UUID) ([]*docstore.PDF, error) {
	return nil, nil
}
func (f *fakePDFRepo) Get(context.Context, uuid.UUID) (*docstore.PDF, error) { return nil, nil }
func (f *fakePDFRepo) FindByDigest(context.Context, uuid.UUID, string) (*docstore.PDF, error) {
	return nil, nil
}
func (f *fakePDFRepo) SetRagStatus(_ context.Context, _ uuid.UUID, s docstore.RagStatus) error {
	f.statuses = append(f.statuses, s)
	return nil
}
func (f *fakePDFRepo) ListByStatus(context.Context, docstore.RagStatus) ([]*docstore.PDF, error) {
	return nil, nil
}
func (f *fakePDFRepo) Delete(context.Context, uuid.UUID) error { return nil }

func unitEmbedder(t *testing.T) Embedder {
	t.Helper()
	return EmbedderFunc(func(_ context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i := range texts {
			out[i] = []float32{1, 0, 0}
		}
		return out, nil
	})
}

func newTestIngestor(pdfs *fakePDFRepo, chunks *fakeChunkRepo, embed Embedder) *Ingestor {
	return &Ingestor{
		Extractor: PlainTextExtractor{},
		Chunker:   Chunker{Size: 50, Overlap: 10},
		Embedder:  embed,
		PDFs:      pdfs,
		Chunks:    chunks,
		BatchSize: 2,
	}
}

func TestIngestHappyPath(t *testing.T) {
	pdfs := &fakePDFRepo{}
	chunks := &fakeChunkRepo{}
	ing := newTestIngestor(pdfs, chunks, unitEmbedder(t))

	pdf := &docstore.PDF{ID: uuid.New(), Filename: "algebra.pdf"}
	text := strings.Repeat("수학 교재 본문 내용 ", 30)

	if err := ing.Ingest(context.Background(), pdf, strings.NewReader(text)); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	if len(chunks.chunks) == 0 {
		t.Fatal("no chunks saved")
	}
	for i, ch := range chunks.chunks {
		if ch.Index != i {
			t.Errorf("chunk %d has index %d", i, ch.Index)
		}
		if ch.PDFID != pdf.ID {
			t.Errorf("chunk %d has wrong pdf id", i)
		}
		if len(ch.Embedding) == 0 {
			t.Errorf("chunk %d has no embedding", i)
		}
	}
	for i, n := range chunks.batches {
		if n > ing.BatchSize {
			t.Errorf("batch %d held %d chunks, limit %d", i, n, ing.BatchSize)
		}
	}

	want := []docstore.RagStatus{docstore.RagProcessing, docstore.RagCompleted}
	if len(pdfs.statuses) != 2 || pdfs.statuses[0] != want[0] || pdfs.statuses[1] != want[1] {
		t.Errorf("status transitions = %v, want %v", pdfs.statuses, want)
	}
}

func TestIngestEmptyDocumentFails(t *testing.T) {
	pdfs := &fakePDFRepo{}
	ing := newTestIngestor(pdfs, &fakeChunkRepo{}, unitEmbedder(t))

	pdf := &docstore.PDF{ID: uuid.New(), Filename: "blank.pdf"}
	err := ing.Ingest(context.Background(), pdf, strings.NewReader("   "))
	if err == nil {
		t.Fatal("expected error for empty document")
	}

	last := pdfs.statuses[len(pdfs.statuses)-1]
	if last != docstore.RagFailed {
		t.Errorf("final status = %q, want failed", last)
	}
}

func TestIngestEmbedFailureMarksFailed(t *testing.T) {
	pdfs := &fakePDFRepo{}
	chunks := &fakeChunkRepo{}
	embed := EmbedderFunc(func(context.Context, []string) ([][]float32, error) {
		return nil, errors.New("quota exceeded")
	})
	ing := newTestIngestor(pdfs, chunks, embed)

	pdf := &docstore.PDF{ID: uuid.New(), Filename: "big.pdf"}
	err := ing.Ingest(context.Background(), pdf, strings.NewReader("본문 텍스트"))
	if err == nil {
		t.Fatal("expected embed error to propagate")
	}
	if len(chunks.chunks) != 0 {
		t.Errorf("chunks saved despite failure: %d", len(chunks.chunks))
	}
	if last := pdfs.statuses[len(pdfs.statuses)-1]; last != docstore.RagFailed {
		t.Errorf("final status = %q, want failed", last)
	}
}

func TestIngestReplacesPreviousChunks(t *testing.T) {
	pdfs := &fakePDFRepo{}
	chunks := &fakeChunkRepo{}
	ing := newTestIngestor(pdfs, chunks, unitEmbedder(t))

	pdf := &docstore.PDF{ID: uuid.New(), Filename: "notes.pdf"}
	if err := ing.Ingest(context.Background(), pdf, strings.NewReader("첫 번째 판")); err != nil {
		t.Fatalf("first ingest: %v", err)
	}
	first := len(chunks.chunks)

	if err := ing.Ingest(context.Background(), pdf, strings.NewReader("두 번째 판 내용")); err != nil {
		t.Fatalf("second ingest: %v", err)
	}
	if len(chunks.chunks) != 1 || first != 1 {
		t.Errorf("chunk counts = %d then %d, want 1 and 1", first, len(chunks.chunks))
	}
	if got := chunks.chunks[0].Content; got != "두 번째 판 내용" {
		t.Errorf("surviving chunk = %q, want the re-ingested text", got)
	}
}
