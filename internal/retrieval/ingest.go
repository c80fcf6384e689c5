package retrieval

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/danoh/steptutor/internal/docstore"
)

// DefaultInsertBatch bounds how many chunks go into one insert; very
// large single writes have caused trouble with remote stores before.
const DefaultInsertBatch = 20

// Ingestor runs the upload-to-searchable pipeline for one document:
// extract text, chunk it, embed every chunk, persist in batches.
type Ingestor struct {
	Extractor Extractor
	Chunker   Chunker
	Embedder  Embedder
	PDFs      docstore.PDFRepo
	Chunks    docstore.ChunkRepo
	Log       *slog.Logger

	// BatchSize caps chunks per insert. Zero means DefaultInsertBatch.
	BatchSize int
}

// Ingest processes one uploaded document. The PDF's rag status tracks
// progress: processing while running, completed on success, failed on
// any error. Re-ingesting replaces the document's previous chunks.
func (ing *Ingestor) Ingest(ctx context.Context, pdf *docstore.PDF, payload io.Reader) error {
	log := ing.logger().With("pdf_id", pdf.ID, "filename", pdf.Filename)

	if err := ing.PDFs.SetRagStatus(ctx, pdf.ID, docstore.RagProcessing); err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}

	err := ing.run(ctx, pdf, payload, log)
	if err != nil {
		log.Error("ingest failed", "error", err)
		if serr := ing.PDFs.SetRagStatus(ctx, pdf.ID, docstore.RagFailed); serr != nil {
			log.Error("mark failed", "error", serr)
		}
		return err
	}

	if err := ing.PDFs.SetRagStatus(ctx, pdf.ID, docstore.RagCompleted); err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}
	log.Info("ingest completed")
	return nil
}

func (ing *Ingestor) run(ctx context.Context, pdf *docstore.PDF, payload io.Reader, log *slog.Logger) error {
	text, err := ing.Extractor.Extract(payload)
	if err != nil {
		return fmt.Errorf("extract text: %w", err)
	}
	log.Info("text extracted", "chars", len(text))

	pieces := ing.Chunker.Split(text)
	if len(pieces) == 0 {
		return fmt.Errorf("no chunks produced")
	}
	log.Info("text chunked", "chunks", len(pieces))

	if err := ing.Chunks.DeleteByPDF(ctx, pdf.ID); err != nil {
		return fmt.Errorf("clear previous chunks: %w", err)
	}

	batch := ing.BatchSize
	if batch <= 0 {
		batch = DefaultInsertBatch
	}

	for start := 0; start < len(pieces); start += batch {
		end := start + batch
		if end > len(pieces) {
			end = len(pieces)
		}

		vecs, err := ing.Embedder.Embed(ctx, pieces[start:end])
		if err != nil {
			return fmt.Errorf("embed chunks %d-%d: %w", start, end-1, err)
		}

		chunks := make([]*docstore.Chunk, 0, end-start)
		for i, vec := range vecs {
			chunks = append(chunks, &docstore.Chunk{
				PDFID:     pdf.ID,
				Index:     start + i,
				Content:   pieces[start+i],
				Embedding: vec,
			})
		}
		if err := ing.Chunks.SaveBatch(ctx, chunks); err != nil {
			return fmt.Errorf("save chunks %d-%d: %w", start, end-1, err)
		}
		log.Debug("batch saved", "from", start, "to", end-1)
	}

	return nil
}

func (ing *Ingestor) logger() *slog.Logger {
	if ing.Log != nil {
		return ing.Log
	}
	return slog.Default()
}
