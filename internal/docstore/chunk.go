package docstore

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/danoh/steptutor/ent"
	"github.com/danoh/steptutor/ent/chunk"
	"github.com/danoh/steptutor/ent/pdf"
	"github.com/danoh/steptutor/ent/predicate"
)

// chunkRepo implements ChunkRepo using the ent client.
type chunkRepo struct {
	client *ent.Client
}

func (r *chunkRepo) SaveBatch(ctx context.Context, chunks []*Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	builders := make([]*ent.ChunkCreate, len(chunks))
	for i, c := range chunks {
		builders[i] = r.client.Chunk.Create().
			SetPdfID(c.PDFID).
			SetChunkIndex(c.Index).
			SetContent(c.Content).
			SetEmbedding(c.Embedding)
	}

	if _, err := r.client.Chunk.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("save chunk batch: %w", err)
	}
	return nil
}

func (r *chunkRepo) ListByPDFs(ctx context.Context, pdfIDs []uuid.UUID) ([]*Chunk, error) {
	if len(pdfIDs) == 0 {
		return nil, nil
	}

	rows, err := r.client.Chunk.Query().
		Where(chunk.HasPdfWith(pdf.IDIn(pdfIDs...))).
		WithPdf(func(q *ent.PDFQuery) {
			q.Select(pdf.FieldID)
		}).
		Order(chunk.ByChunkIndex(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list chunks: %w", err)
	}

	out := make([]*Chunk, len(rows))
	for i, row := range rows {
		c := &Chunk{
			ID:        row.ID,
			Index:     row.ChunkIndex,
			Content:   row.Content,
			Embedding: row.Embedding,
		}
		if row.Edges.Pdf != nil {
			c.PDFID = row.Edges.Pdf.ID
		}
		out[i] = c
	}
	return out, nil
}

func (r *chunkRepo) DeleteByPDF(ctx context.Context, pdfID uuid.UUID) error {
	if _, err := r.client.Chunk.Delete().
		Where(chunkOfPDF(pdfID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete chunks: %w", err)
	}
	return nil
}

// chunkOfPDF is the predicate for chunks belonging to one PDF.
func chunkOfPDF(pdfID uuid.UUID) predicate.Chunk {
	return chunk.HasPdfWith(pdf.ID(pdfID))
}
