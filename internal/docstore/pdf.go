package docstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/danoh/steptutor/ent"
	"github.com/danoh/steptutor/ent/folder"
	"github.com/danoh/steptutor/ent/pdf"
)

// pdfRepo implements PDFRepo using the ent client.
type pdfRepo struct {
	client *ent.Client
}

func (r *pdfRepo) Create(ctx context.Context, p *PDF) (*PDF, error) {
	row, err := r.client.PDF.Create().
		SetFolderID(p.FolderID).
		SetFilename(p.Filename).
		SetURL(p.URL).
		SetDigest(p.Digest).
		SetSizeBytes(p.SizeBytes).
		SetRagStatus(pdf.RagStatus(p.RagStatus)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create pdf: %w", err)
	}
	return entPDF(row, p.FolderID), nil
}

func (r *pdfRepo) ListByFolder(ctx context.Context, folderID uuid.UUID) ([]*PDF, error) {
	rows, err := r.client.PDF.Query().
		Where(pdf.HasFolderWith(folder.ID(folderID))).
		Order(ent.Asc(pdf.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pdfs: %w", err)
	}

	out := make([]*PDF, len(rows))
	for i, row := range rows {
		out[i] = entPDF(row, folderID)
	}
	return out, nil
}

func (r *pdfRepo) Get(ctx context.Context, id uuid.UUID) (*PDF, error) {
	row, err := r.client.PDF.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pdf: %w", err)
	}
	folderID, err := row.QueryFolder().OnlyID(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve pdf folder: %w", err)
	}
	return entPDF(row, folderID), nil
}

func (r *pdfRepo) FindByDigest(ctx context.Context, folderID uuid.UUID, digest string) (*PDF, error) {
	row, err := r.client.PDF.Query().
		Where(
			pdf.Digest(digest),
			pdf.HasFolderWith(folder.ID(folderID)),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find pdf by digest: %w", err)
	}
	return entPDF(row, folderID), nil
}

func (r *pdfRepo) SetRagStatus(ctx context.Context, id uuid.UUID, status RagStatus) error {
	err := r.client.PDF.UpdateOneID(id).
		SetRagStatus(pdf.RagStatus(status)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set rag status: %w", err)
	}
	return nil
}

func (r *pdfRepo) ListByStatus(ctx context.Context, status RagStatus) ([]*PDF, error) {
	rows, err := r.client.PDF.Query().
		Where(pdf.RagStatusEQ(pdf.RagStatus(status))).
		Order(ent.Asc(pdf.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pdfs by status: %w", err)
	}

	out := make([]*PDF, 0, len(rows))
	for _, row := range rows {
		folderID, err := row.QueryFolder().OnlyID(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolve pdf folder: %w", err)
		}
		out = append(out, entPDF(row, folderID))
	}
	return out, nil
}

func (r *pdfRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.client.Chunk.Delete().
		Where(chunkOfPDF(id)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete pdf chunks: %w", err)
	}
	if err := r.client.PDF.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("delete pdf: %w", err)
	}
	return nil
}

func entPDF(row *ent.PDF, folderID uuid.UUID) *PDF {
	return &PDF{
		ID:        row.ID,
		FolderID:  folderID,
		Filename:  row.Filename,
		URL:       row.URL,
		Digest:    row.Digest,
		SizeBytes: row.SizeBytes,
		RagStatus: RagStatus(row.RagStatus),
		CreatedAt: row.CreatedAt,
	}
}
