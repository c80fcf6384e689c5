package docstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/danoh/steptutor/ent"
	"github.com/danoh/steptutor/ent/chunk"
	"github.com/danoh/steptutor/ent/folder"
	"github.com/danoh/steptutor/ent/pdf"
)

// folderRepo implements FolderRepo using the ent client.
type folderRepo struct {
	client *ent.Client
}

func (r *folderRepo) Create(ctx context.Context, name string) (*Folder, error) {
	f, err := r.client.Folder.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}
	return entFolder(f, 0), nil
}

func (r *folderRepo) List(ctx context.Context) ([]*Folder, error) {
	rows, err := r.client.Folder.Query().
		Order(ent.Asc(folder.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}

	out := make([]*Folder, 0, len(rows))
	for _, f := range rows {
		n, err := f.QueryPdfs().Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count pdfs for folder %s: %w", f.ID, err)
		}
		out = append(out, entFolder(f, n))
	}
	return out, nil
}

func (r *folderRepo) Get(ctx context.Context, id uuid.UUID) (*Folder, error) {
	f, err := r.client.Folder.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}
	n, err := f.QueryPdfs().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count pdfs: %w", err)
	}
	return entFolder(f, n), nil
}

func (r *folderRepo) Rename(ctx context.Context, id uuid.UUID, name string) error {
	err := r.client.Folder.UpdateOneID(id).
		SetName(name).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("rename folder: %w", err)
	}
	return nil
}

func (r *folderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	pdfs, err := r.client.Folder.Query().
		Where(folder.ID(id)).
		QueryPdfs().
		All(ctx)
	if err != nil {
		return fmt.Errorf("query folder pdfs: %w", err)
	}

	ids := make([]uuid.UUID, len(pdfs))
	for i, p := range pdfs {
		ids[i] = p.ID
	}

	if len(ids) > 0 {
		if _, err := r.client.Chunk.Delete().
			Where(chunk.HasPdfWith(pdf.IDIn(ids...))).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete chunks: %w", err)
		}
		if _, err := r.client.PDF.Delete().
			Where(pdf.IDIn(ids...)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete pdfs: %w", err)
		}
	}

	if err := r.client.Folder.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}
	return nil
}

func entFolder(f *ent.Folder, pdfCount int) *Folder {
	return &Folder{
		ID:        f.ID,
		Name:      f.Name,
		CreatedAt: f.CreatedAt,
		PDFCount:  pdfCount,
	}
}
