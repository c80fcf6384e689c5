package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danoh/steptutor/internal/docstore"
)

// maxUploadBytes bounds one multipart upload.
const maxUploadBytes = 50 << 20

// ingestTimeout bounds one background embedding run.
const ingestTimeout = 10 * time.Minute

type pdfResponse struct {
	ID        uuid.UUID          `json:"id"`
	FolderID  uuid.UUID          `json:"folderId"`
	Filename  string             `json:"filename"`
	URL       string             `json:"url"`
	SizeBytes int64              `json:"sizeBytes"`
	RagStatus docstore.RagStatus `json:"ragStatus"`
	CreatedAt time.Time          `json:"createdAt"`
}

func toPDFResponse(p *docstore.PDF) pdfResponse {
	return pdfResponse{
		ID:        p.ID,
		FolderID:  p.FolderID,
		Filename:  p.Filename,
		URL:       p.URL,
		SizeBytes: p.SizeBytes,
		RagStatus: p.RagStatus,
		CreatedAt: p.CreatedAt,
	}
}

func (h *Handler) listPDFs(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(r, "folderID")
	if !ok {
		Error(w, http.StatusBadRequest, "invalid folder id")
		return
	}

	pdfs, err := h.store.PDFs().ListByFolder(r.Context(), folderID)
	if err != nil {
		h.log.Error("list pdfs", "error", err)
		Error(w, http.StatusInternalServerError, "failed to list documents")
		return
	}
	out := make([]pdfResponse, 0, len(pdfs))
	for _, p := range pdfs {
		out = append(out, toPDFResponse(p))
	}
	JSON(w, http.StatusOK, out)
}

// uploadPDF accepts a multipart upload, dedupes by content digest, and
// kicks off embedding in the background.
func (h *Handler) uploadPDF(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(r, "folderID")
	if !ok {
		Error(w, http.StatusBadRequest, "invalid folder id")
		return
	}

	folder, err := h.store.Folders().Get(r.Context(), folderID)
	if err != nil {
		h.log.Error("load folder", "error", err)
		Error(w, http.StatusInternalServerError, "failed to load folder")
		return
	}
	if folder == nil {
		Error(w, http.StatusNotFound, "folder not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		Error(w, http.StatusBadRequest, "multipart field \"file\" is required")
		return
	}
	defer file.Close()

	url, digest, err := h.blobs.Save(header.Filename, file)
	if err != nil {
		h.log.Error("store upload", "error", err)
		Error(w, http.StatusInternalServerError, "failed to store upload")
		return
	}

	// Same content in the same folder: return the existing record.
	existing, err := h.store.PDFs().FindByDigest(r.Context(), folderID, digest)
	if err != nil {
		h.log.Error("dedupe lookup", "error", err)
		Error(w, http.StatusInternalServerError, "failed to check for duplicates")
		return
	}
	if existing != nil {
		JSON(w, http.StatusOK, toPDFResponse(existing))
		return
	}

	pdf, err := h.store.PDFs().Create(r.Context(), &docstore.PDF{
		FolderID:  folderID,
		Filename:  header.Filename,
		URL:       url,
		Digest:    digest,
		SizeBytes: header.Size,
		RagStatus: docstore.RagPending,
	})
	if err != nil {
		h.log.Error("create pdf", "error", err)
		Error(w, http.StatusInternalServerError, "failed to record upload")
		return
	}

	go h.ingestInBackground(pdf)

	JSON(w, http.StatusCreated, toPDFResponse(pdf))
}

func (h *Handler) ingestInBackground(pdf *docstore.PDF) {
	ctx, cancel := context.WithTimeout(context.Background(), ingestTimeout)
	defer cancel()

	payload, err := h.blobs.Open(pdf.Digest, pdf.Filename)
	if err != nil {
		h.log.Error("open blob for ingest", "pdf_id", pdf.ID, "error", err)
		if serr := h.store.PDFs().SetRagStatus(ctx, pdf.ID, docstore.RagFailed); serr != nil {
			h.log.Error("mark failed", "pdf_id", pdf.ID, "error", serr)
		}
		return
	}
	defer payload.Close()

	if err := h.ingestor.Ingest(ctx, pdf, payload); err != nil {
		h.log.Error("background ingest", "pdf_id", pdf.ID, "error", err)
	}
}

func (h *Handler) getPDF(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "pdfID")
	if !ok {
		Error(w, http.StatusBadRequest, "invalid pdf id")
		return
	}

	pdf, err := h.store.PDFs().Get(r.Context(), id)
	if err != nil {
		h.log.Error("get pdf", "error", err)
		Error(w, http.StatusInternalServerError, "failed to load document")
		return
	}
	if pdf == nil {
		Error(w, http.StatusNotFound, "document not found")
		return
	}
	JSON(w, http.StatusOK, toPDFResponse(pdf))
}

func (h *Handler) deletePDF(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "pdfID")
	if !ok {
		Error(w, http.StatusBadRequest, "invalid pdf id")
		return
	}

	if err := h.store.Chunks().DeleteByPDF(r.Context(), id); err != nil {
		h.log.Error("delete chunks", "error", err)
		Error(w, http.StatusInternalServerError, "failed to delete document")
		return
	}
	if err := h.store.PDFs().Delete(r.Context(), id); err != nil {
		h.log.Error("delete pdf", "error", err)
		Error(w, http.StatusInternalServerError, "failed to delete document")
		return
	}
	JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// reprocessPDF re-runs the embedding pipeline, e.g. after a failed run.
func (h *Handler) reprocessPDF(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "pdfID")
	if !ok {
		Error(w, http.StatusBadRequest, "invalid pdf id")
		return
	}

	pdf, err := h.store.PDFs().Get(r.Context(), id)
	if err != nil {
		h.log.Error("get pdf", "error", err)
		Error(w, http.StatusInternalServerError, "failed to load document")
		return
	}
	if pdf == nil {
		Error(w, http.StatusNotFound, "document not found")
		return
	}
	if pdf.RagStatus == docstore.RagProcessing {
		Error(w, http.StatusConflict, "document is already being processed")
		return
	}

	go h.ingestInBackground(pdf)
	JSON(w, http.StatusAccepted, map[string]string{"status": "processing"})
}
