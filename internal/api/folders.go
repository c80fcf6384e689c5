package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danoh/steptutor/internal/docstore"
)

type folderResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	PDFCount  int       `json:"pdfCount"`
	CreatedAt time.Time `json:"createdAt"`
}

func toFolderResponse(f *docstore.Folder) folderResponse {
	return folderResponse{ID: f.ID, Name: f.Name, PDFCount: f.PDFCount, CreatedAt: f.CreatedAt}
}

func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.store.Folders().List(r.Context())
	if err != nil {
		h.log.Error("list folders", "error", err)
		Error(w, http.StatusInternalServerError, "failed to list folders")
		return
	}
	out := make([]folderResponse, 0, len(folders))
	for _, f := range folders {
		out = append(out, toFolderResponse(f))
	}
	JSON(w, http.StatusOK, out)
}

func (h *Handler) createFolder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decode(r, &req); err != nil || strings.TrimSpace(req.Name) == "" {
		Error(w, http.StatusBadRequest, "name is required")
		return
	}

	f, err := h.store.Folders().Create(r.Context(), strings.TrimSpace(req.Name))
	if err != nil {
		h.log.Error("create folder", "error", err)
		Error(w, http.StatusInternalServerError, "failed to create folder")
		return
	}
	JSON(w, http.StatusCreated, toFolderResponse(f))
}

func (h *Handler) getFolder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "folderID")
	if !ok {
		Error(w, http.StatusBadRequest, "invalid folder id")
		return
	}

	f, err := h.store.Folders().Get(r.Context(), id)
	if err != nil {
		h.log.Error("get folder", "error", err)
		Error(w, http.StatusInternalServerError, "failed to load folder")
		return
	}
	if f == nil {
		Error(w, http.StatusNotFound, "folder not found")
		return
	}
	JSON(w, http.StatusOK, toFolderResponse(f))
}

func (h *Handler) renameFolder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "folderID")
	if !ok {
		Error(w, http.StatusBadRequest, "invalid folder id")
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := decode(r, &req); err != nil || strings.TrimSpace(req.Name) == "" {
		Error(w, http.StatusBadRequest, "name is required")
		return
	}

	if err := h.store.Folders().Rename(r.Context(), id, strings.TrimSpace(req.Name)); err != nil {
		h.log.Error("rename folder", "error", err)
		Error(w, http.StatusInternalServerError, "failed to rename folder")
		return
	}
	JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) deleteFolder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "folderID")
	if !ok {
		Error(w, http.StatusBadRequest, "invalid folder id")
		return
	}

	if err := h.store.Folders().Delete(r.Context(), id); err != nil {
		h.log.Error("delete folder", "error", err)
		Error(w, http.StatusInternalServerError, "failed to delete folder")
		return
	}
	JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
