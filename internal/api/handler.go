// Package api provides the HTTP surface of the tutoring server.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/danoh/steptutor/internal/docstore"
	"github.com/danoh/steptutor/internal/llm"
	"github.com/danoh/steptutor/internal/ragchat"
	"github.com/danoh/steptutor/internal/retrieval"
)

// Handler holds the dependencies shared by all endpoints.
type Handler struct {
	store    *docstore.Store
	blobs    *docstore.BlobStore
	ingestor *retrieval.Ingestor
	chat     *ragchat.Chat
	provider llm.Provider
	sessions *SessionRegistry
	log      *slog.Logger
}

// NewHandler wires the endpoint dependencies together.
func NewHandler(store *docstore.Store, blobs *docstore.BlobStore, ingestor *retrieval.Ingestor, chat *ragchat.Chat, provider llm.Provider, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		store:    store,
		blobs:    blobs,
		ingestor: ingestor,
		chat:     chat,
		provider: provider,
		sessions: NewSessionRegistry(provider, log),
		log:      log,
	}
}

// Router builds the full route tree.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Heartbeat("/health"))

	r.Route("/api", func(r chi.Router) {
		r.Route("/folders", func(r chi.Router) {
			r.Get("/", h.listFolders)
			r.Post("/", h.createFolder)
			r.Route("/{folderID}", func(r chi.Router) {
				r.Get("/", h.getFolder)
				r.Patch("/", h.renameFolder)
				r.Delete("/", h.deleteFolder)
				r.Get("/pdfs", h.listPDFs)
				r.Post("/pdfs", h.uploadPDF)
				r.Post("/chat", h.chatWithFolder)
			})
		})

		r.Route("/pdfs/{pdfID}", func(r chi.Router) {
			r.Get("/", h.getPDF)
			r.Delete("/", h.deletePDF)
			r.Post("/reprocess", h.reprocessPDF)
		})

		r.Route("/chapters", func(r chi.Router) {
			r.Get("/", h.listChapters)
			r.Post("/", h.createChapter)
			r.Get("/{chapterID}/sections", h.listSections)
			r.Post("/{chapterID}/sections", h.createSection)
		})
		r.Route("/sections/{sectionID}/questions", func(r chi.Router) {
			r.Get("/", h.listQuestions)
			r.Post("/", h.createQuestion)
		})
		r.Route("/questions/{questionID}", func(r chi.Router) {
			r.Get("/", h.getQuestion)
			r.Delete("/", h.deleteQuestion)
		})

		r.Route("/tutor/sessions", func(r chi.Router) {
			r.Post("/", h.createSession)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", h.getSession)
				r.Delete("/", h.deleteSession)
				r.Post("/option", h.selectOption)
				r.Post("/question", h.askTutor)
				r.Post("/switch", h.switchQuestion)
			})
		})
	})

	// Uploaded files are served straight off disk.
	fileServer := http.StripPrefix("/files/", http.FileServer(http.Dir(h.blobs.Dir())))
	r.Get("/files/*", fileServer.ServeHTTP)

	return r
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// decode parses a JSON request body into v.
func decode(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// pathUUID parses a UUID path parameter; the empty UUID and an error
// signal a malformed value.
func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	return id, err == nil
}
