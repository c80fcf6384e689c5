package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/danoh/steptutor/internal/docstore"
)

type questionResponse struct {
	ID          uuid.UUID             `json:"id"`
	SectionID   uuid.UUID             `json:"sectionId"`
	Text        string                `json:"questionText"`
	Type        docstore.QuestionType `json:"type"`
	Choices     []string              `json:"choices,omitempty"`
	Answer      string                `json:"answer"`
	Explanation string                `json:"explanation,omitempty"`
	Position    int                   `json:"position"`
}

func toQuestionResponse(q *docstore.Question) questionResponse {
	return questionResponse{
		ID:          q.ID,
		SectionID:   q.SectionID,
		Text:        q.Text,
		Type:        q.Type,
		Choices:     q.Choices,
		Answer:      q.Answer,
		Explanation: q.Explanation,
		Position:    q.Position,
	}
}

func (h *Handler) listChapters(w http.ResponseWriter, r *http.Request) {
	chapters, err := h.store.Questions().ListChapters(r.Context())
	if err != nil {
		h.log.Error("list chapters", "error", err)
		Error(w, http.StatusInternalServerError, "failed to list chapters")
		return
	}
	JSON(w, http.StatusOK, chapters)
}

func (h *Handler) createChapter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Position int    `json:"position"`
	}
	if err := decode(r, &req); err != nil || strings.TrimSpace(req.Name) == "" {
		Error(w, http.StatusBadRequest, "name is required")
		return
	}

	ch, err := h.store.Questions().CreateChapter(r.Context(), strings.TrimSpace(req.Name), req.Position)
	if err != nil {
		h.log.Error("create chapter", "error", err)
		Error(w, http.StatusInternalServerError, "failed to create chapter")
		return
	}
	JSON(w, http.StatusCreated, ch)
}

func (h *Handler) listSections(w http.ResponseWriter, r *http.Request) {
	chapterID, ok := pathUUID(r, "chapterID")
	if !ok {
		Error(w, http.StatusBadRequest, "invalid chapter id")
		return
	}

	sections, err := h.store.Questions().ListSections(r.Context(), chapterID)
	if err != nil {
		h.log.Error("list sections", "error", err)
		Error(w, http.StatusInternalServerError, "failed to list sections")
		return
	}
	JSON(w, http.StatusOK, sections)
}

func (h *Handler) createSection(w http.ResponseWriter, r *http.Request) {
	chapterID, ok := pathUUID(r, "chapterID")
	if !ok {
		Error(w, http.StatusBadRequest, "invalid chapter id")
		return
	}
	var req struct {
		Name     string `json:"name"`
		Position int    `json:"position"`
	}
	if err := decode(r, &req); err != nil || strings.TrimSpace(req.Name) == "" {
		Error(w, http.StatusBadRequest, "name is required")
		return
	}

	sec, err := h.store.Questions().CreateSection(r.Context(), chapterID, strings.TrimSpace(req.Name), req.Position)
	if err != nil {
		h.log.Error("create section", "error", err)
		Error(w, http.StatusInternalServerError, "failed to create section")
		return
	}
	JSON(w, http.StatusCreated, sec)
}

func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	sectionID, ok := pathUUID(r, "sectionID")
	if !ok {
		Error(w, http.StatusBadRequest, "invalid section id")
		return
	}

	questions, err := h.store.Questions().ListQuestions(r.Context(), sectionID)
	if err != nil {
		h.log.Error("list questions", "error", err)
		Error(w, http.StatusInternalServerError, "failed to list questions")
		return
	}
	out := make([]questionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, toQuestionResponse(q))
	}
	JSON(w, http.StatusOK, out)
}

func (h *Handler) createQuestion(w http.ResponseWriter, r *http.Request) {
	sectionID, ok := pathUUID(r, "sectionID")
	if !ok {
		Error(w, http.StatusBadRequest, "invalid section id")
		return
	}
	var req struct {
		Text        string   `json:"questionText"`
		Type        string   `json:"type"`
		Choices     []string `json:"choices"`
		Answer      string   `json:"answer"`
		Explanation string   `json:"explanation"`
		Position    int      `json:"position"`
	}
	if err := decode(r, &req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" || strings.TrimSpace(req.Answer) == "" {
		Error(w, http.StatusBadRequest, "questionText and answer are required")
		return
	}
	qt := docstore.QuestionType(req.Type)
	if qt != docstore.QuestionMultipleChoice && qt != docstore.QuestionShortAnswer {
		Error(w, http.StatusBadRequest, "type must be multiple_choice or short_answer")
		return
	}
	if qt == docstore.QuestionMultipleChoice && len(req.Choices) < 2 {
		Error(w, http.StatusBadRequest, "multiple_choice questions need at least two choices")
		return
	}

	q, err := h.store.Questions().CreateQuestion(r.Context(), &docstore.Question{
		SectionID:   sectionID,
		Text:        req.Text,
		Type:        qt,
		Choices:     req.Choices,
		Answer:      req.Answer,
		Explanation: req.Explanation,
		Position:    req.Position,
	})
	if err != nil {
		h.log.Error("create question", "error", err)
		Error(w, http.StatusInternalServerError, "failed to create question")
		return
	}
	JSON(w, http.StatusCreated, toQuestionResponse(q))
}

func (h *Handler) getQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "questionID")
	if !ok {
		Error(w, http.StatusBadRequest, "invalid question id")
		return
	}

	q, err := h.store.Questions().GetQuestion(r.Context(), id)
	if err != nil {
		h.log.Error("get question", "error", err)
		Error(w, http.StatusInternalServerError, "failed to load question")
		return
	}
	if q == nil {
		Error(w, http.StatusNotFound, "question not found")
		return
	}
	JSON(w, http.StatusOK, toQuestionResponse(q))
}

func (h *Handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "questionID")
	if !ok {
		Error(w, http.StatusBadRequest, "invalid question id")
		return
	}

	if err := h.store.Questions().DeleteQuestion(r.Context(), id); err != nil {
		h.log.Error("delete question", "error", err)
		Error(w, http.StatusInternalServerError, "failed to delete question")
		return
	}
	JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
