package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/danoh/steptutor/internal/llm"
	"github.com/danoh/steptutor/internal/tutor"
)

// SessionRegistry tracks the live tutoring sessions. Each session owns
// one controller; sessions are in-memory only and die with the server.
type SessionRegistry struct {
	provider llm.Provider
	log      *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*tutor.Controller
}

// NewSessionRegistry builds an empty registry.
func NewSessionRegistry(provider llm.Provider, log *slog.Logger) *SessionRegistry {
	return &SessionRegistry{
		provider: provider,
		log:      log,
		sessions: map[uuid.UUID]*tutor.Controller{},
	}
}

// Create registers a new controller and returns its session ID.
func (reg *SessionRegistry) Create() (uuid.UUID, *tutor.Controller) {
	c := tutor.NewController(reg.provider, reg.log)
	id := uuid.New()

	reg.mu.Lock()
	reg.sessions[id] = c
	reg.mu.Unlock()
	return id, c
}

// Get returns the controller for a session, or nil.
func (reg *SessionRegistry) Get(id uuid.UUID) *tutor.Controller {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.sessions[id]
}

// Remove drops a session.
func (reg *SessionRegistry) Remove(id uuid.UUID) {
	reg.mu.Lock()
	delete(reg.sessions, id)
	reg.mu.Unlock()
}

type sessionMessage struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

type sessionStep struct {
	Kind       string   `json:"kind"`
	Step       int      `json:"step,omitempty"`
	TotalSteps int      `json:"totalSteps,omitempty"`
	Question   string   `json:"question,omitempty"`
	Options    []string `json:"options,omitempty"`
	Content    string   `json:"content,omitempty"`
}

type sessionResponse struct {
	SessionID           uuid.UUID        `json:"sessionId"`
	Completed           bool             `json:"completed"`
	CommittedTotalSteps int              `json:"committedTotalSteps"`
	MaxStepObserved     int              `json:"maxStepObserved"`
	CurrentStep         *sessionStep     `json:"currentStep,omitempty"`
	Messages            []sessionMessage `json:"messages"`
	WrongAnswerCounts   map[int]int      `json:"wrongAnswerCounts"`
}

func toSessionResponse(id uuid.UUID, snap tutor.Snapshot) sessionResponse {
	resp := sessionResponse{
		SessionID:           id,
		Completed:           snap.Completed,
		CommittedTotalSteps: snap.CommittedTotalSteps,
		MaxStepObserved:     snap.MaxStepObserved,
		Messages:            make([]sessionMessage, 0, len(snap.Messages)),
		WrongAnswerCounts:   snap.WrongAnswerCounts,
	}
	for _, m := range snap.Messages {
		resp.Messages = append(resp.Messages, sessionMessage{
			ID:      m.ID,
			Role:    string(m.Role),
			Content: m.DisplayContent,
		})
	}
	if snap.CurrentStep != nil {
		// The declared correct index stays server-side.
		resp.CurrentStep = &sessionStep{
			Kind:       string(snap.CurrentStep.Kind),
			Step:       snap.CurrentStep.Step,
			TotalSteps: snap.CurrentStep.TotalSteps,
			Question:   snap.CurrentStep.Question,
			Options:    snap.CurrentStep.Options,
			Content:    snap.CurrentStep.Content,
		}
	}
	return resp
}

// loadTutorQuestion resolves a question ID into the tutoring domain type.
func (h *Handler) loadTutorQuestion(r *http.Request, questionID uuid.UUID) (*tutor.Question, error) {
	q, err := h.store.Questions().GetQuestion(r.Context(), questionID)
	if err != nil || q == nil {
		return nil, err
	}
	return &tutor.Question{
		Text:        q.Text,
		Type:        string(q.Type),
		Choices:     q.Choices,
		Answer:      q.Answer,
		Explanation: q.Explanation,
	}, nil
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		QuestionID uuid.UUID `json:"questionId"`
	}
	if err := decode(r, &req); err != nil || req.QuestionID == uuid.Nil {
		Error(w, http.StatusBadRequest, "questionId is required")
		return
	}

	q, err := h.loadTutorQuestion(r, req.QuestionID)
	if err != nil {
		h.log.Error("load question", "error", err)
		Error(w, http.StatusInternalServerError, "failed to load question")
		return
	}
	if q == nil {
		Error(w, http.StatusNotFound, "question not found")
		return
	}

	id, c := h.sessions.Create()
	if err := c.Start(r.Context(), *q); err != nil {
		h.sessions.Remove(id)
		h.log.Error("start session", "error", err)
		Error(w, http.StatusInternalServerError, "failed to start session")
		return
	}
	JSON(w, http.StatusCreated, toSessionResponse(id, c.Snapshot()))
}

// sessionFromPath resolves the controller for the request, writing the
// error response itself when the session is missing.
func (h *Handler) sessionFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, *tutor.Controller) {
	id, ok := pathUUID(r, "sessionID")
	if !ok {
		Error(w, http.StatusBadRequest, "invalid session id")
		return uuid.Nil, nil
	}
	c := h.sessions.Get(id)
	if c == nil {
		Error(w, http.StatusNotFound, "session not found")
		return uuid.Nil, nil
	}
	return id, c
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	id, c := h.sessionFromPath(w, r)
	if c == nil {
		return
	}
	JSON(w, http.StatusOK, toSessionResponse(id, c.Snapshot()))
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	id, c := h.sessionFromPath(w, r)
	if c == nil {
		return
	}
	h.sessions.Remove(id)
	JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) selectOption(w http.ResponseWriter, r *http.Request) {
	id, c := h.sessionFromPath(w, r)
	if c == nil {
		return
	}
	var req struct {
		Option string `json:"option"`
		Index  int    `json:"index"`
	}
	if err := decode(r, &req); err != nil || strings.TrimSpace(req.Option) == "" {
		Error(w, http.StatusBadRequest, "option is required")
		return
	}

	if err := c.SelectOption(r.Context(), req.Option, req.Index); err != nil {
		h.writeTutorError(w, err)
		return
	}
	JSON(w, http.StatusOK, toSessionResponse(id, c.Snapshot()))
}

func (h *Handler) askTutor(w http.ResponseWriter, r *http.Request) {
	id, c := h.sessionFromPath(w, r)
	if c == nil {
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := decode(r, &req); err != nil || strings.TrimSpace(req.Text) == "" {
		Error(w, http.StatusBadRequest, "text is required")
		return
	}

	if err := c.SubmitFreeText(r.Context(), req.Text); err != nil {
		h.writeTutorError(w, err)
		return
	}
	JSON(w, http.StatusOK, toSessionResponse(id, c.Snapshot()))
}

// switchQuestion swaps the session to a new question, discarding the
// prior conversation entirely.
func (h *Handler) switchQuestion(w http.ResponseWriter, r *http.Request) {
	id, c := h.sessionFromPath(w, r)
	if c == nil {
		return
	}
	var req struct {
		QuestionID uuid.UUID `json:"questionId"`
	}
	if err := decode(r, &req); err != nil || req.QuestionID == uuid.Nil {
		Error(w, http.StatusBadRequest, "questionId is required")
		return
	}

	q, err := h.loadTutorQuestion(r, req.QuestionID)
	if err != nil {
		h.log.Error("load question", "error", err)
		Error(w, http.StatusInternalServerError, "failed to load question")
		return
	}
	if q == nil {
		Error(w, http.StatusNotFound, "question not found")
		return
	}

	if err := c.Switch(r.Context(), *q); err != nil {
		h.writeTutorError(w, err)
		return
	}
	JSON(w, http.StatusOK, toSessionResponse(id, c.Snapshot()))
}

func (h *Handler) writeTutorError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tutor.ErrBusy):
		Error(w, http.StatusConflict, "a request for this session is already in flight")
	case errors.Is(err, tutor.ErrNoSession):
		Error(w, http.StatusNotFound, "session has no active question")
	default:
		Error(w, http.StatusBadRequest, err.Error())
	}
}
