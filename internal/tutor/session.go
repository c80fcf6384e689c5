package tutor

import (
	"strings"

	"github.com/danoh/steptutor/internal/llm"
)

// SessionState is the single mutable record owned by a session for the
// lifetime of one question. All mutation goes through the reducer
// methods below; the transcript is append-only.
type SessionState struct {
	Question Question

	// Transcript holds every turn, including hidden system and
	// machine-only entries. Render-time filtering uses Message.Visible.
	Transcript []Message

	// CurrentStep is the latest Step or Complete record on display,
	// or nil when nothing structured is active.
	CurrentStep *StepRecord

	// CommittedTotalSteps is the locked-in total. Zero means unset.
	// Once set it only ever increases.
	CommittedTotalSteps int

	// MaxStepObserved is the highest step number ever seen.
	MaxStepObserved int

	Completed bool

	// WrongAnswerCounts tracks consecutive wrong selections per step
	// number. Entries are deleted on advance, correct, or skip.
	WrongAnswerCounts map[int]int
}

// NewSessionState initializes state for a freshly loaded question.
func NewSessionState(q Question) *SessionState {
	return &SessionState{
		Question:          q,
		WrongAnswerCounts: map[int]int{},
	}
}

// Append adds one transcript turn and returns its ID.
func (s *SessionState) Append(role llm.Role, display, wire string) string {
	m := Message{
		ID:             newMessageID(),
		Role:           role,
		DisplayContent: display,
		WireContent:    wire,
	}
	s.Transcript = append(s.Transcript, m)
	return m.ID
}

// WireMessages projects the transcript into completion-service turns.
func (s *SessionState) WireMessages() []llm.Message {
	msgs := make([]llm.Message, 0, len(s.Transcript))
	for _, m := range s.Transcript {
		msgs = append(msgs, llm.Message{Role: m.Role, Content: m.Wire()})
	}
	return msgs
}

// VisibleMessages projects the transcript for rendering.
func (s *SessionState) VisibleMessages() []Message {
	out := make([]Message, 0, len(s.Transcript))
	for _, m := range s.Transcript {
		if m.Visible() {
			out = append(out, m)
		}
	}
	return out
}

// BatchResult summarizes one reducer application for the controller's
// correction protocol.
type BatchResult struct {
	HasStep     bool
	HasText     bool
	HasComplete bool

	// Advanced is true when the batch moved the session to a step
	// number higher than the one active before application, or
	// completed it.
	Advanced bool

	// Texts is the concatenated feedback content of the batch.
	Texts string

	// AppliedStep is the canonical step applied, if any.
	AppliedStep *StepRecord
}

// ApplyBatch folds one parsed record batch into the state. Priority:
// a Complete record wins the batch, then the highest-numbered Step,
// then text-only handling. Monotonic fields never move backward.
func (s *SessionState) ApplyBatch(records []StepRecord) BatchResult {
	var res BatchResult

	prevStep := 0
	if s.CurrentStep != nil && s.CurrentStep.Kind == KindStep {
		prevStep = s.CurrentStep.Step
	}

	var texts []string
	var complete *StepRecord
	var canonical *StepRecord

	for i := range records {
		rec := records[i]
		switch rec.Kind {
		case KindComplete:
			res.HasComplete = true
			if complete == nil {
				complete = &records[i]
			}
		case KindStep:
			res.HasStep = true
			s.observeStep(rec)
			if canonical == nil || rec.Step > canonical.Step {
				canonical = &records[i]
			}
		case KindText:
			res.HasText = true
			if rec.Content != "" {
				texts = append(texts, rec.Content)
			}
		}
	}
	res.Texts = strings.Join(texts, "\n\n")

	switch {
	case complete != nil:
		s.Completed = true
		if s.MaxStepObserved > s.CommittedTotalSteps {
			s.CommittedTotalSteps = s.MaxStepObserved
		}
		s.CurrentStep = complete
		s.clearWrongCountsThrough(s.MaxStepObserved)
		res.Advanced = true

	case canonical != nil:
		s.CurrentStep = canonical
		res.AppliedStep = canonical
		if canonical.Step > prevStep {
			res.Advanced = true
			s.clearWrongCountsThrough(canonical.Step - 1)
		}
	}
	// A text-only batch falls through both cases and leaves the active
	// step on display.

	return res
}

// observeStep records a step sighting against the monotonic counters.
func (s *SessionState) observeStep(rec StepRecord) {
	if rec.Step > s.MaxStepObserved {
		s.MaxStepObserved = rec.Step
	}
	if s.CommittedTotalSteps == 0 {
		s.CommittedTotalSteps = rec.TotalSteps
	}
	if rec.Step > s.CommittedTotalSteps {
		s.CommittedTotalSteps = rec.Step
	}
}

func (s *SessionState) clearWrongCountsThrough(step int) {
	for k := range s.WrongAnswerCounts {
		if k <= step {
			delete(s.WrongAnswerCounts, k)
		}
	}
}
