package tutor

import (
	"github.com/oklog/ulid/v2"

	"github.com/danoh/steptutor/internal/llm"
)

// Kind discriminates the structured records the tutor model emits.
type Kind string

const (
	KindStep     Kind = "step"
	KindText     Kind = "text"
	KindComplete Kind = "complete"
)

// StepRecord is one structured unit of model output: a pedagogical
// checkpoint, a piece of free-text feedback, or the completion banner.
type StepRecord struct {
	Kind Kind

	// Step fields.
	Step         int
	TotalSteps   int
	Question     string
	Options      []string
	CorrectIndex *int

	// Text / Complete payload.
	Content string
}

// Message is one turn in the dialogue transcript. Append-only; system
// turns and empty display content are hidden at render time.
type Message struct {
	ID   string
	Role llm.Role

	// DisplayContent is what the student sees.
	DisplayContent string

	// WireContent, when set, is what actually goes to the completion
	// service for this turn. Used to inject machine-only instructions
	// without polluting the visible transcript.
	WireContent string
}

// Wire returns the content sent to the completion service.
func (m Message) Wire() string {
	if m.WireContent != "" {
		return m.WireContent
	}
	return m.DisplayContent
}

// Visible reports whether the message belongs in the rendered transcript.
func (m Message) Visible() bool {
	return m.Role != llm.RoleSystem && m.DisplayContent != ""
}

// Question describes the problem a session is built around.
type Question struct {
	Text        string
	Type        string // "multiple_choice" or "short_answer"
	Choices     []string
	Answer      string
	Explanation string
}

// Outcome classifies the result of one option selection.
type Outcome int

const (
	// OutcomeUnknown means neither the declared correct index nor the
	// feedback wording allowed a judgment.
	OutcomeUnknown Outcome = iota
	OutcomeWrong
	OutcomeCorrect
	OutcomeSkip

	// OutcomeAdvanced means the reply moved the session past the step,
	// regardless of how the selection itself would have classified. This
	// covers the reveal-after-repeated-wrong flow, where the model gives
	// the answer away and advances in one reply.
	OutcomeAdvanced
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWrong:
		return "wrong"
	case OutcomeCorrect:
		return "correct"
	case OutcomeSkip:
		return "skip"
	case OutcomeAdvanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// newMessageID returns a time-sortable transcript message ID.
func newMessageID() string {
	return ulid.Make().String()
}
