package tutor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/danoh/steptutor/internal/llm"
)

// ErrBusy is returned when a user action arrives while a prior model
// call for the same session is still outstanding.
var ErrBusy = errors.New("tutor: a request is already in flight")

// ErrNoSession is returned for actions on a controller with no active
// question.
var ErrNoSession = errors.New("tutor: no active session")

const (
	tutorMaxTokens   = 1000
	tutorTemperature = 0.7

	// protocolViolationMarker is appended to the transcript when a
	// completion contained no decodable structured record at all.
	protocolViolationMarker = "(응답 형식 오류: 구조화된 JSON 응답을 찾지 못했습니다)"
)

// Controller drives one tutoring session at a time. User actions are
// serialized; a second action while a call is outstanding fails with
// ErrBusy instead of queueing.
type Controller struct {
	provider llm.Provider
	log      *slog.Logger

	mu       sync.Mutex
	state    *SessionState
	epoch    uint64
	inFlight bool

	// Single-shot corrective bookkeeping, keyed by step and selected
	// option text. Reset whenever the question changes.
	feedbackRepairs map[correctionKey]bool
	advanceRepairs  map[correctionKey]bool
}

type correctionKey struct {
	Step   int
	Option string
}

// NewController builds a controller around one completion provider.
func NewController(provider llm.Provider, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		provider:        provider,
		log:             log,
		feedbackRepairs: map[correctionKey]bool{},
		advanceRepairs:  map[correctionKey]bool{},
	}
}

// Snapshot is an immutable view of the session for rendering.
type Snapshot struct {
	Started             bool
	Completed           bool
	CurrentStep         *StepRecord
	CommittedTotalSteps int
	MaxStepObserved     int
	Messages            []Message
	WrongAnswerCounts   map[int]int
}

// Snapshot returns the current render state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == nil {
		return Snapshot{}
	}

	snap := Snapshot{
		Started:             true,
		Completed:           c.state.Completed,
		CommittedTotalSteps: c.state.CommittedTotalSteps,
		MaxStepObserved:     c.state.MaxStepObserved,
		Messages:            c.state.VisibleMessages(),
		WrongAnswerCounts:   make(map[int]int, len(c.state.WrongAnswerCounts)),
	}
	for k, v := range c.state.WrongAnswerCounts {
		snap.WrongAnswerCounts[k] = v
	}
	if c.state.CurrentStep != nil {
		rec := *c.state.CurrentStep
		snap.CurrentStep = &rec
	}
	return snap
}

// Start loads a question and requests the first step.
func (c *Controller) Start(ctx context.Context, q Question) error {
	system, err := BuildSystemPrompt(q)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrBusy
	}
	c.inFlight = true
	c.epoch++
	epoch := c.epoch
	c.state = NewSessionState(q)
	c.feedbackRepairs = map[correctionKey]bool{}
	c.advanceRepairs = map[correctionKey]bool{}
	c.state.Append(llm.RoleSystem, "", system)
	c.state.Append(llm.RoleUser, StartMessage, "")
	msgs := c.state.WireMessages()
	c.mu.Unlock()

	defer c.clearInFlight()

	ctx = llm.WithPurpose(ctx, llm.PurposeTutorTurn)
	raw, err := c.complete(ctx, msgs)
	if err != nil {
		c.recordFailure(epoch, err)
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return nil
	}
	records := ParseRecords(raw)
	c.appendAssistant(raw, records)
	c.state.ApplyBatch(records)
	return nil
}

// Switch discards the active session and starts the new question.
func (c *Controller) Switch(ctx context.Context, q Question) error {
	return c.Start(ctx, q)
}

// SubmitFreeText sends an aside question from the student. No
// corrective protocol applies; a text-only reply leaves the active
// step on display.
func (c *Controller) SubmitFreeText(ctx context.Context, text string) error {
	c.mu.Lock()
	if c.state == nil {
		c.mu.Unlock()
		return ErrNoSession
	}
	if c.inFlight {
		c.mu.Unlock()
		return ErrBusy
	}
	c.inFlight = true
	epoch := c.epoch
	c.state.Append(llm.RoleUser, text, "")
	msgs := c.state.WireMessages()
	c.mu.Unlock()

	defer c.clearInFlight()

	ctx = llm.WithPurpose(ctx, llm.PurposeTutorTurn)
	raw, err := c.complete(ctx, msgs)
	if err != nil {
		c.recordFailure(epoch, err)
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return nil
	}
	records := ParseRecords(raw)
	c.appendAssistant(raw, records)
	c.state.ApplyBatch(records)
	return nil
}

// SelectOption submits the student's choice for the active step,
// classifies the outcome, and runs the self-healing protocol when the
// model's reply is structurally incomplete.
func (c *Controller) SelectOption(ctx context.Context, option string, index int) error {
	c.mu.Lock()
	if c.state == nil {
		c.mu.Unlock()
		return ErrNoSession
	}
	if c.inFlight {
		c.mu.Unlock()
		return ErrBusy
	}
	if c.state.CurrentStep == nil || c.state.CurrentStep.Kind != KindStep {
		c.mu.Unlock()
		return fmt.Errorf("tutor: no step is awaiting a selection")
	}
	c.inFlight = true
	epoch := c.epoch
	step := *c.state.CurrentStep
	c.state.Append(llm.RoleUser, option, "")
	msgs := c.state.WireMessages()
	c.mu.Unlock()

	defer c.clearInFlight()

	ctx = llm.WithPurpose(ctx, llm.PurposeTutorTurn)
	raw, err := c.complete(ctx, msgs)
	if err != nil {
		c.recordFailure(epoch, err)
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return nil
	}

	records := ParseRecords(raw)
	c.appendAssistant(raw, records)

	// A reply with no decodable record at all is a protocol violation:
	// the marker entry is the whole response. The corrective protocol
	// only applies to decodable-but-incomplete batches.
	if len(records) == 0 {
		return nil
	}

	res := c.state.ApplyBatch(records)
	key := correctionKey{Step: step.Step, Option: option}

	// Missing feedback repair: an option selection must be answered
	// with at least one text record.
	if !res.HasText && !c.feedbackRepairs[key] {
		c.feedbackRepairs[key] = true
		if texts := c.repairMissingFeedback(ctx, epoch, option); texts != "" {
			res.HasText = true
			res.Texts = texts
		}
	}

	outcome := c.classify(step, option, index, res.Texts)
	if res.Advanced {
		// The reply already moved the session forward; the step is
		// passed no matter how the selection would have classified.
		outcome = OutcomeAdvanced
	}
	c.bookkeep(step.Step, outcome)

	// Stalled advancement repair: a correct or skipped selection must
	// move the session forward.
	advanceEligible := outcome == OutcomeCorrect || outcome == OutcomeSkip
	if advanceEligible && !res.Advanced && !c.advanceRepairs[key] {
		c.advanceRepairs[key] = true
		c.repairStalledAdvance(ctx, epoch, step.Step, res.Texts)
	}

	return nil
}

// classify judges one selection. The model-declared correct index is
// authoritative; feedback wording is the fallback. Skip always wins.
func (c *Controller) classify(step StepRecord, option string, index int, feedback string) Outcome {
	if isSkipOption(option) {
		return OutcomeSkip
	}
	if step.CorrectIndex != nil {
		if index == *step.CorrectIndex {
			return OutcomeCorrect
		}
		return OutcomeWrong
	}
	return classifyFeedback(feedback)
}

// bookkeep maintains the per-step wrong-answer counters.
func (c *Controller) bookkeep(step int, outcome Outcome) {
	switch outcome {
	case OutcomeWrong:
		c.state.WrongAnswerCounts[step]++
	case OutcomeCorrect, OutcomeSkip:
		delete(c.state.WrongAnswerCounts, step)
	case OutcomeAdvanced:
		c.state.clearWrongCountsThrough(step)
	}
}

// repairMissingFeedback issues the single corrective call asking for
// the absent feedback record. Only text records from the reply are
// applied; any step transition it smuggles in is discarded. Returns
// the recovered feedback, or empty when the repair failed.
func (c *Controller) repairMissingFeedback(ctx context.Context, epoch uint64, option string) string {
	prompt := missingFeedbackPrompt(option)
	c.state.Append(llm.RoleUser, "", prompt)
	msgs := c.state.WireMessages()

	c.mu.Unlock()
	ctx = llm.WithPurpose(ctx, llm.PurposeTutorRepair)
	raw, err := c.complete(ctx, msgs)
	c.mu.Lock()

	if c.epoch != epoch {
		return ""
	}
	if err != nil {
		c.log.Warn("missing-feedback repair failed", "error", err)
		c.state.Append(llm.RoleAssistant, errorEntry(err), "")
		return ""
	}

	records := ParseRecords(raw)
	var texts []StepRecord
	for _, rec := range records {
		if rec.Kind == KindText {
			texts = append(texts, rec)
		}
	}
	if len(texts) == 0 {
		c.log.Warn("missing-feedback repair returned no text record")
		return ""
	}

	c.appendAssistant(raw, records)
	res := c.state.ApplyBatch(texts)
	return res.Texts
}

// repairStalledAdvance issues the single corrective call asking for
// the next step or completion. Text records in the reply are dropped,
// the feedback was already shown.
func (c *Controller) repairStalledAdvance(ctx context.Context, epoch uint64, step int, feedback string) {
	prompt := stalledAdvancePrompt(step, feedback)
	c.state.Append(llm.RoleUser, "", prompt)
	msgs := c.state.WireMessages()

	c.mu.Unlock()
	ctx = llm.WithPurpose(ctx, llm.PurposeTutorRepair)
	raw, err := c.complete(ctx, msgs)
	c.mu.Lock()

	if c.epoch != epoch {
		return
	}
	if err != nil {
		c.log.Warn("stalled-advance repair failed", "error", err)
		c.state.Append(llm.RoleAssistant, errorEntry(err), "")
		return
	}

	records := ParseRecords(raw)
	var structural []StepRecord
	for _, rec := range records {
		if rec.Kind == KindStep || rec.Kind == KindComplete {
			structural = append(structural, rec)
		}
	}
	if len(structural) == 0 {
		c.log.Warn("stalled-advance repair returned no step or complete record")
		return
	}

	c.appendAssistant(raw, records)
	c.state.ApplyBatch(structural)
}

// complete performs one provider call with the tutoring knobs.
func (c *Controller) complete(ctx context.Context, msgs []llm.Message) (string, error) {
	resp, err := c.provider.Generate(ctx, llm.Request{
		Messages:    msgs,
		MaxTokens:   tutorMaxTokens,
		Temperature: tutorTemperature,
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// appendAssistant records one completion in the transcript. Each
// structured span becomes its own assistant turn so the model sees the
// same granularity it produced; undecodable completions are kept raw
// with an explicit protocol marker.
func (c *Controller) appendAssistant(raw string, records []StepRecord) {
	if len(records) == 0 {
		c.state.Append(llm.RoleAssistant, raw+"\n\n"+protocolViolationMarker, raw)
		return
	}
	for _, span := range ExtractObjects(raw) {
		c.state.Append(llm.RoleAssistant, span, "")
	}
}

// recordFailure surfaces a transport failure as one transcript entry.
// State is otherwise untouched.
func (c *Controller) recordFailure(epoch uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch || c.state == nil {
		return
	}
	c.log.Warn("completion call failed", "error", err)
	c.state.Append(llm.RoleAssistant, errorEntry(err), "")
}

func (c *Controller) clearInFlight() {
	c.mu.Lock()
	c.inFlight = false
	c.mu.Unlock()
}

func errorEntry(err error) string {
	msg := "알 수 없는 오류가 발생했습니다."
	if err != nil {
		msg = err.Error()
	}
	return "오류: " + msg
}
