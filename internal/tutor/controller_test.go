package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/danoh/steptutor/internal/llm"
)

func canned(raw string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(raw)}
}

var testQuestion = Question{
	Text:   "$2x + 3 = 7$일 때 $x$의 값은?",
	Type:   "short_answer",
	Answer: "2",
}

const stepOne = `{"type":"step","step":1,"totalSteps":2,"question":"양변에서 3을 빼면?","options":["$2x = 4$","$2x = 10$","이 단계 건너뛰기"],"correctIndex":0}`
const stepTwo = `{"type":"step","step":2,"totalSteps":2,"question":"양변을 2로 나누면?","options":["$x = 2$","$x = 5$","이 단계 건너뛰기"],"correctIndex":0}`

func startedController(t *testing.T, mock *llm.MockProvider) *Controller {
	t.Helper()
	c := NewController(mock, nil)
	if err := c.Start(context.Background(), testQuestion); err != nil {
		t.Fatalf("Start: %v", err)
	}
	snap := c.Snapshot()
	if snap.CurrentStep == nil || snap.CurrentStep.Step != 1 {
		t.Fatalf("after start, currentStep = %+v, want step 1", snap.CurrentStep)
	}
	return c
}

func TestControllerStart(t *testing.T) {
	mock := llm.NewMockProvider(canned(stepOne))
	c := startedController(t, mock)

	snap := c.Snapshot()
	if snap.CommittedTotalSteps != 2 {
		t.Errorf("committed = %d, want 2", snap.CommittedTotalSteps)
	}
	if snap.Completed {
		t.Error("fresh session should not be completed")
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}

	// The wire transcript carries the system prompt and start message.
	req := mock.Calls[0]
	if len(req.Messages) != 2 {
		t.Fatalf("wire turns = %d, want 2", len(req.Messages))
	}
	if req.Messages[0].Role != llm.RoleSystem {
		t.Errorf("first turn role = %q, want system", req.Messages[0].Role)
	}
	if req.Messages[1].Content != StartMessage {
		t.Errorf("second turn = %q, want start message", req.Messages[1].Content)
	}
}

func TestControllerStartRequiresQuestionText(t *testing.T) {
	c := NewController(llm.NewMockProvider(), nil)
	if err := c.Start(context.Background(), Question{Answer: "a"}); err == nil {
		t.Fatal("expected error for empty question text")
	}
}

func TestSelectOptionCorrectAdvances(t *testing.T) {
	mock := llm.NewMockProvider(
		canned(stepOne),
		canned(`{"type":"text","content":"정답입니다!"} `+stepTwo),
	)
	c := startedController(t, mock)

	if err := c.SelectOption(context.Background(), "$2x = 4$", 0); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}

	snap := c.Snapshot()
	if snap.CurrentStep == nil || snap.CurrentStep.Step != 2 {
		t.Fatalf("currentStep = %+v, want step 2", snap.CurrentStep)
	}
	if len(snap.WrongAnswerCounts) != 0 {
		t.Errorf("wrong counts = %v, want empty", snap.WrongAnswerCounts)
	}
	// Clean response needs no corrective call.
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestSelectOptionWrongIndexIsAuthoritative(t *testing.T) {
	// Feedback wording sounds positive; the declared index still rules.
	mock := llm.NewMockProvider(
		canned(stepOne),
		canned(`{"type":"text","content":"좋은 시도예요! 하지만 부호를 다시 보세요."} `+stepOne),
	)
	c := startedController(t, mock)

	if err := c.SelectOption(context.Background(), "$2x = 10$", 1); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}

	snap := c.Snapshot()
	if snap.WrongAnswerCounts[1] != 1 {
		t.Errorf("wrongAnswerCounts[1] = %d, want 1", snap.WrongAnswerCounts[1])
	}
	if snap.CurrentStep == nil || snap.CurrentStep.Step != 1 {
		t.Errorf("currentStep = %+v, want to stay on step 1", snap.CurrentStep)
	}
}

func TestRevealAfterRepeatedWrongClearsCount(t *testing.T) {
	// Two wrong answers in a row; the second reply reveals the answer
	// and advances in the same breath. The counter for the passed step
	// must not survive the advance.
	mock := llm.NewMockProvider(
		canned(stepOne),
		canned(`{"type":"text","content":"아쉽네요, 다시 생각해 보세요."}`),
		canned(`{"type":"text","content":"정답은 $2x = 4$였어요. 다음 단계로 갈게요."} `+stepTwo),
	)
	c := startedController(t, mock)

	if err := c.SelectOption(context.Background(), "$2x = 10$", 1); err != nil {
		t.Fatalf("first SelectOption: %v", err)
	}
	if got := c.Snapshot().WrongAnswerCounts[1]; got != 1 {
		t.Fatalf("wrongAnswerCounts[1] after first wrong = %d, want 1", got)
	}

	if err := c.SelectOption(context.Background(), "$2x = 10$", 1); err != nil {
		t.Fatalf("second SelectOption: %v", err)
	}

	snap := c.Snapshot()
	if n, ok := snap.WrongAnswerCounts[1]; ok {
		t.Errorf("wrongAnswerCounts[1] = %d after advancing past step 1, want absent", n)
	}
	if snap.CurrentStep == nil || snap.CurrentStep.Step != 2 {
		t.Errorf("currentStep = %+v, want step 2", snap.CurrentStep)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3 (no corrective for an advancing reply)", mock.CallCount())
	}
}

func TestSelectOptionProseReplyNoCorrective(t *testing.T) {
	// A reply with no decodable record is a protocol violation: marker
	// only, no corrective calls, no bookkeeping, state unchanged.
	mock := llm.NewMockProvider(
		canned(stepOne),
		canned(`계속 진행해 볼까요? 잘 하고 있어요.`),
	)
	c := startedController(t, mock)

	if err := c.SelectOption(context.Background(), "$2x = 4$", 0); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}

	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2 (start and selection only)", mock.CallCount())
	}
	snap := c.Snapshot()
	last := snap.Messages[len(snap.Messages)-1]
	if !strings.Contains(last.DisplayContent, protocolViolationMarker) {
		t.Errorf("last message = %q, want protocol marker", last.DisplayContent)
	}
	if snap.CurrentStep == nil || snap.CurrentStep.Step != 1 {
		t.Errorf("currentStep = %+v, want step 1 retained", snap.CurrentStep)
	}
	if len(snap.WrongAnswerCounts) != 0 {
		t.Errorf("wrong counts = %v, want empty", snap.WrongAnswerCounts)
	}
}

func TestSelectOptionCorrectIndexBeatsNegativeWording(t *testing.T) {
	mock := llm.NewMockProvider(
		canned(stepOne),
		canned(`{"type":"text","content":"아쉽지만 설명이 길었네요. 그래도 결과는 맞습니다."} `+stepTwo),
	)
	c := startedController(t, mock)

	if err := c.SelectOption(context.Background(), "$2x = 4$", 0); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}

	snap := c.Snapshot()
	if snap.WrongAnswerCounts[1] != 0 {
		t.Errorf("wrongAnswerCounts[1] = %d, want 0", snap.WrongAnswerCounts[1])
	}
}

func TestSelectOptionSkipAlwaysAdvanceEligible(t *testing.T) {
	// Skip with a stalled model: feedback only, no next step. Exactly
	// one corrective call must be issued and its step applied.
	mock := llm.NewMockProvider(
		canned(stepOne),
		canned(`{"type":"text","content":"알겠습니다, 이 단계는 넘어갈게요."}`),
		canned(stepTwo),
	)
	c := startedController(t, mock)

	if err := c.SelectOption(context.Background(), "이 단계 건너뛰기", 2); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}

	snap := c.Snapshot()
	if snap.CurrentStep == nil || snap.CurrentStep.Step != 2 {
		t.Fatalf("currentStep = %+v, want step 2 from corrective", snap.CurrentStep)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3 (start, select, corrective)", mock.CallCount())
	}
}

func TestStalledAdvanceRepairSingleShot(t *testing.T) {
	// The corrective itself also stalls. No second corrective follows
	// and the session keeps its last good state.
	mock := llm.NewMockProvider(
		canned(stepOne),
		canned(`{"type":"text","content":"정답입니다!"}`),
		canned(`{"type":"text","content":"여전히 수다만 떠는 중"}`),
	)
	c := startedController(t, mock)

	if err := c.SelectOption(context.Background(), "$2x = 4$", 0); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}

	if mock.CallCount() != 3 {
		t.Fatalf("calls = %d, want exactly 3", mock.CallCount())
	}
	snap := c.Snapshot()
	if snap.CurrentStep == nil || snap.CurrentStep.Step != 1 {
		t.Errorf("currentStep = %+v, want step 1 retained", snap.CurrentStep)
	}

	// The corrective request rides the wire as a user turn that names
	// the wanted step number.
	last := mock.Calls[2].Messages
	if got := last[len(last)-1]; got.Role != llm.RoleUser || !strings.Contains(got.Content, `"step":2`) {
		t.Errorf("corrective turn = %+v, want user turn requesting step 2", got)
	}
}

func TestMissingFeedbackRepair(t *testing.T) {
	// Wrong answer, but the model only re-sent the step. One corrective
	// call recovers the feedback; the wrong counter still increments.
	mock := llm.NewMockProvider(
		canned(stepOne),
		canned(stepOne),
		canned(`{"type":"text","content":"틀렸습니다. 부호를 다시 확인하세요."}`),
	)
	c := startedController(t, mock)

	if err := c.SelectOption(context.Background(), "$2x = 10$", 1); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}

	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
	snap := c.Snapshot()
	if snap.WrongAnswerCounts[1] != 1 {
		t.Errorf("wrongAnswerCounts[1] = %d, want 1", snap.WrongAnswerCounts[1])
	}

	var sawFeedback bool
	for _, m := range snap.Messages {
		if strings.Contains(m.DisplayContent, "틀렸습니다") {
			sawFeedback = true
		}
	}
	if !sawFeedback {
		t.Error("recovered feedback missing from transcript")
	}
}

func TestCompleteStopsSession(t *testing.T) {
	mock := llm.NewMockProvider(
		canned(stepOne),
		canned(`{"responses":[{"type":"text","content":"정답입니다!"},{"type":"complete","content":"모든 단계를 마쳤습니다. 축하해요!"}]}`),
	)
	c := startedController(t, mock)

	if err := c.SelectOption(context.Background(), "$2x = 4$", 0); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}

	snap := c.Snapshot()
	if !snap.Completed {
		t.Fatal("session should be completed")
	}
	if snap.CurrentStep == nil || snap.CurrentStep.Kind != KindComplete {
		t.Errorf("currentStep = %+v, want completion banner", snap.CurrentStep)
	}
	if snap.CommittedTotalSteps < snap.MaxStepObserved {
		t.Errorf("committed %d < observed %d", snap.CommittedTotalSteps, snap.MaxStepObserved)
	}
	// Completion needs no corrective even though only step 1 was played.
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestFreeTextKeepsStepVisible(t *testing.T) {
	mock := llm.NewMockProvider(
		canned(stepOne),
		canned(`{"type":"text","content":"이항은 등식의 성질에서 나옵니다."} `+stepOne),
	)
	c := startedController(t, mock)

	if err := c.SubmitFreeText(context.Background(), "이항이 뭐예요?"); err != nil {
		t.Fatalf("SubmitFreeText: %v", err)
	}

	snap := c.Snapshot()
	if snap.CurrentStep == nil || snap.CurrentStep.Step != 1 {
		t.Errorf("currentStep = %+v, want step 1 still active", snap.CurrentStep)
	}
	// Asides never trigger the corrective protocol.
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestTransportFailureSurfacesInTranscript(t *testing.T) {
	mock := llm.NewMockProvider(
		canned(stepOne),
		llm.MockResponse{Err: errors.New("connection refused")},
	)
	c := startedController(t, mock)

	if err := c.SubmitFreeText(context.Background(), "질문"); err != nil {
		t.Fatalf("SubmitFreeText should not propagate transport errors, got %v", err)
	}

	snap := c.Snapshot()
	if snap.CurrentStep == nil || snap.CurrentStep.Step != 1 {
		t.Errorf("currentStep = %+v, want last good state retained", snap.CurrentStep)
	}
	last := snap.Messages[len(snap.Messages)-1]
	if !strings.HasPrefix(last.DisplayContent, "오류: ") {
		t.Errorf("last message = %q, want error entry", last.DisplayContent)
	}
}

func TestProtocolViolationMarked(t *testing.T) {
	mock := llm.NewMockProvider(
		canned(stepOne),
		canned(`그냥 평문으로 대답할게요`),
	)
	c := startedController(t, mock)

	if err := c.SubmitFreeText(context.Background(), "질문"); err != nil {
		t.Fatalf("SubmitFreeText: %v", err)
	}

	snap := c.Snapshot()
	last := snap.Messages[len(snap.Messages)-1]
	if !strings.Contains(last.DisplayContent, protocolViolationMarker) {
		t.Errorf("last message = %q, want protocol marker", last.DisplayContent)
	}
	if snap.CurrentStep == nil || snap.CurrentStep.Step != 1 {
		t.Errorf("currentStep = %+v, want unchanged", snap.CurrentStep)
	}
}

func TestSwitchDiscardsPriorSession(t *testing.T) {
	mock := llm.NewMockProvider(
		canned(stepOne),
		canned(`{"type":"step","step":1,"totalSteps":1,"question":"새 문제 1단계","options":["x","이 단계 건너뛰기"],"correctIndex":0}`),
	)
	c := startedController(t, mock)
	c.Snapshot() // prior session alive

	next := Question{Text: "새 문제", Answer: "1"}
	if err := c.Switch(context.Background(), next); err != nil {
		t.Fatalf("Switch: %v", err)
	}

	snap := c.Snapshot()
	if snap.CurrentStep == nil || snap.CurrentStep.Question != "새 문제 1단계" {
		t.Fatalf("currentStep = %+v, want new question's step", snap.CurrentStep)
	}
	for _, m := range snap.Messages {
		if strings.Contains(m.DisplayContent, "양변") {
			t.Errorf("old transcript leaked into new session: %q", m.DisplayContent)
		}
	}
}

func TestSelectOptionWithoutActiveStep(t *testing.T) {
	mock := llm.NewMockProvider(canned(`{"type":"text","content":"아직 단계가 없어요"}`))
	c := NewController(mock, nil)
	if err := c.Start(context.Background(), testQuestion); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := c.SelectOption(context.Background(), "a", 0); err == nil {
		t.Fatal("expected error when no step is active")
	}
}

func TestClassifyFallbackLexicon(t *testing.T) {
	c := NewController(llm.NewMockProvider(), nil)
	noIndex := StepRecord{Kind: KindStep, Step: 1, TotalSteps: 2}

	tests := []struct {
		feedback string
		want     Outcome
	}{
		{"정답입니다! 잘 하셨어요.", OutcomeCorrect},
		{"아쉽지만 틀렸습니다.", OutcomeWrong},
		{"좋은 시도지만 다시 생각해 보세요.", OutcomeWrong},
		{"흥미로운 접근이네요.", OutcomeUnknown},
	}
	for _, tt := range tests {
		if got := c.classify(noIndex, "opt", 0, tt.feedback); got != tt.want {
			t.Errorf("classify(%q) = %v, want %v", tt.feedback, got, tt.want)
		}
	}

	// Skip wins over everything.
	withIndex := noIndex
	zero := 0
	withIndex.CorrectIndex = &zero
	if got := c.classify(withIndex, SkipOption, 1, "틀렸습니다"); got != OutcomeSkip {
		t.Errorf("skip classified as %v", got)
	}
}
