package tutor

import "testing"

func step(n, total int, opts ...string) StepRecord {
	if len(opts) == 0 {
		opts = []string{"a", "b", SkipOption}
	}
	return StepRecord{Kind: KindStep, Step: n, TotalSteps: total, Question: "q", Options: opts}
}

func TestApplyBatchCommittedTotalMonotonic(t *testing.T) {
	s := NewSessionState(Question{Text: "q", Answer: "a"})

	s.ApplyBatch([]StepRecord{step(1, 3)})
	if s.CommittedTotalSteps != 3 {
		t.Fatalf("committed = %d, want 3", s.CommittedTotalSteps)
	}

	// A later, lower total-step claim must not lower the commitment.
	s.ApplyBatch([]StepRecord{step(2, 2)})
	if s.CommittedTotalSteps != 3 {
		t.Errorf("committed = %d after lower claim, want 3", s.CommittedTotalSteps)
	}

	// A step number above the commitment raises it.
	s.ApplyBatch([]StepRecord{step(4, 3)})
	if s.CommittedTotalSteps != 4 {
		t.Errorf("committed = %d after step 4, want 4", s.CommittedTotalSteps)
	}
	if s.MaxStepObserved != 4 {
		t.Errorf("maxStepObserved = %d, want 4", s.MaxStepObserved)
	}
}

func TestApplyBatchHighestStepIsCanonical(t *testing.T) {
	s := NewSessionState(Question{Text: "q", Answer: "a"})

	s.ApplyBatch([]StepRecord{step(2, 3), step(1, 3)})
	if s.CurrentStep == nil || s.CurrentStep.Step != 2 {
		t.Fatalf("currentStep = %+v, want step 2", s.CurrentStep)
	}
}

func TestApplyBatchCompleteWins(t *testing.T) {
	s := NewSessionState(Question{Text: "q", Answer: "a"})
	s.ApplyBatch([]StepRecord{step(1, 4)})
	s.ApplyBatch([]StepRecord{step(2, 4)})

	res := s.ApplyBatch([]StepRecord{{Kind: KindComplete, Content: "축하합니다!"}})
	if !res.Advanced {
		t.Error("complete batch should report advancement")
	}
	if !s.Completed {
		t.Fatal("session should be completed")
	}
	if s.CurrentStep == nil || s.CurrentStep.Kind != KindComplete {
		t.Errorf("currentStep = %+v, want the complete record", s.CurrentStep)
	}
	if s.CommittedTotalSteps < s.MaxStepObserved {
		t.Errorf("committed %d < maxStepObserved %d at completion",
			s.CommittedTotalSteps, s.MaxStepObserved)
	}
}

func TestApplyBatchCompleteLocksTotalsToObserved(t *testing.T) {
	s := NewSessionState(Question{Text: "q", Answer: "a"})
	// Model claimed 2 but wandered to step 3 before finishing.
	s.ApplyBatch([]StepRecord{step(1, 2)})
	s.ApplyBatch([]StepRecord{step(3, 2)})
	s.ApplyBatch([]StepRecord{{Kind: KindComplete, Content: "done"}})

	if s.CommittedTotalSteps != 3 {
		t.Errorf("committed = %d, want 3", s.CommittedTotalSteps)
	}
}

func TestApplyBatchNeverUncompletes(t *testing.T) {
	s := NewSessionState(Question{Text: "q", Answer: "a"})
	s.ApplyBatch([]StepRecord{{Kind: KindComplete, Content: "done"}})

	s.ApplyBatch([]StepRecord{{Kind: KindText, Content: "aside answer"}})
	if !s.Completed {
		t.Error("text batch must not reset completion")
	}
	if s.CurrentStep == nil || s.CurrentStep.Kind != KindComplete {
		t.Errorf("currentStep = %+v, want completion banner retained", s.CurrentStep)
	}
}

func TestApplyBatchTextOnlyKeepsStepVisible(t *testing.T) {
	s := NewSessionState(Question{Text: "q", Answer: "a"})
	s.ApplyBatch([]StepRecord{step(2, 3)})

	res := s.ApplyBatch([]StepRecord{{Kind: KindText, Content: "an aside answer"}})
	if res.Advanced {
		t.Error("text-only batch must not advance")
	}
	if s.CurrentStep == nil || s.CurrentStep.Kind != KindStep || s.CurrentStep.Step != 2 {
		t.Errorf("currentStep = %+v, want step 2 still visible", s.CurrentStep)
	}
}

func TestApplyBatchRestoresStepAfterTextAside(t *testing.T) {
	s := NewSessionState(Question{Text: "q", Answer: "a"})
	// Text and step arrive together for an aside; step is redisplayed.
	res := s.ApplyBatch([]StepRecord{
		{Kind: KindText, Content: "answer to the aside"},
		step(1, 2),
	})
	if !res.HasText || !res.HasStep {
		t.Fatalf("result = %+v, want both text and step", res)
	}
	if s.CurrentStep == nil || s.CurrentStep.Step != 1 {
		t.Errorf("currentStep = %+v, want step 1", s.CurrentStep)
	}
}

func TestApplyBatchClearsWrongCountsOnAdvance(t *testing.T) {
	s := NewSessionState(Question{Text: "q", Answer: "a"})
	s.ApplyBatch([]StepRecord{step(3, 4)})
	s.WrongAnswerCounts[3] = 2

	s.ApplyBatch([]StepRecord{step(4, 4)})
	if _, ok := s.WrongAnswerCounts[3]; ok {
		t.Errorf("wrongAnswerCounts[3] survived an advance: %v", s.WrongAnswerCounts)
	}
}

func TestWireMessagesUsesWireContent(t *testing.T) {
	s := NewSessionState(Question{Text: "q", Answer: "a"})
	s.Append("system", "", "system instructions")
	s.Append("user", "visible text", "")
	s.Append("user", "", "machine only corrective")

	wire := s.WireMessages()
	if len(wire) != 3 {
		t.Fatalf("wire turns = %d, want 3", len(wire))
	}
	if wire[0].Content != "system instructions" {
		t.Errorf("system wire = %q", wire[0].Content)
	}
	if wire[2].Content != "machine only corrective" {
		t.Errorf("corrective wire = %q", wire[2].Content)
	}

	visible := s.VisibleMessages()
	if len(visible) != 1 || visible[0].DisplayContent != "visible text" {
		t.Errorf("visible = %+v, want only the user text", visible)
	}
}
