package tutor

import "strings"

// Feedback wording markers used as a fallback correctness classifier
// when the model declared no correctIndex. Heuristic by nature; a
// message containing both kinds of markers is treated as negative,
// since wrong-answer feedback often opens with praise.
var (
	positiveMarkers = []string{
		"정답입니다",
		"정답이에요",
		"맞았습니다",
		"맞았어요",
		"맞습니다",
		"잘했어요",
		"잘 하셨습니다",
		"훌륭합니다",
		"훌륭해요",
		"완벽합니다",
		"완벽해요",
		"올바른 선택",
		"정확합니다",
		"정확해요",
	}
	negativeMarkers = []string{
		"틀렸습니다",
		"틀렸어요",
		"오답입니다",
		"오답이에요",
		"아쉽습니다",
		"아쉽지만",
		"아쉽네요",
		"다시 생각",
		"다시 선택",
		"다시 한번",
		"잘못된 선택",
		"정답이 아닙니다",
		"정답이 아니에요",
	}
)

// classifyFeedback judges one feedback message by wording alone.
// Returns OutcomeUnknown when no marker matches.
func classifyFeedback(text string) Outcome {
	for _, m := range negativeMarkers {
		if strings.Contains(text, m) {
			return OutcomeWrong
		}
	}
	for _, m := range positiveMarkers {
		if strings.Contains(text, m) {
			return OutcomeCorrect
		}
	}
	return OutcomeUnknown
}

// isSkipOption reports whether an option label is the skip choice.
// Matched by substring so minor model rephrasings still count.
func isSkipOption(option string) bool {
	return strings.Contains(option, "건너뛰기")
}
