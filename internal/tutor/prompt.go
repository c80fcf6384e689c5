package tutor

import (
	"fmt"
	"strings"
)

// StartMessage is the fixed user turn that kicks off a tutoring session.
const StartMessage = "문제 풀이를 시작해줘"

// SkipOption is the literal label of the always-last skip choice.
const SkipOption = "이 단계 건너뛰기"

// BuildSystemPrompt renders the tutoring instruction for one question.
// Pure function of its input; the returned string is the full system
// turn for the session.
func BuildSystemPrompt(q Question) (string, error) {
	if strings.TrimSpace(q.Text) == "" {
		return "", fmt.Errorf("question text is empty")
	}
	if strings.TrimSpace(q.Answer) == "" {
		return "", fmt.Errorf("question answer is empty")
	}

	var b strings.Builder

	b.WriteString("당신은 학생의 수학 문제 풀이를 단계별로 안내하는 AI 튜터입니다.\n\n")

	b.WriteString("현재 문제:\n")
	b.WriteString(q.Text)
	b.WriteString("\n\n")

	b.WriteString("문제 유형: ")
	if q.Type == "multiple_choice" {
		b.WriteString("객관식")
	} else {
		b.WriteString("단답형")
	}
	if q.Type == "multiple_choice" && len(q.Choices) > 0 {
		b.WriteString("\n선지:\n")
		for i, c := range q.Choices {
			fmt.Fprintf(&b, "%d. %s\n", i+1, c)
		}
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "정답: %s\n", q.Answer)
	fmt.Fprintf(&b, "해설: %s\n\n", q.Explanation)

	b.WriteString("핵심 요구사항(반드시 지켜라):\n")
	b.WriteString("1) 전체 단계 수는 문제의 난이도에 맞게 정한다. 간단한 문제는 1~2단계, 여러 과정이 필요한 복잡한 문제만 3~4단계로 구성한다. 단계를 억지로 늘리지 마라.\n")
	b.WriteString("2) 각 단계는 학생이 선택지를 고르는 방식으로 진행한다. options는 3~5개.\n")
	b.WriteString("3) 각 단계의 options는 실제 중간 풀이 결과(수식, 계산값)여야 한다. 최종 답을 바로 고르게 하는 선택지는 금지한다.\n")
	b.WriteString("4) 각 단계마다 정답인 선택지는 정확히 하나이며, 그 인덱스(0부터 시작)를 correctIndex로 반드시 포함한다.\n")
	b.WriteString("5) 학생이 선택지를 고르면 피드백을 주고 다음 단계로 진행한다.\n")
	b.WriteString("6) 학생의 선택이 '오답'이면: 왜 틀렸는지 수식/계산을 포함해 힌트만 주고, 같은 단계(step 동일)에서 다시 선택하게 한다. 정답은 알려주지 마라.\n")
	b.WriteString("7) 같은 단계에서 학생이 연속으로 두 번 '오답'을 내면: 정답 선택지를 공개하고 설명한 뒤, 다음 단계(step+1)로 진행한다.\n")
	b.WriteString("   - 너는 대화 히스토리를 보고, 같은 step 번호에서 오답 피드백이 1번 있었는지/2번째인지 스스로 판단해야 한다.\n")
	b.WriteString("8) 임의 질문(선택지와 무관한 질문)이 들어오면: 먼저 type=text로 답변하고, 이어서 현재 진행 중인 단계를 type=step으로 다시 제시한다.\n")
	b.WriteString("9) 문제가 완료(type=complete)된 이후에는: 임의 질문에는 type=text로만 답변하고, step을 다시 제시하지 않는다.\n\n")

	b.WriteString("엄격 규칙:\n")
	b.WriteString("- 모든 응답은 JSON만 반환한다. (JSON 이외의 텍스트 금지)\n")
	b.WriteString("- 임의 질문에 대한 응답만 예외적으로 JSON을 2개 연속으로 반환할 수 있다: 먼저 {type:text...} 다음 {type:step...}\n")
	b.WriteString("- 수학 수식/LaTeX는 반드시 $...$ (인라인) 또는 $$...$$ (블록)으로 감싸서 작성한다. (예: $x^2+1=0$, $\\frac{1}{2}$)\n")
	b.WriteString("- 줄바꿈이 필요하면 실제 줄바꿈을 사용하고, 문자열 \"\\\\n\" 또는 \"\\\\n\\\\n\"를 그대로 출력하지 마라.\n")
	fmt.Fprintf(&b, "- options의 마지막은 항상 %q를 포함한다. 이 선택지는 correctIndex 계산에서 제외한다.\n", SkipOption)
	b.WriteString("- totalSteps 값은 시작 시 결정하고 끝까지 유지한다.\n\n")

	b.WriteString("JSON 스키마:\n")
	b.WriteString("- 단계: {\"type\":\"step\",\"step\":1,\"totalSteps\":2,\"question\":\"...\",\"options\":[\"...\",...],\"correctIndex\":0}\n")
	b.WriteString("- 텍스트: {\"type\":\"text\",\"content\":\"...\"}\n")
	b.WriteString("- 완료: {\"type\":\"complete\",\"content\":\"...\"}\n\n")

	b.WriteString("시작 조건:\n")
	fmt.Fprintf(&b, "- 사용자가 %q라고 하면 step=1을 제시한다.\n", StartMessage)

	return b.String(), nil
}

// missingFeedbackPrompt asks for the feedback record a response to an
// option selection should have contained but did not. It must not
// repeat or advance any step.
func missingFeedbackPrompt(option string) string {
	return fmt.Sprintf(
		"방금 학생이 선택지 %q를 골랐지만 너의 응답에 피드백(type=text)이 없었다. "+
			"이 선택에 대한 피드백을 {\"type\":\"text\",\"content\":\"...\"} JSON 하나로만 반환해라. "+
			"step이나 complete는 절대 포함하지 마라.",
		option)
}

// stalledAdvancePrompt asks for the step transition a correct selection
// should have produced. The already-shown feedback rides along so the
// model does not regenerate it.
func stalledAdvancePrompt(currentStep int, feedback string) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"학생이 단계 %d를 올바르게 해결했지만 너의 응답에 다음 단계가 없었다. ", currentStep)
	if feedback != "" {
		fmt.Fprintf(&b, "이미 보여준 피드백: %q\n", feedback)
		b.WriteString("이 피드백을 다시 반복하지 마라. ")
	}
	fmt.Fprintf(&b,
		"지금 바로 {\"type\":\"step\",\"step\":%d,...} 형식의 다음 단계 JSON 하나, "+
			"또는 풀이가 끝났다면 {\"type\":\"complete\",\"content\":\"...\"} JSON 하나만 반환해라. "+
			"text는 포함하지 마라.",
		currentStep+1)
	return b.String()
}
