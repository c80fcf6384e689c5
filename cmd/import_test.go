package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danoh/steptutor/internal/docstore"
)

const sampleBank = `chapters:
  - name: 다항식
    position: 1
    sections:
      - name: 다항식의 연산
        position: 1
        questions:
          - text: "$2x+3=7$일 때 $x$의 값은?"
            type: short_answer
            answer: "2"
            explanation: "양변에서 3을 빼고 2로 나눈다."
          - text: "다음 중 $x^2-1$의 인수분해로 옳은 것은?"
            type: multiple_choice
            choices: ["$(x-1)(x+1)$", "$(x-1)^2$", "$(x+1)^2$"]
            answer: "$(x-1)(x+1)$"
`

func openImportStore(t *testing.T) *docstore.Store {
	t.Helper()
	st, err := docstore.Open(filepath.Join(t.TempDir(), "import.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func writeBank(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportBank(t *testing.T) {
	st := openImportStore(t)
	path := writeBank(t, sampleBank)
	ctx := context.Background()

	n, err := importBank(ctx, st.Questions(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	chapters, err := st.Questions().ListChapters(ctx)
	require.NoError(t, err)
	require.Len(t, chapters, 1)
	assert.Equal(t, "다항식", chapters[0].Name)

	sections, err := st.Questions().ListSections(ctx, chapters[0].ID)
	require.NoError(t, err)
	require.Len(t, sections, 1)

	questions, err := st.Questions().ListQuestions(ctx, sections[0].ID)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, docstore.QuestionShortAnswer, questions[0].Type)
	assert.Equal(t, docstore.QuestionMultipleChoice, questions[1].Type)
	assert.Len(t, questions[1].Choices, 3)
}

func TestImportBankReusesHierarchy(t *testing.T) {
	st := openImportStore(t)
	path := writeBank(t, sampleBank)
	ctx := context.Background()

	_, err := importBank(ctx, st.Questions(), path)
	require.NoError(t, err)
	_, err = importBank(ctx, st.Questions(), path)
	require.NoError(t, err)

	chapters, err := st.Questions().ListChapters(ctx)
	require.NoError(t, err)
	assert.Len(t, chapters, 1, "re-import must not duplicate chapters")

	sections, err := st.Questions().ListSections(ctx, chapters[0].ID)
	require.NoError(t, err)
	assert.Len(t, sections, 1, "re-import must not duplicate sections")
}

func TestImportBankValidation(t *testing.T) {
	st := openImportStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "unknown field",
			yaml: "chapters:\n  - name: x\n    bogus: 1\n",
		},
		{
			name: "unknown question type",
			yaml: sampleBankWithType("essay"),
		},
		{
			name: "multiple choice with one choice",
			yaml: "chapters:\n  - name: x\n    sections:\n      - name: y\n        questions:\n          - text: q\n            type: multiple_choice\n            choices: [\"a\"]\n            answer: a\n",
		},
		{
			name: "empty answer",
			yaml: "chapters:\n  - name: x\n    sections:\n      - name: y\n        questions:\n          - text: q\n            type: short_answer\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeBank(t, tt.yaml)
			_, err := importBank(ctx, st.Questions(), path)
			require.Error(t, err)
		})
	}
}

func sampleBankWithType(qt string) string {
	return "chapters:\n  - name: x\n    sections:\n      - name: y\n        questions:\n          - text: q\n            type: " + qt + "\n            answer: a\n"
}
