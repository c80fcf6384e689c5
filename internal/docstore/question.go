package docstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/danoh/steptutor/ent"
	"github.com/danoh/steptutor/ent/chapter"
	"github.com/danoh/steptutor/ent/question"
	"github.com/danoh/steptutor/ent/section"
)

// questionRepo implements QuestionRepo using the ent client.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) CreateChapter(ctx context.Context, name string, position int) (*Chapter, error) {
	row, err := r.client.Chapter.Create().
		SetName(name).
		SetPosition(position).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create chapter: %w", err)
	}
	return &Chapter{ID: row.ID, Name: row.Name, Position: row.Position}, nil
}

func (r *questionRepo) ListChapters(ctx context.Context) ([]*Chapter, error) {
	rows, err := r.client.Chapter.Query().
		Order(ent.Asc(chapter.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	out := make([]*Chapter, len(rows))
	for i, row := range rows {
		out[i] = &Chapter{ID: row.ID, Name: row.Name, Position: row.Position}
	}
	return out, nil
}

func (r *questionRepo) CreateSection(ctx context.Context, chapterID uuid.UUID, name string, position int) (*Section, error) {
	row, err := r.client.Section.Create().
		SetChapterID(chapterID).
		SetName(name).
		SetPosition(position).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create section: %w", err)
	}
	return &Section{ID: row.ID, ChapterID: chapterID, Name: row.Name, Position: row.Position}, nil
}

func (r *questionRepo) ListSections(ctx context.Context, chapterID uuid.UUID) ([]*Section, error) {
	rows, err := r.client.Section.Query().
		Where(section.HasChapterWith(chapter.ID(chapterID))).
		Order(ent.Asc(section.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	out := make([]*Section, len(rows))
	for i, row := range rows {
		out[i] = &Section{ID: row.ID, ChapterID: chapterID, Name: row.Name, Position: row.Position}
	}
	return out, nil
}

func (r *questionRepo) CreateQuestion(ctx context.Context, q *Question) (*Question, error) {
	create := r.client.Question.Create().
		SetSectionID(q.SectionID).
		SetQuestionText(q.Text).
		SetType(question.Type(q.Type)).
		SetAnswer(q.Answer).
		SetExplanation(q.Explanation).
		SetPosition(q.Position)
	if len(q.Choices) > 0 {
		create.SetChoices(q.Choices)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return entQuestion(row, q.SectionID), nil
}

func (r *questionRepo) ListQuestions(ctx context.Context, sectionID uuid.UUID) ([]*Question, error) {
	rows, err := r.client.Question.Query().
		Where(question.HasSectionWith(section.ID(sectionID))).
		Order(ent.Asc(question.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	out := make([]*Question, len(rows))
	for i, row := range rows {
		out[i] = entQuestion(row, sectionID)
	}
	return out, nil
}

func (r *questionRepo) GetQuestion(ctx context.Context, id uuid.UUID) (*Question, error) {
	row, err := r.client.Question.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get question: %w", err)
	}
	sectionID, err := row.QuerySection().OnlyID(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve question section: %w", err)
	}
	return entQuestion(row, sectionID), nil
}

func (r *questionRepo) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Question.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	return nil
}

func entQuestion(row *ent.Question, sectionID uuid.UUID) *Question {
	return &Question{
		ID:          row.ID,
		SectionID:   sectionID,
		Text:        row.QuestionText,
		Type:        QuestionType(row.Type),
		Choices:     row.Choices,
		Answer:      row.Answer,
		Explanation: row.Explanation,
		Position:    row.Position,
	}
}
