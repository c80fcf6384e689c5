package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Question is one math problem a tutoring session is built around.
// The answer and explanation are fed into the tutor's system prompt,
// never shown directly to the student.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.Text("question_text").
			NotEmpty(),
		field.Enum("type").
			Values("multiple_choice", "short_answer").
			Default("short_answer"),
		field.JSON("choices", []string{}).
			Optional().
			Comment("Answer choices for multiple_choice questions"),
		field.String("answer").
			NotEmpty(),
		field.Text("explanation").
			Optional(),
		field.Int("position").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("section", Section.Type).
			Ref("questions").
			Unique().
			Required(),
	}
}
