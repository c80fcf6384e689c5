package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Section is a named group of questions within a chapter.
type Section struct {
	ent.Schema
}

func (Section) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("name").
			NotEmpty(),
		field.Int("position").
			Default(0),
	}
}

func (Section) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("chapter", Chapter.Type).
			Ref("sections").
			Unique().
			Required(),
		edge.To("questions", Question.Type),
	}
}
