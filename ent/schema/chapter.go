package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Chapter is the top level of the question bank hierarchy.
type Chapter struct {
	ent.Schema
}

func (Chapter) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("name").
			NotEmpty(),
		field.Int("position").
			Default(0).
			Comment("Sort order within the curriculum"),
	}
}

func (Chapter) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sections", Section.Type),
	}
}
