package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Chunk is one fixed-size overlapping window of extracted PDF text,
// stored together with its embedding vector.
type Chunk struct {
	ent.Schema
}

func (Chunk) Fields() []ent.Field {
	return []ent.Field{
		field.Int("chunk_index").
			Comment("Zero-based position of this chunk within its PDF"),
		field.Text("content"),
		field.JSON("embedding", []float32{}).
			Comment("Embedding vector for similarity search"),
	}
}

func (Chunk) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pdf", PDF.Type).
			Ref("chunks").
			Unique().
			Required(),
	}
}

func (Chunk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chunk_index"),
	}
}
