package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PDF is one uploaded document. Its chunks become searchable once the
// embedding pipeline marks rag_status=completed.
type PDF struct {
	ent.Schema
}

func (PDF) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("filename").
			NotEmpty(),
		field.String("url").
			Comment("Public URL issued by the blob store"),
		field.String("digest").
			Comment("BLAKE3 hex digest of the file content, used for dedup"),
		field.Int64("size_bytes").
			Default(0),
		field.Enum("rag_status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (PDF) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("folder", Folder.Type).
			Ref("pdfs").
			Unique().
			Required(),
		edge.To("chunks", Chunk.Type),
	}
}

func (PDF) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("digest"),
		index.Fields("rag_status"),
	}
}
