// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChaptersColumns holds the columns for the "chapters" table.
	ChaptersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt, Default: 0},
	}
	// ChaptersTable holds the schema information for the "chapters" table.
	ChaptersTable = &schema.Table{
		Name:       "chapters",
		Columns:    ChaptersColumns,
		PrimaryKey: []*schema.Column{ChaptersColumns[0]},
	}
	// ChunksColumns holds the columns for the "chunks" table.
	ChunksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "chunk_index", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "embedding", Type: field.TypeJSON},
		{Name: "pdf_chunks", Type: field.TypeUUID},
	}
	// ChunksTable holds the schema information for the "chunks" table.
	ChunksTable = &schema.Table{
		Name:       "chunks",
		Columns:    ChunksColumns,
		PrimaryKey: []*schema.Column{ChunksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chunks_pd_fs_chunks",
				Columns:    []*schema.Column{ChunksColumns[4]},
				RefColumns: []*schema.Column{PdFsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chunk_chunk_index",
				Unique:  false,
				Columns: []*schema.Column{ChunksColumns[1]},
			},
		},
	}
	// FoldersColumns holds the columns for the "folders" table.
	FoldersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FoldersTable holds the schema information for the "folders" table.
	FoldersTable = &schema.Table{
		Name:       "folders",
		Columns:    FoldersColumns,
		PrimaryKey: []*schema.Column{FoldersColumns[0]},
	}
	// LlmEventsColumns holds the columns for the "llm_events" table.
	LlmEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmEventsTable holds the schema information for the "llm_events" table.
	LlmEventsTable = &schema.Table{
		Name:       "llm_events",
		Columns:    LlmEventsColumns,
		PrimaryKey: []*schema.Column{LlmEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmEventsColumns[1]},
			},
			{
				Name:    "llmevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmEventsColumns[2]},
			},
			{
				Name:    "llmevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmEventsColumns[4]},
			},
			{
				Name:    "llmevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmEventsColumns[8]},
			},
		},
	}
	// PdFsColumns holds the columns for the "pd_fs" table.
	PdFsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "url", Type: field.TypeString},
		{Name: "digest", Type: field.TypeString},
		{Name: "size_bytes", Type: field.TypeInt64, Default: 0},
		{Name: "rag_status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "folder_pdfs", Type: field.TypeUUID},
	}
	// PdFsTable holds the schema information for the "pd_fs" table.
	PdFsTable = &schema.Table{
		Name:       "pd_fs",
		Columns:    PdFsColumns,
		PrimaryKey: []*schema.Column{PdFsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pd_fs_folders_pdfs",
				Columns:    []*schema.Column{PdFsColumns[7]},
				RefColumns: []*schema.Column{FoldersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pdf_digest",
				Unique:  false,
				Columns: []*schema.Column{PdFsColumns[3]},
			},
			{
				Name:    "pdf_rag_status",
				Unique:  false,
				Columns: []*schema.Column{PdFsColumns[5]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"multiple_choice", "short_answer"}, Default: "short_answer"},
		{Name: "choices", Type: field.TypeJSON, Nullable: true},
		{Name: "answer", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "section_questions", Type: field.TypeUUID},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questions_sections_questions",
				Columns:    []*schema.Column{QuestionsColumns[8]},
				RefColumns: []*schema.Column{SectionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SectionsColumns holds the columns for the "sections" table.
	SectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "chapter_sections", Type: field.TypeUUID},
	}
	// SectionsTable holds the schema information for the "sections" table.
	SectionsTable = &schema.Table{
		Name:       "sections",
		Columns:    SectionsColumns,
		PrimaryKey: []*schema.Column{SectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sections_chapters_sections",
				Columns:    []*schema.Column{SectionsColumns[3]},
				RefColumns: []*schema.Column{ChaptersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChaptersTable,
		ChunksTable,
		FoldersTable,
		LlmEventsTable,
		PdFsTable,
		QuestionsTable,
		SectionsTable,
	}
)

func init() {
	ChunksTable.ForeignKeys[0].RefTable = PdFsTable
	PdFsTable.ForeignKeys[0].RefTable = FoldersTable
	QuestionsTable.ForeignKeys[0].RefTable = SectionsTable
	SectionsTable.ForeignKeys[0].RefTable = ChaptersTable
}
