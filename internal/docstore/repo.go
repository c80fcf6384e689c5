package docstore

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Folder groups uploaded PDFs into one document-chat scope.
type Folder struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	PDFCount  int
}

// RagStatus is the embedding lifecycle state of a PDF.
type RagStatus string

const (
	RagPending    RagStatus = "pending"
	RagProcessing RagStatus = "processing"
	RagCompleted  RagStatus = "completed"
	RagFailed     RagStatus = "failed"
)

// PDF is one uploaded document.
type PDF struct {
	ID        uuid.UUID
	FolderID  uuid.UUID
	Filename  string
	URL       string
	Digest    string
	SizeBytes int64
	RagStatus RagStatus
	CreatedAt time.Time
}

// Chunk is one embedded window of extracted PDF text.
type Chunk struct {
	ID        int
	PDFID     uuid.UUID
	Index     int
	Content   string
	Embedding []float32
}

// Chapter/Section/Question form the question-bank hierarchy the solve
// surface browses.
type Chapter struct {
	ID       uuid.UUID
	Name     string
	Position int
}

type Section struct {
	ID        uuid.UUID
	ChapterID uuid.UUID
	Name      string
	Position  int
}

// QuestionType distinguishes how the student answers.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionShortAnswer    QuestionType = "short_answer"
)

// Question is one math problem.
type Question struct {
	ID          uuid.UUID
	SectionID   uuid.UUID
	Text        string
	Type        QuestionType
	Choices     []string
	Answer      string
	Explanation string
	Position    int
}

// FolderRepo manages folders.
type FolderRepo interface {
	Create(ctx context.Context, name string) (*Folder, error)
	List(ctx context.Context) ([]*Folder, error)
	Get(ctx context.Context, id uuid.UUID) (*Folder, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error
	// Delete removes the folder together with its PDFs and chunks.
	Delete(ctx context.Context, id uuid.UUID) error
}

// PDFRepo manages uploaded documents.
type PDFRepo interface {
	Create(ctx context.Context, p *PDF) (*PDF, error)
	ListByFolder(ctx context.Context, folderID uuid.UUID) ([]*PDF, error)
	Get(ctx context.Context, id uuid.UUID) (*PDF, error)
	// FindByDigest returns the PDF with the given content digest in the
	// folder, or nil when none exists.
	FindByDigest(ctx context.Context, folderID uuid.UUID, digest string) (*PDF, error)
	SetRagStatus(ctx context.Context, id uuid.UUID, status RagStatus) error
	ListByStatus(ctx context.Context, status RagStatus) ([]*PDF, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ChunkRepo manages embedded text chunks.
type ChunkRepo interface {
	// SaveBatch inserts a batch of chunks for one PDF.
	SaveBatch(ctx context.Context, chunks []*Chunk) error
	// ListByPDFs returns all chunks belonging to the given PDFs.
	ListByPDFs(ctx context.Context, pdfIDs []uuid.UUID) ([]*Chunk, error)
	DeleteByPDF(ctx context.Context, pdfID uuid.UUID) error
}

// QuestionRepo manages the chapter/section/question hierarchy.
type QuestionRepo interface {
	CreateChapter(ctx context.Context, name string, position int) (*Chapter, error)
	ListChapters(ctx context.Context) ([]*Chapter, error)
	CreateSection(ctx context.Context, chapterID uuid.UUID, name string, position int) (*Section, error)
	ListSections(ctx context.Context, chapterID uuid.UUID) ([]*Section, error)
	CreateQuestion(ctx context.Context, q *Question) (*Question, error)
	ListQuestions(ctx context.Context, sectionID uuid.UUID) ([]*Question, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (*Question, error)
	DeleteQuestion(ctx context.Context, id uuid.UUID) error
}

// LLMEventData captures one LLM API call for auditing.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a persisted LLMEventData row.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMEventData
}

// EventRepo records and queries LLM request events.
type EventRepo interface {
	AppendLLMEvent(ctx context.Context, data LLMEventData) error
	ListLLMEvents(ctx context.Context, limit int) ([]*LLMEvent, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
}
