// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/danoh/steptutor/ent/folder"
	"github.com/danoh/steptutor/ent/pdf"
	"github.com/google/uuid"
)

// PDF is the model entity for the PDF schema.
type PDF struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// Public URL issued by the blob store
	URL string `json:"url,omitempty"`
	// BLAKE3 hex digest of the file content, used for dedup
	Digest string `json:"digest,omitempty"`
	// SizeBytes holds the value of the "size_bytes" field.
	SizeBytes int64 `json:"size_bytes,omitempty"`
	// RagStatus holds the value of the "rag_status" field.
	RagStatus pdf.RagStatus `json:"rag_status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PDFQuery when eager-loading is set.
	Edges        PDFEdges `json:"edges"`
	folder_pdfs  *uuid.UUID
	selectValues sql.SelectValues
}

// PDFEdges holds the relations/edges for other nodes in the graph.
type PDFEdges struct {
	// Folder holds the value of the folder edge.
	Folder *Folder `json:"folder,omitempty"`
	// Chunks holds the value of the chunks edge.
	Chunks []*Chunk `json:"chunks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FolderOrErr returns the Folder value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PDFEdges) FolderOrErr() (*Folder, error) {
	if e.Folder != nil {
		return e.Folder, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: folder.Label}
	}
	return nil, &NotLoadedError{edge: "folder"}
}

// ChunksOrErr returns the Chunks value or an error if the edge
// was not loaded in eager-loading.
func (e PDFEdges) ChunksOrErr() ([]*Chunk, error) {
	if e.loadedTypes[1] {
		return e.Chunks, nil
	}
	return nil, &NotLoadedError{edge: "chunks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PDF) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pdf.FieldSizeBytes:
			values[i] = new(sql.NullInt64)
		case pdf.FieldFilename, pdf.FieldURL, pdf.FieldDigest, pdf.FieldRagStatus:
			values[i] = new(sql.NullString)
		case pdf.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case pdf.FieldID:
			values[i] = new(uuid.UUID)
		case pdf.ForeignKeys[0]: // folder_pdfs
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PDF fields.
func (_m *PDF) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pdf.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case pdf.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case pdf.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case pdf.FieldDigest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field digest", values[i])
			} else if value.Valid {
				_m.Digest = value.String
			}
		case pdf.FieldSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size_bytes", values[i])
			} else if value.Valid {
				_m.SizeBytes = value.Int64
			}
		case pdf.FieldRagStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rag_status", values[i])
			} else if value.Valid {
				_m.RagStatus = pdf.RagStatus(value.String)
			}
		case pdf.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pdf.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field folder_pdfs", values[i])
			} else if value.Valid {
				_m.folder_pdfs = new(uuid.UUID)
				*_m.folder_pdfs = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PDF.
// This includes values selected through modifiers, order, etc.
func (_m *PDF) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFolder queries the "folder" edge of the PDF entity.
func (_m *PDF) QueryFolder() *FolderQuery {
	return NewPDFClient(_m.config).QueryFolder(_m)
}

// QueryChunks queries the "chunks" edge of the PDF entity.
func (_m *PDF) QueryChunks() *ChunkQuery {
	return NewPDFClient(_m.config).QueryChunks(_m)
}

// Update returns a builder for updating this PDF.
// Note that you need to call PDF.Unwrap() before calling this method if this PDF
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PDF) Update() *PDFUpdateOne {
	return NewPDFClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PDF entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PDF) Unwrap() *PDF {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PDF is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PDF) String() string {
	var builder strings.Builder
	builder.WriteString("PDF(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("digest=")
	builder.WriteString(_m.Digest)
	builder.WriteString(", ")
	builder.WriteString("size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.SizeBytes))
	builder.WriteString(", ")
	builder.WriteString("rag_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.RagStatus))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PDFs is a parsable slice of PDF.
type PDFs []*PDF
