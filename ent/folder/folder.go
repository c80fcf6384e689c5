// Code generated by ent, DO NOT EDIT.

package folder

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the folder type in the database.
	Label = "folder"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgePdfs holds the string denoting the pdfs edge name in mutations.
	EdgePdfs = "pdfs"
	// Table holds the table name of the folder in the database.
	Table = "folders"
	// PdfsTable is the table that holds the pdfs relation/edge.
	PdfsTable = "pd_fs"
	// PdfsInverseTable is the table name for the PDF entity.
	// It exists in this package in order to avoid circular dependency with the "pdf" package.
	PdfsInverseTable = "pd_fs"
	// PdfsColumn is the table column denoting the pdfs relation/edge.
	PdfsColumn = "folder_pdfs"
)

// Columns holds all SQL columns for folder fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Folder queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPdfsCount orders the results by pdfs count.
func ByPdfsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPdfsStep(), opts...)
	}
}

// ByPdfs orders the results by pdfs terms.
func ByPdfs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPdfsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPdfsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PdfsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PdfsTable, PdfsColumn),
	)
}
