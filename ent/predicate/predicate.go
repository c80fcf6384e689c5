// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Chapter is the predicate function for chapter builders.
type Chapter func(*sql.Selector)

// Chunk is the predicate function for chunk builders.
type Chunk func(*sql.Selector)

// Folder is the predicate function for folder builders.
type Folder func(*sql.Selector)

// LLMEvent is the predicate function for llmevent builders.
type LLMEvent func(*sql.Selector)

// PDF is the predicate function for pdf builders.
type PDF func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// Section is the predicate function for section builders.
type Section func(*sql.Selector)
