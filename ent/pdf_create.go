// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danoh/steptutor/ent/chunk"
	"github.com/danoh/steptutor/ent/folder"
	"github.com/danoh/steptutor/ent/pdf"
	"github.com/google/uuid"
)

// PDFCreate is the builder for creating a PDF entity.
type PDFCreate struct {
	config
	mutation *PDFMutation
	hooks    []Hook
}

// SetFilename sets the "filename" field.
func (_c *PDFCreate) SetFilename(v string) *PDFCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *PDFCreate) SetURL(v string) *PDFCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetDigest sets the "digest" field.
func (_c *PDFCreate) SetDigest(v string) *PDFCreate {
	_c.mutation.SetDigest(v)
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *PDFCreate) SetSizeBytes(v int64) *PDFCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_c *PDFCreate) SetNillableSizeBytes(v *int64) *PDFCreate {
	if v != nil {
		_c.SetSizeBytes(*v)
	}
	return _c
}

// SetRagStatus sets the "rag_status" field.
func (_c *PDFCreate) SetRagStatus(v pdf.RagStatus) *PDFCreate {
	_c.mutation.SetRagStatus(v)
	return _c
}

// SetNillableRagStatus sets the "rag_status" field if the given value is not nil.
func (_c *PDFCreate) SetNillableRagStatus(v *pdf.RagStatus) *PDFCreate {
	if v != nil {
		_c.SetRagStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PDFCreate) SetCreatedAt(v time.Time) *PDFCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PDFCreate) SetNillableCreatedAt(v *time.Time) *PDFCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PDFCreate) SetID(v uuid.UUID) *PDFCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PDFCreate) SetNillableID(v *uuid.UUID) *PDFCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFolderID sets the "folder" edge to the Folder entity by ID.
func (_c *PDFCreate) SetFolderID(id uuid.UUID) *PDFCreate {
	_c.mutation.SetFolderID(id)
	return _c
}

// SetFolder sets the "folder" edge to the Folder entity.
func (_c *PDFCreate) SetFolder(v *Folder) *PDFCreate {
	return _c.SetFolderID(v.ID)
}

// AddChunkIDs adds the "chunks" edge to the Chunk entity by IDs.
func (_c *PDFCreate) AddChunkIDs(ids ...int) *PDFCreate {
	_c.mutation.AddChunkIDs(ids...)
	return _c
}

// AddChunks adds the "chunks" edges to the Chunk entity.
func (_c *PDFCreate) AddChunks(v ...*Chunk) *PDFCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChunkIDs(ids...)
}

// Mutation returns the PDFMutation object of the builder.
func (_c *PDFCreate) Mutation() *PDFMutation {
	return _c.mutation
}

// Save creates the PDF in the database.
func (_c *PDFCreate) Save(ctx context.Context) (*PDF, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PDFCreate) SaveX(ctx context.Context) *PDF {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PDFCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PDFCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PDFCreate) defaults() {
	if _, ok := _c.mutation.SizeBytes(); !ok {
		v := pdf.DefaultSizeBytes
		_c.mutation.SetSizeBytes(v)
	}
	if _, ok := _c.mutation.RagStatus(); !ok {
		v := pdf.DefaultRagStatus
		_c.mutation.SetRagStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pdf.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pdf.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PDFCreate) check() error {
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "PDF.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := pdf.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "PDF.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "PDF.url"`)}
	}
	if _, ok := _c.mutation.Digest(); !ok {
		return &ValidationError{Name: "digest", err: errors.New(`ent: missing required field "PDF.digest"`)}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "PDF.size_bytes"`)}
	}
	if _, ok := _c.mutation.RagStatus(); !ok {
		return &ValidationError{Name: "rag_status", err: errors.New(`ent: missing required field "PDF.rag_status"`)}
	}
	if v, ok := _c.mutation.RagStatus(); ok {
		if err := pdf.RagStatusValidator(v); err != nil {
			return &ValidationError{Name: "rag_status", err: fmt.Errorf(`ent: validator failed for field "PDF.rag_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PDF.created_at"`)}
	}
	if len(_c.mutation.FolderIDs()) == 0 {
		return &ValidationError{Name: "folder", err: errors.New(`ent: missing required edge "PDF.folder"`)}
	}
	return nil
}

func (_c *PDFCreate) sqlSave(ctx context.Context) (*PDF, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PDFCreate) createSpec() (*PDF, *sqlgraph.CreateSpec) {
	var (
		_node = &PDF{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pdf.Table, sqlgraph.NewFieldSpec(pdf.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(pdf.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(pdf.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Digest(); ok {
		_spec.SetField(pdf.FieldDigest, field.TypeString, value)
		_node.Digest = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(pdf.FieldSizeBytes, field.TypeInt64, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.RagStatus(); ok {
		_spec.SetField(pdf.FieldRagStatus, field.TypeEnum, value)
		_node.RagStatus = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pdf.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.FolderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pdf.FolderTable,
			Columns: []string{pdf.FolderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(folder.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.folder_pdfs = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChunksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pdf.ChunksTable,
			Columns: []string{pdf.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PDFCreateBulk is the builder for creating many PDF entities in bulk.
type PDFCreateBulk struct {
	config
	err      error
	builders []*PDFCreate
}

// Save creates the PDF entities in the database.
func (_c *PDFCreateBulk) Save(ctx context.Context) ([]*PDF, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PDF, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PDFMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PDFCreateBulk) SaveX(ctx context.Context) []*PDF {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PDFCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PDFCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
