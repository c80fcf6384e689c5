// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danoh/steptutor/ent/chunk"
	"github.com/danoh/steptutor/ent/folder"
	"github.com/danoh/steptutor/ent/pdf"
	"github.com/danoh/steptutor/ent/predicate"
	"github.com/google/uuid"
)

// PDFUpdate is the builder for updating PDF entities.
type PDFUpdate struct {
	config
	hooks    []Hook
	mutation *PDFMutation
}

// Where appends a list predicates to the PDFUpdate builder.
func (_u *PDFUpdate) Where(ps ...predicate.PDF) *PDFUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *PDFUpdate) SetFilename(v string) *PDFUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *PDFUpdate) SetNillableFilename(v *string) *PDFUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *PDFUpdate) SetURL(v string) *PDFUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *PDFUpdate) SetNillableURL(v *string) *PDFUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetDigest sets the "digest" field.
func (_u *PDFUpdate) SetDigest(v string) *PDFUpdate {
	_u.mutation.SetDigest(v)
	return _u
}

// SetNillableDigest sets the "digest" field if the given value is not nil.
func (_u *PDFUpdate) SetNillableDigest(v *string) *PDFUpdate {
	if v != nil {
		_u.SetDigest(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *PDFUpdate) SetSizeBytes(v int64) *PDFUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *PDFUpdate) SetNillableSizeBytes(v *int64) *PDFUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *PDFUpdate) AddSizeBytes(v int64) *PDFUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetRagStatus sets the "rag_status" field.
func (_u *PDFUpdate) SetRagStatus(v pdf.RagStatus) *PDFUpdate {
	_u.mutation.SetRagStatus(v)
	return _u
}

// SetNillableRagStatus sets the "rag_status" field if the given value is not nil.
func (_u *PDFUpdate) SetNillableRagStatus(v *pdf.RagStatus) *PDFUpdate {
	if v != nil {
		_u.SetRagStatus(*v)
	}
	return _u
}

// SetFolderID sets the "folder" edge to the Folder entity by ID.
func (_u *PDFUpdate) SetFolderID(id uuid.UUID) *PDFUpdate {
	_u.mutation.SetFolderID(id)
	return _u
}

// SetFolder sets the "folder" edge to the Folder entity.
func (_u *PDFUpdate) SetFolder(v *Folder) *PDFUpdate {
	return _u.SetFolderID(v.ID)
}

// AddChunkIDs adds the "chunks" edge to the Chunk entity by IDs.
func (_u *PDFUpdate) AddChunkIDs(ids ...int) *PDFUpdate {
	_u.mutation.AddChunkIDs(ids...)
	return _u
}

// AddChunks adds the "chunks" edges to the Chunk entity.
func (_u *PDFUpdate) AddChunks(v ...*Chunk) *PDFUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChunkIDs(ids...)
}

// Mutation returns the PDFMutation object of the builder.
func (_u *PDFUpdate) Mutation() *PDFMutation {
	return _u.mutation
}

// ClearFolder clears the "folder" edge to the Folder entity.
func (_u *PDFUpdate) ClearFolder() *PDFUpdate {
	_u.mutation.ClearFolder()
	return _u
}

// ClearChunks clears all "chunks" edges to the Chunk entity.
func (_u *PDFUpdate) ClearChunks() *PDFUpdate {
	_u.mutation.ClearChunks()
	return _u
}

// RemoveChunkIDs removes the "chunks" edge to Chunk entities by IDs.
func (_u *PDFUpdate) RemoveChunkIDs(ids ...int) *PDFUpdate {
	_u.mutation.RemoveChunkIDs(ids...)
	return _u
}

// RemoveChunks removes "chunks" edges to Chunk entities.
func (_u *PDFUpdate) RemoveChunks(v ...*Chunk) *PDFUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChunkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PDFUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PDFUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PDFUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PDFUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PDFUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := pdf.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "PDF.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RagStatus(); ok {
		if err := pdf.RagStatusValidator(v); err != nil {
			return &ValidationError{Name: "rag_status", err: fmt.Errorf(`ent: validator failed for field "PDF.rag_status": %w`, err)}
		}
	}
	if _u.mutation.FolderCleared() && len(_u.mutation.FolderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PDF.folder"`)
	}
	return nil
}

func (_u *PDFUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pdf.Table, pdf.Columns, sqlgraph.NewFieldSpec(pdf.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(pdf.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(pdf.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Digest(); ok {
		_spec.SetField(pdf.FieldDigest, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(pdf.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(pdf.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RagStatus(); ok {
		_spec.SetField(pdf.FieldRagStatus, field.TypeEnum, value)
	}
	if _u.mutation.FolderCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FolderIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChunksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChunksIDs(); len(nodes) > 0 && !_u.mutation.ChunksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pdf.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PDFUpdateOne is the builder for updating a single PDF entity.
type PDFUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PDFMutation
}

// SetFilename sets the "filename" field.
func (_u *PDFUpdateOne) SetFilename(v string) *PDFUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *PDFUpdateOne) SetNillableFilename(v *string) *PDFUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *PDFUpdateOne) SetURL(v string) *PDFUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *PDFUpdateOne) SetNillableURL(v *string) *PDFUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetDigest sets the "digest" field.
func (_u *PDFUpdateOne) SetDigest(v string) *PDFUpdateOne {
	_u.mutation.SetDigest(v)
	return _u
}

// SetNillableDigest sets the "digest" field if the given value is not nil.
func (_u *PDFUpdateOne) SetNillableDigest(v *string) *PDFUpdateOne {
	if v != nil {
		_u.SetDigest(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *PDFUpdateOne) SetSizeBytes(v int64) *PDFUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *PDFUpdateOne) SetNillableSizeBytes(v *int64) *PDFUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *PDFUpdateOne) AddSizeBytes(v int64) *PDFUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetRagStatus sets the "rag_status" field.
func (_u *PDFUpdateOne) SetRagStatus(v pdf.RagStatus) *PDFUpdateOne {
	_u.mutation.SetRagStatus(v)
	return _u
}

// SetNillableRagStatus sets the "rag_status" field if the given value is not nil.
func (_u *PDFUpdateOne) SetNillableRagStatus(v *pdf.RagStatus) *PDFUpdateOne {
	if v != nil {
		_u.SetRagStatus(*v)
	}
	return _u
}

// SetFolderID sets the "folder" edge to the Folder entity by ID.
func (_u *PDFUpdateOne) SetFolderID(id uuid.UUID) *PDFUpdateOne {
	_u.mutation.SetFolderID(id)
	return _u
}

// SetFolder sets the "folder" edge to the Folder entity.
func (_u *PDFUpdateOne) SetFolder(v *Folder) *PDFUpdateOne {
	return _u.SetFolderID(v.ID)
}

// AddChunkIDs adds the "chunks" edge to the Chunk entity by IDs.
func (_u *PDFUpdateOne) AddChunkIDs(ids ...int) *PDFUpdateOne {
	_u.mutation.AddChunkIDs(ids...)
	return _u
}

// AddChunks adds the "chunks" edges to the Chunk entity.
func (_u *PDFUpdateOne) AddChunks(v ...*Chunk) *PDFUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChunkIDs(ids...)
}

// Mutation returns the PDFMutation object of the builder.
func (_u *PDFUpdateOne) Mutation() *PDFMutation {
	return _u.mutation
}

// ClearFolder clears the "folder" edge to the Folder entity.
func (_u *PDFUpdateOne) ClearFolder() *PDFUpdateOne {
	_u.mutation.ClearFolder()
	return _u
}

// ClearChunks clears all "chunks" edges to the Chunk entity.
func (_u *PDFUpdateOne) ClearChunks() *PDFUpdateOne {
	_u.mutation.ClearChunks()
	return _u
}

// RemoveChunkIDs removes the "chunks" edge to Chunk entities by IDs.
func (_u *PDFUpdateOne) RemoveChunkIDs(ids ...int) *PDFUpdateOne {
	_u.mutation.RemoveChunkIDs(ids...)
	return _u
}

// RemoveChunks removes "chunks" edges to Chunk entities.
func (_u *PDFUpdateOne) RemoveChunks(v ...*Chunk) *PDFUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChunkIDs(ids...)
}

// Where appends a list predicates to the PDFUpdate builder.
func (_u *PDFUpdateOne) Where(ps ...predicate.PDF) *PDFUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PDFUpdateOne) Select(field string, fields ...string) *PDFUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PDF entity.
func (_u *PDFUpdateOne) Save(ctx context.Context) (*PDF, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PDFUpdateOne) SaveX(ctx context.Context) *PDF {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PDFUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PDFUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PDFUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := pdf.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "PDF.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RagStatus(); ok {
		if err := pdf.RagStatusValidator(v); err != nil {
			return &ValidationError{Name: "rag_status", err: fmt.Errorf(`ent: validator failed for field "PDF.rag_status": %w`, err)}
		}
	}
	if _u.mutation.FolderCleared() && len(_u.mutation.FolderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PDF.folder"`)
	}
	return nil
}

func (_u *PDFUpdateOne) sqlSave(ctx context.Context) (_node *PDF, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pdf.Table, pdf.Columns, sqlgraph.NewFieldSpec(pdf.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PDF.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pdf.FieldID)
		for _, f := range fields {
			if !pdf.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pdf.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(pdf.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(pdf.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Digest(); ok {
		_spec.SetField(pdf.FieldDigest, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(pdf.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(pdf.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RagStatus(); ok {
		_spec.SetField(pdf.FieldRagStatus, field.TypeEnum, value)
	}
	if _u.mutation.FolderCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FolderIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChunksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChunksIDs(); len(nodes) > 0 && !_u.mutation.ChunksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PDF{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pdf.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
