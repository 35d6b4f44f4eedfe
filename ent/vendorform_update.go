// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/netvendor/creditintake/ent/application"
	"github.com/netvendor/creditintake/ent/predicate"
	"github.com/netvendor/creditintake/ent/vendorform"
)

// VendorFormUpdate is the builder for updating VendorForm entities.
type VendorFormUpdate struct {
	config
	hooks    []Hook
	mutation *VendorFormMutation
}

// Where appends a list predicates to the VendorFormUpdate builder.
func (vfu *VendorFormUpdate) Where(ps ...predicate.VendorForm) *VendorFormUpdate {
	vfu.mutation.Where(ps...)
	return vfu
}

// SetUpdatedAt sets the "updated_at" field.
func (vfu *VendorFormUpdate) SetUpdatedAt(t time.Time) *VendorFormUpdate {
	vfu.mutation.SetUpdatedAt(t)
	return vfu
}

// SetFileName sets the "file_name" field.
func (vfu *VendorFormUpdate) SetFileName(s string) *VendorFormUpdate {
	vfu.mutation.SetFileName(s)
	return vfu
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (vfu *VendorFormUpdate) SetNillableFileName(s *string) *VendorFormUpdate {
	if s != nil {
		vfu.SetFileName(*s)
	}
	return vfu
}

// SetStorageURL sets the "storage_url" field.
func (vfu *VendorFormUpdate) SetStorageURL(s string) *VendorFormUpdate {
	vfu.mutation.SetStorageURL(s)
	return vfu
}

// SetNillableStorageURL sets the "storage_url" field if the given value is not nil.
func (vfu *VendorFormUpdate) SetNillableStorageURL(s *string) *VendorFormUpdate {
	if s != nil {
		vfu.SetStorageURL(*s)
	}
	return vfu
}

// SetMimeType sets the "mime_type" field.
func (vfu *VendorFormUpdate) SetMimeType(s string) *VendorFormUpdate {
	vfu.mutation.SetMimeType(s)
	return vfu
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (vfu *VendorFormUpdate) SetNillableMimeType(s *string) *VendorFormUpdate {
	if s != nil {
		vfu.SetMimeType(*s)
	}
	return vfu
}

// SetByteSize sets the "byte_size" field.
func (vfu *VendorFormUpdate) SetByteSize(i int64) *VendorFormUpdate {
	vfu.mutation.ResetByteSize()
	vfu.mutation.SetByteSize(i)
	return vfu
}

// SetNillableByteSize sets the "byte_size" field if the given value is not nil.
func (vfu *VendorFormUpdate) SetNillableByteSize(i *int64) *VendorFormUpdate {
	if i != nil {
		vfu.SetByteSize(*i)
	}
	return vfu
}

// AddByteSize adds i to the "byte_size" field.
func (vfu *VendorFormUpdate) AddByteSize(i int64) *VendorFormUpdate {
	vfu.mutation.AddByteSize(i)
	return vfu
}

// SetApplicationID sets the "application" edge to the Application entity by ID.
func (vfu *VendorFormUpdate) SetApplicationID(id uuid.UUID) *VendorFormUpdate {
	vfu.mutation.SetApplicationID(id)
	return vfu
}

// SetNillableApplicationID sets the "application" edge to the Application entity by ID if the given value is not nil.
func (vfu *VendorFormUpdate) SetNillableApplicationID(id *uuid.UUID) *VendorFormUpdate {
	if id != nil {
		vfu = vfu.SetApplicationID(*id)
	}
	return vfu
}

// SetApplication sets the "application" edge to the Application entity.
func (vfu *VendorFormUpdate) SetApplication(a *Application) *VendorFormUpdate {
	return vfu.SetApplicationID(a.ID)
}

// Mutation returns the VendorFormMutation object of the builder.
func (vfu *VendorFormUpdate) Mutation() *VendorFormMutation {
	return vfu.mutation
}

// ClearApplication clears the "application" edge to the Application entity.
func (vfu *VendorFormUpdate) ClearApplication() *VendorFormUpdate {
	vfu.mutation.ClearApplication()
	return vfu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (vfu *VendorFormUpdate) Save(ctx context.Context) (int, error) {
	vfu.defaults()
	return withHooks(ctx, vfu.sqlSave, vfu.mutation, vfu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (vfu *VendorFormUpdate) SaveX(ctx context.Context) int {
	affected, err := vfu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (vfu *VendorFormUpdate) Exec(ctx context.Context) error {
	_, err := vfu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vfu *VendorFormUpdate) ExecX(ctx context.Context) {
	if err := vfu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (vfu *VendorFormUpdate) defaults() {
	if _, ok := vfu.mutation.UpdatedAt(); !ok {
		v := vendorform.UpdateDefaultUpdatedAt()
		vfu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vfu *VendorFormUpdate) check() error {
	if v, ok := vfu.mutation.FileName(); ok {
		if err := vendorform.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "VendorForm.file_name": %w`, err)}
		}
	}
	if v, ok := vfu.mutation.StorageURL(); ok {
		if err := vendorform.StorageURLValidator(v); err != nil {
			return &ValidationError{Name: "storage_url", err: fmt.Errorf(`ent: validator failed for field "VendorForm.storage_url": %w`, err)}
		}
	}
	if v, ok := vfu.mutation.MimeType(); ok {
		if err := vendorform.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "VendorForm.mime_type": %w`, err)}
		}
	}
	return nil
}

func (vfu *VendorFormUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := vfu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(vendorform.Table, vendorform.Columns, sqlgraph.NewFieldSpec(vendorform.FieldID, field.TypeUUID))
	if ps := vfu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := vfu.mutation.UpdatedAt(); ok {
		_spec.SetField(vendorform.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := vfu.mutation.FileName(); ok {
		_spec.SetField(vendorform.FieldFileName, field.TypeString, value)
	}
	if value, ok := vfu.mutation.StorageURL(); ok {
		_spec.SetField(vendorform.FieldStorageURL, field.TypeString, value)
	}
	if value, ok := vfu.mutation.MimeType(); ok {
		_spec.SetField(vendorform.FieldMimeType, field.TypeString, value)
	}
	if value, ok := vfu.mutation.ByteSize(); ok {
		_spec.SetField(vendorform.FieldByteSize, field.TypeInt64, value)
	}
	if value, ok := vfu.mutation.AddedByteSize(); ok {
		_spec.AddField(vendorform.FieldByteSize, field.TypeInt64, value)
	}
	if vfu.mutation.ApplicationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vendorform.ApplicationTable,
			Columns: []string{vendorform.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := vfu.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vendorform.ApplicationTable,
			Columns: []string{vendorform.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, vfu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vendorform.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	vfu.mutation.done = true
	return n, nil
}

// VendorFormUpdateOne is the builder for updating a single VendorForm entity.
type VendorFormUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VendorFormMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (vfuo *VendorFormUpdateOne) SetUpdatedAt(t time.Time) *VendorFormUpdateOne {
	vfuo.mutation.SetUpdatedAt(t)
	return vfuo
}

// SetFileName sets the "file_name" field.
func (vfuo *VendorFormUpdateOne) SetFileName(s string) *VendorFormUpdateOne {
	vfuo.mutation.SetFileName(s)
	return vfuo
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (vfuo *VendorFormUpdateOne) SetNillableFileName(s *string) *VendorFormUpdateOne {
	if s != nil {
		vfuo.SetFileName(*s)
	}
	return vfuo
}

// SetStorageURL sets the "storage_url" field.
func (vfuo *VendorFormUpdateOne) SetStorageURL(s string) *VendorFormUpdateOne {
	vfuo.mutation.SetStorageURL(s)
	return vfuo
}

// SetNillableStorageURL sets the "storage_url" field if the given value is not nil.
func (vfuo *VendorFormUpdateOne) SetNillableStorageURL(s *string) *VendorFormUpdateOne {
	if s != nil {
		vfuo.SetStorageURL(*s)
	}
	return vfuo
}

// SetMimeType sets the "mime_type" field.
func (vfuo *VendorFormUpdateOne) SetMimeType(s string) *VendorFormUpdateOne {
	vfuo.mutation.SetMimeType(s)
	return vfuo
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (vfuo *VendorFormUpdateOne) SetNillableMimeType(s *string) *VendorFormUpdateOne {
	if s != nil {
		vfuo.SetMimeType(*s)
	}
	return vfuo
}

// SetByteSize sets the "byte_size" field.
func (vfuo *VendorFormUpdateOne) SetByteSize(i int64) *VendorFormUpdateOne {
	vfuo.mutation.ResetByteSize()
	vfuo.mutation.SetByteSize(i)
	return vfuo
}

// SetNillableByteSize sets the "byte_size" field if the given value is not nil.
func (vfuo *VendorFormUpdateOne) SetNillableByteSize(i *int64) *VendorFormUpdateOne {
	if i != nil {
		vfuo.SetByteSize(*i)
	}
	return vfuo
}

// AddByteSize adds i to the "byte_size" field.
func (vfuo *VendorFormUpdateOne) AddByteSize(i int64) *VendorFormUpdateOne {
	vfuo.mutation.AddByteSize(i)
	return vfuo
}

// SetApplicationID sets the "application" edge to the Application entity by ID.
func (vfuo *VendorFormUpdateOne) SetApplicationID(id uuid.UUID) *VendorFormUpdateOne {
	vfuo.mutation.SetApplicationID(id)
	return vfuo
}

// SetNillableApplicationID sets the "application" edge to the Application entity by ID if the given value is not nil.
func (vfuo *VendorFormUpdateOne) SetNillableApplicationID(id *uuid.UUID) *VendorFormUpdateOne {
	if id != nil {
		vfuo = vfuo.SetApplicationID(*id)
	}
	return vfuo
}

// SetApplication sets the "application" edge to the Application entity.
func (vfuo *VendorFormUpdateOne) SetApplication(a *Application) *VendorFormUpdateOne {
	return vfuo.SetApplicationID(a.ID)
}

// Mutation returns the VendorFormMutation object of the builder.
func (vfuo *VendorFormUpdateOne) Mutation() *VendorFormMutation {
	return vfuo.mutation
}

// ClearApplication clears the "application" edge to the Application entity.
func (vfuo *VendorFormUpdateOne) ClearApplication() *VendorFormUpdateOne {
	vfuo.mutation.ClearApplication()
	return vfuo
}

// Where appends a list predicates to the VendorFormUpdate builder.
func (vfuo *VendorFormUpdateOne) Where(ps ...predicate.VendorForm) *VendorFormUpdateOne {
	vfuo.mutation.Where(ps...)
	return vfuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (vfuo *VendorFormUpdateOne) Select(field string, fields ...string) *VendorFormUpdateOne {
	vfuo.fields = append([]string{field}, fields...)
	return vfuo
}

// Save executes the query and returns the updated VendorForm entity.
func (vfuo *VendorFormUpdateOne) Save(ctx context.Context) (*VendorForm, error) {
	vfuo.defaults()
	return withHooks(ctx, vfuo.sqlSave, vfuo.mutation, vfuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (vfuo *VendorFormUpdateOne) SaveX(ctx context.Context) *VendorForm {
	node, err := vfuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (vfuo *VendorFormUpdateOne) Exec(ctx context.Context) error {
	_, err := vfuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vfuo *VendorFormUpdateOne) ExecX(ctx context.Context) {
	if err := vfuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (vfuo *VendorFormUpdateOne) defaults() {
	if _, ok := vfuo.mutation.UpdatedAt(); !ok {
		v := vendorform.UpdateDefaultUpdatedAt()
		vfuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vfuo *VendorFormUpdateOne) check() error {
	if v, ok := vfuo.mutation.FileName(); ok {
		if err := vendorform.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "VendorForm.file_name": %w`, err)}
		}
	}
	if v, ok := vfuo.mutation.StorageURL(); ok {
		if err := vendorform.StorageURLValidator(v); err != nil {
			return &ValidationError{Name: "storage_url", err: fmt.Errorf(`ent: validator failed for field "VendorForm.storage_url": %w`, err)}
		}
	}
	if v, ok := vfuo.mutation.MimeType(); ok {
		if err := vendorform.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "VendorForm.mime_type": %w`, err)}
		}
	}
	return nil
}

func (vfuo *VendorFormUpdateOne) sqlSave(ctx context.Context) (_node *VendorForm, err error) {
	if err := vfuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vendorform.Table, vendorform.Columns, sqlgraph.NewFieldSpec(vendorform.FieldID, field.TypeUUID))
	id, ok := vfuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VendorForm.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := vfuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vendorform.FieldID)
		for _, f := range fields {
			if !vendorform.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vendorform.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := vfuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := vfuo.mutation.UpdatedAt(); ok {
		_spec.SetField(vendorform.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := vfuo.mutation.FileName(); ok {
		_spec.SetField(vendorform.FieldFileName, field.TypeString, value)
	}
	if value, ok := vfuo.mutation.StorageURL(); ok {
		_spec.SetField(vendorform.FieldStorageURL, field.TypeString, value)
	}
	if value, ok := vfuo.mutation.MimeType(); ok {
		_spec.SetField(vendorform.FieldMimeType, field.TypeString, value)
	}
	if value, ok := vfuo.mutation.ByteSize(); ok {
		_spec.SetField(vendorform.FieldByteSize, field.TypeInt64, value)
	}
	if value, ok := vfuo.mutation.AddedByteSize(); ok {
		_spec.AddField(vendorform.FieldByteSize, field.TypeInt64, value)
	}
	if vfuo.mutation.ApplicationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vendorform.ApplicationTable,
			Columns: []string{vendorform.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := vfuo.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vendorform.ApplicationTable,
			Columns: []string{vendorform.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VendorForm{config: vfuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, vfuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vendorform.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	vfuo.mutation.done = true
	return _node, nil
}
