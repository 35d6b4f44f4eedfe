// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/netvendor/creditintake/ent/application"
	"github.com/netvendor/creditintake/ent/vendorform"
)

// VendorFormCreate is the builder for creating a VendorForm entity.
type VendorFormCreate struct {
	config
	mutation *VendorFormMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (vfc *VendorFormCreate) SetCreatedAt(t time.Time) *VendorFormCreate {
	vfc.mutation.SetCreatedAt(t)
	return vfc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (vfc *VendorFormCreate) SetNillableCreatedAt(t *time.Time) *VendorFormCreate {
	if t != nil {
		vfc.SetCreatedAt(*t)
	}
	return vfc
}

// SetUpdatedAt sets the "updated_at" field.
func (vfc *VendorFormCreate) SetUpdatedAt(t time.Time) *VendorFormCreate {
	vfc.mutation.SetUpdatedAt(t)
	return vfc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (vfc *VendorFormCreate) SetNillableUpdatedAt(t *time.Time) *VendorFormCreate {
	if t != nil {
		vfc.SetUpdatedAt(*t)
	}
	return vfc
}

// SetFileName sets the "file_name" field.
func (vfc *VendorFormCreate) SetFileName(s string) *VendorFormCreate {
	vfc.mutation.SetFileName(s)
	return vfc
}

// SetStorageURL sets the "storage_url" field.
func (vfc *VendorFormCreate) SetStorageURL(s string) *VendorFormCreate {
	vfc.mutation.SetStorageURL(s)
	return vfc
}

// SetMimeType sets the "mime_type" field.
func (vfc *VendorFormCreate) SetMimeType(s string) *VendorFormCreate {
	vfc.mutation.SetMimeType(s)
	return vfc
}

// SetByteSize sets the "byte_size" field.
func (vfc *VendorFormCreate) SetByteSize(i int64) *VendorFormCreate {
	vfc.mutation.SetByteSize(i)
	return vfc
}

// SetID sets the "id" field.
func (vfc *VendorFormCreate) SetID(u uuid.UUID) *VendorFormCreate {
	vfc.mutation.SetID(u)
	return vfc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (vfc *VendorFormCreate) SetNillableID(u *uuid.UUID) *VendorFormCreate {
	if u != nil {
		vfc.SetID(*u)
	}
	return vfc
}

// SetApplicationID sets the "application" edge to the Application entity by ID.
func (vfc *VendorFormCreate) SetApplicationID(id uuid.UUID) *VendorFormCreate {
	vfc.mutation.SetApplicationID(id)
	return vfc
}

// SetNillableApplicationID sets the "application" edge to the Application entity by ID if the given value is not nil.
func (vfc *VendorFormCreate) SetNillableApplicationID(id *uuid.UUID) *VendorFormCreate {
	if id != nil {
		vfc = vfc.SetApplicationID(*id)
	}
	return vfc
}

// SetApplication sets the "application" edge to the Application entity.
func (vfc *VendorFormCreate) SetApplication(a *Application) *VendorFormCreate {
	return vfc.SetApplicationID(a.ID)
}

// Mutation returns the VendorFormMutation object of the builder.
func (vfc *VendorFormCreate) Mutation() *VendorFormMutation {
	return vfc.mutation
}

// Save creates the VendorForm in the database.
func (vfc *VendorFormCreate) Save(ctx context.Context) (*VendorForm, error) {
	vfc.defaults()
	return withHooks(ctx, vfc.sqlSave, vfc.mutation, vfc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (vfc *VendorFormCreate) SaveX(ctx context.Context) *VendorForm {
	v, err := vfc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (vfc *VendorFormCreate) Exec(ctx context.Context) error {
	_, err := vfc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vfc *VendorFormCreate) ExecX(ctx context.Context) {
	if err := vfc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (vfc *VendorFormCreate) defaults() {
	if _, ok := vfc.mutation.CreatedAt(); !ok {
		v := vendorform.DefaultCreatedAt()
		vfc.mutation.SetCreatedAt(v)
	}
	if _, ok := vfc.mutation.UpdatedAt(); !ok {
		v := vendorform.DefaultUpdatedAt()
		vfc.mutation.SetUpdatedAt(v)
	}
	if _, ok := vfc.mutation.ID(); !ok {
		v := vendorform.DefaultID()
		vfc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vfc *VendorFormCreate) check() error {
	if _, ok := vfc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VendorForm.created_at"`)}
	}
	if _, ok := vfc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "VendorForm.updated_at"`)}
	}
	if _, ok := vfc.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "VendorForm.file_name"`)}
	}
	if v, ok := vfc.mutation.FileName(); ok {
		if err := vendorform.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "VendorForm.file_name": %w`, err)}
		}
	}
	if _, ok := vfc.mutation.StorageURL(); !ok {
		return &ValidationError{Name: "storage_url", err: errors.New(`ent: missing required field "VendorForm.storage_url"`)}
	}
	if v, ok := vfc.mutation.StorageURL(); ok {
		if err := vendorform.StorageURLValidator(v); err != nil {
			return &ValidationError{Name: "storage_url", err: fmt.Errorf(`ent: validator failed for field "VendorForm.storage_url": %w`, err)}
		}
	}
	if _, ok := vfc.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "VendorForm.mime_type"`)}
	}
	if v, ok := vfc.mutation.MimeType(); ok {
		if err := vendorform.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "VendorForm.mime_type": %w`, err)}
		}
	}
	if _, ok := vfc.mutation.ByteSize(); !ok {
		return &ValidationError{Name: "byte_size", err: errors.New(`ent: missing required field "VendorForm.byte_size"`)}
	}
	return nil
}

func (vfc *VendorFormCreate) sqlSave(ctx context.Context) (*VendorForm, error) {
	if err := vfc.check(); err != nil {
		return nil, err
	}
	_node, _spec := vfc.createSpec()
	if err := sqlgraph.CreateNode(ctx, vfc.driver, _spec); err != nil {
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
	vfc.mutation.id = &_node.ID
	vfc.mutation.done = true
	return _node, nil
}

func (vfc *VendorFormCreate) createSpec() (*VendorForm, *sqlgraph.CreateSpec) {
	var (
		_node = &VendorForm{config: vfc.config}
		_spec = sqlgraph.NewCreateSpec(vendorform.Table, sqlgraph.NewFieldSpec(vendorform.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = vfc.conflict
	if id, ok := vfc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := vfc.mutation.CreatedAt(); ok {
		_spec.SetField(vendorform.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := vfc.mutation.UpdatedAt(); ok {
		_spec.SetField(vendorform.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := vfc.mutation.FileName(); ok {
		_spec.SetField(vendorform.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := vfc.mutation.StorageURL(); ok {
		_spec.SetField(vendorform.FieldStorageURL, field.TypeString, value)
		_node.StorageURL = value
	}
	if value, ok := vfc.mutation.MimeType(); ok {
		_spec.SetField(vendorform.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := vfc.mutation.ByteSize(); ok {
		_spec.SetField(vendorform.FieldByteSize, field.TypeInt64, value)
		_node.ByteSize = value
	}
	if nodes := vfc.mutation.ApplicationIDs(); len(nodes) > 0 {
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
		_node.application_vendor_forms = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VendorForm.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VendorFormUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (vfc *VendorFormCreate) OnConflict(opts ...sql.ConflictOption) *VendorFormUpsertOne {
	vfc.conflict = opts
	return &VendorFormUpsertOne{
		create: vfc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VendorForm.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (vfc *VendorFormCreate) OnConflictColumns(columns ...string) *VendorFormUpsertOne {
	vfc.conflict = append(vfc.conflict, sql.ConflictColumns(columns...))
	return &VendorFormUpsertOne{
		create: vfc,
	}
}

type (
	// VendorFormUpsertOne is the builder for "upsert"-ing
	//  one VendorForm node.
	VendorFormUpsertOne struct {
		create *VendorFormCreate
	}

	// VendorFormUpsert is the "OnConflict" setter.
	VendorFormUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *VendorFormUpsert) SetUpdatedAt(v time.Time) *VendorFormUpsert {
	u.Set(vendorform.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VendorFormUpsert) UpdateUpdatedAt() *VendorFormUpsert {
	u.SetExcluded(vendorform.FieldUpdatedAt)
	return u
}

// SetFileName sets the "file_name" field.
func (u *VendorFormUpsert) SetFileName(v string) *VendorFormUpsert {
	u.Set(vendorform.FieldFileName, v)
	return u
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *VendorFormUpsert) UpdateFileName() *VendorFormUpsert {
	u.SetExcluded(vendorform.FieldFileName)
	return u
}

// SetStorageURL sets the "storage_url" field.
func (u *VendorFormUpsert) SetStorageURL(v string) *VendorFormUpsert {
	u.Set(vendorform.FieldStorageURL, v)
	return u
}

// UpdateStorageURL sets the "storage_url" field to the value that was provided on create.
func (u *VendorFormUpsert) UpdateStorageURL() *VendorFormUpsert {
	u.SetExcluded(vendorform.FieldStorageURL)
	return u
}

// SetMimeType sets the "mime_type" field.
func (u *VendorFormUpsert) SetMimeType(v string) *VendorFormUpsert {
	u.Set(vendorform.FieldMimeType, v)
	return u
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *VendorFormUpsert) UpdateMimeType() *VendorFormUpsert {
	u.SetExcluded(vendorform.FieldMimeType)
	return u
}

// SetByteSize sets the "byte_size" field.
func (u *VendorFormUpsert) SetByteSize(v int64) *VendorFormUpsert {
	u.Set(vendorform.FieldByteSize, v)
	return u
}

// UpdateByteSize sets the "byte_size" field to the value that was provided on create.
func (u *VendorFormUpsert) UpdateByteSize() *VendorFormUpsert {
	u.SetExcluded(vendorform.FieldByteSize)
	return u
}

// AddByteSize adds v to the "byte_size" field.
func (u *VendorFormUpsert) AddByteSize(v int64) *VendorFormUpsert {
	u.Add(vendorform.FieldByteSize, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.VendorForm.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(vendorform.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VendorFormUpsertOne) UpdateNewValues() *VendorFormUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(vendorform.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(vendorform.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VendorForm.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VendorFormUpsertOne) Ignore() *VendorFormUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VendorFormUpsertOne) DoNothing() *VendorFormUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VendorFormCreate.OnConflict
// documentation for more info.
func (u *VendorFormUpsertOne) Update(set func(*VendorFormUpsert)) *VendorFormUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VendorFormUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VendorFormUpsertOne) SetUpdatedAt(v time.Time) *VendorFormUpsertOne {
	return u.Update(func(s *VendorFormUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VendorFormUpsertOne) UpdateUpdatedAt() *VendorFormUpsertOne {
	return u.Update(func(s *VendorFormUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetFileName sets the "file_name" field.
func (u *VendorFormUpsertOne) SetFileName(v string) *VendorFormUpsertOne {
	return u.Update(func(s *VendorFormUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *VendorFormUpsertOne) UpdateFileName() *VendorFormUpsertOne {
	return u.Update(func(s *VendorFormUpsert) {
		s.UpdateFileName()
	})
}

// SetStorageURL sets the "storage_url" field.
func (u *VendorFormUpsertOne) SetStorageURL(v string) *VendorFormUpsertOne {
	return u.Update(func(s *VendorFormUpsert) {
		s.SetStorageURL(v)
	})
}

// UpdateStorageURL sets the "storage_url" field to the value that was provided on create.
func (u *VendorFormUpsertOne) UpdateStorageURL() *VendorFormUpsertOne {
	return u.Update(func(s *VendorFormUpsert) {
		s.UpdateStorageURL()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *VendorFormUpsertOne) SetMimeType(v string) *VendorFormUpsertOne {
	return u.Update(func(s *VendorFormUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *VendorFormUpsertOne) UpdateMimeType() *VendorFormUpsertOne {
	return u.Update(func(s *VendorFormUpsert) {
		s.UpdateMimeType()
	})
}

// SetByteSize sets the "byte_size" field.
func (u *VendorFormUpsertOne) SetByteSize(v int64) *VendorFormUpsertOne {
	return u.Update(func(s *VendorFormUpsert) {
		s.SetByteSize(v)
	})
}

// AddByteSize adds v to the "byte_size" field.
func (u *VendorFormUpsertOne) AddByteSize(v int64) *VendorFormUpsertOne {
	return u.Update(func(s *VendorFormUpsert) {
		s.AddByteSize(v)
	})
}

// UpdateByteSize sets the "byte_size" field to the value that was provided on create.
func (u *VendorFormUpsertOne) UpdateByteSize() *VendorFormUpsertOne {
	return u.Update(func(s *VendorFormUpsert) {
		s.UpdateByteSize()
	})
}

// Exec executes the query.
func (u *VendorFormUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VendorFormCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VendorFormUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VendorFormUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: VendorFormUpsertOne.ID is not supported by MySQL driver. Use VendorFormUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VendorFormUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VendorFormCreateBulk is the builder for creating many VendorForm entities in bulk.
type VendorFormCreateBulk struct {
	config
	err      error
	builders []*VendorFormCreate
	conflict []sql.ConflictOption
}

// Save creates the VendorForm entities in the database.
func (vfcb *VendorFormCreateBulk) Save(ctx context.Context) ([]*VendorForm, error) {
	if vfcb.err != nil {
		return nil, vfcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(vfcb.builders))
	nodes := make([]*VendorForm, len(vfcb.builders))
	mutators := make([]Mutator, len(vfcb.builders))
	for i := range vfcb.builders {
		func(i int, root context.Context) {
			builder := vfcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VendorFormMutation)
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
					_, err = mutators[i+1].Mutate(root, vfcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = vfcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, vfcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, vfcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (vfcb *VendorFormCreateBulk) SaveX(ctx context.Context) []*VendorForm {
	v, err := vfcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (vfcb *VendorFormCreateBulk) Exec(ctx context.Context) error {
	_, err := vfcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vfcb *VendorFormCreateBulk) ExecX(ctx context.Context) {
	if err := vfcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VendorForm.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VendorFormUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (vfcb *VendorFormCreateBulk) OnConflict(opts ...sql.ConflictOption) *VendorFormUpsertBulk {
	vfcb.conflict = opts
	return &VendorFormUpsertBulk{
		create: vfcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VendorForm.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (vfcb *VendorFormCreateBulk) OnConflictColumns(columns ...string) *VendorFormUpsertBulk {
	vfcb.conflict = append(vfcb.conflict, sql.ConflictColumns(columns...))
	return &VendorFormUpsertBulk{
		create: vfcb,
	}
}

// VendorFormUpsertBulk is the builder for "upsert"-ing
// a bulk of VendorForm nodes.
type VendorFormUpsertBulk struct {
	create *VendorFormCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.VendorForm.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(vendorform.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VendorFormUpsertBulk) UpdateNewValues() *VendorFormUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(vendorform.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(vendorform.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VendorForm.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VendorFormUpsertBulk) Ignore() *VendorFormUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VendorFormUpsertBulk) DoNothing() *VendorFormUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VendorFormCreateBulk.OnConflict
// documentation for more info.
func (u *VendorFormUpsertBulk) Update(set func(*VendorFormUpsert)) *VendorFormUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VendorFormUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VendorFormUpsertBulk) SetUpdatedAt(v time.Time) *VendorFormUpsertBulk {
	return u.Update(func(s *VendorFormUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VendorFormUpsertBulk) UpdateUpdatedAt() *VendorFormUpsertBulk {
	return u.Update(func(s *VendorFormUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetFileName sets the "file_name" field.
func (u *VendorFormUpsertBulk) SetFileName(v string) *VendorFormUpsertBulk {
	return u.Update(func(s *VendorFormUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *VendorFormUpsertBulk) UpdateFileName() *VendorFormUpsertBulk {
	return u.Update(func(s *VendorFormUpsert) {
		s.UpdateFileName()
	})
}

// SetStorageURL sets the "storage_url" field.
func (u *VendorFormUpsertBulk) SetStorageURL(v string) *VendorFormUpsertBulk {
	return u.Update(func(s *VendorFormUpsert) {
		s.SetStorageURL(v)
	})
}

// UpdateStorageURL sets the "storage_url" field to the value that was provided on create.
func (u *VendorFormUpsertBulk) UpdateStorageURL() *VendorFormUpsertBulk {
	return u.Update(func(s *VendorFormUpsert) {
		s.UpdateStorageURL()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *VendorFormUpsertBulk) SetMimeType(v string) *VendorFormUpsertBulk {
	return u.Update(func(s *VendorFormUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *VendorFormUpsertBulk) UpdateMimeType() *VendorFormUpsertBulk {
	return u.Update(func(s *VendorFormUpsert) {
		s.UpdateMimeType()
	})
}

// SetByteSize sets the "byte_size" field.
func (u *VendorFormUpsertBulk) SetByteSize(v int64) *VendorFormUpsertBulk {
	return u.Update(func(s *VendorFormUpsert) {
		s.SetByteSize(v)
	})
}

// AddByteSize adds v to the "byte_size" field.
func (u *VendorFormUpsertBulk) AddByteSize(v int64) *VendorFormUpsertBulk {
	return u.Update(func(s *VendorFormUpsert) {
		s.AddByteSize(v)
	})
}

// UpdateByteSize sets the "byte_size" field to the value that was provided on create.
func (u *VendorFormUpsertBulk) UpdateByteSize() *VendorFormUpsertBulk {
	return u.Update(func(s *VendorFormUpsert) {
		s.UpdateByteSize()
	})
}

// Exec executes the query.
func (u *VendorFormUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the VendorFormCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VendorFormCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VendorFormUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
