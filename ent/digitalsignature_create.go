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
	"github.com/netvendor/creditintake/ent/digitalsignature"
)

// DigitalSignatureCreate is the builder for creating a DigitalSignature entity.
type DigitalSignatureCreate struct {
	config
	mutation *DigitalSignatureMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (dsc *DigitalSignatureCreate) SetCreatedAt(t time.Time) *DigitalSignatureCreate {
	dsc.mutation.SetCreatedAt(t)
	return dsc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (dsc *DigitalSignatureCreate) SetNillableCreatedAt(t *time.Time) *DigitalSignatureCreate {
	if t != nil {
		dsc.SetCreatedAt(*t)
	}
	return dsc
}

// SetUpdatedAt sets the "updated_at" field.
func (dsc *DigitalSignatureCreate) SetUpdatedAt(t time.Time) *DigitalSignatureCreate {
	dsc.mutation.SetUpdatedAt(t)
	return dsc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (dsc *DigitalSignatureCreate) SetNillableUpdatedAt(t *time.Time) *DigitalSignatureCreate {
	if t != nil {
		dsc.SetUpdatedAt(*t)
	}
	return dsc
}

// SetApplicationID sets the "application_id" field.
func (dsc *DigitalSignatureCreate) SetApplicationID(u uuid.UUID) *DigitalSignatureCreate {
	dsc.mutation.SetApplicationID(u)
	return dsc
}

// SetSignerName sets the "signer_name" field.
func (dsc *DigitalSignatureCreate) SetSignerName(s string) *DigitalSignatureCreate {
	dsc.mutation.SetSignerName(s)
	return dsc
}

// SetSignerEmail sets the "signer_email" field.
func (dsc *DigitalSignatureCreate) SetSignerEmail(s string) *DigitalSignatureCreate {
	dsc.mutation.SetSignerEmail(s)
	return dsc
}

// SetSignatureImage sets the "signature_image" field.
func (dsc *DigitalSignatureCreate) SetSignatureImage(s string) *DigitalSignatureCreate {
	dsc.mutation.SetSignatureImage(s)
	return dsc
}

// SetSignatureHash sets the "signature_hash" field.
func (dsc *DigitalSignatureCreate) SetSignatureHash(s string) *DigitalSignatureCreate {
	dsc.mutation.SetSignatureHash(s)
	return dsc
}

// SetDocumentURL sets the "document_url" field.
func (dsc *DigitalSignatureCreate) SetDocumentURL(s string) *DigitalSignatureCreate {
	dsc.mutation.SetDocumentURL(s)
	return dsc
}

// SetSignedAt sets the "signed_at" field.
func (dsc *DigitalSignatureCreate) SetSignedAt(t time.Time) *DigitalSignatureCreate {
	dsc.mutation.SetSignedAt(t)
	return dsc
}

// SetID sets the "id" field.
func (dsc *DigitalSignatureCreate) SetID(u uuid.UUID) *DigitalSignatureCreate {
	dsc.mutation.SetID(u)
	return dsc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (dsc *DigitalSignatureCreate) SetNillableID(u *uuid.UUID) *DigitalSignatureCreate {
	if u != nil {
		dsc.SetID(*u)
	}
	return dsc
}

// SetApplication sets the "application" edge to the Application entity.
func (dsc *DigitalSignatureCreate) SetApplication(a *Application) *DigitalSignatureCreate {
	return dsc.SetApplicationID(a.ID)
}

// Mutation returns the DigitalSignatureMutation object of the builder.
func (dsc *DigitalSignatureCreate) Mutation() *DigitalSignatureMutation {
	return dsc.mutation
}

// Save creates the DigitalSignature in the database.
func (dsc *DigitalSignatureCreate) Save(ctx context.Context) (*DigitalSignature, error) {
	dsc.defaults()
	return withHooks(ctx, dsc.sqlSave, dsc.mutation, dsc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (dsc *DigitalSignatureCreate) SaveX(ctx context.Context) *DigitalSignature {
	v, err := dsc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dsc *DigitalSignatureCreate) Exec(ctx context.Context) error {
	_, err := dsc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dsc *DigitalSignatureCreate) ExecX(ctx context.Context) {
	if err := dsc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (dsc *DigitalSignatureCreate) defaults() {
	if _, ok := dsc.mutation.CreatedAt(); !ok {
		v := digitalsignature.DefaultCreatedAt()
		dsc.mutation.SetCreatedAt(v)
	}
	if _, ok := dsc.mutation.UpdatedAt(); !ok {
		v := digitalsignature.DefaultUpdatedAt()
		dsc.mutation.SetUpdatedAt(v)
	}
	if _, ok := dsc.mutation.ID(); !ok {
		v := digitalsignature.DefaultID()
		dsc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dsc *DigitalSignatureCreate) check() error {
	if _, ok := dsc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DigitalSignature.created_at"`)}
	}
	if _, ok := dsc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DigitalSignature.updated_at"`)}
	}
	if _, ok := dsc.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "DigitalSignature.application_id"`)}
	}
	if _, ok := dsc.mutation.SignerName(); !ok {
		return &ValidationError{Name: "signer_name", err: errors.New(`ent: missing required field "DigitalSignature.signer_name"`)}
	}
	if v, ok := dsc.mutation.SignerName(); ok {
		if err := digitalsignature.SignerNameValidator(v); err != nil {
			return &ValidationError{Name: "signer_name", err: fmt.Errorf(`ent: validator failed for field "DigitalSignature.signer_name": %w`, err)}
		}
	}
	if _, ok := dsc.mutation.SignerEmail(); !ok {
		return &ValidationError{Name: "signer_email", err: errors.New(`ent: missing required field "DigitalSignature.signer_email"`)}
	}
	if v, ok := dsc.mutation.SignerEmail(); ok {
		if err := digitalsignature.SignerEmailValidator(v); err != nil {
			return &ValidationError{Name: "signer_email", err: fmt.Errorf(`ent: validator failed for field "DigitalSignature.signer_email": %w`, err)}
		}
	}
	if _, ok := dsc.mutation.SignatureImage(); !ok {
		return &ValidationError{Name: "signature_image", err: errors.New(`ent: missing required field "DigitalSignature.signature_image"`)}
	}
	if _, ok := dsc.mutation.SignatureHash(); !ok {
		return &ValidationError{Name: "signature_hash", err: errors.New(`ent: missing required field "DigitalSignature.signature_hash"`)}
	}
	if v, ok := dsc.mutation.SignatureHash(); ok {
		if err := digitalsignature.SignatureHashValidator(v); err != nil {
			return &ValidationError{Name: "signature_hash", err: fmt.Errorf(`ent: validator failed for field "DigitalSignature.signature_hash": %w`, err)}
		}
	}
	if _, ok := dsc.mutation.DocumentURL(); !ok {
		return &ValidationError{Name: "document_url", err: errors.New(`ent: missing required field "DigitalSignature.document_url"`)}
	}
	if v, ok := dsc.mutation.DocumentURL(); ok {
		if err := digitalsignature.DocumentURLValidator(v); err != nil {
			return &ValidationError{Name: "document_url", err: fmt.Errorf(`ent: validator failed for field "DigitalSignature.document_url": %w`, err)}
		}
	}
	if _, ok := dsc.mutation.SignedAt(); !ok {
		return &ValidationError{Name: "signed_at", err: errors.New(`ent: missing required field "DigitalSignature.signed_at"`)}
	}
	if _, ok := dsc.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application", err: errors.New(`ent: missing required edge "DigitalSignature.application"`)}
	}
	return nil
}

func (dsc *DigitalSignatureCreate) sqlSave(ctx context.Context) (*DigitalSignature, error) {
	if err := dsc.check(); err != nil {
		return nil, err
	}
	_node, _spec := dsc.createSpec()
	if err := sqlgraph.CreateNode(ctx, dsc.driver, _spec); err != nil {
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
	dsc.mutation.id = &_node.ID
	dsc.mutation.done = true
	return _node, nil
}

func (dsc *DigitalSignatureCreate) createSpec() (*DigitalSignature, *sqlgraph.CreateSpec) {
	var (
		_node = &DigitalSignature{config: dsc.config}
		_spec = sqlgraph.NewCreateSpec(digitalsignature.Table, sqlgraph.NewFieldSpec(digitalsignature.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = dsc.conflict
	if id, ok := dsc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := dsc.mutation.CreatedAt(); ok {
		_spec.SetField(digitalsignature.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := dsc.mutation.UpdatedAt(); ok {
		_spec.SetField(digitalsignature.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := dsc.mutation.SignerName(); ok {
		_spec.SetField(digitalsignature.FieldSignerName, field.TypeString, value)
		_node.SignerName = value
	}
	if value, ok := dsc.mutation.SignerEmail(); ok {
		_spec.SetField(digitalsignature.FieldSignerEmail, field.TypeString, value)
		_node.SignerEmail = value
	}
	if value, ok := dsc.mutation.SignatureImage(); ok {
		_spec.SetField(digitalsignature.FieldSignatureImage, field.TypeString, value)
		_node.SignatureImage = value
	}
	if value, ok := dsc.mutation.SignatureHash(); ok {
		_spec.SetField(digitalsignature.FieldSignatureHash, field.TypeString, value)
		_node.SignatureHash = value
	}
	if value, ok := dsc.mutation.DocumentURL(); ok {
		_spec.SetField(digitalsignature.FieldDocumentURL, field.TypeString, value)
		_node.DocumentURL = value
	}
	if value, ok := dsc.mutation.SignedAt(); ok {
		_spec.SetField(digitalsignature.FieldSignedAt, field.TypeTime, value)
		_node.SignedAt = value
	}
	if nodes := dsc.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   digitalsignature.ApplicationTable,
			Columns: []string{digitalsignature.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ApplicationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DigitalSignature.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DigitalSignatureUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (dsc *DigitalSignatureCreate) OnConflict(opts ...sql.ConflictOption) *DigitalSignatureUpsertOne {
	dsc.conflict = opts
	return &DigitalSignatureUpsertOne{
		create: dsc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DigitalSignature.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (dsc *DigitalSignatureCreate) OnConflictColumns(columns ...string) *DigitalSignatureUpsertOne {
	dsc.conflict = append(dsc.conflict, sql.ConflictColumns(columns...))
	return &DigitalSignatureUpsertOne{
		create: dsc,
	}
}

type (
	// DigitalSignatureUpsertOne is the builder for "upsert"-ing
	//  one DigitalSignature node.
	DigitalSignatureUpsertOne struct {
		create *DigitalSignatureCreate
	}

	// DigitalSignatureUpsert is the "OnConflict" setter.
	DigitalSignatureUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DigitalSignatureUpsert) SetUpdatedAt(v time.Time) *DigitalSignatureUpsert {
	u.Set(digitalsignature.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DigitalSignatureUpsert) UpdateUpdatedAt() *DigitalSignatureUpsert {
	u.SetExcluded(digitalsignature.FieldUpdatedAt)
	return u
}

// SetApplicationID sets the "application_id" field.
func (u *DigitalSignatureUpsert) SetApplicationID(v uuid.UUID) *DigitalSignatureUpsert {
	u.Set(digitalsignature.FieldApplicationID, v)
	return u
}

// UpdateApplicationID sets the "application_id" field to the value that was provided on create.
func (u *DigitalSignatureUpsert) UpdateApplicationID() *DigitalSignatureUpsert {
	u.SetExcluded(digitalsignature.FieldApplicationID)
	return u
}

// SetSignerName sets the "signer_name" field.
func (u *DigitalSignatureUpsert) SetSignerName(v string) *DigitalSignatureUpsert {
	u.Set(digitalsignature.FieldSignerName, v)
	return u
}

// UpdateSignerName sets the "signer_name" field to the value that was provided on create.
func (u *DigitalSignatureUpsert) UpdateSignerName() *DigitalSignatureUpsert {
	u.SetExcluded(digitalsignature.FieldSignerName)
	return u
}

// SetSignerEmail sets the "signer_email" field.
func (u *DigitalSignatureUpsert) SetSignerEmail(v string) *DigitalSignatureUpsert {
	u.Set(digitalsignature.FieldSignerEmail, v)
	return u
}

// UpdateSignerEmail sets the "signer_email" field to the value that was provided on create.
func (u *DigitalSignatureUpsert) UpdateSignerEmail() *DigitalSignatureUpsert {
	u.SetExcluded(digitalsignature.FieldSignerEmail)
	return u
}

// SetSignatureImage sets the "signature_image" field.
func (u *DigitalSignatureUpsert) SetSignatureImage(v string) *DigitalSignatureUpsert {
	u.Set(digitalsignature.FieldSignatureImage, v)
	return u
}

// UpdateSignatureImage sets the "signature_image" field to the value that was provided on create.
func (u *DigitalSignatureUpsert) UpdateSignatureImage() *DigitalSignatureUpsert {
	u.SetExcluded(digitalsignature.FieldSignatureImage)
	return u
}

// SetSignatureHash sets the "signature_hash" field.
func (u *DigitalSignatureUpsert) SetSignatureHash(v string) *DigitalSignatureUpsert {
	u.Set(digitalsignature.FieldSignatureHash, v)
	return u
}

// UpdateSignatureHash sets the "signature_hash" field to the value that was provided on create.
func (u *DigitalSignatureUpsert) UpdateSignatureHash() *DigitalSignatureUpsert {
	u.SetExcluded(digitalsignature.FieldSignatureHash)
	return u
}

// SetDocumentURL sets the "document_url" field.
func (u *DigitalSignatureUpsert) SetDocumentURL(v string) *DigitalSignatureUpsert {
	u.Set(digitalsignature.FieldDocumentURL, v)
	return u
}

// UpdateDocumentURL sets the "document_url" field to the value that was provided on create.
func (u *DigitalSignatureUpsert) UpdateDocumentURL() *DigitalSignatureUpsert {
	u.SetExcluded(digitalsignature.FieldDocumentURL)
	return u
}

// SetSignedAt sets the "signed_at" field.
func (u *DigitalSignatureUpsert) SetSignedAt(v time.Time) *DigitalSignatureUpsert {
	u.Set(digitalsignature.FieldSignedAt, v)
	return u
}

// UpdateSignedAt sets the "signed_at" field to the value that was provided on create.
func (u *DigitalSignatureUpsert) UpdateSignedAt() *DigitalSignatureUpsert {
	u.SetExcluded(digitalsignature.FieldSignedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DigitalSignature.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(digitalsignature.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DigitalSignatureUpsertOne) UpdateNewValues() *DigitalSignatureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(digitalsignature.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(digitalsignature.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DigitalSignature.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DigitalSignatureUpsertOne) Ignore() *DigitalSignatureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DigitalSignatureUpsertOne) DoNothing() *DigitalSignatureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DigitalSignatureCreate.OnConflict
// documentation for more info.
func (u *DigitalSignatureUpsertOne) Update(set func(*DigitalSignatureUpsert)) *DigitalSignatureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DigitalSignatureUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DigitalSignatureUpsertOne) SetUpdatedAt(v time.Time) *DigitalSignatureUpsertOne {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DigitalSignatureUpsertOne) UpdateUpdatedAt() *DigitalSignatureUpsertOne {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetApplicationID sets the "application_id" field.
func (u *DigitalSignatureUpsertOne) SetApplicationID(v uuid.UUID) *DigitalSignatureUpsertOne {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.SetApplicationID(v)
	})
}

// UpdateApplicationID sets the "application_id" field to the value that was provided on create.
func (u *DigitalSignatureUpsertOne) UpdateApplicationID() *DigitalSignatureUpsertOne {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.UpdateApplicationID()
	})
}

// SetSignerName sets the "signer_name" field.
func (u *DigitalSignatureUpsertOne) SetSignerName(v string) *DigitalSignatureUpsertOne {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.SetSignerName(v)
	})
}

// UpdateSignerName sets the "signer_name" field to the value that was provided on create.
func (u *DigitalSignatureUpsertOne) UpdateSignerName() *DigitalSignatureUpsertOne {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.UpdateSignerName()
	})
}

// SetSignerEmail sets the "signer_email" field.
func (u *DigitalSignatureUpsertOne) SetSignerEmail(v string) *DigitalSignatureUpsertOne {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.SetSignerEmail(v)
	})
}

// UpdateSignerEmail sets the "signer_email" field to the value that was provided on create.
func (u *DigitalSignatureUpsertOne) UpdateSignerEmail() *DigitalSignatureUpsertOne {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.UpdateSignerEmail()
	})
}

// SetSignatureImage sets the "signature_image" field.
func (u *DigitalSignatureUpsertOne) SetSignatureImage(v string) *DigitalSignatureUpsertOne {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.SetSignatureImage(v)
	})
}

// UpdateSignatureImage sets the "signature_image" field to the value that was provided on create.
func (u *DigitalSignatureUpsertOne) UpdateSignatureImage() *DigitalSignatureUpsertOne {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.UpdateSignatureImage()
	})
}

// SetSignatureHash sets the "signature_hash" field.
func (u *DigitalSignatureUpsertOne) SetSignatureHash(v string) *DigitalSignatureUpsertOne {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.SetSignatureHash(v)
	})
}

// UpdateSignatureHash sets the "signature_hash" field to the value that was provided on create.
func (u *DigitalSignatureUpsertOne) UpdateSignatureHash() *DigitalSignatureUpsertOne {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.UpdateSignatureHash()
	})
}

// SetDocumentURL sets the "document_url" field.
func (u *DigitalSignatureUpsertOne) SetDocumentURL(v string) *DigitalSignatureUpsertOne {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.SetDocumentURL(v)
	})
}

// UpdateDocumentURL sets the "document_url" field to the value that was provided on create.
func (u *DigitalSignatureUpsertOne) UpdateDocumentURL() *DigitalSignatureUpsertOne {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.UpdateDocumentURL()
	})
}

// SetSignedAt sets the "signed_at" field.
func (u *DigitalSignatureUpsertOne) SetSignedAt(v time.Time) *DigitalSignatureUpsertOne {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.SetSignedAt(v)
	})
}

// UpdateSignedAt sets the "signed_at" field to the value that was provided on create.
func (u *DigitalSignatureUpsertOne) UpdateSignedAt() *DigitalSignatureUpsertOne {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.UpdateSignedAt()
	})
}

// Exec executes the query.
func (u *DigitalSignatureUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DigitalSignatureCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DigitalSignatureUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DigitalSignatureUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DigitalSignatureUpsertOne.ID is not supported by MySQL driver. Use DigitalSignatureUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DigitalSignatureUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DigitalSignatureCreateBulk is the builder for creating many DigitalSignature entities in bulk.
type DigitalSignatureCreateBulk struct {
	config
	err      error
	builders []*DigitalSignatureCreate
	conflict []sql.ConflictOption
}

// Save creates the DigitalSignature entities in the database.
func (dscb *DigitalSignatureCreateBulk) Save(ctx context.Context) ([]*DigitalSignature, error) {
	if dscb.err != nil {
		return nil, dscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(dscb.builders))
	nodes := make([]*DigitalSignature, len(dscb.builders))
	mutators := make([]Mutator, len(dscb.builders))
	for i := range dscb.builders {
		func(i int, root context.Context) {
			builder := dscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DigitalSignatureMutation)
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
					_, err = mutators[i+1].Mutate(root, dscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = dscb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, dscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, dscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (dscb *DigitalSignatureCreateBulk) SaveX(ctx context.Context) []*DigitalSignature {
	v, err := dscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dscb *DigitalSignatureCreateBulk) Exec(ctx context.Context) error {
	_, err := dscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dscb *DigitalSignatureCreateBulk) ExecX(ctx context.Context) {
	if err := dscb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DigitalSignature.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DigitalSignatureUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (dscb *DigitalSignatureCreateBulk) OnConflict(opts ...sql.ConflictOption) *DigitalSignatureUpsertBulk {
	dscb.conflict = opts
	return &DigitalSignatureUpsertBulk{
		create: dscb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DigitalSignature.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (dscb *DigitalSignatureCreateBulk) OnConflictColumns(columns ...string) *DigitalSignatureUpsertBulk {
	dscb.conflict = append(dscb.conflict, sql.ConflictColumns(columns...))
	return &DigitalSignatureUpsertBulk{
		create: dscb,
	}
}

// DigitalSignatureUpsertBulk is the builder for "upsert"-ing
// a bulk of DigitalSignature nodes.
type DigitalSignatureUpsertBulk struct {
	create *DigitalSignatureCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DigitalSignature.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(digitalsignature.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DigitalSignatureUpsertBulk) UpdateNewValues() *DigitalSignatureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(digitalsignature.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(digitalsignature.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DigitalSignature.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DigitalSignatureUpsertBulk) Ignore() *DigitalSignatureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DigitalSignatureUpsertBulk) DoNothing() *DigitalSignatureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DigitalSignatureCreateBulk.OnConflict
// documentation for more info.
func (u *DigitalSignatureUpsertBulk) Update(set func(*DigitalSignatureUpsert)) *DigitalSignatureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DigitalSignatureUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DigitalSignatureUpsertBulk) SetUpdatedAt(v time.Time) *DigitalSignatureUpsertBulk {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DigitalSignatureUpsertBulk) UpdateUpdatedAt() *DigitalSignatureUpsertBulk {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetApplicationID sets the "application_id" field.
func (u *DigitalSignatureUpsertBulk) SetApplicationID(v uuid.UUID) *DigitalSignatureUpsertBulk {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.SetApplicationID(v)
	})
}

// UpdateApplicationID sets the "application_id" field to the value that was provided on create.
func (u *DigitalSignatureUpsertBulk) UpdateApplicationID() *DigitalSignatureUpsertBulk {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.UpdateApplicationID()
	})
}

// SetSignerName sets the "signer_name" field.
func (u *DigitalSignatureUpsertBulk) SetSignerName(v string) *DigitalSignatureUpsertBulk {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.SetSignerName(v)
	})
}

// UpdateSignerName sets the "signer_name" field to the value that was provided on create.
func (u *DigitalSignatureUpsertBulk) UpdateSignerName() *DigitalSignatureUpsertBulk {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.UpdateSignerName()
	})
}

// SetSignerEmail sets the "signer_email" field.
func (u *DigitalSignatureUpsertBulk) SetSignerEmail(v string) *DigitalSignatureUpsertBulk {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.SetSignerEmail(v)
	})
}

// UpdateSignerEmail sets the "signer_email" field to the value that was provided on create.
func (u *DigitalSignatureUpsertBulk) UpdateSignerEmail() *DigitalSignatureUpsertBulk {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.UpdateSignerEmail()
	})
}

// SetSignatureImage sets the "signature_image" field.
func (u *DigitalSignatureUpsertBulk) SetSignatureImage(v string) *DigitalSignatureUpsertBulk {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.SetSignatureImage(v)
	})
}

// UpdateSignatureImage sets the "signature_image" field to the value that was provided on create.
func (u *DigitalSignatureUpsertBulk) UpdateSignatureImage() *DigitalSignatureUpsertBulk {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.UpdateSignatureImage()
	})
}

// SetSignatureHash sets the "signature_hash" field.
func (u *DigitalSignatureUpsertBulk) SetSignatureHash(v string) *DigitalSignatureUpsertBulk {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.SetSignatureHash(v)
	})
}

// UpdateSignatureHash sets the "signature_hash" field to the value that was provided on create.
func (u *DigitalSignatureUpsertBulk) UpdateSignatureHash() *DigitalSignatureUpsertBulk {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.UpdateSignatureHash()
	})
}

// SetDocumentURL sets the "document_url" field.
func (u *DigitalSignatureUpsertBulk) SetDocumentURL(v string) *DigitalSignatureUpsertBulk {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.SetDocumentURL(v)
	})
}

// UpdateDocumentURL sets the "document_url" field to the value that was provided on create.
func (u *DigitalSignatureUpsertBulk) UpdateDocumentURL() *DigitalSignatureUpsertBulk {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.UpdateDocumentURL()
	})
}

// SetSignedAt sets the "signed_at" field.
func (u *DigitalSignatureUpsertBulk) SetSignedAt(v time.Time) *DigitalSignatureUpsertBulk {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.SetSignedAt(v)
	})
}

// UpdateSignedAt sets the "signed_at" field to the value that was provided on create.
func (u *DigitalSignatureUpsertBulk) UpdateSignedAt() *DigitalSignatureUpsertBulk {
	return u.Update(func(s *DigitalSignatureUpsert) {
		s.UpdateSignedAt()
	})
}

// Exec executes the query.
func (u *DigitalSignatureUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DigitalSignatureCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DigitalSignatureCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DigitalSignatureUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
