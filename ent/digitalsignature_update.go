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
	"github.com/netvendor/creditintake/ent/digitalsignature"
	"github.com/netvendor/creditintake/ent/predicate"
)

// DigitalSignatureUpdate is the builder for updating DigitalSignature entities.
type DigitalSignatureUpdate struct {
	config
	hooks    []Hook
	mutation *DigitalSignatureMutation
}

// Where appends a list predicates to the DigitalSignatureUpdate builder.
func (dsu *DigitalSignatureUpdate) Where(ps ...predicate.DigitalSignature) *DigitalSignatureUpdate {
	dsu.mutation.Where(ps...)
	return dsu
}

// SetUpdatedAt sets the "updated_at" field.
func (dsu *DigitalSignatureUpdate) SetUpdatedAt(t time.Time) *DigitalSignatureUpdate {
	dsu.mutation.SetUpdatedAt(t)
	return dsu
}

// SetApplicationID sets the "application_id" field.
func (dsu *DigitalSignatureUpdate) SetApplicationID(u uuid.UUID) *DigitalSignatureUpdate {
	dsu.mutation.SetApplicationID(u)
	return dsu
}

// SetNillableApplicationID sets the "application_id" field if the given value is not nil.
func (dsu *DigitalSignatureUpdate) SetNillableApplicationID(u *uuid.UUID) *DigitalSignatureUpdate {
	if u != nil {
		dsu.SetApplicationID(*u)
	}
	return dsu
}

// SetSignerName sets the "signer_name" field.
func (dsu *DigitalSignatureUpdate) SetSignerName(s string) *DigitalSignatureUpdate {
	dsu.mutation.SetSignerName(s)
	return dsu
}

// SetNillableSignerName sets the "signer_name" field if the given value is not nil.
func (dsu *DigitalSignatureUpdate) SetNillableSignerName(s *string) *DigitalSignatureUpdate {
	if s != nil {
		dsu.SetSignerName(*s)
	}
	return dsu
}

// SetSignerEmail sets the "signer_email" field.
func (dsu *DigitalSignatureUpdate) SetSignerEmail(s string) *DigitalSignatureUpdate {
	dsu.mutation.SetSignerEmail(s)
	return dsu
}

// SetNillableSignerEmail sets the "signer_email" field if the given value is not nil.
func (dsu *DigitalSignatureUpdate) SetNillableSignerEmail(s *string) *DigitalSignatureUpdate {
	if s != nil {
		dsu.SetSignerEmail(*s)
	}
	return dsu
}

// SetSignatureImage sets the "signature_image" field.
func (dsu *DigitalSignatureUpdate) SetSignatureImage(s string) *DigitalSignatureUpdate {
	dsu.mutation.SetSignatureImage(s)
	return dsu
}

// SetNillableSignatureImage sets the "signature_image" field if the given value is not nil.
func (dsu *DigitalSignatureUpdate) SetNillableSignatureImage(s *string) *DigitalSignatureUpdate {
	if s != nil {
		dsu.SetSignatureImage(*s)
	}
	return dsu
}

// SetSignatureHash sets the "signature_hash" field.
func (dsu *DigitalSignatureUpdate) SetSignatureHash(s string) *DigitalSignatureUpdate {
	dsu.mutation.SetSignatureHash(s)
	return dsu
}

// SetNillableSignatureHash sets the "signature_hash" field if the given value is not nil.
func (dsu *DigitalSignatureUpdate) SetNillableSignatureHash(s *string) *DigitalSignatureUpdate {
	if s != nil {
		dsu.SetSignatureHash(*s)
	}
	return dsu
}

// SetDocumentURL sets the "document_url" field.
func (dsu *DigitalSignatureUpdate) SetDocumentURL(s string) *DigitalSignatureUpdate {
	dsu.mutation.SetDocumentURL(s)
	return dsu
}

// SetNillableDocumentURL sets the "document_url" field if the given value is not nil.
func (dsu *DigitalSignatureUpdate) SetNillableDocumentURL(s *string) *DigitalSignatureUpdate {
	if s != nil {
		dsu.SetDocumentURL(*s)
	}
	return dsu
}

// SetSignedAt sets the "signed_at" field.
func (dsu *DigitalSignatureUpdate) SetSignedAt(t time.Time) *DigitalSignatureUpdate {
	dsu.mutation.SetSignedAt(t)
	return dsu
}

// SetNillableSignedAt sets the "signed_at" field if the given value is not nil.
func (dsu *DigitalSignatureUpdate) SetNillableSignedAt(t *time.Time) *DigitalSignatureUpdate {
	if t != nil {
		dsu.SetSignedAt(*t)
	}
	return dsu
}

// SetApplication sets the "application" edge to the Application entity.
func (dsu *DigitalSignatureUpdate) SetApplication(a *Application) *DigitalSignatureUpdate {
	return dsu.SetApplicationID(a.ID)
}

// Mutation returns the DigitalSignatureMutation object of the builder.
func (dsu *DigitalSignatureUpdate) Mutation() *DigitalSignatureMutation {
	return dsu.mutation
}

// ClearApplication clears the "application" edge to the Application entity.
func (dsu *DigitalSignatureUpdate) ClearApplication() *DigitalSignatureUpdate {
	dsu.mutation.ClearApplication()
	return dsu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (dsu *DigitalSignatureUpdate) Save(ctx context.Context) (int, error) {
	dsu.defaults()
	return withHooks(ctx, dsu.sqlSave, dsu.mutation, dsu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (dsu *DigitalSignatureUpdate) SaveX(ctx context.Context) int {
	affected, err := dsu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (dsu *DigitalSignatureUpdate) Exec(ctx context.Context) error {
	_, err := dsu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dsu *DigitalSignatureUpdate) ExecX(ctx context.Context) {
	if err := dsu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (dsu *DigitalSignatureUpdate) defaults() {
	if _, ok := dsu.mutation.UpdatedAt(); !ok {
		v := digitalsignature.UpdateDefaultUpdatedAt()
		dsu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dsu *DigitalSignatureUpdate) check() error {
	if v, ok := dsu.mutation.SignerName(); ok {
		if err := digitalsignature.SignerNameValidator(v); err != nil {
			return &ValidationError{Name: "signer_name", err: fmt.Errorf(`ent: validator failed for field "DigitalSignature.signer_name": %w`, err)}
		}
	}
	if v, ok := dsu.mutation.SignerEmail(); ok {
		if err := digitalsignature.SignerEmailValidator(v); err != nil {
			return &ValidationError{Name: "signer_email", err: fmt.Errorf(`ent: validator failed for field "DigitalSignature.signer_email": %w`, err)}
		}
	}
	if v, ok := dsu.mutation.SignatureHash(); ok {
		if err := digitalsignature.SignatureHashValidator(v); err != nil {
			return &ValidationError{Name: "signature_hash", err: fmt.Errorf(`ent: validator failed for field "DigitalSignature.signature_hash": %w`, err)}
		}
	}
	if v, ok := dsu.mutation.DocumentURL(); ok {
		if err := digitalsignature.DocumentURLValidator(v); err != nil {
			return &ValidationError{Name: "document_url", err: fmt.Errorf(`ent: validator failed for field "DigitalSignature.document_url": %w`, err)}
		}
	}
	if _, ok := dsu.mutation.ApplicationID(); dsu.mutation.ApplicationCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "DigitalSignature.application"`)
	}
	return nil
}

func (dsu *DigitalSignatureUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := dsu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(digitalsignature.Table, digitalsignature.Columns, sqlgraph.NewFieldSpec(digitalsignature.FieldID, field.TypeUUID))
	if ps := dsu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := dsu.mutation.UpdatedAt(); ok {
		_spec.SetField(digitalsignature.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := dsu.mutation.SignerName(); ok {
		_spec.SetField(digitalsignature.FieldSignerName, field.TypeString, value)
	}
	if value, ok := dsu.mutation.SignerEmail(); ok {
		_spec.SetField(digitalsignature.FieldSignerEmail, field.TypeString, value)
	}
	if value, ok := dsu.mutation.SignatureImage(); ok {
		_spec.SetField(digitalsignature.FieldSignatureImage, field.TypeString, value)
	}
	if value, ok := dsu.mutation.SignatureHash(); ok {
		_spec.SetField(digitalsignature.FieldSignatureHash, field.TypeString, value)
	}
	if value, ok := dsu.mutation.DocumentURL(); ok {
		_spec.SetField(digitalsignature.FieldDocumentURL, field.TypeString, value)
	}
	if value, ok := dsu.mutation.SignedAt(); ok {
		_spec.SetField(digitalsignature.FieldSignedAt, field.TypeTime, value)
	}
	if dsu.mutation.ApplicationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dsu.mutation.ApplicationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, dsu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{digitalsignature.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	dsu.mutation.done = true
	return n, nil
}

// DigitalSignatureUpdateOne is the builder for updating a single DigitalSignature entity.
type DigitalSignatureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DigitalSignatureMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (dsuo *DigitalSignatureUpdateOne) SetUpdatedAt(t time.Time) *DigitalSignatureUpdateOne {
	dsuo.mutation.SetUpdatedAt(t)
	return dsuo
}

// SetApplicationID sets the "application_id" field.
func (dsuo *DigitalSignatureUpdateOne) SetApplicationID(u uuid.UUID) *DigitalSignatureUpdateOne {
	dsuo.mutation.SetApplicationID(u)
	return dsuo
}

// SetNillableApplicationID sets the "application_id" field if the given value is not nil.
func (dsuo *DigitalSignatureUpdateOne) SetNillableApplicationID(u *uuid.UUID) *DigitalSignatureUpdateOne {
	if u != nil {
		dsuo.SetApplicationID(*u)
	}
	return dsuo
}

// SetSignerName sets the "signer_name" field.
func (dsuo *DigitalSignatureUpdateOne) SetSignerName(s string) *DigitalSignatureUpdateOne {
	dsuo.mutation.SetSignerName(s)
	return dsuo
}

// SetNillableSignerName sets the "signer_name" field if the given value is not nil.
func (dsuo *DigitalSignatureUpdateOne) SetNillableSignerName(s *string) *DigitalSignatureUpdateOne {
	if s != nil {
		dsuo.SetSignerName(*s)
	}
	return dsuo
}

// SetSignerEmail sets the "signer_email" field.
func (dsuo *DigitalSignatureUpdateOne) SetSignerEmail(s string) *DigitalSignatureUpdateOne {
	dsuo.mutation.SetSignerEmail(s)
	return dsuo
}

// SetNillableSignerEmail sets the "signer_email" field if the given value is not nil.
func (dsuo *DigitalSignatureUpdateOne) SetNillableSignerEmail(s *string) *DigitalSignatureUpdateOne {
	if s != nil {
		dsuo.SetSignerEmail(*s)
	}
	return dsuo
}

// SetSignatureImage sets the "signature_image" field.
func (dsuo *DigitalSignatureUpdateOne) SetSignatureImage(s string) *DigitalSignatureUpdateOne {
	dsuo.mutation.SetSignatureImage(s)
	return dsuo
}

// SetNillableSignatureImage sets the "signature_image" field if the given value is not nil.
func (dsuo *DigitalSignatureUpdateOne) SetNillableSignatureImage(s *string) *DigitalSignatureUpdateOne {
	if s != nil {
		dsuo.SetSignatureImage(*s)
	}
	return dsuo
}

// SetSignatureHash sets the "signature_hash" field.
func (dsuo *DigitalSignatureUpdateOne) SetSignatureHash(s string) *DigitalSignatureUpdateOne {
	dsuo.mutation.SetSignatureHash(s)
	return dsuo
}

// SetNillableSignatureHash sets the "signature_hash" field if the given value is not nil.
func (dsuo *DigitalSignatureUpdateOne) SetNillableSignatureHash(s *string) *DigitalSignatureUpdateOne {
	if s != nil {
		dsuo.SetSignatureHash(*s)
	}
	return dsuo
}

// SetDocumentURL sets the "document_url" field.
func (dsuo *DigitalSignatureUpdateOne) SetDocumentURL(s string) *DigitalSignatureUpdateOne {
	dsuo.mutation.SetDocumentURL(s)
	return dsuo
}

// SetNillableDocumentURL sets the "document_url" field if the given value is not nil.
func (dsuo *DigitalSignatureUpdateOne) SetNillableDocumentURL(s *string) *DigitalSignatureUpdateOne {
	if s != nil {
		dsuo.SetDocumentURL(*s)
	}
	return dsuo
}

// SetSignedAt sets the "signed_at" field.
func (dsuo *DigitalSignatureUpdateOne) SetSignedAt(t time.Time) *DigitalSignatureUpdateOne {
	dsuo.mutation.SetSignedAt(t)
	return dsuo
}

// SetNillableSignedAt sets the "signed_at" field if the given value is not nil.
func (dsuo *DigitalSignatureUpdateOne) SetNillableSignedAt(t *time.Time) *DigitalSignatureUpdateOne {
	if t != nil {
		dsuo.SetSignedAt(*t)
	}
	return dsuo
}

// SetApplication sets the "application" edge to the Application entity.
func (dsuo *DigitalSignatureUpdateOne) SetApplication(a *Application) *DigitalSignatureUpdateOne {
	return dsuo.SetApplicationID(a.ID)
}

// Mutation returns the DigitalSignatureMutation object of the builder.
func (dsuo *DigitalSignatureUpdateOne) Mutation() *DigitalSignatureMutation {
	return dsuo.mutation
}

// ClearApplication clears the "application" edge to the Application entity.
func (dsuo *DigitalSignatureUpdateOne) ClearApplication() *DigitalSignatureUpdateOne {
	dsuo.mutation.ClearApplication()
	return dsuo
}

// Where appends a list predicates to the DigitalSignatureUpdate builder.
func (dsuo *DigitalSignatureUpdateOne) Where(ps ...predicate.DigitalSignature) *DigitalSignatureUpdateOne {
	dsuo.mutation.Where(ps...)
	return dsuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (dsuo *DigitalSignatureUpdateOne) Select(field string, fields ...string) *DigitalSignatureUpdateOne {
	dsuo.fields = append([]string{field}, fields...)
	return dsuo
}

// Save executes the query and returns the updated DigitalSignature entity.
func (dsuo *DigitalSignatureUpdateOne) Save(ctx context.Context) (*DigitalSignature, error) {
	dsuo.defaults()
	return withHooks(ctx, dsuo.sqlSave, dsuo.mutation, dsuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (dsuo *DigitalSignatureUpdateOne) SaveX(ctx context.Context) *DigitalSignature {
	node, err := dsuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (dsuo *DigitalSignatureUpdateOne) Exec(ctx context.Context) error {
	_, err := dsuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dsuo *DigitalSignatureUpdateOne) ExecX(ctx context.Context) {
	if err := dsuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (dsuo *DigitalSignatureUpdateOne) defaults() {
	if _, ok := dsuo.mutation.UpdatedAt(); !ok {
		v := digitalsignature.UpdateDefaultUpdatedAt()
		dsuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dsuo *DigitalSignatureUpdateOne) check() error {
	if v, ok := dsuo.mutation.SignerName(); ok {
		if err := digitalsignature.SignerNameValidator(v); err != nil {
			return &ValidationError{Name: "signer_name", err: fmt.Errorf(`ent: validator failed for field "DigitalSignature.signer_name": %w`, err)}
		}
	}
	if v, ok := dsuo.mutation.SignerEmail(); ok {
		if err := digitalsignature.SignerEmailValidator(v); err != nil {
			return &ValidationError{Name: "signer_email", err: fmt.Errorf(`ent: validator failed for field "DigitalSignature.signer_email": %w`, err)}
		}
	}
	if v, ok := dsuo.mutation.SignatureHash(); ok {
		if err := digitalsignature.SignatureHashValidator(v); err != nil {
			return &ValidationError{Name: "signature_hash", err: fmt.Errorf(`ent: validator failed for field "DigitalSignature.signature_hash": %w`, err)}
		}
	}
	if v, ok := dsuo.mutation.DocumentURL(); ok {
		if err := digitalsignature.DocumentURLValidator(v); err != nil {
			return &ValidationError{Name: "document_url", err: fmt.Errorf(`ent: validator failed for field "DigitalSignature.document_url": %w`, err)}
		}
	}
	if _, ok := dsuo.mutation.ApplicationID(); dsuo.mutation.ApplicationCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "DigitalSignature.application"`)
	}
	return nil
}

func (dsuo *DigitalSignatureUpdateOne) sqlSave(ctx context.Context) (_node *DigitalSignature, err error) {
	if err := dsuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(digitalsignature.Table, digitalsignature.Columns, sqlgraph.NewFieldSpec(digitalsignature.FieldID, field.TypeUUID))
	id, ok := dsuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DigitalSignature.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := dsuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, digitalsignature.FieldID)
		for _, f := range fields {
			if !digitalsignature.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != digitalsignature.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := dsuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := dsuo.mutation.UpdatedAt(); ok {
		_spec.SetField(digitalsignature.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := dsuo.mutation.SignerName(); ok {
		_spec.SetField(digitalsignature.FieldSignerName, field.TypeString, value)
	}
	if value, ok := dsuo.mutation.SignerEmail(); ok {
		_spec.SetField(digitalsignature.FieldSignerEmail, field.TypeString, value)
	}
	if value, ok := dsuo.mutation.SignatureImage(); ok {
		_spec.SetField(digitalsignature.FieldSignatureImage, field.TypeString, value)
	}
	if value, ok := dsuo.mutation.SignatureHash(); ok {
		_spec.SetField(digitalsignature.FieldSignatureHash, field.TypeString, value)
	}
	if value, ok := dsuo.mutation.DocumentURL(); ok {
		_spec.SetField(digitalsignature.FieldDocumentURL, field.TypeString, value)
	}
	if value, ok := dsuo.mutation.SignedAt(); ok {
		_spec.SetField(digitalsignature.FieldSignedAt, field.TypeTime, value)
	}
	if dsuo.mutation.ApplicationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dsuo.mutation.ApplicationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DigitalSignature{config: dsuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, dsuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{digitalsignature.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	dsuo.mutation.done = true
	return _node, nil
}
