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
	"github.com/netvendor/creditintake/ent/vendorform"
)

// ApplicationCreate is the builder for creating a Application entity.
type ApplicationCreate struct {
	config
	mutation *ApplicationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (ac *ApplicationCreate) SetCreatedAt(t time.Time) *ApplicationCreate {
	ac.mutation.SetCreatedAt(t)
	return ac
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableCreatedAt(t *time.Time) *ApplicationCreate {
	if t != nil {
		ac.SetCreatedAt(*t)
	}
	return ac
}

// SetUpdatedAt sets the "updated_at" field.
func (ac *ApplicationCreate) SetUpdatedAt(t time.Time) *ApplicationCreate {
	ac.mutation.SetUpdatedAt(t)
	return ac
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableUpdatedAt(t *time.Time) *ApplicationCreate {
	if t != nil {
		ac.SetUpdatedAt(*t)
	}
	return ac
}

// SetLegalName sets the "legal_name" field.
func (ac *ApplicationCreate) SetLegalName(s string) *ApplicationCreate {
	ac.mutation.SetLegalName(s)
	return ac
}

// SetContactEmail sets the "contact_email" field.
func (ac *ApplicationCreate) SetContactEmail(s string) *ApplicationCreate {
	ac.mutation.SetContactEmail(s)
	return ac
}

// SetContactPhone sets the "contact_phone" field.
func (ac *ApplicationCreate) SetContactPhone(s string) *ApplicationCreate {
	ac.mutation.SetContactPhone(s)
	return ac
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableContactPhone(s *string) *ApplicationCreate {
	if s != nil {
		ac.SetContactPhone(*s)
	}
	return ac
}

// SetDunsNumber sets the "duns_number" field.
func (ac *ApplicationCreate) SetDunsNumber(s string) *ApplicationCreate {
	ac.mutation.SetDunsNumber(s)
	return ac
}

// SetNillableDunsNumber sets the "duns_number" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableDunsNumber(s *string) *ApplicationCreate {
	if s != nil {
		ac.SetDunsNumber(*s)
	}
	return ac
}

// SetTradeReference1 sets the "trade_reference_1" field.
func (ac *ApplicationCreate) SetTradeReference1(s string) *ApplicationCreate {
	ac.mutation.SetTradeReference1(s)
	return ac
}

// SetNillableTradeReference1 sets the "trade_reference_1" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableTradeReference1(s *string) *ApplicationCreate {
	if s != nil {
		ac.SetTradeReference1(*s)
	}
	return ac
}

// SetTradeReference2 sets the "trade_reference_2" field.
func (ac *ApplicationCreate) SetTradeReference2(s string) *ApplicationCreate {
	ac.mutation.SetTradeReference2(s)
	return ac
}

// SetNillableTradeReference2 sets the "trade_reference_2" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableTradeReference2(s *string) *ApplicationCreate {
	if s != nil {
		ac.SetTradeReference2(*s)
	}
	return ac
}

// SetTradeReference3 sets the "trade_reference_3" field.
func (ac *ApplicationCreate) SetTradeReference3(s string) *ApplicationCreate {
	ac.mutation.SetTradeReference3(s)
	return ac
}

// SetNillableTradeReference3 sets the "trade_reference_3" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableTradeReference3(s *string) *ApplicationCreate {
	if s != nil {
		ac.SetTradeReference3(*s)
	}
	return ac
}

// SetBillToAddress sets the "bill_to_address" field.
func (ac *ApplicationCreate) SetBillToAddress(s string) *ApplicationCreate {
	ac.mutation.SetBillToAddress(s)
	return ac
}

// SetShipToAddress sets the "ship_to_address" field.
func (ac *ApplicationCreate) SetShipToAddress(s string) *ApplicationCreate {
	ac.mutation.SetShipToAddress(s)
	return ac
}

// SetID sets the "id" field.
func (ac *ApplicationCreate) SetID(u uuid.UUID) *ApplicationCreate {
	ac.mutation.SetID(u)
	return ac
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableID(u *uuid.UUID) *ApplicationCreate {
	if u != nil {
		ac.SetID(*u)
	}
	return ac
}

// SetSignatureID sets the "signature" edge to the DigitalSignature entity by ID.
func (ac *ApplicationCreate) SetSignatureID(id uuid.UUID) *ApplicationCreate {
	ac.mutation.SetSignatureID(id)
	return ac
}

// SetNillableSignatureID sets the "signature" edge to the DigitalSignature entity by ID if the given value is not nil.
func (ac *ApplicationCreate) SetNillableSignatureID(id *uuid.UUID) *ApplicationCreate {
	if id != nil {
		ac = ac.SetSignatureID(*id)
	}
	return ac
}

// SetSignature sets the "signature" edge to the DigitalSignature entity.
func (ac *ApplicationCreate) SetSignature(d *DigitalSignature) *ApplicationCreate {
	return ac.SetSignatureID(d.ID)
}

// AddVendorFormIDs adds the "vendor_forms" edge to the VendorForm entity by IDs.
func (ac *ApplicationCreate) AddVendorFormIDs(ids ...uuid.UUID) *ApplicationCreate {
	ac.mutation.AddVendorFormIDs(ids...)
	return ac
}

// AddVendorForms adds the "vendor_forms" edges to the VendorForm entity.
func (ac *ApplicationCreate) AddVendorForms(v ...*VendorForm) *ApplicationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return ac.AddVendorFormIDs(ids...)
}

// Mutation returns the ApplicationMutation object of the builder.
func (ac *ApplicationCreate) Mutation() *ApplicationMutation {
	return ac.mutation
}

// Save creates the Application in the database.
func (ac *ApplicationCreate) Save(ctx context.Context) (*Application, error) {
	ac.defaults()
	return withHooks(ctx, ac.sqlSave, ac.mutation, ac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ac *ApplicationCreate) SaveX(ctx context.Context) *Application {
	v, err := ac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ac *ApplicationCreate) Exec(ctx context.Context) error {
	_, err := ac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ac *ApplicationCreate) ExecX(ctx context.Context) {
	if err := ac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ac *ApplicationCreate) defaults() {
	if _, ok := ac.mutation.CreatedAt(); !ok {
		v := application.DefaultCreatedAt()
		ac.mutation.SetCreatedAt(v)
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		v := application.DefaultUpdatedAt()
		ac.mutation.SetUpdatedAt(v)
	}
	if _, ok := ac.mutation.ID(); !ok {
		v := application.DefaultID()
		ac.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ac *ApplicationCreate) check() error {
	if _, ok := ac.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Application.created_at"`)}
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Application.updated_at"`)}
	}
	if _, ok := ac.mutation.LegalName(); !ok {
		return &ValidationError{Name: "legal_name", err: errors.New(`ent: missing required field "Application.legal_name"`)}
	}
	if v, ok := ac.mutation.LegalName(); ok {
		if err := application.LegalNameValidator(v); err != nil {
			return &ValidationError{Name: "legal_name", err: fmt.Errorf(`ent: validator failed for field "Application.legal_name": %w`, err)}
		}
	}
	if _, ok := ac.mutation.ContactEmail(); !ok {
		return &ValidationError{Name: "contact_email", err: errors.New(`ent: missing required field "Application.contact_email"`)}
	}
	if v, ok := ac.mutation.ContactEmail(); ok {
		if err := application.ContactEmailValidator(v); err != nil {
			return &ValidationError{Name: "contact_email", err: fmt.Errorf(`ent: validator failed for field "Application.contact_email": %w`, err)}
		}
	}
	if v, ok := ac.mutation.ContactPhone(); ok {
		if err := application.ContactPhoneValidator(v); err != nil {
			return &ValidationError{Name: "contact_phone", err: fmt.Errorf(`ent: validator failed for field "Application.contact_phone": %w`, err)}
		}
	}
	if v, ok := ac.mutation.DunsNumber(); ok {
		if err := application.DunsNumberValidator(v); err != nil {
			return &ValidationError{Name: "duns_number", err: fmt.Errorf(`ent: validator failed for field "Application.duns_number": %w`, err)}
		}
	}
	if v, ok := ac.mutation.TradeReference1(); ok {
		if err := application.TradeReference1Validator(v); err != nil {
			return &ValidationError{Name: "trade_reference_1", err: fmt.Errorf(`ent: validator failed for field "Application.trade_reference_1": %w`, err)}
		}
	}
	if v, ok := ac.mutation.TradeReference2(); ok {
		if err := application.TradeReference2Validator(v); err != nil {
			return &ValidationError{Name: "trade_reference_2", err: fmt.Errorf(`ent: validator failed for field "Application.trade_reference_2": %w`, err)}
		}
	}
	if v, ok := ac.mutation.TradeReference3(); ok {
		if err := application.TradeReference3Validator(v); err != nil {
			return &ValidationError{Name: "trade_reference_3", err: fmt.Errorf(`ent: validator failed for field "Application.trade_reference_3": %w`, err)}
		}
	}
	if _, ok := ac.mutation.BillToAddress(); !ok {
		return &ValidationError{Name: "bill_to_address", err: errors.New(`ent: missing required field "Application.bill_to_address"`)}
	}
	if v, ok := ac.mutation.BillToAddress(); ok {
		if err := application.BillToAddressValidator(v); err != nil {
			return &ValidationError{Name: "bill_to_address", err: fmt.Errorf(`ent: validator failed for field "Application.bill_to_address": %w`, err)}
		}
	}
	if _, ok := ac.mutation.ShipToAddress(); !ok {
		return &ValidationError{Name: "ship_to_address", err: errors.New(`ent: missing required field "Application.ship_to_address"`)}
	}
	if v, ok := ac.mutation.ShipToAddress(); ok {
		if err := application.ShipToAddressValidator(v); err != nil {
			return &ValidationError{Name: "ship_to_address", err: fmt.Errorf(`ent: validator failed for field "Application.ship_to_address": %w`, err)}
		}
	}
	return nil
}

func (ac *ApplicationCreate) sqlSave(ctx context.Context) (*Application, error) {
	if err := ac.check(); err != nil {
		return nil, err
	}
	_node, _spec := ac.createSpec()
	if err := sqlgraph.CreateNode(ctx, ac.driver, _spec); err != nil {
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
	ac.mutation.id = &_node.ID
	ac.mutation.done = true
	return _node, nil
}

func (ac *ApplicationCreate) createSpec() (*Application, *sqlgraph.CreateSpec) {
	var (
		_node = &Application{config: ac.config}
		_spec = sqlgraph.NewCreateSpec(application.Table, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = ac.conflict
	if id, ok := ac.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := ac.mutation.CreatedAt(); ok {
		_spec.SetField(application.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ac.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := ac.mutation.LegalName(); ok {
		_spec.SetField(application.FieldLegalName, field.TypeString, value)
		_node.LegalName = value
	}
	if value, ok := ac.mutation.ContactEmail(); ok {
		_spec.SetField(application.FieldContactEmail, field.TypeString, value)
		_node.ContactEmail = value
	}
	if value, ok := ac.mutation.ContactPhone(); ok {
		_spec.SetField(application.FieldContactPhone, field.TypeString, value)
		_node.ContactPhone = value
	}
	if value, ok := ac.mutation.DunsNumber(); ok {
		_spec.SetField(application.FieldDunsNumber, field.TypeString, value)
		_node.DunsNumber = value
	}
	if value, ok := ac.mutation.TradeReference1(); ok {
		_spec.SetField(application.FieldTradeReference1, field.TypeString, value)
		_node.TradeReference1 = value
	}
	if value, ok := ac.mutation.TradeReference2(); ok {
		_spec.SetField(application.FieldTradeReference2, field.TypeString, value)
		_node.TradeReference2 = value
	}
	if value, ok := ac.mutation.TradeReference3(); ok {
		_spec.SetField(application.FieldTradeReference3, field.TypeString, value)
		_node.TradeReference3 = value
	}
	if value, ok := ac.mutation.BillToAddress(); ok {
		_spec.SetField(application.FieldBillToAddress, field.TypeString, value)
		_node.BillToAddress = value
	}
	if value, ok := ac.mutation.ShipToAddress(); ok {
		_spec.SetField(application.FieldShipToAddress, field.TypeString, value)
		_node.ShipToAddress = value
	}
	if nodes := ac.mutation.SignatureIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   application.SignatureTable,
			Columns: []string{application.SignatureColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(digitalsignature.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ac.mutation.VendorFormsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.VendorFormsTable,
			Columns: []string{application.VendorFormsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendorform.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Application.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApplicationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (ac *ApplicationCreate) OnConflict(opts ...sql.ConflictOption) *ApplicationUpsertOne {
	ac.conflict = opts
	return &ApplicationUpsertOne{
		create: ac,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Application.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ac *ApplicationCreate) OnConflictColumns(columns ...string) *ApplicationUpsertOne {
	ac.conflict = append(ac.conflict, sql.ConflictColumns(columns...))
	return &ApplicationUpsertOne{
		create: ac,
	}
}

type (
	// ApplicationUpsertOne is the builder for "upsert"-ing
	//  one Application node.
	ApplicationUpsertOne struct {
		create *ApplicationCreate
	}

	// ApplicationUpsert is the "OnConflict" setter.
	ApplicationUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ApplicationUpsert) SetUpdatedAt(v time.Time) *ApplicationUpsert {
	u.Set(application.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ApplicationUpsert) UpdateUpdatedAt() *ApplicationUpsert {
	u.SetExcluded(application.FieldUpdatedAt)
	return u
}

// SetLegalName sets the "legal_name" field.
func (u *ApplicationUpsert) SetLegalName(v string) *ApplicationUpsert {
	u.Set(application.FieldLegalName, v)
	return u
}

// UpdateLegalName sets the "legal_name" field to the value that was provided on create.
func (u *ApplicationUpsert) UpdateLegalName() *ApplicationUpsert {
	u.SetExcluded(application.FieldLegalName)
	return u
}

// SetContactEmail sets the "contact_email" field.
func (u *ApplicationUpsert) SetContactEmail(v string) *ApplicationUpsert {
	u.Set(application.FieldContactEmail, v)
	return u
}

// UpdateContactEmail sets the "contact_email" field to the value that was provided on create.
func (u *ApplicationUpsert) UpdateContactEmail() *ApplicationUpsert {
	u.SetExcluded(application.FieldContactEmail)
	return u
}

// SetContactPhone sets the "contact_phone" field.
func (u *ApplicationUpsert) SetContactPhone(v string) *ApplicationUpsert {
	u.Set(application.FieldContactPhone, v)
	return u
}

// UpdateContactPhone sets the "contact_phone" field to the value that was provided on create.
func (u *ApplicationUpsert) UpdateContactPhone() *ApplicationUpsert {
	u.SetExcluded(application.FieldContactPhone)
	return u
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (u *ApplicationUpsert) ClearContactPhone() *ApplicationUpsert {
	u.SetNull(application.FieldContactPhone)
	return u
}

// SetDunsNumber sets the "duns_number" field.
func (u *ApplicationUpsert) SetDunsNumber(v string) *ApplicationUpsert {
	u.Set(application.FieldDunsNumber, v)
	return u
}

// UpdateDunsNumber sets the "duns_number" field to the value that was provided on create.
func (u *ApplicationUpsert) UpdateDunsNumber() *ApplicationUpsert {
	u.SetExcluded(application.FieldDunsNumber)
	return u
}

// ClearDunsNumber clears the value of the "duns_number" field.
func (u *ApplicationUpsert) ClearDunsNumber() *ApplicationUpsert {
	u.SetNull(application.FieldDunsNumber)
	return u
}

// SetTradeReference1 sets the "trade_reference_1" field.
func (u *ApplicationUpsert) SetTradeReference1(v string) *ApplicationUpsert {
	u.Set(application.FieldTradeReference1, v)
	return u
}

// UpdateTradeReference1 sets the "trade_reference_1" field to the value that was provided on create.
func (u *ApplicationUpsert) UpdateTradeReference1() *ApplicationUpsert {
	u.SetExcluded(application.FieldTradeReference1)
	return u
}

// ClearTradeReference1 clears the value of the "trade_reference_1" field.
func (u *ApplicationUpsert) ClearTradeReference1() *ApplicationUpsert {
	u.SetNull(application.FieldTradeReference1)
	return u
}

// SetTradeReference2 sets the "trade_reference_2" field.
func (u *ApplicationUpsert) SetTradeReference2(v string) *ApplicationUpsert {
	u.Set(application.FieldTradeReference2, v)
	return u
}

// UpdateTradeReference2 sets the "trade_reference_2" field to the value that was provided on create.
func (u *ApplicationUpsert) UpdateTradeReference2() *ApplicationUpsert {
	u.SetExcluded(application.FieldTradeReference2)
	return u
}

// ClearTradeReference2 clears the value of the "trade_reference_2" field.
func (u *ApplicationUpsert) ClearTradeReference2() *ApplicationUpsert {
	u.SetNull(application.FieldTradeReference2)
	return u
}

// SetTradeReference3 sets the "trade_reference_3" field.
func (u *ApplicationUpsert) SetTradeReference3(v string) *ApplicationUpsert {
	u.Set(application.FieldTradeReference3, v)
	return u
}

// UpdateTradeReference3 sets the "trade_reference_3" field to the value that was provided on create.
func (u *ApplicationUpsert) UpdateTradeReference3() *ApplicationUpsert {
	u.SetExcluded(application.FieldTradeReference3)
	return u
}

// ClearTradeReference3 clears the value of the "trade_reference_3" field.
func (u *ApplicationUpsert) ClearTradeReference3() *ApplicationUpsert {
	u.SetNull(application.FieldTradeReference3)
	return u
}

// SetBillToAddress sets the "bill_to_address" field.
func (u *ApplicationUpsert) SetBillToAddress(v string) *ApplicationUpsert {
	u.Set(application.FieldBillToAddress, v)
	return u
}

// UpdateBillToAddress sets the "bill_to_address" field to the value that was provided on create.
func (u *ApplicationUpsert) UpdateBillToAddress() *ApplicationUpsert {
	u.SetExcluded(application.FieldBillToAddress)
	return u
}

// SetShipToAddress sets the "ship_to_address" field.
func (u *ApplicationUpsert) SetShipToAddress(v string) *ApplicationUpsert {
	u.Set(application.FieldShipToAddress, v)
	return u
}

// UpdateShipToAddress sets the "ship_to_address" field to the value that was provided on create.
func (u *ApplicationUpsert) UpdateShipToAddress() *ApplicationUpsert {
	u.SetExcluded(application.FieldShipToAddress)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Application.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(application.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApplicationUpsertOne) UpdateNewValues() *ApplicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(application.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(application.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Application.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ApplicationUpsertOne) Ignore() *ApplicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApplicationUpsertOne) DoNothing() *ApplicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApplicationCreate.OnConflict
// documentation for more info.
func (u *ApplicationUpsertOne) Update(set func(*ApplicationUpsert)) *ApplicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApplicationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ApplicationUpsertOne) SetUpdatedAt(v time.Time) *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ApplicationUpsertOne) UpdateUpdatedAt() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetLegalName sets the "legal_name" field.
func (u *ApplicationUpsertOne) SetLegalName(v string) *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetLegalName(v)
	})
}

// UpdateLegalName sets the "legal_name" field to the value that was provided on create.
func (u *ApplicationUpsertOne) UpdateLegalName() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateLegalName()
	})
}

// SetContactEmail sets the "contact_email" field.
func (u *ApplicationUpsertOne) SetContactEmail(v string) *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetContactEmail(v)
	})
}

// UpdateContactEmail sets the "contact_email" field to the value that was provided on create.
func (u *ApplicationUpsertOne) UpdateContactEmail() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateContactEmail()
	})
}

// SetContactPhone sets the "contact_phone" field.
func (u *ApplicationUpsertOne) SetContactPhone(v string) *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetContactPhone(v)
	})
}

// UpdateContactPhone sets the "contact_phone" field to the value that was provided on create.
func (u *ApplicationUpsertOne) UpdateContactPhone() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateContactPhone()
	})
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (u *ApplicationUpsertOne) ClearContactPhone() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearContactPhone()
	})
}

// SetDunsNumber sets the "duns_number" field.
func (u *ApplicationUpsertOne) SetDunsNumber(v string) *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetDunsNumber(v)
	})
}

// UpdateDunsNumber sets the "duns_number" field to the value that was provided on create.
func (u *ApplicationUpsertOne) UpdateDunsNumber() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateDunsNumber()
	})
}

// ClearDunsNumber clears the value of the "duns_number" field.
func (u *ApplicationUpsertOne) ClearDunsNumber() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearDunsNumber()
	})
}

// SetTradeReference1 sets the "trade_reference_1" field.
func (u *ApplicationUpsertOne) SetTradeReference1(v string) *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetTradeReference1(v)
	})
}

// UpdateTradeReference1 sets the "trade_reference_1" field to the value that was provided on create.
func (u *ApplicationUpsertOne) UpdateTradeReference1() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateTradeReference1()
	})
}

// ClearTradeReference1 clears the value of the "trade_reference_1" field.
func (u *ApplicationUpsertOne) ClearTradeReference1() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearTradeReference1()
	})
}

// SetTradeReference2 sets the "trade_reference_2" field.
func (u *ApplicationUpsertOne) SetTradeReference2(v string) *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetTradeReference2(v)
	})
}

// UpdateTradeReference2 sets the "trade_reference_2" field to the value that was provided on create.
func (u *ApplicationUpsertOne) UpdateTradeReference2() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateTradeReference2()
	})
}

// ClearTradeReference2 clears the value of the "trade_reference_2" field.
func (u *ApplicationUpsertOne) ClearTradeReference2() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearTradeReference2()
	})
}

// SetTradeReference3 sets the "trade_reference_3" field.
func (u *ApplicationUpsertOne) SetTradeReference3(v string) *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetTradeReference3(v)
	})
}

// UpdateTradeReference3 sets the "trade_reference_3" field to the value that was provided on create.
func (u *ApplicationUpsertOne) UpdateTradeReference3() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateTradeReference3()
	})
}

// ClearTradeReference3 clears the value of the "trade_reference_3" field.
func (u *ApplicationUpsertOne) ClearTradeReference3() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearTradeReference3()
	})
}

// SetBillToAddress sets the "bill_to_address" field.
func (u *ApplicationUpsertOne) SetBillToAddress(v string) *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetBillToAddress(v)
	})
}

// UpdateBillToAddress sets the "bill_to_address" field to the value that was provided on create.
func (u *ApplicationUpsertOne) UpdateBillToAddress() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateBillToAddress()
	})
}

// SetShipToAddress sets the "ship_to_address" field.
func (u *ApplicationUpsertOne) SetShipToAddress(v string) *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetShipToAddress(v)
	})
}

// UpdateShipToAddress sets the "ship_to_address" field to the value that was provided on create.
func (u *ApplicationUpsertOne) UpdateShipToAddress() *ApplicationUpsertOne {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateShipToAddress()
	})
}

// Exec executes the query.
func (u *ApplicationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApplicationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApplicationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ApplicationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ApplicationUpsertOne.ID is not supported by MySQL driver. Use ApplicationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ApplicationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ApplicationCreateBulk is the builder for creating many Application entities in bulk.
type ApplicationCreateBulk struct {
	config
	err      error
	builders []*ApplicationCreate
	conflict []sql.ConflictOption
}

// Save creates the Application entities in the database.
func (acb *ApplicationCreateBulk) Save(ctx context.Context) ([]*Application, error) {
	if acb.err != nil {
		return nil, acb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(acb.builders))
	nodes := make([]*Application, len(acb.builders))
	mutators := make([]Mutator, len(acb.builders))
	for i := range acb.builders {
		func(i int, root context.Context) {
			builder := acb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApplicationMutation)
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
					_, err = mutators[i+1].Mutate(root, acb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = acb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, acb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, acb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (acb *ApplicationCreateBulk) SaveX(ctx context.Context) []*Application {
	v, err := acb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (acb *ApplicationCreateBulk) Exec(ctx context.Context) error {
	_, err := acb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (acb *ApplicationCreateBulk) ExecX(ctx context.Context) {
	if err := acb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Application.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApplicationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (acb *ApplicationCreateBulk) OnConflict(opts ...sql.ConflictOption) *ApplicationUpsertBulk {
	acb.conflict = opts
	return &ApplicationUpsertBulk{
		create: acb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Application.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (acb *ApplicationCreateBulk) OnConflictColumns(columns ...string) *ApplicationUpsertBulk {
	acb.conflict = append(acb.conflict, sql.ConflictColumns(columns...))
	return &ApplicationUpsertBulk{
		create: acb,
	}
}

// ApplicationUpsertBulk is the builder for "upsert"-ing
// a bulk of Application nodes.
type ApplicationUpsertBulk struct {
	create *ApplicationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Application.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(application.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApplicationUpsertBulk) UpdateNewValues() *ApplicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(application.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(application.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Application.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ApplicationUpsertBulk) Ignore() *ApplicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApplicationUpsertBulk) DoNothing() *ApplicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApplicationCreateBulk.OnConflict
// documentation for more info.
func (u *ApplicationUpsertBulk) Update(set func(*ApplicationUpsert)) *ApplicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApplicationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ApplicationUpsertBulk) SetUpdatedAt(v time.Time) *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ApplicationUpsertBulk) UpdateUpdatedAt() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetLegalName sets the "legal_name" field.
func (u *ApplicationUpsertBulk) SetLegalName(v string) *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetLegalName(v)
	})
}

// UpdateLegalName sets the "legal_name" field to the value that was provided on create.
func (u *ApplicationUpsertBulk) UpdateLegalName() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateLegalName()
	})
}

// SetContactEmail sets the "contact_email" field.
func (u *ApplicationUpsertBulk) SetContactEmail(v string) *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetContactEmail(v)
	})
}

// UpdateContactEmail sets the "contact_email" field to the value that was provided on create.
func (u *ApplicationUpsertBulk) UpdateContactEmail() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateContactEmail()
	})
}

// SetContactPhone sets the "contact_phone" field.
func (u *ApplicationUpsertBulk) SetContactPhone(v string) *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetContactPhone(v)
	})
}

// UpdateContactPhone sets the "contact_phone" field to the value that was provided on create.
func (u *ApplicationUpsertBulk) UpdateContactPhone() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateContactPhone()
	})
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (u *ApplicationUpsertBulk) ClearContactPhone() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearContactPhone()
	})
}

// SetDunsNumber sets the "duns_number" field.
func (u *ApplicationUpsertBulk) SetDunsNumber(v string) *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetDunsNumber(v)
	})
}

// UpdateDunsNumber sets the "duns_number" field to the value that was provided on create.
func (u *ApplicationUpsertBulk) UpdateDunsNumber() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateDunsNumber()
	})
}

// ClearDunsNumber clears the value of the "duns_number" field.
func (u *ApplicationUpsertBulk) ClearDunsNumber() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearDunsNumber()
	})
}

// SetTradeReference1 sets the "trade_reference_1" field.
func (u *ApplicationUpsertBulk) SetTradeReference1(v string) *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetTradeReference1(v)
	})
}

// UpdateTradeReference1 sets the "trade_reference_1" field to the value that was provided on create.
func (u *ApplicationUpsertBulk) UpdateTradeReference1() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateTradeReference1()
	})
}

// ClearTradeReference1 clears the value of the "trade_reference_1" field.
func (u *ApplicationUpsertBulk) ClearTradeReference1() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearTradeReference1()
	})
}

// SetTradeReference2 sets the "trade_reference_2" field.
func (u *ApplicationUpsertBulk) SetTradeReference2(v string) *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetTradeReference2(v)
	})
}

// UpdateTradeReference2 sets the "trade_reference_2" field to the value that was provided on create.
func (u *ApplicationUpsertBulk) UpdateTradeReference2() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateTradeReference2()
	})
}

// ClearTradeReference2 clears the value of the "trade_reference_2" field.
func (u *ApplicationUpsertBulk) ClearTradeReference2() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearTradeReference2()
	})
}

// SetTradeReference3 sets the "trade_reference_3" field.
func (u *ApplicationUpsertBulk) SetTradeReference3(v string) *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetTradeReference3(v)
	})
}

// UpdateTradeReference3 sets the "trade_reference_3" field to the value that was provided on create.
func (u *ApplicationUpsertBulk) UpdateTradeReference3() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateTradeReference3()
	})
}

// ClearTradeReference3 clears the value of the "trade_reference_3" field.
func (u *ApplicationUpsertBulk) ClearTradeReference3() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.ClearTradeReference3()
	})
}

// SetBillToAddress sets the "bill_to_address" field.
func (u *ApplicationUpsertBulk) SetBillToAddress(v string) *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetBillToAddress(v)
	})
}

// UpdateBillToAddress sets the "bill_to_address" field to the value that was provided on create.
func (u *ApplicationUpsertBulk) UpdateBillToAddress() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateBillToAddress()
	})
}

// SetShipToAddress sets the "ship_to_address" field.
func (u *ApplicationUpsertBulk) SetShipToAddress(v string) *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.SetShipToAddress(v)
	})
}

// UpdateShipToAddress sets the "ship_to_address" field to the value that was provided on create.
func (u *ApplicationUpsertBulk) UpdateShipToAddress() *ApplicationUpsertBulk {
	return u.Update(func(s *ApplicationUpsert) {
		s.UpdateShipToAddress()
	})
}

// Exec executes the query.
func (u *ApplicationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ApplicationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApplicationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApplicationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
