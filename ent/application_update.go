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
	"github.com/netvendor/creditintake/ent/vendorform"
)

// ApplicationUpdate is the builder for updating Application entities.
type ApplicationUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicationMutation
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (au *ApplicationUpdate) Where(ps ...predicate.Application) *ApplicationUpdate {
	au.mutation.Where(ps...)
	return au
}

// SetUpdatedAt sets the "updated_at" field.
func (au *ApplicationUpdate) SetUpdatedAt(t time.Time) *ApplicationUpdate {
	au.mutation.SetUpdatedAt(t)
	return au
}

// SetLegalName sets the "legal_name" field.
func (au *ApplicationUpdate) SetLegalName(s string) *ApplicationUpdate {
	au.mutation.SetLegalName(s)
	return au
}

// SetNillableLegalName sets the "legal_name" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableLegalName(s *string) *ApplicationUpdate {
	if s != nil {
		au.SetLegalName(*s)
	}
	return au
}

// SetContactEmail sets the "contact_email" field.
func (au *ApplicationUpdate) SetContactEmail(s string) *ApplicationUpdate {
	au.mutation.SetContactEmail(s)
	return au
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableContactEmail(s *string) *ApplicationUpdate {
	if s != nil {
		au.SetContactEmail(*s)
	}
	return au
}

// SetContactPhone sets the "contact_phone" field.
func (au *ApplicationUpdate) SetContactPhone(s string) *ApplicationUpdate {
	au.mutation.SetContactPhone(s)
	return au
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableContactPhone(s *string) *ApplicationUpdate {
	if s != nil {
		au.SetContactPhone(*s)
	}
	return au
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (au *ApplicationUpdate) ClearContactPhone() *ApplicationUpdate {
	au.mutation.ClearContactPhone()
	return au
}

// SetDunsNumber sets the "duns_number" field.
func (au *ApplicationUpdate) SetDunsNumber(s string) *ApplicationUpdate {
	au.mutation.SetDunsNumber(s)
	return au
}

// SetNillableDunsNumber sets the "duns_number" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableDunsNumber(s *string) *ApplicationUpdate {
	if s != nil {
		au.SetDunsNumber(*s)
	}
	return au
}

// ClearDunsNumber clears the value of the "duns_number" field.
func (au *ApplicationUpdate) ClearDunsNumber() *ApplicationUpdate {
	au.mutation.ClearDunsNumber()
	return au
}

// SetTradeReference1 sets the "trade_reference_1" field.
func (au *ApplicationUpdate) SetTradeReference1(s string) *ApplicationUpdate {
	au.mutation.SetTradeReference1(s)
	return au
}

// SetNillableTradeReference1 sets the "trade_reference_1" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableTradeReference1(s *string) *ApplicationUpdate {
	if s != nil {
		au.SetTradeReference1(*s)
	}
	return au
}

// ClearTradeReference1 clears the value of the "trade_reference_1" field.
func (au *ApplicationUpdate) ClearTradeReference1() *ApplicationUpdate {
	au.mutation.ClearTradeReference1()
	return au
}

// SetTradeReference2 sets the "trade_reference_2" field.
func (au *ApplicationUpdate) SetTradeReference2(s string) *ApplicationUpdate {
	au.mutation.SetTradeReference2(s)
	return au
}

// SetNillableTradeReference2 sets the "trade_reference_2" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableTradeReference2(s *string) *ApplicationUpdate {
	if s != nil {
		au.SetTradeReference2(*s)
	}
	return au
}

// ClearTradeReference2 clears the value of the "trade_reference_2" field.
func (au *ApplicationUpdate) ClearTradeReference2() *ApplicationUpdate {
	au.mutation.ClearTradeReference2()
	return au
}

// SetTradeReference3 sets the "trade_reference_3" field.
func (au *ApplicationUpdate) SetTradeReference3(s string) *ApplicationUpdate {
	au.mutation.SetTradeReference3(s)
	return au
}

// SetNillableTradeReference3 sets the "trade_reference_3" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableTradeReference3(s *string) *ApplicationUpdate {
	if s != nil {
		au.SetTradeReference3(*s)
	}
	return au
}

// ClearTradeReference3 clears the value of the "trade_reference_3" field.
func (au *ApplicationUpdate) ClearTradeReference3() *ApplicationUpdate {
	au.mutation.ClearTradeReference3()
	return au
}

// SetBillToAddress sets the "bill_to_address" field.
func (au *ApplicationUpdate) SetBillToAddress(s string) *ApplicationUpdate {
	au.mutation.SetBillToAddress(s)
	return au
}

// SetNillableBillToAddress sets the "bill_to_address" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableBillToAddress(s *string) *ApplicationUpdate {
	if s != nil {
		au.SetBillToAddress(*s)
	}
	return au
}

// SetShipToAddress sets the "ship_to_address" field.
func (au *ApplicationUpdate) SetShipToAddress(s string) *ApplicationUpdate {
	au.mutation.SetShipToAddress(s)
	return au
}

// SetNillableShipToAddress sets the "ship_to_address" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableShipToAddress(s *string) *ApplicationUpdate {
	if s != nil {
		au.SetShipToAddress(*s)
	}
	return au
}

// SetSignatureID sets the "signature" edge to the DigitalSignature entity by ID.
func (au *ApplicationUpdate) SetSignatureID(id uuid.UUID) *ApplicationUpdate {
	au.mutation.SetSignatureID(id)
	return au
}

// SetNillableSignatureID sets the "signature" edge to the DigitalSignature entity by ID if the given value is not nil.
func (au *ApplicationUpdate) SetNillableSignatureID(id *uuid.UUID) *ApplicationUpdate {
	if id != nil {
		au = au.SetSignatureID(*id)
	}
	return au
}

// SetSignature sets the "signature" edge to the DigitalSignature entity.
func (au *ApplicationUpdate) SetSignature(d *DigitalSignature) *ApplicationUpdate {
	return au.SetSignatureID(d.ID)
}

// AddVendorFormIDs adds the "vendor_forms" edge to the VendorForm entity by IDs.
func (au *ApplicationUpdate) AddVendorFormIDs(ids ...uuid.UUID) *ApplicationUpdate {
	au.mutation.AddVendorFormIDs(ids...)
	return au
}

// AddVendorForms adds the "vendor_forms" edges to the VendorForm entity.
func (au *ApplicationUpdate) AddVendorForms(v ...*VendorForm) *ApplicationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return au.AddVendorFormIDs(ids...)
}

// Mutation returns the ApplicationMutation object of the builder.
func (au *ApplicationUpdate) Mutation() *ApplicationMutation {
	return au.mutation
}

// ClearSignature clears the "signature" edge to the DigitalSignature entity.
func (au *ApplicationUpdate) ClearSignature() *ApplicationUpdate {
	au.mutation.ClearSignature()
	return au
}

// ClearVendorForms clears all "vendor_forms" edges to the VendorForm entity.
func (au *ApplicationUpdate) ClearVendorForms() *ApplicationUpdate {
	au.mutation.ClearVendorForms()
	return au
}

// RemoveVendorFormIDs removes the "vendor_forms" edge to VendorForm entities by IDs.
func (au *ApplicationUpdate) RemoveVendorFormIDs(ids ...uuid.UUID) *ApplicationUpdate {
	au.mutation.RemoveVendorFormIDs(ids...)
	return au
}

// RemoveVendorForms removes "vendor_forms" edges to VendorForm entities.
func (au *ApplicationUpdate) RemoveVendorForms(v ...*VendorForm) *ApplicationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return au.RemoveVendorFormIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (au *ApplicationUpdate) Save(ctx context.Context) (int, error) {
	au.defaults()
	return withHooks(ctx, au.sqlSave, au.mutation, au.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (au *ApplicationUpdate) SaveX(ctx context.Context) int {
	affected, err := au.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (au *ApplicationUpdate) Exec(ctx context.Context) error {
	_, err := au.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (au *ApplicationUpdate) ExecX(ctx context.Context) {
	if err := au.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (au *ApplicationUpdate) defaults() {
	if _, ok := au.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		au.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (au *ApplicationUpdate) check() error {
	if v, ok := au.mutation.LegalName(); ok {
		if err := application.LegalNameValidator(v); err != nil {
			return &ValidationError{Name: "legal_name", err: fmt.Errorf(`ent: validator failed for field "Application.legal_name": %w`, err)}
		}
	}
	if v, ok := au.mutation.ContactEmail(); ok {
		if err := application.ContactEmailValidator(v); err != nil {
			return &ValidationError{Name: "contact_email", err: fmt.Errorf(`ent: validator failed for field "Application.contact_email": %w`, err)}
		}
	}
	if v, ok := au.mutation.ContactPhone(); ok {
		if err := application.ContactPhoneValidator(v); err != nil {
			return &ValidationError{Name: "contact_phone", err: fmt.Errorf(`ent: validator failed for field "Application.contact_phone": %w`, err)}
		}
	}
	if v, ok := au.mutation.DunsNumber(); ok {
		if err := application.DunsNumberValidator(v); err != nil {
			return &ValidationError{Name: "duns_number", err: fmt.Errorf(`ent: validator failed for field "Application.duns_number": %w`, err)}
		}
	}
	if v, ok := au.mutation.TradeReference1(); ok {
		if err := application.TradeReference1Validator(v); err != nil {
			return &ValidationError{Name: "trade_reference_1", err: fmt.Errorf(`ent: validator failed for field "Application.trade_reference_1": %w`, err)}
		}
	}
	if v, ok := au.mutation.TradeReference2(); ok {
		if err := application.TradeReference2Validator(v); err != nil {
			return &ValidationError{Name: "trade_reference_2", err: fmt.Errorf(`ent: validator failed for field "Application.trade_reference_2": %w`, err)}
		}
	}
	if v, ok := au.mutation.TradeReference3(); ok {
		if err := application.TradeReference3Validator(v); err != nil {
			return &ValidationError{Name: "trade_reference_3", err: fmt.Errorf(`ent: validator failed for field "Application.trade_reference_3": %w`, err)}
		}
	}
	if v, ok := au.mutation.BillToAddress(); ok {
		if err := application.BillToAddressValidator(v); err != nil {
			return &ValidationError{Name: "bill_to_address", err: fmt.Errorf(`ent: validator failed for field "Application.bill_to_address": %w`, err)}
		}
	}
	if v, ok := au.mutation.ShipToAddress(); ok {
		if err := application.ShipToAddressValidator(v); err != nil {
			return &ValidationError{Name: "ship_to_address", err: fmt.Errorf(`ent: validator failed for field "Application.ship_to_address": %w`, err)}
		}
	}
	return nil
}

func (au *ApplicationUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := au.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	if ps := au.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := au.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := au.mutation.LegalName(); ok {
		_spec.SetField(application.FieldLegalName, field.TypeString, value)
	}
	if value, ok := au.mutation.ContactEmail(); ok {
		_spec.SetField(application.FieldContactEmail, field.TypeString, value)
	}
	if value, ok := au.mutation.ContactPhone(); ok {
		_spec.SetField(application.FieldContactPhone, field.TypeString, value)
	}
	if au.mutation.ContactPhoneCleared() {
		_spec.ClearField(application.FieldContactPhone, field.TypeString)
	}
	if value, ok := au.mutation.DunsNumber(); ok {
		_spec.SetField(application.FieldDunsNumber, field.TypeString, value)
	}
	if au.mutation.DunsNumberCleared() {
		_spec.ClearField(application.FieldDunsNumber, field.TypeString)
	}
	if value, ok := au.mutation.TradeReference1(); ok {
		_spec.SetField(application.FieldTradeReference1, field.TypeString, value)
	}
	if au.mutation.TradeReference1Cleared() {
		_spec.ClearField(application.FieldTradeReference1, field.TypeString)
	}
	if value, ok := au.mutation.TradeReference2(); ok {
		_spec.SetField(application.FieldTradeReference2, field.TypeString, value)
	}
	if au.mutation.TradeReference2Cleared() {
		_spec.ClearField(application.FieldTradeReference2, field.TypeString)
	}
	if value, ok := au.mutation.TradeReference3(); ok {
		_spec.SetField(application.FieldTradeReference3, field.TypeString, value)
	}
	if au.mutation.TradeReference3Cleared() {
		_spec.ClearField(application.FieldTradeReference3, field.TypeString)
	}
	if value, ok := au.mutation.BillToAddress(); ok {
		_spec.SetField(application.FieldBillToAddress, field.TypeString, value)
	}
	if value, ok := au.mutation.ShipToAddress(); ok {
		_spec.SetField(application.FieldShipToAddress, field.TypeString, value)
	}
	if au.mutation.SignatureCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.SignatureIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if au.mutation.VendorFormsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.RemovedVendorFormsIDs(); len(nodes) > 0 && !au.mutation.VendorFormsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.VendorFormsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, au.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	au.mutation.done = true
	return n, nil
}

// ApplicationUpdateOne is the builder for updating a single Application entity.
type ApplicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (auo *ApplicationUpdateOne) SetUpdatedAt(t time.Time) *ApplicationUpdateOne {
	auo.mutation.SetUpdatedAt(t)
	return auo
}

// SetLegalName sets the "legal_name" field.
func (auo *ApplicationUpdateOne) SetLegalName(s string) *ApplicationUpdateOne {
	auo.mutation.SetLegalName(s)
	return auo
}

// SetNillableLegalName sets the "legal_name" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableLegalName(s *string) *ApplicationUpdateOne {
	if s != nil {
		auo.SetLegalName(*s)
	}
	return auo
}

// SetContactEmail sets the "contact_email" field.
func (auo *ApplicationUpdateOne) SetContactEmail(s string) *ApplicationUpdateOne {
	auo.mutation.SetContactEmail(s)
	return auo
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableContactEmail(s *string) *ApplicationUpdateOne {
	if s != nil {
		auo.SetContactEmail(*s)
	}
	return auo
}

// SetContactPhone sets the "contact_phone" field.
func (auo *ApplicationUpdateOne) SetContactPhone(s string) *ApplicationUpdateOne {
	auo.mutation.SetContactPhone(s)
	return auo
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableContactPhone(s *string) *ApplicationUpdateOne {
	if s != nil {
		auo.SetContactPhone(*s)
	}
	return auo
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (auo *ApplicationUpdateOne) ClearContactPhone() *ApplicationUpdateOne {
	auo.mutation.ClearContactPhone()
	return auo
}

// SetDunsNumber sets the "duns_number" field.
func (auo *ApplicationUpdateOne) SetDunsNumber(s string) *ApplicationUpdateOne {
	auo.mutation.SetDunsNumber(s)
	return auo
}

// SetNillableDunsNumber sets the "duns_number" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableDunsNumber(s *string) *ApplicationUpdateOne {
	if s != nil {
		auo.SetDunsNumber(*s)
	}
	return auo
}

// ClearDunsNumber clears the value of the "duns_number" field.
func (auo *ApplicationUpdateOne) ClearDunsNumber() *ApplicationUpdateOne {
	auo.mutation.ClearDunsNumber()
	return auo
}

// SetTradeReference1 sets the "trade_reference_1" field.
func (auo *ApplicationUpdateOne) SetTradeReference1(s string) *ApplicationUpdateOne {
	auo.mutation.SetTradeReference1(s)
	return auo
}

// SetNillableTradeReference1 sets the "trade_reference_1" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableTradeReference1(s *string) *ApplicationUpdateOne {
	if s != nil {
		auo.SetTradeReference1(*s)
	}
	return auo
}

// ClearTradeReference1 clears the value of the "trade_reference_1" field.
func (auo *ApplicationUpdateOne) ClearTradeReference1() *ApplicationUpdateOne {
	auo.mutation.ClearTradeReference1()
	return auo
}

// SetTradeReference2 sets the "trade_reference_2" field.
func (auo *ApplicationUpdateOne) SetTradeReference2(s string) *ApplicationUpdateOne {
	auo.mutation.SetTradeReference2(s)
	return auo
}

// SetNillableTradeReference2 sets the "trade_reference_2" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableTradeReference2(s *string) *ApplicationUpdateOne {
	if s != nil {
		auo.SetTradeReference2(*s)
	}
	return auo
}

// ClearTradeReference2 clears the value of the "trade_reference_2" field.
func (auo *ApplicationUpdateOne) ClearTradeReference2() *ApplicationUpdateOne {
	auo.mutation.ClearTradeReference2()
	return auo
}

// SetTradeReference3 sets the "trade_reference_3" field.
func (auo *ApplicationUpdateOne) SetTradeReference3(s string) *ApplicationUpdateOne {
	auo.mutation.SetTradeReference3(s)
	return auo
}

// SetNillableTradeReference3 sets the "trade_reference_3" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableTradeReference3(s *string) *ApplicationUpdateOne {
	if s != nil {
		auo.SetTradeReference3(*s)
	}
	return auo
}

// ClearTradeReference3 clears the value of the "trade_reference_3" field.
func (auo *ApplicationUpdateOne) ClearTradeReference3() *ApplicationUpdateOne {
	auo.mutation.ClearTradeReference3()
	return auo
}

// SetBillToAddress sets the "bill_to_address" field.
func (auo *ApplicationUpdateOne) SetBillToAddress(s string) *ApplicationUpdateOne {
	auo.mutation.SetBillToAddress(s)
	return auo
}

// SetNillableBillToAddress sets the "bill_to_address" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableBillToAddress(s *string) *ApplicationUpdateOne {
	if s != nil {
		auo.SetBillToAddress(*s)
	}
	return auo
}

// SetShipToAddress sets the "ship_to_address" field.
func (auo *ApplicationUpdateOne) SetShipToAddress(s string) *ApplicationUpdateOne {
	auo.mutation.SetShipToAddress(s)
	return auo
}

// SetNillableShipToAddress sets the "ship_to_address" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableShipToAddress(s *string) *ApplicationUpdateOne {
	if s != nil {
		auo.SetShipToAddress(*s)
	}
	return auo
}

// SetSignatureID sets the "signature" edge to the DigitalSignature entity by ID.
func (auo *ApplicationUpdateOne) SetSignatureID(id uuid.UUID) *ApplicationUpdateOne {
	auo.mutation.SetSignatureID(id)
	return auo
}

// SetNillableSignatureID sets the "signature" edge to the DigitalSignature entity by ID if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableSignatureID(id *uuid.UUID) *ApplicationUpdateOne {
	if id != nil {
		auo = auo.SetSignatureID(*id)
	}
	return auo
}

// SetSignature sets the "signature" edge to the DigitalSignature entity.
func (auo *ApplicationUpdateOne) SetSignature(d *DigitalSignature) *ApplicationUpdateOne {
	return auo.SetSignatureID(d.ID)
}

// AddVendorFormIDs adds the "vendor_forms" edge to the VendorForm entity by IDs.
func (auo *ApplicationUpdateOne) AddVendorFormIDs(ids ...uuid.UUID) *ApplicationUpdateOne {
	auo.mutation.AddVendorFormIDs(ids...)
	return auo
}

// AddVendorForms adds the "vendor_forms" edges to the VendorForm entity.
func (auo *ApplicationUpdateOne) AddVendorForms(v ...*VendorForm) *ApplicationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return auo.AddVendorFormIDs(ids...)
}

// Mutation returns the ApplicationMutation object of the builder.
func (auo *ApplicationUpdateOne) Mutation() *ApplicationMutation {
	return auo.mutation
}

// ClearSignature clears the "signature" edge to the DigitalSignature entity.
func (auo *ApplicationUpdateOne) ClearSignature() *ApplicationUpdateOne {
	auo.mutation.ClearSignature()
	return auo
}

// ClearVendorForms clears all "vendor_forms" edges to the VendorForm entity.
func (auo *ApplicationUpdateOne) ClearVendorForms() *ApplicationUpdateOne {
	auo.mutation.ClearVendorForms()
	return auo
}

// RemoveVendorFormIDs removes the "vendor_forms" edge to VendorForm entities by IDs.
func (auo *ApplicationUpdateOne) RemoveVendorFormIDs(ids ...uuid.UUID) *ApplicationUpdateOne {
	auo.mutation.RemoveVendorFormIDs(ids...)
	return auo
}

// RemoveVendorForms removes "vendor_forms" edges to VendorForm entities.
func (auo *ApplicationUpdateOne) RemoveVendorForms(v ...*VendorForm) *ApplicationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return auo.RemoveVendorFormIDs(ids...)
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (auo *ApplicationUpdateOne) Where(ps ...predicate.Application) *ApplicationUpdateOne {
	auo.mutation.Where(ps...)
	return auo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (auo *ApplicationUpdateOne) Select(field string, fields ...string) *ApplicationUpdateOne {
	auo.fields = append([]string{field}, fields...)
	return auo
}

// Save executes the query and returns the updated Application entity.
func (auo *ApplicationUpdateOne) Save(ctx context.Context) (*Application, error) {
	auo.defaults()
	return withHooks(ctx, auo.sqlSave, auo.mutation, auo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (auo *ApplicationUpdateOne) SaveX(ctx context.Context) *Application {
	node, err := auo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (auo *ApplicationUpdateOne) Exec(ctx context.Context) error {
	_, err := auo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (auo *ApplicationUpdateOne) ExecX(ctx context.Context) {
	if err := auo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (auo *ApplicationUpdateOne) defaults() {
	if _, ok := auo.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		auo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (auo *ApplicationUpdateOne) check() error {
	if v, ok := auo.mutation.LegalName(); ok {
		if err := application.LegalNameValidator(v); err != nil {
			return &ValidationError{Name: "legal_name", err: fmt.Errorf(`ent: validator failed for field "Application.legal_name": %w`, err)}
		}
	}
	if v, ok := auo.mutation.ContactEmail(); ok {
		if err := application.ContactEmailValidator(v); err != nil {
			return &ValidationError{Name: "contact_email", err: fmt.Errorf(`ent: validator failed for field "Application.contact_email": %w`, err)}
		}
	}
	if v, ok := auo.mutation.ContactPhone(); ok {
		if err := application.ContactPhoneValidator(v); err != nil {
			return &ValidationError{Name: "contact_phone", err: fmt.Errorf(`ent: validator failed for field "Application.contact_phone": %w`, err)}
		}
	}
	if v, ok := auo.mutation.DunsNumber(); ok {
		if err := application.DunsNumberValidator(v); err != nil {
			return &ValidationError{Name: "duns_number", err: fmt.Errorf(`ent: validator failed for field "Application.duns_number": %w`, err)}
		}
	}
	if v, ok := auo.mutation.TradeReference1(); ok {
		if err := application.TradeReference1Validator(v); err != nil {
			return &ValidationError{Name: "trade_reference_1", err: fmt.Errorf(`ent: validator failed for field "Application.trade_reference_1": %w`, err)}
		}
	}
	if v, ok := auo.mutation.TradeReference2(); ok {
		if err := application.TradeReference2Validator(v); err != nil {
			return &ValidationError{Name: "trade_reference_2", err: fmt.Errorf(`ent: validator failed for field "Application.trade_reference_2": %w`, err)}
		}
	}
	if v, ok := auo.mutation.TradeReference3(); ok {
		if err := application.TradeReference3Validator(v); err != nil {
			return &ValidationError{Name: "trade_reference_3", err: fmt.Errorf(`ent: validator failed for field "Application.trade_reference_3": %w`, err)}
		}
	}
	if v, ok := auo.mutation.BillToAddress(); ok {
		if err := application.BillToAddressValidator(v); err != nil {
			return &ValidationError{Name: "bill_to_address", err: fmt.Errorf(`ent: validator failed for field "Application.bill_to_address": %w`, err)}
		}
	}
	if v, ok := auo.mutation.ShipToAddress(); ok {
		if err := application.ShipToAddressValidator(v); err != nil {
			return &ValidationError{Name: "ship_to_address", err: fmt.Errorf(`ent: validator failed for field "Application.ship_to_address": %w`, err)}
		}
	}
	return nil
}

func (auo *ApplicationUpdateOne) sqlSave(ctx context.Context) (_node *Application, err error) {
	if err := auo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	id, ok := auo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Application.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := auo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, application.FieldID)
		for _, f := range fields {
			if !application.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != application.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := auo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := auo.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := auo.mutation.LegalName(); ok {
		_spec.SetField(application.FieldLegalName, field.TypeString, value)
	}
	if value, ok := auo.mutation.ContactEmail(); ok {
		_spec.SetField(application.FieldContactEmail, field.TypeString, value)
	}
	if value, ok := auo.mutation.ContactPhone(); ok {
		_spec.SetField(application.FieldContactPhone, field.TypeString, value)
	}
	if auo.mutation.ContactPhoneCleared() {
		_spec.ClearField(application.FieldContactPhone, field.TypeString)
	}
	if value, ok := auo.mutation.DunsNumber(); ok {
		_spec.SetField(application.FieldDunsNumber, field.TypeString, value)
	}
	if auo.mutation.DunsNumberCleared() {
		_spec.ClearField(application.FieldDunsNumber, field.TypeString)
	}
	if value, ok := auo.mutation.TradeReference1(); ok {
		_spec.SetField(application.FieldTradeReference1, field.TypeString, value)
	}
	if auo.mutation.TradeReference1Cleared() {
		_spec.ClearField(application.FieldTradeReference1, field.TypeString)
	}
	if value, ok := auo.mutation.TradeReference2(); ok {
		_spec.SetField(application.FieldTradeReference2, field.TypeString, value)
	}
	if auo.mutation.TradeReference2Cleared() {
		_spec.ClearField(application.FieldTradeReference2, field.TypeString)
	}
	if value, ok := auo.mutation.TradeReference3(); ok {
		_spec.SetField(application.FieldTradeReference3, field.TypeString, value)
	}
	if auo.mutation.TradeReference3Cleared() {
		_spec.ClearField(application.FieldTradeReference3, field.TypeString)
	}
	if value, ok := auo.mutation.BillToAddress(); ok {
		_spec.SetField(application.FieldBillToAddress, field.TypeString, value)
	}
	if value, ok := auo.mutation.ShipToAddress(); ok {
		_spec.SetField(application.FieldShipToAddress, field.TypeString, value)
	}
	if auo.mutation.SignatureCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.SignatureIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if auo.mutation.VendorFormsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.RemovedVendorFormsIDs(); len(nodes) > 0 && !auo.mutation.VendorFormsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.VendorFormsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Application{config: auo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, auo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	auo.mutation.done = true
	return _node, nil
}
