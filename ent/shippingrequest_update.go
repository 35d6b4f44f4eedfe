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
	"github.com/netvendor/creditintake/ent/predicate"
	"github.com/netvendor/creditintake/ent/shippingrequest"
	"github.com/shopspring/decimal"
)

// ShippingRequestUpdate is the builder for updating ShippingRequest entities.
type ShippingRequestUpdate struct {
	config
	hooks    []Hook
	mutation *ShippingRequestMutation
}

// Where appends a list predicates to the ShippingRequestUpdate builder.
func (sru *ShippingRequestUpdate) Where(ps ...predicate.ShippingRequest) *ShippingRequestUpdate {
	sru.mutation.Where(ps...)
	return sru
}

// SetUpdatedAt sets the "updated_at" field.
func (sru *ShippingRequestUpdate) SetUpdatedAt(t time.Time) *ShippingRequestUpdate {
	sru.mutation.SetUpdatedAt(t)
	return sru
}

// SetContactName sets the "contact_name" field.
func (sru *ShippingRequestUpdate) SetContactName(s string) *ShippingRequestUpdate {
	sru.mutation.SetContactName(s)
	return sru
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (sru *ShippingRequestUpdate) SetNillableContactName(s *string) *ShippingRequestUpdate {
	if s != nil {
		sru.SetContactName(*s)
	}
	return sru
}

// SetContactEmail sets the "contact_email" field.
func (sru *ShippingRequestUpdate) SetContactEmail(s string) *ShippingRequestUpdate {
	sru.mutation.SetContactEmail(s)
	return sru
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (sru *ShippingRequestUpdate) SetNillableContactEmail(s *string) *ShippingRequestUpdate {
	if s != nil {
		sru.SetContactEmail(*s)
	}
	return sru
}

// SetContactPhone sets the "contact_phone" field.
func (sru *ShippingRequestUpdate) SetContactPhone(s string) *ShippingRequestUpdate {
	sru.mutation.SetContactPhone(s)
	return sru
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (sru *ShippingRequestUpdate) SetNillableContactPhone(s *string) *ShippingRequestUpdate {
	if s != nil {
		sru.SetContactPhone(*s)
	}
	return sru
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (sru *ShippingRequestUpdate) ClearContactPhone() *ShippingRequestUpdate {
	sru.mutation.ClearContactPhone()
	return sru
}

// SetAddressLine sets the "address_line" field.
func (sru *ShippingRequestUpdate) SetAddressLine(s string) *ShippingRequestUpdate {
	sru.mutation.SetAddressLine(s)
	return sru
}

// SetNillableAddressLine sets the "address_line" field if the given value is not nil.
func (sru *ShippingRequestUpdate) SetNillableAddressLine(s *string) *ShippingRequestUpdate {
	if s != nil {
		sru.SetAddressLine(*s)
	}
	return sru
}

// SetCity sets the "city" field.
func (sru *ShippingRequestUpdate) SetCity(s string) *ShippingRequestUpdate {
	sru.mutation.SetCity(s)
	return sru
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (sru *ShippingRequestUpdate) SetNillableCity(s *string) *ShippingRequestUpdate {
	if s != nil {
		sru.SetCity(*s)
	}
	return sru
}

// SetCountry sets the "country" field.
func (sru *ShippingRequestUpdate) SetCountry(s string) *ShippingRequestUpdate {
	sru.mutation.SetCountry(s)
	return sru
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (sru *ShippingRequestUpdate) SetNillableCountry(s *string) *ShippingRequestUpdate {
	if s != nil {
		sru.SetCountry(*s)
	}
	return sru
}

// SetPostalCode sets the "postal_code" field.
func (sru *ShippingRequestUpdate) SetPostalCode(s string) *ShippingRequestUpdate {
	sru.mutation.SetPostalCode(s)
	return sru
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (sru *ShippingRequestUpdate) SetNillablePostalCode(s *string) *ShippingRequestUpdate {
	if s != nil {
		sru.SetPostalCode(*s)
	}
	return sru
}

// ClearPostalCode clears the value of the "postal_code" field.
func (sru *ShippingRequestUpdate) ClearPostalCode() *ShippingRequestUpdate {
	sru.mutation.ClearPostalCode()
	return sru
}

// SetCarrier sets the "carrier" field.
func (sru *ShippingRequestUpdate) SetCarrier(s string) *ShippingRequestUpdate {
	sru.mutation.SetCarrier(s)
	return sru
}

// SetNillableCarrier sets the "carrier" field if the given value is not nil.
func (sru *ShippingRequestUpdate) SetNillableCarrier(s *string) *ShippingRequestUpdate {
	if s != nil {
		sru.SetCarrier(*s)
	}
	return sru
}

// ClearCarrier clears the value of the "carrier" field.
func (sru *ShippingRequestUpdate) ClearCarrier() *ShippingRequestUpdate {
	sru.mutation.ClearCarrier()
	return sru
}

// SetServiceLevel sets the "service_level" field.
func (sru *ShippingRequestUpdate) SetServiceLevel(s string) *ShippingRequestUpdate {
	sru.mutation.SetServiceLevel(s)
	return sru
}

// SetNillableServiceLevel sets the "service_level" field if the given value is not nil.
func (sru *ShippingRequestUpdate) SetNillableServiceLevel(s *string) *ShippingRequestUpdate {
	if s != nil {
		sru.SetServiceLevel(*s)
	}
	return sru
}

// ClearServiceLevel clears the value of the "service_level" field.
func (sru *ShippingRequestUpdate) ClearServiceLevel() *ShippingRequestUpdate {
	sru.mutation.ClearServiceLevel()
	return sru
}

// SetWeightKg sets the "weight_kg" field.
func (sru *ShippingRequestUpdate) SetWeightKg(d decimal.Decimal) *ShippingRequestUpdate {
	sru.mutation.ResetWeightKg()
	sru.mutation.SetWeightKg(d)
	return sru
}

// SetNillableWeightKg sets the "weight_kg" field if the given value is not nil.
func (sru *ShippingRequestUpdate) SetNillableWeightKg(d *decimal.Decimal) *ShippingRequestUpdate {
	if d != nil {
		sru.SetWeightKg(*d)
	}
	return sru
}

// AddWeightKg adds d to the "weight_kg" field.
func (sru *ShippingRequestUpdate) AddWeightKg(d decimal.Decimal) *ShippingRequestUpdate {
	sru.mutation.AddWeightKg(d)
	return sru
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (sru *ShippingRequestUpdate) ClearWeightKg() *ShippingRequestUpdate {
	sru.mutation.ClearWeightKg()
	return sru
}

// SetDeclaredValue sets the "declared_value" field.
func (sru *ShippingRequestUpdate) SetDeclaredValue(d decimal.Decimal) *ShippingRequestUpdate {
	sru.mutation.ResetDeclaredValue()
	sru.mutation.SetDeclaredValue(d)
	return sru
}

// SetNillableDeclaredValue sets the "declared_value" field if the given value is not nil.
func (sru *ShippingRequestUpdate) SetNillableDeclaredValue(d *decimal.Decimal) *ShippingRequestUpdate {
	if d != nil {
		sru.SetDeclaredValue(*d)
	}
	return sru
}

// AddDeclaredValue adds d to the "declared_value" field.
func (sru *ShippingRequestUpdate) AddDeclaredValue(d decimal.Decimal) *ShippingRequestUpdate {
	sru.mutation.AddDeclaredValue(d)
	return sru
}

// ClearDeclaredValue clears the value of the "declared_value" field.
func (sru *ShippingRequestUpdate) ClearDeclaredValue() *ShippingRequestUpdate {
	sru.mutation.ClearDeclaredValue()
	return sru
}

// SetNotes sets the "notes" field.
func (sru *ShippingRequestUpdate) SetNotes(s string) *ShippingRequestUpdate {
	sru.mutation.SetNotes(s)
	return sru
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (sru *ShippingRequestUpdate) SetNillableNotes(s *string) *ShippingRequestUpdate {
	if s != nil {
		sru.SetNotes(*s)
	}
	return sru
}

// ClearNotes clears the value of the "notes" field.
func (sru *ShippingRequestUpdate) ClearNotes() *ShippingRequestUpdate {
	sru.mutation.ClearNotes()
	return sru
}

// Mutation returns the ShippingRequestMutation object of the builder.
func (sru *ShippingRequestUpdate) Mutation() *ShippingRequestMutation {
	return sru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (sru *ShippingRequestUpdate) Save(ctx context.Context) (int, error) {
	sru.defaults()
	return withHooks(ctx, sru.sqlSave, sru.mutation, sru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sru *ShippingRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := sru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (sru *ShippingRequestUpdate) Exec(ctx context.Context) error {
	_, err := sru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sru *ShippingRequestUpdate) ExecX(ctx context.Context) {
	if err := sru.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sru *ShippingRequestUpdate) defaults() {
	if _, ok := sru.mutation.UpdatedAt(); !ok {
		v := shippingrequest.UpdateDefaultUpdatedAt()
		sru.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sru *ShippingRequestUpdate) check() error {
	if v, ok := sru.mutation.ContactName(); ok {
		if err := shippingrequest.ContactNameValidator(v); err != nil {
			return &ValidationError{Name: "contact_name", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.contact_name": %w`, err)}
		}
	}
	if v, ok := sru.mutation.ContactEmail(); ok {
		if err := shippingrequest.ContactEmailValidator(v); err != nil {
			return &ValidationError{Name: "contact_email", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.contact_email": %w`, err)}
		}
	}
	if v, ok := sru.mutation.ContactPhone(); ok {
		if err := shippingrequest.ContactPhoneValidator(v); err != nil {
			return &ValidationError{Name: "contact_phone", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.contact_phone": %w`, err)}
		}
	}
	if v, ok := sru.mutation.AddressLine(); ok {
		if err := shippingrequest.AddressLineValidator(v); err != nil {
			return &ValidationError{Name: "address_line", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.address_line": %w`, err)}
		}
	}
	if v, ok := sru.mutation.City(); ok {
		if err := shippingrequest.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.city": %w`, err)}
		}
	}
	if v, ok := sru.mutation.Country(); ok {
		if err := shippingrequest.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.country": %w`, err)}
		}
	}
	if v, ok := sru.mutation.PostalCode(); ok {
		if err := shippingrequest.PostalCodeValidator(v); err != nil {
			return &ValidationError{Name: "postal_code", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.postal_code": %w`, err)}
		}
	}
	if v, ok := sru.mutation.Carrier(); ok {
		if err := shippingrequest.CarrierValidator(v); err != nil {
			return &ValidationError{Name: "carrier", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.carrier": %w`, err)}
		}
	}
	if v, ok := sru.mutation.ServiceLevel(); ok {
		if err := shippingrequest.ServiceLevelValidator(v); err != nil {
			return &ValidationError{Name: "service_level", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.service_level": %w`, err)}
		}
	}
	return nil
}

func (sru *ShippingRequestUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := sru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(shippingrequest.Table, shippingrequest.Columns, sqlgraph.NewFieldSpec(shippingrequest.FieldID, field.TypeUUID))
	if ps := sru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sru.mutation.UpdatedAt(); ok {
		_spec.SetField(shippingrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := sru.mutation.ContactName(); ok {
		_spec.SetField(shippingrequest.FieldContactName, field.TypeString, value)
	}
	if value, ok := sru.mutation.ContactEmail(); ok {
		_spec.SetField(shippingrequest.FieldContactEmail, field.TypeString, value)
	}
	if value, ok := sru.mutation.ContactPhone(); ok {
		_spec.SetField(shippingrequest.FieldContactPhone, field.TypeString, value)
	}
	if sru.mutation.ContactPhoneCleared() {
		_spec.ClearField(shippingrequest.FieldContactPhone, field.TypeString)
	}
	if value, ok := sru.mutation.AddressLine(); ok {
		_spec.SetField(shippingrequest.FieldAddressLine, field.TypeString, value)
	}
	if value, ok := sru.mutation.City(); ok {
		_spec.SetField(shippingrequest.FieldCity, field.TypeString, value)
	}
	if value, ok := sru.mutation.Country(); ok {
		_spec.SetField(shippingrequest.FieldCountry, field.TypeString, value)
	}
	if value, ok := sru.mutation.PostalCode(); ok {
		_spec.SetField(shippingrequest.FieldPostalCode, field.TypeString, value)
	}
	if sru.mutation.PostalCodeCleared() {
		_spec.ClearField(shippingrequest.FieldPostalCode, field.TypeString)
	}
	if value, ok := sru.mutation.Carrier(); ok {
		_spec.SetField(shippingrequest.FieldCarrier, field.TypeString, value)
	}
	if sru.mutation.CarrierCleared() {
		_spec.ClearField(shippingrequest.FieldCarrier, field.TypeString)
	}
	if value, ok := sru.mutation.ServiceLevel(); ok {
		_spec.SetField(shippingrequest.FieldServiceLevel, field.TypeString, value)
	}
	if sru.mutation.ServiceLevelCleared() {
		_spec.ClearField(shippingrequest.FieldServiceLevel, field.TypeString)
	}
	if value, ok := sru.mutation.WeightKg(); ok {
		_spec.SetField(shippingrequest.FieldWeightKg, field.TypeFloat64, value)
	}
	if value, ok := sru.mutation.AddedWeightKg(); ok {
		_spec.AddField(shippingrequest.FieldWeightKg, field.TypeFloat64, value)
	}
	if sru.mutation.WeightKgCleared() {
		_spec.ClearField(shippingrequest.FieldWeightKg, field.TypeFloat64)
	}
	if value, ok := sru.mutation.DeclaredValue(); ok {
		_spec.SetField(shippingrequest.FieldDeclaredValue, field.TypeFloat64, value)
	}
	if value, ok := sru.mutation.AddedDeclaredValue(); ok {
		_spec.AddField(shippingrequest.FieldDeclaredValue, field.TypeFloat64, value)
	}
	if sru.mutation.DeclaredValueCleared() {
		_spec.ClearField(shippingrequest.FieldDeclaredValue, field.TypeFloat64)
	}
	if value, ok := sru.mutation.Notes(); ok {
		_spec.SetField(shippingrequest.FieldNotes, field.TypeString, value)
	}
	if sru.mutation.NotesCleared() {
		_spec.ClearField(shippingrequest.FieldNotes, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, sru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shippingrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	sru.mutation.done = true
	return n, nil
}

// ShippingRequestUpdateOne is the builder for updating a single ShippingRequest entity.
type ShippingRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ShippingRequestMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (sruo *ShippingRequestUpdateOne) SetUpdatedAt(t time.Time) *ShippingRequestUpdateOne {
	sruo.mutation.SetUpdatedAt(t)
	return sruo
}

// SetContactName sets the "contact_name" field.
func (sruo *ShippingRequestUpdateOne) SetContactName(s string) *ShippingRequestUpdateOne {
	sruo.mutation.SetContactName(s)
	return sruo
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (sruo *ShippingRequestUpdateOne) SetNillableContactName(s *string) *ShippingRequestUpdateOne {
	if s != nil {
		sruo.SetContactName(*s)
	}
	return sruo
}

// SetContactEmail sets the "contact_email" field.
func (sruo *ShippingRequestUpdateOne) SetContactEmail(s string) *ShippingRequestUpdateOne {
	sruo.mutation.SetContactEmail(s)
	return sruo
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (sruo *ShippingRequestUpdateOne) SetNillableContactEmail(s *string) *ShippingRequestUpdateOne {
	if s != nil {
		sruo.SetContactEmail(*s)
	}
	return sruo
}

// SetContactPhone sets the "contact_phone" field.
func (sruo *ShippingRequestUpdateOne) SetContactPhone(s string) *ShippingRequestUpdateOne {
	sruo.mutation.SetContactPhone(s)
	return sruo
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (sruo *ShippingRequestUpdateOne) SetNillableContactPhone(s *string) *ShippingRequestUpdateOne {
	if s != nil {
		sruo.SetContactPhone(*s)
	}
	return sruo
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (sruo *ShippingRequestUpdateOne) ClearContactPhone() *ShippingRequestUpdateOne {
	sruo.mutation.ClearContactPhone()
	return sruo
}

// SetAddressLine sets the "address_line" field.
func (sruo *ShippingRequestUpdateOne) SetAddressLine(s string) *ShippingRequestUpdateOne {
	sruo.mutation.SetAddressLine(s)
	return sruo
}

// SetNillableAddressLine sets the "address_line" field if the given value is not nil.
func (sruo *ShippingRequestUpdateOne) SetNillableAddressLine(s *string) *ShippingRequestUpdateOne {
	if s != nil {
		sruo.SetAddressLine(*s)
	}
	return sruo
}

// SetCity sets the "city" field.
func (sruo *ShippingRequestUpdateOne) SetCity(s string) *ShippingRequestUpdateOne {
	sruo.mutation.SetCity(s)
	return sruo
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (sruo *ShippingRequestUpdateOne) SetNillableCity(s *string) *ShippingRequestUpdateOne {
	if s != nil {
		sruo.SetCity(*s)
	}
	return sruo
}

// SetCountry sets the "country" field.
func (sruo *ShippingRequestUpdateOne) SetCountry(s string) *ShippingRequestUpdateOne {
	sruo.mutation.SetCountry(s)
	return sruo
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (sruo *ShippingRequestUpdateOne) SetNillableCountry(s *string) *ShippingRequestUpdateOne {
	if s != nil {
		sruo.SetCountry(*s)
	}
	return sruo
}

// SetPostalCode sets the "postal_code" field.
func (sruo *ShippingRequestUpdateOne) SetPostalCode(s string) *ShippingRequestUpdateOne {
	sruo.mutation.SetPostalCode(s)
	return sruo
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (sruo *ShippingRequestUpdateOne) SetNillablePostalCode(s *string) *ShippingRequestUpdateOne {
	if s != nil {
		sruo.SetPostalCode(*s)
	}
	return sruo
}

// ClearPostalCode clears the value of the "postal_code" field.
func (sruo *ShippingRequestUpdateOne) ClearPostalCode() *ShippingRequestUpdateOne {
	sruo.mutation.ClearPostalCode()
	return sruo
}

// SetCarrier sets the "carrier" field.
func (sruo *ShippingRequestUpdateOne) SetCarrier(s string) *ShippingRequestUpdateOne {
	sruo.mutation.SetCarrier(s)
	return sruo
}

// SetNillableCarrier sets the "carrier" field if the given value is not nil.
func (sruo *ShippingRequestUpdateOne) SetNillableCarrier(s *string) *ShippingRequestUpdateOne {
	if s != nil {
		sruo.SetCarrier(*s)
	}
	return sruo
}

// ClearCarrier clears the value of the "carrier" field.
func (sruo *ShippingRequestUpdateOne) ClearCarrier() *ShippingRequestUpdateOne {
	sruo.mutation.ClearCarrier()
	return sruo
}

// SetServiceLevel sets the "service_level" field.
func (sruo *ShippingRequestUpdateOne) SetServiceLevel(s string) *ShippingRequestUpdateOne {
	sruo.mutation.SetServiceLevel(s)
	return sruo
}

// SetNillableServiceLevel sets the "service_level" field if the given value is not nil.
func (sruo *ShippingRequestUpdateOne) SetNillableServiceLevel(s *string) *ShippingRequestUpdateOne {
	if s != nil {
		sruo.SetServiceLevel(*s)
	}
	return sruo
}

// ClearServiceLevel clears the value of the "service_level" field.
func (sruo *ShippingRequestUpdateOne) ClearServiceLevel() *ShippingRequestUpdateOne {
	sruo.mutation.ClearServiceLevel()
	return sruo
}

// SetWeightKg sets the "weight_kg" field.
func (sruo *ShippingRequestUpdateOne) SetWeightKg(d decimal.Decimal) *ShippingRequestUpdateOne {
	sruo.mutation.ResetWeightKg()
	sruo.mutation.SetWeightKg(d)
	return sruo
}

// SetNillableWeightKg sets the "weight_kg" field if the given value is not nil.
func (sruo *ShippingRequestUpdateOne) SetNillableWeightKg(d *decimal.Decimal) *ShippingRequestUpdateOne {
	if d != nil {
		sruo.SetWeightKg(*d)
	}
	return sruo
}

// AddWeightKg adds d to the "weight_kg" field.
func (sruo *ShippingRequestUpdateOne) AddWeightKg(d decimal.Decimal) *ShippingRequestUpdateOne {
	sruo.mutation.AddWeightKg(d)
	return sruo
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (sruo *ShippingRequestUpdateOne) ClearWeightKg() *ShippingRequestUpdateOne {
	sruo.mutation.ClearWeightKg()
	return sruo
}

// SetDeclaredValue sets the "declared_value" field.
func (sruo *ShippingRequestUpdateOne) SetDeclaredValue(d decimal.Decimal) *ShippingRequestUpdateOne {
	sruo.mutation.ResetDeclaredValue()
	sruo.mutation.SetDeclaredValue(d)
	return sruo
}

// SetNillableDeclaredValue sets the "declared_value" field if the given value is not nil.
func (sruo *ShippingRequestUpdateOne) SetNillableDeclaredValue(d *decimal.Decimal) *ShippingRequestUpdateOne {
	if d != nil {
		sruo.SetDeclaredValue(*d)
	}
	return sruo
}

// AddDeclaredValue adds d to the "declared_value" field.
func (sruo *ShippingRequestUpdateOne) AddDeclaredValue(d decimal.Decimal) *ShippingRequestUpdateOne {
	sruo.mutation.AddDeclaredValue(d)
	return sruo
}

// ClearDeclaredValue clears the value of the "declared_value" field.
func (sruo *ShippingRequestUpdateOne) ClearDeclaredValue() *ShippingRequestUpdateOne {
	sruo.mutation.ClearDeclaredValue()
	return sruo
}

// SetNotes sets the "notes" field.
func (sruo *ShippingRequestUpdateOne) SetNotes(s string) *ShippingRequestUpdateOne {
	sruo.mutation.SetNotes(s)
	return sruo
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (sruo *ShippingRequestUpdateOne) SetNillableNotes(s *string) *ShippingRequestUpdateOne {
	if s != nil {
		sruo.SetNotes(*s)
	}
	return sruo
}

// ClearNotes clears the value of the "notes" field.
func (sruo *ShippingRequestUpdateOne) ClearNotes() *ShippingRequestUpdateOne {
	sruo.mutation.ClearNotes()
	return sruo
}

// Mutation returns the ShippingRequestMutation object of the builder.
func (sruo *ShippingRequestUpdateOne) Mutation() *ShippingRequestMutation {
	return sruo.mutation
}

// Where appends a list predicates to the ShippingRequestUpdate builder.
func (sruo *ShippingRequestUpdateOne) Where(ps ...predicate.ShippingRequest) *ShippingRequestUpdateOne {
	sruo.mutation.Where(ps...)
	return sruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (sruo *ShippingRequestUpdateOne) Select(field string, fields ...string) *ShippingRequestUpdateOne {
	sruo.fields = append([]string{field}, fields...)
	return sruo
}

// Save executes the query and returns the updated ShippingRequest entity.
func (sruo *ShippingRequestUpdateOne) Save(ctx context.Context) (*ShippingRequest, error) {
	sruo.defaults()
	return withHooks(ctx, sruo.sqlSave, sruo.mutation, sruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sruo *ShippingRequestUpdateOne) SaveX(ctx context.Context) *ShippingRequest {
	node, err := sruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (sruo *ShippingRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := sruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sruo *ShippingRequestUpdateOne) ExecX(ctx context.Context) {
	if err := sruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sruo *ShippingRequestUpdateOne) defaults() {
	if _, ok := sruo.mutation.UpdatedAt(); !ok {
		v := shippingrequest.UpdateDefaultUpdatedAt()
		sruo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sruo *ShippingRequestUpdateOne) check() error {
	if v, ok := sruo.mutation.ContactName(); ok {
		if err := shippingrequest.ContactNameValidator(v); err != nil {
			return &ValidationError{Name: "contact_name", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.contact_name": %w`, err)}
		}
	}
	if v, ok := sruo.mutation.ContactEmail(); ok {
		if err := shippingrequest.ContactEmailValidator(v); err != nil {
			return &ValidationError{Name: "contact_email", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.contact_email": %w`, err)}
		}
	}
	if v, ok := sruo.mutation.ContactPhone(); ok {
		if err := shippingrequest.ContactPhoneValidator(v); err != nil {
			return &ValidationError{Name: "contact_phone", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.contact_phone": %w`, err)}
		}
	}
	if v, ok := sruo.mutation.AddressLine(); ok {
		if err := shippingrequest.AddressLineValidator(v); err != nil {
			return &ValidationError{Name: "address_line", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.address_line": %w`, err)}
		}
	}
	if v, ok := sruo.mutation.City(); ok {
		if err := shippingrequest.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.city": %w`, err)}
		}
	}
	if v, ok := sruo.mutation.Country(); ok {
		if err := shippingrequest.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.country": %w`, err)}
		}
	}
	if v, ok := sruo.mutation.PostalCode(); ok {
		if err := shippingrequest.PostalCodeValidator(v); err != nil {
			return &ValidationError{Name: "postal_code", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.postal_code": %w`, err)}
		}
	}
	if v, ok := sruo.mutation.Carrier(); ok {
		if err := shippingrequest.CarrierValidator(v); err != nil {
			return &ValidationError{Name: "carrier", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.carrier": %w`, err)}
		}
	}
	if v, ok := sruo.mutation.ServiceLevel(); ok {
		if err := shippingrequest.ServiceLevelValidator(v); err != nil {
			return &ValidationError{Name: "service_level", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.service_level": %w`, err)}
		}
	}
	return nil
}

func (sruo *ShippingRequestUpdateOne) sqlSave(ctx context.Context) (_node *ShippingRequest, err error) {
	if err := sruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(shippingrequest.Table, shippingrequest.Columns, sqlgraph.NewFieldSpec(shippingrequest.FieldID, field.TypeUUID))
	id, ok := sruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ShippingRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := sruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, shippingrequest.FieldID)
		for _, f := range fields {
			if !shippingrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != shippingrequest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := sruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sruo.mutation.UpdatedAt(); ok {
		_spec.SetField(shippingrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := sruo.mutation.ContactName(); ok {
		_spec.SetField(shippingrequest.FieldContactName, field.TypeString, value)
	}
	if value, ok := sruo.mutation.ContactEmail(); ok {
		_spec.SetField(shippingrequest.FieldContactEmail, field.TypeString, value)
	}
	if value, ok := sruo.mutation.ContactPhone(); ok {
		_spec.SetField(shippingrequest.FieldContactPhone, field.TypeString, value)
	}
	if sruo.mutation.ContactPhoneCleared() {
		_spec.ClearField(shippingrequest.FieldContactPhone, field.TypeString)
	}
	if value, ok := sruo.mutation.AddressLine(); ok {
		_spec.SetField(shippingrequest.FieldAddressLine, field.TypeString, value)
	}
	if value, ok := sruo.mutation.City(); ok {
		_spec.SetField(shippingrequest.FieldCity, field.TypeString, value)
	}
	if value, ok := sruo.mutation.Country(); ok {
		_spec.SetField(shippingrequest.FieldCountry, field.TypeString, value)
	}
	if value, ok := sruo.mutation.PostalCode(); ok {
		_spec.SetField(shippingrequest.FieldPostalCode, field.TypeString, value)
	}
	if sruo.mutation.PostalCodeCleared() {
		_spec.ClearField(shippingrequest.FieldPostalCode, field.TypeString)
	}
	if value, ok := sruo.mutation.Carrier(); ok {
		_spec.SetField(shippingrequest.FieldCarrier, field.TypeString, value)
	}
	if sruo.mutation.CarrierCleared() {
		_spec.ClearField(shippingrequest.FieldCarrier, field.TypeString)
	}
	if value, ok := sruo.mutation.ServiceLevel(); ok {
		_spec.SetField(shippingrequest.FieldServiceLevel, field.TypeString, value)
	}
	if sruo.mutation.ServiceLevelCleared() {
		_spec.ClearField(shippingrequest.FieldServiceLevel, field.TypeString)
	}
	if value, ok := sruo.mutation.WeightKg(); ok {
		_spec.SetField(shippingrequest.FieldWeightKg, field.TypeFloat64, value)
	}
	if value, ok := sruo.mutation.AddedWeightKg(); ok {
		_spec.AddField(shippingrequest.FieldWeightKg, field.TypeFloat64, value)
	}
	if sruo.mutation.WeightKgCleared() {
		_spec.ClearField(shippingrequest.FieldWeightKg, field.TypeFloat64)
	}
	if value, ok := sruo.mutation.DeclaredValue(); ok {
		_spec.SetField(shippingrequest.FieldDeclaredValue, field.TypeFloat64, value)
	}
	if value, ok := sruo.mutation.AddedDeclaredValue(); ok {
		_spec.AddField(shippingrequest.FieldDeclaredValue, field.TypeFloat64, value)
	}
	if sruo.mutation.DeclaredValueCleared() {
		_spec.ClearField(shippingrequest.FieldDeclaredValue, field.TypeFloat64)
	}
	if value, ok := sruo.mutation.Notes(); ok {
		_spec.SetField(shippingrequest.FieldNotes, field.TypeString, value)
	}
	if sruo.mutation.NotesCleared() {
		_spec.ClearField(shippingrequest.FieldNotes, field.TypeString)
	}
	_node = &ShippingRequest{config: sruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, sruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shippingrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	sruo.mutation.done = true
	return _node, nil
}
