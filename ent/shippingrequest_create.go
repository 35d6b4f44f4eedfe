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
	"github.com/netvendor/creditintake/ent/shippingrequest"
	"github.com/shopspring/decimal"
)

// ShippingRequestCreate is the builder for creating a ShippingRequest entity.
type ShippingRequestCreate struct {
	config
	mutation *ShippingRequestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (src *ShippingRequestCreate) SetCreatedAt(t time.Time) *ShippingRequestCreate {
	src.mutation.SetCreatedAt(t)
	return src
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (src *ShippingRequestCreate) SetNillableCreatedAt(t *time.Time) *ShippingRequestCreate {
	if t != nil {
		src.SetCreatedAt(*t)
	}
	return src
}

// SetUpdatedAt sets the "updated_at" field.
func (src *ShippingRequestCreate) SetUpdatedAt(t time.Time) *ShippingRequestCreate {
	src.mutation.SetUpdatedAt(t)
	return src
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (src *ShippingRequestCreate) SetNillableUpdatedAt(t *time.Time) *ShippingRequestCreate {
	if t != nil {
		src.SetUpdatedAt(*t)
	}
	return src
}

// SetContactName sets the "contact_name" field.
func (src *ShippingRequestCreate) SetContactName(s string) *ShippingRequestCreate {
	src.mutation.SetContactName(s)
	return src
}

// SetContactEmail sets the "contact_email" field.
func (src *ShippingRequestCreate) SetContactEmail(s string) *ShippingRequestCreate {
	src.mutation.SetContactEmail(s)
	return src
}

// SetContactPhone sets the "contact_phone" field.
func (src *ShippingRequestCreate) SetContactPhone(s string) *ShippingRequestCreate {
	src.mutation.SetContactPhone(s)
	return src
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (src *ShippingRequestCreate) SetNillableContactPhone(s *string) *ShippingRequestCreate {
	if s != nil {
		src.SetContactPhone(*s)
	}
	return src
}

// SetAddressLine sets the "address_line" field.
func (src *ShippingRequestCreate) SetAddressLine(s string) *ShippingRequestCreate {
	src.mutation.SetAddressLine(s)
	return src
}

// SetCity sets the "city" field.
func (src *ShippingRequestCreate) SetCity(s string) *ShippingRequestCreate {
	src.mutation.SetCity(s)
	return src
}

// SetCountry sets the "country" field.
func (src *ShippingRequestCreate) SetCountry(s string) *ShippingRequestCreate {
	src.mutation.SetCountry(s)
	return src
}

// SetPostalCode sets the "postal_code" field.
func (src *ShippingRequestCreate) SetPostalCode(s string) *ShippingRequestCreate {
	src.mutation.SetPostalCode(s)
	return src
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (src *ShippingRequestCreate) SetNillablePostalCode(s *string) *ShippingRequestCreate {
	if s != nil {
		src.SetPostalCode(*s)
	}
	return src
}

// SetCarrier sets the "carrier" field.
func (src *ShippingRequestCreate) SetCarrier(s string) *ShippingRequestCreate {
	src.mutation.SetCarrier(s)
	return src
}

// SetNillableCarrier sets the "carrier" field if the given value is not nil.
func (src *ShippingRequestCreate) SetNillableCarrier(s *string) *ShippingRequestCreate {
	if s != nil {
		src.SetCarrier(*s)
	}
	return src
}

// SetServiceLevel sets the "service_level" field.
func (src *ShippingRequestCreate) SetServiceLevel(s string) *ShippingRequestCreate {
	src.mutation.SetServiceLevel(s)
	return src
}

// SetNillableServiceLevel sets the "service_level" field if the given value is not nil.
func (src *ShippingRequestCreate) SetNillableServiceLevel(s *string) *ShippingRequestCreate {
	if s != nil {
		src.SetServiceLevel(*s)
	}
	return src
}

// SetWeightKg sets the "weight_kg" field.
func (src *ShippingRequestCreate) SetWeightKg(d decimal.Decimal) *ShippingRequestCreate {
	src.mutation.SetWeightKg(d)
	return src
}

// SetNillableWeightKg sets the "weight_kg" field if the given value is not nil.
func (src *ShippingRequestCreate) SetNillableWeightKg(d *decimal.Decimal) *ShippingRequestCreate {
	if d != nil {
		src.SetWeightKg(*d)
	}
	return src
}

// SetDeclaredValue sets the "declared_value" field.
func (src *ShippingRequestCreate) SetDeclaredValue(d decimal.Decimal) *ShippingRequestCreate {
	src.mutation.SetDeclaredValue(d)
	return src
}

// SetNillableDeclaredValue sets the "declared_value" field if the given value is not nil.
func (src *ShippingRequestCreate) SetNillableDeclaredValue(d *decimal.Decimal) *ShippingRequestCreate {
	if d != nil {
		src.SetDeclaredValue(*d)
	}
	return src
}

// SetNotes sets the "notes" field.
func (src *ShippingRequestCreate) SetNotes(s string) *ShippingRequestCreate {
	src.mutation.SetNotes(s)
	return src
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (src *ShippingRequestCreate) SetNillableNotes(s *string) *ShippingRequestCreate {
	if s != nil {
		src.SetNotes(*s)
	}
	return src
}

// SetID sets the "id" field.
func (src *ShippingRequestCreate) SetID(u uuid.UUID) *ShippingRequestCreate {
	src.mutation.SetID(u)
	return src
}

// SetNillableID sets the "id" field if the given value is not nil.
func (src *ShippingRequestCreate) SetNillableID(u *uuid.UUID) *ShippingRequestCreate {
	if u != nil {
		src.SetID(*u)
	}
	return src
}

// Mutation returns the ShippingRequestMutation object of the builder.
func (src *ShippingRequestCreate) Mutation() *ShippingRequestMutation {
	return src.mutation
}

// Save creates the ShippingRequest in the database.
func (src *ShippingRequestCreate) Save(ctx context.Context) (*ShippingRequest, error) {
	src.defaults()
	return withHooks(ctx, src.sqlSave, src.mutation, src.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (src *ShippingRequestCreate) SaveX(ctx context.Context) *ShippingRequest {
	v, err := src.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (src *ShippingRequestCreate) Exec(ctx context.Context) error {
	_, err := src.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (src *ShippingRequestCreate) ExecX(ctx context.Context) {
	if err := src.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (src *ShippingRequestCreate) defaults() {
	if _, ok := src.mutation.CreatedAt(); !ok {
		v := shippingrequest.DefaultCreatedAt()
		src.mutation.SetCreatedAt(v)
	}
	if _, ok := src.mutation.UpdatedAt(); !ok {
		v := shippingrequest.DefaultUpdatedAt()
		src.mutation.SetUpdatedAt(v)
	}
	if _, ok := src.mutation.ID(); !ok {
		v := shippingrequest.DefaultID()
		src.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (src *ShippingRequestCreate) check() error {
	if _, ok := src.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ShippingRequest.created_at"`)}
	}
	if _, ok := src.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ShippingRequest.updated_at"`)}
	}
	if _, ok := src.mutation.ContactName(); !ok {
		return &ValidationError{Name: "contact_name", err: errors.New(`ent: missing required field "ShippingRequest.contact_name"`)}
	}
	if v, ok := src.mutation.ContactName(); ok {
		if err := shippingrequest.ContactNameValidator(v); err != nil {
			return &ValidationError{Name: "contact_name", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.contact_name": %w`, err)}
		}
	}
	if _, ok := src.mutation.ContactEmail(); !ok {
		return &ValidationError{Name: "contact_email", err: errors.New(`ent: missing required field "ShippingRequest.contact_email"`)}
	}
	if v, ok := src.mutation.ContactEmail(); ok {
		if err := shippingrequest.ContactEmailValidator(v); err != nil {
			return &ValidationError{Name: "contact_email", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.contact_email": %w`, err)}
		}
	}
	if v, ok := src.mutation.ContactPhone(); ok {
		if err := shippingrequest.ContactPhoneValidator(v); err != nil {
			return &ValidationError{Name: "contact_phone", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.contact_phone": %w`, err)}
		}
	}
	if _, ok := src.mutation.AddressLine(); !ok {
		return &ValidationError{Name: "address_line", err: errors.New(`ent: missing required field "ShippingRequest.address_line"`)}
	}
	if v, ok := src.mutation.AddressLine(); ok {
		if err := shippingrequest.AddressLineValidator(v); err != nil {
			return &ValidationError{Name: "address_line", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.address_line": %w`, err)}
		}
	}
	if _, ok := src.mutation.City(); !ok {
		return &ValidationError{Name: "city", err: errors.New(`ent: missing required field "ShippingRequest.city"`)}
	}
	if v, ok := src.mutation.City(); ok {
		if err := shippingrequest.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.city": %w`, err)}
		}
	}
	if _, ok := src.mutation.Country(); !ok {
		return &ValidationError{Name: "country", err: errors.New(`ent: missing required field "ShippingRequest.country"`)}
	}
	if v, ok := src.mutation.Country(); ok {
		if err := shippingrequest.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.country": %w`, err)}
		}
	}
	if v, ok := src.mutation.PostalCode(); ok {
		if err := shippingrequest.PostalCodeValidator(v); err != nil {
			return &ValidationError{Name: "postal_code", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.postal_code": %w`, err)}
		}
	}
	if v, ok := src.mutation.Carrier(); ok {
		if err := shippingrequest.CarrierValidator(v); err != nil {
			return &ValidationError{Name: "carrier", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.carrier": %w`, err)}
		}
	}
	if v, ok := src.mutation.ServiceLevel(); ok {
		if err := shippingrequest.ServiceLevelValidator(v); err != nil {
			return &ValidationError{Name: "service_level", err: fmt.Errorf(`ent: validator failed for field "ShippingRequest.service_level": %w`, err)}
		}
	}
	return nil
}

func (src *ShippingRequestCreate) sqlSave(ctx context.Context) (*ShippingRequest, error) {
	if err := src.check(); err != nil {
		return nil, err
	}
	_node, _spec := src.createSpec()
	if err := sqlgraph.CreateNode(ctx, src.driver, _spec); err != nil {
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
	src.mutation.id = &_node.ID
	src.mutation.done = true
	return _node, nil
}

func (src *ShippingRequestCreate) createSpec() (*ShippingRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &ShippingRequest{config: src.config}
		_spec = sqlgraph.NewCreateSpec(shippingrequest.Table, sqlgraph.NewFieldSpec(shippingrequest.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = src.conflict
	if id, ok := src.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := src.mutation.CreatedAt(); ok {
		_spec.SetField(shippingrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := src.mutation.UpdatedAt(); ok {
		_spec.SetField(shippingrequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := src.mutation.ContactName(); ok {
		_spec.SetField(shippingrequest.FieldContactName, field.TypeString, value)
		_node.ContactName = value
	}
	if value, ok := src.mutation.ContactEmail(); ok {
		_spec.SetField(shippingrequest.FieldContactEmail, field.TypeString, value)
		_node.ContactEmail = value
	}
	if value, ok := src.mutation.ContactPhone(); ok {
		_spec.SetField(shippingrequest.FieldContactPhone, field.TypeString, value)
		_node.ContactPhone = value
	}
	if value, ok := src.mutation.AddressLine(); ok {
		_spec.SetField(shippingrequest.FieldAddressLine, field.TypeString, value)
		_node.AddressLine = value
	}
	if value, ok := src.mutation.City(); ok {
		_spec.SetField(shippingrequest.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := src.mutation.Country(); ok {
		_spec.SetField(shippingrequest.FieldCountry, field.TypeString, value)
		_node.Country = value
	}
	if value, ok := src.mutation.PostalCode(); ok {
		_spec.SetField(shippingrequest.FieldPostalCode, field.TypeString, value)
		_node.PostalCode = value
	}
	if value, ok := src.mutation.Carrier(); ok {
		_spec.SetField(shippingrequest.FieldCarrier, field.TypeString, value)
		_node.Carrier = value
	}
	if value, ok := src.mutation.ServiceLevel(); ok {
		_spec.SetField(shippingrequest.FieldServiceLevel, field.TypeString, value)
		_node.ServiceLevel = value
	}
	if value, ok := src.mutation.WeightKg(); ok {
		_spec.SetField(shippingrequest.FieldWeightKg, field.TypeFloat64, value)
		_node.WeightKg = value
	}
	if value, ok := src.mutation.DeclaredValue(); ok {
		_spec.SetField(shippingrequest.FieldDeclaredValue, field.TypeFloat64, value)
		_node.DeclaredValue = value
	}
	if value, ok := src.mutation.Notes(); ok {
		_spec.SetField(shippingrequest.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ShippingRequest.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ShippingRequestUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (src *ShippingRequestCreate) OnConflict(opts ...sql.ConflictOption) *ShippingRequestUpsertOne {
	src.conflict = opts
	return &ShippingRequestUpsertOne{
		create: src,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ShippingRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (src *ShippingRequestCreate) OnConflictColumns(columns ...string) *ShippingRequestUpsertOne {
	src.conflict = append(src.conflict, sql.ConflictColumns(columns...))
	return &ShippingRequestUpsertOne{
		create: src,
	}
}

type (
	// ShippingRequestUpsertOne is the builder for "upsert"-ing
	//  one ShippingRequest node.
	ShippingRequestUpsertOne struct {
		create *ShippingRequestCreate
	}

	// ShippingRequestUpsert is the "OnConflict" setter.
	ShippingRequestUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ShippingRequestUpsert) SetUpdatedAt(v time.Time) *ShippingRequestUpsert {
	u.Set(shippingrequest.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ShippingRequestUpsert) UpdateUpdatedAt() *ShippingRequestUpsert {
	u.SetExcluded(shippingrequest.FieldUpdatedAt)
	return u
}

// SetContactName sets the "contact_name" field.
func (u *ShippingRequestUpsert) SetContactName(v string) *ShippingRequestUpsert {
	u.Set(shippingrequest.FieldContactName, v)
	return u
}

// UpdateContactName sets the "contact_name" field to the value that was provided on create.
func (u *ShippingRequestUpsert) UpdateContactName() *ShippingRequestUpsert {
	u.SetExcluded(shippingrequest.FieldContactName)
	return u
}

// SetContactEmail sets the "contact_email" field.
func (u *ShippingRequestUpsert) SetContactEmail(v string) *ShippingRequestUpsert {
	u.Set(shippingrequest.FieldContactEmail, v)
	return u
}

// UpdateContactEmail sets the "contact_email" field to the value that was provided on create.
func (u *ShippingRequestUpsert) UpdateContactEmail() *ShippingRequestUpsert {
	u.SetExcluded(shippingrequest.FieldContactEmail)
	return u
}

// SetContactPhone sets the "contact_phone" field.
func (u *ShippingRequestUpsert) SetContactPhone(v string) *ShippingRequestUpsert {
	u.Set(shippingrequest.FieldContactPhone, v)
	return u
}

// UpdateContactPhone sets the "contact_phone" field to the value that was provided on create.
func (u *ShippingRequestUpsert) UpdateContactPhone() *ShippingRequestUpsert {
	u.SetExcluded(shippingrequest.FieldContactPhone)
	return u
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (u *ShippingRequestUpsert) ClearContactPhone() *ShippingRequestUpsert {
	u.SetNull(shippingrequest.FieldContactPhone)
	return u
}

// SetAddressLine sets the "address_line" field.
func (u *ShippingRequestUpsert) SetAddressLine(v string) *ShippingRequestUpsert {
	u.Set(shippingrequest.FieldAddressLine, v)
	return u
}

// UpdateAddressLine sets the "address_line" field to the value that was provided on create.
func (u *ShippingRequestUpsert) UpdateAddressLine() *ShippingRequestUpsert {
	u.SetExcluded(shippingrequest.FieldAddressLine)
	return u
}

// SetCity sets the "city" field.
func (u *ShippingRequestUpsert) SetCity(v string) *ShippingRequestUpsert {
	u.Set(shippingrequest.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *ShippingRequestUpsert) UpdateCity() *ShippingRequestUpsert {
	u.SetExcluded(shippingrequest.FieldCity)
	return u
}

// SetCountry sets the "country" field.
func (u *ShippingRequestUpsert) SetCountry(v string) *ShippingRequestUpsert {
	u.Set(shippingrequest.FieldCountry, v)
	return u
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *ShippingRequestUpsert) UpdateCountry() *ShippingRequestUpsert {
	u.SetExcluded(shippingrequest.FieldCountry)
	return u
}

// SetPostalCode sets the "postal_code" field.
func (u *ShippingRequestUpsert) SetPostalCode(v string) *ShippingRequestUpsert {
	u.Set(shippingrequest.FieldPostalCode, v)
	return u
}

// UpdatePostalCode sets the "postal_code" field to the value that was provided on create.
func (u *ShippingRequestUpsert) UpdatePostalCode() *ShippingRequestUpsert {
	u.SetExcluded(shippingrequest.FieldPostalCode)
	return u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (u *ShippingRequestUpsert) ClearPostalCode() *ShippingRequestUpsert {
	u.SetNull(shippingrequest.FieldPostalCode)
	return u
}

// SetCarrier sets the "carrier" field.
func (u *ShippingRequestUpsert) SetCarrier(v string) *ShippingRequestUpsert {
	u.Set(shippingrequest.FieldCarrier, v)
	return u
}

// UpdateCarrier sets the "carrier" field to the value that was provided on create.
func (u *ShippingRequestUpsert) UpdateCarrier() *ShippingRequestUpsert {
	u.SetExcluded(shippingrequest.FieldCarrier)
	return u
}

// ClearCarrier clears the value of the "carrier" field.
func (u *ShippingRequestUpsert) ClearCarrier() *ShippingRequestUpsert {
	u.SetNull(shippingrequest.FieldCarrier)
	return u
}

// SetServiceLevel sets the "service_level" field.
func (u *ShippingRequestUpsert) SetServiceLevel(v string) *ShippingRequestUpsert {
	u.Set(shippingrequest.FieldServiceLevel, v)
	return u
}

// UpdateServiceLevel sets the "service_level" field to the value that was provided on create.
func (u *ShippingRequestUpsert) UpdateServiceLevel() *ShippingRequestUpsert {
	u.SetExcluded(shippingrequest.FieldServiceLevel)
	return u
}

// ClearServiceLevel clears the value of the "service_level" field.
func (u *ShippingRequestUpsert) ClearServiceLevel() *ShippingRequestUpsert {
	u.SetNull(shippingrequest.FieldServiceLevel)
	return u
}

// SetWeightKg sets the "weight_kg" field.
func (u *ShippingRequestUpsert) SetWeightKg(v decimal.Decimal) *ShippingRequestUpsert {
	u.Set(shippingrequest.FieldWeightKg, v)
	return u
}

// UpdateWeightKg sets the "weight_kg" field to the value that was provided on create.
func (u *ShippingRequestUpsert) UpdateWeightKg() *ShippingRequestUpsert {
	u.SetExcluded(shippingrequest.FieldWeightKg)
	return u
}

// AddWeightKg adds v to the "weight_kg" field.
func (u *ShippingRequestUpsert) AddWeightKg(v decimal.Decimal) *ShippingRequestUpsert {
	u.Add(shippingrequest.FieldWeightKg, v)
	return u
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (u *ShippingRequestUpsert) ClearWeightKg() *ShippingRequestUpsert {
	u.SetNull(shippingrequest.FieldWeightKg)
	return u
}

// SetDeclaredValue sets the "declared_value" field.
func (u *ShippingRequestUpsert) SetDeclaredValue(v decimal.Decimal) *ShippingRequestUpsert {
	u.Set(shippingrequest.FieldDeclaredValue, v)
	return u
}

// UpdateDeclaredValue sets the "declared_value" field to the value that was provided on create.
func (u *ShippingRequestUpsert) UpdateDeclaredValue() *ShippingRequestUpsert {
	u.SetExcluded(shippingrequest.FieldDeclaredValue)
	return u
}

// AddDeclaredValue adds v to the "declared_value" field.
func (u *ShippingRequestUpsert) AddDeclaredValue(v decimal.Decimal) *ShippingRequestUpsert {
	u.Add(shippingrequest.FieldDeclaredValue, v)
	return u
}

// ClearDeclaredValue clears the value of the "declared_value" field.
func (u *ShippingRequestUpsert) ClearDeclaredValue() *ShippingRequestUpsert {
	u.SetNull(shippingrequest.FieldDeclaredValue)
	return u
}

// SetNotes sets the "notes" field.
func (u *ShippingRequestUpsert) SetNotes(v string) *ShippingRequestUpsert {
	u.Set(shippingrequest.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ShippingRequestUpsert) UpdateNotes() *ShippingRequestUpsert {
	u.SetExcluded(shippingrequest.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *ShippingRequestUpsert) ClearNotes() *ShippingRequestUpsert {
	u.SetNull(shippingrequest.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ShippingRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(shippingrequest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ShippingRequestUpsertOne) UpdateNewValues() *ShippingRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(shippingrequest.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(shippingrequest.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ShippingRequest.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ShippingRequestUpsertOne) Ignore() *ShippingRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ShippingRequestUpsertOne) DoNothing() *ShippingRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ShippingRequestCreate.OnConflict
// documentation for more info.
func (u *ShippingRequestUpsertOne) Update(set func(*ShippingRequestUpsert)) *ShippingRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ShippingRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ShippingRequestUpsertOne) SetUpdatedAt(v time.Time) *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ShippingRequestUpsertOne) UpdateUpdatedAt() *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetContactName sets the "contact_name" field.
func (u *ShippingRequestUpsertOne) SetContactName(v string) *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetContactName(v)
	})
}

// UpdateContactName sets the "contact_name" field to the value that was provided on create.
func (u *ShippingRequestUpsertOne) UpdateContactName() *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateContactName()
	})
}

// SetContactEmail sets the "contact_email" field.
func (u *ShippingRequestUpsertOne) SetContactEmail(v string) *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetContactEmail(v)
	})
}

// UpdateContactEmail sets the "contact_email" field to the value that was provided on create.
func (u *ShippingRequestUpsertOne) UpdateContactEmail() *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateContactEmail()
	})
}

// SetContactPhone sets the "contact_phone" field.
func (u *ShippingRequestUpsertOne) SetContactPhone(v string) *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetContactPhone(v)
	})
}

// UpdateContactPhone sets the "contact_phone" field to the value that was provided on create.
func (u *ShippingRequestUpsertOne) UpdateContactPhone() *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateContactPhone()
	})
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (u *ShippingRequestUpsertOne) ClearContactPhone() *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.ClearContactPhone()
	})
}

// SetAddressLine sets the "address_line" field.
func (u *ShippingRequestUpsertOne) SetAddressLine(v string) *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetAddressLine(v)
	})
}

// UpdateAddressLine sets the "address_line" field to the value that was provided on create.
func (u *ShippingRequestUpsertOne) UpdateAddressLine() *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateAddressLine()
	})
}

// SetCity sets the "city" field.
func (u *ShippingRequestUpsertOne) SetCity(v string) *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *ShippingRequestUpsertOne) UpdateCity() *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateCity()
	})
}

// SetCountry sets the "country" field.
func (u *ShippingRequestUpsertOne) SetCountry(v string) *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetCountry(v)
	})
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *ShippingRequestUpsertOne) UpdateCountry() *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateCountry()
	})
}

// SetPostalCode sets the "postal_code" field.
func (u *ShippingRequestUpsertOne) SetPostalCode(v string) *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetPostalCode(v)
	})
}

// UpdatePostalCode sets the "postal_code" field to the value that was provided on create.
func (u *ShippingRequestUpsertOne) UpdatePostalCode() *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdatePostalCode()
	})
}

// ClearPostalCode clears the value of the "postal_code" field.
func (u *ShippingRequestUpsertOne) ClearPostalCode() *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.ClearPostalCode()
	})
}

// SetCarrier sets the "carrier" field.
func (u *ShippingRequestUpsertOne) SetCarrier(v string) *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetCarrier(v)
	})
}

// UpdateCarrier sets the "carrier" field to the value that was provided on create.
func (u *ShippingRequestUpsertOne) UpdateCarrier() *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateCarrier()
	})
}

// ClearCarrier clears the value of the "carrier" field.
func (u *ShippingRequestUpsertOne) ClearCarrier() *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.ClearCarrier()
	})
}

// SetServiceLevel sets the "service_level" field.
func (u *ShippingRequestUpsertOne) SetServiceLevel(v string) *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetServiceLevel(v)
	})
}

// UpdateServiceLevel sets the "service_level" field to the value that was provided on create.
func (u *ShippingRequestUpsertOne) UpdateServiceLevel() *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateServiceLevel()
	})
}

// ClearServiceLevel clears the value of the "service_level" field.
func (u *ShippingRequestUpsertOne) ClearServiceLevel() *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.ClearServiceLevel()
	})
}

// SetWeightKg sets the "weight_kg" field.
func (u *ShippingRequestUpsertOne) SetWeightKg(v decimal.Decimal) *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetWeightKg(v)
	})
}

// AddWeightKg adds v to the "weight_kg" field.
func (u *ShippingRequestUpsertOne) AddWeightKg(v decimal.Decimal) *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.AddWeightKg(v)
	})
}

// UpdateWeightKg sets the "weight_kg" field to the value that was provided on create.
func (u *ShippingRequestUpsertOne) UpdateWeightKg() *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateWeightKg()
	})
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (u *ShippingRequestUpsertOne) ClearWeightKg() *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.ClearWeightKg()
	})
}

// SetDeclaredValue sets the "declared_value" field.
func (u *ShippingRequestUpsertOne) SetDeclaredValue(v decimal.Decimal) *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetDeclaredValue(v)
	})
}

// AddDeclaredValue adds v to the "declared_value" field.
func (u *ShippingRequestUpsertOne) AddDeclaredValue(v decimal.Decimal) *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.AddDeclaredValue(v)
	})
}

// UpdateDeclaredValue sets the "declared_value" field to the value that was provided on create.
func (u *ShippingRequestUpsertOne) UpdateDeclaredValue() *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateDeclaredValue()
	})
}

// ClearDeclaredValue clears the value of the "declared_value" field.
func (u *ShippingRequestUpsertOne) ClearDeclaredValue() *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.ClearDeclaredValue()
	})
}

// SetNotes sets the "notes" field.
func (u *ShippingRequestUpsertOne) SetNotes(v string) *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ShippingRequestUpsertOne) UpdateNotes() *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *ShippingRequestUpsertOne) ClearNotes() *ShippingRequestUpsertOne {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *ShippingRequestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ShippingRequestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ShippingRequestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ShippingRequestUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ShippingRequestUpsertOne.ID is not supported by MySQL driver. Use ShippingRequestUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ShippingRequestUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ShippingRequestCreateBulk is the builder for creating many ShippingRequest entities in bulk.
type ShippingRequestCreateBulk struct {
	config
	err      error
	builders []*ShippingRequestCreate
	conflict []sql.ConflictOption
}

// Save creates the ShippingRequest entities in the database.
func (srcb *ShippingRequestCreateBulk) Save(ctx context.Context) ([]*ShippingRequest, error) {
	if srcb.err != nil {
		return nil, srcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(srcb.builders))
	nodes := make([]*ShippingRequest, len(srcb.builders))
	mutators := make([]Mutator, len(srcb.builders))
	for i := range srcb.builders {
		func(i int, root context.Context) {
			builder := srcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ShippingRequestMutation)
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
					_, err = mutators[i+1].Mutate(root, srcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = srcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, srcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, srcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (srcb *ShippingRequestCreateBulk) SaveX(ctx context.Context) []*ShippingRequest {
	v, err := srcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (srcb *ShippingRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := srcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (srcb *ShippingRequestCreateBulk) ExecX(ctx context.Context) {
	if err := srcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ShippingRequest.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ShippingRequestUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (srcb *ShippingRequestCreateBulk) OnConflict(opts ...sql.ConflictOption) *ShippingRequestUpsertBulk {
	srcb.conflict = opts
	return &ShippingRequestUpsertBulk{
		create: srcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ShippingRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (srcb *ShippingRequestCreateBulk) OnConflictColumns(columns ...string) *ShippingRequestUpsertBulk {
	srcb.conflict = append(srcb.conflict, sql.ConflictColumns(columns...))
	return &ShippingRequestUpsertBulk{
		create: srcb,
	}
}

// ShippingRequestUpsertBulk is the builder for "upsert"-ing
// a bulk of ShippingRequest nodes.
type ShippingRequestUpsertBulk struct {
	create *ShippingRequestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ShippingRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(shippingrequest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ShippingRequestUpsertBulk) UpdateNewValues() *ShippingRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(shippingrequest.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(shippingrequest.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ShippingRequest.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ShippingRequestUpsertBulk) Ignore() *ShippingRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ShippingRequestUpsertBulk) DoNothing() *ShippingRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ShippingRequestCreateBulk.OnConflict
// documentation for more info.
func (u *ShippingRequestUpsertBulk) Update(set func(*ShippingRequestUpsert)) *ShippingRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ShippingRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ShippingRequestUpsertBulk) SetUpdatedAt(v time.Time) *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ShippingRequestUpsertBulk) UpdateUpdatedAt() *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetContactName sets the "contact_name" field.
func (u *ShippingRequestUpsertBulk) SetContactName(v string) *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetContactName(v)
	})
}

// UpdateContactName sets the "contact_name" field to the value that was provided on create.
func (u *ShippingRequestUpsertBulk) UpdateContactName() *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateContactName()
	})
}

// SetContactEmail sets the "contact_email" field.
func (u *ShippingRequestUpsertBulk) SetContactEmail(v string) *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetContactEmail(v)
	})
}

// UpdateContactEmail sets the "contact_email" field to the value that was provided on create.
func (u *ShippingRequestUpsertBulk) UpdateContactEmail() *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateContactEmail()
	})
}

// SetContactPhone sets the "contact_phone" field.
func (u *ShippingRequestUpsertBulk) SetContactPhone(v string) *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetContactPhone(v)
	})
}

// UpdateContactPhone sets the "contact_phone" field to the value that was provided on create.
func (u *ShippingRequestUpsertBulk) UpdateContactPhone() *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateContactPhone()
	})
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (u *ShippingRequestUpsertBulk) ClearContactPhone() *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.ClearContactPhone()
	})
}

// SetAddressLine sets the "address_line" field.
func (u *ShippingRequestUpsertBulk) SetAddressLine(v string) *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetAddressLine(v)
	})
}

// UpdateAddressLine sets the "address_line" field to the value that was provided on create.
func (u *ShippingRequestUpsertBulk) UpdateAddressLine() *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateAddressLine()
	})
}

// SetCity sets the "city" field.
func (u *ShippingRequestUpsertBulk) SetCity(v string) *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *ShippingRequestUpsertBulk) UpdateCity() *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateCity()
	})
}

// SetCountry sets the "country" field.
func (u *ShippingRequestUpsertBulk) SetCountry(v string) *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetCountry(v)
	})
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *ShippingRequestUpsertBulk) UpdateCountry() *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateCountry()
	})
}

// SetPostalCode sets the "postal_code" field.
func (u *ShippingRequestUpsertBulk) SetPostalCode(v string) *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetPostalCode(v)
	})
}

// UpdatePostalCode sets the "postal_code" field to the value that was provided on create.
func (u *ShippingRequestUpsertBulk) UpdatePostalCode() *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdatePostalCode()
	})
}

// ClearPostalCode clears the value of the "postal_code" field.
func (u *ShippingRequestUpsertBulk) ClearPostalCode() *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.ClearPostalCode()
	})
}

// SetCarrier sets the "carrier" field.
func (u *ShippingRequestUpsertBulk) SetCarrier(v string) *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetCarrier(v)
	})
}

// UpdateCarrier sets the "carrier" field to the value that was provided on create.
func (u *ShippingRequestUpsertBulk) UpdateCarrier() *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateCarrier()
	})
}

// ClearCarrier clears the value of the "carrier" field.
func (u *ShippingRequestUpsertBulk) ClearCarrier() *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.ClearCarrier()
	})
}

// SetServiceLevel sets the "service_level" field.
func (u *ShippingRequestUpsertBulk) SetServiceLevel(v string) *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetServiceLevel(v)
	})
}

// UpdateServiceLevel sets the "service_level" field to the value that was provided on create.
func (u *ShippingRequestUpsertBulk) UpdateServiceLevel() *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateServiceLevel()
	})
}

// ClearServiceLevel clears the value of the "service_level" field.
func (u *ShippingRequestUpsertBulk) ClearServiceLevel() *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.ClearServiceLevel()
	})
}

// SetWeightKg sets the "weight_kg" field.
func (u *ShippingRequestUpsertBulk) SetWeightKg(v decimal.Decimal) *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetWeightKg(v)
	})
}

// AddWeightKg adds v to the "weight_kg" field.
func (u *ShippingRequestUpsertBulk) AddWeightKg(v decimal.Decimal) *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.AddWeightKg(v)
	})
}

// UpdateWeightKg sets the "weight_kg" field to the value that was provided on create.
func (u *ShippingRequestUpsertBulk) UpdateWeightKg() *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateWeightKg()
	})
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (u *ShippingRequestUpsertBulk) ClearWeightKg() *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.ClearWeightKg()
	})
}

// SetDeclaredValue sets the "declared_value" field.
func (u *ShippingRequestUpsertBulk) SetDeclaredValue(v decimal.Decimal) *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetDeclaredValue(v)
	})
}

// AddDeclaredValue adds v to the "declared_value" field.
func (u *ShippingRequestUpsertBulk) AddDeclaredValue(v decimal.Decimal) *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.AddDeclaredValue(v)
	})
}

// UpdateDeclaredValue sets the "declared_value" field to the value that was provided on create.
func (u *ShippingRequestUpsertBulk) UpdateDeclaredValue() *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateDeclaredValue()
	})
}

// ClearDeclaredValue clears the value of the "declared_value" field.
func (u *ShippingRequestUpsertBulk) ClearDeclaredValue() *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.ClearDeclaredValue()
	})
}

// SetNotes sets the "notes" field.
func (u *ShippingRequestUpsertBulk) SetNotes(v string) *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ShippingRequestUpsertBulk) UpdateNotes() *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *ShippingRequestUpsertBulk) ClearNotes() *ShippingRequestUpsertBulk {
	return u.Update(func(s *ShippingRequestUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *ShippingRequestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ShippingRequestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ShippingRequestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ShippingRequestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
