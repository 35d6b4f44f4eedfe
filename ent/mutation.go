// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/netvendor/creditintake/ent/application"
	"github.com/netvendor/creditintake/ent/digitalsignature"
	"github.com/netvendor/creditintake/ent/predicate"
	"github.com/netvendor/creditintake/ent/shippingrequest"
	"github.com/netvendor/creditintake/ent/vendorform"
	"github.com/shopspring/decimal"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApplication      = "Application"
	TypeDigitalSignature = "DigitalSignature"
	TypeShippingRequest  = "ShippingRequest"
	TypeVendorForm       = "VendorForm"
)

// ApplicationMutation represents an operation that mutates the Application nodes in the graph.
type ApplicationMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	legal_name          *string
	contact_email       *string
	contact_phone       *string
	duns_number         *string
	trade_reference_1   *string
	trade_reference_2   *string
	trade_reference_3   *string
	bill_to_address     *string
	ship_to_address     *string
	clearedFields       map[string]struct{}
	signature           *uuid.UUID
	clearedsignature    bool
	vendor_forms        map[uuid.UUID]struct{}
	removedvendor_forms map[uuid.UUID]struct{}
	clearedvendor_forms bool
	done                bool
	oldValue            func(context.Context) (*Application, error)
	predicates          []predicate.Application
}

var _ ent.Mutation = (*ApplicationMutation)(nil)

// applicationOption allows management of the mutation configuration using functional options.
type applicationOption func(*ApplicationMutation)

// newApplicationMutation creates new mutation for the Application entity.
func newApplicationMutation(c config, op Op, opts ...applicationOption) *ApplicationMutation {
	m := &ApplicationMutation{
		config:        c,
		op:            op,
		typ:           TypeApplication,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApplicationID sets the ID field of the mutation.
func withApplicationID(id uuid.UUID) applicationOption {
	return func(m *ApplicationMutation) {
		var (
			err   error
			once  sync.Once
			value *Application
		)
		m.oldValue = func(ctx context.Context) (*Application, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Application.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApplication sets the old Application of the mutation.
func withApplication(node *Application) applicationOption {
	return func(m *ApplicationMutation) {
		m.oldValue = func(context.Context) (*Application, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApplicationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApplicationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Application entities.
func (m *ApplicationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApplicationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApplicationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Application.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ApplicationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApplicationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApplicationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ApplicationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ApplicationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ApplicationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetLegalName sets the "legal_name" field.
func (m *ApplicationMutation) SetLegalName(s string) {
	m.legal_name = &s
}

// LegalName returns the value of the "legal_name" field in the mutation.
func (m *ApplicationMutation) LegalName() (r string, exists bool) {
	v := m.legal_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLegalName returns the old "legal_name" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldLegalName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLegalName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLegalName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLegalName: %w", err)
	}
	return oldValue.LegalName, nil
}

// ResetLegalName resets all changes to the "legal_name" field.
func (m *ApplicationMutation) ResetLegalName() {
	m.legal_name = nil
}

// SetContactEmail sets the "contact_email" field.
func (m *ApplicationMutation) SetContactEmail(s string) {
	m.contact_email = &s
}

// ContactEmail returns the value of the "contact_email" field in the mutation.
func (m *ApplicationMutation) ContactEmail() (r string, exists bool) {
	v := m.contact_email
	if v == nil {
		return
	}
	return *v, true
}

// OldContactEmail returns the old "contact_email" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldContactEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactEmail: %w", err)
	}
	return oldValue.ContactEmail, nil
}

// ResetContactEmail resets all changes to the "contact_email" field.
func (m *ApplicationMutation) ResetContactEmail() {
	m.contact_email = nil
}

// SetContactPhone sets the "contact_phone" field.
func (m *ApplicationMutation) SetContactPhone(s string) {
	m.contact_phone = &s
}

// ContactPhone returns the value of the "contact_phone" field in the mutation.
func (m *ApplicationMutation) ContactPhone() (r string, exists bool) {
	v := m.contact_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldContactPhone returns the old "contact_phone" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldContactPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactPhone: %w", err)
	}
	return oldValue.ContactPhone, nil
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (m *ApplicationMutation) ClearContactPhone() {
	m.contact_phone = nil
	m.clearedFields[application.FieldContactPhone] = struct{}{}
}

// ContactPhoneCleared returns if the "contact_phone" field was cleared in this mutation.
func (m *ApplicationMutation) ContactPhoneCleared() bool {
	_, ok := m.clearedFields[application.FieldContactPhone]
	return ok
}

// ResetContactPhone resets all changes to the "contact_phone" field.
func (m *ApplicationMutation) ResetContactPhone() {
	m.contact_phone = nil
	delete(m.clearedFields, application.FieldContactPhone)
}

// SetDunsNumber sets the "duns_number" field.
func (m *ApplicationMutation) SetDunsNumber(s string) {
	m.duns_number = &s
}

// DunsNumber returns the value of the "duns_number" field in the mutation.
func (m *ApplicationMutation) DunsNumber() (r string, exists bool) {
	v := m.duns_number
	if v == nil {
		return
	}
	return *v, true
}

// OldDunsNumber returns the old "duns_number" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldDunsNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDunsNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDunsNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDunsNumber: %w", err)
	}
	return oldValue.DunsNumber, nil
}

// ClearDunsNumber clears the value of the "duns_number" field.
func (m *ApplicationMutation) ClearDunsNumber() {
	m.duns_number = nil
	m.clearedFields[application.FieldDunsNumber] = struct{}{}
}

// DunsNumberCleared returns if the "duns_number" field was cleared in this mutation.
func (m *ApplicationMutation) DunsNumberCleared() bool {
	_, ok := m.clearedFields[application.FieldDunsNumber]
	return ok
}

// ResetDunsNumber resets all changes to the "duns_number" field.
func (m *ApplicationMutation) ResetDunsNumber() {
	m.duns_number = nil
	delete(m.clearedFields, application.FieldDunsNumber)
}

// SetTradeReference1 sets the "trade_reference_1" field.
func (m *ApplicationMutation) SetTradeReference1(s string) {
	m.trade_reference_1 = &s
}

// TradeReference1 returns the value of the "trade_reference_1" field in the mutation.
func (m *ApplicationMutation) TradeReference1() (r string, exists bool) {
	v := m.trade_reference_1
	if v == nil {
		return
	}
	return *v, true
}

// OldTradeReference1 returns the old "trade_reference_1" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldTradeReference1(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTradeReference1 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTradeReference1 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTradeReference1: %w", err)
	}
	return oldValue.TradeReference1, nil
}

// ClearTradeReference1 clears the value of the "trade_reference_1" field.
func (m *ApplicationMutation) ClearTradeReference1() {
	m.trade_reference_1 = nil
	m.clearedFields[application.FieldTradeReference1] = struct{}{}
}

// TradeReference1Cleared returns if the "trade_reference_1" field was cleared in this mutation.
func (m *ApplicationMutation) TradeReference1Cleared() bool {
	_, ok := m.clearedFields[application.FieldTradeReference1]
	return ok
}

// ResetTradeReference1 resets all changes to the "trade_reference_1" field.
func (m *ApplicationMutation) ResetTradeReference1() {
	m.trade_reference_1 = nil
	delete(m.clearedFields, application.FieldTradeReference1)
}

// SetTradeReference2 sets the "trade_reference_2" field.
func (m *ApplicationMutation) SetTradeReference2(s string) {
	m.trade_reference_2 = &s
}

// TradeReference2 returns the value of the "trade_reference_2" field in the mutation.
func (m *ApplicationMutation) TradeReference2() (r string, exists bool) {
	v := m.trade_reference_2
	if v == nil {
		return
	}
	return *v, true
}

// OldTradeReference2 returns the old "trade_reference_2" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldTradeReference2(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTradeReference2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTradeReference2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTradeReference2: %w", err)
	}
	return oldValue.TradeReference2, nil
}

// ClearTradeReference2 clears the value of the "trade_reference_2" field.
func (m *ApplicationMutation) ClearTradeReference2() {
	m.trade_reference_2 = nil
	m.clearedFields[application.FieldTradeReference2] = struct{}{}
}

// TradeReference2Cleared returns if the "trade_reference_2" field was cleared in this mutation.
func (m *ApplicationMutation) TradeReference2Cleared() bool {
	_, ok := m.clearedFields[application.FieldTradeReference2]
	return ok
}

// ResetTradeReference2 resets all changes to the "trade_reference_2" field.
func (m *ApplicationMutation) ResetTradeReference2() {
	m.trade_reference_2 = nil
	delete(m.clearedFields, application.FieldTradeReference2)
}

// SetTradeReference3 sets the "trade_reference_3" field.
func (m *ApplicationMutation) SetTradeReference3(s string) {
	m.trade_reference_3 = &s
}

// TradeReference3 returns the value of the "trade_reference_3" field in the mutation.
func (m *ApplicationMutation) TradeReference3() (r string, exists bool) {
	v := m.trade_reference_3
	if v == nil {
		return
	}
	return *v, true
}

// OldTradeReference3 returns the old "trade_reference_3" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldTradeReference3(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTradeReference3 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTradeReference3 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTradeReference3: %w", err)
	}
	return oldValue.TradeReference3, nil
}

// ClearTradeReference3 clears the value of the "trade_reference_3" field.
func (m *ApplicationMutation) ClearTradeReference3() {
	m.trade_reference_3 = nil
	m.clearedFields[application.FieldTradeReference3] = struct{}{}
}

// TradeReference3Cleared returns if the "trade_reference_3" field was cleared in this mutation.
func (m *ApplicationMutation) TradeReference3Cleared() bool {
	_, ok := m.clearedFields[application.FieldTradeReference3]
	return ok
}

// ResetTradeReference3 resets all changes to the "trade_reference_3" field.
func (m *ApplicationMutation) ResetTradeReference3() {
	m.trade_reference_3 = nil
	delete(m.clearedFields, application.FieldTradeReference3)
}

// SetBillToAddress sets the "bill_to_address" field.
func (m *ApplicationMutation) SetBillToAddress(s string) {
	m.bill_to_address = &s
}

// BillToAddress returns the value of the "bill_to_address" field in the mutation.
func (m *ApplicationMutation) BillToAddress() (r string, exists bool) {
	v := m.bill_to_address
	if v == nil {
		return
	}
	return *v, true
}

// OldBillToAddress returns the old "bill_to_address" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldBillToAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBillToAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBillToAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBillToAddress: %w", err)
	}
	return oldValue.BillToAddress, nil
}

// ResetBillToAddress resets all changes to the "bill_to_address" field.
func (m *ApplicationMutation) ResetBillToAddress() {
	m.bill_to_address = nil
}

// SetShipToAddress sets the "ship_to_address" field.
func (m *ApplicationMutation) SetShipToAddress(s string) {
	m.ship_to_address = &s
}

// ShipToAddress returns the value of the "ship_to_address" field in the mutation.
func (m *ApplicationMutation) ShipToAddress() (r string, exists bool) {
	v := m.ship_to_address
	if v == nil {
		return
	}
	return *v, true
}

// OldShipToAddress returns the old "ship_to_address" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldShipToAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShipToAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShipToAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShipToAddress: %w", err)
	}
	return oldValue.ShipToAddress, nil
}

// ResetShipToAddress resets all changes to the "ship_to_address" field.
func (m *ApplicationMutation) ResetShipToAddress() {
	m.ship_to_address = nil
}

// SetSignatureID sets the "signature" edge to the DigitalSignature entity by id.
func (m *ApplicationMutation) SetSignatureID(id uuid.UUID) {
	m.signature = &id
}

// ClearSignature clears the "signature" edge to the DigitalSignature entity.
func (m *ApplicationMutation) ClearSignature() {
	m.clearedsignature = true
}

// SignatureCleared reports if the "signature" edge to the DigitalSignature entity was cleared.
func (m *ApplicationMutation) SignatureCleared() bool {
	return m.clearedsignature
}

// SignatureID returns the "signature" edge ID in the mutation.
func (m *ApplicationMutation) SignatureID() (id uuid.UUID, exists bool) {
	if m.signature != nil {
		return *m.signature, true
	}
	return
}

// SignatureIDs returns the "signature" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SignatureID instead. It exists only for internal usage by the builders.
func (m *ApplicationMutation) SignatureIDs() (ids []uuid.UUID) {
	if id := m.signature; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSignature resets all changes to the "signature" edge.
func (m *ApplicationMutation) ResetSignature() {
	m.signature = nil
	m.clearedsignature = false
}

// AddVendorFormIDs adds the "vendor_forms" edge to the VendorForm entity by ids.
func (m *ApplicationMutation) AddVendorFormIDs(ids ...uuid.UUID) {
	if m.vendor_forms == nil {
		m.vendor_forms = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.vendor_forms[ids[i]] = struct{}{}
	}
}

// ClearVendorForms clears the "vendor_forms" edge to the VendorForm entity.
func (m *ApplicationMutation) ClearVendorForms() {
	m.clearedvendor_forms = true
}

// VendorFormsCleared reports if the "vendor_forms" edge to the VendorForm entity was cleared.
func (m *ApplicationMutation) VendorFormsCleared() bool {
	return m.clearedvendor_forms
}

// RemoveVendorFormIDs removes the "vendor_forms" edge to the VendorForm entity by IDs.
func (m *ApplicationMutation) RemoveVendorFormIDs(ids ...uuid.UUID) {
	if m.removedvendor_forms == nil {
		m.removedvendor_forms = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.vendor_forms, ids[i])
		m.removedvendor_forms[ids[i]] = struct{}{}
	}
}

// RemovedVendorForms returns the removed IDs of the "vendor_forms" edge to the VendorForm entity.
func (m *ApplicationMutation) RemovedVendorFormsIDs() (ids []uuid.UUID) {
	for id := range m.removedvendor_forms {
		ids = append(ids, id)
	}
	return
}

// VendorFormsIDs returns the "vendor_forms" edge IDs in the mutation.
func (m *ApplicationMutation) VendorFormsIDs() (ids []uuid.UUID) {
	for id := range m.vendor_forms {
		ids = append(ids, id)
	}
	return
}

// ResetVendorForms resets all changes to the "vendor_forms" edge.
func (m *ApplicationMutation) ResetVendorForms() {
	m.vendor_forms = nil
	m.clearedvendor_forms = false
	m.removedvendor_forms = nil
}

// Where appends a list predicates to the ApplicationMutation builder.
func (m *ApplicationMutation) Where(ps ...predicate.Application) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApplicationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApplicationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Application, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApplicationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApplicationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Application).
func (m *ApplicationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApplicationMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, application.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, application.FieldUpdatedAt)
	}
	if m.legal_name != nil {
		fields = append(fields, application.FieldLegalName)
	}
	if m.contact_email != nil {
		fields = append(fields, application.FieldContactEmail)
	}
	if m.contact_phone != nil {
		fields = append(fields, application.FieldContactPhone)
	}
	if m.duns_number != nil {
		fields = append(fields, application.FieldDunsNumber)
	}
	if m.trade_reference_1 != nil {
		fields = append(fields, application.FieldTradeReference1)
	}
	if m.trade_reference_2 != nil {
		fields = append(fields, application.FieldTradeReference2)
	}
	if m.trade_reference_3 != nil {
		fields = append(fields, application.FieldTradeReference3)
	}
	if m.bill_to_address != nil {
		fields = append(fields, application.FieldBillToAddress)
	}
	if m.ship_to_address != nil {
		fields = append(fields, application.FieldShipToAddress)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApplicationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case application.FieldCreatedAt:
		return m.CreatedAt()
	case application.FieldUpdatedAt:
		return m.UpdatedAt()
	case application.FieldLegalName:
		return m.LegalName()
	case application.FieldContactEmail:
		return m.ContactEmail()
	case application.FieldContactPhone:
		return m.ContactPhone()
	case application.FieldDunsNumber:
		return m.DunsNumber()
	case application.FieldTradeReference1:
		return m.TradeReference1()
	case application.FieldTradeReference2:
		return m.TradeReference2()
	case application.FieldTradeReference3:
		return m.TradeReference3()
	case application.FieldBillToAddress:
		return m.BillToAddress()
	case application.FieldShipToAddress:
		return m.ShipToAddress()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApplicationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case application.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case application.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case application.FieldLegalName:
		return m.OldLegalName(ctx)
	case application.FieldContactEmail:
		return m.OldContactEmail(ctx)
	case application.FieldContactPhone:
		return m.OldContactPhone(ctx)
	case application.FieldDunsNumber:
		return m.OldDunsNumber(ctx)
	case application.FieldTradeReference1:
		return m.OldTradeReference1(ctx)
	case application.FieldTradeReference2:
		return m.OldTradeReference2(ctx)
	case application.FieldTradeReference3:
		return m.OldTradeReference3(ctx)
	case application.FieldBillToAddress:
		return m.OldBillToAddress(ctx)
	case application.FieldShipToAddress:
		return m.OldShipToAddress(ctx)
	}
	return nil, fmt.Errorf("unknown Application field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case application.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case application.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case application.FieldLegalName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLegalName(v)
		return nil
	case application.FieldContactEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactEmail(v)
		return nil
	case application.FieldContactPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactPhone(v)
		return nil
	case application.FieldDunsNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDunsNumber(v)
		return nil
	case application.FieldTradeReference1:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTradeReference1(v)
		return nil
	case application.FieldTradeReference2:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTradeReference2(v)
		return nil
	case application.FieldTradeReference3:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTradeReference3(v)
		return nil
	case application.FieldBillToAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBillToAddress(v)
		return nil
	case application.FieldShipToAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShipToAddress(v)
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApplicationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApplicationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Application numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApplicationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(application.FieldContactPhone) {
		fields = append(fields, application.FieldContactPhone)
	}
	if m.FieldCleared(application.FieldDunsNumber) {
		fields = append(fields, application.FieldDunsNumber)
	}
	if m.FieldCleared(application.FieldTradeReference1) {
		fields = append(fields, application.FieldTradeReference1)
	}
	if m.FieldCleared(application.FieldTradeReference2) {
		fields = append(fields, application.FieldTradeReference2)
	}
	if m.FieldCleared(application.FieldTradeReference3) {
		fields = append(fields, application.FieldTradeReference3)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApplicationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApplicationMutation) ClearField(name string) error {
	switch name {
	case application.FieldContactPhone:
		m.ClearContactPhone()
		return nil
	case application.FieldDunsNumber:
		m.ClearDunsNumber()
		return nil
	case application.FieldTradeReference1:
		m.ClearTradeReference1()
		return nil
	case application.FieldTradeReference2:
		m.ClearTradeReference2()
		return nil
	case application.FieldTradeReference3:
		m.ClearTradeReference3()
		return nil
	}
	return fmt.Errorf("unknown Application nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApplicationMutation) ResetField(name string) error {
	switch name {
	case application.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case application.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case application.FieldLegalName:
		m.ResetLegalName()
		return nil
	case application.FieldContactEmail:
		m.ResetContactEmail()
		return nil
	case application.FieldContactPhone:
		m.ResetContactPhone()
		return nil
	case application.FieldDunsNumber:
		m.ResetDunsNumber()
		return nil
	case application.FieldTradeReference1:
		m.ResetTradeReference1()
		return nil
	case application.FieldTradeReference2:
		m.ResetTradeReference2()
		return nil
	case application.FieldTradeReference3:
		m.ResetTradeReference3()
		return nil
	case application.FieldBillToAddress:
		m.ResetBillToAddress()
		return nil
	case application.FieldShipToAddress:
		m.ResetShipToAddress()
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApplicationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.signature != nil {
		edges = append(edges, application.EdgeSignature)
	}
	if m.vendor_forms != nil {
		edges = append(edges, application.EdgeVendorForms)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApplicationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case application.EdgeSignature:
		if id := m.signature; id != nil {
			return []ent.Value{*id}
		}
	case application.EdgeVendorForms:
		ids := make([]ent.Value, 0, len(m.vendor_forms))
		for id := range m.vendor_forms {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApplicationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedvendor_forms != nil {
		edges = append(edges, application.EdgeVendorForms)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApplicationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case application.EdgeVendorForms:
		ids := make([]ent.Value, 0, len(m.removedvendor_forms))
		for id := range m.removedvendor_forms {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApplicationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsignature {
		edges = append(edges, application.EdgeSignature)
	}
	if m.clearedvendor_forms {
		edges = append(edges, application.EdgeVendorForms)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApplicationMutation) EdgeCleared(name string) bool {
	switch name {
	case application.EdgeSignature:
		return m.clearedsignature
	case application.EdgeVendorForms:
		return m.clearedvendor_forms
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApplicationMutation) ClearEdge(name string) error {
	switch name {
	case application.EdgeSignature:
		m.ClearSignature()
		return nil
	}
	return fmt.Errorf("unknown Application unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApplicationMutation) ResetEdge(name string) error {
	switch name {
	case application.EdgeSignature:
		m.ResetSignature()
		return nil
	case application.EdgeVendorForms:
		m.ResetVendorForms()
		return nil
	}
	return fmt.Errorf("unknown Application edge %s", name)
}

// DigitalSignatureMutation represents an operation that mutates the DigitalSignature nodes in the graph.
type DigitalSignatureMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	signer_name        *string
	signer_email       *string
	signature_image    *string
	signature_hash     *string
	document_url       *string
	signed_at          *time.Time
	clearedFields      map[string]struct{}
	application        *uuid.UUID
	clearedapplication bool
	done               bool
	oldValue           func(context.Context) (*DigitalSignature, error)
	predicates         []predicate.DigitalSignature
}

var _ ent.Mutation = (*DigitalSignatureMutation)(nil)

// digitalsignatureOption allows management of the mutation configuration using functional options.
type digitalsignatureOption func(*DigitalSignatureMutation)

// newDigitalSignatureMutation creates new mutation for the DigitalSignature entity.
func newDigitalSignatureMutation(c config, op Op, opts ...digitalsignatureOption) *DigitalSignatureMutation {
	m := &DigitalSignatureMutation{
		config:        c,
		op:            op,
		typ:           TypeDigitalSignature,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDigitalSignatureID sets the ID field of the mutation.
func withDigitalSignatureID(id uuid.UUID) digitalsignatureOption {
	return func(m *DigitalSignatureMutation) {
		var (
			err   error
			once  sync.Once
			value *DigitalSignature
		)
		m.oldValue = func(ctx context.Context) (*DigitalSignature, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DigitalSignature.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDigitalSignature sets the old DigitalSignature of the mutation.
func withDigitalSignature(node *DigitalSignature) digitalsignatureOption {
	return func(m *DigitalSignatureMutation) {
		m.oldValue = func(context.Context) (*DigitalSignature, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DigitalSignatureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DigitalSignatureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DigitalSignature entities.
func (m *DigitalSignatureMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DigitalSignatureMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DigitalSignatureMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DigitalSignature.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DigitalSignatureMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DigitalSignatureMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DigitalSignature entity.
// If the DigitalSignature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigitalSignatureMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DigitalSignatureMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DigitalSignatureMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DigitalSignatureMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DigitalSignature entity.
// If the DigitalSignature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigitalSignatureMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DigitalSignatureMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetApplicationID sets the "application_id" field.
func (m *DigitalSignatureMutation) SetApplicationID(u uuid.UUID) {
	m.application = &u
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *DigitalSignatureMutation) ApplicationID() (r uuid.UUID, exists bool) {
	v := m.application
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the DigitalSignature entity.
// If the DigitalSignature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigitalSignatureMutation) OldApplicationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *DigitalSignatureMutation) ResetApplicationID() {
	m.application = nil
}

// SetSignerName sets the "signer_name" field.
func (m *DigitalSignatureMutation) SetSignerName(s string) {
	m.signer_name = &s
}

// SignerName returns the value of the "signer_name" field in the mutation.
func (m *DigitalSignatureMutation) SignerName() (r string, exists bool) {
	v := m.signer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSignerName returns the old "signer_name" field's value of the DigitalSignature entity.
// If the DigitalSignature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigitalSignatureMutation) OldSignerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignerName: %w", err)
	}
	return oldValue.SignerName, nil
}

// ResetSignerName resets all changes to the "signer_name" field.
func (m *DigitalSignatureMutation) ResetSignerName() {
	m.signer_name = nil
}

// SetSignerEmail sets the "signer_email" field.
func (m *DigitalSignatureMutation) SetSignerEmail(s string) {
	m.signer_email = &s
}

// SignerEmail returns the value of the "signer_email" field in the mutation.
func (m *DigitalSignatureMutation) SignerEmail() (r string, exists bool) {
	v := m.signer_email
	if v == nil {
		return
	}
	return *v, true
}

// OldSignerEmail returns the old "signer_email" field's value of the DigitalSignature entity.
// If the DigitalSignature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigitalSignatureMutation) OldSignerEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignerEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignerEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignerEmail: %w", err)
	}
	return oldValue.SignerEmail, nil
}

// ResetSignerEmail resets all changes to the "signer_email" field.
func (m *DigitalSignatureMutation) ResetSignerEmail() {
	m.signer_email = nil
}

// SetSignatureImage sets the "signature_image" field.
func (m *DigitalSignatureMutation) SetSignatureImage(s string) {
	m.signature_image = &s
}

// SignatureImage returns the value of the "signature_image" field in the mutation.
func (m *DigitalSignatureMutation) SignatureImage() (r string, exists bool) {
	v := m.signature_image
	if v == nil {
		return
	}
	return *v, true
}

// OldSignatureImage returns the old "signature_image" field's value of the DigitalSignature entity.
// If the DigitalSignature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigitalSignatureMutation) OldSignatureImage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignatureImage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignatureImage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignatureImage: %w", err)
	}
	return oldValue.SignatureImage, nil
}

// ResetSignatureImage resets all changes to the "signature_image" field.
func (m *DigitalSignatureMutation) ResetSignatureImage() {
	m.signature_image = nil
}

// SetSignatureHash sets the "signature_hash" field.
func (m *DigitalSignatureMutation) SetSignatureHash(s string) {
	m.signature_hash = &s
}

// SignatureHash returns the value of the "signature_hash" field in the mutation.
func (m *DigitalSignatureMutation) SignatureHash() (r string, exists bool) {
	v := m.signature_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldSignatureHash returns the old "signature_hash" field's value of the DigitalSignature entity.
// If the DigitalSignature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigitalSignatureMutation) OldSignatureHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignatureHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignatureHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignatureHash: %w", err)
	}
	return oldValue.SignatureHash, nil
}

// ResetSignatureHash resets all changes to the "signature_hash" field.
func (m *DigitalSignatureMutation) ResetSignatureHash() {
	m.signature_hash = nil
}

// SetDocumentURL sets the "document_url" field.
func (m *DigitalSignatureMutation) SetDocumentURL(s string) {
	m.document_url = &s
}

// DocumentURL returns the value of the "document_url" field in the mutation.
func (m *DigitalSignatureMutation) DocumentURL() (r string, exists bool) {
	v := m.document_url
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentURL returns the old "document_url" field's value of the DigitalSignature entity.
// If the DigitalSignature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigitalSignatureMutation) OldDocumentURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentURL: %w", err)
	}
	return oldValue.DocumentURL, nil
}

// ResetDocumentURL resets all changes to the "document_url" field.
func (m *DigitalSignatureMutation) ResetDocumentURL() {
	m.document_url = nil
}

// SetSignedAt sets the "signed_at" field.
func (m *DigitalSignatureMutation) SetSignedAt(t time.Time) {
	m.signed_at = &t
}

// SignedAt returns the value of the "signed_at" field in the mutation.
func (m *DigitalSignatureMutation) SignedAt() (r time.Time, exists bool) {
	v := m.signed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSignedAt returns the old "signed_at" field's value of the DigitalSignature entity.
// If the DigitalSignature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigitalSignatureMutation) OldSignedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignedAt: %w", err)
	}
	return oldValue.SignedAt, nil
}

// ResetSignedAt resets all changes to the "signed_at" field.
func (m *DigitalSignatureMutation) ResetSignedAt() {
	m.signed_at = nil
}

// ClearApplication clears the "application" edge to the Application entity.
func (m *DigitalSignatureMutation) ClearApplication() {
	m.clearedapplication = true
	m.clearedFields[digitalsignature.FieldApplicationID] = struct{}{}
}

// ApplicationCleared reports if the "application" edge to the Application entity was cleared.
func (m *DigitalSignatureMutation) ApplicationCleared() bool {
	return m.clearedapplication
}

// ApplicationIDs returns the "application" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicationID instead. It exists only for internal usage by the builders.
func (m *DigitalSignatureMutation) ApplicationIDs() (ids []uuid.UUID) {
	if id := m.application; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplication resets all changes to the "application" edge.
func (m *DigitalSignatureMutation) ResetApplication() {
	m.application = nil
	m.clearedapplication = false
}

// Where appends a list predicates to the DigitalSignatureMutation builder.
func (m *DigitalSignatureMutation) Where(ps ...predicate.DigitalSignature) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DigitalSignatureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DigitalSignatureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DigitalSignature, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DigitalSignatureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DigitalSignatureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DigitalSignature).
func (m *DigitalSignatureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DigitalSignatureMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, digitalsignature.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, digitalsignature.FieldUpdatedAt)
	}
	if m.application != nil {
		fields = append(fields, digitalsignature.FieldApplicationID)
	}
	if m.signer_name != nil {
		fields = append(fields, digitalsignature.FieldSignerName)
	}
	if m.signer_email != nil {
		fields = append(fields, digitalsignature.FieldSignerEmail)
	}
	if m.signature_image != nil {
		fields = append(fields, digitalsignature.FieldSignatureImage)
	}
	if m.signature_hash != nil {
		fields = append(fields, digitalsignature.FieldSignatureHash)
	}
	if m.document_url != nil {
		fields = append(fields, digitalsignature.FieldDocumentURL)
	}
	if m.signed_at != nil {
		fields = append(fields, digitalsignature.FieldSignedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DigitalSignatureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case digitalsignature.FieldCreatedAt:
		return m.CreatedAt()
	case digitalsignature.FieldUpdatedAt:
		return m.UpdatedAt()
	case digitalsignature.FieldApplicationID:
		return m.ApplicationID()
	case digitalsignature.FieldSignerName:
		return m.SignerName()
	case digitalsignature.FieldSignerEmail:
		return m.SignerEmail()
	case digitalsignature.FieldSignatureImage:
		return m.SignatureImage()
	case digitalsignature.FieldSignatureHash:
		return m.SignatureHash()
	case digitalsignature.FieldDocumentURL:
		return m.DocumentURL()
	case digitalsignature.FieldSignedAt:
		return m.SignedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DigitalSignatureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case digitalsignature.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case digitalsignature.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case digitalsignature.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case digitalsignature.FieldSignerName:
		return m.OldSignerName(ctx)
	case digitalsignature.FieldSignerEmail:
		return m.OldSignerEmail(ctx)
	case digitalsignature.FieldSignatureImage:
		return m.OldSignatureImage(ctx)
	case digitalsignature.FieldSignatureHash:
		return m.OldSignatureHash(ctx)
	case digitalsignature.FieldDocumentURL:
		return m.OldDocumentURL(ctx)
	case digitalsignature.FieldSignedAt:
		return m.OldSignedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DigitalSignature field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DigitalSignatureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case digitalsignature.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case digitalsignature.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case digitalsignature.FieldApplicationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case digitalsignature.FieldSignerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignerName(v)
		return nil
	case digitalsignature.FieldSignerEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignerEmail(v)
		return nil
	case digitalsignature.FieldSignatureImage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignatureImage(v)
		return nil
	case digitalsignature.FieldSignatureHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignatureHash(v)
		return nil
	case digitalsignature.FieldDocumentURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentURL(v)
		return nil
	case digitalsignature.FieldSignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DigitalSignature field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DigitalSignatureMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DigitalSignatureMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DigitalSignatureMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DigitalSignature numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DigitalSignatureMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DigitalSignatureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DigitalSignatureMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DigitalSignature nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DigitalSignatureMutation) ResetField(name string) error {
	switch name {
	case digitalsignature.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case digitalsignature.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case digitalsignature.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case digitalsignature.FieldSignerName:
		m.ResetSignerName()
		return nil
	case digitalsignature.FieldSignerEmail:
		m.ResetSignerEmail()
		return nil
	case digitalsignature.FieldSignatureImage:
		m.ResetSignatureImage()
		return nil
	case digitalsignature.FieldSignatureHash:
		m.ResetSignatureHash()
		return nil
	case digitalsignature.FieldDocumentURL:
		m.ResetDocumentURL()
		return nil
	case digitalsignature.FieldSignedAt:
		m.ResetSignedAt()
		return nil
	}
	return fmt.Errorf("unknown DigitalSignature field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DigitalSignatureMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.application != nil {
		edges = append(edges, digitalsignature.EdgeApplication)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DigitalSignatureMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case digitalsignature.EdgeApplication:
		if id := m.application; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DigitalSignatureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DigitalSignatureMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DigitalSignatureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapplication {
		edges = append(edges, digitalsignature.EdgeApplication)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DigitalSignatureMutation) EdgeCleared(name string) bool {
	switch name {
	case digitalsignature.EdgeApplication:
		return m.clearedapplication
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DigitalSignatureMutation) ClearEdge(name string) error {
	switch name {
	case digitalsignature.EdgeApplication:
		m.ClearApplication()
		return nil
	}
	return fmt.Errorf("unknown DigitalSignature unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DigitalSignatureMutation) ResetEdge(name string) error {
	switch name {
	case digitalsignature.EdgeApplication:
		m.ResetApplication()
		return nil
	}
	return fmt.Errorf("unknown DigitalSignature edge %s", name)
}

// ShippingRequestMutation represents an operation that mutates the ShippingRequest nodes in the graph.
type ShippingRequestMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	created_at        *time.Time
	updated_at        *time.Time
	contact_name      *string
	contact_email     *string
	contact_phone     *string
	address_line      *string
	city              *string
	country           *string
	postal_code       *string
	carrier           *string
	service_level     *string
	weight_kg         *decimal.Decimal
	addweight_kg      *decimal.Decimal
	declared_value    *decimal.Decimal
	adddeclared_value *decimal.Decimal
	notes             *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ShippingRequest, error)
	predicates        []predicate.ShippingRequest
}

var _ ent.Mutation = (*ShippingRequestMutation)(nil)

// shippingrequestOption allows management of the mutation configuration using functional options.
type shippingrequestOption func(*ShippingRequestMutation)

// newShippingRequestMutation creates new mutation for the ShippingRequest entity.
func newShippingRequestMutation(c config, op Op, opts ...shippingrequestOption) *ShippingRequestMutation {
	m := &ShippingRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeShippingRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withShippingRequestID sets the ID field of the mutation.
func withShippingRequestID(id uuid.UUID) shippingrequestOption {
	return func(m *ShippingRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *ShippingRequest
		)
		m.oldValue = func(ctx context.Context) (*ShippingRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ShippingRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withShippingRequest sets the old ShippingRequest of the mutation.
func withShippingRequest(node *ShippingRequest) shippingrequestOption {
	return func(m *ShippingRequestMutation) {
		m.oldValue = func(context.Context) (*ShippingRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ShippingRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ShippingRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ShippingRequest entities.
func (m *ShippingRequestMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ShippingRequestMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ShippingRequestMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ShippingRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ShippingRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ShippingRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ShippingRequest entity.
// If the ShippingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShippingRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ShippingRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ShippingRequestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ShippingRequestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ShippingRequest entity.
// If the ShippingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShippingRequestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ShippingRequestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetContactName sets the "contact_name" field.
func (m *ShippingRequestMutation) SetContactName(s string) {
	m.contact_name = &s
}

// ContactName returns the value of the "contact_name" field in the mutation.
func (m *ShippingRequestMutation) ContactName() (r string, exists bool) {
	v := m.contact_name
	if v == nil {
		return
	}
	return *v, true
}

// OldContactName returns the old "contact_name" field's value of the ShippingRequest entity.
// If the ShippingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShippingRequestMutation) OldContactName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactName: %w", err)
	}
	return oldValue.ContactName, nil
}

// ResetContactName resets all changes to the "contact_name" field.
func (m *ShippingRequestMutation) ResetContactName() {
	m.contact_name = nil
}

// SetContactEmail sets the "contact_email" field.
func (m *ShippingRequestMutation) SetContactEmail(s string) {
	m.contact_email = &s
}

// ContactEmail returns the value of the "contact_email" field in the mutation.
func (m *ShippingRequestMutation) ContactEmail() (r string, exists bool) {
	v := m.contact_email
	if v == nil {
		return
	}
	return *v, true
}

// OldContactEmail returns the old "contact_email" field's value of the ShippingRequest entity.
// If the ShippingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShippingRequestMutation) OldContactEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactEmail: %w", err)
	}
	return oldValue.ContactEmail, nil
}

// ResetContactEmail resets all changes to the "contact_email" field.
func (m *ShippingRequestMutation) ResetContactEmail() {
	m.contact_email = nil
}

// SetContactPhone sets the "contact_phone" field.
func (m *ShippingRequestMutation) SetContactPhone(s string) {
	m.contact_phone = &s
}

// ContactPhone returns the value of the "contact_phone" field in the mutation.
func (m *ShippingRequestMutation) ContactPhone() (r string, exists bool) {
	v := m.contact_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldContactPhone returns the old "contact_phone" field's value of the ShippingRequest entity.
// If the ShippingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShippingRequestMutation) OldContactPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactPhone: %w", err)
	}
	return oldValue.ContactPhone, nil
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (m *ShippingRequestMutation) ClearContactPhone() {
	m.contact_phone = nil
	m.clearedFields[shippingrequest.FieldContactPhone] = struct{}{}
}

// ContactPhoneCleared returns if the "contact_phone" field was cleared in this mutation.
func (m *ShippingRequestMutation) ContactPhoneCleared() bool {
	_, ok := m.clearedFields[shippingrequest.FieldContactPhone]
	return ok
}

// ResetContactPhone resets all changes to the "contact_phone" field.
func (m *ShippingRequestMutation) ResetContactPhone() {
	m.contact_phone = nil
	delete(m.clearedFields, shippingrequest.FieldContactPhone)
}

// SetAddressLine sets the "address_line" field.
func (m *ShippingRequestMutation) SetAddressLine(s string) {
	m.address_line = &s
}

// AddressLine returns the value of the "address_line" field in the mutation.
func (m *ShippingRequestMutation) AddressLine() (r string, exists bool) {
	v := m.address_line
	if v == nil {
		return
	}
	return *v, true
}

// OldAddressLine returns the old "address_line" field's value of the ShippingRequest entity.
// If the ShippingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShippingRequestMutation) OldAddressLine(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddressLine is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddressLine requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddressLine: %w", err)
	}
	return oldValue.AddressLine, nil
}

// ResetAddressLine resets all changes to the "address_line" field.
func (m *ShippingRequestMutation) ResetAddressLine() {
	m.address_line = nil
}

// SetCity sets the "city" field.
func (m *ShippingRequestMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *ShippingRequestMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the ShippingRequest entity.
// If the ShippingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShippingRequestMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ResetCity resets all changes to the "city" field.
func (m *ShippingRequestMutation) ResetCity() {
	m.city = nil
}

// SetCountry sets the "country" field.
func (m *ShippingRequestMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *ShippingRequestMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the ShippingRequest entity.
// If the ShippingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShippingRequestMutation) OldCountry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ResetCountry resets all changes to the "country" field.
func (m *ShippingRequestMutation) ResetCountry() {
	m.country = nil
}

// SetPostalCode sets the "postal_code" field.
func (m *ShippingRequestMutation) SetPostalCode(s string) {
	m.postal_code = &s
}

// PostalCode returns the value of the "postal_code" field in the mutation.
func (m *ShippingRequestMutation) PostalCode() (r string, exists bool) {
	v := m.postal_code
	if v == nil {
		return
	}
	return *v, true
}

// OldPostalCode returns the old "postal_code" field's value of the ShippingRequest entity.
// If the ShippingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShippingRequestMutation) OldPostalCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostalCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostalCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostalCode: %w", err)
	}
	return oldValue.PostalCode, nil
}

// ClearPostalCode clears the value of the "postal_code" field.
func (m *ShippingRequestMutation) ClearPostalCode() {
	m.postal_code = nil
	m.clearedFields[shippingrequest.FieldPostalCode] = struct{}{}
}

// PostalCodeCleared returns if the "postal_code" field was cleared in this mutation.
func (m *ShippingRequestMutation) PostalCodeCleared() bool {
	_, ok := m.clearedFields[shippingrequest.FieldPostalCode]
	return ok
}

// ResetPostalCode resets all changes to the "postal_code" field.
func (m *ShippingRequestMutation) ResetPostalCode() {
	m.postal_code = nil
	delete(m.clearedFields, shippingrequest.FieldPostalCode)
}

// SetCarrier sets the "carrier" field.
func (m *ShippingRequestMutation) SetCarrier(s string) {
	m.carrier = &s
}

// Carrier returns the value of the "carrier" field in the mutation.
func (m *ShippingRequestMutation) Carrier() (r string, exists bool) {
	v := m.carrier
	if v == nil {
		return
	}
	return *v, true
}

// OldCarrier returns the old "carrier" field's value of the ShippingRequest entity.
// If the ShippingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShippingRequestMutation) OldCarrier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCarrier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCarrier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCarrier: %w", err)
	}
	return oldValue.Carrier, nil
}

// ClearCarrier clears the value of the "carrier" field.
func (m *ShippingRequestMutation) ClearCarrier() {
	m.carrier = nil
	m.clearedFields[shippingrequest.FieldCarrier] = struct{}{}
}

// CarrierCleared returns if the "carrier" field was cleared in this mutation.
func (m *ShippingRequestMutation) CarrierCleared() bool {
	_, ok := m.clearedFields[shippingrequest.FieldCarrier]
	return ok
}

// ResetCarrier resets all changes to the "carrier" field.
func (m *ShippingRequestMutation) ResetCarrier() {
	m.carrier = nil
	delete(m.clearedFields, shippingrequest.FieldCarrier)
}

// SetServiceLevel sets the "service_level" field.
func (m *ShippingRequestMutation) SetServiceLevel(s string) {
	m.service_level = &s
}

// ServiceLevel returns the value of the "service_level" field in the mutation.
func (m *ShippingRequestMutation) ServiceLevel() (r string, exists bool) {
	v := m.service_level
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceLevel returns the old "service_level" field's value of the ShippingRequest entity.
// If the ShippingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShippingRequestMutation) OldServiceLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceLevel: %w", err)
	}
	return oldValue.ServiceLevel, nil
}

// ClearServiceLevel clears the value of the "service_level" field.
func (m *ShippingRequestMutation) ClearServiceLevel() {
	m.service_level = nil
	m.clearedFields[shippingrequest.FieldServiceLevel] = struct{}{}
}

// ServiceLevelCleared returns if the "service_level" field was cleared in this mutation.
func (m *ShippingRequestMutation) ServiceLevelCleared() bool {
	_, ok := m.clearedFields[shippingrequest.FieldServiceLevel]
	return ok
}

// ResetServiceLevel resets all changes to the "service_level" field.
func (m *ShippingRequestMutation) ResetServiceLevel() {
	m.service_level = nil
	delete(m.clearedFields, shippingrequest.FieldServiceLevel)
}

// SetWeightKg sets the "weight_kg" field.
func (m *ShippingRequestMutation) SetWeightKg(d decimal.Decimal) {
	m.weight_kg = &d
	m.addweight_kg = nil
}

// WeightKg returns the value of the "weight_kg" field in the mutation.
func (m *ShippingRequestMutation) WeightKg() (r decimal.Decimal, exists bool) {
	v := m.weight_kg
	if v == nil {
		return
	}
	return *v, true
}

// OldWeightKg returns the old "weight_kg" field's value of the ShippingRequest entity.
// If the ShippingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShippingRequestMutation) OldWeightKg(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeightKg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeightKg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeightKg: %w", err)
	}
	return oldValue.WeightKg, nil
}

// AddWeightKg adds d to the "weight_kg" field.
func (m *ShippingRequestMutation) AddWeightKg(d decimal.Decimal) {
	if m.addweight_kg != nil {
		*m.addweight_kg = m.addweight_kg.Add(d)
	} else {
		m.addweight_kg = &d
	}
}

// AddedWeightKg returns the value that was added to the "weight_kg" field in this mutation.
func (m *ShippingRequestMutation) AddedWeightKg() (r decimal.Decimal, exists bool) {
	v := m.addweight_kg
	if v == nil {
		return
	}
	return *v, true
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (m *ShippingRequestMutation) ClearWeightKg() {
	m.weight_kg = nil
	m.addweight_kg = nil
	m.clearedFields[shippingrequest.FieldWeightKg] = struct{}{}
}

// WeightKgCleared returns if the "weight_kg" field was cleared in this mutation.
func (m *ShippingRequestMutation) WeightKgCleared() bool {
	_, ok := m.clearedFields[shippingrequest.FieldWeightKg]
	return ok
}

// ResetWeightKg resets all changes to the "weight_kg" field.
func (m *ShippingRequestMutation) ResetWeightKg() {
	m.weight_kg = nil
	m.addweight_kg = nil
	delete(m.clearedFields, shippingrequest.FieldWeightKg)
}

// SetDeclaredValue sets the "declared_value" field.
func (m *ShippingRequestMutation) SetDeclaredValue(d decimal.Decimal) {
	m.declared_value = &d
	m.adddeclared_value = nil
}

// DeclaredValue returns the value of the "declared_value" field in the mutation.
func (m *ShippingRequestMutation) DeclaredValue() (r decimal.Decimal, exists bool) {
	v := m.declared_value
	if v == nil {
		return
	}
	return *v, true
}

// OldDeclaredValue returns the old "declared_value" field's value of the ShippingRequest entity.
// If the ShippingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShippingRequestMutation) OldDeclaredValue(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeclaredValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeclaredValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeclaredValue: %w", err)
	}
	return oldValue.DeclaredValue, nil
}

// AddDeclaredValue adds d to the "declared_value" field.
func (m *ShippingRequestMutation) AddDeclaredValue(d decimal.Decimal) {
	if m.adddeclared_value != nil {
		*m.adddeclared_value = m.adddeclared_value.Add(d)
	} else {
		m.adddeclared_value = &d
	}
}

// AddedDeclaredValue returns the value that was added to the "declared_value" field in this mutation.
func (m *ShippingRequestMutation) AddedDeclaredValue() (r decimal.Decimal, exists bool) {
	v := m.adddeclared_value
	if v == nil {
		return
	}
	return *v, true
}

// ClearDeclaredValue clears the value of the "declared_value" field.
func (m *ShippingRequestMutation) ClearDeclaredValue() {
	m.declared_value = nil
	m.adddeclared_value = nil
	m.clearedFields[shippingrequest.FieldDeclaredValue] = struct{}{}
}

// DeclaredValueCleared returns if the "declared_value" field was cleared in this mutation.
func (m *ShippingRequestMutation) DeclaredValueCleared() bool {
	_, ok := m.clearedFields[shippingrequest.FieldDeclaredValue]
	return ok
}

// ResetDeclaredValue resets all changes to the "declared_value" field.
func (m *ShippingRequestMutation) ResetDeclaredValue() {
	m.declared_value = nil
	m.adddeclared_value = nil
	delete(m.clearedFields, shippingrequest.FieldDeclaredValue)
}

// SetNotes sets the "notes" field.
func (m *ShippingRequestMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *ShippingRequestMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the ShippingRequest entity.
// If the ShippingRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShippingRequestMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *ShippingRequestMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[shippingrequest.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *ShippingRequestMutation) NotesCleared() bool {
	_, ok := m.clearedFields[shippingrequest.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *ShippingRequestMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, shippingrequest.FieldNotes)
}

// Where appends a list predicates to the ShippingRequestMutation builder.
func (m *ShippingRequestMutation) Where(ps ...predicate.ShippingRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ShippingRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ShippingRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ShippingRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ShippingRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ShippingRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ShippingRequest).
func (m *ShippingRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ShippingRequestMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.created_at != nil {
		fields = append(fields, shippingrequest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, shippingrequest.FieldUpdatedAt)
	}
	if m.contact_name != nil {
		fields = append(fields, shippingrequest.FieldContactName)
	}
	if m.contact_email != nil {
		fields = append(fields, shippingrequest.FieldContactEmail)
	}
	if m.contact_phone != nil {
		fields = append(fields, shippingrequest.FieldContactPhone)
	}
	if m.address_line != nil {
		fields = append(fields, shippingrequest.FieldAddressLine)
	}
	if m.city != nil {
		fields = append(fields, shippingrequest.FieldCity)
	}
	if m.country != nil {
		fields = append(fields, shippingrequest.FieldCountry)
	}
	if m.postal_code != nil {
		fields = append(fields, shippingrequest.FieldPostalCode)
	}
	if m.carrier != nil {
		fields = append(fields, shippingrequest.FieldCarrier)
	}
	if m.service_level != nil {
		fields = append(fields, shippingrequest.FieldServiceLevel)
	}
	if m.weight_kg != nil {
		fields = append(fields, shippingrequest.FieldWeightKg)
	}
	if m.declared_value != nil {
		fields = append(fields, shippingrequest.FieldDeclaredValue)
	}
	if m.notes != nil {
		fields = append(fields, shippingrequest.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ShippingRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case shippingrequest.FieldCreatedAt:
		return m.CreatedAt()
	case shippingrequest.FieldUpdatedAt:
		return m.UpdatedAt()
	case shippingrequest.FieldContactName:
		return m.ContactName()
	case shippingrequest.FieldContactEmail:
		return m.ContactEmail()
	case shippingrequest.FieldContactPhone:
		return m.ContactPhone()
	case shippingrequest.FieldAddressLine:
		return m.AddressLine()
	case shippingrequest.FieldCity:
		return m.City()
	case shippingrequest.FieldCountry:
		return m.Country()
	case shippingrequest.FieldPostalCode:
		return m.PostalCode()
	case shippingrequest.FieldCarrier:
		return m.Carrier()
	case shippingrequest.FieldServiceLevel:
		return m.ServiceLevel()
	case shippingrequest.FieldWeightKg:
		return m.WeightKg()
	case shippingrequest.FieldDeclaredValue:
		return m.DeclaredValue()
	case shippingrequest.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ShippingRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case shippingrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case shippingrequest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case shippingrequest.FieldContactName:
		return m.OldContactName(ctx)
	case shippingrequest.FieldContactEmail:
		return m.OldContactEmail(ctx)
	case shippingrequest.FieldContactPhone:
		return m.OldContactPhone(ctx)
	case shippingrequest.FieldAddressLine:
		return m.OldAddressLine(ctx)
	case shippingrequest.FieldCity:
		return m.OldCity(ctx)
	case shippingrequest.FieldCountry:
		return m.OldCountry(ctx)
	case shippingrequest.FieldPostalCode:
		return m.OldPostalCode(ctx)
	case shippingrequest.FieldCarrier:
		return m.OldCarrier(ctx)
	case shippingrequest.FieldServiceLevel:
		return m.OldServiceLevel(ctx)
	case shippingrequest.FieldWeightKg:
		return m.OldWeightKg(ctx)
	case shippingrequest.FieldDeclaredValue:
		return m.OldDeclaredValue(ctx)
	case shippingrequest.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown ShippingRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ShippingRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case shippingrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case shippingrequest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case shippingrequest.FieldContactName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactName(v)
		return nil
	case shippingrequest.FieldContactEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactEmail(v)
		return nil
	case shippingrequest.FieldContactPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactPhone(v)
		return nil
	case shippingrequest.FieldAddressLine:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddressLine(v)
		return nil
	case shippingrequest.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case shippingrequest.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case shippingrequest.FieldPostalCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostalCode(v)
		return nil
	case shippingrequest.FieldCarrier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCarrier(v)
		return nil
	case shippingrequest.FieldServiceLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceLevel(v)
		return nil
	case shippingrequest.FieldWeightKg:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeightKg(v)
		return nil
	case shippingrequest.FieldDeclaredValue:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeclaredValue(v)
		return nil
	case shippingrequest.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown ShippingRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ShippingRequestMutation) AddedFields() []string {
	var fields []string
	if m.addweight_kg != nil {
		fields = append(fields, shippingrequest.FieldWeightKg)
	}
	if m.adddeclared_value != nil {
		fields = append(fields, shippingrequest.FieldDeclaredValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ShippingRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case shippingrequest.FieldWeightKg:
		return m.AddedWeightKg()
	case shippingrequest.FieldDeclaredValue:
		return m.AddedDeclaredValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ShippingRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case shippingrequest.FieldWeightKg:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeightKg(v)
		return nil
	case shippingrequest.FieldDeclaredValue:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeclaredValue(v)
		return nil
	}
	return fmt.Errorf("unknown ShippingRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ShippingRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(shippingrequest.FieldContactPhone) {
		fields = append(fields, shippingrequest.FieldContactPhone)
	}
	if m.FieldCleared(shippingrequest.FieldPostalCode) {
		fields = append(fields, shippingrequest.FieldPostalCode)
	}
	if m.FieldCleared(shippingrequest.FieldCarrier) {
		fields = append(fields, shippingrequest.FieldCarrier)
	}
	if m.FieldCleared(shippingrequest.FieldServiceLevel) {
		fields = append(fields, shippingrequest.FieldServiceLevel)
	}
	if m.FieldCleared(shippingrequest.FieldWeightKg) {
		fields = append(fields, shippingrequest.FieldWeightKg)
	}
	if m.FieldCleared(shippingrequest.FieldDeclaredValue) {
		fields = append(fields, shippingrequest.FieldDeclaredValue)
	}
	if m.FieldCleared(shippingrequest.FieldNotes) {
		fields = append(fields, shippingrequest.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ShippingRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ShippingRequestMutation) ClearField(name string) error {
	switch name {
	case shippingrequest.FieldContactPhone:
		m.ClearContactPhone()
		return nil
	case shippingrequest.FieldPostalCode:
		m.ClearPostalCode()
		return nil
	case shippingrequest.FieldCarrier:
		m.ClearCarrier()
		return nil
	case shippingrequest.FieldServiceLevel:
		m.ClearServiceLevel()
		return nil
	case shippingrequest.FieldWeightKg:
		m.ClearWeightKg()
		return nil
	case shippingrequest.FieldDeclaredValue:
		m.ClearDeclaredValue()
		return nil
	case shippingrequest.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown ShippingRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ShippingRequestMutation) ResetField(name string) error {
	switch name {
	case shippingrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case shippingrequest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case shippingrequest.FieldContactName:
		m.ResetContactName()
		return nil
	case shippingrequest.FieldContactEmail:
		m.ResetContactEmail()
		return nil
	case shippingrequest.FieldContactPhone:
		m.ResetContactPhone()
		return nil
	case shippingrequest.FieldAddressLine:
		m.ResetAddressLine()
		return nil
	case shippingrequest.FieldCity:
		m.ResetCity()
		return nil
	case shippingrequest.FieldCountry:
		m.ResetCountry()
		return nil
	case shippingrequest.FieldPostalCode:
		m.ResetPostalCode()
		return nil
	case shippingrequest.FieldCarrier:
		m.ResetCarrier()
		return nil
	case shippingrequest.FieldServiceLevel:
		m.ResetServiceLevel()
		return nil
	case shippingrequest.FieldWeightKg:
		m.ResetWeightKg()
		return nil
	case shippingrequest.FieldDeclaredValue:
		m.ResetDeclaredValue()
		return nil
	case shippingrequest.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown ShippingRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ShippingRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ShippingRequestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ShippingRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ShippingRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ShippingRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ShippingRequestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ShippingRequestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ShippingRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ShippingRequestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ShippingRequest edge %s", name)
}

// VendorFormMutation represents an operation that mutates the VendorForm nodes in the graph.
type VendorFormMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	file_name          *string
	storage_url        *string
	mime_type          *string
	byte_size          *int64
	addbyte_size       *int64
	clearedFields      map[string]struct{}
	application        *uuid.UUID
	clearedapplication bool
	done               bool
	oldValue           func(context.Context) (*VendorForm, error)
	predicates         []predicate.VendorForm
}

var _ ent.Mutation = (*VendorFormMutation)(nil)

// vendorformOption allows management of the mutation configuration using functional options.
type vendorformOption func(*VendorFormMutation)

// newVendorFormMutation creates new mutation for the VendorForm entity.
func newVendorFormMutation(c config, op Op, opts ...vendorformOption) *VendorFormMutation {
	m := &VendorFormMutation{
		config:        c,
		op:            op,
		typ:           TypeVendorForm,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVendorFormID sets the ID field of the mutation.
func withVendorFormID(id uuid.UUID) vendorformOption {
	return func(m *VendorFormMutation) {
		var (
			err   error
			once  sync.Once
			value *VendorForm
		)
		m.oldValue = func(ctx context.Context) (*VendorForm, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VendorForm.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVendorForm sets the old VendorForm of the mutation.
func withVendorForm(node *VendorForm) vendorformOption {
	return func(m *VendorFormMutation) {
		m.oldValue = func(context.Context) (*VendorForm, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VendorFormMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VendorFormMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VendorForm entities.
func (m *VendorFormMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VendorFormMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VendorFormMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VendorForm.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *VendorFormMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VendorFormMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VendorForm entity.
// If the VendorForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorFormMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VendorFormMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VendorFormMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VendorFormMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the VendorForm entity.
// If the VendorForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorFormMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VendorFormMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFileName sets the "file_name" field.
func (m *VendorFormMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *VendorFormMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the VendorForm entity.
// If the VendorForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorFormMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *VendorFormMutation) ResetFileName() {
	m.file_name = nil
}

// SetStorageURL sets the "storage_url" field.
func (m *VendorFormMutation) SetStorageURL(s string) {
	m.storage_url = &s
}

// StorageURL returns the value of the "storage_url" field in the mutation.
func (m *VendorFormMutation) StorageURL() (r string, exists bool) {
	v := m.storage_url
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageURL returns the old "storage_url" field's value of the VendorForm entity.
// If the VendorForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorFormMutation) OldStorageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageURL: %w", err)
	}
	return oldValue.StorageURL, nil
}

// ResetStorageURL resets all changes to the "storage_url" field.
func (m *VendorFormMutation) ResetStorageURL() {
	m.storage_url = nil
}

// SetMimeType sets the "mime_type" field.
func (m *VendorFormMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *VendorFormMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the VendorForm entity.
// If the VendorForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorFormMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *VendorFormMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetByteSize sets the "byte_size" field.
func (m *VendorFormMutation) SetByteSize(i int64) {
	m.byte_size = &i
	m.addbyte_size = nil
}

// ByteSize returns the value of the "byte_size" field in the mutation.
func (m *VendorFormMutation) ByteSize() (r int64, exists bool) {
	v := m.byte_size
	if v == nil {
		return
	}
	return *v, true
}

// OldByteSize returns the old "byte_size" field's value of the VendorForm entity.
// If the VendorForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorFormMutation) OldByteSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldByteSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldByteSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldByteSize: %w", err)
	}
	return oldValue.ByteSize, nil
}

// AddByteSize adds i to the "byte_size" field.
func (m *VendorFormMutation) AddByteSize(i int64) {
	if m.addbyte_size != nil {
		*m.addbyte_size += i
	} else {
		m.addbyte_size = &i
	}
}

// AddedByteSize returns the value that was added to the "byte_size" field in this mutation.
func (m *VendorFormMutation) AddedByteSize() (r int64, exists bool) {
	v := m.addbyte_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetByteSize resets all changes to the "byte_size" field.
func (m *VendorFormMutation) ResetByteSize() {
	m.byte_size = nil
	m.addbyte_size = nil
}

// SetApplicationID sets the "application" edge to the Application entity by id.
func (m *VendorFormMutation) SetApplicationID(id uuid.UUID) {
	m.application = &id
}

// ClearApplication clears the "application" edge to the Application entity.
func (m *VendorFormMutation) ClearApplication() {
	m.clearedapplication = true
}

// ApplicationCleared reports if the "application" edge to the Application entity was cleared.
func (m *VendorFormMutation) ApplicationCleared() bool {
	return m.clearedapplication
}

// ApplicationID returns the "application" edge ID in the mutation.
func (m *VendorFormMutation) ApplicationID() (id uuid.UUID, exists bool) {
	if m.application != nil {
		return *m.application, true
	}
	return
}

// ApplicationIDs returns the "application" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicationID instead. It exists only for internal usage by the builders.
func (m *VendorFormMutation) ApplicationIDs() (ids []uuid.UUID) {
	if id := m.application; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplication resets all changes to the "application" edge.
func (m *VendorFormMutation) ResetApplication() {
	m.application = nil
	m.clearedapplication = false
}

// Where appends a list predicates to the VendorFormMutation builder.
func (m *VendorFormMutation) Where(ps ...predicate.VendorForm) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VendorFormMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VendorFormMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VendorForm, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VendorFormMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VendorFormMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VendorForm).
func (m *VendorFormMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VendorFormMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, vendorform.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, vendorform.FieldUpdatedAt)
	}
	if m.file_name != nil {
		fields = append(fields, vendorform.FieldFileName)
	}
	if m.storage_url != nil {
		fields = append(fields, vendorform.FieldStorageURL)
	}
	if m.mime_type != nil {
		fields = append(fields, vendorform.FieldMimeType)
	}
	if m.byte_size != nil {
		fields = append(fields, vendorform.FieldByteSize)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VendorFormMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vendorform.FieldCreatedAt:
		return m.CreatedAt()
	case vendorform.FieldUpdatedAt:
		return m.UpdatedAt()
	case vendorform.FieldFileName:
		return m.FileName()
	case vendorform.FieldStorageURL:
		return m.StorageURL()
	case vendorform.FieldMimeType:
		return m.MimeType()
	case vendorform.FieldByteSize:
		return m.ByteSize()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VendorFormMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vendorform.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case vendorform.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case vendorform.FieldFileName:
		return m.OldFileName(ctx)
	case vendorform.FieldStorageURL:
		return m.OldStorageURL(ctx)
	case vendorform.FieldMimeType:
		return m.OldMimeType(ctx)
	case vendorform.FieldByteSize:
		return m.OldByteSize(ctx)
	}
	return nil, fmt.Errorf("unknown VendorForm field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VendorFormMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vendorform.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case vendorform.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case vendorform.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case vendorform.FieldStorageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageURL(v)
		return nil
	case vendorform.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case vendorform.FieldByteSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetByteSize(v)
		return nil
	}
	return fmt.Errorf("unknown VendorForm field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VendorFormMutation) AddedFields() []string {
	var fields []string
	if m.addbyte_size != nil {
		fields = append(fields, vendorform.FieldByteSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VendorFormMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case vendorform.FieldByteSize:
		return m.AddedByteSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VendorFormMutation) AddField(name string, value ent.Value) error {
	switch name {
	case vendorform.FieldByteSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddByteSize(v)
		return nil
	}
	return fmt.Errorf("unknown VendorForm numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VendorFormMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VendorFormMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VendorFormMutation) ClearField(name string) error {
	return fmt.Errorf("unknown VendorForm nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VendorFormMutation) ResetField(name string) error {
	switch name {
	case vendorform.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case vendorform.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case vendorform.FieldFileName:
		m.ResetFileName()
		return nil
	case vendorform.FieldStorageURL:
		m.ResetStorageURL()
		return nil
	case vendorform.FieldMimeType:
		m.ResetMimeType()
		return nil
	case vendorform.FieldByteSize:
		m.ResetByteSize()
		return nil
	}
	return fmt.Errorf("unknown VendorForm field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VendorFormMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.application != nil {
		edges = append(edges, vendorform.EdgeApplication)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VendorFormMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case vendorform.EdgeApplication:
		if id := m.application; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VendorFormMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VendorFormMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VendorFormMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapplication {
		edges = append(edges, vendorform.EdgeApplication)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VendorFormMutation) EdgeCleared(name string) bool {
	switch name {
	case vendorform.EdgeApplication:
		return m.clearedapplication
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VendorFormMutation) ClearEdge(name string) error {
	switch name {
	case vendorform.EdgeApplication:
		m.ClearApplication()
		return nil
	}
	return fmt.Errorf("unknown VendorForm unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VendorFormMutation) ResetEdge(name string) error {
	switch name {
	case vendorform.EdgeApplication:
		m.ResetApplication()
		return nil
	}
	return fmt.Errorf("unknown VendorForm edge %s", name)
}
