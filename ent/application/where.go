// Code generated by ent, DO NOT EDIT.

package application

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/netvendor/creditintake/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedAt, v))
}

// LegalName applies equality check predicate on the "legal_name" field. It's identical to LegalNameEQ.
func LegalName(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldLegalName, v))
}

// ContactEmail applies equality check predicate on the "contact_email" field. It's identical to ContactEmailEQ.
func ContactEmail(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldContactEmail, v))
}

// ContactPhone applies equality check predicate on the "contact_phone" field. It's identical to ContactPhoneEQ.
func ContactPhone(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldContactPhone, v))
}

// DunsNumber applies equality check predicate on the "duns_number" field. It's identical to DunsNumberEQ.
func DunsNumber(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldDunsNumber, v))
}

// TradeReference1 applies equality check predicate on the "trade_reference_1" field. It's identical to TradeReference1EQ.
func TradeReference1(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldTradeReference1, v))
}

// TradeReference2 applies equality check predicate on the "trade_reference_2" field. It's identical to TradeReference2EQ.
func TradeReference2(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldTradeReference2, v))
}

// TradeReference3 applies equality check predicate on the "trade_reference_3" field. It's identical to TradeReference3EQ.
func TradeReference3(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldTradeReference3, v))
}

// BillToAddress applies equality check predicate on the "bill_to_address" field. It's identical to BillToAddressEQ.
func BillToAddress(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldBillToAddress, v))
}

// ShipToAddress applies equality check predicate on the "ship_to_address" field. It's identical to ShipToAddressEQ.
func ShipToAddress(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldShipToAddress, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldUpdatedAt, v))
}

// LegalNameEQ applies the EQ predicate on the "legal_name" field.
func LegalNameEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldLegalName, v))
}

// LegalNameNEQ applies the NEQ predicate on the "legal_name" field.
func LegalNameNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldLegalName, v))
}

// LegalNameIn applies the In predicate on the "legal_name" field.
func LegalNameIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldLegalName, vs...))
}

// LegalNameNotIn applies the NotIn predicate on the "legal_name" field.
func LegalNameNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldLegalName, vs...))
}

// LegalNameGT applies the GT predicate on the "legal_name" field.
func LegalNameGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldLegalName, v))
}

// LegalNameGTE applies the GTE predicate on the "legal_name" field.
func LegalNameGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldLegalName, v))
}

// LegalNameLT applies the LT predicate on the "legal_name" field.
func LegalNameLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldLegalName, v))
}

// LegalNameLTE applies the LTE predicate on the "legal_name" field.
func LegalNameLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldLegalName, v))
}

// LegalNameContains applies the Contains predicate on the "legal_name" field.
func LegalNameContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldLegalName, v))
}

// LegalNameHasPrefix applies the HasPrefix predicate on the "legal_name" field.
func LegalNameHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldLegalName, v))
}

// LegalNameHasSuffix applies the HasSuffix predicate on the "legal_name" field.
func LegalNameHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldLegalName, v))
}

// LegalNameEqualFold applies the EqualFold predicate on the "legal_name" field.
func LegalNameEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldLegalName, v))
}

// LegalNameContainsFold applies the ContainsFold predicate on the "legal_name" field.
func LegalNameContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldLegalName, v))
}

// ContactEmailEQ applies the EQ predicate on the "contact_email" field.
func ContactEmailEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldContactEmail, v))
}

// ContactEmailNEQ applies the NEQ predicate on the "contact_email" field.
func ContactEmailNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldContactEmail, v))
}

// ContactEmailIn applies the In predicate on the "contact_email" field.
func ContactEmailIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldContactEmail, vs...))
}

// ContactEmailNotIn applies the NotIn predicate on the "contact_email" field.
func ContactEmailNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldContactEmail, vs...))
}

// ContactEmailGT applies the GT predicate on the "contact_email" field.
func ContactEmailGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldContactEmail, v))
}

// ContactEmailGTE applies the GTE predicate on the "contact_email" field.
func ContactEmailGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldContactEmail, v))
}

// ContactEmailLT applies the LT predicate on the "contact_email" field.
func ContactEmailLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldContactEmail, v))
}

// ContactEmailLTE applies the LTE predicate on the "contact_email" field.
func ContactEmailLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldContactEmail, v))
}

// ContactEmailContains applies the Contains predicate on the "contact_email" field.
func ContactEmailContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldContactEmail, v))
}

// ContactEmailHasPrefix applies the HasPrefix predicate on the "contact_email" field.
func ContactEmailHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldContactEmail, v))
}

// ContactEmailHasSuffix applies the HasSuffix predicate on the "contact_email" field.
func ContactEmailHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldContactEmail, v))
}

// ContactEmailEqualFold applies the EqualFold predicate on the "contact_email" field.
func ContactEmailEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldContactEmail, v))
}

// ContactEmailContainsFold applies the ContainsFold predicate on the "contact_email" field.
func ContactEmailContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldContactEmail, v))
}

// ContactPhoneEQ applies the EQ predicate on the "contact_phone" field.
func ContactPhoneEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldContactPhone, v))
}

// ContactPhoneNEQ applies the NEQ predicate on the "contact_phone" field.
func ContactPhoneNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldContactPhone, v))
}

// ContactPhoneIn applies the In predicate on the "contact_phone" field.
func ContactPhoneIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldContactPhone, vs...))
}

// ContactPhoneNotIn applies the NotIn predicate on the "contact_phone" field.
func ContactPhoneNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldContactPhone, vs...))
}

// ContactPhoneGT applies the GT predicate on the "contact_phone" field.
func ContactPhoneGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldContactPhone, v))
}

// ContactPhoneGTE applies the GTE predicate on the "contact_phone" field.
func ContactPhoneGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldContactPhone, v))
}

// ContactPhoneLT applies the LT predicate on the "contact_phone" field.
func ContactPhoneLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldContactPhone, v))
}

// ContactPhoneLTE applies the LTE predicate on the "contact_phone" field.
func ContactPhoneLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldContactPhone, v))
}

// ContactPhoneContains applies the Contains predicate on the "contact_phone" field.
func ContactPhoneContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldContactPhone, v))
}

// ContactPhoneHasPrefix applies the HasPrefix predicate on the "contact_phone" field.
func ContactPhoneHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldContactPhone, v))
}

// ContactPhoneHasSuffix applies the HasSuffix predicate on the "contact_phone" field.
func ContactPhoneHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldContactPhone, v))
}

// ContactPhoneIsNil applies the IsNil predicate on the "contact_phone" field.
func ContactPhoneIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldContactPhone))
}

// ContactPhoneNotNil applies the NotNil predicate on the "contact_phone" field.
func ContactPhoneNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldContactPhone))
}

// ContactPhoneEqualFold applies the EqualFold predicate on the "contact_phone" field.
func ContactPhoneEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldContactPhone, v))
}

// ContactPhoneContainsFold applies the ContainsFold predicate on the "contact_phone" field.
func ContactPhoneContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldContactPhone, v))
}

// DunsNumberEQ applies the EQ predicate on the "duns_number" field.
func DunsNumberEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldDunsNumber, v))
}

// DunsNumberNEQ applies the NEQ predicate on the "duns_number" field.
func DunsNumberNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldDunsNumber, v))
}

// DunsNumberIn applies the In predicate on the "duns_number" field.
func DunsNumberIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldDunsNumber, vs...))
}

// DunsNumberNotIn applies the NotIn predicate on the "duns_number" field.
func DunsNumberNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldDunsNumber, vs...))
}

// DunsNumberGT applies the GT predicate on the "duns_number" field.
func DunsNumberGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldDunsNumber, v))
}

// DunsNumberGTE applies the GTE predicate on the "duns_number" field.
func DunsNumberGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldDunsNumber, v))
}

// DunsNumberLT applies the LT predicate on the "duns_number" field.
func DunsNumberLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldDunsNumber, v))
}

// DunsNumberLTE applies the LTE predicate on the "duns_number" field.
func DunsNumberLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldDunsNumber, v))
}

// DunsNumberContains applies the Contains predicate on the "duns_number" field.
func DunsNumberContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldDunsNumber, v))
}

// DunsNumberHasPrefix applies the HasPrefix predicate on the "duns_number" field.
func DunsNumberHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldDunsNumber, v))
}

// DunsNumberHasSuffix applies the HasSuffix predicate on the "duns_number" field.
func DunsNumberHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldDunsNumber, v))
}

// DunsNumberIsNil applies the IsNil predicate on the "duns_number" field.
func DunsNumberIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldDunsNumber))
}

// DunsNumberNotNil applies the NotNil predicate on the "duns_number" field.
func DunsNumberNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldDunsNumber))
}

// DunsNumberEqualFold applies the EqualFold predicate on the "duns_number" field.
func DunsNumberEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldDunsNumber, v))
}

// DunsNumberContainsFold applies the ContainsFold predicate on the "duns_number" field.
func DunsNumberContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldDunsNumber, v))
}

// TradeReference1EQ applies the EQ predicate on the "trade_reference_1" field.
func TradeReference1EQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldTradeReference1, v))
}

// TradeReference1NEQ applies the NEQ predicate on the "trade_reference_1" field.
func TradeReference1NEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldTradeReference1, v))
}

// TradeReference1In applies the In predicate on the "trade_reference_1" field.
func TradeReference1In(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldTradeReference1, vs...))
}

// TradeReference1NotIn applies the NotIn predicate on the "trade_reference_1" field.
func TradeReference1NotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldTradeReference1, vs...))
}

// TradeReference1GT applies the GT predicate on the "trade_reference_1" field.
func TradeReference1GT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldTradeReference1, v))
}

// TradeReference1GTE applies the GTE predicate on the "trade_reference_1" field.
func TradeReference1GTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldTradeReference1, v))
}

// TradeReference1LT applies the LT predicate on the "trade_reference_1" field.
func TradeReference1LT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldTradeReference1, v))
}

// TradeReference1LTE applies the LTE predicate on the "trade_reference_1" field.
func TradeReference1LTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldTradeReference1, v))
}

// TradeReference1Contains applies the Contains predicate on the "trade_reference_1" field.
func TradeReference1Contains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldTradeReference1, v))
}

// TradeReference1HasPrefix applies the HasPrefix predicate on the "trade_reference_1" field.
func TradeReference1HasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldTradeReference1, v))
}

// TradeReference1HasSuffix applies the HasSuffix predicate on the "trade_reference_1" field.
func TradeReference1HasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldTradeReference1, v))
}

// TradeReference1IsNil applies the IsNil predicate on the "trade_reference_1" field.
func TradeReference1IsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldTradeReference1))
}

// TradeReference1NotNil applies the NotNil predicate on the "trade_reference_1" field.
func TradeReference1NotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldTradeReference1))
}

// TradeReference1EqualFold applies the EqualFold predicate on the "trade_reference_1" field.
func TradeReference1EqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldTradeReference1, v))
}

// TradeReference1ContainsFold applies the ContainsFold predicate on the "trade_reference_1" field.
func TradeReference1ContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldTradeReference1, v))
}

// TradeReference2EQ applies the EQ predicate on the "trade_reference_2" field.
func TradeReference2EQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldTradeReference2, v))
}

// TradeReference2NEQ applies the NEQ predicate on the "trade_reference_2" field.
func TradeReference2NEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldTradeReference2, v))
}

// TradeReference2In applies the In predicate on the "trade_reference_2" field.
func TradeReference2In(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldTradeReference2, vs...))
}

// TradeReference2NotIn applies the NotIn predicate on the "trade_reference_2" field.
func TradeReference2NotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldTradeReference2, vs...))
}

// TradeReference2GT applies the GT predicate on the "trade_reference_2" field.
func TradeReference2GT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldTradeReference2, v))
}

// TradeReference2GTE applies the GTE predicate on the "trade_reference_2" field.
func TradeReference2GTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldTradeReference2, v))
}

// TradeReference2LT applies the LT predicate on the "trade_reference_2" field.
func TradeReference2LT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldTradeReference2, v))
}

// TradeReference2LTE applies the LTE predicate on the "trade_reference_2" field.
func TradeReference2LTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldTradeReference2, v))
}

// TradeReference2Contains applies the Contains predicate on the "trade_reference_2" field.
func TradeReference2Contains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldTradeReference2, v))
}

// TradeReference2HasPrefix applies the HasPrefix predicate on the "trade_reference_2" field.
func TradeReference2HasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldTradeReference2, v))
}

// TradeReference2HasSuffix applies the HasSuffix predicate on the "trade_reference_2" field.
func TradeReference2HasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldTradeReference2, v))
}

// TradeReference2IsNil applies the IsNil predicate on the "trade_reference_2" field.
func TradeReference2IsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldTradeReference2))
}

// TradeReference2NotNil applies the NotNil predicate on the "trade_reference_2" field.
func TradeReference2NotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldTradeReference2))
}

// TradeReference2EqualFold applies the EqualFold predicate on the "trade_reference_2" field.
func TradeReference2EqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldTradeReference2, v))
}

// TradeReference2ContainsFold applies the ContainsFold predicate on the "trade_reference_2" field.
func TradeReference2ContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldTradeReference2, v))
}

// TradeReference3EQ applies the EQ predicate on the "trade_reference_3" field.
func TradeReference3EQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldTradeReference3, v))
}

// TradeReference3NEQ applies the NEQ predicate on the "trade_reference_3" field.
func TradeReference3NEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldTradeReference3, v))
}

// TradeReference3In applies the In predicate on the "trade_reference_3" field.
func TradeReference3In(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldTradeReference3, vs...))
}

// TradeReference3NotIn applies the NotIn predicate on the "trade_reference_3" field.
func TradeReference3NotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldTradeReference3, vs...))
}

// TradeReference3GT applies the GT predicate on the "trade_reference_3" field.
func TradeReference3GT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldTradeReference3, v))
}

// TradeReference3GTE applies the GTE predicate on the "trade_reference_3" field.
func TradeReference3GTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldTradeReference3, v))
}

// TradeReference3LT applies the LT predicate on the "trade_reference_3" field.
func TradeReference3LT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldTradeReference3, v))
}

// TradeReference3LTE applies the LTE predicate on the "trade_reference_3" field.
func TradeReference3LTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldTradeReference3, v))
}

// TradeReference3Contains applies the Contains predicate on the "trade_reference_3" field.
func TradeReference3Contains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldTradeReference3, v))
}

// TradeReference3HasPrefix applies the HasPrefix predicate on the "trade_reference_3" field.
func TradeReference3HasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldTradeReference3, v))
}

// TradeReference3HasSuffix applies the HasSuffix predicate on the "trade_reference_3" field.
func TradeReference3HasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldTradeReference3, v))
}

// TradeReference3IsNil applies the IsNil predicate on the "trade_reference_3" field.
func TradeReference3IsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldTradeReference3))
}

// TradeReference3NotNil applies the NotNil predicate on the "trade_reference_3" field.
func TradeReference3NotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldTradeReference3))
}

// TradeReference3EqualFold applies the EqualFold predicate on the "trade_reference_3" field.
func TradeReference3EqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldTradeReference3, v))
}

// TradeReference3ContainsFold applies the ContainsFold predicate on the "trade_reference_3" field.
func TradeReference3ContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldTradeReference3, v))
}

// BillToAddressEQ applies the EQ predicate on the "bill_to_address" field.
func BillToAddressEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldBillToAddress, v))
}

// BillToAddressNEQ applies the NEQ predicate on the "bill_to_address" field.
func BillToAddressNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldBillToAddress, v))
}

// BillToAddressIn applies the In predicate on the "bill_to_address" field.
func BillToAddressIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldBillToAddress, vs...))
}

// BillToAddressNotIn applies the NotIn predicate on the "bill_to_address" field.
func BillToAddressNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldBillToAddress, vs...))
}

// BillToAddressGT applies the GT predicate on the "bill_to_address" field.
func BillToAddressGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldBillToAddress, v))
}

// BillToAddressGTE applies the GTE predicate on the "bill_to_address" field.
func BillToAddressGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldBillToAddress, v))
}

// BillToAddressLT applies the LT predicate on the "bill_to_address" field.
func BillToAddressLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldBillToAddress, v))
}

// BillToAddressLTE applies the LTE predicate on the "bill_to_address" field.
func BillToAddressLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldBillToAddress, v))
}

// BillToAddressContains applies the Contains predicate on the "bill_to_address" field.
func BillToAddressContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldBillToAddress, v))
}

// BillToAddressHasPrefix applies the HasPrefix predicate on the "bill_to_address" field.
func BillToAddressHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldBillToAddress, v))
}

// BillToAddressHasSuffix applies the HasSuffix predicate on the "bill_to_address" field.
func BillToAddressHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldBillToAddress, v))
}

// BillToAddressEqualFold applies the EqualFold predicate on the "bill_to_address" field.
func BillToAddressEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldBillToAddress, v))
}

// BillToAddressContainsFold applies the ContainsFold predicate on the "bill_to_address" field.
func BillToAddressContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldBillToAddress, v))
}

// ShipToAddressEQ applies the EQ predicate on the "ship_to_address" field.
func ShipToAddressEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldShipToAddress, v))
}

// ShipToAddressNEQ applies the NEQ predicate on the "ship_to_address" field.
func ShipToAddressNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldShipToAddress, v))
}

// ShipToAddressIn applies the In predicate on the "ship_to_address" field.
func ShipToAddressIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldShipToAddress, vs...))
}

// ShipToAddressNotIn applies the NotIn predicate on the "ship_to_address" field.
func ShipToAddressNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldShipToAddress, vs...))
}

// ShipToAddressGT applies the GT predicate on the "ship_to_address" field.
func ShipToAddressGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldShipToAddress, v))
}

// ShipToAddressGTE applies the GTE predicate on the "ship_to_address" field.
func ShipToAddressGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldShipToAddress, v))
}

// ShipToAddressLT applies the LT predicate on the "ship_to_address" field.
func ShipToAddressLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldShipToAddress, v))
}

// ShipToAddressLTE applies the LTE predicate on the "ship_to_address" field.
func ShipToAddressLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldShipToAddress, v))
}

// ShipToAddressContains applies the Contains predicate on the "ship_to_address" field.
func ShipToAddressContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldShipToAddress, v))
}

// ShipToAddressHasPrefix applies the HasPrefix predicate on the "ship_to_address" field.
func ShipToAddressHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldShipToAddress, v))
}

// ShipToAddressHasSuffix applies the HasSuffix predicate on the "ship_to_address" field.
func ShipToAddressHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldShipToAddress, v))
}

// ShipToAddressEqualFold applies the EqualFold predicate on the "ship_to_address" field.
func ShipToAddressEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldShipToAddress, v))
}

// ShipToAddressContainsFold applies the ContainsFold predicate on the "ship_to_address" field.
func ShipToAddressContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldShipToAddress, v))
}

// HasSignature applies the HasEdge predicate on the "signature" edge.
func HasSignature() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, SignatureTable, SignatureColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSignatureWith applies the HasEdge predicate on the "signature" edge with a given conditions (other predicates).
func HasSignatureWith(preds ...predicate.DigitalSignature) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newSignatureStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVendorForms applies the HasEdge predicate on the "vendor_forms" edge.
func HasVendorForms() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VendorFormsTable, VendorFormsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVendorFormsWith applies the HasEdge predicate on the "vendor_forms" edge with a given conditions (other predicates).
func HasVendorFormsWith(preds ...predicate.VendorForm) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newVendorFormsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Application) predicate.Application {
	return predicate.Application(sql.NotPredicates(p))
}
