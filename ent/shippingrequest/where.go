// Code generated by ent, DO NOT EDIT.

package shippingrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/netvendor/creditintake/ent/predicate"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// ContactName applies equality check predicate on the "contact_name" field. It's identical to ContactNameEQ.
func ContactName(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldContactName, v))
}

// ContactEmail applies equality check predicate on the "contact_email" field. It's identical to ContactEmailEQ.
func ContactEmail(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldContactEmail, v))
}

// ContactPhone applies equality check predicate on the "contact_phone" field. It's identical to ContactPhoneEQ.
func ContactPhone(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldContactPhone, v))
}

// AddressLine applies equality check predicate on the "address_line" field. It's identical to AddressLineEQ.
func AddressLine(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldAddressLine, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldCity, v))
}

// Country applies equality check predicate on the "country" field. It's identical to CountryEQ.
func Country(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldCountry, v))
}

// PostalCode applies equality check predicate on the "postal_code" field. It's identical to PostalCodeEQ.
func PostalCode(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldPostalCode, v))
}

// Carrier applies equality check predicate on the "carrier" field. It's identical to CarrierEQ.
func Carrier(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldCarrier, v))
}

// ServiceLevel applies equality check predicate on the "service_level" field. It's identical to ServiceLevelEQ.
func ServiceLevel(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldServiceLevel, v))
}

// WeightKg applies equality check predicate on the "weight_kg" field. It's identical to WeightKgEQ.
func WeightKg(v decimal.Decimal) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldWeightKg, v))
}

// DeclaredValue applies equality check predicate on the "declared_value" field. It's identical to DeclaredValueEQ.
func DeclaredValue(v decimal.Decimal) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldDeclaredValue, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLTE(FieldUpdatedAt, v))
}

// ContactNameEQ applies the EQ predicate on the "contact_name" field.
func ContactNameEQ(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldContactName, v))
}

// ContactNameNEQ applies the NEQ predicate on the "contact_name" field.
func ContactNameNEQ(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNEQ(FieldContactName, v))
}

// ContactNameIn applies the In predicate on the "contact_name" field.
func ContactNameIn(vs ...string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIn(FieldContactName, vs...))
}

// ContactNameNotIn applies the NotIn predicate on the "contact_name" field.
func ContactNameNotIn(vs ...string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotIn(FieldContactName, vs...))
}

// ContactNameGT applies the GT predicate on the "contact_name" field.
func ContactNameGT(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGT(FieldContactName, v))
}

// ContactNameGTE applies the GTE predicate on the "contact_name" field.
func ContactNameGTE(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGTE(FieldContactName, v))
}

// ContactNameLT applies the LT predicate on the "contact_name" field.
func ContactNameLT(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLT(FieldContactName, v))
}

// ContactNameLTE applies the LTE predicate on the "contact_name" field.
func ContactNameLTE(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLTE(FieldContactName, v))
}

// ContactNameContains applies the Contains predicate on the "contact_name" field.
func ContactNameContains(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldContains(FieldContactName, v))
}

// ContactNameHasPrefix applies the HasPrefix predicate on the "contact_name" field.
func ContactNameHasPrefix(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldHasPrefix(FieldContactName, v))
}

// ContactNameHasSuffix applies the HasSuffix predicate on the "contact_name" field.
func ContactNameHasSuffix(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldHasSuffix(FieldContactName, v))
}

// ContactNameEqualFold applies the EqualFold predicate on the "contact_name" field.
func ContactNameEqualFold(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEqualFold(FieldContactName, v))
}

// ContactNameContainsFold applies the ContainsFold predicate on the "contact_name" field.
func ContactNameContainsFold(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldContainsFold(FieldContactName, v))
}

// ContactEmailEQ applies the EQ predicate on the "contact_email" field.
func ContactEmailEQ(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldContactEmail, v))
}

// ContactEmailNEQ applies the NEQ predicate on the "contact_email" field.
func ContactEmailNEQ(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNEQ(FieldContactEmail, v))
}

// ContactEmailIn applies the In predicate on the "contact_email" field.
func ContactEmailIn(vs ...string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIn(FieldContactEmail, vs...))
}

// ContactEmailNotIn applies the NotIn predicate on the "contact_email" field.
func ContactEmailNotIn(vs ...string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotIn(FieldContactEmail, vs...))
}

// ContactEmailGT applies the GT predicate on the "contact_email" field.
func ContactEmailGT(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGT(FieldContactEmail, v))
}

// ContactEmailGTE applies the GTE predicate on the "contact_email" field.
func ContactEmailGTE(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGTE(FieldContactEmail, v))
}

// ContactEmailLT applies the LT predicate on the "contact_email" field.
func ContactEmailLT(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLT(FieldContactEmail, v))
}

// ContactEmailLTE applies the LTE predicate on the "contact_email" field.
func ContactEmailLTE(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLTE(FieldContactEmail, v))
}

// ContactEmailContains applies the Contains predicate on the "contact_email" field.
func ContactEmailContains(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldContains(FieldContactEmail, v))
}

// ContactEmailHasPrefix applies the HasPrefix predicate on the "contact_email" field.
func ContactEmailHasPrefix(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldHasPrefix(FieldContactEmail, v))
}

// ContactEmailHasSuffix applies the HasSuffix predicate on the "contact_email" field.
func ContactEmailHasSuffix(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldHasSuffix(FieldContactEmail, v))
}

// ContactEmailEqualFold applies the EqualFold predicate on the "contact_email" field.
func ContactEmailEqualFold(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEqualFold(FieldContactEmail, v))
}

// ContactEmailContainsFold applies the ContainsFold predicate on the "contact_email" field.
func ContactEmailContainsFold(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldContainsFold(FieldContactEmail, v))
}

// ContactPhoneEQ applies the EQ predicate on the "contact_phone" field.
func ContactPhoneEQ(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldContactPhone, v))
}

// ContactPhoneNEQ applies the NEQ predicate on the "contact_phone" field.
func ContactPhoneNEQ(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNEQ(FieldContactPhone, v))
}

// ContactPhoneIn applies the In predicate on the "contact_phone" field.
func ContactPhoneIn(vs ...string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIn(FieldContactPhone, vs...))
}

// ContactPhoneNotIn applies the NotIn predicate on the "contact_phone" field.
func ContactPhoneNotIn(vs ...string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotIn(FieldContactPhone, vs...))
}

// ContactPhoneGT applies the GT predicate on the "contact_phone" field.
func ContactPhoneGT(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGT(FieldContactPhone, v))
}

// ContactPhoneGTE applies the GTE predicate on the "contact_phone" field.
func ContactPhoneGTE(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGTE(FieldContactPhone, v))
}

// ContactPhoneLT applies the LT predicate on the "contact_phone" field.
func ContactPhoneLT(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLT(FieldContactPhone, v))
}

// ContactPhoneLTE applies the LTE predicate on the "contact_phone" field.
func ContactPhoneLTE(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLTE(FieldContactPhone, v))
}

// ContactPhoneContains applies the Contains predicate on the "contact_phone" field.
func ContactPhoneContains(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldContains(FieldContactPhone, v))
}

// ContactPhoneHasPrefix applies the HasPrefix predicate on the "contact_phone" field.
func ContactPhoneHasPrefix(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldHasPrefix(FieldContactPhone, v))
}

// ContactPhoneHasSuffix applies the HasSuffix predicate on the "contact_phone" field.
func ContactPhoneHasSuffix(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldHasSuffix(FieldContactPhone, v))
}

// ContactPhoneIsNil applies the IsNil predicate on the "contact_phone" field.
func ContactPhoneIsNil() predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIsNull(FieldContactPhone))
}

// ContactPhoneNotNil applies the NotNil predicate on the "contact_phone" field.
func ContactPhoneNotNil() predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotNull(FieldContactPhone))
}

// ContactPhoneEqualFold applies the EqualFold predicate on the "contact_phone" field.
func ContactPhoneEqualFold(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEqualFold(FieldContactPhone, v))
}

// ContactPhoneContainsFold applies the ContainsFold predicate on the "contact_phone" field.
func ContactPhoneContainsFold(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldContainsFold(FieldContactPhone, v))
}

// AddressLineEQ applies the EQ predicate on the "address_line" field.
func AddressLineEQ(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldAddressLine, v))
}

// AddressLineNEQ applies the NEQ predicate on the "address_line" field.
func AddressLineNEQ(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNEQ(FieldAddressLine, v))
}

// AddressLineIn applies the In predicate on the "address_line" field.
func AddressLineIn(vs ...string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIn(FieldAddressLine, vs...))
}

// AddressLineNotIn applies the NotIn predicate on the "address_line" field.
func AddressLineNotIn(vs ...string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotIn(FieldAddressLine, vs...))
}

// AddressLineGT applies the GT predicate on the "address_line" field.
func AddressLineGT(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGT(FieldAddressLine, v))
}

// AddressLineGTE applies the GTE predicate on the "address_line" field.
func AddressLineGTE(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGTE(FieldAddressLine, v))
}

// AddressLineLT applies the LT predicate on the "address_line" field.
func AddressLineLT(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLT(FieldAddressLine, v))
}

// AddressLineLTE applies the LTE predicate on the "address_line" field.
func AddressLineLTE(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLTE(FieldAddressLine, v))
}

// AddressLineContains applies the Contains predicate on the "address_line" field.
func AddressLineContains(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldContains(FieldAddressLine, v))
}

// AddressLineHasPrefix applies the HasPrefix predicate on the "address_line" field.
func AddressLineHasPrefix(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldHasPrefix(FieldAddressLine, v))
}

// AddressLineHasSuffix applies the HasSuffix predicate on the "address_line" field.
func AddressLineHasSuffix(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldHasSuffix(FieldAddressLine, v))
}

// AddressLineEqualFold applies the EqualFold predicate on the "address_line" field.
func AddressLineEqualFold(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEqualFold(FieldAddressLine, v))
}

// AddressLineContainsFold applies the ContainsFold predicate on the "address_line" field.
func AddressLineContainsFold(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldContainsFold(FieldAddressLine, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldHasSuffix(FieldCity, v))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldContainsFold(FieldCity, v))
}

// CountryEQ applies the EQ predicate on the "country" field.
func CountryEQ(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldCountry, v))
}

// CountryNEQ applies the NEQ predicate on the "country" field.
func CountryNEQ(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNEQ(FieldCountry, v))
}

// CountryIn applies the In predicate on the "country" field.
func CountryIn(vs ...string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIn(FieldCountry, vs...))
}

// CountryNotIn applies the NotIn predicate on the "country" field.
func CountryNotIn(vs ...string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotIn(FieldCountry, vs...))
}

// CountryGT applies the GT predicate on the "country" field.
func CountryGT(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGT(FieldCountry, v))
}

// CountryGTE applies the GTE predicate on the "country" field.
func CountryGTE(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGTE(FieldCountry, v))
}

// CountryLT applies the LT predicate on the "country" field.
func CountryLT(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLT(FieldCountry, v))
}

// CountryLTE applies the LTE predicate on the "country" field.
func CountryLTE(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLTE(FieldCountry, v))
}

// CountryContains applies the Contains predicate on the "country" field.
func CountryContains(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldContains(FieldCountry, v))
}

// CountryHasPrefix applies the HasPrefix predicate on the "country" field.
func CountryHasPrefix(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldHasPrefix(FieldCountry, v))
}

// CountryHasSuffix applies the HasSuffix predicate on the "country" field.
func CountryHasSuffix(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldHasSuffix(FieldCountry, v))
}

// CountryEqualFold applies the EqualFold predicate on the "country" field.
func CountryEqualFold(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEqualFold(FieldCountry, v))
}

// CountryContainsFold applies the ContainsFold predicate on the "country" field.
func CountryContainsFold(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldContainsFold(FieldCountry, v))
}

// PostalCodeEQ applies the EQ predicate on the "postal_code" field.
func PostalCodeEQ(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldPostalCode, v))
}

// PostalCodeNEQ applies the NEQ predicate on the "postal_code" field.
func PostalCodeNEQ(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNEQ(FieldPostalCode, v))
}

// PostalCodeIn applies the In predicate on the "postal_code" field.
func PostalCodeIn(vs ...string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIn(FieldPostalCode, vs...))
}

// PostalCodeNotIn applies the NotIn predicate on the "postal_code" field.
func PostalCodeNotIn(vs ...string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotIn(FieldPostalCode, vs...))
}

// PostalCodeGT applies the GT predicate on the "postal_code" field.
func PostalCodeGT(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGT(FieldPostalCode, v))
}

// PostalCodeGTE applies the GTE predicate on the "postal_code" field.
func PostalCodeGTE(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGTE(FieldPostalCode, v))
}

// PostalCodeLT applies the LT predicate on the "postal_code" field.
func PostalCodeLT(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLT(FieldPostalCode, v))
}

// PostalCodeLTE applies the LTE predicate on the "postal_code" field.
func PostalCodeLTE(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLTE(FieldPostalCode, v))
}

// PostalCodeContains applies the Contains predicate on the "postal_code" field.
func PostalCodeContains(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldContains(FieldPostalCode, v))
}

// PostalCodeHasPrefix applies the HasPrefix predicate on the "postal_code" field.
func PostalCodeHasPrefix(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldHasPrefix(FieldPostalCode, v))
}

// PostalCodeHasSuffix applies the HasSuffix predicate on the "postal_code" field.
func PostalCodeHasSuffix(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldHasSuffix(FieldPostalCode, v))
}

// PostalCodeIsNil applies the IsNil predicate on the "postal_code" field.
func PostalCodeIsNil() predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIsNull(FieldPostalCode))
}

// PostalCodeNotNil applies the NotNil predicate on the "postal_code" field.
func PostalCodeNotNil() predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotNull(FieldPostalCode))
}

// PostalCodeEqualFold applies the EqualFold predicate on the "postal_code" field.
func PostalCodeEqualFold(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEqualFold(FieldPostalCode, v))
}

// PostalCodeContainsFold applies the ContainsFold predicate on the "postal_code" field.
func PostalCodeContainsFold(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldContainsFold(FieldPostalCode, v))
}

// CarrierEQ applies the EQ predicate on the "carrier" field.
func CarrierEQ(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldCarrier, v))
}

// CarrierNEQ applies the NEQ predicate on the "carrier" field.
func CarrierNEQ(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNEQ(FieldCarrier, v))
}

// CarrierIn applies the In predicate on the "carrier" field.
func CarrierIn(vs ...string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIn(FieldCarrier, vs...))
}

// CarrierNotIn applies the NotIn predicate on the "carrier" field.
func CarrierNotIn(vs ...string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotIn(FieldCarrier, vs...))
}

// CarrierGT applies the GT predicate on the "carrier" field.
func CarrierGT(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGT(FieldCarrier, v))
}

// CarrierGTE applies the GTE predicate on the "carrier" field.
func CarrierGTE(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGTE(FieldCarrier, v))
}

// CarrierLT applies the LT predicate on the "carrier" field.
func CarrierLT(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLT(FieldCarrier, v))
}

// CarrierLTE applies the LTE predicate on the "carrier" field.
func CarrierLTE(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLTE(FieldCarrier, v))
}

// CarrierContains applies the Contains predicate on the "carrier" field.
func CarrierContains(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldContains(FieldCarrier, v))
}

// CarrierHasPrefix applies the HasPrefix predicate on the "carrier" field.
func CarrierHasPrefix(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldHasPrefix(FieldCarrier, v))
}

// CarrierHasSuffix applies the HasSuffix predicate on the "carrier" field.
func CarrierHasSuffix(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldHasSuffix(FieldCarrier, v))
}

// CarrierIsNil applies the IsNil predicate on the "carrier" field.
func CarrierIsNil() predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIsNull(FieldCarrier))
}

// CarrierNotNil applies the NotNil predicate on the "carrier" field.
func CarrierNotNil() predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotNull(FieldCarrier))
}

// CarrierEqualFold applies the EqualFold predicate on the "carrier" field.
func CarrierEqualFold(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEqualFold(FieldCarrier, v))
}

// CarrierContainsFold applies the ContainsFold predicate on the "carrier" field.
func CarrierContainsFold(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldContainsFold(FieldCarrier, v))
}

// ServiceLevelEQ applies the EQ predicate on the "service_level" field.
func ServiceLevelEQ(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldServiceLevel, v))
}

// ServiceLevelNEQ applies the NEQ predicate on the "service_level" field.
func ServiceLevelNEQ(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNEQ(FieldServiceLevel, v))
}

// ServiceLevelIn applies the In predicate on the "service_level" field.
func ServiceLevelIn(vs ...string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIn(FieldServiceLevel, vs...))
}

// ServiceLevelNotIn applies the NotIn predicate on the "service_level" field.
func ServiceLevelNotIn(vs ...string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotIn(FieldServiceLevel, vs...))
}

// ServiceLevelGT applies the GT predicate on the "service_level" field.
func ServiceLevelGT(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGT(FieldServiceLevel, v))
}

// ServiceLevelGTE applies the GTE predicate on the "service_level" field.
func ServiceLevelGTE(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGTE(FieldServiceLevel, v))
}

// ServiceLevelLT applies the LT predicate on the "service_level" field.
func ServiceLevelLT(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLT(FieldServiceLevel, v))
}

// ServiceLevelLTE applies the LTE predicate on the "service_level" field.
func ServiceLevelLTE(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLTE(FieldServiceLevel, v))
}

// ServiceLevelContains applies the Contains predicate on the "service_level" field.
func ServiceLevelContains(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldContains(FieldServiceLevel, v))
}

// ServiceLevelHasPrefix applies the HasPrefix predicate on the "service_level" field.
func ServiceLevelHasPrefix(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldHasPrefix(FieldServiceLevel, v))
}

// ServiceLevelHasSuffix applies the HasSuffix predicate on the "service_level" field.
func ServiceLevelHasSuffix(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldHasSuffix(FieldServiceLevel, v))
}

// ServiceLevelIsNil applies the IsNil predicate on the "service_level" field.
func ServiceLevelIsNil() predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIsNull(FieldServiceLevel))
}

// ServiceLevelNotNil applies the NotNil predicate on the "service_level" field.
func ServiceLevelNotNil() predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotNull(FieldServiceLevel))
}

// ServiceLevelEqualFold applies the EqualFold predicate on the "service_level" field.
func ServiceLevelEqualFold(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEqualFold(FieldServiceLevel, v))
}

// ServiceLevelContainsFold applies the ContainsFold predicate on the "service_level" field.
func ServiceLevelContainsFold(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldContainsFold(FieldServiceLevel, v))
}

// WeightKgEQ applies the EQ predicate on the "weight_kg" field.
func WeightKgEQ(v decimal.Decimal) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldWeightKg, v))
}

// WeightKgNEQ applies the NEQ predicate on the "weight_kg" field.
func WeightKgNEQ(v decimal.Decimal) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNEQ(FieldWeightKg, v))
}

// WeightKgIn applies the In predicate on the "weight_kg" field.
func WeightKgIn(vs ...decimal.Decimal) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIn(FieldWeightKg, vs...))
}

// WeightKgNotIn applies the NotIn predicate on the "weight_kg" field.
func WeightKgNotIn(vs ...decimal.Decimal) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotIn(FieldWeightKg, vs...))
}

// WeightKgGT applies the GT predicate on the "weight_kg" field.
func WeightKgGT(v decimal.Decimal) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGT(FieldWeightKg, v))
}

// WeightKgGTE applies the GTE predicate on the "weight_kg" field.
func WeightKgGTE(v decimal.Decimal) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGTE(FieldWeightKg, v))
}

// WeightKgLT applies the LT predicate on the "weight_kg" field.
func WeightKgLT(v decimal.Decimal) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLT(FieldWeightKg, v))
}

// WeightKgLTE applies the LTE predicate on the "weight_kg" field.
func WeightKgLTE(v decimal.Decimal) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLTE(FieldWeightKg, v))
}

// WeightKgIsNil applies the IsNil predicate on the "weight_kg" field.
func WeightKgIsNil() predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIsNull(FieldWeightKg))
}

// WeightKgNotNil applies the NotNil predicate on the "weight_kg" field.
func WeightKgNotNil() predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotNull(FieldWeightKg))
}

// DeclaredValueEQ applies the EQ predicate on the "declared_value" field.
func DeclaredValueEQ(v decimal.Decimal) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldDeclaredValue, v))
}

// DeclaredValueNEQ applies the NEQ predicate on the "declared_value" field.
func DeclaredValueNEQ(v decimal.Decimal) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNEQ(FieldDeclaredValue, v))
}

// DeclaredValueIn applies the In predicate on the "declared_value" field.
func DeclaredValueIn(vs ...decimal.Decimal) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIn(FieldDeclaredValue, vs...))
}

// DeclaredValueNotIn applies the NotIn predicate on the "declared_value" field.
func DeclaredValueNotIn(vs ...decimal.Decimal) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotIn(FieldDeclaredValue, vs...))
}

// DeclaredValueGT applies the GT predicate on the "declared_value" field.
func DeclaredValueGT(v decimal.Decimal) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGT(FieldDeclaredValue, v))
}

// DeclaredValueGTE applies the GTE predicate on the "declared_value" field.
func DeclaredValueGTE(v decimal.Decimal) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGTE(FieldDeclaredValue, v))
}

// DeclaredValueLT applies the LT predicate on the "declared_value" field.
func DeclaredValueLT(v decimal.Decimal) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLT(FieldDeclaredValue, v))
}

// DeclaredValueLTE applies the LTE predicate on the "declared_value" field.
func DeclaredValueLTE(v decimal.Decimal) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLTE(FieldDeclaredValue, v))
}

// DeclaredValueIsNil applies the IsNil predicate on the "declared_value" field.
func DeclaredValueIsNil() predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIsNull(FieldDeclaredValue))
}

// DeclaredValueNotNil applies the NotNil predicate on the "declared_value" field.
func DeclaredValueNotNil() predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotNull(FieldDeclaredValue))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.FieldContainsFold(FieldNotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ShippingRequest) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ShippingRequest) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ShippingRequest) predicate.ShippingRequest {
	return predicate.ShippingRequest(sql.NotPredicates(p))
}
