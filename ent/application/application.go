// Code generated by ent, DO NOT EDIT.

package application

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the application type in the database.
	Label = "application"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldLegalName holds the string denoting the legal_name field in the database.
	FieldLegalName = "legal_name"
	// FieldContactEmail holds the string denoting the contact_email field in the database.
	FieldContactEmail = "contact_email"
	// FieldContactPhone holds the string denoting the contact_phone field in the database.
	FieldContactPhone = "contact_phone"
	// FieldDunsNumber holds the string denoting the duns_number field in the database.
	FieldDunsNumber = "duns_number"
	// FieldTradeReference1 holds the string denoting the trade_reference_1 field in the database.
	FieldTradeReference1 = "trade_reference_1"
	// FieldTradeReference2 holds the string denoting the trade_reference_2 field in the database.
	FieldTradeReference2 = "trade_reference_2"
	// FieldTradeReference3 holds the string denoting the trade_reference_3 field in the database.
	FieldTradeReference3 = "trade_reference_3"
	// FieldBillToAddress holds the string denoting the bill_to_address field in the database.
	FieldBillToAddress = "bill_to_address"
	// FieldShipToAddress holds the string denoting the ship_to_address field in the database.
	FieldShipToAddress = "ship_to_address"
	// EdgeSignature holds the string denoting the signature edge name in mutations.
	EdgeSignature = "signature"
	// EdgeVendorForms holds the string denoting the vendor_forms edge name in mutations.
	EdgeVendorForms = "vendor_forms"
	// Table holds the table name of the application in the database.
	Table = "applications"
	// SignatureTable is the table that holds the signature relation/edge.
	SignatureTable = "digital_signatures"
	// SignatureInverseTable is the table name for the DigitalSignature entity.
	// It exists in this package in order to avoid circular dependency with the "digitalsignature" package.
	SignatureInverseTable = "digital_signatures"
	// SignatureColumn is the table column denoting the signature relation/edge.
	SignatureColumn = "application_id"
	// VendorFormsTable is the table that holds the vendor_forms relation/edge.
	VendorFormsTable = "vendor_forms"
	// VendorFormsInverseTable is the table name for the VendorForm entity.
	// It exists in this package in order to avoid circular dependency with the "vendorform" package.
	VendorFormsInverseTable = "vendor_forms"
	// VendorFormsColumn is the table column denoting the vendor_forms relation/edge.
	VendorFormsColumn = "application_vendor_forms"
)

// Columns holds all SQL columns for application fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldLegalName,
	FieldContactEmail,
	FieldContactPhone,
	FieldDunsNumber,
	FieldTradeReference1,
	FieldTradeReference2,
	FieldTradeReference3,
	FieldBillToAddress,
	FieldShipToAddress,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// LegalNameValidator is a validator for the "legal_name" field. It is called by the builders before save.
	LegalNameValidator func(string) error
	// ContactEmailValidator is a validator for the "contact_email" field. It is called by the builders before save.
	ContactEmailValidator func(string) error
	// ContactPhoneValidator is a validator for the "contact_phone" field. It is called by the builders before save.
	ContactPhoneValidator func(string) error
	// DunsNumberValidator is a validator for the "duns_number" field. It is called by the builders before save.
	DunsNumberValidator func(string) error
	// TradeReference1Validator is a validator for the "trade_reference_1" field. It is called by the builders before save.
	TradeReference1Validator func(string) error
	// TradeReference2Validator is a validator for the "trade_reference_2" field. It is called by the builders before save.
	TradeReference2Validator func(string) error
	// TradeReference3Validator is a validator for the "trade_reference_3" field. It is called by the builders before save.
	TradeReference3Validator func(string) error
	// BillToAddressValidator is a validator for the "bill_to_address" field. It is called by the builders before save.
	BillToAddressValidator func(string) error
	// ShipToAddressValidator is a validator for the "ship_to_address" field. It is called by the builders before save.
	ShipToAddressValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Application queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLegalName orders the results by the legal_name field.
func ByLegalName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLegalName, opts...).ToFunc()
}

// ByContactEmail orders the results by the contact_email field.
func ByContactEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactEmail, opts...).ToFunc()
}

// ByContactPhone orders the results by the contact_phone field.
func ByContactPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactPhone, opts...).ToFunc()
}

// ByDunsNumber orders the results by the duns_number field.
func ByDunsNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDunsNumber, opts...).ToFunc()
}

// ByTradeReference1 orders the results by the trade_reference_1 field.
func ByTradeReference1(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTradeReference1, opts...).ToFunc()
}

// ByTradeReference2 orders the results by the trade_reference_2 field.
func ByTradeReference2(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTradeReference2, opts...).ToFunc()
}

// ByTradeReference3 orders the results by the trade_reference_3 field.
func ByTradeReference3(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTradeReference3, opts...).ToFunc()
}

// ByBillToAddress orders the results by the bill_to_address field.
func ByBillToAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBillToAddress, opts...).ToFunc()
}

// ByShipToAddress orders the results by the ship_to_address field.
func ByShipToAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShipToAddress, opts...).ToFunc()
}

// BySignatureField orders the results by signature field.
func BySignatureField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSignatureStep(), sql.OrderByField(field, opts...))
	}
}

// ByVendorFormsCount orders the results by vendor_forms count.
func ByVendorFormsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVendorFormsStep(), opts...)
	}
}

// ByVendorForms orders the results by vendor_forms terms.
func ByVendorForms(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVendorFormsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSignatureStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SignatureInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, SignatureTable, SignatureColumn),
	)
}
func newVendorFormsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VendorFormsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VendorFormsTable, VendorFormsColumn),
	)
}
