// Code generated by ent, DO NOT EDIT.

package digitalsignature

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the digitalsignature type in the database.
	Label = "digital_signature"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldApplicationID holds the string denoting the application_id field in the database.
	FieldApplicationID = "application_id"
	// FieldSignerName holds the string denoting the signer_name field in the database.
	FieldSignerName = "signer_name"
	// FieldSignerEmail holds the string denoting the signer_email field in the database.
	FieldSignerEmail = "signer_email"
	// FieldSignatureImage holds the string denoting the signature_image field in the database.
	FieldSignatureImage = "signature_image"
	// FieldSignatureHash holds the string denoting the signature_hash field in the database.
	FieldSignatureHash = "signature_hash"
	// FieldDocumentURL holds the string denoting the document_url field in the database.
	FieldDocumentURL = "document_url"
	// FieldSignedAt holds the string denoting the signed_at field in the database.
	FieldSignedAt = "signed_at"
	// EdgeApplication holds the string denoting the application edge name in mutations.
	EdgeApplication = "application"
	// Table holds the table name of the digitalsignature in the database.
	Table = "digital_signatures"
	// ApplicationTable is the table that holds the application relation/edge.
	ApplicationTable = "digital_signatures"
	// ApplicationInverseTable is the table name for the Application entity.
	// It exists in this package in order to avoid circular dependency with the "application" package.
	ApplicationInverseTable = "applications"
	// ApplicationColumn is the table column denoting the application relation/edge.
	ApplicationColumn = "application_id"
)

// Columns holds all SQL columns for digitalsignature fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldApplicationID,
	FieldSignerName,
	FieldSignerEmail,
	FieldSignatureImage,
	FieldSignatureHash,
	FieldDocumentURL,
	FieldSignedAt,
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
	// SignerNameValidator is a validator for the "signer_name" field. It is called by the builders before save.
	SignerNameValidator func(string) error
	// SignerEmailValidator is a validator for the "signer_email" field. It is called by the builders before save.
	SignerEmailValidator func(string) error
	// SignatureHashValidator is a validator for the "signature_hash" field. It is called by the builders before save.
	SignatureHashValidator func(string) error
	// DocumentURLValidator is a validator for the "document_url" field. It is called by the builders before save.
	DocumentURLValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DigitalSignature queries.
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

// ByApplicationID orders the results by the application_id field.
func ByApplicationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplicationID, opts...).ToFunc()
}

// BySignerName orders the results by the signer_name field.
func BySignerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignerName, opts...).ToFunc()
}

// BySignerEmail orders the results by the signer_email field.
func BySignerEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignerEmail, opts...).ToFunc()
}

// BySignatureImage orders the results by the signature_image field.
func BySignatureImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignatureImage, opts...).ToFunc()
}

// BySignatureHash orders the results by the signature_hash field.
func BySignatureHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignatureHash, opts...).ToFunc()
}

// ByDocumentURL orders the results by the document_url field.
func ByDocumentURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentURL, opts...).ToFunc()
}

// BySignedAt orders the results by the signed_at field.
func BySignedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignedAt, opts...).ToFunc()
}

// ByApplicationField orders the results by application field.
func ByApplicationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newApplicationStep(), sql.OrderByField(field, opts...))
	}
}
func newApplicationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ApplicationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, ApplicationTable, ApplicationColumn),
	)
}
