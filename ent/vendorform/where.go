// Code generated by ent, DO NOT EDIT.

package vendorform

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/netvendor/creditintake/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldEQ(FieldUpdatedAt, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldEQ(FieldFileName, v))
}

// StorageURL applies equality check predicate on the "storage_url" field. It's identical to StorageURLEQ.
func StorageURL(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldEQ(FieldStorageURL, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldEQ(FieldMimeType, v))
}

// ByteSize applies equality check predicate on the "byte_size" field. It's identical to ByteSizeEQ.
func ByteSize(v int64) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldEQ(FieldByteSize, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldLTE(FieldUpdatedAt, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldContainsFold(FieldFileName, v))
}

// StorageURLEQ applies the EQ predicate on the "storage_url" field.
func StorageURLEQ(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldEQ(FieldStorageURL, v))
}

// StorageURLNEQ applies the NEQ predicate on the "storage_url" field.
func StorageURLNEQ(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldNEQ(FieldStorageURL, v))
}

// StorageURLIn applies the In predicate on the "storage_url" field.
func StorageURLIn(vs ...string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldIn(FieldStorageURL, vs...))
}

// StorageURLNotIn applies the NotIn predicate on the "storage_url" field.
func StorageURLNotIn(vs ...string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldNotIn(FieldStorageURL, vs...))
}

// StorageURLGT applies the GT predicate on the "storage_url" field.
func StorageURLGT(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldGT(FieldStorageURL, v))
}

// StorageURLGTE applies the GTE predicate on the "storage_url" field.
func StorageURLGTE(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldGTE(FieldStorageURL, v))
}

// StorageURLLT applies the LT predicate on the "storage_url" field.
func StorageURLLT(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldLT(FieldStorageURL, v))
}

// StorageURLLTE applies the LTE predicate on the "storage_url" field.
func StorageURLLTE(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldLTE(FieldStorageURL, v))
}

// StorageURLContains applies the Contains predicate on the "storage_url" field.
func StorageURLContains(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldContains(FieldStorageURL, v))
}

// StorageURLHasPrefix applies the HasPrefix predicate on the "storage_url" field.
func StorageURLHasPrefix(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldHasPrefix(FieldStorageURL, v))
}

// StorageURLHasSuffix applies the HasSuffix predicate on the "storage_url" field.
func StorageURLHasSuffix(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldHasSuffix(FieldStorageURL, v))
}

// StorageURLEqualFold applies the EqualFold predicate on the "storage_url" field.
func StorageURLEqualFold(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldEqualFold(FieldStorageURL, v))
}

// StorageURLContainsFold applies the ContainsFold predicate on the "storage_url" field.
func StorageURLContainsFold(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldContainsFold(FieldStorageURL, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldContainsFold(FieldMimeType, v))
}

// ByteSizeEQ applies the EQ predicate on the "byte_size" field.
func ByteSizeEQ(v int64) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldEQ(FieldByteSize, v))
}

// ByteSizeNEQ applies the NEQ predicate on the "byte_size" field.
func ByteSizeNEQ(v int64) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldNEQ(FieldByteSize, v))
}

// ByteSizeIn applies the In predicate on the "byte_size" field.
func ByteSizeIn(vs ...int64) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldIn(FieldByteSize, vs...))
}

// ByteSizeNotIn applies the NotIn predicate on the "byte_size" field.
func ByteSizeNotIn(vs ...int64) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldNotIn(FieldByteSize, vs...))
}

// ByteSizeGT applies the GT predicate on the "byte_size" field.
func ByteSizeGT(v int64) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldGT(FieldByteSize, v))
}

// ByteSizeGTE applies the GTE predicate on the "byte_size" field.
func ByteSizeGTE(v int64) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldGTE(FieldByteSize, v))
}

// ByteSizeLT applies the LT predicate on the "byte_size" field.
func ByteSizeLT(v int64) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldLT(FieldByteSize, v))
}

// ByteSizeLTE applies the LTE predicate on the "byte_size" field.
func ByteSizeLTE(v int64) predicate.VendorForm {
	return predicate.VendorForm(sql.FieldLTE(FieldByteSize, v))
}

// HasApplication applies the HasEdge predicate on the "application" edge.
func HasApplication() predicate.VendorForm {
	return predicate.VendorForm(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ApplicationTable, ApplicationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicationWith applies the HasEdge predicate on the "application" edge with a given conditions (other predicates).
func HasApplicationWith(preds ...predicate.Application) predicate.VendorForm {
	return predicate.VendorForm(func(s *sql.Selector) {
		step := newApplicationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VendorForm) predicate.VendorForm {
	return predicate.VendorForm(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VendorForm) predicate.VendorForm {
	return predicate.VendorForm(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VendorForm) predicate.VendorForm {
	return predicate.VendorForm(sql.NotPredicates(p))
}
