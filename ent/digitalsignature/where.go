// Code generated by ent, DO NOT EDIT.

package digitalsignature

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/netvendor/creditintake/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEQ(FieldUpdatedAt, v))
}

// ApplicationID applies equality check predicate on the "application_id" field. It's identical to ApplicationIDEQ.
func ApplicationID(v uuid.UUID) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEQ(FieldApplicationID, v))
}

// SignerName applies equality check predicate on the "signer_name" field. It's identical to SignerNameEQ.
func SignerName(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEQ(FieldSignerName, v))
}

// SignerEmail applies equality check predicate on the "signer_email" field. It's identical to SignerEmailEQ.
func SignerEmail(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEQ(FieldSignerEmail, v))
}

// SignatureImage applies equality check predicate on the "signature_image" field. It's identical to SignatureImageEQ.
func SignatureImage(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEQ(FieldSignatureImage, v))
}

// SignatureHash applies equality check predicate on the "signature_hash" field. It's identical to SignatureHashEQ.
func SignatureHash(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEQ(FieldSignatureHash, v))
}

// DocumentURL applies equality check predicate on the "document_url" field. It's identical to DocumentURLEQ.
func DocumentURL(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEQ(FieldDocumentURL, v))
}

// SignedAt applies equality check predicate on the "signed_at" field. It's identical to SignedAtEQ.
func SignedAt(v time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEQ(FieldSignedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldLTE(FieldUpdatedAt, v))
}

// ApplicationIDEQ applies the EQ predicate on the "application_id" field.
func ApplicationIDEQ(v uuid.UUID) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEQ(FieldApplicationID, v))
}

// ApplicationIDNEQ applies the NEQ predicate on the "application_id" field.
func ApplicationIDNEQ(v uuid.UUID) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldNEQ(FieldApplicationID, v))
}

// ApplicationIDIn applies the In predicate on the "application_id" field.
func ApplicationIDIn(vs ...uuid.UUID) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldIn(FieldApplicationID, vs...))
}

// ApplicationIDNotIn applies the NotIn predicate on the "application_id" field.
func ApplicationIDNotIn(vs ...uuid.UUID) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldNotIn(FieldApplicationID, vs...))
}

// SignerNameEQ applies the EQ predicate on the "signer_name" field.
func SignerNameEQ(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEQ(FieldSignerName, v))
}

// SignerNameNEQ applies the NEQ predicate on the "signer_name" field.
func SignerNameNEQ(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldNEQ(FieldSignerName, v))
}

// SignerNameIn applies the In predicate on the "signer_name" field.
func SignerNameIn(vs ...string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldIn(FieldSignerName, vs...))
}

// SignerNameNotIn applies the NotIn predicate on the "signer_name" field.
func SignerNameNotIn(vs ...string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldNotIn(FieldSignerName, vs...))
}

// SignerNameGT applies the GT predicate on the "signer_name" field.
func SignerNameGT(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldGT(FieldSignerName, v))
}

// SignerNameGTE applies the GTE predicate on the "signer_name" field.
func SignerNameGTE(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldGTE(FieldSignerName, v))
}

// SignerNameLT applies the LT predicate on the "signer_name" field.
func SignerNameLT(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldLT(FieldSignerName, v))
}

// SignerNameLTE applies the LTE predicate on the "signer_name" field.
func SignerNameLTE(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldLTE(FieldSignerName, v))
}

// SignerNameContains applies the Contains predicate on the "signer_name" field.
func SignerNameContains(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldContains(FieldSignerName, v))
}

// SignerNameHasPrefix applies the HasPrefix predicate on the "signer_name" field.
func SignerNameHasPrefix(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldHasPrefix(FieldSignerName, v))
}

// SignerNameHasSuffix applies the HasSuffix predicate on the "signer_name" field.
func SignerNameHasSuffix(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldHasSuffix(FieldSignerName, v))
}

// SignerNameEqualFold applies the EqualFold predicate on the "signer_name" field.
func SignerNameEqualFold(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEqualFold(FieldSignerName, v))
}

// SignerNameContainsFold applies the ContainsFold predicate on the "signer_name" field.
func SignerNameContainsFold(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldContainsFold(FieldSignerName, v))
}

// SignerEmailEQ applies the EQ predicate on the "signer_email" field.
func SignerEmailEQ(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEQ(FieldSignerEmail, v))
}

// SignerEmailNEQ applies the NEQ predicate on the "signer_email" field.
func SignerEmailNEQ(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldNEQ(FieldSignerEmail, v))
}

// SignerEmailIn applies the In predicate on the "signer_email" field.
func SignerEmailIn(vs ...string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldIn(FieldSignerEmail, vs...))
}

// SignerEmailNotIn applies the NotIn predicate on the "signer_email" field.
func SignerEmailNotIn(vs ...string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldNotIn(FieldSignerEmail, vs...))
}

// SignerEmailGT applies the GT predicate on the "signer_email" field.
func SignerEmailGT(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldGT(FieldSignerEmail, v))
}

// SignerEmailGTE applies the GTE predicate on the "signer_email" field.
func SignerEmailGTE(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldGTE(FieldSignerEmail, v))
}

// SignerEmailLT applies the LT predicate on the "signer_email" field.
func SignerEmailLT(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldLT(FieldSignerEmail, v))
}

// SignerEmailLTE applies the LTE predicate on the "signer_email" field.
func SignerEmailLTE(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldLTE(FieldSignerEmail, v))
}

// SignerEmailContains applies the Contains predicate on the "signer_email" field.
func SignerEmailContains(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldContains(FieldSignerEmail, v))
}

// SignerEmailHasPrefix applies the HasPrefix predicate on the "signer_email" field.
func SignerEmailHasPrefix(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldHasPrefix(FieldSignerEmail, v))
}

// SignerEmailHasSuffix applies the HasSuffix predicate on the "signer_email" field.
func SignerEmailHasSuffix(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldHasSuffix(FieldSignerEmail, v))
}

// SignerEmailEqualFold applies the EqualFold predicate on the "signer_email" field.
func SignerEmailEqualFold(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEqualFold(FieldSignerEmail, v))
}

// SignerEmailContainsFold applies the ContainsFold predicate on the "signer_email" field.
func SignerEmailContainsFold(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldContainsFold(FieldSignerEmail, v))
}

// SignatureImageEQ applies the EQ predicate on the "signature_image" field.
func SignatureImageEQ(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEQ(FieldSignatureImage, v))
}

// SignatureImageNEQ applies the NEQ predicate on the "signature_image" field.
func SignatureImageNEQ(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldNEQ(FieldSignatureImage, v))
}

// SignatureImageIn applies the In predicate on the "signature_image" field.
func SignatureImageIn(vs ...string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldIn(FieldSignatureImage, vs...))
}

// SignatureImageNotIn applies the NotIn predicate on the "signature_image" field.
func SignatureImageNotIn(vs ...string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldNotIn(FieldSignatureImage, vs...))
}

// SignatureImageGT applies the GT predicate on the "signature_image" field.
func SignatureImageGT(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldGT(FieldSignatureImage, v))
}

// SignatureImageGTE applies the GTE predicate on the "signature_image" field.
func SignatureImageGTE(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldGTE(FieldSignatureImage, v))
}

// SignatureImageLT applies the LT predicate on the "signature_image" field.
func SignatureImageLT(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldLT(FieldSignatureImage, v))
}

// SignatureImageLTE applies the LTE predicate on the "signature_image" field.
func SignatureImageLTE(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldLTE(FieldSignatureImage, v))
}

// SignatureImageContains applies the Contains predicate on the "signature_image" field.
func SignatureImageContains(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldContains(FieldSignatureImage, v))
}

// SignatureImageHasPrefix applies the HasPrefix predicate on the "signature_image" field.
func SignatureImageHasPrefix(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldHasPrefix(FieldSignatureImage, v))
}

// SignatureImageHasSuffix applies the HasSuffix predicate on the "signature_image" field.
func SignatureImageHasSuffix(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldHasSuffix(FieldSignatureImage, v))
}

// SignatureImageEqualFold applies the EqualFold predicate on the "signature_image" field.
func SignatureImageEqualFold(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEqualFold(FieldSignatureImage, v))
}

// SignatureImageContainsFold applies the ContainsFold predicate on the "signature_image" field.
func SignatureImageContainsFold(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldContainsFold(FieldSignatureImage, v))
}

// SignatureHashEQ applies the EQ predicate on the "signature_hash" field.
func SignatureHashEQ(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEQ(FieldSignatureHash, v))
}

// SignatureHashNEQ applies the NEQ predicate on the "signature_hash" field.
func SignatureHashNEQ(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldNEQ(FieldSignatureHash, v))
}

// SignatureHashIn applies the In predicate on the "signature_hash" field.
func SignatureHashIn(vs ...string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldIn(FieldSignatureHash, vs...))
}

// SignatureHashNotIn applies the NotIn predicate on the "signature_hash" field.
func SignatureHashNotIn(vs ...string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldNotIn(FieldSignatureHash, vs...))
}

// SignatureHashGT applies the GT predicate on the "signature_hash" field.
func SignatureHashGT(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldGT(FieldSignatureHash, v))
}

// SignatureHashGTE applies the GTE predicate on the "signature_hash" field.
func SignatureHashGTE(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldGTE(FieldSignatureHash, v))
}

// SignatureHashLT applies the LT predicate on the "signature_hash" field.
func SignatureHashLT(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldLT(FieldSignatureHash, v))
}

// SignatureHashLTE applies the LTE predicate on the "signature_hash" field.
func SignatureHashLTE(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldLTE(FieldSignatureHash, v))
}

// SignatureHashContains applies the Contains predicate on the "signature_hash" field.
func SignatureHashContains(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldContains(FieldSignatureHash, v))
}

// SignatureHashHasPrefix applies the HasPrefix predicate on the "signature_hash" field.
func SignatureHashHasPrefix(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldHasPrefix(FieldSignatureHash, v))
}

// SignatureHashHasSuffix applies the HasSuffix predicate on the "signature_hash" field.
func SignatureHashHasSuffix(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldHasSuffix(FieldSignatureHash, v))
}

// SignatureHashEqualFold applies the EqualFold predicate on the "signature_hash" field.
func SignatureHashEqualFold(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEqualFold(FieldSignatureHash, v))
}

// SignatureHashContainsFold applies the ContainsFold predicate on the "signature_hash" field.
func SignatureHashContainsFold(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldContainsFold(FieldSignatureHash, v))
}

// DocumentURLEQ applies the EQ predicate on the "document_url" field.
func DocumentURLEQ(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEQ(FieldDocumentURL, v))
}

// DocumentURLNEQ applies the NEQ predicate on the "document_url" field.
func DocumentURLNEQ(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldNEQ(FieldDocumentURL, v))
}

// DocumentURLIn applies the In predicate on the "document_url" field.
func DocumentURLIn(vs ...string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldIn(FieldDocumentURL, vs...))
}

// DocumentURLNotIn applies the NotIn predicate on the "document_url" field.
func DocumentURLNotIn(vs ...string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldNotIn(FieldDocumentURL, vs...))
}

// DocumentURLGT applies the GT predicate on the "document_url" field.
func DocumentURLGT(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldGT(FieldDocumentURL, v))
}

// DocumentURLGTE applies the GTE predicate on the "document_url" field.
func DocumentURLGTE(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldGTE(FieldDocumentURL, v))
}

// DocumentURLLT applies the LT predicate on the "document_url" field.
func DocumentURLLT(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldLT(FieldDocumentURL, v))
}

// DocumentURLLTE applies the LTE predicate on the "document_url" field.
func DocumentURLLTE(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldLTE(FieldDocumentURL, v))
}

// DocumentURLContains applies the Contains predicate on the "document_url" field.
func DocumentURLContains(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldContains(FieldDocumentURL, v))
}

// DocumentURLHasPrefix applies the HasPrefix predicate on the "document_url" field.
func DocumentURLHasPrefix(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldHasPrefix(FieldDocumentURL, v))
}

// DocumentURLHasSuffix applies the HasSuffix predicate on the "document_url" field.
func DocumentURLHasSuffix(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldHasSuffix(FieldDocumentURL, v))
}

// DocumentURLEqualFold applies the EqualFold predicate on the "document_url" field.
func DocumentURLEqualFold(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEqualFold(FieldDocumentURL, v))
}

// DocumentURLContainsFold applies the ContainsFold predicate on the "document_url" field.
func DocumentURLContainsFold(v string) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldContainsFold(FieldDocumentURL, v))
}

// SignedAtEQ applies the EQ predicate on the "signed_at" field.
func SignedAtEQ(v time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldEQ(FieldSignedAt, v))
}

// SignedAtNEQ applies the NEQ predicate on the "signed_at" field.
func SignedAtNEQ(v time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldNEQ(FieldSignedAt, v))
}

// SignedAtIn applies the In predicate on the "signed_at" field.
func SignedAtIn(vs ...time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldIn(FieldSignedAt, vs...))
}

// SignedAtNotIn applies the NotIn predicate on the "signed_at" field.
func SignedAtNotIn(vs ...time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldNotIn(FieldSignedAt, vs...))
}

// SignedAtGT applies the GT predicate on the "signed_at" field.
func SignedAtGT(v time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldGT(FieldSignedAt, v))
}

// SignedAtGTE applies the GTE predicate on the "signed_at" field.
func SignedAtGTE(v time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldGTE(FieldSignedAt, v))
}

// SignedAtLT applies the LT predicate on the "signed_at" field.
func SignedAtLT(v time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldLT(FieldSignedAt, v))
}

// SignedAtLTE applies the LTE predicate on the "signed_at" field.
func SignedAtLTE(v time.Time) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.FieldLTE(FieldSignedAt, v))
}

// HasApplication applies the HasEdge predicate on the "application" edge.
func HasApplication() predicate.DigitalSignature {
	return predicate.DigitalSignature(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ApplicationTable, ApplicationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicationWith applies the HasEdge predicate on the "application" edge with a given conditions (other predicates).
func HasApplicationWith(preds ...predicate.Application) predicate.DigitalSignature {
	return predicate.DigitalSignature(func(s *sql.Selector) {
		step := newApplicationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DigitalSignature) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DigitalSignature) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DigitalSignature) predicate.DigitalSignature {
	return predicate.DigitalSignature(sql.NotPredicates(p))
}
