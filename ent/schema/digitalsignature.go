package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// DigitalSignature holds the schema definition for the DigitalSignature entity.
// Exactly one signature may exist per application; the unique edge enforces
// the constraint at the database level.
type DigitalSignature struct {
	ent.Schema
}

// Mixin of the DigitalSignature.
func (DigitalSignature) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the DigitalSignature.
func (DigitalSignature) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.UUID("application_id", uuid.UUID{}),
		field.String("signer_name").
			MaxLen(255).
			NotEmpty(),
		field.String("signer_email").
			MaxLen(255).
			NotEmpty(),
		field.Text("signature_image"),
		field.String("signature_hash").
			MaxLen(64).
			NotEmpty(),
		field.String("document_url").
			MaxLen(512).
			NotEmpty(),
		field.Time("signed_at"),
	}
}

// Edges of the DigitalSignature.
func (DigitalSignature) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("application", Application.Type).
			Ref("signature").
			Field("application_id").
			Unique().
			Required(),
	}
}
