package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Application holds the schema definition for the credit Application entity.
type Application struct {
	ent.Schema
}

// Mixin of the Application.
func (Application) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Application.
func (Application) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("legal_name").
			MaxLen(255).
			NotEmpty(),
		field.String("contact_email").
			MaxLen(255).
			NotEmpty(),
		field.String("contact_phone").
			MaxLen(30).
			Optional(),
		field.String("duns_number").
			MaxLen(20).
			Optional(),
		field.String("trade_reference_1").
			MaxLen(255).
			Optional(),
		field.String("trade_reference_2").
			MaxLen(255).
			Optional(),
		field.String("trade_reference_3").
			MaxLen(255).
			Optional(),
		field.String("bill_to_address").
			NotEmpty(),
		field.String("ship_to_address").
			NotEmpty(),
	}
}

// Edges of the Application.
func (Application) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("signature", DigitalSignature.Type).
			Unique(),
		edge.To("vendor_forms", VendorForm.Type),
	}
}
