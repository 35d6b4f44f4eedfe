package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShippingRequest holds the schema definition for the ShippingRequest entity.
// Requests are freeform and carry no relationship to applications.
type ShippingRequest struct {
	ent.Schema
}

// Mixin of the ShippingRequest.
func (ShippingRequest) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ShippingRequest.
func (ShippingRequest) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("contact_name").
			MaxLen(255).
			NotEmpty(),
		field.String("contact_email").
			MaxLen(255).
			NotEmpty(),
		field.String("contact_phone").
			MaxLen(30).
			Optional(),
		field.String("address_line").
			NotEmpty(),
		field.String("city").
			MaxLen(120).
			NotEmpty(),
		field.String("country").
			MaxLen(120).
			NotEmpty(),
		field.String("postal_code").
			MaxLen(20).
			Optional(),
		field.String("carrier").
			MaxLen(120).
			Optional(),
		field.String("service_level").
			MaxLen(120).
			Optional(),
		field.Float("weight_kg").
			GoType(decimal.Decimal{}).
			Optional(),
		field.Float("declared_value").
			GoType(decimal.Decimal{}).
			Optional(),
		field.Text("notes").
			Optional(),
	}
}
