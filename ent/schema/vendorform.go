package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// VendorForm holds the schema definition for an uploaded vendor form file.
// Rows are created only after the object storage transfer succeeds.
type VendorForm struct {
	ent.Schema
}

// Mixin of the VendorForm.
func (VendorForm) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the VendorForm.
func (VendorForm) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("file_name").
			MaxLen(255).
			NotEmpty(),
		field.String("storage_url").
			MaxLen(512).
			NotEmpty(),
		field.String("mime_type").
			MaxLen(120).
			NotEmpty(),
		field.Int64("byte_size"),
	}
}

// Edges of the VendorForm.
func (VendorForm) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("application", Application.Type).
			Ref("vendor_forms").
			Unique(),
	}
}
