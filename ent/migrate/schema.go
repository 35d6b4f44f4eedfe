// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApplicationsColumns holds the columns for the "applications" table.
	ApplicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "legal_name", Type: field.TypeString, Size: 255},
		{Name: "contact_email", Type: field.TypeString, Size: 255},
		{Name: "contact_phone", Type: field.TypeString, Nullable: true, Size: 30},
		{Name: "duns_number", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "trade_reference_1", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "trade_reference_2", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "trade_reference_3", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "bill_to_address", Type: field.TypeString},
		{Name: "ship_to_address", Type: field.TypeString},
	}
	// ApplicationsTable holds the schema information for the "applications" table.
	ApplicationsTable = &schema.Table{
		Name:       "applications",
		Columns:    ApplicationsColumns,
		PrimaryKey: []*schema.Column{ApplicationsColumns[0]},
	}
	// DigitalSignaturesColumns holds the columns for the "digital_signatures" table.
	DigitalSignaturesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "signer_name", Type: field.TypeString, Size: 255},
		{Name: "signer_email", Type: field.TypeString, Size: 255},
		{Name: "signature_image", Type: field.TypeString, Size: 2147483647},
		{Name: "signature_hash", Type: field.TypeString, Size: 64},
		{Name: "document_url", Type: field.TypeString, Size: 512},
		{Name: "signed_at", Type: field.TypeTime},
		{Name: "application_id", Type: field.TypeUUID, Unique: true},
	}
	// DigitalSignaturesTable holds the schema information for the "digital_signatures" table.
	DigitalSignaturesTable = &schema.Table{
		Name:       "digital_signatures",
		Columns:    DigitalSignaturesColumns,
		PrimaryKey: []*schema.Column{DigitalSignaturesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "digital_signatures_applications_signature",
				Columns:    []*schema.Column{DigitalSignaturesColumns[9]},
				RefColumns: []*schema.Column{ApplicationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ShippingRequestsColumns holds the columns for the "shipping_requests" table.
	ShippingRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "contact_name", Type: field.TypeString, Size: 255},
		{Name: "contact_email", Type: field.TypeString, Size: 255},
		{Name: "contact_phone", Type: field.TypeString, Nullable: true, Size: 30},
		{Name: "address_line", Type: field.TypeString},
		{Name: "city", Type: field.TypeString, Size: 120},
		{Name: "country", Type: field.TypeString, Size: 120},
		{Name: "postal_code", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "carrier", Type: field.TypeString, Nullable: true, Size: 120},
		{Name: "service_level", Type: field.TypeString, Nullable: true, Size: 120},
		{Name: "weight_kg", Type: field.TypeFloat64, Nullable: true},
		{Name: "declared_value", Type: field.TypeFloat64, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// ShippingRequestsTable holds the schema information for the "shipping_requests" table.
	ShippingRequestsTable = &schema.Table{
		Name:       "shipping_requests",
		Columns:    ShippingRequestsColumns,
		PrimaryKey: []*schema.Column{ShippingRequestsColumns[0]},
	}
	// VendorFormsColumns holds the columns for the "vendor_forms" table.
	VendorFormsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "file_name", Type: field.TypeString, Size: 255},
		{Name: "storage_url", Type: field.TypeString, Size: 512},
		{Name: "mime_type", Type: field.TypeString, Size: 120},
		{Name: "byte_size", Type: field.TypeInt64},
		{Name: "application_vendor_forms", Type: field.TypeUUID, Nullable: true},
	}
	// VendorFormsTable holds the schema information for the "vendor_forms" table.
	VendorFormsTable = &schema.Table{
		Name:       "vendor_forms",
		Columns:    VendorFormsColumns,
		PrimaryKey: []*schema.Column{VendorFormsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "vendor_forms_applications_vendor_forms",
				Columns:    []*schema.Column{VendorFormsColumns[7]},
				RefColumns: []*schema.Column{ApplicationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApplicationsTable,
		DigitalSignaturesTable,
		ShippingRequestsTable,
		VendorFormsTable,
	}
)

func init() {
	DigitalSignaturesTable.ForeignKeys[0].RefTable = ApplicationsTable
	VendorFormsTable.ForeignKeys[0].RefTable = ApplicationsTable
}
