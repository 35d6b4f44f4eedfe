// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/netvendor/creditintake/ent/application"
	"github.com/netvendor/creditintake/ent/vendorform"
)

// VendorForm is the model entity for the VendorForm schema.
type VendorForm struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// StorageURL holds the value of the "storage_url" field.
	StorageURL string `json:"storage_url,omitempty"`
	// MimeType holds the value of the "mime_type" field.
	MimeType string `json:"mime_type,omitempty"`
	// ByteSize holds the value of the "byte_size" field.
	ByteSize int64 `json:"byte_size,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VendorFormQuery when eager-loading is set.
	Edges                    VendorFormEdges `json:"edges"`
	application_vendor_forms *uuid.UUID
	selectValues             sql.SelectValues
}

// VendorFormEdges holds the relations/edges for other nodes in the graph.
type VendorFormEdges struct {
	// Application holds the value of the application edge.
	Application *Application `json:"application,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ApplicationOrErr returns the Application value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VendorFormEdges) ApplicationOrErr() (*Application, error) {
	if e.Application != nil {
		return e.Application, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: application.Label}
	}
	return nil, &NotLoadedError{edge: "application"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VendorForm) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vendorform.FieldByteSize:
			values[i] = new(sql.NullInt64)
		case vendorform.FieldFileName, vendorform.FieldStorageURL, vendorform.FieldMimeType:
			values[i] = new(sql.NullString)
		case vendorform.FieldCreatedAt, vendorform.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case vendorform.FieldID:
			values[i] = new(uuid.UUID)
		case vendorform.ForeignKeys[0]: // application_vendor_forms
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VendorForm fields.
func (vf *VendorForm) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vendorform.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				vf.ID = *value
			}
		case vendorform.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				vf.CreatedAt = value.Time
			}
		case vendorform.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				vf.UpdatedAt = value.Time
			}
		case vendorform.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				vf.FileName = value.String
			}
		case vendorform.FieldStorageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_url", values[i])
			} else if value.Valid {
				vf.StorageURL = value.String
			}
		case vendorform.FieldMimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mime_type", values[i])
			} else if value.Valid {
				vf.MimeType = value.String
			}
		case vendorform.FieldByteSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field byte_size", values[i])
			} else if value.Valid {
				vf.ByteSize = value.Int64
			}
		case vendorform.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field application_vendor_forms", values[i])
			} else if value.Valid {
				vf.application_vendor_forms = new(uuid.UUID)
				*vf.application_vendor_forms = *value.S.(*uuid.UUID)
			}
		default:
			vf.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VendorForm.
// This includes values selected through modifiers, order, etc.
func (vf *VendorForm) Value(name string) (ent.Value, error) {
	return vf.selectValues.Get(name)
}

// QueryApplication queries the "application" edge of the VendorForm entity.
func (vf *VendorForm) QueryApplication() *ApplicationQuery {
	return NewVendorFormClient(vf.config).QueryApplication(vf)
}

// Update returns a builder for updating this VendorForm.
// Note that you need to call VendorForm.Unwrap() before calling this method if this VendorForm
// was returned from a transaction, and the transaction was committed or rolled back.
func (vf *VendorForm) Update() *VendorFormUpdateOne {
	return NewVendorFormClient(vf.config).UpdateOne(vf)
}

// Unwrap unwraps the VendorForm entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (vf *VendorForm) Unwrap() *VendorForm {
	_tx, ok := vf.config.driver.(*txDriver)
	if !ok {
		panic("ent: VendorForm is not a transactional entity")
	}
	vf.config.driver = _tx.drv
	return vf
}

// String implements the fmt.Stringer.
func (vf *VendorForm) String() string {
	var builder strings.Builder
	builder.WriteString("VendorForm(")
	builder.WriteString(fmt.Sprintf("id=%v, ", vf.ID))
	builder.WriteString("created_at=")
	builder.WriteString(vf.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(vf.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(vf.FileName)
	builder.WriteString(", ")
	builder.WriteString("storage_url=")
	builder.WriteString(vf.StorageURL)
	builder.WriteString(", ")
	builder.WriteString("mime_type=")
	builder.WriteString(vf.MimeType)
	builder.WriteString(", ")
	builder.WriteString("byte_size=")
	builder.WriteString(fmt.Sprintf("%v", vf.ByteSize))
	builder.WriteByte(')')
	return builder.String()
}

// VendorForms is a parsable slice of VendorForm.
type VendorForms []*VendorForm
