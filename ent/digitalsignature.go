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
	"github.com/netvendor/creditintake/ent/digitalsignature"
)

// DigitalSignature is the model entity for the DigitalSignature schema.
type DigitalSignature struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ApplicationID holds the value of the "application_id" field.
	ApplicationID uuid.UUID `json:"application_id,omitempty"`
	// SignerName holds the value of the "signer_name" field.
	SignerName string `json:"signer_name,omitempty"`
	// SignerEmail holds the value of the "signer_email" field.
	SignerEmail string `json:"signer_email,omitempty"`
	// SignatureImage holds the value of the "signature_image" field.
	SignatureImage string `json:"signature_image,omitempty"`
	// SignatureHash holds the value of the "signature_hash" field.
	SignatureHash string `json:"signature_hash,omitempty"`
	// DocumentURL holds the value of the "document_url" field.
	DocumentURL string `json:"document_url,omitempty"`
	// SignedAt holds the value of the "signed_at" field.
	SignedAt time.Time `json:"signed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DigitalSignatureQuery when eager-loading is set.
	Edges        DigitalSignatureEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DigitalSignatureEdges holds the relations/edges for other nodes in the graph.
type DigitalSignatureEdges struct {
	// Application holds the value of the application edge.
	Application *Application `json:"application,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ApplicationOrErr returns the Application value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DigitalSignatureEdges) ApplicationOrErr() (*Application, error) {
	if e.Application != nil {
		return e.Application, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: application.Label}
	}
	return nil, &NotLoadedError{edge: "application"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DigitalSignature) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case digitalsignature.FieldSignerName, digitalsignature.FieldSignerEmail, digitalsignature.FieldSignatureImage, digitalsignature.FieldSignatureHash, digitalsignature.FieldDocumentURL:
			values[i] = new(sql.NullString)
		case digitalsignature.FieldCreatedAt, digitalsignature.FieldUpdatedAt, digitalsignature.FieldSignedAt:
			values[i] = new(sql.NullTime)
		case digitalsignature.FieldID, digitalsignature.FieldApplicationID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DigitalSignature fields.
func (ds *DigitalSignature) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case digitalsignature.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				ds.ID = *value
			}
		case digitalsignature.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ds.CreatedAt = value.Time
			}
		case digitalsignature.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ds.UpdatedAt = value.Time
			}
		case digitalsignature.FieldApplicationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field application_id", values[i])
			} else if value != nil {
				ds.ApplicationID = *value
			}
		case digitalsignature.FieldSignerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signer_name", values[i])
			} else if value.Valid {
				ds.SignerName = value.String
			}
		case digitalsignature.FieldSignerEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signer_email", values[i])
			} else if value.Valid {
				ds.SignerEmail = value.String
			}
		case digitalsignature.FieldSignatureImage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signature_image", values[i])
			} else if value.Valid {
				ds.SignatureImage = value.String
			}
		case digitalsignature.FieldSignatureHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signature_hash", values[i])
			} else if value.Valid {
				ds.SignatureHash = value.String
			}
		case digitalsignature.FieldDocumentURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_url", values[i])
			} else if value.Valid {
				ds.DocumentURL = value.String
			}
		case digitalsignature.FieldSignedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field signed_at", values[i])
			} else if value.Valid {
				ds.SignedAt = value.Time
			}
		default:
			ds.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DigitalSignature.
// This includes values selected through modifiers, order, etc.
func (ds *DigitalSignature) Value(name string) (ent.Value, error) {
	return ds.selectValues.Get(name)
}

// QueryApplication queries the "application" edge of the DigitalSignature entity.
func (ds *DigitalSignature) QueryApplication() *ApplicationQuery {
	return NewDigitalSignatureClient(ds.config).QueryApplication(ds)
}

// Update returns a builder for updating this DigitalSignature.
// Note that you need to call DigitalSignature.Unwrap() before calling this method if this DigitalSignature
// was returned from a transaction, and the transaction was committed or rolled back.
func (ds *DigitalSignature) Update() *DigitalSignatureUpdateOne {
	return NewDigitalSignatureClient(ds.config).UpdateOne(ds)
}

// Unwrap unwraps the DigitalSignature entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ds *DigitalSignature) Unwrap() *DigitalSignature {
	_tx, ok := ds.config.driver.(*txDriver)
	if !ok {
		panic("ent: DigitalSignature is not a transactional entity")
	}
	ds.config.driver = _tx.drv
	return ds
}

// String implements the fmt.Stringer.
func (ds *DigitalSignature) String() string {
	var builder strings.Builder
	builder.WriteString("DigitalSignature(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ds.ID))
	builder.WriteString("created_at=")
	builder.WriteString(ds.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ds.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("application_id=")
	builder.WriteString(fmt.Sprintf("%v", ds.ApplicationID))
	builder.WriteString(", ")
	builder.WriteString("signer_name=")
	builder.WriteString(ds.SignerName)
	builder.WriteString(", ")
	builder.WriteString("signer_email=")
	builder.WriteString(ds.SignerEmail)
	builder.WriteString(", ")
	builder.WriteString("signature_image=")
	builder.WriteString(ds.SignatureImage)
	builder.WriteString(", ")
	builder.WriteString("signature_hash=")
	builder.WriteString(ds.SignatureHash)
	builder.WriteString(", ")
	builder.WriteString("document_url=")
	builder.WriteString(ds.DocumentURL)
	builder.WriteString(", ")
	builder.WriteString("signed_at=")
	builder.WriteString(ds.SignedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DigitalSignatures is a parsable slice of DigitalSignature.
type DigitalSignatures []*DigitalSignature
