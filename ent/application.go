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

// Application is the model entity for the Application schema.
type Application struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// LegalName holds the value of the "legal_name" field.
	LegalName string `json:"legal_name,omitempty"`
	// ContactEmail holds the value of the "contact_email" field.
	ContactEmail string `json:"contact_email,omitempty"`
	// ContactPhone holds the value of the "contact_phone" field.
	ContactPhone string `json:"contact_phone,omitempty"`
	// DunsNumber holds the value of the "duns_number" field.
	DunsNumber string `json:"duns_number,omitempty"`
	// TradeReference1 holds the value of the "trade_reference_1" field.
	TradeReference1 string `json:"trade_reference_1,omitempty"`
	// TradeReference2 holds the value of the "trade_reference_2" field.
	TradeReference2 string `json:"trade_reference_2,omitempty"`
	// TradeReference3 holds the value of the "trade_reference_3" field.
	TradeReference3 string `json:"trade_reference_3,omitempty"`
	// BillToAddress holds the value of the "bill_to_address" field.
	BillToAddress string `json:"bill_to_address,omitempty"`
	// ShipToAddress holds the value of the "ship_to_address" field.
	ShipToAddress string `json:"ship_to_address,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ApplicationQuery when eager-loading is set.
	Edges        ApplicationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ApplicationEdges holds the relations/edges for other nodes in the graph.
type ApplicationEdges struct {
	// Signature holds the value of the signature edge.
	Signature *DigitalSignature `json:"signature,omitempty"`
	// VendorForms holds the value of the vendor_forms edge.
	VendorForms []*VendorForm `json:"vendor_forms,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SignatureOrErr returns the Signature value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApplicationEdges) SignatureOrErr() (*DigitalSignature, error) {
	if e.Signature != nil {
		return e.Signature, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: digitalsignature.Label}
	}
	return nil, &NotLoadedError{edge: "signature"}
}

// VendorFormsOrErr returns the VendorForms value or an error if the edge
// was not loaded in eager-loading.
func (e ApplicationEdges) VendorFormsOrErr() ([]*VendorForm, error) {
	if e.loadedTypes[1] {
		return e.VendorForms, nil
	}
	return nil, &NotLoadedError{edge: "vendor_forms"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Application) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case application.FieldLegalName, application.FieldContactEmail, application.FieldContactPhone, application.FieldDunsNumber, application.FieldTradeReference1, application.FieldTradeReference2, application.FieldTradeReference3, application.FieldBillToAddress, application.FieldShipToAddress:
			values[i] = new(sql.NullString)
		case application.FieldCreatedAt, application.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case application.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Application fields.
func (a *Application) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case application.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				a.ID = *value
			}
		case application.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				a.CreatedAt = value.Time
			}
		case application.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				a.UpdatedAt = value.Time
			}
		case application.FieldLegalName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field legal_name", values[i])
			} else if value.Valid {
				a.LegalName = value.String
			}
		case application.FieldContactEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_email", values[i])
			} else if value.Valid {
				a.ContactEmail = value.String
			}
		case application.FieldContactPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_phone", values[i])
			} else if value.Valid {
				a.ContactPhone = value.String
			}
		case application.FieldDunsNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field duns_number", values[i])
			} else if value.Valid {
				a.DunsNumber = value.String
			}
		case application.FieldTradeReference1:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trade_reference_1", values[i])
			} else if value.Valid {
				a.TradeReference1 = value.String
			}
		case application.FieldTradeReference2:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trade_reference_2", values[i])
			} else if value.Valid {
				a.TradeReference2 = value.String
			}
		case application.FieldTradeReference3:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trade_reference_3", values[i])
			} else if value.Valid {
				a.TradeReference3 = value.String
			}
		case application.FieldBillToAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bill_to_address", values[i])
			} else if value.Valid {
				a.BillToAddress = value.String
			}
		case application.FieldShipToAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ship_to_address", values[i])
			} else if value.Valid {
				a.ShipToAddress = value.String
			}
		default:
			a.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Application.
// This includes values selected through modifiers, order, etc.
func (a *Application) Value(name string) (ent.Value, error) {
	return a.selectValues.Get(name)
}

// QuerySignature queries the "signature" edge of the Application entity.
func (a *Application) QuerySignature() *DigitalSignatureQuery {
	return NewApplicationClient(a.config).QuerySignature(a)
}

// QueryVendorForms queries the "vendor_forms" edge of the Application entity.
func (a *Application) QueryVendorForms() *VendorFormQuery {
	return NewApplicationClient(a.config).QueryVendorForms(a)
}

// Update returns a builder for updating this Application.
// Note that you need to call Application.Unwrap() before calling this method if this Application
// was returned from a transaction, and the transaction was committed or rolled back.
func (a *Application) Update() *ApplicationUpdateOne {
	return NewApplicationClient(a.config).UpdateOne(a)
}

// Unwrap unwraps the Application entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (a *Application) Unwrap() *Application {
	_tx, ok := a.config.driver.(*txDriver)
	if !ok {
		panic("ent: Application is not a transactional entity")
	}
	a.config.driver = _tx.drv
	return a
}

// String implements the fmt.Stringer.
func (a *Application) String() string {
	var builder strings.Builder
	builder.WriteString("Application(")
	builder.WriteString(fmt.Sprintf("id=%v, ", a.ID))
	builder.WriteString("created_at=")
	builder.WriteString(a.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(a.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("legal_name=")
	builder.WriteString(a.LegalName)
	builder.WriteString(", ")
	builder.WriteString("contact_email=")
	builder.WriteString(a.ContactEmail)
	builder.WriteString(", ")
	builder.WriteString("contact_phone=")
	builder.WriteString(a.ContactPhone)
	builder.WriteString(", ")
	builder.WriteString("duns_number=")
	builder.WriteString(a.DunsNumber)
	builder.WriteString(", ")
	builder.WriteString("trade_reference_1=")
	builder.WriteString(a.TradeReference1)
	builder.WriteString(", ")
	builder.WriteString("trade_reference_2=")
	builder.WriteString(a.TradeReference2)
	builder.WriteString(", ")
	builder.WriteString("trade_reference_3=")
	builder.WriteString(a.TradeReference3)
	builder.WriteString(", ")
	builder.WriteString("bill_to_address=")
	builder.WriteString(a.BillToAddress)
	builder.WriteString(", ")
	builder.WriteString("ship_to_address=")
	builder.WriteString(a.ShipToAddress)
	builder.WriteByte(')')
	return builder.String()
}

// Applications is a parsable slice of Application.
type Applications []*Application
