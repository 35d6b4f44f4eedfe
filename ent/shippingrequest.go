// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/netvendor/creditintake/ent/shippingrequest"
	"github.com/shopspring/decimal"
)

// ShippingRequest is the model entity for the ShippingRequest schema.
type ShippingRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ContactName holds the value of the "contact_name" field.
	ContactName string `json:"contact_name,omitempty"`
	// ContactEmail holds the value of the "contact_email" field.
	ContactEmail string `json:"contact_email,omitempty"`
	// ContactPhone holds the value of the "contact_phone" field.
	ContactPhone string `json:"contact_phone,omitempty"`
	// AddressLine holds the value of the "address_line" field.
	AddressLine string `json:"address_line,omitempty"`
	// City holds the value of the "city" field.
	City string `json:"city,omitempty"`
	// Country holds the value of the "country" field.
	Country string `json:"country,omitempty"`
	// PostalCode holds the value of the "postal_code" field.
	PostalCode string `json:"postal_code,omitempty"`
	// Carrier holds the value of the "carrier" field.
	Carrier string `json:"carrier,omitempty"`
	// ServiceLevel holds the value of the "service_level" field.
	ServiceLevel string `json:"service_level,omitempty"`
	// WeightKg holds the value of the "weight_kg" field.
	WeightKg decimal.Decimal `json:"weight_kg,omitempty"`
	// DeclaredValue holds the value of the "declared_value" field.
	DeclaredValue decimal.Decimal `json:"declared_value,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes        string `json:"notes,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ShippingRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case shippingrequest.FieldWeightKg, shippingrequest.FieldDeclaredValue:
			values[i] = new(decimal.Decimal)
		case shippingrequest.FieldContactName, shippingrequest.FieldContactEmail, shippingrequest.FieldContactPhone, shippingrequest.FieldAddressLine, shippingrequest.FieldCity, shippingrequest.FieldCountry, shippingrequest.FieldPostalCode, shippingrequest.FieldCarrier, shippingrequest.FieldServiceLevel, shippingrequest.FieldNotes:
			values[i] = new(sql.NullString)
		case shippingrequest.FieldCreatedAt, shippingrequest.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case shippingrequest.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ShippingRequest fields.
func (sr *ShippingRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case shippingrequest.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				sr.ID = *value
			}
		case shippingrequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				sr.CreatedAt = value.Time
			}
		case shippingrequest.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				sr.UpdatedAt = value.Time
			}
		case shippingrequest.FieldContactName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_name", values[i])
			} else if value.Valid {
				sr.ContactName = value.String
			}
		case shippingrequest.FieldContactEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_email", values[i])
			} else if value.Valid {
				sr.ContactEmail = value.String
			}
		case shippingrequest.FieldContactPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_phone", values[i])
			} else if value.Valid {
				sr.ContactPhone = value.String
			}
		case shippingrequest.FieldAddressLine:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address_line", values[i])
			} else if value.Valid {
				sr.AddressLine = value.String
			}
		case shippingrequest.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				sr.City = value.String
			}
		case shippingrequest.FieldCountry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country", values[i])
			} else if value.Valid {
				sr.Country = value.String
			}
		case shippingrequest.FieldPostalCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field postal_code", values[i])
			} else if value.Valid {
				sr.PostalCode = value.String
			}
		case shippingrequest.FieldCarrier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field carrier", values[i])
			} else if value.Valid {
				sr.Carrier = value.String
			}
		case shippingrequest.FieldServiceLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field service_level", values[i])
			} else if value.Valid {
				sr.ServiceLevel = value.String
			}
		case shippingrequest.FieldWeightKg:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field weight_kg", values[i])
			} else if value != nil {
				sr.WeightKg = *value
			}
		case shippingrequest.FieldDeclaredValue:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field declared_value", values[i])
			} else if value != nil {
				sr.DeclaredValue = *value
			}
		case shippingrequest.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				sr.Notes = value.String
			}
		default:
			sr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ShippingRequest.
// This includes values selected through modifiers, order, etc.
func (sr *ShippingRequest) Value(name string) (ent.Value, error) {
	return sr.selectValues.Get(name)
}

// Update returns a builder for updating this ShippingRequest.
// Note that you need to call ShippingRequest.Unwrap() before calling this method if this ShippingRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (sr *ShippingRequest) Update() *ShippingRequestUpdateOne {
	return NewShippingRequestClient(sr.config).UpdateOne(sr)
}

// Unwrap unwraps the ShippingRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (sr *ShippingRequest) Unwrap() *ShippingRequest {
	_tx, ok := sr.config.driver.(*txDriver)
	if !ok {
		panic("ent: ShippingRequest is not a transactional entity")
	}
	sr.config.driver = _tx.drv
	return sr
}

// String implements the fmt.Stringer.
func (sr *ShippingRequest) String() string {
	var builder strings.Builder
	builder.WriteString("ShippingRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", sr.ID))
	builder.WriteString("created_at=")
	builder.WriteString(sr.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(sr.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("contact_name=")
	builder.WriteString(sr.ContactName)
	builder.WriteString(", ")
	builder.WriteString("contact_email=")
	builder.WriteString(sr.ContactEmail)
	builder.WriteString(", ")
	builder.WriteString("contact_phone=")
	builder.WriteString(sr.ContactPhone)
	builder.WriteString(", ")
	builder.WriteString("address_line=")
	builder.WriteString(sr.AddressLine)
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(sr.City)
	builder.WriteString(", ")
	builder.WriteString("country=")
	builder.WriteString(sr.Country)
	builder.WriteString(", ")
	builder.WriteString("postal_code=")
	builder.WriteString(sr.PostalCode)
	builder.WriteString(", ")
	builder.WriteString("carrier=")
	builder.WriteString(sr.Carrier)
	builder.WriteString(", ")
	builder.WriteString("service_level=")
	builder.WriteString(sr.ServiceLevel)
	builder.WriteString(", ")
	builder.WriteString("weight_kg=")
	builder.WriteString(fmt.Sprintf("%v", sr.WeightKg))
	builder.WriteString(", ")
	builder.WriteString("declared_value=")
	builder.WriteString(fmt.Sprintf("%v", sr.DeclaredValue))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(sr.Notes)
	builder.WriteByte(')')
	return builder.String()
}

// ShippingRequests is a parsable slice of ShippingRequest.
type ShippingRequests []*ShippingRequest
