// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Application is the predicate function for application builders.
type Application func(*sql.Selector)

// DigitalSignature is the predicate function for digitalsignature builders.
type DigitalSignature func(*sql.Selector)

// ShippingRequest is the predicate function for shippingrequest builders.
type ShippingRequest func(*sql.Selector)

// VendorForm is the predicate function for vendorform builders.
type VendorForm func(*sql.Selector)
