// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/netvendor/creditintake/ent/application"
	"github.com/netvendor/creditintake/ent/digitalsignature"
	"github.com/netvendor/creditintake/ent/schema"
	"github.com/netvendor/creditintake/ent/shippingrequest"
	"github.com/netvendor/creditintake/ent/vendorform"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	applicationMixin := schema.Application{}.Mixin()
	applicationMixinFields0 := applicationMixin[0].Fields()
	_ = applicationMixinFields0
	applicationFields := schema.Application{}.Fields()
	_ = applicationFields
	// applicationDescCreatedAt is the schema descriptor for created_at field.
	applicationDescCreatedAt := applicationMixinFields0[0].Descriptor()
	// application.DefaultCreatedAt holds the default value on creation for the created_at field.
	application.DefaultCreatedAt = applicationDescCreatedAt.Default.(func() time.Time)
	// applicationDescUpdatedAt is the schema descriptor for updated_at field.
	applicationDescUpdatedAt := applicationMixinFields0[1].Descriptor()
	// application.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	application.DefaultUpdatedAt = applicationDescUpdatedAt.Default.(func() time.Time)
	// application.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	application.UpdateDefaultUpdatedAt = applicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// applicationDescLegalName is the schema descriptor for legal_name field.
	applicationDescLegalName := applicationFields[1].Descriptor()
	// application.LegalNameValidator is a validator for the "legal_name" field. It is called by the builders before save.
	application.LegalNameValidator = func() func(string) error {
		validators := applicationDescLegalName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(legal_name string) error {
			for _, fn := range fns {
				if err := fn(legal_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// applicationDescContactEmail is the schema descriptor for contact_email field.
	applicationDescContactEmail := applicationFields[2].Descriptor()
	// application.ContactEmailValidator is a validator for the "contact_email" field. It is called by the builders before save.
	application.ContactEmailValidator = func() func(string) error {
		validators := applicationDescContactEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(contact_email string) error {
			for _, fn := range fns {
				if err := fn(contact_email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// applicationDescContactPhone is the schema descriptor for contact_phone field.
	applicationDescContactPhone := applicationFields[3].Descriptor()
	// application.ContactPhoneValidator is a validator for the "contact_phone" field. It is called by the builders before save.
	application.ContactPhoneValidator = applicationDescContactPhone.Validators[0].(func(string) error)
	// applicationDescDunsNumber is the schema descriptor for duns_number field.
	applicationDescDunsNumber := applicationFields[4].Descriptor()
	// application.DunsNumberValidator is a validator for the "duns_number" field. It is called by the builders before save.
	application.DunsNumberValidator = applicationDescDunsNumber.Validators[0].(func(string) error)
	// applicationDescTradeReference1 is the schema descriptor for trade_reference_1 field.
	applicationDescTradeReference1 := applicationFields[5].Descriptor()
	// application.TradeReference1Validator is a validator for the "trade_reference_1" field. It is called by the builders before save.
	application.TradeReference1Validator = applicationDescTradeReference1.Validators[0].(func(string) error)
	// applicationDescTradeReference2 is the schema descriptor for trade_reference_2 field.
	applicationDescTradeReference2 := applicationFields[6].Descriptor()
	// application.TradeReference2Validator is a validator for the "trade_reference_2" field. It is called by the builders before save.
	application.TradeReference2Validator = applicationDescTradeReference2.Validators[0].(func(string) error)
	// applicationDescTradeReference3 is the schema descriptor for trade_reference_3 field.
	applicationDescTradeReference3 := applicationFields[7].Descriptor()
	// application.TradeReference3Validator is a validator for the "trade_reference_3" field. It is called by the builders before save.
	application.TradeReference3Validator = applicationDescTradeReference3.Validators[0].(func(string) error)
	// applicationDescBillToAddress is the schema descriptor for bill_to_address field.
	applicationDescBillToAddress := applicationFields[8].Descriptor()
	// application.BillToAddressValidator is a validator for the "bill_to_address" field. It is called by the builders before save.
	application.BillToAddressValidator = applicationDescBillToAddress.Validators[0].(func(string) error)
	// applicationDescShipToAddress is the schema descriptor for ship_to_address field.
	applicationDescShipToAddress := applicationFields[9].Descriptor()
	// application.ShipToAddressValidator is a validator for the "ship_to_address" field. It is called by the builders before save.
	application.ShipToAddressValidator = applicationDescShipToAddress.Validators[0].(func(string) error)
	// applicationDescID is the schema descriptor for id field.
	applicationDescID := applicationFields[0].Descriptor()
	// application.DefaultID holds the default value on creation for the id field.
	application.DefaultID = applicationDescID.Default.(func() uuid.UUID)
	digitalsignatureMixin := schema.DigitalSignature{}.Mixin()
	digitalsignatureMixinFields0 := digitalsignatureMixin[0].Fields()
	_ = digitalsignatureMixinFields0
	digitalsignatureFields := schema.DigitalSignature{}.Fields()
	_ = digitalsignatureFields
	// digitalsignatureDescCreatedAt is the schema descriptor for created_at field.
	digitalsignatureDescCreatedAt := digitalsignatureMixinFields0[0].Descriptor()
	// digitalsignature.DefaultCreatedAt holds the default value on creation for the created_at field.
	digitalsignature.DefaultCreatedAt = digitalsignatureDescCreatedAt.Default.(func() time.Time)
	// digitalsignatureDescUpdatedAt is the schema descriptor for updated_at field.
	digitalsignatureDescUpdatedAt := digitalsignatureMixinFields0[1].Descriptor()
	// digitalsignature.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	digitalsignature.DefaultUpdatedAt = digitalsignatureDescUpdatedAt.Default.(func() time.Time)
	// digitalsignature.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	digitalsignature.UpdateDefaultUpdatedAt = digitalsignatureDescUpdatedAt.UpdateDefault.(func() time.Time)
	// digitalsignatureDescSignerName is the schema descriptor for signer_name field.
	digitalsignatureDescSignerName := digitalsignatureFields[2].Descriptor()
	// digitalsignature.SignerNameValidator is a validator for the "signer_name" field. It is called by the builders before save.
	digitalsignature.SignerNameValidator = func() func(string) error {
		validators := digitalsignatureDescSignerName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(signer_name string) error {
			for _, fn := range fns {
				if err := fn(signer_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// digitalsignatureDescSignerEmail is the schema descriptor for signer_email field.
	digitalsignatureDescSignerEmail := digitalsignatureFields[3].Descriptor()
	// digitalsignature.SignerEmailValidator is a validator for the "signer_email" field. It is called by the builders before save.
	digitalsignature.SignerEmailValidator = func() func(string) error {
		validators := digitalsignatureDescSignerEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(signer_email string) error {
			for _, fn := range fns {
				if err := fn(signer_email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// digitalsignatureDescSignatureHash is the schema descriptor for signature_hash field.
	digitalsignatureDescSignatureHash := digitalsignatureFields[5].Descriptor()
	// digitalsignature.SignatureHashValidator is a validator for the "signature_hash" field. It is called by the builders before save.
	digitalsignature.SignatureHashValidator = func() func(string) error {
		validators := digitalsignatureDescSignatureHash.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(signature_hash string) error {
			for _, fn := range fns {
				if err := fn(signature_hash); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// digitalsignatureDescDocumentURL is the schema descriptor for document_url field.
	digitalsignatureDescDocumentURL := digitalsignatureFields[6].Descriptor()
	// digitalsignature.DocumentURLValidator is a validator for the "document_url" field. It is called by the builders before save.
	digitalsignature.DocumentURLValidator = func() func(string) error {
		validators := digitalsignatureDescDocumentURL.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_url string) error {
			for _, fn := range fns {
				if err := fn(document_url); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// digitalsignatureDescID is the schema descriptor for id field.
	digitalsignatureDescID := digitalsignatureFields[0].Descriptor()
	// digitalsignature.DefaultID holds the default value on creation for the id field.
	digitalsignature.DefaultID = digitalsignatureDescID.Default.(func() uuid.UUID)
	shippingrequestMixin := schema.ShippingRequest{}.Mixin()
	shippingrequestMixinFields0 := shippingrequestMixin[0].Fields()
	_ = shippingrequestMixinFields0
	shippingrequestFields := schema.ShippingRequest{}.Fields()
	_ = shippingrequestFields
	// shippingrequestDescCreatedAt is the schema descriptor for created_at field.
	shippingrequestDescCreatedAt := shippingrequestMixinFields0[0].Descriptor()
	// shippingrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	shippingrequest.DefaultCreatedAt = shippingrequestDescCreatedAt.Default.(func() time.Time)
	// shippingrequestDescUpdatedAt is the schema descriptor for updated_at field.
	shippingrequestDescUpdatedAt := shippingrequestMixinFields0[1].Descriptor()
	// shippingrequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	shippingrequest.DefaultUpdatedAt = shippingrequestDescUpdatedAt.Default.(func() time.Time)
	// shippingrequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	shippingrequest.UpdateDefaultUpdatedAt = shippingrequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// shippingrequestDescContactName is the schema descriptor for contact_name field.
	shippingrequestDescContactName := shippingrequestFields[1].Descriptor()
	// shippingrequest.ContactNameValidator is a validator for the "contact_name" field. It is called by the builders before save.
	shippingrequest.ContactNameValidator = func() func(string) error {
		validators := shippingrequestDescContactName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(contact_name string) error {
			for _, fn := range fns {
				if err := fn(contact_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// shippingrequestDescContactEmail is the schema descriptor for contact_email field.
	shippingrequestDescContactEmail := shippingrequestFields[2].Descriptor()
	// shippingrequest.ContactEmailValidator is a validator for the "contact_email" field. It is called by the builders before save.
	shippingrequest.ContactEmailValidator = func() func(string) error {
		validators := shippingrequestDescContactEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(contact_email string) error {
			for _, fn := range fns {
				if err := fn(contact_email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// shippingrequestDescContactPhone is the schema descriptor for contact_phone field.
	shippingrequestDescContactPhone := shippingrequestFields[3].Descriptor()
	// shippingrequest.ContactPhoneValidator is a validator for the "contact_phone" field. It is called by the builders before save.
	shippingrequest.ContactPhoneValidator = shippingrequestDescContactPhone.Validators[0].(func(string) error)
	// shippingrequestDescAddressLine is the schema descriptor for address_line field.
	shippingrequestDescAddressLine := shippingrequestFields[4].Descriptor()
	// shippingrequest.AddressLineValidator is a validator for the "address_line" field. It is called by the builders before save.
	shippingrequest.AddressLineValidator = shippingrequestDescAddressLine.Validators[0].(func(string) error)
	// shippingrequestDescCity is the schema descriptor for city field.
	shippingrequestDescCity := shippingrequestFields[5].Descriptor()
	// shippingrequest.CityValidator is a validator for the "city" field. It is called by the builders before save.
	shippingrequest.CityValidator = func() func(string) error {
		validators := shippingrequestDescCity.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(city string) error {
			for _, fn := range fns {
				if err := fn(city); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// shippingrequestDescCountry is the schema descriptor for country field.
	shippingrequestDescCountry := shippingrequestFields[6].Descriptor()
	// shippingrequest.CountryValidator is a validator for the "country" field. It is called by the builders before save.
	shippingrequest.CountryValidator = func() func(string) error {
		validators := shippingrequestDescCountry.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(country string) error {
			for _, fn := range fns {
				if err := fn(country); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// shippingrequestDescPostalCode is the schema descriptor for postal_code field.
	shippingrequestDescPostalCode := shippingrequestFields[7].Descriptor()
	// shippingrequest.PostalCodeValidator is a validator for the "postal_code" field. It is called by the builders before save.
	shippingrequest.PostalCodeValidator = shippingrequestDescPostalCode.Validators[0].(func(string) error)
	// shippingrequestDescCarrier is the schema descriptor for carrier field.
	shippingrequestDescCarrier := shippingrequestFields[8].Descriptor()
	// shippingrequest.CarrierValidator is a validator for the "carrier" field. It is called by the builders before save.
	shippingrequest.CarrierValidator = shippingrequestDescCarrier.Validators[0].(func(string) error)
	// shippingrequestDescServiceLevel is the schema descriptor for service_level field.
	shippingrequestDescServiceLevel := shippingrequestFields[9].Descriptor()
	// shippingrequest.ServiceLevelValidator is a validator for the "service_level" field. It is called by the builders before save.
	shippingrequest.ServiceLevelValidator = shippingrequestDescServiceLevel.Validators[0].(func(string) error)
	// shippingrequestDescID is the schema descriptor for id field.
	shippingrequestDescID := shippingrequestFields[0].Descriptor()
	// shippingrequest.DefaultID holds the default value on creation for the id field.
	shippingrequest.DefaultID = shippingrequestDescID.Default.(func() uuid.UUID)
	vendorformMixin := schema.VendorForm{}.Mixin()
	vendorformMixinFields0 := vendorformMixin[0].Fields()
	_ = vendorformMixinFields0
	vendorformFields := schema.VendorForm{}.Fields()
	_ = vendorformFields
	// vendorformDescCreatedAt is the schema descriptor for created_at field.
	vendorformDescCreatedAt := vendorformMixinFields0[0].Descriptor()
	// vendorform.DefaultCreatedAt holds the default value on creation for the created_at field.
	vendorform.DefaultCreatedAt = vendorformDescCreatedAt.Default.(func() time.Time)
	// vendorformDescUpdatedAt is the schema descriptor for updated_at field.
	vendorformDescUpdatedAt := vendorformMixinFields0[1].Descriptor()
	// vendorform.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vendorform.DefaultUpdatedAt = vendorformDescUpdatedAt.Default.(func() time.Time)
	// vendorform.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vendorform.UpdateDefaultUpdatedAt = vendorformDescUpdatedAt.UpdateDefault.(func() time.Time)
	// vendorformDescFileName is the schema descriptor for file_name field.
	vendorformDescFileName := vendorformFields[1].Descriptor()
	// vendorform.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	vendorform.FileNameValidator = func() func(string) error {
		validators := vendorformDescFileName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_name string) error {
			for _, fn := range fns {
				if err := fn(file_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// vendorformDescStorageURL is the schema descriptor for storage_url field.
	vendorformDescStorageURL := vendorformFields[2].Descriptor()
	// vendorform.StorageURLValidator is a validator for the "storage_url" field. It is called by the builders before save.
	vendorform.StorageURLValidator = func() func(string) error {
		validators := vendorformDescStorageURL.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(storage_url string) error {
			for _, fn := range fns {
				if err := fn(storage_url); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// vendorformDescMimeType is the schema descriptor for mime_type field.
	vendorformDescMimeType := vendorformFields[3].Descriptor()
	// vendorform.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	vendorform.MimeTypeValidator = func() func(string) error {
		validators := vendorformDescMimeType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(mime_type string) error {
			for _, fn := range fns {
				if err := fn(mime_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// vendorformDescID is the schema descriptor for id field.
	vendorformDescID := vendorformFields[0].Descriptor()
	// vendorform.DefaultID holds the default value on creation for the id field.
	vendorform.DefaultID = vendorformDescID.Default.(func() uuid.UUID)
}
