package test

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/netvendor/creditintake/ent"
	db "github.com/netvendor/creditintake/storage"
	cryptoUtils "github.com/netvendor/creditintake/utils/crypto"
)

// CreateTestApplication creates a test application with default or custom values
func CreateTestApplication(overrides map[string]interface{}) (*ent.Application, error) {

	// Default payload
	payload := map[string]interface{}{
		"legalName":       "Acme Industrial Supply LLC",
		"contactEmail":    "purchasing@acmeindustrial.com",
		"contactPhone":    "7135550142",
		"dunsNumber":      "123456789",
		"tradeReference1": "Northside Fasteners",
		"tradeReference2": "Gulf Coast Tooling",
		"tradeReference3": "",
		"billToAddress":   "4400 Commerce Park Blvd, Suite 210, Houston, TX 77032",
		"shipToAddress":   "4400 Commerce Park Blvd, Warehouse B, Houston, TX 77032",
	}

	// Apply overrides
	for key, value := range overrides {
		payload[key] = value
	}

	application, err := db.Client.Application.
		Create().
		SetLegalName(payload["legalName"].(string)).
		SetContactEmail(strings.ToLower(payload["contactEmail"].(string))).
		SetContactPhone(payload["contactPhone"].(string)).
		SetDunsNumber(payload["dunsNumber"].(string)).
		SetTradeReference1(payload["tradeReference1"].(string)).
		SetTradeReference2(payload["tradeReference2"].(string)).
		SetTradeReference3(payload["tradeReference3"].(string)).
		SetBillToAddress(payload["billToAddress"].(string)).
		SetShipToAddress(payload["shipToAddress"].(string)).
		Save(context.Background())

	return application, err
}

// CreateTestSignature creates a test signature for an application
func CreateTestSignature(applicationID uuid.UUID, overrides map[string]interface{}) (*ent.DigitalSignature, error) {

	// Default payload
	payload := map[string]interface{}{
		"signerName":     "Jordan Reyes",
		"signerEmail":    "jordan.reyes@acmeindustrial.com",
		"signatureImage": "data:image/png;base64,iVBORw0KGgo=",
		"signedAt":       time.Now(),
	}

	// Apply overrides
	for key, value := range overrides {
		payload[key] = value
	}

	hash := cryptoUtils.SignatureHash(
		applicationID.String(),
		payload["signerEmail"].(string),
		payload["signatureImage"].(string),
	)

	signature, err := db.Client.DigitalSignature.
		Create().
		SetApplicationID(applicationID).
		SetSignerName(payload["signerName"].(string)).
		SetSignerEmail(strings.ToLower(payload["signerEmail"].(string))).
		SetSignatureImage(payload["signatureImage"].(string)).
		SetSignatureHash(hash).
		SetDocumentURL("https://intake.example.com/documents/credit-application-" + applicationID.String() + ".pdf").
		SetSignedAt(payload["signedAt"].(time.Time)).
		Save(context.Background())

	return signature, err
}

// CreateTestShippingRequest creates a test shipping request with default or custom values
func CreateTestShippingRequest(overrides map[string]interface{}) (*ent.ShippingRequest, error) {

	// Default payload
	payload := map[string]interface{}{
		"contactName":   "Jordan Reyes",
		"contactEmail":  "jordan.reyes@acmeindustrial.com",
		"contactPhone":  "7135550142",
		"addressLine":   "4400 Commerce Park Blvd, Warehouse B",
		"city":          "Houston",
		"country":       "US",
		"postalCode":    "77032",
		"carrier":       "UPS",
		"serviceLevel":  "ground",
		"weightKg":      "12.5",
		"declaredValue": "480.00",
		"notes":         "",
	}

	// Apply overrides
	for key, value := range overrides {
		payload[key] = value
	}

	weight, err := decimal.NewFromString(payload["weightKg"].(string))
	if err != nil {
		return nil, err
	}
	declared, err := decimal.NewFromString(payload["declaredValue"].(string))
	if err != nil {
		return nil, err
	}

	request, err := db.Client.ShippingRequest.
		Create().
		SetContactName(payload["contactName"].(string)).
		SetContactEmail(strings.ToLower(payload["contactEmail"].(string))).
		SetContactPhone(payload["contactPhone"].(string)).
		SetAddressLine(payload["addressLine"].(string)).
		SetCity(payload["city"].(string)).
		SetCountry(payload["country"].(string)).
		SetPostalCode(payload["postalCode"].(string)).
		SetCarrier(payload["carrier"].(string)).
		SetServiceLevel(payload["serviceLevel"].(string)).
		SetWeightKg(weight).
		SetDeclaredValue(declared).
		SetNotes(payload["notes"].(string)).
		Save(context.Background())

	return request, err
}

// CreateTestVendorForm creates a test vendor form, optionally linked to an application
func CreateTestVendorForm(applicationID *uuid.UUID, overrides map[string]interface{}) (*ent.VendorForm, error) {

	// Default payload
	payload := map[string]interface{}{
		"fileName":   "w9-acme.pdf",
		"storageURL": "https://forms.example.com/vendor-forms/1700000000-abc123.pdf",
		"mimeType":   "application/pdf",
		"byteSize":   int64(20480),
	}

	// Apply overrides
	for key, value := range overrides {
		payload[key] = value
	}

	builder := db.Client.VendorForm.
		Create().
		SetFileName(payload["fileName"].(string)).
		SetStorageURL(payload["storageURL"].(string)).
		SetMimeType(payload["mimeType"].(string)).
		SetByteSize(payload["byteSize"].(int64))

	if applicationID != nil {
		builder = builder.SetApplicationID(*applicationID)
	}

	return builder.Save(context.Background())
}
