package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response is the JSON envelope returned by every endpoint
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorData provides field-level detail for validation failures
type ErrorData struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewApplicationPayload is the request body for creating a credit application
type NewApplicationPayload struct {
	LegalName       string `json:"legalName" binding:"required"`
	ContactEmail    string `json:"contactEmail" binding:"required,email"`
	ContactPhone    string `json:"contactPhone"`
	DunsNumber      string `json:"dunsNumber"`
	TradeReference1 string `json:"tradeReference1"`
	TradeReference2 string `json:"tradeReference2"`
	TradeReference3 string `json:"tradeReference3"`
	BillToAddress   string `json:"billToAddress" binding:"required"`
	ShipToAddress   string `json:"shipToAddress" binding:"required"`
}

// ApplicationResponse is the API representation of a stored application
type ApplicationResponse struct {
	ID              uuid.UUID `json:"id"`
	LegalName       string    `json:"legalName"`
	ContactEmail    string    `json:"contactEmail"`
	ContactPhone    string    `json:"contactPhone,omitempty"`
	DunsNumber      string    `json:"dunsNumber,omitempty"`
	TradeReference1 string    `json:"tradeReference1,omitempty"`
	TradeReference2 string    `json:"tradeReference2,omitempty"`
	TradeReference3 string    `json:"tradeReference3,omitempty"`
	BillToAddress   string    `json:"billToAddress"`
	ShipToAddress   string    `json:"shipToAddress"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ScoreResponse carries the credit score with its factor breakdown and rationale
type ScoreResponse struct {
	Score     int            `json:"score"`
	Breakdown map[string]int `json:"breakdown"`
	Rationale []string       `json:"rationale"`
}

// ApplicationScoreResponse bundles an application with its computed score
type ApplicationScoreResponse struct {
	Application ApplicationResponse `json:"application"`
	Score       ScoreResponse       `json:"score"`
}

// NewSignaturePayload is the request body for attaching a digital signature
type NewSignaturePayload struct {
	ApplicationID  string `json:"applicationId" binding:"required"`
	SignerName     string `json:"signerName" binding:"required"`
	SignerEmail    string `json:"signerEmail" binding:"required,email"`
	SignatureImage string `json:"signatureImage" binding:"required"`
}

// SignatureResponse is the API representation of a stored signature
type SignatureResponse struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"applicationId"`
	SignerName    string    `json:"signerName"`
	SignerEmail   string    `json:"signerEmail"`
	SignatureHash string    `json:"signatureHash"`
	DocumentURL   string    `json:"documentUrl"`
	SignedAt      time.Time `json:"signedAt"`
}

// NewShippingRequestPayload is the request body for an international shipping request.
// Structural validation happens against a JSON schema before binding.
type NewShippingRequestPayload struct {
	ContactName   string          `json:"contactName"`
	ContactEmail  string          `json:"contactEmail"`
	ContactPhone  string          `json:"contactPhone"`
	AddressLine   string          `json:"addressLine"`
	City          string          `json:"city"`
	Country       string          `json:"country"`
	PostalCode    string          `json:"postalCode"`
	Carrier       string          `json:"carrier"`
	ServiceLevel  string          `json:"serviceLevel"`
	WeightKg      decimal.Decimal `json:"weightKg"`
	DeclaredValue decimal.Decimal `json:"declaredValue"`
	Notes         string          `json:"notes"`
}

// ShippingRequestResponse is the API representation of a stored shipping request
type ShippingRequestResponse struct {
	ID            uuid.UUID       `json:"id"`
	ContactName   string          `json:"contactName"`
	ContactEmail  string          `json:"contactEmail"`
	ContactPhone  string          `json:"contactPhone,omitempty"`
	AddressLine   string          `json:"addressLine"`
	City          string          `json:"city"`
	Country       string          `json:"country"`
	PostalCode    string          `json:"postalCode,omitempty"`
	Carrier       string          `json:"carrier,omitempty"`
	ServiceLevel  string          `json:"serviceLevel,omitempty"`
	WeightKg      decimal.Decimal `json:"weightKg"`
	DeclaredValue decimal.Decimal `json:"declaredValue"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// VendorFormResponse is the API representation of an uploaded vendor form
type VendorFormResponse struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"applicationId,omitempty"`
	FileName      string    `json:"fileName"`
	StorageURL    string    `json:"storageUrl"`
	MimeType      string    `json:"mimeType"`
	ByteSize      int64     `json:"byteSize"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SendEmailPayload is the content handed to an email provider
type SendEmailPayload struct {
	FromAddress string
	ToAddress   string
	Subject     string
	Body        string
	HTMLBody    string
}

// SendEmailResponse is the provider acknowledgement for a sent email
type SendEmailResponse struct {
	Id       string `json:"id"`
	Response string `json:"response"`
}
