package shipping

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/netvendor/creditintake/ent"
	"github.com/netvendor/creditintake/ent/shippingrequest"
	"github.com/netvendor/creditintake/storage"
	"github.com/netvendor/creditintake/types"
	u "github.com/netvendor/creditintake/utils"
	"github.com/netvendor/creditintake/utils/logger"
	"github.com/xeipuuv/gojsonschema"
)

// The shipping payload is freeform beyond a required contact/address core, so
// structural validation runs against a schema rather than struct tags.
const shippingSchema = `{
	"type": "object",
	"required": ["contactName", "contactEmail", "addressLine", "city", "country"],
	"properties": {
		"contactName":   {"type": "string", "minLength": 1},
		"contactEmail":  {"type": "string", "format": "email"},
		"contactPhone":  {"type": "string"},
		"addressLine":   {"type": "string", "minLength": 1},
		"city":          {"type": "string", "minLength": 1},
		"country":       {"type": "string", "minLength": 1},
		"postalCode":    {"type": "string"},
		"carrier":       {"type": "string"},
		"serviceLevel":  {"type": "string"},
		"weightKg":      {"type": ["number", "string"]},
		"declaredValue": {"type": ["number", "string"]},
		"notes":         {"type": "string"}
	}
}`

var schemaLoader = gojsonschema.NewStringLoader(shippingSchema)

// ShippingController is a controller type for shipping request endpoints
type ShippingController struct{}

// NewShippingController creates a new instance of ShippingController
func NewShippingController() *ShippingController {
	return &ShippingController{}
}

// CreateShippingRequest controller persists an international shipping request
func (ctrl *ShippingController) CreateShippingRequest(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Failed to read request body", nil)
		return
	}

	validation, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Failed to validate payload", types.ErrorData{
			Field:   "",
			Message: "Body must be valid JSON",
		})
		return
	}
	if !validation.Valid() {
		var errorData []types.ErrorData
		for _, desc := range validation.Errors() {
			errorData = append(errorData, types.ErrorData{
				Field:   desc.Field(),
				Message: desc.Description(),
			})
		}
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Failed to validate payload", errorData)
		return
	}

	var payload types.NewShippingRequestPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Failed to validate payload", nil)
		return
	}

	request, err := storage.Client.ShippingRequest.
		Create().
		SetContactName(payload.ContactName).
		SetContactEmail(payload.ContactEmail).
		SetContactPhone(payload.ContactPhone).
		SetAddressLine(payload.AddressLine).
		SetCity(payload.City).
		SetCountry(payload.Country).
		SetPostalCode(payload.PostalCode).
		SetCarrier(payload.Carrier).
		SetServiceLevel(payload.ServiceLevel).
		SetWeightKg(payload.WeightKg).
		SetDeclaredValue(payload.DeclaredValue).
		SetNotes(payload.Notes).
		Save(ctx)
	if err != nil {
		logger.Errorf("Failed to create shipping request: %v", err)
		status, message := u.StorageErrorStatus(err)
		u.APIResponse(ctx, status, "error", message, nil)
		return
	}

	u.APIResponse(ctx, http.StatusCreated, "success", "Shipping request submitted", toResponse(request))
}

// GetShippingRequest controller fetches a shipping request by id
func (ctrl *ShippingController) GetShippingRequest(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Invalid shipping request id", nil)
		return
	}

	request, err := storage.Client.ShippingRequest.
		Query().
		Where(shippingrequest.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			u.APIResponse(ctx, http.StatusNotFound, "error", "Shipping request not found", nil)
			return
		}
		logger.Errorf("Failed to fetch shipping request: %v", err)
		status, message := u.StorageErrorStatus(err)
		u.APIResponse(ctx, status, "error", message, nil)
		return
	}

	u.APIResponse(ctx, http.StatusOK, "success", "OK", toResponse(request))
}

// ListShippingRequests controller fetches all shipping requests, newest first
func (ctrl *ShippingController) ListShippingRequests(ctx *gin.Context) {
	requests, err := storage.Client.ShippingRequest.
		Query().
		Order(ent.Desc(shippingrequest.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		logger.Errorf("Failed to list shipping requests: %v", err)
		status, message := u.StorageErrorStatus(err)
		u.APIResponse(ctx, status, "error", message, nil)
		return
	}

	response := make([]types.ShippingRequestResponse, 0, len(requests))
	for _, request := range requests {
		response = append(response, toResponse(request))
	}

	u.APIResponse(ctx, http.StatusOK, "success", "OK", response)
}

func toResponse(request *ent.ShippingRequest) types.ShippingRequestResponse {
	return types.ShippingRequestResponse{
		ID:            request.ID,
		ContactName:   request.ContactName,
		ContactEmail:  request.ContactEmail,
		ContactPhone:  request.ContactPhone,
		AddressLine:   request.AddressLine,
		City:          request.City,
		Country:       request.Country,
		PostalCode:    request.PostalCode,
		Carrier:       request.Carrier,
		ServiceLevel:  request.ServiceLevel,
		WeightKg:      request.WeightKg,
		DeclaredValue: request.DeclaredValue,
		Notes:         request.Notes,
		CreatedAt:     request.CreatedAt,
	}
}
