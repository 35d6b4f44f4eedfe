package shipping

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/netvendor/creditintake/ent/enttest"
	db "github.com/netvendor/creditintake/storage"
	"github.com/netvendor/creditintake/types"
	"github.com/netvendor/creditintake/utils/test"
)

func TestShipping(t *testing.T) {
	// Set up test database client
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&_fk=1")
	defer client.Close()

	db.Client = client

	ctrl := NewShippingController()
	router := gin.New()

	router.POST("/shipping-requests", ctrl.CreateShippingRequest)
	router.GET("/shipping-requests", ctrl.ListShippingRequests)
	router.GET("/shipping-requests/:id", ctrl.GetShippingRequest)

	t.Run("CreateShippingRequest", func(t *testing.T) {
		t.Run("with a complete payload", func(t *testing.T) {
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
				"declaredValue": 480.00,
				"notes":         "Dock delivery only",
			}

			res, err := test.PerformRequest(t, "POST", "/shipping-requests", payload, nil, router)
			assert.NoError(t, err)

			type Response struct {
				Status  string                        `json:"status"`
				Message string                        `json:"message"`
				Data    types.ShippingRequestResponse `json:"data"`
			}

			var response Response
			assert.Equal(t, http.StatusCreated, res.Code)
			err = json.Unmarshal(res.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, "Shipping request submitted", response.Message)
			assert.Equal(t, "Houston", response.Data.City)
			assert.Equal(t, "12.5", response.Data.WeightKg.String())
			assert.Equal(t, "480", response.Data.DeclaredValue.String())
		})

		t.Run("with missing required fields", func(t *testing.T) {
			payload := map[string]interface{}{
				"contactName":  "Jordan Reyes",
				"contactEmail": "jordan.reyes@acmeindustrial.com",
			}

			res, err := test.PerformRequest(t, "POST", "/shipping-requests", payload, nil, router)
			assert.NoError(t, err)

			type Response struct {
				Status  string            `json:"status"`
				Message string            `json:"message"`
				Data    []types.ErrorData `json:"data"`
			}

			var response Response
			assert.Equal(t, http.StatusBadRequest, res.Code)
			err = json.Unmarshal(res.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, "Failed to validate payload", response.Message)
			assert.NotEmpty(t, response.Data)
		})

		t.Run("with a non-numeric weight", func(t *testing.T) {
			payload := map[string]interface{}{
				"contactName":  "Jordan Reyes",
				"contactEmail": "jordan.reyes@acmeindustrial.com",
				"addressLine":  "4400 Commerce Park Blvd",
				"city":         "Houston",
				"country":      "US",
				"weightKg":     true,
			}

			res, err := test.PerformRequest(t, "POST", "/shipping-requests", payload, nil, router)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, res.Code)
		})

		t.Run("with a malformed body", func(t *testing.T) {
			res, err := test.PerformRequest(t, "POST", "/shipping-requests", "not-json", nil, router)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, res.Code)
		})
	})

	t.Run("GetShippingRequest", func(t *testing.T) {
		request, err := test.CreateTestShippingRequest(nil)
		assert.NoError(t, err)

		t.Run("with a valid id", func(t *testing.T) {
			res, err := test.PerformRequest(t, "GET", fmt.Sprintf("/shipping-requests/%s", request.ID), nil, nil, router)
			assert.NoError(t, err)

			type Response struct {
				Data types.ShippingRequestResponse `json:"data"`
			}

			var response Response
			assert.Equal(t, http.StatusOK, res.Code)
			err = json.Unmarshal(res.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, request.ID, response.Data.ID)
		})

		t.Run("with an unknown id", func(t *testing.T) {
			res, err := test.PerformRequest(t, "GET", fmt.Sprintf("/shipping-requests/%s", uuid.New()), nil, nil, router)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusNotFound, res.Code)
		})
	})

	t.Run("ListShippingRequests", func(t *testing.T) {
		_, err := test.CreateTestShippingRequest(map[string]interface{}{
			"contactName": "Casey Lin",
			"city":        "Galveston",
		})
		assert.NoError(t, err)

		res, err := test.PerformRequest(t, "GET", "/shipping-requests", nil, nil, router)
		assert.NoError(t, err)

		type Response struct {
			Data []types.ShippingRequestResponse `json:"data"`
		}

		var response Response
		assert.Equal(t, http.StatusOK, res.Code)
		err = json.Unmarshal(res.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, len(response.Data), 2)

		// Newest first
		for i := 1; i < len(response.Data); i++ {
			assert.False(t, response.Data[i-1].CreatedAt.Before(response.Data[i].CreatedAt))
		}
	})
}
