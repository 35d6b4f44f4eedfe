package signatures

import (
	"context"
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
	cryptoUtils "github.com/netvendor/creditintake/utils/crypto"
	"github.com/netvendor/creditintake/utils/test"
)

func TestSignatures(t *testing.T) {
	// Set up test database client
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&_fk=1")
	defer client.Close()

	db.Client = client

	ctrl := NewSignaturesController()
	router := gin.New()

	router.POST("/signatures", ctrl.CreateSignature)
	router.GET("/signatures/:applicationId", ctrl.GetSignature)

	application, err := test.CreateTestApplication(nil)
	assert.NoError(t, err)

	t.Run("CreateSignature", func(t *testing.T) {
		payload := map[string]interface{}{
			"applicationId":  application.ID.String(),
			"signerName":     "Jordan Reyes",
			"signerEmail":    "Jordan.Reyes@AcmeIndustrial.com",
			"signatureImage": "data:image/png;base64,iVBORw0KGgo=",
		}

		t.Run("records a signature once", func(t *testing.T) {
			res, err := test.PerformRequest(t, "POST", "/signatures", payload, nil, router)
			assert.NoError(t, err)

			type Response struct {
				Status  string                  `json:"status"`
				Message string                  `json:"message"`
				Data    types.SignatureResponse `json:"data"`
			}

			var response Response
			assert.Equal(t, http.StatusCreated, res.Code)
			err = json.Unmarshal(res.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, "Signature recorded", response.Message)
			assert.Equal(t, application.ID, response.Data.ApplicationID)
			assert.Equal(t, "jordan.reyes@acmeindustrial.com", response.Data.SignerEmail)
			assert.Contains(t, response.Data.DocumentURL, fmt.Sprintf("credit-application-%s.pdf", application.ID))

			// The hash is derived from the stored fields, so it can be recomputed
			expectedHash := cryptoUtils.SignatureHash(
				application.ID.String(),
				"jordan.reyes@acmeindustrial.com",
				"data:image/png;base64,iVBORw0KGgo=",
			)
			assert.Equal(t, expectedHash, response.Data.SignatureHash)
		})

		t.Run("rejects a second signature for the same application", func(t *testing.T) {
			res, err := test.PerformRequest(t, "POST", "/signatures", payload, nil, router)
			assert.NoError(t, err)

			var response types.Response
			assert.Equal(t, http.StatusConflict, res.Code)
			err = json.Unmarshal(res.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, "A signature already exists for this application", response.Message)

			count, err := db.Client.DigitalSignature.Query().Count(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, 1, count)
		})

		t.Run("with an unknown application", func(t *testing.T) {
			unknown := map[string]interface{}{
				"applicationId":  uuid.New().String(),
				"signerName":     "Jordan Reyes",
				"signerEmail":    "jordan.reyes@acmeindustrial.com",
				"signatureImage": "data:image/png;base64,iVBORw0KGgo=",
			}

			res, err := test.PerformRequest(t, "POST", "/signatures", unknown, nil, router)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusNotFound, res.Code)
		})

		t.Run("with a malformed application id", func(t *testing.T) {
			malformed := map[string]interface{}{
				"applicationId":  "not-a-uuid",
				"signerName":     "Jordan Reyes",
				"signerEmail":    "jordan.reyes@acmeindustrial.com",
				"signatureImage": "data:image/png;base64,iVBORw0KGgo=",
			}

			res, err := test.PerformRequest(t, "POST", "/signatures", malformed, nil, router)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, res.Code)
		})

		t.Run("with missing required fields", func(t *testing.T) {
			res, err := test.PerformRequest(t, "POST", "/signatures", map[string]interface{}{
				"applicationId": application.ID.String(),
			}, nil, router)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, res.Code)
		})
	})

	t.Run("GetSignature", func(t *testing.T) {
		t.Run("with a signed application", func(t *testing.T) {
			res, err := test.PerformRequest(t, "GET", fmt.Sprintf("/signatures/%s", application.ID), nil, nil, router)
			assert.NoError(t, err)

			type Response struct {
				Data types.SignatureResponse `json:"data"`
			}

			var response Response
			assert.Equal(t, http.StatusOK, res.Code)
			err = json.Unmarshal(res.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, application.ID, response.Data.ApplicationID)
		})

		t.Run("with an unsigned application", func(t *testing.T) {
			unsigned, err := test.CreateTestApplication(map[string]interface{}{
				"contactEmail": "office@northsidefasteners.com",
			})
			assert.NoError(t, err)

			res, err := test.PerformRequest(t, "GET", fmt.Sprintf("/signatures/%s", unsigned.ID), nil, nil, router)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusNotFound, res.Code)
		})
	})
}
