package applications

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
	"github.com/netvendor/creditintake/services/verification"
	db "github.com/netvendor/creditintake/storage"
	"github.com/netvendor/creditintake/types"
	"github.com/netvendor/creditintake/utils/test"
)

func TestApplications(t *testing.T) {
	// Set up test database client
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&_fk=1")
	defer client.Close()

	db.Client = client

	// Pin the domain age so scores are stable across runs
	verifier := verification.NewServiceWithAgeSource(verification.AgeSourceFunc(func(domain string) int {
		return 2000
	}))
	ctrl := NewApplicationsControllerWithVerifier(verifier)
	router := gin.New()

	router.POST("/applications", ctrl.CreateApplication)
	router.GET("/applications/:id", ctrl.GetApplication)
	router.GET("/applications/:id/score", ctrl.GetApplicationScore)

	t.Run("CreateApplication", func(t *testing.T) {
		t.Run("with a complete payload", func(t *testing.T) {
			payload := map[string]interface{}{
				"legalName":       "Acme Industrial Supply LLC",
				"contactEmail":    "Purchasing@AcmeIndustrial.com",
				"contactPhone":    "7135550142",
				"dunsNumber":      "123456789",
				"tradeReference1": "Northside Fasteners",
				"tradeReference2": "Gulf Coast Tooling",
				"billToAddress":   "4400 Commerce Park Blvd, Suite 210, Houston, TX 77032",
				"shipToAddress":   "4400 Commerce Park Blvd, Warehouse B, Houston, TX 77032",
			}

			res, err := test.PerformRequest(t, "POST", "/applications", payload, nil, router)
			assert.NoError(t, err)

			type Response struct {
				Status  string                         `json:"status"`
				Message string                         `json:"message"`
				Data    types.ApplicationScoreResponse `json:"data"`
			}

			var response Response
			assert.Equal(t, http.StatusCreated, res.Code)
			err = json.Unmarshal(res.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, "Application submitted", response.Message)

			// Email is normalized to lowercase on write
			assert.Equal(t, "purchasing@acmeindustrial.com", response.Data.Application.ContactEmail)
			assert.NotEqual(t, uuid.Nil, response.Data.Application.ID)

			assert.GreaterOrEqual(t, response.Data.Score.Score, 150)
			assert.LessOrEqual(t, response.Data.Score.Score, 850)
			assert.NotEmpty(t, response.Data.Score.Breakdown)
			assert.NotEmpty(t, response.Data.Score.Rationale)
		})

		t.Run("with missing required fields", func(t *testing.T) {
			payload := map[string]interface{}{
				"legalName": "Acme Industrial Supply LLC",
			}

			res, err := test.PerformRequest(t, "POST", "/applications", payload, nil, router)
			assert.NoError(t, err)

			var response types.Response
			assert.Equal(t, http.StatusBadRequest, res.Code)
			err = json.Unmarshal(res.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, "Failed to validate payload", response.Message)
		})

		t.Run("with an invalid email", func(t *testing.T) {
			payload := map[string]interface{}{
				"legalName":     "Acme Industrial Supply LLC",
				"contactEmail":  "not-an-email",
				"billToAddress": "4400 Commerce Park Blvd, Houston, TX",
				"shipToAddress": "4400 Commerce Park Blvd, Houston, TX",
			}

			res, err := test.PerformRequest(t, "POST", "/applications", payload, nil, router)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, res.Code)
		})

		t.Run("placeholder content scores lower", func(t *testing.T) {
			strong := map[string]interface{}{
				"legalName":     "Lone Star Milling LLC",
				"contactEmail":  "accounts@lonestarmilling.com",
				"dunsNumber":    "987654321",
				"billToAddress": "980 Harbor Industrial Way, Suite 40, Galveston, TX 77550",
				"shipToAddress": "980 Harbor Industrial Way, Dock 3, Galveston, TX 77550",
			}
			weak := map[string]interface{}{
				"legalName":     "Test Company",
				"contactEmail":  "test@test.com",
				"billToAddress": "123 Test St",
				"shipToAddress": "456 Fake Ave",
			}

			type Response struct {
				Data types.ApplicationScoreResponse `json:"data"`
			}

			var strongRes, weakRes Response

			res, err := test.PerformRequest(t, "POST", "/applications", strong, nil, router)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusCreated, res.Code)
			assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &strongRes))

			res, err = test.PerformRequest(t, "POST", "/applications", weak, nil, router)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusCreated, res.Code)
			assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &weakRes))

			assert.Greater(t, strongRes.Data.Score.Score, weakRes.Data.Score.Score)
		})
	})

	t.Run("GetApplication", func(t *testing.T) {
		application, err := test.CreateTestApplication(nil)
		assert.NoError(t, err)

		t.Run("with a valid id", func(t *testing.T) {
			res, err := test.PerformRequest(t, "GET", fmt.Sprintf("/applications/%s", application.ID), nil, nil, router)
			assert.NoError(t, err)

			type Response struct {
				Status  string                    `json:"status"`
				Message string                    `json:"message"`
				Data    types.ApplicationResponse `json:"data"`
			}

			var response Response
			assert.Equal(t, http.StatusOK, res.Code)
			err = json.Unmarshal(res.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, application.ID, response.Data.ID)
			assert.Equal(t, application.LegalName, response.Data.LegalName)
		})

		t.Run("with an unknown id", func(t *testing.T) {
			res, err := test.PerformRequest(t, "GET", fmt.Sprintf("/applications/%s", uuid.New()), nil, nil, router)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusNotFound, res.Code)
		})

		t.Run("with a malformed id", func(t *testing.T) {
			res, err := test.PerformRequest(t, "GET", "/applications/not-a-uuid", nil, nil, router)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, res.Code)
		})
	})

	t.Run("GetApplicationScore", func(t *testing.T) {
		application, err := test.CreateTestApplication(map[string]interface{}{
			"contactEmail": "billing@gulfcoasttooling.com",
		})
		assert.NoError(t, err)

		t.Run("recomputes deterministically", func(t *testing.T) {
			type Response struct {
				Data types.ScoreResponse `json:"data"`
			}

			var first, second Response

			res, err := test.PerformRequest(t, "GET", fmt.Sprintf("/applications/%s/score", application.ID), nil, nil, router)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, res.Code)
			assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &first))

			res, err = test.PerformRequest(t, "GET", fmt.Sprintf("/applications/%s/score", application.ID), nil, nil, router)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, res.Code)
			assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &second))

			assert.Equal(t, first.Data.Score, second.Data.Score)
			assert.Equal(t, first.Data.Breakdown, second.Data.Breakdown)
		})

		t.Run("with an unknown id", func(t *testing.T) {
			res, err := test.PerformRequest(t, "GET", fmt.Sprintf("/applications/%s/score", uuid.New()), nil, nil, router)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusNotFound, res.Code)
		})
	})
}
