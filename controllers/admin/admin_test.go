package admin

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/netvendor/creditintake/ent/enttest"
	db "github.com/netvendor/creditintake/storage"
	"github.com/netvendor/creditintake/utils/test"
)

func TestExportApplications(t *testing.T) {
	// Set up test database client
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&_fk=1")
	defer client.Close()

	db.Client = client

	ctrl := NewAdminController()
	router := gin.New()
	router.GET("/export", ctrl.ExportApplications)

	signed, err := test.CreateTestApplication(nil)
	assert.NoError(t, err)
	_, err = test.CreateTestSignature(signed.ID, nil)
	assert.NoError(t, err)

	unsigned, err := test.CreateTestApplication(map[string]interface{}{
		"legalName":    "Gulf Coast Tooling Inc",
		"contactEmail": "billing@gulfcoasttooling.com",
	})
	assert.NoError(t, err)

	res, err := test.PerformRequest(t, "GET", "/export", nil, nil, router)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "text/csv", res.Header().Get("Content-Type"))
	assert.Contains(t, res.Header().Get("Content-Disposition"), "applications-")

	records, err := csv.NewReader(strings.NewReader(res.Body.String())).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3) // header + two applications

	assert.Equal(t, "id", records[0][0])

	byID := map[string][]string{}
	for _, record := range records[1:] {
		byID[record[0]] = record
	}
	assert.Equal(t, "true", byID[signed.ID.String()][4])
	assert.Equal(t, "false", byID[unsigned.ID.String()][4])
	assert.NotEmpty(t, byID[signed.ID.String()][5])
}
