package uploads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
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

// fakeStore records uploads instead of talking to object storage
type fakeStore struct {
	fail     bool
	uploaded [][]byte
}

func (s *fakeStore) MintObjectKey(fileName string) string {
	return "vendor-forms/test-" + fileName
}

func (s *fakeStore) Upload(ctx context.Context, key, contentType string, content []byte) (string, error) {
	if s.fail {
		return "", fmt.Errorf("transfer failed")
	}
	s.uploaded = append(s.uploaded, content)
	return "https://forms.example.com/" + key, nil
}

func (s *fakeStore) PublicURL(key string) string {
	return "https://forms.example.com/" + key
}

func performUpload(t *testing.T, router *gin.Engine, fields map[string]string, fileName string, content []byte) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		err := writer.WriteField(key, value)
		assert.NoError(t, err)
	}
	if fileName != "" {
		part, err := writer.CreateFormFile("file", fileName)
		assert.NoError(t, err)
		_, err = part.Write(content)
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())

	req, err := http.NewRequest("POST", "/uploads", body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestUploads(t *testing.T) {
	// Set up test database client
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&_fk=1")
	defer client.Close()

	db.Client = client

	store := &fakeStore{}
	ctrl := NewUploadsControllerWithStore(store)
	router := gin.New()
	router.POST("/uploads", ctrl.UploadVendorForm)

	t.Run("with a standalone file", func(t *testing.T) {
		res := performUpload(t, router, nil, "w9-acme.pdf", []byte("%PDF-1.4 fake"))

		type Response struct {
			Status  string                   `json:"status"`
			Message string                   `json:"message"`
			Data    types.VendorFormResponse `json:"data"`
		}

		var response Response
		assert.Equal(t, http.StatusCreated, res.Code)
		err := json.Unmarshal(res.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "w9-acme.pdf", response.Data.FileName)
		assert.Equal(t, int64(len("%PDF-1.4 fake")), response.Data.ByteSize)
		assert.Contains(t, response.Data.StorageURL, "vendor-forms/test-w9-acme.pdf")
		assert.Len(t, store.uploaded, 1)
	})

	t.Run("linked to an application", func(t *testing.T) {
		application, err := test.CreateTestApplication(nil)
		assert.NoError(t, err)

		res := performUpload(t, router, map[string]string{
			"applicationId": application.ID.String(),
		}, "bank-reference.pdf", []byte("%PDF-1.4 fake"))

		type Response struct {
			Data types.VendorFormResponse `json:"data"`
		}

		var response Response
		assert.Equal(t, http.StatusCreated, res.Code)
		err = json.Unmarshal(res.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, application.ID, response.Data.ApplicationID)
	})

	t.Run("with an unknown application", func(t *testing.T) {
		res := performUpload(t, router, map[string]string{
			"applicationId": uuid.New().String(),
		}, "w9.pdf", []byte("%PDF-1.4 fake"))
		assert.Equal(t, http.StatusNotFound, res.Code)
	})

	t.Run("with a malformed application id", func(t *testing.T) {
		res := performUpload(t, router, map[string]string{
			"applicationId": "not-a-uuid",
		}, "w9.pdf", []byte("%PDF-1.4 fake"))
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("without a file part", func(t *testing.T) {
		res := performUpload(t, router, map[string]string{}, "", nil)
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("when the transfer fails", func(t *testing.T) {
		failing := NewUploadsControllerWithStore(&fakeStore{fail: true})
		failRouter := gin.New()
		failRouter.POST("/uploads", failing.UploadVendorForm)

		res := performUpload(t, failRouter, nil, "w9.pdf", []byte("%PDF-1.4 fake"))
		assert.Equal(t, http.StatusServiceUnavailable, res.Code)

		// No record is written when the transfer fails
		count, err := db.Client.VendorForm.Query().Count(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}
