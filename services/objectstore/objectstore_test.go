package objectstore

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T) *Service {
	viper.Set("STORAGE_BUCKET", "intake-test")
	viper.Set("STORAGE_REGION", "us-east-1")
	viper.Set("STORAGE_ACCESS_KEY_ID", "AKIDTEST")
	viper.Set("STORAGE_SECRET_ACCESS_KEY", "secret")
	viper.Set("STORAGE_PUBLIC_URL", "https://cdn.example.net")

	transport := httpmock.NewMockTransport()
	transport.RegisterRegexpResponder(
		http.MethodPut,
		regexp.MustCompile(`.*`),
		httpmock.NewStringResponder(200, ""),
	)

	svc, err := NewServiceWithHTTPClient(context.Background(), &http.Client{Transport: transport})
	assert.NoError(t, err)
	return svc
}

func TestMintObjectKey(t *testing.T) {
	svc := newTestService(t)

	key1 := svc.MintObjectKey("statement.pdf")
	key2 := svc.MintObjectKey("statement.pdf")

	assert.True(t, strings.HasPrefix(key1, "vendor-forms/"))
	assert.True(t, strings.HasSuffix(key1, ".pdf"))
	assert.NotEqual(t, key1, key2)
}

func TestMintObjectKeyOversizedExtension(t *testing.T) {
	svc := newTestService(t)

	key := svc.MintObjectKey("weird." + strings.Repeat("x", 40))

	assert.NotContains(t, key, strings.Repeat("x", 40))
}

func TestUpload(t *testing.T) {
	svc := newTestService(t)

	url, err := svc.Upload(context.Background(), "vendor-forms/abc.pdf", "application/pdf", []byte("%PDF-1.4"))

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.net/vendor-forms/abc.pdf", url)
}

func TestUploadTransferFailure(t *testing.T) {
	viper.Set("STORAGE_BUCKET", "intake-test")
	viper.Set("STORAGE_ACCESS_KEY_ID", "AKIDTEST")
	viper.Set("STORAGE_SECRET_ACCESS_KEY", "secret")

	transport := httpmock.NewMockTransport()
	transport.RegisterRegexpResponder(
		http.MethodPut,
		regexp.MustCompile(`.*`),
		httpmock.NewStringResponder(403, "denied"),
	)

	svc, err := NewServiceWithHTTPClient(context.Background(), &http.Client{Transport: transport})
	assert.NoError(t, err)

	_, err = svc.Upload(context.Background(), "vendor-forms/abc.pdf", "application/pdf", []byte("%PDF-1.4"))
	assert.Error(t, err)
}

func TestPublicURLFallsBackToBucketHost(t *testing.T) {
	svc := newTestService(t)
	svc.conf.PublicURL = ""

	url := svc.PublicURL("vendor-forms/abc.pdf")
	assert.Contains(t, url, "intake-test")
	assert.Contains(t, url, "vendor-forms/abc.pdf")
}
