// Package objectstore handles vendor form transfers to S3-compatible object
// storage. Writes go through short-lived presigned URLs so handler code never
// holds long-lived credentials.
package objectstore

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/netvendor/creditintake/config"
)

// Store is the interface upload handlers depend on
type Store interface {
	MintObjectKey(fileName string) string
	Upload(ctx context.Context, key, contentType string, body []byte) (string, error)
	PublicURL(key string) string
}

// Service implements Store over S3
type Service struct {
	presigner *s3.PresignClient
	http      *http.Client
	conf      *config.StorageConfiguration
}

// NewService creates an object storage service from the storage configuration
func NewService(ctx context.Context) (*Service, error) {
	conf := config.StorageConfig()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(conf.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.AccessKeyID, conf.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("objectstore config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if conf.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Service{
		presigner: s3.NewPresignClient(client),
		http:      &http.Client{Timeout: 60 * time.Second},
		conf:      conf,
	}, nil
}

// NewServiceWithHTTPClient creates a service with a custom transfer client, used by tests
func NewServiceWithHTTPClient(ctx context.Context, httpClient *http.Client) (*Service, error) {
	svc, err := NewService(ctx)
	if err != nil {
		return nil, err
	}
	svc.http = httpClient
	return svc, nil
}

// MintObjectKey derives a unique storage key from the upload time, a random
// suffix and the sanitized original extension
func (s *Service) MintObjectKey(fileName string) string {
	suffix := make([]byte, 6)
	_, _ = rand.Read(suffix)

	ext := strings.ToLower(filepath.Ext(fileName))
	if len(ext) > 10 {
		ext = ""
	}

	return fmt.Sprintf("vendor-forms/%d-%s%s", time.Now().UnixNano(), hex.EncodeToString(suffix), ext)
}

// Upload obtains a presigned PUT credential for key and transfers body through
// it, returning the public read URL. Nothing is recorded on failure.
func (s *Service) Upload(ctx context.Context, key, contentType string, body []byte) (string, error) {
	presigned, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.conf.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = s.conf.PresignExpiry
	})
	if err != nil {
		return "", fmt.Errorf("presign put: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, presigned.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build transfer request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = int64(len(body))

	resp, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("transfer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("transfer failed with status %d", resp.StatusCode)
	}

	return s.PublicURL(key), nil
}

// PublicURL returns the public read URL for a stored object
func (s *Service) PublicURL(key string) string {
	if s.conf.PublicURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.conf.PublicURL, "/"), key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.conf.Bucket, s.conf.Region, key)
}
