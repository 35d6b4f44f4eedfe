package email

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/netvendor/creditintake/config"
	"github.com/netvendor/creditintake/types"
	"github.com/stretchr/testify/assert"
)

type mockProvider struct {
	name             string
	sendErr          error
	responseToReturn types.SendEmailResponse
	callCount        int
	lastPayload      types.SendEmailPayload
	mu               sync.Mutex
}

func (m *mockProvider) GetName() string {
	return m.name
}

func (m *mockProvider) SendEmail(ctx context.Context, payload types.SendEmailPayload) (types.SendEmailResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++
	m.lastPayload = payload
	return m.responseToReturn, m.sendErr
}

func (m *mockProvider) getLastPayload() types.SendEmailPayload {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastPayload
}

func TestSendIntakeConfirmation(t *testing.T) {
	provider := &mockProvider{name: "sendgrid", responseToReturn: types.SendEmailResponse{Id: "123"}}
	service := &Service{
		provider:         provider,
		notificationConf: &config.NotificationConfiguration{EmailFromAddress: "no-reply@creditintake.local"},
	}

	response, err := service.SendIntakeConfirmation(context.Background(), "ap@acmecorp.com", "Acme Industrial Supply")

	assert.NoError(t, err)
	assert.Equal(t, "123", response.Id)
	assert.Equal(t, "ap@acmecorp.com", provider.getLastPayload().ToAddress)
	assert.Contains(t, provider.getLastPayload().Body, "Acme Industrial Supply")
}

func TestSendIntakeConfirmationProviderError(t *testing.T) {
	provider := &mockProvider{name: "sendgrid", sendErr: errors.New("rate limited")}
	service := &Service{
		provider:         provider,
		notificationConf: &config.NotificationConfiguration{EmailFromAddress: "no-reply@creditintake.local"},
	}

	_, err := service.SendIntakeConfirmation(context.Background(), "ap@acmecorp.com", "Acme Industrial Supply")

	assert.Error(t, err)
}

func TestSendSignatureReceipt(t *testing.T) {
	provider := &mockProvider{name: "mailgun", responseToReturn: types.SendEmailResponse{Id: "sig-1"}}
	service := &Service{
		provider:         provider,
		notificationConf: &config.NotificationConfiguration{EmailFromAddress: "no-reply@creditintake.local"},
	}

	_, err := service.SendSignatureReceipt(context.Background(), "signer@acmecorp.com", "Pat Doe", "https://cdn.example.net/documents/doc.pdf")

	assert.NoError(t, err)
	assert.Contains(t, provider.getLastPayload().Body, "https://cdn.example.net/documents/doc.pdf")
	assert.Contains(t, provider.getLastPayload().Subject, "Signature")
}

func TestSendIntakeDigest(t *testing.T) {
	provider := &mockProvider{name: "sendgrid"}

	t.Run("requires ops email", func(t *testing.T) {
		service := &Service{
			provider:         provider,
			notificationConf: &config.NotificationConfiguration{},
		}
		_, err := service.SendIntakeDigest(context.Background(), 4, 2)
		assert.Error(t, err)
	})

	t.Run("sends counts to ops", func(t *testing.T) {
		service := &Service{
			provider: provider,
			notificationConf: &config.NotificationConfiguration{
				EmailFromAddress: "no-reply@creditintake.local",
				OpsEmail:         "ops@creditintake.local",
			},
		}
		_, err := service.SendIntakeDigest(context.Background(), 4, 2)
		assert.NoError(t, err)
		assert.Equal(t, "ops@creditintake.local", provider.getLastPayload().ToAddress)
		assert.Contains(t, provider.getLastPayload().Body, "4")
	})
}
