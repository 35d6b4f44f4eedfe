package email

import (
	"context"
	"fmt"

	"github.com/netvendor/creditintake/config"
	"github.com/netvendor/creditintake/types"
	"github.com/netvendor/creditintake/utils/logger"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridProvider implements Provider for SendGrid
type SendGridProvider struct {
	config *config.NotificationConfiguration
}

// NewSendGridProvider creates a new SendGrid provider
func NewSendGridProvider(config *config.NotificationConfiguration) *SendGridProvider {
	return &SendGridProvider{
		config: config,
	}
}

// GetName returns the provider name
func (s *SendGridProvider) GetName() string {
	return "sendgrid"
}

// SendEmail sends an email via SendGrid
func (s *SendGridProvider) SendEmail(ctx context.Context, payload types.SendEmailPayload) (types.SendEmailResponse, error) {
	from := mail.NewEmail("Credit Intake", payload.FromAddress)
	to := mail.NewEmail("", payload.ToAddress)
	body := mail.NewContent("text/plain", payload.Body)

	m := mail.NewV3Mail()
	m.Subject = payload.Subject
	m.SetFrom(from)
	m.AddContent(body)
	if payload.HTMLBody != "" {
		m.AddContent(mail.NewContent("text/html", payload.HTMLBody))
	}

	p := mail.NewPersonalization()
	p.AddTos(to)
	m.AddPersonalizations(p)

	request := sendgrid.GetRequest(s.config.EmailAPIKey, "/v3/mail/send", fmt.Sprintf("https://%s", s.config.EmailDomain))
	request.Method = "POST"
	request.Body = mail.GetRequestBody(m)
	response, err := sendgrid.API(request)
	if err != nil {
		logger.Errorf("Failed to send email via SendGrid: %v", err)
		return types.SendEmailResponse{}, fmt.Errorf("sendgrid send error: %w", err)
	}
	if response.StatusCode >= 400 {
		logger.Errorf("SendGrid rejected email with status %d", response.StatusCode)
		return types.SendEmailResponse{}, fmt.Errorf("sendgrid send error: status %d", response.StatusCode)
	}

	var id string
	if ids := response.Headers["X-Message-Id"]; len(ids) > 0 {
		id = ids[0]
	}

	return types.SendEmailResponse{
		Id:       id,
		Response: id,
	}, nil
}
