package email

import (
	"context"
	"fmt"

	"github.com/netvendor/creditintake/config"
	"github.com/netvendor/creditintake/types"
	"github.com/netvendor/creditintake/utils/logger"
)

// Service sends intake notification emails through a configured provider
type Service struct {
	provider         Provider
	notificationConf *config.NotificationConfiguration
}

// NewService creates an email service with the configured provider.
// SendGrid remains the default when the configured provider cannot be built.
func NewService() *Service {
	notificationConf := config.NotificationConfig()

	var provider Provider
	if notificationConf.EmailProvider == "mailgun" {
		if p := NewMailgunProvider(notificationConf); p != nil {
			provider = p
		}
	}
	if provider == nil {
		provider = NewSendGridProvider(notificationConf)
	}

	return &Service{
		provider:         provider,
		notificationConf: notificationConf,
	}
}

// NewServiceWithProvider creates an email service around an explicit provider, used by tests
func NewServiceWithProvider(provider Provider) *Service {
	return &Service{
		provider:         provider,
		notificationConf: config.NotificationConfig(),
	}
}

// SendIntakeConfirmation notifies an applicant that their application was received
func (s *Service) SendIntakeConfirmation(ctx context.Context, toAddress, legalName string) (types.SendEmailResponse, error) {
	payload := types.SendEmailPayload{
		FromAddress: s.notificationConf.EmailFromAddress,
		ToAddress:   toAddress,
		Subject:     "Credit application received",
		Body: fmt.Sprintf(
			"Hello,\n\nWe received the credit application for %s. Our team will review it and follow up with next steps.\n",
			legalName,
		),
	}

	response, err := s.provider.SendEmail(ctx, payload)
	if err != nil {
		logger.Errorf("Failed to send intake confirmation via %s: %v", s.provider.GetName(), err)
		return types.SendEmailResponse{}, err
	}
	return response, nil
}

// SendSignatureReceipt notifies a signer that their signature was recorded
func (s *Service) SendSignatureReceipt(ctx context.Context, toAddress, signerName, documentURL string) (types.SendEmailResponse, error) {
	payload := types.SendEmailPayload{
		FromAddress: s.notificationConf.EmailFromAddress,
		ToAddress:   toAddress,
		Subject:     "Signature recorded",
		Body: fmt.Sprintf(
			"Hello %s,\n\nYour signature has been recorded. The signed document is available at %s.\n",
			signerName, documentURL,
		),
	}

	response, err := s.provider.SendEmail(ctx, payload)
	if err != nil {
		logger.Errorf("Failed to send signature receipt via %s: %v", s.provider.GetName(), err)
		return types.SendEmailResponse{}, err
	}
	return response, nil
}

// SendIntakeDigest sends the daily volume summary to the ops address
func (s *Service) SendIntakeDigest(ctx context.Context, applicationCount, signatureCount int) (types.SendEmailResponse, error) {
	if s.notificationConf.OpsEmail == "" {
		return types.SendEmailResponse{}, fmt.Errorf("no ops email configured")
	}

	payload := types.SendEmailPayload{
		FromAddress: s.notificationConf.EmailFromAddress,
		ToAddress:   s.notificationConf.OpsEmail,
		Subject:     "Daily intake digest",
		Body: fmt.Sprintf(
			"Applications received in the last 24h: %d\nSignatures recorded in the last 24h: %d\n",
			applicationCount, signatureCount,
		),
	}

	return s.provider.SendEmail(ctx, payload)
}
