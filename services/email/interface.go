package email

import (
	"context"

	"github.com/netvendor/creditintake/types"
)

// Provider is the transport a concrete email vendor implements
type Provider interface {
	GetName() string
	SendEmail(ctx context.Context, payload types.SendEmailPayload) (types.SendEmailResponse, error)
}

// Sender is the interface the rest of the service depends on
type Sender interface {
	SendIntakeConfirmation(ctx context.Context, toAddress, legalName string) (types.SendEmailResponse, error)
	SendSignatureReceipt(ctx context.Context, toAddress, signerName, documentURL string) (types.SendEmailResponse, error)
	SendIntakeDigest(ctx context.Context, applicationCount, signatureCount int) (types.SendEmailResponse, error)
}
