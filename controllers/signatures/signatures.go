package signatures

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/netvendor/creditintake/config"
	"github.com/netvendor/creditintake/ent"
	"github.com/netvendor/creditintake/ent/application"
	"github.com/netvendor/creditintake/ent/digitalsignature"
	"github.com/netvendor/creditintake/services/email"
	"github.com/netvendor/creditintake/storage"
	"github.com/netvendor/creditintake/types"
	u "github.com/netvendor/creditintake/utils"
	cryptoUtils "github.com/netvendor/creditintake/utils/crypto"
	"github.com/netvendor/creditintake/utils/logger"
)

// SignaturesController is a controller type for digital signature endpoints
type SignaturesController struct {
	emailService *email.Service
}

// NewSignaturesController creates a new instance of SignaturesController
func NewSignaturesController() *SignaturesController {
	return &SignaturesController{
		emailService: email.NewService(),
	}
}

// CreateSignature controller attaches a digital signature to an application.
// The insert is a single atomic write; the unique edge constraint decides
// duplicates, not a prior existence check.
func (ctrl *SignaturesController) CreateSignature(ctx *gin.Context) {
	var payload types.NewSignaturePayload

	if err := ctx.ShouldBindJSON(&payload); err != nil {
		logger.Errorf("Failed to validate signature payload: %v", err)
		u.APIResponse(ctx, http.StatusBadRequest, "error",
			"Failed to validate payload", u.GetErrorData(err))
		return
	}

	appID, err := uuid.Parse(payload.ApplicationID)
	if err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Failed to validate payload", types.ErrorData{
			Field:   "ApplicationID",
			Message: "Must be a valid UUID",
		})
		return
	}

	signerEmail := strings.ToLower(payload.SignerEmail)
	hash := cryptoUtils.SignatureHash(appID.String(), signerEmail, payload.SignatureImage)
	documentURL := documentURLFor(appID)

	signature, err := storage.Client.DigitalSignature.
		Create().
		SetApplicationID(appID).
		SetSignerName(payload.SignerName).
		SetSignerEmail(signerEmail).
		SetSignatureImage(payload.SignatureImage).
		SetSignatureHash(hash).
		SetDocumentURL(documentURL).
		SetSignedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// The edge constraint fires for both an unknown application and a
			// duplicate signature; one read tells them apart.
			exists, existErr := storage.Client.Application.
				Query().
				Where(application.IDEQ(appID)).
				Exist(ctx)
			if existErr == nil && !exists {
				u.APIResponse(ctx, http.StatusNotFound, "error", "Application not found", nil)
				return
			}
			u.APIResponse(ctx, http.StatusConflict, "error",
				"A signature already exists for this application", nil)
			return
		}
		logger.Errorf("Failed to create signature: %v", err)
		status, message := u.StorageErrorStatus(err)
		u.APIResponse(ctx, status, "error", message, nil)
		return
	}

	go func() {
		_, err := ctrl.emailService.SendSignatureReceipt(context.Background(), signerEmail, payload.SignerName, documentURL)
		if err != nil {
			logger.Warnf("Signature receipt email not sent for %s: %v", appID, err)
		}
	}()

	u.APIResponse(ctx, http.StatusCreated, "success", "Signature recorded", toResponse(signature))
}

// GetSignature controller fetches the signature attached to an application
func (ctrl *SignaturesController) GetSignature(ctx *gin.Context) {
	appID, err := uuid.Parse(ctx.Param("applicationId"))
	if err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Invalid application id", nil)
		return
	}

	signature, err := storage.Client.DigitalSignature.
		Query().
		Where(digitalsignature.ApplicationIDEQ(appID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			u.APIResponse(ctx, http.StatusNotFound, "error", "Signature not found", nil)
			return
		}
		logger.Errorf("Failed to fetch signature: %v", err)
		status, message := u.StorageErrorStatus(err)
		u.APIResponse(ctx, status, "error", message, nil)
		return
	}

	u.APIResponse(ctx, http.StatusOK, "success", "OK", toResponse(signature))
}

func documentURLFor(appID uuid.UUID) string {
	conf := config.ServerConfig()
	return fmt.Sprintf("%s/documents/credit-application-%s.pdf", conf.PublicBaseURL, appID)
}

func toResponse(signature *ent.DigitalSignature) types.SignatureResponse {
	return types.SignatureResponse{
		ID:            signature.ID,
		ApplicationID: signature.ApplicationID,
		SignerName:    signature.SignerName,
		SignerEmail:   signature.SignerEmail,
		SignatureHash: signature.SignatureHash,
		DocumentURL:   signature.DocumentURL,
		SignedAt:      signature.SignedAt,
	}
}
