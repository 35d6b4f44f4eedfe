package applications

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/netvendor/creditintake/ent"
	"github.com/netvendor/creditintake/ent/application"
	"github.com/netvendor/creditintake/services/email"
	"github.com/netvendor/creditintake/services/scoring"
	"github.com/netvendor/creditintake/services/verification"
	"github.com/netvendor/creditintake/storage"
	"github.com/netvendor/creditintake/types"
	u "github.com/netvendor/creditintake/utils"
	"github.com/netvendor/creditintake/utils/logger"
)

// ApplicationsController is a controller type for credit application endpoints
type ApplicationsController struct {
	verifier     *verification.Service
	emailService *email.Service
}

// NewApplicationsController creates a new instance of ApplicationsController
func NewApplicationsController() *ApplicationsController {
	return &ApplicationsController{
		verifier:     verification.NewService(),
		emailService: email.NewService(),
	}
}

// NewApplicationsControllerWithVerifier injects a verifier, used by tests to
// pin the domain age source
func NewApplicationsControllerWithVerifier(verifier *verification.Service) *ApplicationsController {
	return &ApplicationsController{
		verifier:     verifier,
		emailService: email.NewService(),
	}
}

// CreateApplication controller persists a credit application and returns it
// with its computed score
func (ctrl *ApplicationsController) CreateApplication(ctx *gin.Context) {
	var payload types.NewApplicationPayload

	if err := ctx.ShouldBindJSON(&payload); err != nil {
		logger.Errorf("Failed to validate application payload: %v", err)
		u.APIResponse(ctx, http.StatusBadRequest, "error",
			"Failed to validate payload", u.GetErrorData(err))
		return
	}

	app, err := storage.Client.Application.
		Create().
		SetLegalName(payload.LegalName).
		SetContactEmail(strings.ToLower(payload.ContactEmail)).
		SetContactPhone(payload.ContactPhone).
		SetDunsNumber(payload.DunsNumber).
		SetTradeReference1(payload.TradeReference1).
		SetTradeReference2(payload.TradeReference2).
		SetTradeReference3(payload.TradeReference3).
		SetBillToAddress(payload.BillToAddress).
		SetShipToAddress(payload.ShipToAddress).
		Save(ctx)
	if err != nil {
		logger.Errorf("Failed to create application: %v", err)
		status, message := u.StorageErrorStatus(err)
		u.APIResponse(ctx, status, "error", message, nil)
		return
	}

	result := ctrl.scoreApplication(app)

	go func() {
		_, err := ctrl.emailService.SendIntakeConfirmation(context.Background(), app.ContactEmail, app.LegalName)
		if err != nil {
			logger.Warnf("Intake confirmation email not sent for %s: %v", app.ID, err)
		}
	}()

	u.APIResponse(ctx, http.StatusCreated, "success", "Application submitted", types.ApplicationScoreResponse{
		Application: toResponse(app),
		Score: types.ScoreResponse{
			Score:     result.Score,
			Breakdown: result.Breakdown,
			Rationale: result.Rationale,
		},
	})
}

// GetApplication controller fetches a stored application by id
func (ctrl *ApplicationsController) GetApplication(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Invalid application id", nil)
		return
	}

	app, err := storage.Client.Application.
		Query().
		Where(application.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			u.APIResponse(ctx, http.StatusNotFound, "error", "Application not found", nil)
			return
		}
		logger.Errorf("Failed to fetch application: %v", err)
		status, message := u.StorageErrorStatus(err)
		u.APIResponse(ctx, status, "error", message, nil)
		return
	}

	u.APIResponse(ctx, http.StatusOK, "success", "OK", toResponse(app))
}

// GetApplicationScore controller recomputes the score for a stored application
func (ctrl *ApplicationsController) GetApplicationScore(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Invalid application id", nil)
		return
	}

	app, err := storage.Client.Application.
		Query().
		Where(application.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			u.APIResponse(ctx, http.StatusNotFound, "error", "Application not found", nil)
			return
		}
		logger.Errorf("Failed to fetch application: %v", err)
		status, message := u.StorageErrorStatus(err)
		u.APIResponse(ctx, status, "error", message, nil)
		return
	}

	result := ctrl.scoreApplication(app)

	u.APIResponse(ctx, http.StatusOK, "success", "OK", types.ScoreResponse{
		Score:     result.Score,
		Breakdown: result.Breakdown,
		Rationale: result.Rationale,
	})
}

func (ctrl *ApplicationsController) scoreApplication(app *ent.Application) scoring.Result {
	signals := ctrl.verifier.Verify(
		app.ContactEmail,
		app.LegalName,
		"",
		app.ContactPhone,
		app.BillToAddress,
	)

	return scoring.Score(scoring.Input{
		LegalName:       app.LegalName,
		ContactEmail:    app.ContactEmail,
		DunsNumber:      app.DunsNumber,
		TradeReferences: [3]string{app.TradeReference1, app.TradeReference2, app.TradeReference3},
		BillToAddress:   app.BillToAddress,
		ShipToAddress:   app.ShipToAddress,
	}, signals)
}

func toResponse(app *ent.Application) types.ApplicationResponse {
	return types.ApplicationResponse{
		ID:              app.ID,
		LegalName:       app.LegalName,
		ContactEmail:    app.ContactEmail,
		ContactPhone:    app.ContactPhone,
		DunsNumber:      app.DunsNumber,
		TradeReference1: app.TradeReference1,
		TradeReference2: app.TradeReference2,
		TradeReference3: app.TradeReference3,
		BillToAddress:   app.BillToAddress,
		ShipToAddress:   app.ShipToAddress,
		CreatedAt:       app.CreatedAt,
	}
}
