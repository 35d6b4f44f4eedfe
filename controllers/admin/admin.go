package admin

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/netvendor/creditintake/ent"
	"github.com/netvendor/creditintake/ent/application"
	"github.com/netvendor/creditintake/storage"
	u "github.com/netvendor/creditintake/utils"
	"github.com/netvendor/creditintake/utils/logger"
)

// AdminController is a controller type for admin reporting endpoints
type AdminController struct{}

// NewAdminController creates a new instance of AdminController
func NewAdminController() *AdminController {
	return &AdminController{}
}

// ExportApplications streams all applications with their signature status as
// a CSV attachment
func (ctrl *AdminController) ExportApplications(ctx *gin.Context) {
	apps, err := storage.Client.Application.
		Query().
		WithSignature().
		Order(ent.Asc(application.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		logger.Errorf("Failed to export applications: %v", err)
		status, message := u.StorageErrorStatus(err)
		u.APIResponse(ctx, status, "error", message, nil)
		return
	}

	fileName := fmt.Sprintf("applications-%s.csv", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	ctx.Status(http.StatusOK)

	writer := csv.NewWriter(ctx.Writer)
	_ = writer.Write([]string{
		"id", "legal_name", "contact_email", "duns_number",
		"signed", "signed_at", "created_at",
	})

	for _, app := range apps {
		signed := "false"
		signedAt := ""
		if app.Edges.Signature != nil {
			signed = strconv.FormatBool(true)
			signedAt = app.Edges.Signature.SignedAt.Format(time.RFC3339)
		}

		_ = writer.Write([]string{
			app.ID.String(),
			app.LegalName,
			app.ContactEmail,
			app.DunsNumber,
			signed,
			signedAt,
			app.CreatedAt.Format(time.RFC3339),
		})
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		logger.Errorf("Failed to flush application export: %v", err)
	}
}
