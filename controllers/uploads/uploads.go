package uploads

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/netvendor/creditintake/config"
	"github.com/netvendor/creditintake/ent/application"
	"github.com/netvendor/creditintake/services/objectstore"
	"github.com/netvendor/creditintake/storage"
	"github.com/netvendor/creditintake/types"
	u "github.com/netvendor/creditintake/utils"
	"github.com/netvendor/creditintake/utils/logger"
)

// UploadsController is a controller type for vendor form upload endpoints
type UploadsController struct {
	store objectstore.Store
}

// NewUploadsController creates a new instance of UploadsController
func NewUploadsController() (*UploadsController, error) {
	store, err := objectstore.NewService(context.Background())
	if err != nil {
		return nil, err
	}
	return &UploadsController{store: store}, nil
}

// NewUploadsControllerWithStore injects the object store, used by tests
func NewUploadsControllerWithStore(store objectstore.Store) *UploadsController {
	return &UploadsController{store: store}
}

// UploadVendorForm controller transfers a multipart file to object storage
// and records its metadata. The record is written only after the transfer
// succeeds.
func (ctrl *UploadsController) UploadVendorForm(ctx *gin.Context) {
	intakeConf := config.IntakeConfig()

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Failed to validate payload", types.ErrorData{
			Field:   "file",
			Message: "A file part is required",
		})
		return
	}
	defer file.Close()

	if header.Size > intakeConf.MaxUploadBytes {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Failed to validate payload", types.ErrorData{
			Field:   "file",
			Message: "File exceeds the maximum allowed size",
		})
		return
	}

	var appID uuid.UUID
	hasApp := false
	if raw := ctx.PostForm("applicationId"); raw != "" {
		appID, err = uuid.Parse(raw)
		if err != nil {
			u.APIResponse(ctx, http.StatusBadRequest, "error", "Failed to validate payload", types.ErrorData{
				Field:   "applicationId",
				Message: "Must be a valid UUID",
			})
			return
		}

		exists, err := storage.Client.Application.
			Query().
			Where(application.IDEQ(appID)).
			Exist(ctx)
		if err != nil {
			logger.Errorf("Failed to check application: %v", err)
			status, message := u.StorageErrorStatus(err)
			u.APIResponse(ctx, status, "error", message, nil)
			return
		}
		if !exists {
			u.APIResponse(ctx, http.StatusNotFound, "error", "Application not found", nil)
			return
		}
		hasApp = true
	}

	content, err := io.ReadAll(file)
	if err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Failed to read uploaded file", nil)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := ctrl.store.MintObjectKey(header.Filename)
	storageURL, err := ctrl.store.Upload(ctx, key, contentType, content)
	if err != nil {
		logger.Errorf("Vendor form transfer failed: %v", err)
		u.APIResponse(ctx, http.StatusServiceUnavailable, "error", "File storage unavailable", nil)
		return
	}

	create := storage.Client.VendorForm.
		Create().
		SetFileName(header.Filename).
		SetStorageURL(storageURL).
		SetMimeType(contentType).
		SetByteSize(int64(len(content)))
	if hasApp {
		create = create.SetApplicationID(appID)
	}

	form, err := create.Save(ctx)
	if err != nil {
		logger.Errorf("Failed to record vendor form: %v", err)
		status, message := u.StorageErrorStatus(err)
		u.APIResponse(ctx, status, "error", message, nil)
		return
	}

	response := types.VendorFormResponse{
		ID:         form.ID,
		FileName:   form.FileName,
		StorageURL: form.StorageURL,
		MimeType:   form.MimeType,
		ByteSize:   form.ByteSize,
		CreatedAt:  form.CreatedAt,
	}
	if hasApp {
		response.ApplicationID = appID
	}

	u.APIResponse(ctx, http.StatusCreated, "success", "Vendor form uploaded", response)
}
