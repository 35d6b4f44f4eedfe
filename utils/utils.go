package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/netvendor/creditintake/ent"
	"github.com/netvendor/creditintake/types"
)

// APIResponse writes the standard JSON envelope
func APIResponse(ctx *gin.Context, httpCode int, status string, message string, data interface{}) {
	ctx.JSON(httpCode, types.Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// GetErrorData translates binding/validation errors to field-level detail
func GetErrorData(err error) []types.ErrorData {
	var errorData []types.ErrorData

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range validationErrors {
			errorData = append(errorData, types.ErrorData{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
		return errorData
	}

	return []types.ErrorData{{Field: "", Message: err.Error()}}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	default:
		return "Invalid value"
	}
}

// StorageErrorStatus maps a persistence error to an HTTP status and client message.
// Typed ent predicates come first; the substring checks only catch raw driver
// errors surfaced outside of ent.
func StorageErrorStatus(err error) (int, string) {
	switch {
	case ent.IsNotFound(err):
		return http.StatusNotFound, "Record not found"
	case ent.IsConstraintError(err):
		return http.StatusConflict, "Record already exists"
	case isUnavailable(err):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	case strings.Contains(err.Error(), "unique constraint"):
		return http.StatusConflict, "Record already exists"
	case strings.Contains(err.Error(), "foreign key constraint"):
		return http.StatusNotFound, "Referenced record not found"
	default:
		return http.StatusInternalServerError, "An unexpected error occurred"
	}
}

func isUnavailable(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "database is closed")
}
