package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/netvendor/creditintake/storage"
	u "github.com/netvendor/creditintake/utils"
)

// Controller is the default controller for service-level endpoints
type Controller struct{}

// NewController creates a new instance of Controller
func NewController() *Controller {
	return &Controller{}
}

// Health reports readiness, including database reachability
func (ctrl *Controller) Health(ctx *gin.Context) {
	if storage.GetClient() == nil || storage.GetError() != nil {
		u.APIResponse(ctx, http.StatusServiceUnavailable, "error", "Database unavailable", map[string]interface{}{
			"database": "down",
		})
		return
	}

	if storage.DB != nil {
		if err := storage.DB.PingContext(ctx); err != nil {
			u.APIResponse(ctx, http.StatusServiceUnavailable, "error", "Database unavailable", map[string]interface{}{
				"database": "down",
			})
			return
		}
	}

	u.APIResponse(ctx, http.StatusOK, "success", "OK", map[string]interface{}{
		"database": "up",
	})
}
