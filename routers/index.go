package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/netvendor/creditintake/config"
	"github.com/netvendor/creditintake/controllers"
	"github.com/netvendor/creditintake/controllers/admin"
	"github.com/netvendor/creditintake/controllers/applications"
	"github.com/netvendor/creditintake/controllers/shipping"
	"github.com/netvendor/creditintake/controllers/signatures"
	"github.com/netvendor/creditintake/controllers/uploads"
	"github.com/netvendor/creditintake/routers/middleware"
	"github.com/netvendor/creditintake/utils/logger"
)

// Routes function registers middleware and routes of the application
func Routes() *gin.Engine {
	conf := config.ServerConfig()
	if !conf.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Gates run in order; the first failing one terminates the request.
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.AuthGateMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CSRFMiddleware())
	router.Use(middleware.RequestLogMiddleware())

	RegisterRoutes(router)

	return router
}

// RegisterRoutes adds the service endpoints to the router
func RegisterRoutes(route *gin.Engine) {
	indexCtrl := controllers.NewController()
	applicationsCtrl := applications.NewApplicationsController()
	signaturesCtrl := signatures.NewSignaturesController()
	shippingCtrl := shipping.NewShippingController()
	adminCtrl := admin.NewAdminController()

	route.GET("/health", indexCtrl.Health)

	v1 := route.Group("/v1")
	v1.POST("/applications", applicationsCtrl.CreateApplication)
	v1.GET("/applications/:id", applicationsCtrl.GetApplication)
	v1.GET("/applications/:id/score", applicationsCtrl.GetApplicationScore)

	v1.POST("/signatures", signaturesCtrl.CreateSignature)
	v1.GET("/signatures/:applicationId", signaturesCtrl.GetSignature)

	// Admin paths sit behind the auth gate middleware.
	v1.GET("/admin/export", adminCtrl.ExportApplications)

	v1.POST("/shipping-requests", shippingCtrl.CreateShippingRequest)
	v1.GET("/shipping-requests", shippingCtrl.ListShippingRequests)
	v1.GET("/shipping-requests/:id", shippingCtrl.GetShippingRequest)

	uploadsCtrl, err := uploads.NewUploadsController()
	if err != nil {
		logger.Errorf("Upload endpoint disabled, object storage unavailable: %v", err)
	} else {
		v1.POST("/uploads", uploadsCtrl.UploadVendorForm)
	}
}
