package v1

import (
	"net/http"

	"kamenpro-backend/config"
	"kamenpro-backend/internal/delivery/http/middleware"
	"kamenpro-backend/internal/domain"
	"kamenpro-backend/pkg/apperror"
	"kamenpro-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	InquiryUC domain.InquiryUsecase
	ContactUC domain.ContactUsecase
	Locations domain.LocationCatalog
	Products  domain.ProductSource
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	r.NoMethod(func(c *gin.Context) {
		_ = c.Error(apperror.MethodNotAllowed())
	})
	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperror.NotFound("Not found"))
	})

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	NewInquiryHandler(api, deps.InquiryUC)
	if deps.ContactUC != nil {
		NewContactHandler(api, deps.ContactUC)
	}
	baseURL := ""
	if deps.Config != nil {
		baseURL = deps.Config.SiteBaseURL
	}
	if deps.Locations != nil {
		NewLocationHandler(api, deps.Locations, baseURL)
	}
	if deps.Products != nil {
		NewProductHandler(api, deps.Products, baseURL)
	}

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	return r
}
