package v1

import (
	"go-jobmatch-backend/config"
	"go-jobmatch-backend/internal/delivery/http/middleware"
	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/audit"
	"go-jobmatch-backend/pkg/auth"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	EmployerUC   domain.EmployerUsecase
	ApprovalUC   domain.ApprovalUsecase
	JobSeekerUC  domain.JobSeekerUsecase
	PortfolioUC  domain.PortfolioUsecase
	FavoriteUC   domain.FavoriteUsecase
	JobUC        domain.JobUsecase
	InquiryUC    domain.InquiryUsecase
	AdminUC      domain.AdminUsecase
	AuditRepo    *audit.Repository // nil when audit persistence is disabled
	JWKSProvider *auth.Provider
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.GlobalRateLimitMiddleware(deps.Config.RateLimitGlobalThreshold, deps.Config.RateLimitWindowSeconds))
	r.Use(middleware.CSRFMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.AuthUC))

	// Stricter limit on mutating requests
	writeLimit := middleware.RateLimitMiddleware(middleware.WriteRateLimitConfig(deps.Config.RateLimitWriteThreshold, deps.Config.RateLimitWindowSeconds))
	protected.Use(func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
		default:
			writeLimit(c)
		}
	})
	{
		NewAuthHandler(protected, deps.AuthUC, deps.Config)
		NewEmployerHandler(protected, deps.EmployerUC)
		NewJobSeekerHandler(protected, deps.JobSeekerUC, deps.Config)
		NewPortfolioHandler(protected, deps.PortfolioUC)
		NewFavoriteHandler(protected, deps.FavoriteUC)
		NewJobHandler(v1, protected, deps.JobUC)
		NewInquiryHandler(protected, deps.InquiryUC)
		NewAdminHandler(protected, deps.AdminUC, deps.ApprovalUC, deps.PortfolioUC, deps.AuditRepo)
	}

	return r
}
