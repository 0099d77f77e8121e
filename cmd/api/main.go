package main

import (
	"context"
	"go-jobmatch-backend/config"
	_ "go-jobmatch-backend/docs" // Important for Swagger
	v1 "go-jobmatch-backend/internal/delivery/http/v1"
	"go-jobmatch-backend/internal/repository/postgres"
	"go-jobmatch-backend/internal/usecase"
	"go-jobmatch-backend/pkg/audit"
	"go-jobmatch-backend/pkg/auth"
	"go-jobmatch-backend/pkg/database"
	"go-jobmatch-backend/pkg/email"
	"go-jobmatch-backend/pkg/logger"
	"go-jobmatch-backend/pkg/redis"
	"go-jobmatch-backend/pkg/validation"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
)

// @title           Job Match Backend API
// @version         1.0
// @description     Backend for the job matching platform using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting jobmatch backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting); in-memory fallback when unavailable
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	employerRepo := postgres.NewEmployerRepository(dbPool)
	jobSeekerRepo := postgres.NewJobSeekerRepository(dbPool)
	portfolioRepo := postgres.NewPortfolioRepository(dbPool)
	favoriteRepo := postgres.NewFavoriteRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	inquiryRepo := postgres.NewInquiryRepository(dbPool)
	adminRepo := postgres.NewAdminRepository(dbPool)

	// 6. Setup Notifier and Audit Trail
	notifier := email.NewNotifier(cfg)
	if !notifier.IsConfigured() {
		logger.Log.Warn("SMTP not configured - decision and inquiry emails disabled")
	}

	var auditRepo *audit.Repository
	if cfg.AuditToDB {
		auditRepo = audit.NewRepository(dbPool)
	}
	trail := audit.NewTrail(auditRepo)
	defer trail.Close()

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	authUC := usecase.NewAuthUsecase(userRepo, employerRepo)
	accessUC := usecase.NewAccessUsecase(userRepo, employerRepo)
	employerUC := usecase.NewEmployerUsecase(employerRepo, validate)
	approvalUC := usecase.NewApprovalUsecase(employerRepo, userRepo, notifier, trail)
	jobSeekerUC := usecase.NewJobSeekerUsecase(jobSeekerRepo, portfolioRepo, validate)
	portfolioUC := usecase.NewPortfolioUsecase(portfolioRepo, jobSeekerRepo, userRepo, accessUC)
	favoriteUC := usecase.NewFavoriteUsecase(favoriteRepo, employerRepo, portfolioRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, employerRepo, validate)
	inquiryUC := usecase.NewInquiryUsecase(inquiryRepo, employerRepo, portfolioRepo, userRepo, notifier, validate)
	adminUC := usecase.NewAdminUsecase(adminRepo)

	// 8. Setup Auth Provider (JWKS)
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		EmployerUC:   employerUC,
		ApprovalUC:   approvalUC,
		JobSeekerUC:  jobSeekerUC,
		PortfolioUC:  portfolioUC,
		FavoriteUC:   favoriteUC,
		JobUC:        jobUC,
		InquiryUC:    inquiryUC,
		AdminUC:      adminUC,
		AuditRepo:    auditRepo,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
