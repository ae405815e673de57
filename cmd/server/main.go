package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"grievance-redressal/internal/config"
	"grievance-redressal/internal/database"
	"grievance-redressal/internal/handlers"
	"grievance-redressal/internal/middleware"
	"grievance-redressal/internal/repositories"
	"grievance-redressal/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err.Error())
		os.Exit(1)
	}

	userRepo := repositories.NewUserRepository(db.DB)
	grievanceRepo := repositories.NewGrievanceRepository(db.DB)

	metrics := services.NewPrometheusMetrics()
	passwordService := services.NewPasswordService()
	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(userRepo, passwordService, tokenService, metrics, logger)
	grievanceService := services.NewGrievanceService(grievanceRepo, userRepo, metrics, logger)
	analyticsService := services.NewAnalyticsService(grievanceRepo, metrics, logger, &cfg.Analytics)

	seedAdminUser(db, passwordService, logger)

	// Legacy flat-file exports from the console tool can be analyzed once
	// on boot to sanity check the data before it is imported.
	if cfg.Analytics.RecordsFile != "" {
		if stats, err := analyticsService.AnalyzeFile(cfg.Analytics.RecordsFile); err != nil {
			logger.Warn("Legacy records analysis failed",
				"path", cfg.Analytics.RecordsFile,
				"error", err.Error(),
			)
		} else {
			logger.Info("Legacy records analyzed",
				"path", cfg.Analytics.RecordsFile,
				"total", stats.Total,
				"resolution_rate", stats.ResolutionRate,
			)
		}
	}

	authHandler := handlers.NewAuthHandler(authService)
	grievanceHandler := handlers.NewGrievanceHandler(grievanceService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/profile", authHandler.GetProfile, middleware.RequireAuth(tokenService))

	grievances := api.Group("/grievances", middleware.RequireAuth(tokenService))
	grievances.POST("", grievanceHandler.Submit)
	grievances.GET("", grievanceHandler.List)
	grievances.GET("/categories", grievanceHandler.ListCategories)
	grievances.GET("/:id", grievanceHandler.GetByID)
	grievances.PUT("/:id/status", grievanceHandler.UpdateStatus, middleware.RequireAdmin())

	analyticsGroup := api.Group("/analytics", middleware.RequireAuth(tokenService), middleware.RequireAdmin())
	analyticsGroup.GET("/summary", analyticsHandler.GetSummary)
	analyticsGroup.GET("/matrix", analyticsHandler.GetMatrix)
	analyticsGroup.GET("/report", analyticsHandler.GetReport)
	analyticsGroup.GET("/export", analyticsHandler.ExportCSV)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server",
			"address", server.Addr,
			"environment", cfg.Server.Environment,
		)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			logger.Error("Server stopped unexpectedly", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Forced server shutdown", "error", err.Error())
	}

	if err := db.Close(); err != nil {
		logger.Error("Failed to close database", "error", err.Error())
	}

	logger.Info("Server exited")
}

// seedAdminUser provisions the administrator account from environment
// variables on first boot. Registration only creates student accounts,
// so without this there would be no way to triage grievances.
func seedAdminUser(db *database.DB, passwordService services.PasswordServiceInterface, logger *slog.Logger) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logger.Info("Admin seeding skipped, ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return
	}

	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Grievance Administrator"
	}

	hash, err := passwordService.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash admin password", "error", err.Error())
		return
	}

	admin, err := db.SeedAdminUser(email, hash, name)
	if err != nil {
		logger.Error("Failed to seed admin user", "error", err.Error())
		return
	}

	logger.Info("Admin user ready", "email", admin.Email, "user_id", admin.ID.String())
}
