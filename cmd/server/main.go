package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cap-recommender/internal/config"
	"cap-recommender/internal/database"
	"cap-recommender/internal/handlers"
	"cap-recommender/internal/middleware"
	"cap-recommender/internal/models"
	"cap-recommender/internal/repositories"
	"cap-recommender/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @title CAP College Recommender API
// @version 1.0
// @description College recommendation backend over CAP admission cutoff data.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	permissionRepo := repositories.NewPermissionRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	blacklistedTokenRepo := repositories.NewBlacklistedTokenRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)
	collegeRepo := repositories.NewCollegeRepository(db)
	cutoffRepo := repositories.NewCutoffRepository(db)
	rankedRepo := repositories.NewRankedCollegeRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	suggestLog := services.NewSuggestionLogger(logger)
	auditService := services.NewAuditService(auditRepo)
	passwordService := services.NewPasswordService(userRepo, auditService)
	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(
		userRepo, refreshTokenRepo, auditRepo, blacklistedTokenRepo,
		passwordService, tokenService, roleRepo, logger,
	)
	resolver := services.NewEligibilityResolver()
	normalizer := services.NewBranchNormalizer()
	suggestionService := services.NewSuggestionService(
		cutoffRepo, collegeRepo, rankedRepo,
		resolver, normalizer, suggestLog, metrics, cfg.Suggestions,
	)
	dataService := services.NewDataService(
		collegeRepo, cutoffRepo, rankedRepo,
		normalizer, auditService, suggestLog, metrics,
	)
	userAdminService := services.NewUserAdminService(
		userRepo, roleRepo, permissionRepo, passwordService, auditService,
	)

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db)
	docsHandler := handlers.NewDocsHandler()
	authHandler := handlers.NewAuthHandler(authService)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService, auditService)
	profileHandler := handlers.NewProfileHandler(userAdminService, passwordService, auditService)
	adminHandler := handlers.NewAdminHandler(userAdminService, passwordService, auditService, userRepo, auditRepo)
	dataHandler := handlers.NewDataHandler(dataService)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/docs", docsHandler.ServeScalarUI)
	e.GET("/docs/swagger.json", docsHandler.ServeOAS3JSON)

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)
	auth.POST("/logout", authHandler.Logout)

	// Suggestion endpoints are public; authenticated requests additionally
	// get their runs recorded in the audit trail.
	api.GET("/suggestions", suggestionHandler.SuggestColleges)
	api.GET("/suggestions/details", suggestionHandler.CollegeDetails)
	api.GET("/suggestions/statistics", suggestionHandler.Statistics)
	api.GET("/branches", suggestionHandler.AvailableBranches)
	api.GET("/branches/mappings", suggestionHandler.BranchMappings)
	api.GET("/branches/top-colleges", suggestionHandler.TopColleges)
	api.GET("/regions", suggestionHandler.AvailableRegions)

	requireAuth := middleware.RequireAuth(tokenService, blacklistedTokenRepo)

	me := api.Group("/users/me", requireAuth)
	me.GET("", profileHandler.GetMyProfile)
	me.PUT("/password", profileHandler.UpdateMyPassword)
	me.GET("/activity", profileHandler.GetMyActivity)

	admin := api.Group("/admin", requireAuth, middleware.RequireAdmin())
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/search", adminHandler.SearchUsers)
	admin.POST("/users", adminHandler.CreateUser)
	admin.GET("/users/:userId", adminHandler.GetUserByID)
	admin.PUT("/users/:userId", adminHandler.UpdateUserProfile)
	admin.DELETE("/users/:userId", adminHandler.DeleteUser)
	admin.POST("/users/:userId/unlock", adminHandler.UnlockUser)
	admin.POST("/users/:userId/reset-password", adminHandler.ResetUserPassword)
	admin.POST("/users/:userId/roles", adminHandler.AssignRole)
	admin.DELETE("/users/:userId/roles/:role", adminHandler.RevokeRole)
	admin.GET("/users/:userId/activity", adminHandler.GetUserActivity)
	admin.GET("/roles", adminHandler.ListRoles)
	admin.GET("/permissions", adminHandler.ListPermissions)

	data := admin.Group("/data")
	data.GET("/overview", dataHandler.Overview)
	data.POST("/rebuild-rankings", dataHandler.RebuildRankings,
		middleware.RequirePermission(roleRepo, models.PermissionWriteColleges))
	data.POST("/clear-year", dataHandler.ClearYear,
		middleware.RequirePermission(roleRepo, models.PermissionDeleteColleges))
	data.POST("/clear", dataHandler.ClearAll,
		middleware.RequirePermission(roleRepo, models.PermissionDeleteColleges))

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(collegeRepo, cutoffRepo, userRepo, dataService, passwordService)
		dev := api.Group("/dev", requireAuth)
		dev.POST("/seed", devHandler.SeedSampleData)
		logger.Info("Development seed endpoint enabled at /api/v1/dev/seed")
	}

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("Starting server", "addr", addr, "env", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}
