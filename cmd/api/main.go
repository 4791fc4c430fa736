package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rolecrm/internal/config"
	"rolecrm/internal/database"
	"rolecrm/internal/handlers"
	"rolecrm/internal/logger"
	"rolecrm/internal/middleware"
	"rolecrm/internal/seed"
	"rolecrm/internal/services"
	"rolecrm/internal/storage"
	"rolecrm/internal/validator"

	_ "rolecrm/internal/docs" // Import swagger docs
)

// @title           RoleCRM API
// @version         1.0
// @description     RoleCRM is a contact manager whose every page, action and contact field is gated by a per-role permission table.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	db := dbManager.DB()
	if appConfig.SeedData {
		if err := seed.EnsureUsers(db); err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
	}

	// Initialize services
	store := storage.NewStore(db)
	userService := services.NewUserService(db)

	var authenticator services.Authenticator
	if appConfig.UseMockBackend {
		authenticator = services.NewMockAuthenticator(userService, appConfig.MockLatency)
		log.Infow("using mock authentication backend", "latency", appConfig.MockLatency)
	} else {
		authenticator = services.NewRemoteAuthenticator(appConfig.APIBaseURL, &http.Client{Timeout: 10 * time.Second})
		log.Infow("using remote authentication backend", "base_url", appConfig.APIBaseURL)
	}

	deps := handlers.Dependencies{
		Sessions:    services.NewSessionService(store, authenticator),
		Permissions: services.NewPermissionService(store),
		Activity:    services.NewActivityService(store, userService),
		Users:       userService,
		Contacts:    services.NewContactService(db, appConfig.MockLatency),
		Preferences: services.NewPreferenceService(store),
		Tokens:      middleware.NewTokenManager(appConfig.JWTSecret, appConfig.JWTExpirationDur),
	}

	validator.Register()

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handlers.RegisterRoutes(router, deps)

	log.Infof("Starting RoleCRM backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
