package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/festwish/wish-service/environments"
	"github.com/festwish/wish-service/handlers"
	"github.com/festwish/wish-service/internal/card"
	"github.com/festwish/wish-service/internal/channel"
	"github.com/festwish/wish-service/internal/repository"
	"github.com/festwish/wish-service/internal/selector"
	"github.com/festwish/wish-service/internal/service"
	"github.com/festwish/wish-service/pkg/database"
	"github.com/festwish/wish-service/pkg/fetch"
	"github.com/festwish/wish-service/pkg/logger"
	"github.com/festwish/wish-service/pkg/redis"
	"github.com/festwish/wish-service/pkg/storage"
	"github.com/festwish/wish-service/pkg/validator"
	"github.com/festwish/wish-service/routes"

	_ "github.com/festwish/wish-service/docs" // swagger docs
)

// @title Festival Wish Service API
// @version 1.0
// @description Festival wish composition and card rendering service

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @schemes http https
func main() {
	logger.Init()

	// Load config
	cfg := environments.Load()

	// Hard-fail if required secrets are missing
	if cfg.Storage.ServiceKey == "" {
		logger.Fatalf("STORAGE_SERVICE_KEY is required but not set")
	}
	if cfg.Auth.ImagesAPIKey == "" {
		logger.Fatalf("IMAGES_API_KEY is required but not set")
	}

	logger.Infof("Starting Festival Wish Service...")

	// Init DB
	db, err := database.NewMySQLDB(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed reference data
	if os.Getenv("SEED_DATA") == "true" {
		if err := database.SeedReferenceData(db); err != nil {
			logger.Warnf("Failed to seed reference data: %v", err)
		}
	}

	// Init redis; the service runs without it, only card-url caching is lost
	var cardCache service.CardCache
	redisClient, err := redis.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Warnf("Redis not available, caching disabled: %v", err)
		redisClient = nil
	}
	if redisClient != nil {
		cardCache = redisClient
	}

	// Outbound clients
	blobClient := storage.NewClient(cfg.Storage)
	fetchClient := fetch.NewClient(cfg.Fetch.Timeout)

	// Card renderer; fonts are compiled in, so this only fails on a bad build
	renderer, err := card.NewRenderer()
	if err != nil {
		logger.Fatalf("Failed to initialize card renderer: %v", err)
	}

	// Delivery channels
	channelRegistry := channel.NewRegistry()

	// Repositories
	festivalRepo := repository.NewFestivalRepository(db)
	relationshipRepo := repository.NewRelationshipRepository(db)
	wishRepo := repository.NewWishRepository(db)
	userImageRepo := repository.NewUserImageRepository(db)

	// Content selection
	contentSelector := selector.New(festivalRepo, nil)

	// Services
	wishService := service.NewWishService(
		festivalRepo,
		relationshipRepo,
		wishRepo,
		userImageRepo,
		contentSelector,
		renderer,
		blobClient,
		fetchClient,
		channelRegistry,
		cardCache,
		cfg.Card.Width,
		cfg.Card.Height,
	)
	festivalService := service.NewFestivalService(festivalRepo)
	relationshipService := service.NewRelationshipService(relationshipRepo)
	imageService := service.NewImageService(userImageRepo, blobClient)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, redisClient)
	festivalHandler := handlers.NewFestivalHandler(festivalService)
	relationshipHandler := handlers.NewRelationshipHandler(relationshipService)
	wishHandler := handlers.NewWishHandler(wishService, channelRegistry)
	imageHandler := handlers.NewImageHandler(imageService)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			"x-api-key",
		},
	}))

	// Setup routes
	routes.RegisterRoutes(e, healthHandler, festivalHandler, relationshipHandler, wishHandler, imageHandler, cfg)

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Infof("Server starting on http://localhost%s", addr)
		logger.Infof("Swagger docs available at http://localhost%s/swagger/index.html", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("Shutting down gracefully...")

	// Shutdown HTTP server (with timeout)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	logger.Infof("Shutting down HTTP server...")
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	} else {
		logger.Infof("HTTP server stopped successfully")
	}

	// Close database connection
	logger.Infof("Closing database connection...")
	if err := db.Close(); err != nil {
		logger.Errorf("Error closing database: %v", err)
	}

	// Close Redis connection
	if redisClient != nil {
		logger.Infof("Closing Redis connection...")
		if err := redisClient.Close(); err != nil {
			logger.Errorf("Error closing Redis: %v", err)
		}
	}

	logger.Infof("Graceful shutdown completed")
}
