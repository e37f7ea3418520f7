package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/skillpath/learning-service/internal/ai"
	"github.com/skillpath/learning-service/internal/config"
	"github.com/skillpath/learning-service/internal/events"
	"github.com/skillpath/learning-service/internal/handlers"
	"github.com/skillpath/learning-service/internal/repositories/casdoor"
	"github.com/skillpath/learning-service/internal/services"
	"github.com/skillpath/learning-service/internal/store"
	"github.com/skillpath/learning-service/internal/utils"
	"github.com/skillpath/learning-service/internal/validator"
	"github.com/skillpath/learning-service/pkg"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	// Initialize the key-value store. A missing connection degrades the
	// storage-backed routes rather than failing startup.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = pkg.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Warning: Failed to connect to key-value store: %v", err)
		}
	} else {
		log.Printf("Warning: REDIS_URL not set, storage-backed routes will be unavailable")
	}
	kv := store.NewKV(redisClient)

	// Initialize the identity provider registry
	userRegistry := casdoor.NewUserRegistry(casdoor.Config{
		Endpoint:         cfg.Casdoor.Endpoint,
		ClientID:         cfg.Casdoor.ClientID,
		ClientSecret:     cfg.Casdoor.ClientSecret,
		Certificate:      cfg.Casdoor.Cert,
		OrganizationName: cfg.Casdoor.Organization,
		ApplicationName:  cfg.Casdoor.Application,
	})

	// Initialize completion providers. Groq serves roadmaps and chat,
	// Gemini serves topic content. Missing keys degrade per route.
	groqProvider := ai.NewGroqProvider(cfg.GroqAPIKey)
	geminiProvider := ai.NewGeminiProvider(cfg.GeminiAPIKey)

	// Initialize the in-process event bus and its logging subscriber
	publisher := events.NewGoChannelEventPublisher(slogLogger)
	busCtx, busCancel := context.WithCancel(context.Background())
	defer busCancel()
	if err := events.StartLoggingSubscriber(busCtx, publisher,
		events.TypeAchievementUnlocked,
		events.TypeRoadmapGenerated,
		events.TypeModuleCompleted,
	); err != nil {
		log.Fatalf("Failed to start event subscriber: %v", err)
	}

	// Initialize validator
	v := validator.New()

	// Initialize services
	serviceManager := services.NewServiceManager(services.Dependencies{
		KV:              kv,
		Registry:        userRegistry,
		RoadmapProvider: groqProvider,
		ContentProvider: geminiProvider,
		Publisher:       publisher,
		Logger:          slogLogger,
		Validator:       v,
	})

	// Initialize handlers
	handlerManager := handlers.NewHandlerManager(serviceManager, logger, cfg.Casdoor, handlers.HealthInfo{
		Environment:      cfg.Environment,
		GroqConfigured:   groqProvider.Configured(),
		GeminiConfigured: geminiProvider.Configured(),
	})

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Setup middleware
	handlers.SetupMiddleware(router, logger)

	// Setup routes
	handlerManager.SetupRoutes(router)

	// Create HTTP server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	// Shutdown services (closes the event bus)
	if err := serviceManager.Shutdown(ctx); err != nil {
		log.Printf("Failed to shutdown services: %v", err)
	}

	// Close the key-value store connection
	if redisClient != nil {
		redisClient.Close()
	}

	logger.Info("Server exited")
}
