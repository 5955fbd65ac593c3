package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/meetsum/meeting-summarizer/pkg/validator"

	"github.com/meetsum/meeting-summarizer/internal/adapter/handler"
	"github.com/meetsum/meeting-summarizer/internal/adapter/repository"
	"github.com/meetsum/meeting-summarizer/internal/infrastructure/cache"
	"github.com/meetsum/meeting-summarizer/internal/infrastructure/database"
	"github.com/meetsum/meeting-summarizer/internal/infrastructure/storage"
	"github.com/meetsum/meeting-summarizer/internal/usecase/actionitem"
	"github.com/meetsum/meeting-summarizer/internal/usecase/analytics"
	"github.com/meetsum/meeting-summarizer/internal/usecase/auth"
	llmuse "github.com/meetsum/meeting-summarizer/internal/usecase/llm"
	"github.com/meetsum/meeting-summarizer/internal/usecase/meeting"
	"github.com/meetsum/meeting-summarizer/internal/usecase/processing"
	"github.com/meetsum/meeting-summarizer/internal/usecase/queue"
	"github.com/meetsum/meeting-summarizer/pkg/config"
	"github.com/meetsum/meeting-summarizer/pkg/jwt"
	pkgllm "github.com/meetsum/meeting-summarizer/pkg/llm"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if cfg.Server.Environment == "development" {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Apply schema migrations when explicitly enabled in config.
	// Production deployments should run migrations from CI/CD instead.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("DB_AUTO_MIGRATE is enabled in production. Run migrations from CI/CD instead.")
		}
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; apply them with scripts/migrate.go or CI/CD")
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	actionRepo := repository.NewActionItemRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize LLM extraction pipeline
	log.Println("🤖 Initializing extraction pipeline...")
	groqClient := pkgllm.NewGroqClient(&cfg.Groq)
	googleClient := pkgllm.NewGoogleClient(&cfg.GoogleAI)
	gateway := llmuse.NewGateway([]pkgllm.Provider{groqClient, googleClient}, logger)
	if !groqClient.Available() && !googleClient.Available() {
		log.Println("⚠️  No LLM provider configured; summaries fall back to the deterministic generator")
	}
	processor := processing.NewService(meetingRepo, gateway, logger)

	// Initialize the processing queue
	var jobQueue queue.Queue
	switch cfg.Worker.QueueBackend {
	case "redis":
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		jobQueue = queue.NewRedisQueue(redisClient, processor, logger)
	default:
		jobQueue = queue.NewInProcessQueue(cfg.Worker.QueueDepth, processor, logger)
	}

	workerCtx, stopWorkerCtx := context.WithCancel(context.Background())
	defer stopWorkerCtx()
	if err := jobQueue.StartWorkers(workerCtx, cfg.Worker.Count); err != nil {
		log.Fatalf("Failed to start workers: %v", err)
	}

	// Initialize object storage (optional)
	var archiver meeting.Archiver
	if cfg.Storage.Enabled {
		log.Println("📦 Connecting to object storage...")
		minioClient, err := storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to object storage: %v", err)
		}
		archiver = minioClient
	}

	// Initialize JWT manager and auth service
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	authService := auth.NewService(userRepo, jwtManager, logger)

	// Initialize services
	log.Println("✨ Initializing services...")
	meetingService := meeting.NewService(meetingRepo, jobQueue, archiver, cfg.Upload.MaxFileSize, logger)
	actionService := actionitem.NewService(actionRepo, meetingRepo, logger)
	analyticsService := analytics.NewService(analyticsRepo, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	authHandler := handler.NewAuthHandler(authService, userRepo, logger)
	meetingHandler := handler.NewMeetingHandler(meetingService, actionService, logger)
	actionHandler := handler.NewActionItemHandler(actionService, logger)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, authService, authHandler, meetingHandler, actionHandler, analyticsHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	if err := jobQueue.StopWorkers(); err != nil {
		log.Printf("❌ Worker shutdown error: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
