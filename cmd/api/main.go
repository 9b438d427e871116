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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/shopstack/commerce-analytics-api/docs"
	"github.com/shopstack/commerce-analytics-api/internal/api"
	"github.com/shopstack/commerce-analytics-api/internal/config"
	"github.com/shopstack/commerce-analytics-api/internal/metrics"
	"github.com/shopstack/commerce-analytics-api/internal/middleware"
	"github.com/shopstack/commerce-analytics-api/internal/repository/composite"
	"github.com/shopstack/commerce-analytics-api/internal/service"
	"github.com/shopstack/commerce-analytics-api/internal/service/pubsub"
	"github.com/shopstack/commerce-analytics-api/internal/service/queue"
	"github.com/shopstack/commerce-analytics-api/internal/service/storage"
	"github.com/shopstack/commerce-analytics-api/pkg/logger"
)

// @title           Commerce Analytics Swagger API
// @version         1.0
// @description     Multi-tenant commerce and analytics backend.

// @host      localhost:10000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	appLogger.Info("Database connections established - writer and reader connected")

	// Initialize OpenSearch
	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}

	// Initialize Redis
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	// Initialize Redis pub/sub
	redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger)

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	// Initialize S3 for export artifacts
	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to connect to S3", err)
	}
	objectStore := storage.NewObjectStore(s3Client, s3Config, appLogger)

	repo := composite.NewCompositeRepository(dbConnections, osClient, osConfig)

	// Initialize metrics
	apiMetrics := metrics.NewAPIMetrics()

	// Initialize services
	tenantService := service.NewTenantService(repo, redisClient,
		time.Duration(cfg.TenantCacheTTLSecs)*time.Second, appLogger)
	tenantService.SetMetrics(apiMetrics)
	productService := service.NewProductService(repo, sqsService, appLogger)
	customerService := service.NewCustomerService(repo)
	orderService := service.NewOrderService(repo, appLogger)
	paymentService := service.NewPaymentService(repo, appLogger)
	analyticsService := service.NewAnalyticsService(repo)
	exportService := service.NewExportService(repo, sqsService, objectStore, appLogger)

	// Initialize middleware
	tenantMiddleware := middleware.NewTenantMiddleware(tenantService, appLogger)
	authMiddleware := middleware.NewAuthMiddleware(cfg)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	// Initialize server
	server := api.NewServer(
		tenantService,
		productService,
		customerService,
		orderService,
		paymentService,
		analyticsService,
		exportService,
		tenantMiddleware,
		authMiddleware,
		rateLimitMiddleware,
		validationMiddleware,
		apiMetrics,
		appLogger,
		redisPubSub,
	)

	// Wire up the live order stream
	orderService.SetOrderBroadcaster(server.GetWebSocketHandler())
	server.StartWebSocketHub()

	// Initialize router
	router := gin.Default()

	// Swagger documentation endpoint
	docs.SwaggerInfo.Title = "Commerce Analytics API"
	docs.SwaggerInfo.Description = "Multi-tenant commerce and analytics backend"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Swagger UI endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Prometheus scrape endpoint
	router.GET("/metrics", metrics.Handler())

	// Setup API routes
	apiGroup := router.Group("/api/v1")
	server.SetupRoutes(apiGroup)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	// Shutdown the HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
