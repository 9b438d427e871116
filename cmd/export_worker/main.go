package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/shopstack/commerce-analytics-api/internal/config"
	"github.com/shopstack/commerce-analytics-api/internal/repository/composite"
	"github.com/shopstack/commerce-analytics-api/internal/service"
	"github.com/shopstack/commerce-analytics-api/internal/service/queue"
	"github.com/shopstack/commerce-analytics-api/internal/service/storage"
	"github.com/shopstack/commerce-analytics-api/internal/worker"
	"github.com/shopstack/commerce-analytics-api/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	// Initialize OpenSearch
	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}

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
	exportService := service.NewExportService(repo, sqsService, objectStore, appLogger)

	// Start the export worker
	exportWorker := worker.NewExportWorker(sqsService, exportService, appLogger, 1, 5*time.Second)
	exportWorker.Start()

	appLogger.Info("Export worker started, waiting for messages...")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down export worker...")
	exportWorker.Stop()
	appLogger.Sync()
}
