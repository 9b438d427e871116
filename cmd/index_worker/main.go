package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/shopstack/commerce-analytics-api/internal/config"
	osrepo "github.com/shopstack/commerce-analytics-api/internal/repository/opensearch"
	"github.com/shopstack/commerce-analytics-api/internal/service/queue"
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

	// Initialize OpenSearch
	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}
	searchRepo := osrepo.NewRepository(osClient, osConfig)

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	// Start the index worker
	indexWorker := worker.NewIndexWorker(sqsService, searchRepo, appLogger, 1, 5*time.Second)
	indexWorker.Start()

	appLogger.Info("Index worker started, waiting for messages...")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down index worker...")
	indexWorker.Stop()
	appLogger.Sync()
}
