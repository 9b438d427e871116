package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopstack/commerce-analytics-api/internal/config"
	"github.com/shopstack/commerce-analytics-api/internal/service"
	"github.com/shopstack/commerce-analytics-api/internal/service/queue"
	"github.com/shopstack/commerce-analytics-api/pkg/logger"
)

// ExportWorker drains the export queue and runs export jobs. The export
// service re-establishes tenant scope from the message's tenant id before
// reading any data.
type ExportWorker struct {
	sqsService   *queue.SQSService
	exportSvc    *service.ExportService
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewExportWorker(
	sqsService *queue.SQSService,
	exportSvc *service.ExportService,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *ExportWorker {
	return &ExportWorker{
		sqsService:   sqsService,
		exportSvc:    exportSvc,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10,
		waitTime:     20,
		shutdownChan: make(chan struct{}),
	}
}

func (w *ExportWorker) Start() {
	w.logger.Info("Starting export workers...")

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *ExportWorker) Stop() {
	w.logger.Info("Stopping export workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All export workers stopped")
}

func (w *ExportWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Export worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Export worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Export worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *ExportWorker) processMessages(ctx context.Context) error {
	exportQueueURL := config.DefaultSQSConfig().ExportQueueURL

	messages, err := w.sqsService.ReceiveMessages(ctx, exportQueueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if msg.Message.Type != queue.MessageTypeExport {
			w.logger.Warnf("Skipping message of unexpected type %s", msg.Message.Type)
			continue
		}

		if err := w.processExportMessage(ctx, msg.Message); err != nil {
			w.logger.Errorf("Failed to process export message: %v", err)
			continue
		}

		if err := w.sqsService.DeleteMessage(ctx, exportQueueURL, msg.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}

func (w *ExportWorker) processExportMessage(ctx context.Context, msg queue.Message) error {
	if msg.TenantID == "" || msg.ExportJob == "" {
		return fmt.Errorf("export message missing tenant id or job id")
	}

	w.logger.Infof("Running export job %s for tenant %s", msg.ExportJob, msg.TenantID)
	return w.exportSvc.RunJob(ctx, msg.TenantID, msg.ExportJob)
}
