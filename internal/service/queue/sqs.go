package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/shopstack/commerce-analytics-api/internal/config"
	"github.com/shopstack/commerce-analytics-api/internal/domain"
)

type MessageType string

const (
	MessageTypeIndexProduct  MessageType = "INDEX_PRODUCT"
	MessageTypeBulkIndex     MessageType = "BULK_INDEX"
	MessageTypeDeleteProduct MessageType = "DELETE_PRODUCT"
	MessageTypeExport        MessageType = "EXPORT"
)

// Message is the queue envelope. TenantID is always set: workers re-establish
// their own tenant scope from it before touching storage.
type Message struct {
	Type      MessageType      `json:"type"`
	TenantID  string           `json:"tenant_id"`
	Products  []domain.Product `json:"products,omitempty"`
	ProductID string           `json:"product_id,omitempty"`
	ExportJob string           `json:"export_job_id,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
}

type SQSService struct {
	client         *sqs.Client
	indexQueueURL  string
	exportQueueURL string
}

func NewSQSService(client *sqs.Client, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:         client,
		indexQueueURL:  config.IndexQueueURL,
		exportQueueURL: config.ExportQueueURL,
	}
}

func (s *SQSService) SendProductIndexMessage(ctx context.Context, product *domain.Product) error {
	msg := Message{
		Type:      MessageTypeIndexProduct,
		TenantID:  product.TenantID,
		Products:  []domain.Product{*product},
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendBulkIndexMessage(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	msg := Message{
		Type:      MessageTypeBulkIndex,
		TenantID:  products[0].TenantID,
		Products:  products,
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendProductDeleteMessage(ctx context.Context, tenantID, productID string) error {
	msg := Message{
		Type:      MessageTypeDeleteProduct,
		TenantID:  tenantID,
		ProductID: productID,
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendExportMessage(ctx context.Context, tenantID, exportJobID string) error {
	msg := Message{
		Type:      MessageTypeExport,
		TenantID:  tenantID,
		ExportJob: exportJobID,
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.exportQueueURL)
}

func (s *SQSService) sendMessage(ctx context.Context, msg Message, queueURL string) error {
	msgBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBody)),
		QueueUrl:    aws.String(queueURL),
	}

	_, err = s.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (s *SQSService) ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]ReceivedMessage, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	var messages []ReceivedMessage
	for _, msg := range output.Messages {
		var message Message
		if err := json.Unmarshal([]byte(*msg.Body), &message); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
		messages = append(messages, ReceivedMessage{
			Message:       message,
			ReceiptHandle: msg.ReceiptHandle,
		})
	}

	return messages, nil
}

func (s *SQSService) DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: receiptHandle,
	}

	_, err := s.client.DeleteMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
