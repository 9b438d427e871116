package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopstack/commerce-analytics-api/internal/api/dto"
	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/mocks"
	"github.com/shopstack/commerce-analytics-api/pkg/logger"
)

type ExportServiceTestSuite struct {
	suite.Suite
	mockRepo   *mocks.Repository
	mockExport *mocks.ExportJobRepository
	mockSQS    *mocks.SQSService
	service    *ExportService
}

func (s *ExportServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockExport = new(mocks.ExportJobRepository)
	s.mockSQS = new(mocks.SQSService)

	s.mockRepo.On("ExportJob").Return(s.mockExport)

	s.service = NewExportService(s.mockRepo, s.mockSQS, nil, logger.NewLogger("test"))
}

func TestExportService(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}

func (s *ExportServiceTestSuite) TestSchedule_Success() {
	ctx := context.Background()
	req := dto.CreateExportRequest{
		Resource:  "orders",
		Format:    "xlsx",
		StartTime: "2024-03-01",
		EndTime:   "2024-03-31",
	}

	s.mockExport.On("Create", ctx, mock.AnythingOfType("*domain.ExportJob")).Return(nil).Run(func(args mock.Arguments) {
		job := args.Get(1).(*domain.ExportJob)
		// Simulate what the write path does: stamp identifiers
		job.ID = "job-1"
		job.TenantID = "t1"
		s.Equal(domain.ExportStatusPending, job.Status)
		s.Equal(domain.ExportResourceOrders, job.Resource)
		s.Equal(domain.ExportFormatXLSX, job.Format)
	})
	s.mockSQS.On("SendExportMessage", ctx, "t1", "job-1").Return(nil)

	resp, err := s.service.Schedule(ctx, req)

	s.NoError(err)
	s.Equal("job-1", resp.ID)
	s.mockSQS.AssertExpectations(s.T())
}

func (s *ExportServiceTestSuite) TestSchedule_DefaultsToCSV() {
	ctx := context.Background()
	req := dto.CreateExportRequest{Resource: "products"}

	s.mockExport.On("Create", ctx, mock.AnythingOfType("*domain.ExportJob")).Return(nil).Run(func(args mock.Arguments) {
		job := args.Get(1).(*domain.ExportJob)
		s.Equal(domain.ExportFormatCSV, job.Format)
	})
	s.mockSQS.On("SendExportMessage", ctx, mock.Anything, mock.Anything).Return(nil)

	_, err := s.service.Schedule(ctx, req)

	s.NoError(err)
}

func (s *ExportServiceTestSuite) TestSchedule_UnknownResourceRejected() {
	_, err := s.service.Schedule(context.Background(), dto.CreateExportRequest{Resource: "invoices"})

	s.ErrorIs(err, ErrInvalidExportResource)
	s.mockExport.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ExportServiceTestSuite) TestSchedule_UnknownFormatRejected() {
	_, err := s.service.Schedule(context.Background(), dto.CreateExportRequest{
		Resource: "orders",
		Format:   "pdf",
	})

	s.ErrorIs(err, ErrInvalidExportFormat)
	s.mockExport.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ExportServiceTestSuite) TestSchedule_BadWindowRejected() {
	_, err := s.service.Schedule(context.Background(), dto.CreateExportRequest{
		Resource:  "orders",
		StartTime: "2024-03-31",
		EndTime:   "2024-03-01",
	})

	s.Error(err)
	s.mockExport.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ExportServiceTestSuite) TestSchedule_EnqueueFailureSurfaces() {
	ctx := context.Background()
	req := dto.CreateExportRequest{Resource: "customers"}

	s.mockExport.On("Create", ctx, mock.AnythingOfType("*domain.ExportJob")).Return(nil)
	s.mockSQS.On("SendExportMessage", ctx, mock.Anything, mock.Anything).Return(errors.New("queue down"))

	_, err := s.service.Schedule(ctx, req)

	s.Error(err)
}

func (s *ExportServiceTestSuite) TestRunJob_SkipsNonPendingJob() {
	ctx := context.Background()

	s.mockExport.On("GetForWorker", ctx, "job-1", "t1").Return(&domain.ExportJob{
		ID:       "job-1",
		TenantID: "t1",
		Status:   domain.ExportStatusCompleted,
	}, nil)

	err := s.service.RunJob(ctx, "t1", "job-1")

	s.NoError(err)
	s.mockExport.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *ExportServiceTestSuite) TestRunJob_MissingJobFails() {
	ctx := context.Background()

	s.mockExport.On("GetForWorker", ctx, "ghost", "t1").Return(nil, domain.ErrNotFound)

	err := s.service.RunJob(ctx, "t1", "ghost")

	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *ExportServiceTestSuite) TestRows_OrdersUseRequestedWindow() {
	ctx := context.Background()
	mockOrders := new(mocks.OrderRepository)
	s.mockRepo.On("Order").Return(mockOrders)

	mockOrders.On("List", ctx, mock.MatchedBy(func(f domain.OrderFilter) bool {
		return f.StartTime.Year() == 2026 && f.EndTime.After(f.StartTime) && f.Limit == exportRowLimit
	})).Return([]domain.Order{
		{OrderNumber: "ORD-1", Status: domain.OrderStatusDelivered, TotalAmount: 29.99},
	}, nil)

	header, rows, err := s.service.Rows(ctx, "orders", "2026-01-01", "2026-01-31")

	s.NoError(err)
	s.Equal(orderExportHeader, header)
	s.Len(rows, 1)
	s.Equal("ORD-1", rows[0][0])
}

func (s *ExportServiceTestSuite) TestRows_UnknownResourceRejected() {
	_, _, err := s.service.Rows(context.Background(), "invoices", "", "")

	s.ErrorIs(err, ErrInvalidExportResource)
}

func (s *ExportServiceTestSuite) TestRows_BadWindowRejected() {
	_, _, err := s.service.Rows(context.Background(), "orders", "2026-02-01", "2026-01-01")

	s.ErrorIs(err, ErrInvalidExportWindow)
}
