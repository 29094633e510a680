package handlers_test

import (
	"context"

	"github.com/SscSPs/txn_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/txn_dashboard/internal/core/ports/services"
	"github.com/SscSPs/txn_dashboard/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*domain.TransactionPage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Statistics(ctx context.Context, month string) (*domain.Statistics, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

func (m *MockReportingService) PriceHistogram(ctx context.Context, month string) (domain.PriceHistogram, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.PriceHistogram), args.Error(1)
}

func (m *MockReportingService) CategoryBreakdown(ctx context.Context, month string) ([]domain.CategoryCount, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryCount), args.Error(1)
}

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Dashboard(ctx context.Context, params dto.ListTransactionsParams) (*domain.Dashboard, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

// --- Mock SeedService ---
type MockSeedService struct {
	mock.Mock
}

func (m *MockSeedService) Seed(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.TransactionReaderSvc = (*MockTransactionService)(nil)
	_ portssvc.ReportingService     = (*MockReportingService)(nil)
	_ portssvc.DashboardService     = (*MockDashboardService)(nil)
	_ portssvc.SeedSvc              = (*MockSeedService)(nil)
)
