package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/txn_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/txn_dashboard/internal/core/ports/services"
	"github.com/SscSPs/txn_dashboard/internal/dto"
)

type dashboardService struct {
	BaseService
	transactions portssvc.TransactionReaderSvc
	reporting    portssvc.ReportingService
}

// NewDashboardService composes the listing and reporting services into the combined view.
func NewDashboardService(transactions portssvc.TransactionReaderSvc, reporting portssvc.ReportingService) portssvc.DashboardService {
	return &dashboardService{transactions: transactions, reporting: reporting}
}

var _ portssvc.DashboardService = (*dashboardService)(nil)

// Dashboard runs the listing and the three aggregations in order. The first
// failure aborts the whole view.
func (s *dashboardService) Dashboard(ctx context.Context, params dto.ListTransactionsParams) (*domain.Dashboard, error) {
	page, err := s.transactions.ListTransactions(ctx, params)
	if err != nil {
		return nil, err
	}
	stats, err := s.reporting.Statistics(ctx, params.Month)
	if err != nil {
		return nil, err
	}
	histogram, err := s.reporting.PriceHistogram(ctx, params.Month)
	if err != nil {
		return nil, err
	}
	categories, err := s.reporting.CategoryBreakdown(ctx, params.Month)
	if err != nil {
		return nil, err
	}

	s.LogDebug(ctx, "Dashboard assembled", slog.String("month", params.Month))
	return &domain.Dashboard{
		Transactions: *page,
		Statistics:   *stats,
		BarChart:     histogram,
		PieChart:     categories,
	}, nil
}
