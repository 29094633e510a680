package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/txn_dashboard/internal/apperrors"
	"github.com/SscSPs/txn_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/txn_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/txn_dashboard/internal/core/ports/services"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
}

// NewReportingService creates the month aggregation service.
func NewReportingService(repo portsrepo.TransactionReader) portssvc.ReportingService {
	return &reportingService{transactionRepo: repo}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// monthRecords resolves the month and loads every record sold in it.
func (s *reportingService) monthRecords(ctx context.Context, month string) ([]domain.Transaction, error) {
	monthIndex, err := domain.ResolveMonth(month)
	if err != nil {
		return nil, err
	}
	records, err := s.transactionRepo.FindTransactions(ctx, domain.MonthFilter(monthIndex), 0, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to load month records", slog.String("month", month))
		return nil, fmt.Errorf("%w: loading %s records: %v", apperrors.ErrQueryFailed, month, err)
	}
	return records, nil
}

// Statistics sums sale amounts and counts sold and unsold records for a month.
func (s *reportingService) Statistics(ctx context.Context, month string) (*domain.Statistics, error) {
	records, err := s.monthRecords(ctx, month)
	if err != nil {
		return nil, err
	}
	stats := domain.ComputeStatistics(records)

	s.LogDebug(ctx, "Statistics computed",
		slog.String("month", month),
		slog.String("total_sale_amount", stats.TotalSaleAmount.String()),
		slog.Int("sold", stats.TotalSoldItems),
		slog.Int("not_sold", stats.TotalNotSoldItems))
	return &stats, nil
}

// PriceHistogram counts a month's records per fixed price bucket.
func (s *reportingService) PriceHistogram(ctx context.Context, month string) (domain.PriceHistogram, error) {
	records, err := s.monthRecords(ctx, month)
	if err != nil {
		return nil, err
	}
	return domain.ComputePriceHistogram(records), nil
}

// CategoryBreakdown counts a month's records per category.
func (s *reportingService) CategoryBreakdown(ctx context.Context, month string) ([]domain.CategoryCount, error) {
	records, err := s.monthRecords(ctx, month)
	if err != nil {
		return nil, err
	}
	return domain.CountCategories(records), nil
}
