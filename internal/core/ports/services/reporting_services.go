package services

import (
	"context"

	"github.com/SscSPs/txn_dashboard/internal/core/domain"
	"github.com/SscSPs/txn_dashboard/internal/dto"
)

// ReportingService defines the month aggregations shown on the dashboard
type ReportingService interface {
	// Statistics sums sale amounts and counts sold and unsold records for a month.
	Statistics(ctx context.Context, month string) (*domain.Statistics, error)

	// PriceHistogram counts a month's records per fixed price bucket.
	PriceHistogram(ctx context.Context, month string) (domain.PriceHistogram, error)

	// CategoryBreakdown counts a month's records per category.
	CategoryBreakdown(ctx context.Context, month string) ([]domain.CategoryCount, error)
}

// DashboardService assembles the listing and every aggregation for one request
type DashboardService interface {
	// Dashboard runs the listing and the three aggregations with the same parameters.
	Dashboard(ctx context.Context, params dto.ListTransactionsParams) (*domain.Dashboard, error)
}
