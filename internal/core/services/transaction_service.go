package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/txn_dashboard/internal/apperrors"
	"github.com/SscSPs/txn_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/txn_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/txn_dashboard/internal/core/ports/services"
	"github.com/SscSPs/txn_dashboard/internal/dto"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
}

// NewTransactionService creates the paginated listing service.
func NewTransactionService(repo portsrepo.TransactionReader) portssvc.TransactionReaderSvc {
	return &transactionService{transactionRepo: repo}
}

var _ portssvc.TransactionReaderSvc = (*transactionService)(nil)

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*domain.TransactionPage, error) {
	monthIndex, err := domain.ResolveMonth(params.Month)
	if err != nil {
		return nil, err
	}
	params = params.WithDefaults()
	if params.Page < 1 || params.RowsPerPage < 1 || params.RowsPerPage > dto.MaxRowsPerPage {
		return nil, fmt.Errorf("%w: page %d with %d rows per page", apperrors.ErrInvalidInput, params.Page, params.RowsPerPage)
	}

	filter := domain.SearchFilter(monthIndex, params.Search)

	total, err := s.transactionRepo.CountTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to count transactions", slog.String("month", params.Month))
		return nil, fmt.Errorf("%w: counting transactions: %v", apperrors.ErrQueryFailed, err)
	}

	records, err := s.transactionRepo.FindTransactions(ctx, filter, params.Offset(), params.RowsPerPage)
	if err != nil {
		s.LogError(ctx, err, "Failed to find transactions",
			slog.String("month", params.Month),
			slog.Int("page", params.Page))
		return nil, fmt.Errorf("%w: finding transactions: %v", apperrors.ErrQueryFailed, err)
	}
	if records == nil {
		records = []domain.Transaction{}
	}

	s.LogDebug(ctx, "Listed transactions",
		slog.String("month", params.Month),
		slog.Int64("total", total),
		slog.Int("returned", len(records)))

	return &domain.TransactionPage{
		Total:        total,
		Page:         params.Page,
		RowsPerPage:  params.RowsPerPage,
		Transactions: records,
	}, nil
}
