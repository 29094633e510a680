package services

import (
	"context"

	"github.com/SscSPs/txn_dashboard/internal/core/domain"
	"github.com/SscSPs/txn_dashboard/internal/dto"
)

// TransactionReaderSvc defines the paginated listing of transaction records
type TransactionReaderSvc interface {
	// ListTransactions returns one page of the month's records matching the search text.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*domain.TransactionPage, error)
}

// SeedSvc repopulates the record store from the remote dataset
type SeedSvc interface {
	// Seed replaces the stored records with a freshly fetched dataset and
	// returns the number of records stored.
	Seed(ctx context.Context) (int, error)
}
