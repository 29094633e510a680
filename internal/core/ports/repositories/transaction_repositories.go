package repositories

import (
	"context"

	"github.com/SscSPs/txn_dashboard/internal/core/domain"
)

// TransactionReader defines read operations for transaction records
type TransactionReader interface {
	// CountTransactions returns the number of records matching filter.
	CountTransactions(ctx context.Context, filter domain.Filter) (int64, error)

	// FindTransactions returns records matching filter ordered by ID, skipping
	// skip records and returning at most limit. A limit <= 0 means no limit.
	FindTransactions(ctx context.Context, filter domain.Filter, skip, limit int) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction records
type TransactionWriter interface {
	// ReplaceAllTransactions removes every stored record and inserts txns in
	// their place, returning the number inserted.
	ReplaceAllTransactions(ctx context.Context, txns []domain.Transaction) (int, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
