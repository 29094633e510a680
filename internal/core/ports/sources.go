package ports

import (
	"context"

	"github.com/SscSPs/txn_dashboard/internal/core/domain"
)

// SeedSource supplies a complete dataset of transaction records from outside the system.
type SeedSource interface {
	// FetchTransactions downloads and decodes the full dataset. It returns an
	// error rather than a partial dataset.
	FetchTransactions(ctx context.Context) ([]domain.Transaction, error)
}
