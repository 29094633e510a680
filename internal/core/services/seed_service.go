package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/txn_dashboard/internal/apperrors"
	"github.com/SscSPs/txn_dashboard/internal/core/domain"
	"github.com/SscSPs/txn_dashboard/internal/core/ports"
	portsrepo "github.com/SscSPs/txn_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/txn_dashboard/internal/core/ports/services"
)

type seedService struct {
	BaseService
	source          ports.SeedSource
	transactionRepo portsrepo.TransactionWriter
}

// NewSeedService creates the loader that repopulates the store from source.
func NewSeedService(source ports.SeedSource, repo portsrepo.TransactionWriter) portssvc.SeedSvc {
	return &seedService{source: source, transactionRepo: repo}
}

var _ portssvc.SeedSvc = (*seedService)(nil)

// Seed fetches the complete dataset first and only then replaces the stored
// generation, so a failed fetch leaves existing records untouched.
func (s *seedService) Seed(ctx context.Context) (int, error) {
	start := time.Now()

	txns, err := s.source.FetchTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch seed dataset")
		return 0, fmt.Errorf("failed to fetch seed dataset: %w", err)
	}

	// Stores that delete before inserting cannot undo a unique-key failure,
	// so duplicates are rejected before the store is touched.
	if err := checkUniqueIDs(txns); err != nil {
		s.LogError(ctx, err, "Seed dataset rejected", slog.Int("fetched", len(txns)))
		return 0, err
	}

	inserted, err := s.transactionRepo.ReplaceAllTransactions(ctx, txns)
	if err != nil {
		s.LogError(ctx, err, "Failed to store seed dataset", slog.Int("fetched", len(txns)))
		return 0, fmt.Errorf("failed to store seed dataset: %w", err)
	}

	s.LogInfo(ctx, "Seed dataset stored",
		slog.Int("inserted", inserted),
		slog.Duration("duration", time.Since(start)))
	return inserted, nil
}

func checkUniqueIDs(txns []domain.Transaction) error {
	seen := make(map[int64]struct{}, len(txns))
	for _, t := range txns {
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("%w: duplicate transaction id %d in seed dataset", apperrors.ErrDuplicate, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}
