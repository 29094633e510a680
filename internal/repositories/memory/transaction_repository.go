// Package memory keeps transaction records in process memory. It backs the
// "memory" store backend used for local development and tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/txn_dashboard/internal/apperrors"
	"github.com/SscSPs/txn_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/txn_dashboard/internal/core/ports/repositories"
)

// TransactionRepository holds one generation of records sorted by ID.
type TransactionRepository struct {
	mu      sync.RWMutex
	records []domain.Transaction
	now     func() time.Time
}

// NewTransactionRepository returns an empty in-memory store.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{now: time.Now}
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func (r *TransactionRepository) CountTransactions(ctx context.Context, filter domain.Filter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, t := range r.records {
		if filter.Matches(t) {
			n++
		}
	}
	return n, nil
}

func (r *TransactionRepository) FindTransactions(ctx context.Context, filter domain.Filter, skip, limit int) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Transaction, 0)
	matched := 0
	for _, t := range r.records {
		if !filter.Matches(t) {
			continue
		}
		matched++
		if matched <= skip {
			continue
		}
		out = append(out, t)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// ReplaceAllTransactions swaps in the new generation. Duplicate IDs reject the
// whole set and leave the previous generation in place.
func (r *TransactionRepository) ReplaceAllTransactions(ctx context.Context, txns []domain.Transaction) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	now := r.now().UTC()
	next := make([]domain.Transaction, len(txns))
	seen := make(map[int64]struct{}, len(txns))
	for i, t := range txns {
		if _, dup := seen[t.ID]; dup {
			return 0, fmt.Errorf("%w: duplicate transaction id %d", apperrors.ErrDuplicate, t.ID)
		}
		seen[t.ID] = struct{}{}
		t.CreatedAt = now
		t.UpdatedAt = now
		next[i] = t
	}
	sort.Slice(next, func(i, j int) bool { return next[i].ID < next[j].ID })

	r.mu.Lock()
	r.records = next
	r.mu.Unlock()
	return len(next), nil
}

// NewRepositoryProvider wires the in-memory repositories.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: NewTransactionRepository(),
	}
}
