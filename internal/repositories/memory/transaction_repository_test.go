package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/txn_dashboard/internal/apperrors"
	"github.com/SscSPs/txn_dashboard/internal/core/domain"
	"github.com/SscSPs/txn_dashboard/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataset() []domain.Transaction {
	var out []domain.Transaction
	// IDs inserted out of order to exercise sorting.
	for _, id := range []int64{9, 3, 7, 1, 5, 2, 8, 4, 6, 10, 11} {
		month := time.March
		if id > 9 {
			month = time.April
		}
		out = append(out, domain.Transaction{
			ID:         id,
			Title:      "item",
			Price:      float64(id * 10),
			Category:   "electronics",
			DateOfSale: time.Date(2022, month, int(id), 0, 0, 0, 0, time.UTC),
		})
	}
	return out
}

func TestTransactionRepository_PagesReproduceFilteredSet(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()
	n, err := repo.ReplaceAllTransactions(ctx, dataset())
	require.NoError(t, err)
	require.Equal(t, 11, n)

	filter := domain.MonthFilter(2)
	total, err := repo.CountTransactions(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(9), total)

	rowsPerPage := 4
	var ids []int64
	for page := 1; page <= 3; page++ {
		got, err := repo.FindTransactions(ctx, filter, (page-1)*rowsPerPage, rowsPerPage)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(got), rowsPerPage)
		for _, tx := range got {
			ids = append(ids, tx.ID)
		}
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}, ids)
}

func TestTransactionRepository_NoLimitReturnsAll(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()
	_, err := repo.ReplaceAllTransactions(ctx, dataset())
	require.NoError(t, err)

	got, err := repo.FindTransactions(ctx, domain.And(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, got, 11)
	assert.False(t, got[0].CreatedAt.IsZero())
}

func TestTransactionRepository_ReplaceIsSingleGeneration(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()
	_, err := repo.ReplaceAllTransactions(ctx, dataset())
	require.NoError(t, err)

	_, err = repo.ReplaceAllTransactions(ctx, []domain.Transaction{{ID: 42, DateOfSale: time.Now()}})
	require.NoError(t, err)

	total, err := repo.CountTransactions(ctx, domain.And())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestTransactionRepository_DuplicateIDsRejected(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()
	_, err := repo.ReplaceAllTransactions(ctx, dataset())
	require.NoError(t, err)

	_, err = repo.ReplaceAllTransactions(ctx, []domain.Transaction{{ID: 1}, {ID: 1}})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	total, err := repo.CountTransactions(ctx, domain.And())
	require.NoError(t, err)
	assert.Equal(t, int64(11), total, "previous generation kept")
}

func TestTransactionRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := memory.NewTransactionRepository()

	_, err := repo.CountTransactions(ctx, domain.And())
	assert.ErrorIs(t, err, context.Canceled)
}
