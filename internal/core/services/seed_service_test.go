package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/txn_dashboard/internal/apperrors"
	"github.com/SscSPs/txn_dashboard/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeed_StoresFetchedDataset(t *testing.T) {
	ctx := context.Background()
	source := new(MockSeedSource)
	repo := new(MockTransactionRepository)
	records := marchRecords()

	source.On("FetchTransactions", ctx).Return(records, nil).Once()
	repo.On("ReplaceAllTransactions", ctx, records).Return(len(records), nil).Once()

	inserted, err := services.NewSeedService(source, repo).Seed(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, inserted)
	source.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestSeed_FetchFailureKeepsStore(t *testing.T) {
	ctx := context.Background()
	source := new(MockSeedSource)
	repo := new(MockTransactionRepository)

	source.On("FetchTransactions", ctx).Return(nil, apperrors.ErrSeedFetch).Once()

	inserted, err := services.NewSeedService(source, repo).Seed(ctx)

	assert.Zero(t, inserted)
	assert.ErrorIs(t, err, apperrors.ErrSeedFetch)
	repo.AssertNotCalled(t, "ReplaceAllTransactions", mock.Anything, mock.Anything)
}

func TestSeed_StoreFailure(t *testing.T) {
	ctx := context.Background()
	source := new(MockSeedSource)
	repo := new(MockTransactionRepository)

	source.On("FetchTransactions", ctx).Return(marchRecords(), nil).Once()
	repo.On("ReplaceAllTransactions", ctx, mock.Anything).Return(0, apperrors.ErrDuplicate).Once()

	_, err := services.NewSeedService(source, repo).Seed(ctx)

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestSeed_DuplicateIDsNeverReachStore(t *testing.T) {
	ctx := context.Background()
	source := new(MockSeedSource)
	repo := new(MockTransactionRepository)
	records := append(marchRecords(), marchRecords()[1])

	source.On("FetchTransactions", ctx).Return(records, nil).Once()

	inserted, err := services.NewSeedService(source, repo).Seed(ctx)

	assert.Zero(t, inserted)
	require.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Contains(t, err.Error(), "duplicate transaction id 2")
	repo.AssertNotCalled(t, "ReplaceAllTransactions", mock.Anything, mock.Anything)
}
