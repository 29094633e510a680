package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/txn_dashboard/internal/apperrors"
	"github.com/SscSPs/txn_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/txn_dashboard/internal/core/ports/services"
	"github.com/SscSPs/txn_dashboard/internal/core/services"
	"github.com/SscSPs/txn_dashboard/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func marchRecords() []domain.Transaction {
	sale := time.Date(2022, time.March, 14, 10, 0, 0, 0, time.UTC)
	return []domain.Transaction{
		{ID: 1, Title: "Backpack", Description: "Everyday pack", Price: 50, Category: "bags", DateOfSale: sale, Sold: true},
		{ID: 2, Title: "Jacket", Description: "Rain jacket", Price: 150, Category: "clothing", DateOfSale: sale, Sold: false},
		{ID: 3, Title: "Monitor", Description: "27 inch display", Price: 999, Category: "electronics", DateOfSale: sale, Sold: true},
	}
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionReaderSvc
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_Defaults() {
	ctx := context.Background()
	filter := domain.SearchFilter(2, "")
	records := marchRecords()

	suite.mockRepo.On("CountTransactions", ctx, filter).Return(int64(3), nil).Once()
	suite.mockRepo.On("FindTransactions", ctx, filter, 0, 10).Return(records, nil).Once()

	page, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Month: "March"})

	suite.Require().NoError(err)
	suite.Equal(int64(3), page.Total)
	suite.Equal(1, page.Page)
	suite.Equal(10, page.RowsPerPage)
	suite.Equal(records, page.Transactions)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_PagingAndSearch() {
	ctx := context.Background()
	filter := domain.SearchFilter(11, "150")

	suite.mockRepo.On("CountTransactions", ctx, filter).Return(int64(12), nil).Once()
	suite.mockRepo.On("FindTransactions", ctx, filter, 10, 5).Return([]domain.Transaction{}, nil).Once()

	page, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{
		Month:       "december",
		Page:        3,
		RowsPerPage: 5,
		Search:      "150",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(12), page.Total)
	suite.Equal(3, page.Page)
	suite.Equal(5, page.RowsPerPage)
	suite.NotNil(page.Transactions)
	suite.Empty(page.Transactions)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_NilRecordsBecomeEmpty() {
	ctx := context.Background()
	suite.mockRepo.On("CountTransactions", ctx, mock.Anything).Return(int64(0), nil).Once()
	suite.mockRepo.On("FindTransactions", ctx, mock.Anything, 0, 10).Return(nil, nil).Once()

	page, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Month: "February"})

	suite.Require().NoError(err)
	suite.NotNil(page.Transactions)
	suite.Zero(page.Total)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_InvalidMonth() {
	_, err := suite.service.ListTransactions(context.Background(), dto.ListTransactionsParams{Month: "Foobar"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidInput)
	suite.mockRepo.AssertNotCalled(suite.T(), "CountTransactions", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_PageSizeClamped() {
	ctx := context.Background()
	filter := domain.SearchFilter(2, "")
	suite.mockRepo.On("CountTransactions", ctx, filter).Return(int64(3), nil).Once()
	suite.mockRepo.On("FindTransactions", ctx, filter, 0, dto.MaxRowsPerPage).Return(marchRecords(), nil).Once()

	page, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Month: "March", RowsPerPage: 500})

	suite.Require().NoError(err)
	suite.Equal(dto.MaxRowsPerPage, page.RowsPerPage)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_NegativePage() {
	_, err := suite.service.ListTransactions(context.Background(), dto.ListTransactionsParams{Month: "March", Page: -1})

	suite.ErrorIs(err, apperrors.ErrInvalidInput)
	suite.mockRepo.AssertNotCalled(suite.T(), "CountTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_CountError() {
	ctx := context.Background()
	suite.mockRepo.On("CountTransactions", ctx, mock.Anything).Return(int64(0), assert.AnError).Once()

	page, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Month: "March"})

	suite.Nil(page)
	suite.ErrorIs(err, apperrors.ErrQueryFailed)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_FindError() {
	ctx := context.Background()
	suite.mockRepo.On("CountTransactions", ctx, mock.Anything).Return(int64(3), nil).Once()
	suite.mockRepo.On("FindTransactions", ctx, mock.Anything, 0, 10).Return(nil, assert.AnError).Once()

	_, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Month: "March"})

	suite.ErrorIs(err, apperrors.ErrQueryFailed)
	suite.Contains(err.Error(), assert.AnError.Error())
}

// --- Run Test Suite ---
func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
