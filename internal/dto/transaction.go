package dto

import (
	"time"

	"github.com/SscSPs/txn_dashboard/internal/core/domain"
)

const (
	// DefaultPage is used when the page query parameter is absent.
	DefaultPage = 1
	// DefaultRowsPerPage is used when the rowsPerPage query parameter is absent.
	DefaultRowsPerPage = 10
	// MaxRowsPerPage bounds the page size a client may request.
	MaxRowsPerPage = 100
)

// MonthQuery is the query string accepted by the aggregation endpoints.
type MonthQuery struct {
	Month string `form:"month" binding:"required,month"`
}

// ListTransactionsParams is the query string accepted by the listing endpoint.
type ListTransactionsParams struct {
	Month       string `form:"month" binding:"required,month"`
	Page        int    `form:"page" binding:"omitempty,min=1"`
	RowsPerPage int    `form:"rowsPerPage" binding:"omitempty,min=1"`
	Search      string `form:"search"`
}

// WithDefaults fills in the page and page size when they were not supplied
// and clamps the page size to MaxRowsPerPage.
func (p ListTransactionsParams) WithDefaults() ListTransactionsParams {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.RowsPerPage == 0 {
		p.RowsPerPage = DefaultRowsPerPage
	}
	if p.RowsPerPage > MaxRowsPerPage {
		p.RowsPerPage = MaxRowsPerPage
	}
	return p
}

// CombinedQuery is the query string accepted by the combined endpoint. The
// month is left to the service so an unknown name fails with its own message.
type CombinedQuery struct {
	Month       string `form:"month"`
	Page        int    `form:"page" binding:"omitempty,min=1"`
	RowsPerPage int    `form:"rowsPerPage" binding:"omitempty,min=1"`
	Search      string `form:"search"`
}

// Params converts the query into listing parameters.
func (q CombinedQuery) Params() ListTransactionsParams {
	return ListTransactionsParams{
		Month:       q.Month,
		Page:        q.Page,
		RowsPerPage: q.RowsPerPage,
		Search:      q.Search,
	}
}

// Offset is the number of records preceding the requested page.
func (p ListTransactionsParams) Offset() int {
	return (p.Page - 1) * p.RowsPerPage
}

// TransactionResponse defines the data returned for a transaction record.
type TransactionResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	DateOfSale  time.Time `json:"dateOfSale"`
	Sold        bool      `json:"sold"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListTransactionsResponse is one page of the filtered listing.
type ListTransactionsResponse struct {
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	RowsPerPage  int                   `json:"rowsPerPage"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Price:       t.Price,
		Category:    t.Category,
		DateOfSale:  t.DateOfSale,
		Sold:        t.Sold,
		Image:       t.Image,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToListTransactionsResponse converts a domain page to its DTO, never emitting a null list.
func ToListTransactionsResponse(page *domain.TransactionPage) ListTransactionsResponse {
	res := ListTransactionsResponse{
		Total:        page.Total,
		Page:         page.Page,
		RowsPerPage:  page.RowsPerPage,
		Transactions: make([]TransactionResponse, len(page.Transactions)),
	}
	for i, t := range page.Transactions {
		res.Transactions[i] = ToTransactionResponse(t)
	}
	return res
}

// SeedResponse reports the outcome of a reseed.
type SeedResponse struct {
	Inserted int `json:"inserted"`
}
