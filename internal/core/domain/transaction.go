package domain

import "time"

// Transaction is a single product sale record.
type Transaction struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	DateOfSale  time.Time `json:"dateOfSale"`
	Sold        bool      `json:"sold"`
	Image       string    `json:"image"`
	AuditFields
}

// SaleMonth returns the calendar month the record was sold in, evaluated in UTC.
func (t Transaction) SaleMonth() time.Month {
	return t.DateOfSale.UTC().Month()
}

// TransactionPage is one page of a filtered listing.
type TransactionPage struct {
	Total        int64
	Page         int
	RowsPerPage  int
	Transactions []Transaction
}
