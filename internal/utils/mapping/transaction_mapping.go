package mapping

import (
	"github.com/SscSPs/txn_dashboard/internal/core/domain"
	"github.com/SscSPs/txn_dashboard/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
		DateOfSale:  d.DateOfSale.UTC(),
		Sold:        d.Sold,
		Image:       d.Image,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Category:    m.Category,
		DateOfSale:  m.DateOfSale.UTC(),
		Sold:        m.Sold,
		Image:       m.Image,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTransactionSlice converts domain Transactions to model Transactions
func ToModelTransactionSlice(ds []domain.Transaction) []models.Transaction {
	ms := make([]models.Transaction, len(ds))
	for i, d := range ds {
		ms[i] = ToModelTransaction(d)
	}
	return ms
}

// ToDomainTransactionSlice converts model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
