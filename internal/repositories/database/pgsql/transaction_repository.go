package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/txn_dashboard/internal/apperrors"
	"github.com/SscSPs/txn_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/txn_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/txn_dashboard/internal/models"
	"github.com/SscSPs/txn_dashboard/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionsTable = "transactions"

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

var transactionColumns = []string{
	"id", "title", "description", "price", "category", "date_of_sale", "sold", "image", "created_at", "updated_at",
}

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction records.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

// CountTransactions returns the number of records matching filter.
func (r *PgxTransactionRepository) CountTransactions(ctx context.Context, filter domain.Filter) (int64, error) {
	where, err := toSqlizer(filter)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to build transaction filter", err)
	}
	query, args, err := psql.Select("COUNT(*)").From(transactionsTable).Where(where).ToSql()
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to build count query", err)
	}

	var n int64
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count transactions", err)
	}
	return n, nil
}

// FindTransactions returns the matching records ordered by id.
func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, filter domain.Filter, skip, limit int) ([]domain.Transaction, error) {
	where, err := toSqlizer(filter)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to build transaction filter", err)
	}
	builder := psql.Select(transactionColumns...).From(transactionsTable).Where(where).OrderBy("id ASC")
	if skip > 0 {
		builder = builder.Offset(uint64(skip))
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to build find query", err)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		var t models.Transaction
		err := row.Scan(
			&t.ID,
			&t.Title,
			&t.Description,
			&t.Price,
			&t.Category,
			&t.DateOfSale,
			&t.Sold,
			&t.Image,
			&t.CreatedAt,
			&t.UpdatedAt,
		)
		return t, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan transactions", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// ReplaceAllTransactions swaps the table contents inside one database transaction.
func (r *PgxTransactionRepository) ReplaceAllTransactions(ctx context.Context, txns []domain.Transaction) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	if _, err := tx.Exec(ctx, "DELETE FROM "+transactionsTable); err != nil {
		return 0, apperrors.NewAppError(500, "failed to delete transactions", err)
	}

	now := time.Now().UTC()
	rows := make([][]any, len(txns))
	for i, m := range mapping.ToModelTransactionSlice(txns) {
		rows[i] = []any{m.ID, m.Title, m.Description, m.Price, m.Category, m.DateOfSale, m.Sold, m.Image, now, now}
	}

	inserted, err := tx.CopyFrom(ctx, pgx.Identifier{transactionsTable}, transactionColumns, pgx.CopyFromRows(rows))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, fmt.Errorf("%w: duplicate transaction id in dataset: %v", apperrors.ErrDuplicate, err)
		}
		return 0, apperrors.NewAppError(500, "failed to insert transactions", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return int(inserted), nil
}
