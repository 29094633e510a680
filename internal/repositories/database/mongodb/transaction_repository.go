package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/txn_dashboard/internal/apperrors"
	"github.com/SscSPs/txn_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/txn_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/txn_dashboard/internal/models"
	"github.com/SscSPs/txn_dashboard/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTransactionRepository stores transaction records in a single MongoDB collection.
type MongoTransactionRepository struct {
	coll *mongo.Collection
}

// newMongoTransactionRepository creates a new repository for transaction records.
func newMongoTransactionRepository(coll *mongo.Collection) *MongoTransactionRepository {
	return &MongoTransactionRepository{coll: coll}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*MongoTransactionRepository)(nil)

// EnsureIndexes creates the unique index on the dataset identifier and the
// index backing the default sort order.
func (r *MongoTransactionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("id_unique"),
	})
	if err != nil {
		return apperrors.NewAppError(500, "failed to create transaction indexes", err)
	}
	return nil
}

// CountTransactions returns the number of records matching filter.
func (r *MongoTransactionRepository) CountTransactions(ctx context.Context, filter domain.Filter) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, toBSON(filter))
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count transactions", err)
	}
	return n, nil
}

// FindTransactions returns the matching records ordered by id.
func (r *MongoTransactionRepository) FindTransactions(ctx context.Context, filter domain.Filter, skip, limit int) ([]domain.Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	if skip > 0 {
		opts.SetSkip(int64(skip))
	}
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.coll.Find(ctx, toBSON(filter), opts)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer cursor.Close(ctx)

	var modelTxns []models.Transaction
	if err := cursor.All(ctx, &modelTxns); err != nil {
		return nil, apperrors.NewAppError(500, "failed to decode transactions", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// ReplaceAllTransactions deletes every document and inserts txns. The two
// steps are not atomic: a failure after the delete leaves the collection empty.
func (r *MongoTransactionRepository) ReplaceAllTransactions(ctx context.Context, txns []domain.Transaction) (int, error) {
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return 0, apperrors.NewAppError(500, "failed to delete transactions", err)
	}
	if len(txns) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, len(txns))
	for i, m := range mapping.ToModelTransactionSlice(txns) {
		m.CreatedAt = now
		m.UpdatedAt = now
		docs[i] = m
	}

	res, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, fmt.Errorf("%w: duplicate transaction id in dataset: %v", apperrors.ErrDuplicate, err)
		}
		return 0, apperrors.NewAppError(500, "failed to insert transactions", err)
	}
	return len(res.InsertedIDs), nil
}
