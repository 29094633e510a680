package mongodb

import (
	"context"

	portsrepo "github.com/SscSPs/txn_dashboard/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewRepositoryProvider wires the MongoDB-backed repositories and makes sure
// the collection indexes exist.
func NewRepositoryProvider(ctx context.Context, client *mongo.Client, database, collection string) (portsrepo.RepositoryProvider, error) {
	transactionRepo := newMongoTransactionRepository(client.Database(database).Collection(collection))
	if err := transactionRepo.EnsureIndexes(ctx); err != nil {
		return portsrepo.RepositoryProvider{}, err
	}

	return portsrepo.RepositoryProvider{
		TransactionRepo: transactionRepo,
	}, nil
}
