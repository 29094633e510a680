package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction is the persisted form of a product sale record.
// The MongoDB _id is store-assigned; ID is the dataset identifier and carries a unique index.
type Transaction struct {
	ObjectID    primitive.ObjectID `bson:"_id,omitempty" db:"-"`
	ID          int64              `bson:"id" db:"id"`
	Title       string             `bson:"title" db:"title"`
	Description string             `bson:"description" db:"description"`
	Price       float64            `bson:"price" db:"price"`
	Category    string             `bson:"category" db:"category"`
	DateOfSale  time.Time          `bson:"dateOfSale" db:"date_of_sale"`
	Sold        bool               `bson:"sold" db:"sold"`
	Image       string             `bson:"image" db:"image"`
	AuditFields `bson:",inline"`
}
