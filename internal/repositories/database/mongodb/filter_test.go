package mongodb

import (
	"testing"
	"time"

	"github.com/SscSPs/txn_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToBSON_MonthFilter(t *testing.T) {
	got := toBSON(domain.MonthFilter(2))

	want := bson.D{{Key: "$expr", Value: bson.D{{Key: "$eq", Value: bson.A{
		bson.D{{Key: "$month", Value: "$dateOfSale"}},
		3,
	}}}}}
	assert.Equal(t, want, got)
}

func TestToBSON_SearchFilterWithPrice(t *testing.T) {
	got := toBSON(domain.SearchFilter(0, "9.99"))

	want := bson.D{{Key: "$and", Value: bson.A{
		toBSON(domain.MonthEquals(time.January)),
		bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: primitive.Regex{Pattern: `9\.99`, Options: "i"}}},
			bson.D{{Key: "description", Value: primitive.Regex{Pattern: `9\.99`, Options: "i"}}},
			bson.D{{Key: "price", Value: 9.99}},
		}}},
	}}}
	assert.Equal(t, want, got)
}

func TestToBSON_TextSearchEscapesRegex(t *testing.T) {
	got := toBSON(domain.Contains(domain.FieldTitle, "a+b (c)"))
	assert.Equal(t, bson.D{{Key: "title", Value: primitive.Regex{Pattern: `a\+b \(c\)`, Options: "i"}}}, got)
}

func TestToBSON_EmptyCombinators(t *testing.T) {
	assert.Equal(t, bson.D{}, toBSON(domain.And()))
	assert.Equal(t, matchNothing, toBSON(domain.Or()))
	assert.Equal(t, bson.D{}, toBSON(domain.Filter{}))
}
