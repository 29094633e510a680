package mongodb

import (
	"regexp"

	"github.com/SscSPs/txn_dashboard/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// matchNothing is a query document that no document satisfies.
var matchNothing = bson.D{{Key: "$expr", Value: false}}

// toBSON translates a filter expression into a MongoDB query document.
func toBSON(f domain.Filter) bson.D {
	switch f.Kind {
	case domain.FilterAnd:
		if len(f.Children) == 0 {
			return bson.D{}
		}
		return bson.D{{Key: "$and", Value: childrenToBSON(f.Children)}}
	case domain.FilterOr:
		if len(f.Children) == 0 {
			return matchNothing
		}
		return bson.D{{Key: "$or", Value: childrenToBSON(f.Children)}}
	case domain.FilterMonthEquals:
		// $month evaluates in UTC, matching domain.Transaction.SaleMonth.
		return bson.D{{Key: "$expr", Value: bson.D{{Key: "$eq", Value: bson.A{
			bson.D{{Key: "$month", Value: "$dateOfSale"}},
			int(f.Month),
		}}}}}
	case domain.FilterContains:
		return bson.D{{Key: string(f.Field), Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(f.Text),
			Options: "i",
		}}}
	case domain.FilterPriceEquals:
		return bson.D{{Key: "price", Value: f.Price}}
	}
	return bson.D{}
}

func childrenToBSON(children []domain.Filter) bson.A {
	out := make(bson.A, len(children))
	for i, c := range children {
		out[i] = toBSON(c)
	}
	return out
}
