package pgsql

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SscSPs/txn_dashboard/internal/core/domain"
)

// psql builds statements with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// toSqlizer translates a filter expression into a WHERE clause.
func toSqlizer(f domain.Filter) (sq.Sqlizer, error) {
	switch f.Kind {
	case domain.FilterAll:
		return sq.Expr("TRUE"), nil
	case domain.FilterAnd:
		if len(f.Children) == 0 {
			return sq.Expr("TRUE"), nil
		}
		children, err := childrenToSqlizers(f.Children)
		if err != nil {
			return nil, err
		}
		return sq.And(children), nil
	case domain.FilterOr:
		if len(f.Children) == 0 {
			return sq.Expr("FALSE"), nil
		}
		children, err := childrenToSqlizers(f.Children)
		if err != nil {
			return nil, err
		}
		return sq.Or(children), nil
	case domain.FilterMonthEquals:
		return sq.Expr("EXTRACT(MONTH FROM date_of_sale AT TIME ZONE 'UTC') = ?", int(f.Month)), nil
	case domain.FilterContains:
		column, err := textColumn(f.Field)
		if err != nil {
			return nil, err
		}
		return sq.Expr("strpos(lower("+column+"), lower(?)) > 0", f.Text), nil
	case domain.FilterPriceEquals:
		return sq.Eq{"price": f.Price}, nil
	}
	return nil, fmt.Errorf("unsupported filter kind %d", f.Kind)
}

func childrenToSqlizers(children []domain.Filter) ([]sq.Sqlizer, error) {
	out := make([]sq.Sqlizer, len(children))
	for i, c := range children {
		s, err := toSqlizer(c)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func textColumn(field domain.TextField) (string, error) {
	switch field {
	case domain.FieldTitle:
		return "title", nil
	case domain.FieldDescription:
		return "description", nil
	}
	return "", fmt.Errorf("unsupported search field %q", field)
}
