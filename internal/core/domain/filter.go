package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// FilterKind tags the node type of a Filter expression.
type FilterKind int

const (
	// FilterAll matches every record.
	FilterAll FilterKind = iota
	FilterAnd
	FilterOr
	FilterMonthEquals
	FilterContains
	FilterPriceEquals
)

// TextField names a record field that supports substring search.
type TextField string

const (
	FieldTitle       TextField = "title"
	FieldDescription TextField = "description"
)

// Filter is a boolean expression over transaction records. Store adapters
// translate it into their native query language; Matches evaluates it in memory.
type Filter struct {
	Kind     FilterKind
	Children []Filter
	Month    time.Month
	Field    TextField
	Text     string
	Price    float64
}

// And matches records satisfying every child. An empty And matches everything.
func And(children ...Filter) Filter {
	return Filter{Kind: FilterAnd, Children: children}
}

// Or matches records satisfying at least one child. An empty Or matches nothing.
func Or(children ...Filter) Filter {
	return Filter{Kind: FilterOr, Children: children}
}

// MonthEquals matches records whose date of sale falls in month m (any year).
func MonthEquals(m time.Month) Filter {
	return Filter{Kind: FilterMonthEquals, Month: m}
}

// Contains matches records whose field contains text, ignoring case.
func Contains(field TextField, text string) Filter {
	return Filter{Kind: FilterContains, Field: field, Text: text}
}

// PriceEquals matches records priced at exactly p.
func PriceEquals(p float64) Filter {
	return Filter{Kind: FilterPriceEquals, Price: p}
}

// Matches evaluates the filter against t.
func (f Filter) Matches(t Transaction) bool {
	switch f.Kind {
	case FilterAll:
		return true
	case FilterAnd:
		for _, c := range f.Children {
			if !c.Matches(t) {
				return false
			}
		}
		return true
	case FilterOr:
		for _, c := range f.Children {
			if c.Matches(t) {
				return true
			}
		}
		return false
	case FilterMonthEquals:
		return t.SaleMonth() == f.Month
	case FilterContains:
		return strings.Contains(strings.ToLower(t.textField(f.Field)), strings.ToLower(f.Text))
	case FilterPriceEquals:
		return t.Price == f.Price
	}
	return false
}

func (t Transaction) textField(field TextField) string {
	switch field {
	case FieldTitle:
		return t.Title
	case FieldDescription:
		return t.Description
	}
	return ""
}

// MonthFilter selects every record sold in the month with the given zero-based index.
func MonthFilter(monthIndex int) Filter {
	return MonthEquals(CalendarMonth(monthIndex))
}

// SearchFilter selects records of the given month whose title or description
// contains search. When search is a finite number, records priced exactly at
// that number also match.
func SearchFilter(monthIndex int, search string) Filter {
	alternatives := []Filter{
		Contains(FieldTitle, search),
		Contains(FieldDescription, search),
	}
	if price, ok := ParseSearchPrice(search); ok {
		alternatives = append(alternatives, PriceEquals(price))
	}
	return And(MonthFilter(monthIndex), Or(alternatives...))
}

// ParseSearchPrice reports whether search is a finite number, and its value.
func ParseSearchPrice(search string) (float64, bool) {
	trimmed := strings.TrimSpace(search)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
