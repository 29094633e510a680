package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/txn_dashboard/internal/apperrors"
)

// monthIndex maps lower-case month names to their zero-based index.
var monthIndex = map[string]int{
	"january":   0,
	"february":  1,
	"march":     2,
	"april":     3,
	"may":       4,
	"june":      5,
	"july":      6,
	"august":    7,
	"september": 8,
	"october":   9,
	"november":  10,
	"december":  11,
}

// ResolveMonth converts a month name into its zero-based index (January=0).
// Matching ignores case and surrounding whitespace.
func ResolveMonth(name string) (int, error) {
	idx, ok := monthIndex[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: invalid month provided %q", apperrors.ErrInvalidInput, name)
	}
	return idx, nil
}

// CalendarMonth converts a zero-based month index into a time.Month.
func CalendarMonth(index int) time.Month {
	return time.Month(index + 1)
}

// IsMonthName reports whether name resolves to a month.
func IsMonthName(name string) bool {
	_, err := ResolveMonth(name)
	return err == nil
}
