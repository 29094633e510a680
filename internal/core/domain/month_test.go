package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/txn_dashboard/internal/apperrors"
	"github.com/SscSPs/txn_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMonth_AllNames(t *testing.T) {
	names := []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	for want, name := range names {
		for _, variant := range []string{name, "  " + name + "\t", strings.ToUpper(name)} {
			got, err := domain.ResolveMonth(variant)
			require.NoError(t, err, variant)
			assert.Equal(t, want, got, variant)
			assert.Equal(t, time.Month(want+1), domain.CalendarMonth(got))
		}
	}
}

func TestResolveMonth_Invalid(t *testing.T) {
	for _, name := range []string{"", "Foobar", "jan", "13", "marchh", "sept"} {
		_, err := domain.ResolveMonth(name)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput, name)
		assert.False(t, domain.IsMonthName(name))
	}
}

