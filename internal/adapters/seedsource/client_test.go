package seedsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/txn_dashboard/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDataset = `[
  {
    "id": 1,
    "title": "Fjallraven  - Foldsack No. 1 Backpack, Fits 15 Laptops",
    "price": 329.85,
    "description": "Your perfect pack for everyday use and walks in the forest.",
    "category": "men's clothing",
    "image": "https://fakestoreapi.com/img/81fPKd-2AYL._AC_SL1500_.jpg",
    "sold": false,
    "dateOfSale": "2021-11-27T20:29:54+05:30"
  },
  {
    "id": 2,
    "title": "Mens Casual Premium Slim Fit T-Shirts",
    "price": 0,
    "description": "Slim-fitting style.",
    "category": "men's clothing",
    "image": "https://fakestoreapi.com/img/71-3HjGNDUL._AC_SY879._SX._UX._SY._UY_.jpg",
    "sold": true,
    "dateOfSale": "2022-03-01"
  }
]`

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchTransactions_Success(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, sampleDataset)
	client := NewClient(srv.URL, nil, 5*time.Second)

	txns, err := client.FetchTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, txns, 2)

	assert.Equal(t, int64(1), txns[0].ID)
	assert.Equal(t, 329.85, txns[0].Price)
	assert.False(t, txns[0].Sold)
	assert.Equal(t, time.Date(2021, 11, 27, 14, 59, 54, 0, time.UTC), txns[0].DateOfSale)

	assert.Equal(t, 0.0, txns[1].Price)
	assert.True(t, txns[1].Sold)
	assert.Equal(t, time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC), txns[1].DateOfSale)
}

func TestFetchTransactions_NonSuccessStatus(t *testing.T) {
	srv := newTestServer(t, http.StatusForbidden, `<Error>AccessDenied</Error>`)
	client := NewClient(srv.URL, nil, 5*time.Second)

	_, err := client.FetchTransactions(context.Background())
	require.ErrorIs(t, err, apperrors.ErrSeedFetch)
	assert.Contains(t, err.Error(), "403")
}

func TestFetchTransactions_MalformedJSON(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"not":"an array"}`)
	client := NewClient(srv.URL, nil, 5*time.Second)

	_, err := client.FetchTransactions(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrSeedFetch)
}

func TestFetchTransactions_MissingRequiredField(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `[{"id": 3, "title": "x", "description": "y", "price": 1, "image": "i", "sold": true, "dateOfSale": "2022-01-01"}]`)
	client := NewClient(srv.URL, nil, 5*time.Second)

	_, err := client.FetchTransactions(context.Background())
	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "Category")
}

func TestFetchTransactions_BadDate(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `[{"id": 3, "title": "x", "description": "y", "price": 1, "category": "c", "image": "i", "sold": true, "dateOfSale": "yesterday"}]`)
	client := NewClient(srv.URL, nil, 5*time.Second)

	_, err := client.FetchTransactions(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFetchTransactions_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, nil, time.Second).FetchTransactions(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrSeedFetch)
}
