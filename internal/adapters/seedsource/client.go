// Package seedsource fetches the product transaction dataset from its public URL.
package seedsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SscSPs/txn_dashboard/internal/apperrors"
	"github.com/SscSPs/txn_dashboard/internal/core/domain"
	"github.com/SscSPs/txn_dashboard/internal/core/ports"
	"github.com/go-playground/validator/v10"
)

// maxErrorBody bounds how much of a failed response body ends up in an error message.
const maxErrorBody = 512

// Client downloads the seed dataset over HTTP.
type Client struct {
	url        string
	httpClient *http.Client
	validate   *validator.Validate
}

// NewClient creates a seed client for url. A nil httpClient gets a client
// with the given timeout.
func NewClient(url string, httpClient *http.Client, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		url:        url,
		httpClient: httpClient,
		validate:   validator.New(),
	}
}

var _ ports.SeedSource = (*Client)(nil)

// seedRecord mirrors one element of the remote JSON array. Pointers let the
// validator tell an absent field from a zero value.
type seedRecord struct {
	ID          *int64   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	DateOfSale  string   `json:"dateOfSale" validate:"required"`
	Sold        *bool    `json:"sold" validate:"required"`
	Image       string   `json:"image" validate:"required"`
}

// FetchTransactions downloads the dataset and projects every element onto a
// domain.Transaction. Any invalid element fails the whole fetch.
func (c *Client) FetchTransactions(ctx context.Context) ([]domain.Transaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", apperrors.ErrSeedFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", apperrors.ErrSeedFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: seed source returned status %d: %s", apperrors.ErrSeedFetch, resp.StatusCode, string(body))
	}

	var records []seedRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode seed dataset: %v", apperrors.ErrSeedFetch, err)
	}

	txns := make([]domain.Transaction, len(records))
	for i, rec := range records {
		t, err := c.toDomain(rec)
		if err != nil {
			return nil, fmt.Errorf("seed record %d: %w", i, err)
		}
		txns[i] = t
	}
	return txns, nil
}

func (c *Client) toDomain(rec seedRecord) (domain.Transaction, error) {
	if err := c.validate.Struct(rec); err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	soldAt, err := parseDateOfSale(rec.DateOfSale)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return domain.Transaction{
		ID:          *rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Price:       *rec.Price,
		Category:    rec.Category,
		DateOfSale:  soldAt,
		Sold:        *rec.Sold,
		Image:       rec.Image,
	}, nil
}

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func parseDateOfSale(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable dateOfSale %q", raw)
}
