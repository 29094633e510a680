package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/txn_dashboard/internal/apperrors"
	"github.com/SscSPs/txn_dashboard/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSeedService struct {
	mock.Mock
}

func (m *mockSeedService) Seed(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSeedOnStartup(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		seedErr  error
		wantCall bool
		wantErr  bool
	}{
		{name: "disabled", cfg: config.Config{SeedOnStartup: false}},
		{name: "success", cfg: config.Config{SeedOnStartup: true}, wantCall: true},
		{name: "failure swallowed", cfg: config.Config{SeedOnStartup: true}, seedErr: apperrors.ErrSeedFetch, wantCall: true},
		{name: "failure fatal with fail fast", cfg: config.Config{SeedOnStartup: true, SeedFailFast: true}, seedErr: apperrors.ErrSeedFetch, wantCall: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.SeedTimeout = time.Second
			seed := new(mockSeedService)
			if tt.wantCall {
				seed.On("Seed", mock.Anything).Return(3, tt.seedErr).Once()
			}

			err := seedOnStartup(context.Background(), &tt.cfg, seed, discardLogger())

			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrSeedFetch)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantCall {
				seed.AssertExpectations(t)
			} else {
				seed.AssertNotCalled(t, "Seed", mock.Anything)
			}
		})
	}
}
