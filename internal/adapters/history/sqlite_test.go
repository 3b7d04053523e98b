package history

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/tokencheck/internal/domain"
	"github.com/trebuchet-org/tokencheck/internal/domain/config"
)

func newTestStore(t *testing.T) (*SQLiteStore, *config.RuntimeConfig) {
	t.Helper()
	cfg := &config.RuntimeConfig{DataDir: t.TempDir()}
	store, cleanup := NewSQLiteStore(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(cleanup)
	return store, cfg
}

func sampleResult(env string, symbolStatus domain.CheckStatus) *domain.VerificationResult {
	return &domain.VerificationResult{
		Environment: env,
		Address:     "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		Mode:        domain.ModeCollectAll,
		StartedAt:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Duration:    150 * time.Millisecond,
		Checks: []domain.CheckResult{
			{Accessor: "name", Expected: "BobCoin", Actual: "BobCoin", Status: domain.CheckPassed},
			{Accessor: "symbol", Expected: "XX", Actual: "BC", Status: symbolStatus},
			{Accessor: "decimals", Expected: "18", Actual: "18", Status: domain.CheckPassed},
		},
	}
}

func TestSQLiteStore_RecordAndRecent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first, err := store.Record(ctx, sampleResult("development", domain.CheckFailed))
	require.NoError(t, err)
	second, err := store.Record(ctx, sampleResult("rinkeby", domain.CheckPassed))
	require.NoError(t, err)
	assert.Greater(t, second, first)

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "rinkeby", entries[0].Environment)
	assert.Equal(t, 3, entries[0].Passed)

	assert.Equal(t, "development", entries[1].Environment)
	assert.Equal(t, 2, entries[1].Passed)
	assert.Equal(t, 1, entries[1].Failed)
	assert.Equal(t, domain.ModeCollectAll, entries[1].Mode)
	assert.Equal(t, 150*time.Millisecond, entries[1].Duration)
	assert.True(t, entries[1].StartedAt.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
}

func TestSQLiteStore_RecentLimit(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.Record(ctx, sampleResult("development", domain.CheckPassed))
		require.NoError(t, err)
	}

	entries, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSQLiteStore_RecentWithoutDatabase(t *testing.T) {
	store, cfg := newTestStore(t)

	entries, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = os.Stat(cfg.HistoryPath())
	assert.True(t, os.IsNotExist(err), "listing history must not create the database")
}
