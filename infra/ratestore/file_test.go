package ratestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratedesk/ratedesk/pkg/domain"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "rates_cache.json"))
}

func validSnapshot() *domain.RateSnapshot {
	return &domain.RateSnapshot{
		FiatRates:          map[string]float64{"EUR": 0.90, "GBP": 0.78},
		CryptoUSDPrice:     50000,
		MetalUSDPricePerOz: 2000,
		FetchedAt:          1700000000,
		Origin:             domain.OriginLive,
	}
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(validSnapshot()))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.OriginCachedFile, loaded.Origin)
	assert.Equal(t, int64(1700000000), loaded.FetchedAt)
	assert.InDelta(t, 0.90, loaded.FiatRates["EUR"], 1e-12)
	assert.InDelta(t, 50000.0, loaded.CryptoUSDPrice, 1e-12)
	assert.InDelta(t, 2000.0, loaded.MetalUSDPricePerOz, 1e-12)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(validSnapshot()))

	updated := validSnapshot()
	updated.CryptoUSDPrice = 61000
	updated.FetchedAt = 1700000500
	require.NoError(t, store.Save(updated))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.InDelta(t, 61000.0, loaded.CryptoUSDPrice, 1e-12)
	assert.Equal(t, int64(1700000500), loaded.FetchedAt)
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestFileStore_LoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates_cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path).Load()
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestFileStore_LoadMissingKeyTreatedAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates_cache.json")
	// Record missing the "gold" key.
	record := `{"timestamp": 1700000000, "rates": {"EUR": 0.9}, "btc": 50000}`
	require.NoError(t, os.WriteFile(path, []byte(record), 0o644))

	_, err := NewFileStore(path).Load()
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestFileStore_LoadNonPositiveValueTreatedAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates_cache.json")
	record := `{"timestamp": 1700000000, "rates": {"EUR": 0.9}, "btc": -1, "gold": 2000}`
	require.NoError(t, os.WriteFile(path, []byte(record), 0o644))

	_, err := NewFileStore(path).Load()
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestFileStore_DeleteIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Delete()) // nothing to delete is a no-op

	require.NoError(t, store.Save(validSnapshot()))
	require.NoError(t, store.Delete())
	require.NoError(t, store.Delete())

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSnapshot)
}
