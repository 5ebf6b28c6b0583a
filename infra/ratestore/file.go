// Package ratestore persists the offline-fallback rate snapshot as a single
// flat JSON record, overwritten on every successful live fetch.
package ratestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ratedesk/ratedesk/pkg/domain"
	"github.com/ratedesk/ratedesk/pkg/provider"
)

// ErrNoSnapshot is returned by Load when no usable record exists: the file is
// missing, unparsable, or structurally invalid. All three cases are treated
// identically by callers.
var ErrNoSnapshot = errors.New("no cached rate snapshot")

// cacheRecord is the on-disk shape. Pointer fields distinguish a missing key
// from a zero value so a truncated record never passes validation.
type cacheRecord struct {
	Timestamp *float64           `json:"timestamp"`
	Rates     map[string]float64 `json:"rates"`
	BTC       *float64           `json:"btc"`
	Gold      *float64           `json:"gold"`
}

// FileStore implements provider.SnapshotStore on a local JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save overwrites the record with the given snapshot.
func (f *FileStore) Save(snapshot *domain.RateSnapshot) error {
	record := cacheRecord{
		Timestamp: ptr(float64(snapshot.FetchedAt)),
		Rates:     snapshot.FiatRates,
		BTC:       ptr(snapshot.CryptoUSDPrice),
		Gold:      ptr(snapshot.MetalUSDPricePerOz),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode rate cache record: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write rate cache record: %w", err)
	}
	return nil
}

// Load reads the record back. Any structural defect is reported as
// ErrNoSnapshot so the caller treats it the same as an absent file.
func (f *FileStore) Load() (*domain.RateSnapshot, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to read rate cache record: %w", err)
	}

	var record cacheRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSnapshot, err)
	}
	if record.Timestamp == nil || record.Rates == nil || record.BTC == nil || record.Gold == nil {
		return nil, fmt.Errorf("%w: record is missing a required key", ErrNoSnapshot)
	}

	snapshot := &domain.RateSnapshot{
		FiatRates:          record.Rates,
		CryptoUSDPrice:     *record.BTC,
		MetalUSDPricePerOz: *record.Gold,
		FetchedAt:          int64(*record.Timestamp),
		Origin:             domain.OriginCachedFile,
	}
	if err := snapshot.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSnapshot, err)
	}
	return snapshot, nil
}

// Delete removes the record; a missing file is a no-op.
func (f *FileStore) Delete() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete rate cache record: %w", err)
	}
	return nil
}

func ptr(v float64) *float64 { return &v }

// Ensure FileStore implements provider.SnapshotStore
var _ provider.SnapshotStore = (*FileStore)(nil)
