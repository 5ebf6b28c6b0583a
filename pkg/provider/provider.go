package provider

import (
	"context"

	"github.com/ratedesk/ratedesk/pkg/domain"
)

// FiatRates defines the interface for base-normalized fiat rate sources.
type FiatRates interface {
	// FetchRates fetches the full rate table for the given base currency,
	// keyed by currency code, expressed as units per 1 base unit.
	FetchRates(ctx context.Context, base string) (map[string]float64, error)

	// Name returns the source's name for logging and identification.
	Name() string
}

// CryptoPrice defines the interface for cryptocurrency spot price sources.
type CryptoPrice interface {
	// FetchUSDPrice fetches the USD spot price of the configured asset.
	FetchUSDPrice(ctx context.Context) (float64, error)

	Name() string
}

// MetalPrice defines the interface for precious metal spot price sources.
type MetalPrice interface {
	// FetchUSDPricePerOunce fetches the USD price of one troy ounce.
	FetchUSDPricePerOunce(ctx context.Context) (float64, error)

	Name() string
}

// SnapshotStore persists a single rate snapshot for offline fallback. One
// record exists at a time; Save overwrites it.
type SnapshotStore interface {
	// Save overwrites the durable record with the given snapshot.
	Save(snapshot *domain.RateSnapshot) error

	// Load returns the persisted snapshot. A missing, unparsable, or
	// structurally invalid record is reported as an error; callers treat
	// all such cases as "no cache present".
	Load() (*domain.RateSnapshot, error)

	// Delete removes the durable record. Deleting an absent record is a no-op.
	Delete() error
}
