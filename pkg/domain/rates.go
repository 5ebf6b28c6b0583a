package domain

import (
	"fmt"
	"time"
)

// SnapshotOrigin tags where a RateSnapshot came from. It is surfaced to
// callers for user-facing warnings and never consulted by conversion logic.
type SnapshotOrigin string

const (
	// OriginLive marks a snapshot assembled from a successful live fetch.
	OriginLive SnapshotOrigin = "live"
	// OriginCachedFile marks a snapshot reloaded from the durable cache record.
	OriginCachedFile SnapshotOrigin = "cached-file"
)

// RateSnapshot is the normalized result of one rate fetch: all fiat rates
// expressed as units per 1 USD, plus the USD spot prices of the two special
// assets. Exactly one snapshot is live in the provider at a time; it is
// replaced wholesale on the next successful fetch.
type RateSnapshot struct {
	FiatRates          map[string]float64 `json:"fiat_rates"`
	CryptoUSDPrice     float64            `json:"crypto_usd_price"`
	MetalUSDPricePerOz float64            `json:"metal_usd_price_per_oz"`
	FetchedAt          int64              `json:"fetched_at"` // epoch seconds
	Origin             SnapshotOrigin     `json:"origin"`
}

// Validate reports whether the snapshot is structurally sound: a non-empty
// fiat table and strictly positive prices everywhere. A snapshot failing this
// check is never handed to callers; the fetch that produced it counts as failed.
func (s *RateSnapshot) Validate() error {
	if len(s.FiatRates) == 0 {
		return fmt.Errorf("%w: empty fiat rate table", ErrMalformedResponse)
	}
	for code, rate := range s.FiatRates {
		if rate <= 0 {
			return fmt.Errorf("%w: non-positive rate %v for %s", ErrMalformedResponse, rate, code)
		}
	}
	if s.CryptoUSDPrice <= 0 {
		return fmt.Errorf("%w: non-positive crypto price %v", ErrMalformedResponse, s.CryptoUSDPrice)
	}
	if s.MetalUSDPricePerOz <= 0 {
		return fmt.Errorf("%w: non-positive metal price %v", ErrMalformedResponse, s.MetalUSDPricePerOz)
	}
	if s.FetchedAt <= 0 {
		return fmt.Errorf("%w: missing fetch timestamp", ErrMalformedResponse)
	}
	return nil
}

// Age returns how old the snapshot is relative to now.
func (s *RateSnapshot) Age(now time.Time) time.Duration {
	return now.Sub(time.Unix(s.FetchedAt, 0))
}

// ConversionRequest asks for amount in FromUnit expressed in ToUnit. Units are
// members of the closed supported set: fiat codes plus the two sentinel assets.
type ConversionRequest struct {
	Amount   float64 `json:"amount"`
	FromUnit string  `json:"from"`
	ToUnit   string  `json:"to"`
}

// ConversionResult carries the converted value; ToUnit is echoed for display.
type ConversionResult struct {
	Value  float64 `json:"value"`
	ToUnit string  `json:"to"`
}
