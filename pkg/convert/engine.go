// Package convert implements the conversion engine: a pure function from a
// rate snapshot and a request to a converted value. It performs no I/O and
// holds no state; everything it needs arrives in its arguments.
package convert

import (
	"fmt"
	"math"

	"github.com/ratedesk/ratedesk/pkg/currency"
	"github.com/ratedesk/ratedesk/pkg/domain"
)

// Convert computes the requested conversion through the base currency in two
// stages. Identity conversions short-circuit to the input amount exactly, with
// no round-trip through the base. Negative amounts scale linearly.
func Convert(snapshot *domain.RateSnapshot, req domain.ConversionRequest) (*domain.ConversionResult, error) {
	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAmount, req.Amount)
	}

	if req.FromUnit == req.ToUnit {
		if !knownUnit(snapshot, req.FromUnit) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownUnit, req.FromUnit)
		}
		return &domain.ConversionResult{Value: req.Amount, ToUnit: req.ToUnit}, nil
	}

	base, err := toBase(snapshot, req.Amount, req.FromUnit)
	if err != nil {
		return nil, err
	}
	value, err := fromBase(snapshot, base, req.ToUnit)
	if err != nil {
		return nil, err
	}

	return &domain.ConversionResult{Value: value, ToUnit: req.ToUnit}, nil
}

// knownUnit reports whether the snapshot can price the unit. Identity
// conversions still require a recognized unit.
func knownUnit(snapshot *domain.RateSnapshot, unit string) bool {
	switch unit {
	case currency.BaseCurrency, currency.UnitBitcoin, currency.UnitGold:
		return true
	}
	_, ok := snapshot.FiatRates[unit]
	return ok
}

// toBase expresses amount in the base currency. Sentinel assets are priced in
// USD, so converting from them multiplies; fiat rates are units per 1 USD, so
// converting from fiat divides.
func toBase(snapshot *domain.RateSnapshot, amount float64, unit string) (float64, error) {
	switch unit {
	case currency.BaseCurrency:
		return amount, nil
	case currency.UnitBitcoin:
		return amount * snapshot.CryptoUSDPrice, nil
	case currency.UnitGold:
		return amount * snapshot.MetalUSDPricePerOz, nil
	default:
		rate, ok := snapshot.FiatRates[unit]
		if !ok {
			return 0, fmt.Errorf("%w: %s", domain.ErrUnknownUnit, unit)
		}
		if rate <= 0 {
			return 0, fmt.Errorf("%w: %s has rate %v", domain.ErrInvalidRate, unit, rate)
		}
		return amount / rate, nil
	}
}

// fromBase is the symmetric inverse of toBase.
func fromBase(snapshot *domain.RateSnapshot, baseAmount float64, unit string) (float64, error) {
	switch unit {
	case currency.BaseCurrency:
		return baseAmount, nil
	case currency.UnitBitcoin:
		if snapshot.CryptoUSDPrice <= 0 {
			return 0, fmt.Errorf("%w: crypto price %v", domain.ErrInvalidRate, snapshot.CryptoUSDPrice)
		}
		return baseAmount / snapshot.CryptoUSDPrice, nil
	case currency.UnitGold:
		if snapshot.MetalUSDPricePerOz <= 0 {
			return 0, fmt.Errorf("%w: metal price %v", domain.ErrInvalidRate, snapshot.MetalUSDPricePerOz)
		}
		return baseAmount / snapshot.MetalUSDPricePerOz, nil
	default:
		rate, ok := snapshot.FiatRates[unit]
		if !ok {
			return 0, fmt.Errorf("%w: %s", domain.ErrUnknownUnit, unit)
		}
		if rate <= 0 {
			return 0, fmt.Errorf("%w: %s has rate %v", domain.ErrInvalidRate, unit, rate)
		}
		return baseAmount * rate, nil
	}
}
