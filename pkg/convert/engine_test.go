package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratedesk/ratedesk/pkg/domain"
)

func testSnapshot() *domain.RateSnapshot {
	return &domain.RateSnapshot{
		FiatRates:          map[string]float64{"EUR": 0.90, "GBP": 0.78},
		CryptoUSDPrice:     50000,
		MetalUSDPricePerOz: 2000,
		FetchedAt:          1700000000,
		Origin:             domain.OriginLive,
	}
}

func TestConvert_USDToEUR(t *testing.T) {
	result, err := Convert(testSnapshot(), domain.ConversionRequest{
		Amount: 100, FromUnit: "USD", ToUnit: "EUR",
	})
	require.NoError(t, err)
	assert.InDelta(t, 90.0, result.Value, 1e-9)
	assert.Equal(t, "EUR", result.ToUnit)
}

func TestConvert_BitcoinToUSD(t *testing.T) {
	result, err := Convert(testSnapshot(), domain.ConversionRequest{
		Amount: 1, FromUnit: "Bitcoin", ToUnit: "USD",
	})
	require.NoError(t, err)
	assert.InDelta(t, 50000.0, result.Value, 1e-9)
}

func TestConvert_GoldToEUR(t *testing.T) {
	result, err := Convert(testSnapshot(), domain.ConversionRequest{
		Amount: 1, FromUnit: "XAU", ToUnit: "EUR",
	})
	require.NoError(t, err)
	assert.InDelta(t, 1800.0, result.Value, 1e-9)
}

func TestConvert_FiatToFiat(t *testing.T) {
	result, err := Convert(testSnapshot(), domain.ConversionRequest{
		Amount: 90, FromUnit: "EUR", ToUnit: "GBP",
	})
	require.NoError(t, err)
	// 90 EUR -> 100 USD -> 78 GBP
	assert.InDelta(t, 78.0, result.Value, 1e-9)
}

func TestConvert_Identity_Exact(t *testing.T) {
	snapshot := testSnapshot()
	for _, unit := range []string{"USD", "EUR", "GBP", "Bitcoin", "XAU"} {
		for _, amount := range []float64{0, 1, -3.5, 0.1234567, 1e12} {
			result, err := Convert(snapshot, domain.ConversionRequest{
				Amount: amount, FromUnit: unit, ToUnit: unit,
			})
			require.NoError(t, err)
			// Identity must not round-trip through the base currency.
			assert.Equal(t, amount, result.Value, "unit %s amount %v", unit, amount)
		}
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	snapshot := testSnapshot()
	units := []string{"USD", "EUR", "GBP", "Bitcoin", "XAU"}
	const amount = 123.456
	for _, from := range units {
		for _, to := range units {
			forward, err := Convert(snapshot, domain.ConversionRequest{
				Amount: amount, FromUnit: from, ToUnit: to,
			})
			require.NoError(t, err)
			back, err := Convert(snapshot, domain.ConversionRequest{
				Amount: forward.Value, FromUnit: to, ToUnit: from,
			})
			require.NoError(t, err)
			assert.InEpsilon(t, amount, back.Value, 1e-9, "%s -> %s -> %s", from, to, from)
		}
	}
}

func TestConvert_NegativeAmountScalesLinearly(t *testing.T) {
	result, err := Convert(testSnapshot(), domain.ConversionRequest{
		Amount: -100, FromUnit: "USD", ToUnit: "EUR",
	})
	require.NoError(t, err)
	assert.InDelta(t, -90.0, result.Value, 1e-9)
}

func TestConvert_UnknownUnit(t *testing.T) {
	_, err := Convert(testSnapshot(), domain.ConversionRequest{
		Amount: 1, FromUnit: "ZZZ", ToUnit: "USD",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownUnit)

	_, err = Convert(testSnapshot(), domain.ConversionRequest{
		Amount: 1, FromUnit: "USD", ToUnit: "ZZZ",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownUnit)
}

func TestConvert_Identity_UnknownUnit(t *testing.T) {
	_, err := Convert(testSnapshot(), domain.ConversionRequest{
		Amount: 5, FromUnit: "ZZZ", ToUnit: "ZZZ",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownUnit)
}

func TestConvert_ZeroRateIsInvalid(t *testing.T) {
	snapshot := testSnapshot()
	snapshot.FiatRates["EUR"] = 0

	_, err := Convert(snapshot, domain.ConversionRequest{
		Amount: 1, FromUnit: "EUR", ToUnit: "USD",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRate)

	snapshot.CryptoUSDPrice = 0
	_, err = Convert(snapshot, domain.ConversionRequest{
		Amount: 1, FromUnit: "USD", ToUnit: "Bitcoin",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRate)
}

func TestConvert_NonFiniteAmount(t *testing.T) {
	for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Convert(testSnapshot(), domain.ConversionRequest{
			Amount: amount, FromUnit: "USD", ToUnit: "EUR",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	}
}
