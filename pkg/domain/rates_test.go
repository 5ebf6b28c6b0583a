package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validSnapshot() *RateSnapshot {
	return &RateSnapshot{
		FiatRates:          map[string]float64{"EUR": 0.90},
		CryptoUSDPrice:     50000,
		MetalUSDPricePerOz: 2000,
		FetchedAt:          1700000000,
		Origin:             OriginLive,
	}
}

func TestRateSnapshot_Validate(t *testing.T) {
	assert.NoError(t, validSnapshot().Validate())
}

func TestRateSnapshot_ValidateRejectsDefects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RateSnapshot)
	}{
		{"empty fiat table", func(s *RateSnapshot) { s.FiatRates = nil }},
		{"zero fiat rate", func(s *RateSnapshot) { s.FiatRates["EUR"] = 0 }},
		{"negative fiat rate", func(s *RateSnapshot) { s.FiatRates["EUR"] = -0.9 }},
		{"zero crypto price", func(s *RateSnapshot) { s.CryptoUSDPrice = 0 }},
		{"negative metal price", func(s *RateSnapshot) { s.MetalUSDPricePerOz = -1 }},
		{"missing timestamp", func(s *RateSnapshot) { s.FetchedAt = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSnapshot()
			tt.mutate(s)
			err := s.Validate()
			assert.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestRateSnapshot_Age(t *testing.T) {
	s := validSnapshot()
	now := time.Unix(s.FetchedAt, 0).Add(90 * time.Second)
	assert.Equal(t, 90*time.Second, s.Age(now))
}
