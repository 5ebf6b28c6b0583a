package webapi

// ConvertRequest is the POST /api/convert payload. Amount is a pointer so
// that a zero amount, which is a valid conversion input, still satisfies the
// presence check.
type ConvertRequest struct {
	Amount *float64 `json:"amount" validate:"required"`
	From   string   `json:"from" validate:"required"`
	To     string   `json:"to" validate:"required"`
}

// ConvertResponse echoes the converted value with its unit for display.
type ConvertResponse struct {
	Value  float64 `json:"value"`
	To     string  `json:"to"`
	Origin string  `json:"origin"` // provenance of the snapshot used
}

// RatesResponse exposes the current snapshot to the presentation layer.
type RatesResponse struct {
	FiatRates          map[string]float64 `json:"fiat_rates"`
	CryptoUSDPrice     float64            `json:"crypto_usd_price"`
	MetalUSDPricePerOz float64            `json:"metal_usd_price_per_oz"`
	FetchedAt          int64              `json:"fetched_at"`
	Origin             string             `json:"origin"`
}
