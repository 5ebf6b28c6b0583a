package currency

import (
	"sort"
	"sync"
)

const (
	// BaseCurrency is the reference unit all fiat rates are normalized against.
	BaseCurrency = "USD"
	// UnitBitcoin is the sentinel identifier for the cryptocurrency asset.
	UnitBitcoin = "Bitcoin"
	// UnitGold is the sentinel identifier for gold, priced per troy ounce.
	UnitGold = "XAU"
	// DefaultDecimals is the default number of decimal places for display.
	DefaultDecimals = 2
)

// Kind classifies a unit within the supported set.
type Kind string

const (
	KindFiat   Kind = "fiat"
	KindCrypto Kind = "crypto"
	KindMetal  Kind = "metal"
)

// UnitMeta holds display metadata for a supported unit.
type UnitMeta struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
	Kind     Kind   `json:"kind"`
}

// UnitRegistry is a thread-safe registry of the closed supported unit set.
// The set is fixed at construction and extensible only by configuration.
type UnitRegistry struct {
	units map[string]UnitMeta
	mu    sync.RWMutex
}

// NewUnitRegistry creates a registry holding the default supported units:
// the fiat codes plus the Bitcoin and gold sentinels.
func NewUnitRegistry() *UnitRegistry {
	r := &UnitRegistry{units: make(map[string]UnitMeta)}

	defaultUnits := []UnitMeta{
		{Code: "USD", Name: "US Dollar", Symbol: "$", Decimals: 2, Kind: KindFiat},
		{Code: "THB", Name: "Thai Baht", Symbol: "฿", Decimals: 2, Kind: KindFiat},
		{Code: "EUR", Name: "Euro", Symbol: "€", Decimals: 2, Kind: KindFiat},
		{Code: "GBP", Name: "British Pound", Symbol: "£", Decimals: 2, Kind: KindFiat},
		{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Decimals: 0, Kind: KindFiat},
		{Code: "AUD", Name: "Australian Dollar", Symbol: "A$", Decimals: 2, Kind: KindFiat},
		{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$", Decimals: 2, Kind: KindFiat},
		{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF", Decimals: 2, Kind: KindFiat},
		{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥", Decimals: 2, Kind: KindFiat},
		{Code: "SEK", Name: "Swedish Krona", Symbol: "kr", Decimals: 2, Kind: KindFiat},
		{Code: "NZD", Name: "New Zealand Dollar", Symbol: "NZ$", Decimals: 2, Kind: KindFiat},
		{Code: UnitBitcoin, Name: "Bitcoin", Symbol: "₿", Decimals: 8, Kind: KindCrypto},
		{Code: UnitGold, Name: "Gold (per troy oz)", Symbol: "XAU", Decimals: 4, Kind: KindMetal},
	}

	for _, meta := range defaultUnits {
		r.Register(meta)
	}

	return r
}

// Register adds or updates a unit in the registry.
func (r *UnitRegistry) Register(meta UnitMeta) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if meta.Decimals == 0 && meta.Kind != KindFiat {
		meta.Decimals = DefaultDecimals
	}
	r.units[meta.Code] = meta
}

// Get returns unit metadata for the given code. Unknown codes get a bare
// fiat-shaped entry so display code never panics.
func (r *UnitRegistry) Get(code string) UnitMeta {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if meta, ok := r.units[code]; ok {
		return meta
	}
	return UnitMeta{Code: code, Name: code, Symbol: code, Decimals: DefaultDecimals, Kind: KindFiat}
}

// IsSupported checks if a unit code is registered.
func (r *UnitRegistry) IsSupported(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.units[code]
	return ok
}

// ListSupported returns all supported unit codes, sorted.
func (r *UnitRegistry) ListSupported() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]string, 0, len(r.units))
	for code := range r.units {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Count returns the total number of registered units.
func (r *UnitRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.units)
}
