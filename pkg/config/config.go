package config

import (
	"time"
)

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[ratedesk]"`
}

// Rates governs the freshness policy and the live-fetch behavior of the
// rate provider.
type Rates struct {
	BaseCurrency string        `envconfig:"BASE_CURRENCY" default:"USD"`
	Freshness    time.Duration `envconfig:"FRESHNESS" default:"300s"`
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"5s"`
	CacheFile    string        `envconfig:"CACHE_FILE" default:"rates_cache.json"`
}

type FiatSource struct {
	ApiUrl      string        `envconfig:"API_URL" default:"https://api.exchangerate-api.com/v4/latest"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

type CryptoSource struct {
	ApiUrl      string        `envconfig:"API_URL" default:"https://api.coingecko.com/api/v3"`
	AssetID     string        `envconfig:"ASSET_ID" default:"bitcoin"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

type MetalSource struct {
	ApiUrl      string        `envconfig:"API_URL" default:"https://api.gold-api.com"`
	Symbol      string        `envconfig:"SYMBOL" default:"XAU"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

type RateSources struct {
	Fiat   *FiatSource   `envconfig:"FIAT"`
	Crypto *CryptoSource `envconfig:"CRYPTO"`
	Metal  *MetalSource  `envconfig:"METAL"`
}

type App struct {
	Env         string       `envconfig:"APP_ENV" default:"development"`
	Server      *Server      `envconfig:"SERVER"`
	Log         *Log         `envconfig:"LOG"`
	Rates       *Rates       `envconfig:"RATES"`
	RateSources *RateSources `envconfig:"RATE_SOURCE"`
}
