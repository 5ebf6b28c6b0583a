// Package initializer wires the concrete fetchers, snapshot store, event bus,
// and services into the dependency set the entry points consume.
package initializer

import (
	"log/slog"

	"github.com/ratedesk/ratedesk/infra/fetcher"
	"github.com/ratedesk/ratedesk/infra/ratestore"
	"github.com/ratedesk/ratedesk/pkg/config"
	"github.com/ratedesk/ratedesk/pkg/currency"
	"github.com/ratedesk/ratedesk/pkg/eventbus"
	"github.com/ratedesk/ratedesk/pkg/rates"
)

// Deps holds the initialized application dependencies.
type Deps struct {
	Logger   *slog.Logger
	Config   *config.App
	EventBus eventbus.EventBus
	Units    *currency.UnitRegistry
	Rates    *rates.Service
}

// InitializeDependencies builds the full dependency graph from config.
func InitializeDependencies(cfg *config.App) (*Deps, error) {
	logger := SetupLogger(cfg.Log)

	bus := eventbus.NewSimpleEventBus()
	units := currency.NewUnitRegistry()

	fiat := fetcher.NewExchangeRateAPIFetcher(cfg.RateSources.Fiat, logger)
	crypto := fetcher.NewCoinGeckoFetcher(cfg.RateSources.Crypto, logger)
	metal := fetcher.NewGoldAPIFetcher(cfg.RateSources.Metal, logger)
	store := ratestore.NewFileStore(cfg.Rates.CacheFile)

	rateSvc := rates.New(fiat, crypto, metal, store, bus, logger, cfg.Rates)

	return &Deps{
		Logger:   logger,
		Config:   cfg,
		EventBus: bus,
		Units:    units,
		Rates:    rateSvc,
	}, nil
}
