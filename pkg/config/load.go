package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from an optional .env file and the process
// environment. A missing .env file is not an error.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	if len(envFilePath) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Warn("No .env file found, using system environment variables")
		}
		return loadFromEnv()
	}

	for _, path := range envFilePath {
		if err := godotenv.Load(path); err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}
		logger.Info("Environment loaded from file", "path", path)
		return loadFromEnv()
	}

	logger.Warn("No valid environment files found, using system environment variables")
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	slog.Default().Info("App config loaded",
		"env", cfg.Env,
		"rates_freshness", cfg.Rates.Freshness,
		"rates_fetch_timeout", cfg.Rates.FetchTimeout,
		"rates_cache_file", cfg.Rates.CacheFile,
		"fiat_api_url", cfg.RateSources.Fiat.ApiUrl,
		"crypto_asset", cfg.RateSources.Crypto.AssetID,
		"metal_symbol", cfg.RateSources.Metal.Symbol,
	)
	return &cfg, nil
}
