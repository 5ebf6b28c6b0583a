package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/ratedesk/ratedesk/pkg/config"
	"github.com/ratedesk/ratedesk/pkg/domain"
	"github.com/ratedesk/ratedesk/pkg/provider"
)

// CoinGeckoFetcher implements the CryptoPrice interface against the CoinGecko
// simple price endpoint for a configured asset ID.
type CoinGeckoFetcher struct {
	baseURL    string
	assetID    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewCoinGeckoFetcher creates a crypto spot price fetcher using config.
func NewCoinGeckoFetcher(cfg *config.CryptoSource, logger *slog.Logger) *CoinGeckoFetcher {
	return &CoinGeckoFetcher{
		baseURL:    cfg.ApiUrl,
		assetID:    cfg.AssetID,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logger,
	}
}

// FetchUSDPrice fetches the USD spot price of the configured asset.
// Response shape: { "bitcoin": { "usd": 50000 } }
func (f *CoinGeckoFetcher) FetchUSDPrice(ctx context.Context) (float64, error) {
	url := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd", f.baseURL, f.assetID)
	f.logger.Debug("Fetching crypto spot price", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrNetworkFailure, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("%w: API returned status %d: %s", domain.ErrNetworkFailure, resp.StatusCode, string(body))
	}

	var apiResp map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	price, ok := apiResp[f.assetID]["usd"]
	if !ok {
		return 0, fmt.Errorf("%w: no usd price for %s in response", domain.ErrMalformedResponse, f.assetID)
	}
	return price, nil
}

// Name returns the source's name.
func (f *CoinGeckoFetcher) Name() string {
	return "coingecko"
}

// Ensure CoinGeckoFetcher implements provider.CryptoPrice
var _ provider.CryptoPrice = (*CoinGeckoFetcher)(nil)
