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

// GoldAPIFetcher implements the MetalPrice interface against the gold-api.com
// spot price endpoint for a configured metal symbol.
type GoldAPIFetcher struct {
	baseURL    string
	symbol     string
	httpClient *http.Client
	logger     *slog.Logger
}

// goldAPIResponse represents the spot price response.
// Example: { "name": "Gold", "price": 2000.5, "symbol": "XAU", "updatedAt": "..." }
type goldAPIResponse struct {
	Name   string   `json:"name"`
	Price  *float64 `json:"price"`
	Symbol string   `json:"symbol"`
}

// NewGoldAPIFetcher creates a metal spot price fetcher using config.
func NewGoldAPIFetcher(cfg *config.MetalSource, logger *slog.Logger) *GoldAPIFetcher {
	return &GoldAPIFetcher{
		baseURL:    cfg.ApiUrl,
		symbol:     cfg.Symbol,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logger,
	}
}

// FetchUSDPricePerOunce fetches the USD price of one troy ounce.
func (f *GoldAPIFetcher) FetchUSDPricePerOunce(ctx context.Context) (float64, error) {
	url := fmt.Sprintf("%s/price/%s", f.baseURL, f.symbol)
	f.logger.Debug("Fetching metal spot price", "url", url)

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

	var apiResp goldAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if apiResp.Price == nil {
		return 0, fmt.Errorf("%w: response has no price field", domain.ErrMalformedResponse)
	}
	return *apiResp.Price, nil
}

// Name returns the source's name.
func (f *GoldAPIFetcher) Name() string {
	return "gold-api"
}

// Ensure GoldAPIFetcher implements provider.MetalPrice
var _ provider.MetalPrice = (*GoldAPIFetcher)(nil)
