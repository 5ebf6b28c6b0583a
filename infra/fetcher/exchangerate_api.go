// Package fetcher holds the HTTP implementations of the upstream rate
// sources. Each source sits behind one narrow interface from pkg/provider so
// the core stays testable without network access.
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

// ExchangeRateAPIFetcher implements the FiatRates interface against the
// exchangerate-api.com v4 latest endpoint.
type ExchangeRateAPIFetcher struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// exchangeRateAPIResponse represents the v4 response.
// Example: { "base": "USD", "date": "2024-01-01", "rates": { "EUR": 0.9, ... } }
type exchangeRateAPIResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// NewExchangeRateAPIFetcher creates a fiat rate fetcher using config.
func NewExchangeRateAPIFetcher(cfg *config.FiatSource, logger *slog.Logger) *ExchangeRateAPIFetcher {
	return &ExchangeRateAPIFetcher{
		baseURL:    cfg.ApiUrl,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logger,
	}
}

// FetchRates fetches the base-normalized rate table for the given base currency.
func (f *ExchangeRateAPIFetcher) FetchRates(ctx context.Context, base string) (map[string]float64, error) {
	url := fmt.Sprintf("%s/%s", f.baseURL, base)
	f.logger.Debug("Fetching fiat rates", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetworkFailure, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: API returned status %d: %s", domain.ErrNetworkFailure, resp.StatusCode, string(body))
	}

	var apiResp exchangeRateAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if len(apiResp.Rates) == 0 {
		return nil, fmt.Errorf("%w: response has no rates field", domain.ErrMalformedResponse)
	}

	return apiResp.Rates, nil
}

// Name returns the source's name.
func (f *ExchangeRateAPIFetcher) Name() string {
	return "exchangerate-api"
}

// Ensure ExchangeRateAPIFetcher implements provider.FiatRates
var _ provider.FiatRates = (*ExchangeRateAPIFetcher)(nil)
