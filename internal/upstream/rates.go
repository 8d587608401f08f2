// internal/upstream/rates.go
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"goldvault/internal/domain"
	"goldvault/internal/util"

	"github.com/shopspring/decimal"
)

// rateFeed calls the open exchange rate API for USD conversion rates.
type rateFeed struct {
	client *http.Client
	url    string
}

// NewRateFeed creates a RateFeed for the given endpoint URL.
func NewRateFeed(url string) RateFeed {
	return &rateFeed{
		client: newHTTPClient(),
		url:    url,
	}
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

func (f *rateFeed) Rate(ctx context.Context, currency string) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build rate feed request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: rate feed request failed: %v", util.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: rate feed returned status %d", util.ErrUpstream, resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("%w: failed to decode rate feed response: %v", util.ErrUpstream, err)
	}

	rate, ok := body.Rates[currency]
	if !ok || rate <= 0 {
		// Provider occasionally omits minor currencies; fall back to the peg.
		if currency == "QAR" {
			return domain.UsdToQarStatic, nil
		}
		return decimal.Zero, fmt.Errorf("%w: no rate for currency %s", util.ErrUpstream, currency)
	}
	return decimal.NewFromFloat(rate), nil
}
