// internal/upstream/gold.go
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"goldvault/internal/util"

	"github.com/shopspring/decimal"
)

// goldFeed calls the free gold price API. The provider returns an array of
// daily quotes; the last element is the most recent.
type goldFeed struct {
	client *http.Client
	url    string
}

// NewGoldFeed creates a GoldFeed for the given endpoint URL.
func NewGoldFeed(url string) GoldFeed {
	return &goldFeed{
		client: newHTTPClient(),
		url:    url,
	}
}

type goldQuote struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

func (f *goldFeed) SpotPrice(ctx context.Context) (*Spot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build gold feed request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: gold feed request failed: %v", util.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: gold feed returned status %d", util.ErrUpstream, resp.StatusCode)
	}

	var quotes []goldQuote
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		return nil, fmt.Errorf("%w: failed to decode gold feed response: %v", util.ErrUpstream, err)
	}
	if len(quotes) == 0 {
		return nil, fmt.Errorf("%w: no gold price data received", util.ErrUpstream)
	}

	latest := quotes[len(quotes)-1]
	if latest.Price <= 0 {
		return nil, fmt.Errorf("%w: invalid gold price received", util.ErrUpstream)
	}

	return &Spot{
		Price: decimal.NewFromFloat(latest.Price),
		Date:  latest.Date,
	}, nil
}
