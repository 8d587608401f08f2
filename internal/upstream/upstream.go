// internal/upstream/upstream.go
//
// Clients for the three external HTTP collaborators: the gold spot price
// feed, the USD exchange rate feed, and the session-exchange identity
// provider. All calls use a short fixed timeout and no retry.
package upstream

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// requestTimeout bounds every outbound provider call.
const requestTimeout = 10 * time.Second

// Spot is a provider-reported per-ounce gold quote in USD.
type Spot struct {
	Price decimal.Decimal
	Date  string
}

// GoldFeed fetches the current spot gold price.
type GoldFeed interface {
	SpotPrice(ctx context.Context) (*Spot, error)
}

// RateFeed fetches the USD exchange rate for a target currency.
type RateFeed interface {
	Rate(ctx context.Context, currency string) (decimal.Decimal, error)
}

// SessionData is the identity returned by the session-exchange provider.
type SessionData struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Picture      *string `json:"picture"`
	SessionToken string  `json:"session_token"`
}

// IdentityProvider exchanges an opaque external session id for an identity.
type IdentityProvider interface {
	ExchangeSession(ctx context.Context, sessionID string) (*SessionData, error)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}
