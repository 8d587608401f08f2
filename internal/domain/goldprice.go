// internal/domain/goldprice.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GramsPerTroyOunce converts a per-ounce quote to a per-gram price.
const GramsPerTroyOunce = 31.1034768

var (
	gramsPerTroyOunce = decimal.NewFromFloat(GramsPerTroyOunce)

	// Karat purity fractions relative to 24k.
	fraction22k = decimal.NewFromInt(22).Div(decimal.NewFromInt(24))
	fraction18k = decimal.NewFromInt(18).Div(decimal.NewFromInt(24))

	// UsdToQarStatic is the pegged USD to QAR rate used when no live FX
	// quote is involved.
	UsdToQarStatic = decimal.NewFromFloat(3.64)
)

// GoldPrice is an immutable per-gram price snapshot at the three karat tiers.
// Snapshots are appended to storage and never updated or deleted.
type GoldPrice struct {
	Timestamp time.Time       `db:"timestamp" json:"timestamp"`
	Price24K  decimal.Decimal `db:"price_24k" json:"price_24k"`
	Price22K  decimal.Decimal `db:"price_22k" json:"price_22k"`
	Price18K  decimal.Decimal `db:"price_18k" json:"price_18k"`
	Currency  string          `db:"currency" json:"currency"`
	Source    string          `db:"source" json:"source,omitempty"`
}

// PerGram converts a per-troy-ounce price to a per-gram price.
func PerGram(ouncePrice decimal.Decimal) decimal.Decimal {
	return ouncePrice.Div(gramsPerTroyOunce)
}

// NewGoldPrice derives the 22k and 18k tiers from a per-gram 24k price and
// rounds every tier to two decimal places.
func NewGoldPrice(gram24k decimal.Decimal, currency, source string, now time.Time) *GoldPrice {
	return &GoldPrice{
		Timestamp: now,
		Price24K:  gram24k.Round(2),
		Price22K:  gram24k.Mul(fraction22k).Round(2),
		Price18K:  gram24k.Mul(fraction18k).Round(2),
		Currency:  currency,
		Source:    source,
	}
}

// SourceFallback marks snapshots substituted for an unreachable provider.
const SourceFallback = "fallback"

// FallbackGoldPrice is the static snapshot returned when the upstream price
// provider fails. It is never persisted.
func FallbackGoldPrice(now time.Time) *GoldPrice {
	return &GoldPrice{
		Timestamp: now,
		Price24K:  decimal.NewFromFloat(236.6),
		Price22K:  decimal.NewFromFloat(216.9),
		Price18K:  decimal.NewFromFloat(177.6),
		Currency:  "QAR",
		Source:    SourceFallback,
	}
}

// LiveGoldPrice is the richer response of the live-price endpoint. It is
// cached in process only, never persisted.
type LiveGoldPrice struct {
	Source    string          `json:"source"`
	Timestamp time.Time       `json:"timestamp"`
	OunceUSD  decimal.Decimal `json:"ounceUSD"`
	UsdToQar  decimal.Decimal `json:"usdToQar"`
	OunceQAR  decimal.Decimal `json:"ounceQAR"`
	GramQAR   decimal.Decimal `json:"gramQAR"`
	GoldDate  string          `json:"goldDate"`
}
