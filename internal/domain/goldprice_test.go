// internal/domain/goldprice_test.go
package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPerGram(t *testing.T) {
	// 2000 USD/oz at the 3.64 peg is 7280 QAR/oz, or 234.06 QAR/g rounded.
	ounceQAR := decimal.NewFromInt(2000).Mul(UsdToQarStatic)
	gram := PerGram(ounceQAR)

	assert.Equal(t, "234.06", gram.Round(2).String())
}

func TestNewGoldPrice(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	price := NewGoldPrice(decimal.NewFromInt(240), "QAR", "FreeGoldAPI", now)

	assert.Equal(t, now, price.Timestamp)
	assert.Equal(t, "QAR", price.Currency)
	assert.Equal(t, "FreeGoldAPI", price.Source)
	assert.Equal(t, "240", price.Price24K.String())
	// Derived tiers: 240 * 22/24 = 220, 240 * 18/24 = 180.
	assert.Equal(t, "220", price.Price22K.String())
	assert.Equal(t, "180", price.Price18K.String())
}

func TestNewGoldPriceRoundsToTwoDecimals(t *testing.T) {
	now := time.Now().UTC()
	gram24k := decimal.RequireFromString("234.0571")
	price := NewGoldPrice(gram24k, "QAR", "FreeGoldAPI", now)

	assert.Equal(t, "234.06", price.Price24K.String())
	assert.True(t, price.Price22K.Equal(gram24k.Mul(fraction22k).Round(2)))
	assert.True(t, price.Price18K.Equal(gram24k.Mul(fraction18k).Round(2)))
}

func TestFallbackGoldPrice(t *testing.T) {
	now := time.Now().UTC()
	price := FallbackGoldPrice(now)

	assert.Equal(t, now, price.Timestamp)
	assert.Equal(t, "QAR", price.Currency)
	assert.Equal(t, SourceFallback, price.Source)
	assert.Equal(t, "236.6", price.Price24K.String())
	assert.Equal(t, "216.9", price.Price22K.String())
	assert.Equal(t, "177.6", price.Price18K.String())
}
